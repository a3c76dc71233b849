package filter

import (
	"errors"
	"fmt"

	"golang.org/x/net/bpf"
)

const (
	etherTypeIPv4 = 0x0800
	etherTypeIPv6 = 0x86dd
	ipProtoTCP    = 6
	ipProtoUDP    = 17

	// 帧里的偏移，链路层按 Ethernet 计算
	offEtherType  = 12
	offIPv4Proto  = 14 + 9
	offIPv4Start  = 14
	offIPv6Next   = 14 + 6
	offIPv6L4     = 14 + 40
	acceptSnaplen = 0xFFFF
)

var ErrNoPorts = errors.New("至少需要一个端口")

// PortsFilter 生成 classic BPF：只放行 IPv4/IPv6 上 TCP 或 UDP 且源或目的端口在 ports 中的包。
//
// IPv4 头部长度不固定（options），用 LoadMemShift 取 X = 4*(ip[0]&0xf)，
// 端口在 [14+X] 和 [14+X+2]。IPv6 不处理扩展头，端口固定在 54 和 56。
func PortsFilter(ports []uint16) ([]bpf.Instruction, error) {
	if len(ports) == 0 {
		return nil, ErrNoPorts
	}

	p := &program{labels: make(map[string]int)}
	p.add(bpf.LoadAbsolute{Off: offEtherType, Size: 2})
	p.jumpIf(etherTypeIPv4, "", "ipv6")

	p.add(bpf.LoadAbsolute{Off: offIPv4Proto, Size: 1})
	p.jumpIf(ipProtoTCP, "ipv4_ports", "")
	p.jumpIf(ipProtoUDP, "", "drop")
	p.label("ipv4_ports")
	p.add(bpf.LoadMemShift{Off: offIPv4Start})
	p.add(bpf.LoadIndirect{Off: offIPv4Start, Size: 2}) // src port
	p.matchPorts(ports)
	p.add(bpf.LoadIndirect{Off: offIPv4Start + 2, Size: 2}) // dst port
	p.matchPorts(ports)
	p.jump("drop")

	p.label("ipv6")
	p.jumpIf(etherTypeIPv6, "", "drop")
	p.add(bpf.LoadAbsolute{Off: offIPv6Next, Size: 1})
	p.jumpIf(ipProtoTCP, "ipv6_ports", "")
	p.jumpIf(ipProtoUDP, "", "drop")
	p.label("ipv6_ports")
	p.add(bpf.LoadAbsolute{Off: offIPv6L4, Size: 2})
	p.matchPorts(ports)
	p.add(bpf.LoadAbsolute{Off: offIPv6L4 + 2, Size: 2})
	p.matchPorts(ports)

	p.label("drop")
	p.add(bpf.RetConstant{Val: 0})
	p.label("accept")
	p.add(bpf.RetConstant{Val: acceptSnaplen})

	return p.resolve()
}

// TCPPortsBPF 是 PortsFilter 的汇编结果，可以直接交给 AF_PACKET。
func TCPPortsBPF(ports []uint16) ([]bpf.RawInstruction, error) {
	ins, err := PortsFilter(ports)
	if err != nil {
		return nil, err
	}
	raw, err := bpf.Assemble(ins)
	if err != nil {
		return nil, fmt.Errorf("组装 BPF 失败：%w", err)
	}
	return raw, nil
}

// program 是带标签的小汇编器，最后统一回填跳转偏移。
type program struct {
	ins    []bpf.Instruction
	fixups []fixup
	labels map[string]int
}

type fixup struct {
	at              int
	onTrue, onFalse string // 空串表示下一条
	always          string
}

func (p *program) add(ins bpf.Instruction) {
	p.ins = append(p.ins, ins)
}

func (p *program) label(name string) {
	p.labels[name] = len(p.ins)
}

func (p *program) jumpIf(val uint32, onTrue, onFalse string) {
	p.fixups = append(p.fixups, fixup{at: len(p.ins), onTrue: onTrue, onFalse: onFalse})
	p.add(bpf.JumpIf{Cond: bpf.JumpEqual, Val: val})
}

func (p *program) jump(to string) {
	p.fixups = append(p.fixups, fixup{at: len(p.ins), always: to})
	p.add(bpf.Jump{})
}

func (p *program) matchPorts(ports []uint16) {
	for _, port := range ports {
		p.jumpIf(uint32(port), "accept", "")
	}
}

func (p *program) skip(from int, label string) (int, error) {
	if label == "" {
		return 0, nil
	}
	to, ok := p.labels[label]
	if !ok {
		return 0, fmt.Errorf("BPF 标签不存在：%s", label)
	}
	return to - from - 1, nil
}

func (p *program) resolve() ([]bpf.Instruction, error) {
	for _, f := range p.fixups {
		if f.always != "" {
			n, err := p.skip(f.at, f.always)
			if err != nil {
				return nil, err
			}
			p.ins[f.at] = bpf.Jump{Skip: uint32(n)}
			continue
		}
		t, err := p.skip(f.at, f.onTrue)
		if err != nil {
			return nil, err
		}
		e, err := p.skip(f.at, f.onFalse)
		if err != nil {
			return nil, err
		}
		if t > 0xff || e > 0xff {
			return nil, fmt.Errorf("BPF 条件跳转超出范围（端口过多）")
		}
		j := p.ins[f.at].(bpf.JumpIf)
		j.SkipTrue, j.SkipFalse = uint8(t), uint8(e)
		p.ins[f.at] = j
	}
	return p.ins, nil
}
