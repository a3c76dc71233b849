// Package pidmap 在 sock:inet_sock_set_state 上挂一个 eBPF 程序，
// 记录连接建立时的进程号，供 AF_PACKET 抓到的包回填进程信息。
package pidmap

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/asm"
	"github.com/cilium/ebpf/btf"
	"github.com/cilium/ebpf/link"
	"github.com/cilium/ebpf/rlimit"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

const (
	mapName       = "l7_sock_pid"
	mapEntries    = 65535
	commCacheSize = 4096
)

// Resolver 按四元组查进程号。零值和 nil 都可用，查询总是返回 0。
type Resolver struct {
	m    *ebpf.Map
	prog *ebpf.Program
	tp   link.Link

	procRoot string
	comm     *lru.Cache[uint32, string]
	misses   uint64
}

type sockKey struct {
	SrcIP   uint32
	DstIP   uint32
	SrcPort uint16
	DstPort uint16
	Pad     uint32
}

type offsets struct {
	family   int16
	newstate int16
	sport    int16
	dport    int16
	saddr    int16
	daddr    int16
}

// NewResolver 加载并挂载 eBPF 程序，只记录 ports 中端口上的连接。
func NewResolver(ports []uint16) (*Resolver, error) {
	if len(ports) == 0 {
		return nil, fmt.Errorf("eBPF 进程关联需要至少一个服务端口")
	}
	if err := rlimit.RemoveMemlock(); err != nil {
		return nil, fmt.Errorf("设置 memlock 失败：%w", err)
	}
	spec, err := btf.LoadKernelSpec()
	if err != nil {
		return nil, fmt.Errorf("加载 BTF 失败：%w", err)
	}
	var st *btf.Struct
	if err := spec.TypeByName("trace_event_raw_inet_sock_set_state", &st); err != nil {
		return nil, fmt.Errorf("查找 tracepoint 结构失败：%w", err)
	}
	off, err := resolveOffsets(st)
	if err != nil {
		return nil, err
	}
	m, err := ebpf.NewMap(&ebpf.MapSpec{
		Name:       mapName,
		Type:       ebpf.LRUHash,
		KeySize:    16,
		ValueSize:  4,
		MaxEntries: mapEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 map 失败：%w", err)
	}
	prog, err := ebpf.NewProgram(&ebpf.ProgramSpec{
		Type:         ebpf.TracePoint,
		Instructions: buildProgram(m.FD(), off, ports),
		License:      "GPL",
	})
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("加载 eBPF 程序失败：%w", err)
	}
	tp, err := link.Tracepoint("sock", "inet_sock_set_state", prog, nil)
	if err != nil {
		prog.Close()
		m.Close()
		return nil, fmt.Errorf("挂载 tracepoint 失败：%w", err)
	}
	r := newResolver("/proc")
	r.m, r.prog, r.tp = m, prog, tp
	log.WithField("ports", ports).Info("eBPF 进程关联已启用")
	return r, nil
}

func newResolver(procRoot string) *Resolver {
	comm, _ := lru.New[uint32, string](commCacheSize)
	return &Resolver{procRoot: procRoot, comm: comm}
}

// Lookup 返回建立该连接的进程号，查不到返回 0。只支持 IPv4。
func (r *Resolver) Lookup(src, dst netip.AddrPort) uint32 {
	if r == nil || r.m == nil {
		return 0
	}
	var pid uint32
	// 内核里端口的字节序随版本不同，两种都试
	for _, netOrder := range []bool{true, false} {
		key, ok := makeKey(src, dst, netOrder)
		if !ok {
			return 0
		}
		if err := r.m.Lookup(&key, &pid); err == nil {
			return pid
		}
	}
	r.misses++
	if r.misses == 1 {
		log.WithFields(log.Fields{"src": src, "dst": dst}).Debug("eBPF map 中没有该连接")
	}
	return 0
}

// ProcessName 读 /proc/<pid>/comm，结果按 pid 缓存。
func (r *Resolver) ProcessName(pid uint32) string {
	if r == nil || pid == 0 || r.comm == nil {
		return ""
	}
	if name, ok := r.comm.Get(pid); ok {
		return name
	}
	b, err := os.ReadFile(filepath.Join(r.procRoot, strconv.FormatUint(uint64(pid), 10), "comm"))
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(string(b))
	r.comm.Add(pid, name)
	return name
}

func (r *Resolver) Close() error {
	if r == nil {
		return nil
	}
	var firstErr error
	if r.tp != nil {
		if err := r.tp.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if r.prog != nil {
		if err := r.prog.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if r.m != nil {
		if err := r.m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// makeKey 构造与内核 map 一致的 key：地址保持网络序字节，
// 端口按 netOrder 选择网络序或主机序。
func makeKey(src, dst netip.AddrPort, netOrder bool) (sockKey, bool) {
	if !src.Addr().Unmap().Is4() || !dst.Addr().Unmap().Is4() {
		return sockKey{}, false
	}
	s := src.Addr().Unmap().As4()
	d := dst.Addr().Unmap().As4()
	key := sockKey{
		SrcIP:   binary.LittleEndian.Uint32(s[:]),
		DstIP:   binary.LittleEndian.Uint32(d[:]),
		SrcPort: src.Port(),
		DstPort: dst.Port(),
	}
	if netOrder {
		key.SrcPort, key.DstPort = swap16(key.SrcPort), swap16(key.DstPort)
	}
	return key, true
}

func swap16(p uint16) uint16 {
	return (p << 8) | (p >> 8)
}

func resolveOffsets(st *btf.Struct) (offsets, error) {
	var out offsets
	fields := []struct {
		name string
		dst  *int16
	}{
		{"family", &out.family},
		{"newstate", &out.newstate},
		{"sport", &out.sport},
		{"dport", &out.dport},
		{"saddr", &out.saddr},
		{"daddr", &out.daddr},
	}
	for _, f := range fields {
		off, err := memberOffset(st, f.name)
		if err != nil {
			return offsets{}, err
		}
		*f.dst = off
	}
	return out, nil
}

func memberOffset(st *btf.Struct, name string) (int16, error) {
	for _, m := range st.Members {
		if m.Name == name {
			return int16(m.Offset / 8), nil
		}
	}
	return 0, fmt.Errorf("成员缺失：%s", name)
}

// buildProgram 生成 tracepoint 程序：连接进入 ESTABLISHED 且任一端口在 ports 中时，
// 以正反两个方向的四元组为 key 写入当前 tgid。
func buildProgram(mapFD int, off offsets, ports []uint16) asm.Instructions {
	const (
		afInet         = 2
		tcpEstablished = 1
		keyOffset      = -32
		valueOffset    = -16
	)
	ins := asm.Instructions{
		asm.Mov.Reg(asm.R6, asm.R1),
		asm.LoadMem(asm.R1, asm.R6, off.family, asm.Half),
		asm.JNE.Imm(asm.R1, afInet, "exit"),
		asm.LoadMem(asm.R1, asm.R6, off.newstate, asm.Word),
		asm.JNE.Imm(asm.R1, tcpEstablished, "exit"),
		asm.LoadMem(asm.R2, asm.R6, off.sport, asm.Half),
		asm.LoadMem(asm.R3, asm.R6, off.dport, asm.Half),
	}
	for _, reg := range []asm.Register{asm.R2, asm.R3} {
		for _, p := range ports {
			ins = append(ins,
				asm.JEq.Imm(reg, int32(p), "match"),
				asm.JEq.Imm(reg, int32(swap16(p)), "match"),
			)
		}
	}
	ins = append(ins, asm.Ja.Label("exit"))

	store := func(first bool, sip, dip, sport, dport asm.Register) asm.Instructions {
		head := asm.LoadMem(asm.R4, asm.R6, off.saddr, asm.Word)
		if first {
			head = head.WithSymbol("match")
		}
		return asm.Instructions{
			head,
			asm.LoadMem(asm.R5, asm.R6, off.daddr, asm.Word),
			asm.LoadMem(asm.R2, asm.R6, off.sport, asm.Half),
			asm.LoadMem(asm.R3, asm.R6, off.dport, asm.Half),
			asm.StoreMem(asm.RFP, keyOffset, sip, asm.Word),
			asm.StoreMem(asm.RFP, keyOffset+4, dip, asm.Word),
			asm.StoreMem(asm.RFP, keyOffset+8, sport, asm.Half),
			asm.StoreMem(asm.RFP, keyOffset+10, dport, asm.Half),
			asm.StoreImm(asm.RFP, keyOffset+12, 0, asm.Word),
			asm.FnGetCurrentPidTgid.Call(),
			asm.RSh.Imm(asm.R0, 32),
			asm.StoreMem(asm.RFP, valueOffset, asm.R0, asm.Word),
			asm.LoadMapPtr(asm.R1, mapFD),
			asm.Mov.Reg(asm.R2, asm.RFP),
			asm.Add.Imm(asm.R2, keyOffset),
			asm.Mov.Reg(asm.R3, asm.RFP),
			asm.Add.Imm(asm.R3, valueOffset),
			asm.Mov.Imm(asm.R4, 0),
			asm.FnMapUpdateElem.Call(),
		}
	}
	ins = append(ins, store(true, asm.R4, asm.R5, asm.R2, asm.R3)...)
	ins = append(ins, store(false, asm.R5, asm.R4, asm.R3, asm.R2)...)
	ins = append(ins,
		asm.Mov.Imm(asm.R0, 0).WithSymbol("exit"),
		asm.Return(),
	)
	return ins
}
