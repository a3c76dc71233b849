package packet

import (
	"net"
	"net/netip"
	"time"

	"github.com/google/gopacket/layers"
)

type Direction uint8

const (
	ClientToServer Direction = iota
	ServerToClient
)

func (d Direction) String() string {
	if d == ServerToClient {
		return "s2c"
	}
	return "c2s"
}

func (d Direction) Reverse() Direction {
	if d == ClientToServer {
		return ServerToClient
	}
	return ClientToServer
}

// MetaPacket 是流表交给 L7 解析的单个包：payload 已经按流归类，方向已确定。
type MetaPacket struct {
	Timestamp time.Duration // 自 Unix epoch 起
	Proto     layers.IPProtocol
	Direction Direction

	SrcMAC  net.HardwareAddr
	DstMAC  net.HardwareAddr
	SrcIP   netip.Addr
	DstIP   netip.Addr
	SrcPort uint16
	DstPort uint16
	TapPort uint32

	// L2End0/L2End1 分别表示 src/dst 一侧是否在本机。
	L2End0 bool
	L2End1 bool

	TCPSeq  uint32
	Payload []byte

	// eBPF 相关字段；AF_PACKET 抓包时由 agent 补齐或保持为 0。
	SocketID       uint64
	ProcessID      uint32
	ProcessName    string
	SyscallTraceID uint64
	ThreadID       uint32
	CapSeq         uint64
}

func (p *MetaPacket) L4Payload() ([]byte, bool) {
	if p == nil || len(p.Payload) == 0 {
		return nil, false
	}
	return p.Payload, true
}
