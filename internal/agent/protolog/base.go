package protolog

import (
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/google/gopacket/layers"

	"l7obs/internal/agent/packet"
)

// BaseInfo 是与具体协议无关的会话信封。不论由哪个方向的包构造，
// 字段始终按 客户端 -> 服务端 的方向摆放，请求和响应可以逐字段合并。
type BaseInfo struct {
	StartTime time.Duration
	EndTime   time.Duration
	FlowID    uint64
	TapPort   uint32
	VtapID    uint16
	TapType   TapType
	IsIPv6    bool
	TapSide   TapSide
	Head      AppProtoHead

	// L2
	MACSrc uint64
	MACDst uint64
	// L3，v4/v6 二选一
	IPSrc netip.Addr
	IPDst netip.Addr
	// L3 EPC ID
	L3EpcIDSrc int32
	L3EpcIDDst int32
	// L4
	PortSrc  uint16
	PortDst  uint16
	Protocol layers.IPProtocol

	// 首个 L7 包的 TCP seq
	ReqTCPSeq  uint32
	RespTCPSeq uint32

	// eBPF
	ProcessID0             uint32
	ProcessID1             uint32
	ProcessKName0          string
	ProcessKName1          string
	SyscallTraceIDRequest  uint64
	SyscallTraceIDResponse uint64
	SyscallTraceIDThread0  uint32
	SyscallTraceIDThread1  uint32
	SyscallCapSeq0         uint64
	SyscallCapSeq1         uint64

	IsVIPInterfaceSrc bool
	IsVIPInterfaceDst bool
}

func NewBaseInfo(pkt *packet.MetaPacket, head AppProtoHead, vtapID uint16, localEpc, remoteEpc int32, isLocalService bool) BaseInfo {
	isSrc := pkt.L2End0
	direction := packet.ServerToClient
	if pkt.L2End1 == isLocalService {
		direction = packet.ClientToServer
	}
	c2s := direction == packet.ClientToServer

	info := BaseInfo{
		StartTime: pkt.Timestamp,
		EndTime:   pkt.Timestamp,
		FlowID:    pkt.SocketID,
		TapPort:   pkt.TapPort,
		VtapID:    vtapID,
		TapType:   TapTypeTor,
		IsIPv6:    pkt.DstIP.Is6() && !pkt.DstIP.Is4In6(),
		TapSide:   TapSideServerProcess,
		Head:      head,

		MACSrc:   macToUint64(pkt.SrcMAC),
		MACDst:   macToUint64(pkt.DstMAC),
		IPSrc:    pkt.SrcIP,
		IPDst:    pkt.DstIP,
		PortSrc:  pkt.SrcPort,
		PortDst:  pkt.DstPort,
		Protocol: pkt.Proto,

		L3EpcIDSrc: remoteEpc,
		L3EpcIDDst: localEpc,
	}
	if isSrc {
		info.TapSide = TapSideClientProcess
		info.ProcessID0 = pkt.ProcessID
		info.ProcessKName0 = pkt.ProcessName
		info.L3EpcIDSrc, info.L3EpcIDDst = localEpc, remoteEpc
	} else {
		info.ProcessID1 = pkt.ProcessID
		info.ProcessKName1 = pkt.ProcessName
	}
	if c2s {
		info.SyscallTraceIDRequest = pkt.SyscallTraceID
		info.ReqTCPSeq = pkt.TCPSeq
		info.SyscallTraceIDThread0 = pkt.ThreadID
		info.SyscallCapSeq0 = pkt.CapSeq
	} else {
		info.SyscallTraceIDResponse = pkt.SyscallTraceID
		info.RespTCPSeq = pkt.TCPSeq
		info.SyscallTraceIDThread1 = pkt.ThreadID
		info.SyscallCapSeq1 = pkt.CapSeq

		info.MACSrc, info.MACDst = info.MACDst, info.MACSrc
		info.IPSrc, info.IPDst = info.IPDst, info.IPSrc
		info.L3EpcIDSrc, info.L3EpcIDDst = info.L3EpcIDDst, info.L3EpcIDSrc
		info.PortSrc, info.PortDst = info.PortDst, info.PortSrc
		info.ProcessID0, info.ProcessID1 = info.ProcessID1, info.ProcessID0
		info.ProcessKName0, info.ProcessKName1 = info.ProcessKName1, info.ProcessKName0
		if info.TapSide == TapSideClientProcess {
			info.TapSide = TapSideServerProcess
		} else {
			info.TapSide = TapSideClientProcess
		}
	}
	return info
}

// Merge 把另一半会话（通常是响应）合并进来。已知的进程信息不会被 0 覆盖。
func (b *BaseInfo) Merge(o BaseInfo) {
	if o.ProcessID0 > 0 {
		b.ProcessID0 = o.ProcessID0
		b.ProcessKName0 = o.ProcessKName0
	}
	if o.ProcessID1 > 0 {
		b.ProcessID1 = o.ProcessID1
		b.ProcessKName1 = o.ProcessKName1
	}
	b.SyscallTraceIDThread1 = o.SyscallTraceIDThread1
	b.SyscallCapSeq1 = o.SyscallCapSeq1
	b.EndTime = max(o.EndTime, b.StartTime)
	b.RespTCPSeq = o.RespTCPSeq
	b.SyscallTraceIDResponse = o.SyscallTraceIDResponse
	b.Head.MsgType = MsgTypeSession
	b.Head.Code = o.Head.Code
	b.Head.Status = o.Head.Status
	b.Head.RRT = o.Head.RRT
}

func (b BaseInfo) String() string {
	return fmt.Sprintf("Timestamp: %v Vtap_id: %d Flow_id: %d TapType: %d TapPort: %d TapSide: %s\n"+
		"\t%s_%s_%d -> %s_%s_%d Proto: %s Seq: %d -> %d VIP: %t -> %t EPC: %d -> %d\n"+
		"\tProcess: %s:%d -> %s:%d Trace-id: %d -> %d Thread: %d -> %d cap_seq: %d -> %d\n"+
		"\tL7Protocol: %s MsgType: %s Status: %s Code: %d Rrt: %d",
		b.StartTime, b.VtapID, b.FlowID, b.TapType, b.TapPort, b.TapSide,
		uint64ToMAC(b.MACSrc), b.IPSrc, b.PortSrc, uint64ToMAC(b.MACDst), b.IPDst, b.PortDst,
		b.Protocol, b.ReqTCPSeq, b.RespTCPSeq, b.IsVIPInterfaceSrc, b.IsVIPInterfaceDst,
		b.L3EpcIDSrc, b.L3EpcIDDst,
		b.ProcessKName0, b.ProcessID0, b.ProcessKName1, b.ProcessID1,
		b.SyscallTraceIDRequest, b.SyscallTraceIDResponse,
		b.SyscallTraceIDThread0, b.SyscallTraceIDThread1,
		b.SyscallCapSeq0, b.SyscallCapSeq1,
		b.Head.Proto, b.Head.MsgType, b.Head.Status, b.Head.Code, b.Head.RRT)
}

func macToUint64(mac net.HardwareAddr) uint64 {
	if len(mac) != 6 {
		return 0
	}
	var v uint64
	for _, b := range mac {
		v = v<<8 | uint64(b)
	}
	return v
}

func uint64ToMAC(v uint64) net.HardwareAddr {
	mac := make(net.HardwareAddr, 6)
	for i := 5; i >= 0; i-- {
		mac[i] = byte(v)
		v >>= 8
	}
	return mac
}
