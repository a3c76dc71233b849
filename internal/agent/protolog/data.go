package protolog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"google.golang.org/protobuf/proto"

	"l7obs/pkg/flowlogpb"
)

var (
	ErrInfoMismatch     = errors.New("protolog: merging logs of different protocols")
	ErrIPFamilyMismatch = errors.New("protolog: ip_src and ip_dst address families differ")
	ErrMissingInfo      = errors.New("protolog: record has no protocol info")
)

// AppProtoLogsData 是最终导出的单元：信封 + 协议详情。
type AppProtoLogsData struct {
	Base BaseInfo
	Info Info
}

func New(base BaseInfo, info Info) *AppProtoLogsData {
	return &AppProtoLogsData{Base: base, Info: info}
}

// SessionMerge 把同一次交互的另一半合并进来，调用方保证 d 是先到的那条。
// 协议不一致时返回 ErrInfoMismatch，d 保持不变。
func (d *AppProtoLogsData) SessionMerge(o *AppProtoLogsData) error {
	if err := mergeInfo(d.Info, o.Info); err != nil {
		return err
	}
	d.Base.Merge(o.Base)
	return nil
}

func mergeInfo(dst, src Info) error {
	if dst == nil || src == nil {
		return ErrMissingInfo
	}
	switch m := dst.(type) {
	case *HTTPInfo:
		o, ok := src.(*HTTPInfo)
		if !ok || o.Proto != m.Proto {
			break
		}
		m.merge(o)
		return nil
	case *DNSInfo:
		o, ok := src.(*DNSInfo)
		if !ok {
			break
		}
		m.merge(o)
		return nil
	case *MySQLInfo:
		o, ok := src.(*MySQLInfo)
		if !ok {
			break
		}
		m.merge(o)
		return nil
	case *RedisInfo:
		o, ok := src.(*RedisInfo)
		if !ok {
			break
		}
		m.merge(o)
		return nil
	case *KafkaInfo:
		o, ok := src.(*KafkaInfo)
		if !ok {
			break
		}
		m.merge(o)
		return nil
	case *MQTTInfo:
		o, ok := src.(*MQTTInfo)
		if !ok {
			break
		}
		m.merge(o)
		return nil
	case *DubboInfo:
		o, ok := src.(*DubboInfo)
		if !ok {
			break
		}
		m.merge(o)
		return nil
	}
	return fmt.Errorf("%w: %s <- %s", ErrInfoMismatch, dst.Protocol(), src.Protocol())
}

// EbpfFlowSessionID 计算请求/响应配对用的聚合 key：
// 高 32 位取 flow_id 的最高字节（cpu id）和低 24 位（socket id 增量），
// 低 32 位是协议号和 24 位的关联值。关联值优先用协议自带的会话 ID，
// 没有时用抓包序号；请求的序号 +1，这样紧挨着的请求和响应落在同一个 key 上。
func (d *AppProtoLogsData) EbpfFlowSessionID() uint64 {
	flowID := d.Base.FlowID
	flowIDPart := (flowID >> 56 << 56) | (flowID << 40 >> 8)
	proto := uint64(d.Base.Head.Proto) << 24

	if d.Info != nil {
		if sid, ok := d.Info.SessionID(); ok {
			return flowIDPart | proto | (uint64(sid) & 0xffffff)
		}
	}
	capSeq := max(d.Base.SyscallCapSeq0, d.Base.SyscallCapSeq1)
	if d.Base.Head.MsgType == MsgTypeRequest {
		capSeq++
	}
	return flowIDPart | proto | (capSeq & 0xffffff)
}

// Encode 把记录的 protobuf 编码追加到 buf，返回写入的字节数。
func (d *AppProtoLogsData) Encode(buf *bytes.Buffer) (int, error) {
	m, err := d.ToPB()
	if err != nil {
		return 0, err
	}
	b, err := proto.Marshal(m)
	if err != nil {
		return 0, err
	}
	return buf.Write(b)
}

// ToPB 转成上报用的 flowlogpb.AppProtoLogsData。
func (d *AppProtoLogsData) ToPB() (*flowlogpb.AppProtoLogsData, error) {
	if d.Info == nil {
		return nil, ErrMissingInfo
	}
	base, err := d.basePB()
	if err != nil {
		return nil, err
	}
	m := &flowlogpb.AppProtoLogsData{Base: base}
	d.Info.fillPB(m)
	return m, nil
}

func (d *AppProtoLogsData) basePB() (*flowlogpb.AppProtoLogsBaseInfo, error) {
	f := &d.Base
	b := &flowlogpb.AppProtoLogsBaseInfo{
		StartTime: uint64(f.StartTime),
		EndTime:   uint64(f.EndTime),
		FlowId:    f.FlowID,
		TapPort:   f.TapPort,
		VtapId:    uint32(f.VtapID),
		TapType:   uint32(f.TapType),
		IsIpv6:    f.IsIPv6,
		TapSide:   uint32(f.TapSide),
		Head: &flowlogpb.AppProtoHead{
			Proto:   uint32(f.Head.Proto),
			MsgType: uint32(f.Head.MsgType),
			Status:  uint32(f.Head.Status),
			Code:    uint32(f.Head.Code),
			Rrt:     f.Head.RRT * 1000,
		},
		MacSrc: f.MACSrc,
		MacDst: f.MACDst,

		L3EpcIdSrc:        f.L3EpcIDSrc,
		L3EpcIdDst:        f.L3EpcIDDst,
		PortSrc:           uint32(f.PortSrc),
		PortDst:           uint32(f.PortDst),
		Protocol:          uint32(f.Protocol),
		IsVipInterfaceSrc: f.IsVIPInterfaceSrc,
		IsVipInterfaceDst: f.IsVIPInterfaceDst,
		ReqTcpSeq:         f.ReqTCPSeq,
		RespTcpSeq:        f.RespTCPSeq,

		ProcessId_0:            f.ProcessID0,
		ProcessId_1:            f.ProcessID1,
		ProcessKname_0:         validUTF8(f.ProcessKName0),
		ProcessKname_1:         validUTF8(f.ProcessKName1),
		SyscallTraceIdRequest:  f.SyscallTraceIDRequest,
		SyscallTraceIdResponse: f.SyscallTraceIDResponse,
		SyscallTraceIdThread_0: f.SyscallTraceIDThread0,
		SyscallTraceIdThread_1: f.SyscallTraceIDThread1,
		// 线上格式只留低 32 位
		SyscallCapSeq_0: uint32(f.SyscallCapSeq0),
		SyscallCapSeq_1: uint32(f.SyscallCapSeq1),
		SessionId:       d.EbpfFlowSessionID(),
	}
	if err := setIPs(b, f.IPSrc, f.IPDst); err != nil {
		return nil, err
	}
	return b, nil
}

func setIPs(b *flowlogpb.AppProtoLogsBaseInfo, src, dst netip.Addr) error {
	src, dst = src.Unmap(), dst.Unmap()
	srcV4 := !src.IsValid() || src.Is4()
	dstV4 := !dst.IsValid() || dst.Is4()
	switch {
	case srcV4 && dstV4:
		b.IpSrc, b.IpDst = ipv4ToUint32(src), ipv4ToUint32(dst)
		return nil
	case !srcV4 && !dstV4:
		s, t := src.As16(), dst.As16()
		b.Ip6Src, b.Ip6Dst = s[:], t[:]
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrIPFamilyMismatch, src, dst)
	}
}

// validUTF8 proto3 的 string 字段必须是合法 UTF-8，抓到的载荷不一定是。
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func ipv4ToUint32(a netip.Addr) uint32 {
	if !a.IsValid() {
		return 0
	}
	v := a.As4()
	return binary.BigEndian.Uint32(v[:])
}

func (d *AppProtoLogsData) String() string {
	info := "<nil>"
	if d.Info != nil {
		info = d.Info.String()
	}
	return d.Base.String() + "\n\t" + info
}
