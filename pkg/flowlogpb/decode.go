package flowlogpb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	"l7obs/pkg/model"
)

var ErrMalformed = errors.New("flowlogpb: malformed message")

var l7ProtocolNames = map[uint8]string{
	1: "Other", 20: "HTTP", 21: "HTTP2", 22: "HTTP_TLS", 40: "Dubbo",
	60: "MySQL", 80: "Redis", 100: "Kafka", 101: "MQTT", 120: "DNS",
}

var tapSideNames = map[uint32]string{1: "c", 2: "s", 9: "c-p", 10: "s-p"}

// L7ProtocolName 返回 l7_protocol 取值对应的名字。
func L7ProtocolName(p uint8) string {
	if s, ok := l7ProtocolNames[p]; ok {
		return s
	}
	return "Unknown"
}

// DecodeBatch 解析一次上报的 body：若干条长度前缀的 AppProtoLogsData。
func DecodeBatch(body []byte) ([]model.L7FlowLog, error) {
	var out []model.L7FlowLog
	for len(body) > 0 {
		msg, n := protowire.ConsumeBytes(body)
		if n < 0 {
			return out, fmt.Errorf("%w: frame %d: %v", ErrMalformed, len(out), protowire.ParseError(n))
		}
		body = body[n:]
		row, err := Decode(msg)
		if err != nil {
			return out, fmt.Errorf("frame %d: %w", len(out), err)
		}
		out = append(out, *row)
	}
	return out, nil
}

// Decode 把一条 AppProtoLogsData 展开成一行 L7FlowLog。
func Decode(msg []byte) (*model.L7FlowLog, error) {
	m := &AppProtoLogsData{}
	if err := proto.Unmarshal(msg, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return toRow(m)
}

// toRow 按列映射：各协议的字段落到 request_*/response_* 的通用列上。
func toRow(m *AppProtoLogsData) (*model.L7FlowLog, error) {
	if m.GetBase() == nil {
		return nil, fmt.Errorf("%w: missing base", ErrMalformed)
	}
	row := &model.L7FlowLog{}
	fillBase(row, m.GetBase())

	switch info := m.GetInfo().(type) {
	case *AppProtoLogsData_Http:
		fillHTTP(row, info.Http)
	case *AppProtoLogsData_Dns:
		fillDNS(row, info.Dns)
	case *AppProtoLogsData_Mysql:
		fillMySQL(row, info.Mysql)
	case *AppProtoLogsData_Redis:
		fillRedis(row, info.Redis)
	case *AppProtoLogsData_Kafka:
		fillKafka(row, info.Kafka)
	case *AppProtoLogsData_Mqtt:
		fillMQTT(row, info.Mqtt)
	case *AppProtoLogsData_Dubbo:
		fillDubbo(row, info.Dubbo)
	}
	return row, nil
}

func fillBase(row *model.L7FlowLog, b *AppProtoLogsBaseInfo) {
	row.StartTime = nsTime(b.GetStartTime())
	row.EndTime = nsTime(b.GetEndTime())
	row.FlowID = b.GetFlowId()
	row.TapPort = b.GetTapPort()
	row.VtapID = uint16(b.GetVtapId())
	row.TapType = uint16(b.GetTapType())
	row.IsIPv6 = b.GetIsIpv6()
	row.TapSide = tapSideNames[b.GetTapSide()]
	row.MACSrc = macString(b.GetMacSrc())
	row.MACDst = macString(b.GetMacDst())

	row.IPSrc = ip6String(b.GetIp6Src())
	row.IPDst = ip6String(b.GetIp6Dst())
	if row.IPSrc == "" && row.IPDst == "" {
		row.IPSrc = ip4String(b.GetIpSrc())
		row.IPDst = ip4String(b.GetIpDst())
	}

	row.L3EpcIDSrc = b.GetL3EpcIdSrc()
	row.L3EpcIDDst = b.GetL3EpcIdDst()
	row.PortSrc = uint16(b.GetPortSrc())
	row.PortDst = uint16(b.GetPortDst())
	row.Protocol = uint8(b.GetProtocol())
	row.ReqTCPSeq = b.GetReqTcpSeq()
	row.RespTCPSeq = b.GetRespTcpSeq()
	row.ProcessID0 = b.GetProcessId_0()
	row.ProcessID1 = b.GetProcessId_1()
	row.ProcessKName0 = b.GetProcessKname_0()
	row.ProcessKName1 = b.GetProcessKname_1()
	row.SyscallTraceIDRequest = b.GetSyscallTraceIdRequest()
	row.SyscallTraceIDResponse = b.GetSyscallTraceIdResponse()
	row.SyscallThread0 = b.GetSyscallTraceIdThread_0()
	row.SyscallThread1 = b.GetSyscallTraceIdThread_1()
	row.SyscallCapSeq0 = b.GetSyscallCapSeq_0()
	row.SyscallCapSeq1 = b.GetSyscallCapSeq_1()
	row.SessionID = b.GetSessionId()

	h := b.GetHead()
	row.L7Protocol = uint8(h.GetProto())
	row.L7ProtocolStr = L7ProtocolName(row.L7Protocol)
	row.Type = uint8(h.GetMsgType())
	row.ResponseStatus = uint8(h.GetStatus())
	row.ResponseCode = int32(h.GetCode())
	row.ResponseDurationUS = h.GetRrt() / 1000
}

func fillHTTP(row *model.L7FlowLog, h *HttpInfo) {
	row.RequestID = h.GetStreamId()
	row.Version = h.GetVersion()
	row.RequestType = h.GetMethod()
	row.RequestResource = h.GetPath()
	row.RequestDomain = h.GetHost()
	row.HTTPProxyClient = h.GetClientIp()
	row.XRequestID = h.GetXRequestId()
	row.TraceID = h.GetTraceId()
	row.SpanID = h.GetSpanId()
	row.RequestLength = h.GetReqContentLength()
	row.ResponseLength = h.GetRespContentLength()
}

func fillDNS(row *model.L7FlowLog, d *DnsInfo) {
	row.RequestID = d.GetTransId()
	if d.GetQueryType() != 0 {
		row.RequestType = strconv.FormatUint(uint64(d.GetQueryType()), 10)
	}
	row.RequestResource = d.GetQueryName()
	row.ResponseResult = d.GetAnswers()
}

func fillMySQL(row *model.L7FlowLog, m *MysqlInfo) {
	row.Version = m.GetServerVersion()
	if m.GetCommand() != 0 {
		row.RequestType = strconv.FormatUint(uint64(m.GetCommand()), 10)
	}
	row.RequestResource = m.GetContext()
	if m.GetAffectedRows() != 0 {
		row.ResponseResult = strconv.FormatUint(m.GetAffectedRows(), 10)
	}
	if m.GetErrorCode() != 0 {
		row.ResponseCode = int32(m.GetErrorCode())
	}
	row.ResponseException = m.GetErrorMessage()
}

func fillRedis(row *model.L7FlowLog, r *RedisInfo) {
	row.RequestResource = r.GetRequest()
	row.RequestType = r.GetRequestType()
	row.ResponseResult = r.GetResponse()
	if row.ResponseResult == "" {
		row.ResponseResult = r.GetStatus()
	}
	row.ResponseException = r.GetError()
}

func fillKafka(row *model.L7FlowLog, k *KafkaInfo) {
	row.RequestID = k.GetCorrelationId()
	row.RequestLength = int64(k.GetReqMsgSize())
	if k.GetApiVersion() != 0 {
		row.Version = strconv.FormatUint(uint64(k.GetApiVersion()), 10)
	}
	if k.GetApiKey() != 0 {
		row.RequestType = strconv.FormatUint(uint64(k.GetApiKey()), 10)
	}
	row.RequestDomain = k.GetClientId()
	row.ResponseLength = int64(k.GetRespMsgSize())
}

func fillMQTT(row *model.L7FlowLog, m *MqttInfo) {
	row.RequestType = m.GetMqttType()
	row.RequestLength = int64(m.GetReqMsgSize())
	if m.GetProtoVersion() != 0 {
		row.Version = strconv.FormatUint(uint64(m.GetProtoVersion()), 10)
	}
	row.RequestDomain = m.GetClientId()
	if m.GetErrorCode() != 0 {
		row.ResponseCode = m.GetErrorCode()
	}
	row.ResponseLength = int64(m.GetRespMsgSize())
}

func fillDubbo(row *model.L7FlowLog, d *DubboInfo) {
	row.RequestID = uint32(d.GetId())
	row.RequestDomain = d.GetServiceName()
	row.Version = d.GetServiceVersion()
	row.RequestResource = d.GetMethodName()
	row.RequestLength = int64(d.GetReqMsgSize())
	row.ResponseLength = int64(d.GetRespMsgSize())
}

// nsTime 把纳秒时间戳转成 UTC；0 表示没填。
func nsTime(ns uint64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, int64(ns)).UTC()
}

func macString(v uint64) string {
	mac := make(net.HardwareAddr, 6)
	for i := 5; i >= 0; i-- {
		mac[i] = byte(v)
		v >>= 8
	}
	return mac.String()
}

func ip4String(v uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b).String()
}

func ip6String(b []byte) string {
	a, ok := netip.AddrFromSlice(b)
	if !ok {
		return ""
	}
	return a.String()
}
