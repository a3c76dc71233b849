package protolog

import (
	"fmt"

	"l7obs/pkg/flowlogpb"
)

// Info 是各协议日志详情的和类型。实现仅限本包内的几种，新增协议需要同时
// 补上 mergeInfo 里的分支。
type Info interface {
	Protocol() L7Protocol
	// SessionID 返回协议自带的会话关联 ID；没有或为 0 时返回 false。
	SessionID() (uint32, bool)
	String() string

	fillPB(m *flowlogpb.AppProtoLogsData)
}

type HTTPInfo struct {
	Proto    L7Protocol // HTTP1 / HTTP2 / HTTP1TLS
	StreamID uint32
	Version  string
	Method   string
	Path     string
	Host     string
	ClientIP string

	XRequestID string
	TraceID    string
	SpanID     string

	ReqContentLength  int64
	RespContentLength int64
}

func (h *HTTPInfo) Protocol() L7Protocol { return h.Proto }

func (h *HTTPInfo) SessionID() (uint32, bool) {
	if h.Proto == L7ProtocolHTTP2 && h.StreamID > 0 {
		return h.StreamID, true
	}
	return 0, false
}

func (h *HTTPInfo) merge(o *HTTPInfo) {
	if h.Version == "" {
		h.Version = o.Version
	}
	if h.Method == "" {
		h.Method = o.Method
	}
	if h.Path == "" {
		h.Path = o.Path
	}
	if h.Host == "" {
		h.Host = o.Host
	}
	if h.XRequestID == "" {
		h.XRequestID = o.XRequestID
	}
	if h.TraceID == "" {
		h.TraceID = o.TraceID
		h.SpanID = o.SpanID
	}
	if o.RespContentLength != 0 {
		h.RespContentLength = o.RespContentLength
	}
}

func (h *HTTPInfo) String() string {
	return fmt.Sprintf("HttpInfo { proto: %s, stream_id: %d, version: %q, method: %q, path: %q, host: %q, "+
		"x_request_id: %q, trace_id: %q, span_id: %q, req_len: %d, resp_len: %d }",
		h.Proto, h.StreamID, h.Version, h.Method, h.Path, h.Host,
		h.XRequestID, h.TraceID, h.SpanID, h.ReqContentLength, h.RespContentLength)
}

func (h *HTTPInfo) fillPB(m *flowlogpb.AppProtoLogsData) {
	m.Info = &flowlogpb.AppProtoLogsData_Http{Http: &flowlogpb.HttpInfo{
		StreamId:          h.StreamID,
		Version:           validUTF8(h.Version),
		Method:            validUTF8(h.Method),
		Path:              validUTF8(h.Path),
		Host:              validUTF8(h.Host),
		ClientIp:          validUTF8(h.ClientIP),
		XRequestId:        validUTF8(h.XRequestID),
		TraceId:           validUTF8(h.TraceID),
		SpanId:            validUTF8(h.SpanID),
		ReqContentLength:  h.ReqContentLength,
		RespContentLength: h.RespContentLength,
	}}
}

type DNSInfo struct {
	TransID   uint16
	QueryType uint16
	QueryName string
	Answers   string
}

func (d *DNSInfo) Protocol() L7Protocol { return L7ProtocolDNS }

func (d *DNSInfo) SessionID() (uint32, bool) {
	if d.TransID > 0 {
		return uint32(d.TransID), true
	}
	return 0, false
}

func (d *DNSInfo) merge(o *DNSInfo) {
	if d.QueryName == "" {
		d.QueryName = o.QueryName
		d.QueryType = o.QueryType
	}
	if o.Answers != "" {
		d.Answers = o.Answers
	}
}

func (d *DNSInfo) String() string {
	return fmt.Sprintf("DnsInfo { trans_id: %d, query_type: %d, query_name: %q, answers: %q }",
		d.TransID, d.QueryType, d.QueryName, d.Answers)
}

func (d *DNSInfo) fillPB(m *flowlogpb.AppProtoLogsData) {
	m.Info = &flowlogpb.AppProtoLogsData_Dns{Dns: &flowlogpb.DnsInfo{
		TransId:   uint32(d.TransID),
		QueryType: uint32(d.QueryType),
		QueryName: validUTF8(d.QueryName),
		Answers:   validUTF8(d.Answers),
	}}
}

type MySQLInfo struct {
	ProtocolVersion uint8
	ServerVersion   string
	ServerThreadID  uint32
	Command         uint8
	Context         string
	ResponseCode    uint8
	AffectedRows    uint64
	ErrorCode       uint16
	ErrorMessage    string
}

func (m *MySQLInfo) Protocol() L7Protocol { return L7ProtocolMySQL }

func (m *MySQLInfo) SessionID() (uint32, bool) { return 0, false }

func (m *MySQLInfo) merge(o *MySQLInfo) {
	if m.ServerVersion == "" {
		m.ServerVersion = o.ServerVersion
		m.ProtocolVersion = o.ProtocolVersion
		m.ServerThreadID = o.ServerThreadID
	}
	m.ResponseCode = o.ResponseCode
	m.AffectedRows = o.AffectedRows
	m.ErrorCode = o.ErrorCode
	m.ErrorMessage = o.ErrorMessage
}

func (m *MySQLInfo) String() string {
	return fmt.Sprintf("MysqlInfo { command: %d, context: %q, response_code: %d, affected_rows: %d, error: %d %q }",
		m.Command, m.Context, m.ResponseCode, m.AffectedRows, m.ErrorCode, m.ErrorMessage)
}

func (m *MySQLInfo) fillPB(pb *flowlogpb.AppProtoLogsData) {
	pb.Info = &flowlogpb.AppProtoLogsData_Mysql{Mysql: &flowlogpb.MysqlInfo{
		ProtocolVersion: uint32(m.ProtocolVersion),
		ServerVersion:   validUTF8(m.ServerVersion),
		ServerThreadId:  m.ServerThreadID,
		Command:         uint32(m.Command),
		Context:         validUTF8(m.Context),
		ResponseCode:    uint32(m.ResponseCode),
		AffectedRows:    m.AffectedRows,
		ErrorCode:       uint32(m.ErrorCode),
		ErrorMessage:    validUTF8(m.ErrorMessage),
	}}
}

type RedisInfo struct {
	Request     string
	RequestType string
	Response    string
	Status      string
	Error       string
}

func (r *RedisInfo) Protocol() L7Protocol { return L7ProtocolRedis }

func (r *RedisInfo) SessionID() (uint32, bool) { return 0, false }

func (r *RedisInfo) merge(o *RedisInfo) {
	if r.Request == "" {
		r.Request = o.Request
		r.RequestType = o.RequestType
	}
	r.Response = o.Response
	r.Status = o.Status
	r.Error = o.Error
}

func (r *RedisInfo) String() string {
	return fmt.Sprintf("RedisInfo { request: %q, request_type: %q, response: %q, status: %q, error: %q }",
		r.Request, r.RequestType, r.Response, r.Status, r.Error)
}

func (r *RedisInfo) fillPB(m *flowlogpb.AppProtoLogsData) {
	m.Info = &flowlogpb.AppProtoLogsData_Redis{Redis: &flowlogpb.RedisInfo{
		Request:     validUTF8(r.Request),
		RequestType: validUTF8(r.RequestType),
		Response:    validUTF8(r.Response),
		Status:      validUTF8(r.Status),
		Error:       validUTF8(r.Error),
	}}
}

type KafkaInfo struct {
	CorrelationID uint32
	ReqMsgSize    int32
	APIVersion    uint16
	APIKey        uint16
	ClientID      string
	RespMsgSize   int32
}

func (k *KafkaInfo) Protocol() L7Protocol { return L7ProtocolKafka }

func (k *KafkaInfo) SessionID() (uint32, bool) {
	if k.CorrelationID > 0 {
		return k.CorrelationID, true
	}
	return 0, false
}

func (k *KafkaInfo) merge(o *KafkaInfo) {
	k.RespMsgSize = o.RespMsgSize
}

func (k *KafkaInfo) String() string {
	return fmt.Sprintf("KafkaInfo { correlation_id: %d, api_key: %d, api_version: %d, client_id: %q, req: %d, resp: %d }",
		k.CorrelationID, k.APIKey, k.APIVersion, k.ClientID, k.ReqMsgSize, k.RespMsgSize)
}

func (k *KafkaInfo) fillPB(m *flowlogpb.AppProtoLogsData) {
	m.Info = &flowlogpb.AppProtoLogsData_Kafka{Kafka: &flowlogpb.KafkaInfo{
		CorrelationId: k.CorrelationID,
		ReqMsgSize:    k.ReqMsgSize,
		ApiVersion:    uint32(k.APIVersion),
		ApiKey:        uint32(k.APIKey),
		ClientId:      validUTF8(k.ClientID),
		RespMsgSize:   k.RespMsgSize,
	}}
}

type MQTTInfo struct {
	MQTTType     string
	ReqMsgSize   int32
	ProtoVersion uint8
	ClientID     string
	ErrorCode    int32
	RespMsgSize  int32
}

func (m *MQTTInfo) Protocol() L7Protocol { return L7ProtocolMQTT }

func (m *MQTTInfo) SessionID() (uint32, bool) { return 0, false }

func (m *MQTTInfo) merge(o *MQTTInfo) {
	m.ErrorCode = o.ErrorCode
	m.RespMsgSize = o.RespMsgSize
}

func (m *MQTTInfo) String() string {
	return fmt.Sprintf("MqttInfo { type: %q, version: %d, client_id: %q, error_code: %d, req: %d, resp: %d }",
		m.MQTTType, m.ProtoVersion, m.ClientID, m.ErrorCode, m.ReqMsgSize, m.RespMsgSize)
}

func (m *MQTTInfo) fillPB(pb *flowlogpb.AppProtoLogsData) {
	pb.Info = &flowlogpb.AppProtoLogsData_Mqtt{Mqtt: &flowlogpb.MqttInfo{
		MqttType:     validUTF8(m.MQTTType),
		ReqMsgSize:   m.ReqMsgSize,
		ProtoVersion: uint32(m.ProtoVersion),
		ClientId:     validUTF8(m.ClientID),
		ErrorCode:    m.ErrorCode,
		RespMsgSize:  m.RespMsgSize,
	}}
}

type DubboInfo struct {
	SerialID       uint8
	Type           uint8
	ID             int64
	ServiceName    string
	ServiceVersion string
	MethodName     string
	ReqMsgSize     int32
	RespMsgSize    int32
}

func (d *DubboInfo) Protocol() L7Protocol { return L7ProtocolDubbo }

func (d *DubboInfo) SessionID() (uint32, bool) {
	if d.SerialID > 0 {
		return uint32(d.SerialID), true
	}
	return 0, false
}

func (d *DubboInfo) merge(o *DubboInfo) {
	d.RespMsgSize = o.RespMsgSize
}

func (d *DubboInfo) String() string {
	return fmt.Sprintf("DubboInfo { serial_id: %d, type: %d, id: %d, service: %q@%q, method: %q, req: %d, resp: %d }",
		d.SerialID, d.Type, d.ID, d.ServiceName, d.ServiceVersion, d.MethodName, d.ReqMsgSize, d.RespMsgSize)
}

func (d *DubboInfo) fillPB(m *flowlogpb.AppProtoLogsData) {
	m.Info = &flowlogpb.AppProtoLogsData_Dubbo{Dubbo: &flowlogpb.DubboInfo{
		SerialId:       uint32(d.SerialID),
		Type:           uint32(d.Type),
		Id:             d.ID,
		ServiceName:    validUTF8(d.ServiceName),
		ServiceVersion: validUTF8(d.ServiceVersion),
		MethodName:     validUTF8(d.MethodName),
		ReqMsgSize:     d.ReqMsgSize,
		RespMsgSize:    d.RespMsgSize,
	}}
}
