package model

import "time"

// L7FlowLog 是服务端存储和查询的一行会话日志，请求和响应合并后的结果。
// 各协议的详情统一映射到 request_* / response_* 几列。
type L7FlowLog struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	FlowID    uint64    `json:"flow_id"`
	SessionID uint64    `json:"session_id"`
	VtapID    uint16    `json:"vtap_id"`
	TapPort   uint32    `json:"tap_port"`
	TapType   uint16    `json:"tap_type"`
	TapSide   string    `json:"tap_side"`

	MACSrc     string `json:"mac_src"`
	MACDst     string `json:"mac_dst"`
	IPSrc      string `json:"ip_src"`
	IPDst      string `json:"ip_dst"`
	IsIPv6     bool   `json:"is_ipv6"`
	L3EpcIDSrc int32  `json:"l3_epc_id_src"`
	L3EpcIDDst int32  `json:"l3_epc_id_dst"`
	PortSrc    uint16 `json:"port_src"`
	PortDst    uint16 `json:"port_dst"`
	Protocol   uint8  `json:"protocol"`
	ReqTCPSeq  uint32 `json:"req_tcp_seq"`
	RespTCPSeq uint32 `json:"resp_tcp_seq"`

	L7Protocol         uint8  `json:"l7_protocol"`
	L7ProtocolStr      string `json:"l7_protocol_str"`
	Version            string `json:"version"`
	Type               uint8  `json:"type"` // 0 请求 1 响应 2 会话
	RequestType        string `json:"request_type"`
	RequestDomain      string `json:"request_domain"`
	RequestResource    string `json:"request_resource"`
	RequestID          uint32 `json:"request_id"`
	ResponseStatus     uint8  `json:"response_status"`
	ResponseCode       int32  `json:"response_code"`
	ResponseException  string `json:"response_exception"`
	ResponseResult     string `json:"response_result"`
	ResponseDurationUS uint64 `json:"response_duration_us"`
	RequestLength      int64  `json:"request_length"`
	ResponseLength     int64  `json:"response_length"`

	HTTPProxyClient string `json:"http_proxy_client"`
	XRequestID      string `json:"x_request_id"`
	TraceID         string `json:"trace_id"`
	SpanID          string `json:"span_id"`

	ProcessID0             uint32 `json:"process_id_0"`
	ProcessID1             uint32 `json:"process_id_1"`
	ProcessKName0          string `json:"process_kname_0"`
	ProcessKName1          string `json:"process_kname_1"`
	SyscallTraceIDRequest  uint64 `json:"syscall_trace_id_request"`
	SyscallTraceIDResponse uint64 `json:"syscall_trace_id_response"`
	SyscallThread0         uint32 `json:"syscall_thread_0"`
	SyscallThread1         uint32 `json:"syscall_thread_1"`
	SyscallCapSeq0         uint32 `json:"syscall_cap_seq_0"`
	SyscallCapSeq1         uint32 `json:"syscall_cap_seq_1"`
}

// L7PerfStats 是一条流在一个上报周期内的 L7 性能统计。
type L7PerfStats struct {
	Timestamp  time.Time `json:"timestamp"`
	VtapID     uint16    `json:"vtap_id"`
	FlowID     uint64    `json:"flow_id"`
	IPSrc      string    `json:"ip_src"`
	IPDst      string    `json:"ip_dst"`
	PortSrc    uint16    `json:"port_src"`
	PortDst    uint16    `json:"port_dst"`
	L7Protocol string    `json:"l7_protocol"`

	RequestCount   uint32 `json:"request_count"`
	ResponseCount  uint32 `json:"response_count"`
	RRTCount       uint32 `json:"rrt_count"`
	RRTSumUS       uint64 `json:"rrt_sum_us"`
	RRTMaxUS       uint32 `json:"rrt_max_us"`
	ErrClientCount uint32 `json:"err_client_count"`
	ErrServerCount uint32 `json:"err_server_count"`
	ErrTimeout     uint32 `json:"err_timeout"`
}

// L7Query 是查询会话日志的过滤条件，零值字段不参与过滤。
type L7Query struct {
	IP     string
	PID    uint32
	FlowID uint64
	Limit  int
}
