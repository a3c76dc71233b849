package protolog

import (
	"fmt"

	"l7obs/internal/agent/packet"
)

type L7Protocol uint8

// 取值与服务端 l7_protocol 列保持一致。
const (
	L7ProtocolUnknown  L7Protocol = 0
	L7ProtocolOther    L7Protocol = 1
	L7ProtocolHTTP1    L7Protocol = 20
	L7ProtocolHTTP2    L7Protocol = 21
	L7ProtocolHTTP1TLS L7Protocol = 22
	L7ProtocolDubbo    L7Protocol = 40
	L7ProtocolMySQL    L7Protocol = 60
	L7ProtocolRedis    L7Protocol = 80
	L7ProtocolKafka    L7Protocol = 100
	L7ProtocolMQTT     L7Protocol = 101
	L7ProtocolDNS      L7Protocol = 120
)

func (p L7Protocol) String() string {
	switch p {
	case L7ProtocolOther:
		return "Other"
	case L7ProtocolHTTP1:
		return "HTTP"
	case L7ProtocolHTTP2:
		return "HTTP2"
	case L7ProtocolHTTP1TLS:
		return "HTTP_TLS"
	case L7ProtocolDubbo:
		return "Dubbo"
	case L7ProtocolMySQL:
		return "MySQL"
	case L7ProtocolRedis:
		return "Redis"
	case L7ProtocolKafka:
		return "Kafka"
	case L7ProtocolMQTT:
		return "MQTT"
	case L7ProtocolDNS:
		return "DNS"
	default:
		return "Unknown"
	}
}

type LogMessageType uint8

const (
	MsgTypeRequest LogMessageType = iota
	MsgTypeResponse
	MsgTypeSession
	MsgTypeOther
	MsgTypeMax
)

func MsgTypeFromDirection(d packet.Direction) LogMessageType {
	if d == packet.ServerToClient {
		return MsgTypeResponse
	}
	return MsgTypeRequest
}

func (t LogMessageType) String() string {
	switch t {
	case MsgTypeRequest:
		return "Request"
	case MsgTypeResponse:
		return "Response"
	case MsgTypeSession:
		return "Session"
	case MsgTypeOther:
		return "Other"
	default:
		return fmt.Sprintf("LogMessageType(%d)", uint8(t))
	}
}

type L7ResponseStatus uint8

// Error 已废弃，保留取值。
const (
	StatusOk L7ResponseStatus = iota
	StatusError
	StatusNotExist
	StatusServerError
	StatusClientError
)

func (s L7ResponseStatus) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusError:
		return "Error"
	case StatusNotExist:
		return "NotExist"
	case StatusServerError:
		return "ServerError"
	case StatusClientError:
		return "ClientError"
	default:
		return fmt.Sprintf("L7ResponseStatus(%d)", uint8(s))
	}
}

type TapSide uint8

const (
	TapSideRest          TapSide = 0
	TapSideClient        TapSide = 1
	TapSideServer        TapSide = 2
	TapSideClientProcess TapSide = TapSideClient | 0x08
	TapSideServerProcess TapSide = TapSideServer | 0x08
)

func (s TapSide) String() string {
	switch s {
	case TapSideClient:
		return "c"
	case TapSideServer:
		return "s"
	case TapSideClientProcess:
		return "c-p"
	case TapSideServerProcess:
		return "s-p"
	default:
		return "rest"
	}
}

type TapType uint16

const TapTypeTor TapType = 3

// AppProtoHead 是单条 L7 消息的分类结果。
type AppProtoHead struct {
	Proto   L7Protocol
	MsgType LogMessageType
	Status  L7ResponseStatus
	Code    uint16 // HTTP 1xx-5xx，DNS rcode
	RRT     uint64 // 微秒，没有关联到请求时为 0
	Version uint8
}
