package perf

import (
	"errors"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
)

// 解析失败都是可恢复的：说明这个包不属于该协议，调用方换下一个解析器即可。
var (
	ErrInvalidIPProtocol = errors.New("invalid ip protocol")
	ErrZeroPayloadLen    = errors.New("zero payload length")
	ErrHeaderParseFailed = errors.New("header parse failed")
	ErrTruncatedFrame    = errors.New("truncated frame")
	ErrUnclassified      = errors.New("no l7 protocol matched")
)

// L7FlowPerf 是每种应用协议的性能解析器需要实现的接口。
// 实现不加锁，同一条流只会在一个 goroutine 里调用。
type L7FlowPerf interface {
	// Parse 解析一个包。返回错误表示不是该协议，状态不变。
	Parse(pkt *packet.MetaPacket, flowID uint64) error
	// DataUpdated 表示上次导出后统计有变化。
	DataUpdated() bool
	// CopyAndResetData 取走统计并清空，timeoutCount 是外部算好的超时请求数。
	CopyAndResetData(timeoutCount uint32) FlowPerfStats
	// AppProtoHead 返回最近一条消息的分类结果和协议详情，每条消息只返回一次。
	AppProtoHead() (protolog.AppProtoHead, protolog.Info, bool)
}

// HTTP 状态码区间
const (
	httpStatusClientErrorMin = 400
	httpStatusClientErrorMax = 499
	httpStatusServerErrorMin = 500
	httpStatusServerErrorMax = 600
)

// classifyStatus 按状态码区间累加错误数并返回响应状态。
func classifyStatus(stats *PerfStats, code uint16) protolog.L7ResponseStatus {
	switch {
	case code >= httpStatusClientErrorMin && code <= httpStatusClientErrorMax:
		stats.ReqErrCount++
		return protolog.StatusClientError
	case code >= httpStatusServerErrorMin && code <= httpStatusServerErrorMax:
		stats.RespErrCount++
		return protolog.StatusServerError
	default:
		return protolog.StatusOk
	}
}
