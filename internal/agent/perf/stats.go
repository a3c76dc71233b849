package perf

import (
	"time"

	"l7obs/internal/agent/protolog"
)

// PerfStats 在一个上报周期内累加，上报时整体取走。
type PerfStats struct {
	ReqCount     uint32
	RespCount    uint32
	ReqErrCount  uint32 // 客户端错误
	RespErrCount uint32 // 服务端错误
	RRTCount     uint32
	RRTSum       time.Duration
	RRTMax       time.Duration
	RRTLast      time.Duration
}

// addRRT 只在请求时间戳不晚于响应时间戳时记录。
func (s *PerfStats) addRRT(reqTS, respTS time.Duration) {
	if respTS < reqTS {
		return
	}
	rrt := respTS - reqTS
	if rrt > s.RRTMax {
		s.RRTMax = rrt
	}
	s.RRTLast = rrt
	s.RRTSum += rrt
	s.RRTCount++
}

// L7PerfStats 是导出给上层的快照，时延单位为微秒。
type L7PerfStats struct {
	RequestCount   uint32
	ResponseCount  uint32
	RRTCount       uint32
	RRTSum         uint64 // us
	RRTMax         uint32 // us
	ErrClientCount uint32
	ErrServerCount uint32
	ErrTimeout     uint32
}

type FlowPerfStats struct {
	L7Protocol protolog.L7Protocol
	L7         L7PerfStats
}

// snapshot 取走 stats 并转换单位；stats 为 nil 时只带超时数。
func snapshot(proto protolog.L7Protocol, stats *PerfStats, timeoutCount uint32) FlowPerfStats {
	out := FlowPerfStats{
		L7Protocol: proto,
		L7:         L7PerfStats{ErrTimeout: timeoutCount},
	}
	if stats == nil {
		return out
	}
	out.L7.RequestCount = stats.ReqCount
	out.L7.ResponseCount = stats.RespCount
	out.L7.RRTCount = stats.RRTCount
	out.L7.RRTSum = uint64(stats.RRTSum.Microseconds())
	out.L7.RRTMax = uint32(stats.RRTMax.Microseconds())
	out.L7.ErrClientCount = stats.ReqErrCount
	out.L7.ErrServerCount = stats.RespErrCount
	return out
}
