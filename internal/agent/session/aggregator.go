// Package session 把同一次交互的请求和响应两条日志合并成一条会话日志。
package session

import (
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"l7obs/internal/agent/protolog"
	"l7obs/internal/metrics"
)

const DefaultWindow = 5 * time.Second

type pending struct {
	data    *protolog.AppProtoLogsData
	arrived time.Time
	seq     uint64
}

// Aggregator 按 EbpfFlowSessionID 配对请求和响应。
// 只有请求会被暂存；响应要么合并进等待中的请求，要么单独输出。
// 不加锁，和解析在同一个 goroutine 里使用。
type Aggregator struct {
	window  time.Duration
	pending map[uint64]pending
	seq     uint64
}

func NewAggregator(window time.Duration) *Aggregator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Aggregator{window: window, pending: make(map[uint64]pending)}
}

// Push 放入一条日志，返回可以输出的日志（可能为空）。
func (a *Aggregator) Push(d *protolog.AppProtoLogsData, now time.Time) []*protolog.AppProtoLogsData {
	switch d.Base.Head.MsgType {
	case protolog.MsgTypeRequest:
		key := d.EbpfFlowSessionID()
		a.seq++
		prev, ok := a.pending[key]
		a.pending[key] = pending{data: d, arrived: now, seq: a.seq}
		if ok {
			// 同一个 key 上又来了请求，前一条不会再有响应了
			metrics.SessionsOrphanTotal.WithLabelValues(metrics.OrphanDuplicateRequest).Inc()
			return []*protolog.AppProtoLogsData{prev.data}
		}
		return nil

	case protolog.MsgTypeResponse:
		key := d.EbpfFlowSessionID()
		req, ok := a.pending[key]
		if !ok {
			metrics.SessionsOrphanTotal.WithLabelValues(metrics.OrphanUnmatchedResponse).Inc()
			return []*protolog.AppProtoLogsData{d}
		}
		delete(a.pending, key)
		if err := req.data.SessionMerge(d); err != nil {
			log.WithError(err).WithField("session_id", key).Debug("会话合并失败，分别输出")
			metrics.SessionsOrphanTotal.WithLabelValues(metrics.OrphanMergeFailed).Add(2)
			return []*protolog.AppProtoLogsData{req.data, d}
		}
		metrics.SessionsMergedTotal.Inc()
		return []*protolog.AppProtoLogsData{req.data}

	default:
		return []*protolog.AppProtoLogsData{d}
	}
}

// Flush 输出等待超过窗口的请求，按到达顺序。
func (a *Aggregator) Flush(now time.Time) []*protolog.AppProtoLogsData {
	var expired []pending
	for key, p := range a.pending {
		if now.Sub(p.arrived) >= a.window {
			expired = append(expired, p)
			delete(a.pending, key)
		}
	}
	metrics.SessionsOrphanTotal.WithLabelValues(metrics.OrphanExpired).Add(float64(len(expired)))
	return sortedData(expired)
}

// Drain 输出所有暂存的请求，用于退出前。
func (a *Aggregator) Drain() []*protolog.AppProtoLogsData {
	all := make([]pending, 0, len(a.pending))
	for _, p := range a.pending {
		all = append(all, p)
	}
	clear(a.pending)
	metrics.SessionsOrphanTotal.WithLabelValues(metrics.OrphanDrained).Add(float64(len(all)))
	return sortedData(all)
}

func (a *Aggregator) Len() int {
	return len(a.pending)
}

func sortedData(ps []pending) []*protolog.AppProtoLogsData {
	if len(ps) == 0 {
		return nil
	}
	slices.SortFunc(ps, func(x, y pending) int {
		if x.seq < y.seq {
			return -1
		}
		if x.seq > y.seq {
			return 1
		}
		return 0
	})
	out := make([]*protolog.AppProtoLogsData, len(ps))
	for i, p := range ps {
		out[i] = p.data
	}
	return out
}
