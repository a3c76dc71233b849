package perf

import (
	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
)

// Dispatcher 按顺序尝试各协议解析器，第一个成功的解析器之后独占这条流。
type Dispatcher struct {
	parsers []L7FlowPerf
	active  L7FlowPerf
}

func NewDispatcher(parsers ...L7FlowPerf) *Dispatcher {
	return &Dispatcher{parsers: parsers}
}

// NewDefaultDispatcher 返回 HTTP、DNS、Redis 顺序的分发器，共用同一个时延缓存。
func NewDefaultDispatcher(cache *rrtcache.Cache) *Dispatcher {
	return NewDispatcher(NewHTTPPerf(cache), NewDNSPerf(cache), NewRedisPerf(cache))
}

func (d *Dispatcher) Parse(pkt *packet.MetaPacket, flowID uint64) error {
	if d.active != nil {
		return d.active.Parse(pkt, flowID)
	}
	for _, p := range d.parsers {
		if err := p.Parse(pkt, flowID); err == nil {
			d.active = p
			return nil
		}
	}
	return ErrUnclassified
}

// Active 返回已经锁定的解析器，未识别时为 nil。
func (d *Dispatcher) Active() L7FlowPerf {
	return d.active
}

func (d *Dispatcher) DataUpdated() bool {
	return d.active != nil && d.active.DataUpdated()
}

func (d *Dispatcher) CopyAndResetData(timeoutCount uint32) FlowPerfStats {
	if d.active == nil {
		return snapshot(protolog.L7ProtocolUnknown, nil, timeoutCount)
	}
	return d.active.CopyAndResetData(timeoutCount)
}

func (d *Dispatcher) AppProtoHead() (protolog.AppProtoHead, protolog.Info, bool) {
	if d.active == nil {
		return protolog.AppProtoHead{}, nil, false
	}
	return d.active.AppProtoHead()
}
