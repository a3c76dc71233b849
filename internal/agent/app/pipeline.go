package app

import (
	"bytes"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/google/gopacket"
	log "github.com/sirupsen/logrus"

	"l7obs/internal/agent/flowmap"
	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/pidmap"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/session"
	"l7obs/internal/metrics"
	"l7obs/pkg/flowlogpb"
	"l7obs/pkg/model"
)

// upload 是发给上报 goroutine 的一批数据，两部分都可能为空。
type upload struct {
	logs  []byte // 长度前缀的 protobuf 记录
	count int
	perf  []model.L7PerfStats
}

// pipeline 串起解码、流表、L7 解析和会话合并。只在抓包 goroutine 中使用。
type pipeline struct {
	cfg      Config
	decoder  *packet.Decoder
	flows    *flowmap.FlowMap
	agg      *session.Aggregator
	resolver *pidmap.Resolver
	locals   map[netip.Addr]struct{}

	pkt   packet.MetaPacket
	buf   bytes.Buffer
	batch []byte
	count int
}

func newPipeline(cfg Config, first gopacket.LayerType, resolver *pidmap.Resolver, locals map[netip.Addr]struct{}) *pipeline {
	return &pipeline{
		cfg:     cfg,
		decoder: packet.NewDecoder(first),
		flows: flowmap.New(flowmap.Config{
			ShardID:          cfg.ShardID,
			ServerPorts:      cfg.ServerPorts,
			RRTCacheCapacity: cfg.RRTCacheCapacity,
			RRTTimeout:       cfg.RRTTimeout,
			IdleTimeout:      cfg.IdleTimeout,
			MaxFlows:         cfg.MaxFlows,
		}),
		agg:      session.NewAggregator(cfg.SessionWindow),
		resolver: resolver,
		locals:   locals,
	}
}

// handle 处理一个链路层帧。
func (p *pipeline) handle(data []byte, ci gopacket.CaptureInfo, now time.Time) {
	pkt := &p.pkt
	metrics.AgentPacketsTotal.WithLabelValues(metrics.StageCaptured).Inc()
	if !p.decoder.Decode(data, ci, pkt) {
		return
	}
	metrics.AgentPacketsTotal.WithLabelValues(metrics.StageDecoded).Inc()
	f := p.flows.Lookup(pkt)
	if f == nil {
		return
	}

	isLocalService := p.isLocal(f.ServerIP)
	pkt.L2End0 = p.isLocal(pkt.SrcIP)
	// dst 一侧是否本机由流方向推出，两端都在本机时也不会判反
	pkt.L2End1 = (pkt.Direction == packet.ClientToServer) == isLocalService
	if p.resolver != nil {
		pkt.ProcessID = p.resolver.Lookup(
			netip.AddrPortFrom(pkt.SrcIP, pkt.SrcPort),
			netip.AddrPortFrom(pkt.DstIP, pkt.DstPort))
		pkt.ProcessName = p.resolver.ProcessName(pkt.ProcessID)
	}

	if err := f.Parse(pkt); err != nil {
		if log.IsLevelEnabled(log.TraceLevel) {
			log.WithFields(log.Fields{"flow_id": f.ID, "dir": pkt.Direction}).WithError(err).Trace("L7 解析失败")
		}
		return
	}
	metrics.AgentPacketsTotal.WithLabelValues(metrics.StageClassified).Inc()
	head, info, ok := f.AppProtoHead()
	if !ok {
		return
	}
	base := protolog.NewBaseInfo(pkt, head, p.cfg.VtapID, p.cfg.LocalEpc, p.cfg.RemoteEpc, isLocalService)
	for _, d := range p.agg.Push(protolog.New(base, info), now) {
		p.encode(d)
	}
}

func (p *pipeline) encode(d *protolog.AppProtoLogsData) {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debug(d.String())
	}
	p.buf.Reset()
	if _, err := d.Encode(&p.buf); err != nil {
		metrics.EncodeErrorsTotal.Inc()
		log.WithError(err).WithField("flow_id", d.Base.FlowID).Warn("编码会话日志失败")
		return
	}
	p.batch = flowlogpb.AppendFrame(p.batch, p.buf.Bytes())
	p.count++
}

// full 表示当前批次已经攒够。
func (p *pipeline) full() bool {
	return p.count >= p.cfg.BatchSize
}

// takeBatch 取走当前批次。
func (p *pipeline) takeBatch() ([]byte, int) {
	b, n := p.batch, p.count
	p.batch, p.count = nil, 0
	return b, n
}

// tick 是每个导出周期的工作：导出流统计，输出超过合并窗口的请求，清理空闲流。
// final 为 true 时输出所有等待中的请求。
func (p *pipeline) tick(now time.Time, final bool) upload {
	reports := p.flows.Export()
	rows := make([]model.L7PerfStats, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, perfRow(r, p.cfg.VtapID, now))
	}

	var out []*protolog.AppProtoLogsData
	if final {
		out = p.agg.Drain()
	} else {
		out = p.agg.Flush(now)
	}
	for _, d := range out {
		p.encode(d)
	}
	evicted := p.flows.EvictIdle()
	metrics.SessionsPending.Set(float64(p.agg.Len()))

	log.WithFields(log.Fields{
		"flows":     p.flows.Len(),
		"evicted":   evicted,
		"pending":   p.agg.Len(),
		"perf_rows": len(rows),
		"logs":      p.count,
	}).Debug("导出周期")

	logs, n := p.takeBatch()
	return upload{logs: logs, count: n, perf: rows}
}

func perfRow(r flowmap.Report, vtapID uint16, now time.Time) model.L7PerfStats {
	s := r.Stats.L7
	return model.L7PerfStats{
		Timestamp:      now,
		VtapID:         vtapID,
		FlowID:         r.Flow.ID,
		IPSrc:          r.Flow.ClientIP.String(),
		IPDst:          r.Flow.ServerIP.String(),
		PortSrc:        r.Flow.ClientPort,
		PortDst:        r.Flow.ServerPort,
		L7Protocol:     r.Stats.L7Protocol.String(),
		RequestCount:   s.RequestCount,
		ResponseCount:  s.ResponseCount,
		RRTCount:       s.RRTCount,
		RRTSumUS:       s.RRTSum,
		RRTMaxUS:       s.RRTMax,
		ErrClientCount: s.ErrClientCount,
		ErrServerCount: s.ErrServerCount,
		ErrTimeout:     s.ErrTimeout,
	}
}

func (p *pipeline) isLocal(a netip.Addr) bool {
	_, ok := p.locals[a.Unmap()]
	return ok
}

// localAddrs 返回配置的本机地址；没有配置时取所有网卡地址。
func localAddrs(configured []string) (map[netip.Addr]struct{}, error) {
	out := make(map[netip.Addr]struct{})
	if len(configured) > 0 {
		for _, s := range configured {
			a, err := netip.ParseAddr(s)
			if err != nil {
				return nil, fmt.Errorf("local_ips 中的地址无效：%w", err)
			}
			out[a.Unmap()] = struct{}{}
		}
		return out, nil
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, fmt.Errorf("读取本机地址失败：%w", err)
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if a, ok := netip.AddrFromSlice(ipnet.IP); ok {
			out[a.Unmap()] = struct{}{}
		}
	}
	return out, nil
}
