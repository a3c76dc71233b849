// Package flowmap 把包按五元组归到流上，决定方向并为每条流维护一个 L7 分发器。
package flowmap

import (
	"net/netip"
	"time"

	"github.com/google/gopacket/layers"
	log "github.com/sirupsen/logrus"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/perf"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
	"l7obs/internal/metrics"
)

type Config struct {
	// ShardID 放在 flow id 的最高字节，多实例时区分来源
	ShardID     uint8
	ServerPorts []uint16
	// 每条流的时延缓存容量
	RRTCacheCapacity int
	// 请求等不到响应多久算超时
	RRTTimeout  time.Duration
	IdleTimeout time.Duration
	MaxFlows    int
}

func DefaultConfig() Config {
	return Config{
		RRTCacheCapacity: 64,
		RRTTimeout:       10 * time.Second,
		IdleTimeout:      60 * time.Second,
		MaxFlows:         65536,
	}
}

type flowKey struct {
	proto      layers.IPProtocol
	clientIP   netip.Addr
	serverIP   netip.Addr
	clientPort uint16
	serverPort uint16
}

// Flow 是一条流的 L7 状态，只在抓包 goroutine 里访问。
type Flow struct {
	ID         uint64
	Proto      layers.IPProtocol
	ClientIP   netip.Addr
	ServerIP   netip.Addr
	ClientPort uint16
	ServerPort uint16

	dispatcher *perf.Dispatcher
	cache      *rrtcache.Cache
	capSeq     uint64
	lastSeen   time.Duration
}

// Parse 把包交给流上的分发器；识别成功时给包分配抓包序号，
// 使请求和紧随的响应落到同一个会话 key 上。
func (f *Flow) Parse(pkt *packet.MetaPacket) error {
	if err := f.dispatcher.Parse(pkt, f.ID); err != nil {
		return err
	}
	if pkt.CapSeq == 0 {
		f.capSeq++
		pkt.CapSeq = f.capSeq
	}
	return nil
}

func (f *Flow) AppProtoHead() (protolog.AppProtoHead, protolog.Info, bool) {
	return f.dispatcher.AppProtoHead()
}

// Report 是一条流在一个导出周期内的统计。
type Report struct {
	Flow  *Flow
	Stats perf.FlowPerfStats
}

type FlowMap struct {
	cfg     Config
	ports   map[uint16]struct{}
	flows   map[flowKey]*Flow
	nextID uint64
	clock  time.Duration
}

func New(cfg Config) *FlowMap {
	def := DefaultConfig()
	if cfg.RRTCacheCapacity <= 0 {
		cfg.RRTCacheCapacity = def.RRTCacheCapacity
	}
	if cfg.RRTTimeout <= 0 {
		cfg.RRTTimeout = def.RRTTimeout
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = def.IdleTimeout
	}
	if cfg.MaxFlows <= 0 {
		cfg.MaxFlows = def.MaxFlows
	}
	ports := make(map[uint16]struct{}, len(cfg.ServerPorts))
	for _, p := range cfg.ServerPorts {
		ports[p] = struct{}{}
	}
	return &FlowMap{cfg: cfg, ports: ports, flows: make(map[flowKey]*Flow)}
}

// Lookup 找到或新建包所属的流，并填写 pkt.Direction 和 pkt.SocketID。
// 流表满时返回 nil。
func (m *FlowMap) Lookup(pkt *packet.MetaPacket) *Flow {
	if pkt.Timestamp > m.clock {
		m.clock = pkt.Timestamp
	}

	dir := m.direction(pkt)
	key := flowKey{proto: pkt.Proto}
	if dir == packet.ClientToServer {
		key.clientIP, key.clientPort = pkt.SrcIP, pkt.SrcPort
		key.serverIP, key.serverPort = pkt.DstIP, pkt.DstPort
	} else {
		key.clientIP, key.clientPort = pkt.DstIP, pkt.DstPort
		key.serverIP, key.serverPort = pkt.SrcIP, pkt.SrcPort
	}

	f, ok := m.flows[key]
	if !ok {
		if len(m.flows) >= m.cfg.MaxFlows {
			metrics.DropsTotal.WithLabelValues(metrics.DropFlowTable).Inc()
			return nil
		}
		m.nextID++
		cache := rrtcache.New(m.cfg.RRTCacheCapacity)
		f = &Flow{
			ID:         uint64(m.cfg.ShardID)<<56 | m.nextID&(1<<56-1),
			Proto:      pkt.Proto,
			ClientIP:   key.clientIP,
			ServerIP:   key.serverIP,
			ClientPort: key.clientPort,
			ServerPort: key.serverPort,
			dispatcher: perf.NewDefaultDispatcher(cache),
			cache:      cache,
		}
		m.flows[key] = f
		log.WithFields(log.Fields{
			"flow_id": f.ID,
			"client":  netip.AddrPortFrom(f.ClientIP, f.ClientPort),
			"server":  netip.AddrPortFrom(f.ServerIP, f.ServerPort),
		}).Debug("新建流")
	}
	f.lastSeen = pkt.Timestamp
	pkt.Direction = dir
	pkt.SocketID = f.ID
	return f
}

// direction 以配置的服务端口判断方向；两端都不是服务端口时，
// 已有的流沿用建流时的方向，新流把较小的端口当作服务端。
func (m *FlowMap) direction(pkt *packet.MetaPacket) packet.Direction {
	_, dstIsServer := m.ports[pkt.DstPort]
	_, srcIsServer := m.ports[pkt.SrcPort]
	switch {
	case dstIsServer && !srcIsServer:
		return packet.ClientToServer
	case srcIsServer && !dstIsServer:
		return packet.ServerToClient
	}
	reverse := flowKey{proto: pkt.Proto, clientIP: pkt.DstIP, clientPort: pkt.DstPort, serverIP: pkt.SrcIP, serverPort: pkt.SrcPort}
	if _, ok := m.flows[reverse]; ok {
		return packet.ServerToClient
	}
	forward := flowKey{proto: pkt.Proto, clientIP: pkt.SrcIP, clientPort: pkt.SrcPort, serverIP: pkt.DstIP, serverPort: pkt.DstPort}
	if _, ok := m.flows[forward]; ok {
		return packet.ClientToServer
	}
	if pkt.SrcPort < pkt.DstPort {
		return packet.ServerToClient
	}
	return packet.ClientToServer
}

// Export 取走所有流的统计。超时数 = 过期的请求 + 被挤出缓存的请求。
func (m *FlowMap) Export() []Report {
	deadline := m.clock - m.cfg.RRTTimeout
	var out []Report
	for _, f := range m.flows {
		timeouts := uint32(f.cache.ExpireBefore(deadline)) + f.cache.TakeEvicted()
		if !f.dispatcher.DataUpdated() && timeouts == 0 {
			continue
		}
		out = append(out, Report{Flow: f, Stats: f.dispatcher.CopyAndResetData(timeouts)})
	}
	return out
}

// EvictIdle 删除空闲超时的流，返回删除的条数。
func (m *FlowMap) EvictIdle() int {
	deadline := m.clock - m.cfg.IdleTimeout
	n := 0
	for k, f := range m.flows {
		if f.lastSeen < deadline {
			delete(m.flows, k)
			n++
		}
	}
	metrics.FlowsEvictedTotal.Add(float64(n))
	metrics.FlowsActive.Set(float64(len(m.flows)))
	return n
}

func (m *FlowMap) Len() int {
	return len(m.flows)
}

// Clock 返回见过的最新包时间戳。
func (m *FlowMap) Clock() time.Duration {
	return m.clock
}
