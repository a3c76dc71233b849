package app

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l7obs/internal/agent/capture"
	"l7obs/internal/metrics"
	"l7obs/pkg/flowlogpb"
	"l7obs/pkg/model"
)

var (
	clientIP = net.IPv4(10, 0, 0, 1)
	serverIP = net.IPv4(10, 0, 0, 2)
	t0       = time.Unix(1700000000, 0)
)

// tcpFrame 构造一个以太网帧；fromClient 决定方向，端口固定为 51000 <-> 8080。
func tcpFrame(t *testing.T, fromClient bool, seq uint32, payload string) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
		DstMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{Version: 4, TTL: 64, Protocol: layers.IPProtocolTCP, SrcIP: clientIP, DstIP: serverIP}
	tcp := &layers.TCP{SrcPort: 51000, DstPort: 8080, Seq: seq, PSH: true, ACK: true, Window: 1024}
	if !fromClient {
		eth.SrcMAC, eth.DstMAC = eth.DstMAC, eth.SrcMAC
		ip.SrcIP, ip.DstIP = serverIP, clientIP
		tcp.SrcPort, tcp.DstPort = 8080, 51000
	}
	require.NoError(t, tcp.SetNetworkLayerForChecksum(ip))
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ip, tcp, gopacket.Payload(payload)))
	return buf.Bytes()
}

type frame struct {
	at   time.Time
	data []byte
}

func httpExchange(t *testing.T) []frame {
	return []frame{
		{t0, tcpFrame(t, true, 100, "GET /index HTTP/1.1\r\nHost: example.com\r\n\r\n")},
		{t0.Add(84051 * time.Microsecond), tcpFrame(t, false, 900, "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n")},
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.ServerPorts = []uint16{8080}
	cfg.LocalIPs = []string{"10.0.0.2"}
	cfg.VtapID = 3
	cfg.ExportInterval = time.Hour
	cfg.MetricsAddr = ""
	return *cfg
}

func TestPipeline_MergesHTTPSession(t *testing.T) {
	cfg := testConfig(t)
	locals, err := localAddrs(cfg.LocalIPs)
	require.NoError(t, err)
	p := newPipeline(cfg, layers.LayerTypeEthernet, nil, locals)
	classified := metrics.AgentPacketsTotal.WithLabelValues(metrics.StageClassified)
	classifiedBefore := testutil.ToFloat64(classified)
	mergedBefore := testutil.ToFloat64(metrics.SessionsMergedTotal)

	now := time.Now()
	for _, f := range httpExchange(t) {
		p.handle(f.data, gopacket.CaptureInfo{Timestamp: f.at}, now)
	}
	// 响应到达时已经合并，不需要等窗口
	assert.Equal(t, 1, p.count)
	assert.Zero(t, p.agg.Len())
	assert.Equal(t, classifiedBefore+2, testutil.ToFloat64(classified))
	assert.Equal(t, mergedBefore+1, testutil.ToFloat64(metrics.SessionsMergedTotal))

	u := p.tick(now, false)
	assert.Equal(t, 1, u.count)
	rows, err := flowlogpb.DecodeBatch(u.logs)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, uint8(2), row.Type)
	assert.Equal(t, "GET", row.RequestType)
	assert.Equal(t, "/index", row.RequestResource)
	assert.Equal(t, "example.com", row.RequestDomain)
	assert.Equal(t, int32(200), row.ResponseCode)
	assert.Equal(t, uint64(84051), row.ResponseDurationUS)
	assert.Equal(t, "10.0.0.1", row.IPSrc)
	assert.Equal(t, "10.0.0.2", row.IPDst)
	assert.Equal(t, uint16(8080), row.PortDst)
	assert.Equal(t, "s-p", row.TapSide)
	assert.Equal(t, uint16(3), row.VtapID)
	assert.Equal(t, uint32(100), row.ReqTCPSeq)
	assert.Equal(t, uint32(900), row.RespTCPSeq)

	require.Len(t, u.perf, 1)
	perf := u.perf[0]
	assert.Equal(t, "HTTP", perf.L7Protocol)
	assert.Equal(t, "10.0.0.1", perf.IPSrc)
	assert.Equal(t, uint16(8080), perf.PortDst)
	assert.Equal(t, uint32(1), perf.RequestCount)
	assert.Equal(t, uint32(1), perf.ResponseCount)
	assert.Equal(t, uint64(84051), perf.RRTSumUS)
}

func TestPipeline_UnansweredRequestFlushedAfterWindow(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionWindow = time.Second
	p := newPipeline(cfg, layers.LayerTypeEthernet, nil, nil)

	now := time.Now()
	p.handle(httpExchange(t)[0].data, gopacket.CaptureInfo{Timestamp: t0}, now)
	assert.Equal(t, 1, p.agg.Len())

	u := p.tick(now, false)
	assert.Zero(t, u.count)

	u = p.tick(now.Add(2*time.Second), false)
	rows, err := flowlogpb.DecodeBatch(u.logs)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint8(0), rows[0].Type)
	assert.Equal(t, "/index", rows[0].RequestResource)
	assert.Zero(t, p.agg.Len())
}

func TestPipeline_SendDropsWhenFull(t *testing.T) {
	p := newPipeline(testConfig(t), layers.LayerTypeEthernet, nil, nil)
	drops := metrics.DropsTotal.WithLabelValues(metrics.DropUploadQueue)
	before := testutil.ToFloat64(drops)
	out := make(chan upload, 1)
	p.send(out, upload{})
	assert.Empty(t, out)

	p.send(out, upload{logs: []byte{1, 0}, count: 1})
	p.send(out, upload{logs: []byte{1, 0}, count: 1})
	assert.Len(t, out, 1)
	assert.Equal(t, before+1, testutil.ToFloat64(drops))
}

func TestLocalAddrs(t *testing.T) {
	got, err := localAddrs([]string{"10.0.0.2", "::ffff:10.0.0.3"})
	require.NoError(t, err)
	assert.Contains(t, got, netip.MustParseAddr("10.0.0.2"))
	assert.Contains(t, got, netip.MustParseAddr("10.0.0.3"))

	_, err = localAddrs([]string{"nope"})
	assert.Error(t, err)

	all, err := localAddrs(nil)
	require.NoError(t, err)
	assert.NotNil(t, all)
}

type collector struct {
	mu   sync.Mutex
	logs []model.L7FlowLog
	perf []model.L7PerfStats
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	c.mu.Lock()
	defer c.mu.Unlock()
	switch r.URL.Path {
	case "/api/v1/upload":
		rows, err := flowlogpb.DecodeBatch(body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		c.logs = append(c.logs, rows...)
	case "/api/v1/perf":
		var rows []model.L7PerfStats
		if err := json.Unmarshal(body, &rows); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		c.perf = append(c.perf, rows...)
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func TestRun_ReplaysPcap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "http.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := pcapgo.NewWriterNanos(f)
	require.NoError(t, w.WriteFileHeader(65535, layers.LinkTypeEthernet))
	for _, fr := range httpExchange(t) {
		ci := gopacket.CaptureInfo{Timestamp: fr.at, CaptureLength: len(fr.data), Length: len(fr.data)}
		require.NoError(t, w.WritePacket(ci, fr.data))
	}
	require.NoError(t, f.Close())

	c := &collector{}
	srv := httptest.NewServer(c)
	defer srv.Close()

	cfg := testConfig(t)
	cfg.PcapFile = path
	cfg.ServerIP = "127.0.0.1"
	cfg.ServerPort = srv.Listener.Addr().(*net.TCPAddr).Port
	cfg.MetricsAddr = "127.0.0.1:0"
	logsOK := metrics.UploadsTotal.WithLabelValues(metrics.KindLogs, metrics.ResultOK)
	perfOK := metrics.UploadsTotal.WithLabelValues(metrics.KindPerf, metrics.ResultOK)
	logsBefore, perfBefore := testutil.ToFloat64(logsOK), testutil.ToFloat64(perfOK)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, Run(ctx, cfg))

	c.mu.Lock()
	defer c.mu.Unlock()
	require.Len(t, c.logs, 1)
	assert.Equal(t, "/index", c.logs[0].RequestResource)
	assert.Equal(t, int32(200), c.logs[0].ResponseCode)
	require.Len(t, c.perf, 1)
	assert.Equal(t, uint32(1), c.perf[0].RRTCount)
	assert.Equal(t, logsBefore+1, testutil.ToFloat64(logsOK))
	assert.Equal(t, perfBefore+1, testutil.ToFloat64(perfOK))
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	assert.Error(t, Run(context.Background(), cfg))
}

type statsSource struct {
	capture.Source
	st  capture.KernelStats
	err error
}

func (s *statsSource) Stats() (capture.KernelStats, error) { return s.st, s.err }

func TestRecordKernelStats(t *testing.T) {
	recordKernelStats(&statsSource{st: capture.KernelStats{Packets: 120, Drops: 3}})
	assert.Equal(t, float64(120), testutil.ToFloat64(metrics.KernelPackets))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.KernelDrops))

	// 读取失败时保留上次的值
	recordKernelStats(&statsSource{err: io.ErrClosedPipe})
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.KernelDrops))
}
