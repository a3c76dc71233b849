package perf

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2/hpack"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
)

const testFlowID = 0x0100000000001234

func tcpPacket(dir packet.Direction, ts time.Duration, payload []byte) *packet.MetaPacket {
	return &packet.MetaPacket{
		Timestamp: ts,
		Proto:     layers.IPProtocolTCP,
		Direction: dir,
		Payload:   payload,
	}
}

func h2Frame(typ, flags uint8, streamID uint32, payload []byte) []byte {
	n := len(payload)
	b := []byte{byte(n >> 16), byte(n >> 8), byte(n), typ, flags, 0, 0, 0, 0}
	binary.BigEndian.PutUint32(b[5:], streamID)
	return append(b, payload...)
}

func hpackBlock(t *testing.T, enc *hpack.Encoder, buf *bytes.Buffer, fields ...hpack.HeaderField) []byte {
	t.Helper()
	buf.Reset()
	for _, f := range fields {
		require.NoError(t, enc.WriteField(f))
	}
	return append([]byte(nil), buf.Bytes()...)
}

func freshBlock(t *testing.T, fields ...hpack.HeaderField) []byte {
	var buf bytes.Buffer
	return hpackBlock(t, hpack.NewEncoder(&buf), &buf, fields...)
}

func requestFields(path string) []hpack.HeaderField {
	return []hpack.HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":scheme", Value: "http"},
		{Name: ":path", Value: path},
		{Name: ":authority", Value: "svc.local"},
	}
}

func statusField(code string) hpack.HeaderField {
	return hpack.HeaderField{Name: ":status", Value: code}
}

func TestHTTPPerf_HTTP1RoundTrip(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, []byte("GET /x HTTP/1.1\r\nHost: a\r\n\r\n")), testFlowID))
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 84051000*time.Nanosecond, []byte("HTTP/1.1 200 OK\r\n\r\n")), testFlowID))

	require.NotNil(t, h.stats)
	assert.Equal(t, uint32(1), h.stats.ReqCount)
	assert.Equal(t, uint32(1), h.stats.RespCount)
	assert.Equal(t, uint32(1), h.stats.RRTCount)
	assert.Equal(t, 84051*time.Microsecond, h.stats.RRTMax)
	assert.Equal(t, 84051*time.Microsecond, h.stats.RRTSum)
	assert.Equal(t, 84051*time.Microsecond, h.stats.RRTLast)

	require.True(t, h.DataUpdated())
	s := h.CopyAndResetData(0)
	assert.Equal(t, protolog.L7ProtocolHTTP1, s.L7Protocol)
	assert.Equal(t, L7PerfStats{
		RequestCount:  1,
		ResponseCount: 1,
		RRTCount:      1,
		RRTSum:        84051,
		RRTMax:        84051,
	}, s.L7)
}

func TestHTTPPerf_RejectsMalformedRequestLine(t *testing.T) {
	cache := rrtcache.New(rrtcache.DefaultCapacity)
	h := NewHTTPPerf(cache)

	for _, payload := range []string{
		"GET /x\r\n\r\n",
		"GET /x HTTP/2.0\r\n\r\n",
		"FETCH /x HTTP/1.1\r\n\r\n",
		"GET /x HTTP/1.1",
	} {
		err := h.Parse(tcpPacket(packet.ClientToServer, 0, []byte(payload)), testFlowID)
		assert.ErrorIs(t, err, ErrHeaderParseFailed, payload)
	}
	assert.False(t, h.DataUpdated())
	assert.Equal(t, 0, cache.Len())
	_, _, ok := h.AppProtoHead()
	assert.False(t, ok)
}

func TestHTTPPerf_ParseErrors(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	udp := tcpPacket(packet.ClientToServer, 0, []byte("GET / HTTP/1.1\r\n\r\n"))
	udp.Proto = layers.IPProtocolUDP
	assert.ErrorIs(t, h.Parse(udp, testFlowID), ErrInvalidIPProtocol)
	assert.ErrorIs(t, h.Parse(tcpPacket(packet.ClientToServer, 0, nil), testFlowID), ErrZeroPayloadLen)
}

func TestHTTPPerf_UnmatchedResponse(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, time.Second, []byte("HTTP/1.0 200 OK\r\n\r\n")), testFlowID))
	assert.Equal(t, uint32(1), h.stats.RespCount)
	assert.Equal(t, uint32(0), h.stats.RRTCount)
	assert.Equal(t, time.Duration(0), h.stats.RRTLast)
}

func TestHTTPPerf_ResponseBeforeRequestTimestamp(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, time.Second, []byte("GET / HTTP/1.1\r\n\r\n")), testFlowID))
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 0, []byte("HTTP/1.1 200 OK\r\n\r\n")), testFlowID))
	assert.Equal(t, uint32(1), h.stats.RespCount)
	assert.Equal(t, uint32(0), h.stats.RRTCount)
}

func TestHTTPPerf_StatusClassification(t *testing.T) {
	tests := []struct {
		line       string
		status     protolog.L7ResponseStatus
		clientErrs uint32
		serverErrs uint32
	}{
		{"HTTP/1.1 200 OK", protolog.StatusOk, 0, 0},
		{"HTTP/1.1 399 X", protolog.StatusOk, 0, 0},
		{"HTTP/1.1 400 Bad Request", protolog.StatusClientError, 1, 0},
		{"HTTP/1.1 404 Not Found", protolog.StatusClientError, 1, 0},
		{"HTTP/1.1 499 X", protolog.StatusClientError, 1, 0},
		{"HTTP/1.1 500 Internal Server Error", protolog.StatusServerError, 0, 1},
		{"HTTP/1.1 503 Service Unavailable", protolog.StatusServerError, 0, 1},
		{"HTTP/1.1 600 X", protolog.StatusServerError, 0, 1},
		{"HTTP/1.1 601 X", protolog.StatusOk, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
			require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 0, []byte(tt.line+"\r\n\r\n")), testFlowID))

			head, _, ok := h.AppProtoHead()
			require.True(t, ok)
			assert.Equal(t, tt.status, head.Status)
			assert.Equal(t, protolog.MsgTypeResponse, head.MsgType)

			s := h.CopyAndResetData(0)
			assert.Equal(t, tt.clientErrs, s.L7.ErrClientCount)
			assert.Equal(t, tt.serverErrs, s.L7.ErrServerCount)
		})
	}
}

func TestHTTPPerf_CopyAndResetData(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, []byte("POST /a HTTP/1.1\r\n\r\n")), testFlowID))

	first := h.CopyAndResetData(2)
	assert.Equal(t, uint32(1), first.L7.RequestCount)
	assert.Equal(t, uint32(2), first.L7.ErrTimeout)
	assert.False(t, h.DataUpdated())

	second := h.CopyAndResetData(0)
	assert.Equal(t, L7PerfStats{}, second.L7)
	assert.Equal(t, protolog.L7ProtocolHTTP1, second.L7Protocol)
}

func TestHTTPPerf_AppProtoHead(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
	_, _, ok := h.AppProtoHead()
	assert.False(t, ok)

	req := "GET /api/v1/users?id=1 HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Content-Length: 12\r\n" +
		"X-Request-ID: req-42\r\n" +
		"X-Forwarded-For: 10.1.1.1, 10.2.2.2\r\n" +
		"traceparent: 00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01\r\n\r\n"
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, []byte(req)), testFlowID))

	head, info, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, protolog.AppProtoHead{
		Proto:   protolog.L7ProtocolHTTP1,
		MsgType: protolog.MsgTypeRequest,
		Status:  protolog.StatusOk,
	}, head)

	hi, ok := info.(*protolog.HTTPInfo)
	require.True(t, ok)
	assert.Equal(t, "GET", hi.Method)
	assert.Equal(t, "/api/v1/users?id=1", hi.Path)
	assert.Equal(t, "example.com", hi.Host)
	assert.Equal(t, "1.1", hi.Version)
	assert.Equal(t, int64(12), hi.ReqContentLength)
	assert.Equal(t, "req-42", hi.XRequestID)
	assert.Equal(t, "10.1.1.1", hi.ClientIP)
	assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", hi.TraceID)
	assert.Equal(t, "b7ad6b7169203331", hi.SpanID)

	// 每条消息只取一次
	_, _, ok = h.AppProtoHead()
	assert.False(t, ok)

	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 3*time.Millisecond, []byte("HTTP/1.1 404 Not Found\r\n\r\n")), testFlowID))
	head, _, ok = h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, protolog.MsgTypeResponse, head.MsgType)
	assert.Equal(t, uint16(404), head.Code)
	assert.Equal(t, protolog.StatusClientError, head.Status)
	assert.Equal(t, uint64(3000), head.RRT)
}

func TestParseLines(t *testing.T) {
	lines := parseLines([]byte("GET / HTTP/1.1\r\nHost: a\r\npartial"))
	assert.Equal(t, []string{"GET / HTTP/1.1", "Host: a"}, lines)

	assert.Empty(t, parseLines([]byte("\r\n")))
	assert.Equal(t, []string{"a\nb"}, parseLines([]byte("a\nb\r\n")))
}

func TestHTTPPerf_HTTP2Streams(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	var preface []byte
	preface = append(preface, http2Magic...)
	preface = append(preface, h2Frame(0x4, 0, 0, nil)...) // SETTINGS
	preface = append(preface, h2Frame(frameHeaders, flagEndHeaders, 1, freshBlock(t, requestFields("/one")...))...)
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, preface), testFlowID))

	req3 := h2Frame(frameHeaders, flagEndHeaders, 3, freshBlock(t, requestFields("/three")...))
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 10*time.Millisecond, req3), testFlowID))

	resp3 := h2Frame(frameHeaders, flagEndHeaders, 3, freshBlock(t, statusField("200")))
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 15*time.Millisecond, resp3), testFlowID))

	head, info, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, protolog.L7ProtocolHTTP2, head.Proto)
	assert.Equal(t, uint64(5000), head.RRT)
	sid, ok := info.SessionID()
	require.True(t, ok)
	assert.Equal(t, uint32(3), sid)

	resp1 := h2Frame(frameHeaders, flagEndHeaders, 1, freshBlock(t, statusField("503")))
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 30*time.Millisecond, resp1), testFlowID))

	s := h.CopyAndResetData(0)
	assert.Equal(t, protolog.L7ProtocolHTTP2, s.L7Protocol)
	assert.Equal(t, L7PerfStats{
		RequestCount:   2,
		ResponseCount:  2,
		RRTCount:       2,
		RRTSum:         35000,
		RRTMax:         30000,
		ErrServerCount: 1,
	}, s.L7)
}

func TestHTTPPerf_HTTP2DynamicTable(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	first := h2Frame(frameHeaders, flagEndHeaders, 1, hpackBlock(t, enc, &buf, requestFields("/same")...))
	second := h2Frame(frameHeaders, flagEndHeaders, 3, hpackBlock(t, enc, &buf, requestFields("/same")...))

	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, first), testFlowID))
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, time.Millisecond, second), testFlowID))

	_, info, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, "/same", info.(*protolog.HTTPInfo).Path)
	assert.Equal(t, "svc.local", info.(*protolog.HTTPInfo).Host)
}

func TestHTTPPerf_HTTP2MalformedStatus(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
	resp := h2Frame(frameHeaders, flagEndHeaders, 1, freshBlock(t, statusField("abc")))
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 0, resp), testFlowID))

	head, _, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, uint16(0), head.Code)
	assert.Equal(t, protolog.StatusOk, head.Status)
}

func TestHTTPPerf_HTTP2PaddedPriority(t *testing.T) {
	block := freshBlock(t, requestFields("/padded")...)

	// pad length, stream dependency + weight, fragment, padding
	var payload []byte
	payload = append(payload, 4)
	payload = append(payload, 0x80, 0, 0, 1, 15)
	payload = append(payload, block...)
	payload = append(payload, 0, 0, 0, 0)
	frame := h2Frame(frameHeaders, flagEndHeaders|flagHeadersPadded|flagHeadersPriority, 5, payload)

	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, frame), testFlowID))
	_, info, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, "/padded", info.(*protolog.HTTPInfo).Path)
	assert.Equal(t, uint32(5), info.(*protolog.HTTPInfo).StreamID)
}

func TestHTTPPerf_HTTP2Continuation(t *testing.T) {
	block := freshBlock(t, requestFields("/continued")...)
	cut := len(block) / 2

	var payload []byte
	payload = append(payload, h2Frame(frameHeaders, 0, 7, block[:cut])...)
	payload = append(payload, h2Frame(frameContinuation, flagEndHeaders, 7, block[cut:])...)

	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
	require.NoError(t, h.Parse(tcpPacket(packet.ClientToServer, 0, payload), testFlowID))
	_, info, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, "/continued", info.(*protolog.HTTPInfo).Path)
}

func TestHTTPPerf_HTTP2Rejects(t *testing.T) {
	block := freshBlock(t, requestFields("/")...)

	tests := []struct {
		name    string
		payload []byte
	}{
		{"stream zero", h2Frame(frameHeaders, flagEndHeaders, 0, block)},
		{"padding longer than frame", h2Frame(frameHeaders, flagEndHeaders|flagHeadersPadded, 1, append([]byte{200}, block...))},
		{"priority without fragment", h2Frame(frameHeaders, flagEndHeaders|flagHeadersPriority, 1, []byte{0, 0, 0, 1, 15})},
		{"no pseudo header", h2Frame(frameHeaders, flagEndHeaders, 1, freshBlock(t, hpack.HeaderField{Name: "grpc-status", Value: "0"}))},
		{"truncated frame before headers", append(h2Frame(0x0, 0, 1, make([]byte, 200))[:20], block...)},
		{"header only", h2Frame(0x4, 0, 0, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := rrtcache.New(rrtcache.DefaultCapacity)
			h := NewHTTPPerf(cache)
			assert.Error(t, h.Parse(tcpPacket(packet.ClientToServer, 0, tt.payload), testFlowID))
			assert.False(t, h.DataUpdated())
			assert.Equal(t, 0, cache.Len())
		})
	}
}

func TestParseFrames_Truncated(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))
	data := h2Frame(0x0, 0, 1, make([]byte, 64))[:30]
	_, _, err := h.parseFrames(data, packet.ClientToServer)
	assert.ErrorIs(t, err, ErrTruncatedFrame)
}

func TestHTTPPerf_HTTP2HeadersSharingSegment(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	var seg []byte
	seg = append(seg, h2Frame(frameHeaders, flagEndHeaders, 1, hpackBlock(t, enc, &buf, statusField("299")))...)
	seg = append(seg, h2Frame(frameHeaders, flagEndHeaders, 3, hpackBlock(t, enc, &buf, statusField("503")))...)
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 0, seg), testFlowID))

	head, info, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, uint16(299), head.Code)
	assert.Equal(t, uint32(1), info.(*protolog.HTTPInfo).StreamID)

	// 第二次编码 503 走动态表索引
	indexed := hpackBlock(t, enc, &buf, statusField("503"))
	assert.Len(t, indexed, 1)
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, time.Millisecond, h2Frame(frameHeaders, flagEndHeaders, 5, indexed)), testFlowID))

	head, _, ok = h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, uint16(503), head.Code)
	assert.Equal(t, protolog.StatusServerError, head.Status)
	assert.Equal(t, uint32(1), h.CopyAndResetData(0).L7.ErrServerCount)
}

func TestHTTPPerf_HTTP2LostHeadersResetTable(t *testing.T) {
	h := NewHTTPPerf(rrtcache.New(rrtcache.DefaultCapacity))

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	lost := h2Frame(frameHeaders, flagEndHeaders, 3, hpackBlock(t, enc, &buf, statusField("503")))
	var seg []byte
	seg = append(seg, h2Frame(frameHeaders, flagEndHeaders, 1, freshBlock(t, statusField("200")))...)
	seg = append(seg, lost[:len(lost)-2]...)
	require.NoError(t, h.Parse(tcpPacket(packet.ServerToClient, 0, seg), testFlowID))
	head, _, ok := h.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, uint16(200), head.Code)

	// 表已重置，引用动态表的首部块解不出来，而不是解成错的值
	indexed := h2Frame(frameHeaders, flagEndHeaders, 5, hpackBlock(t, enc, &buf, statusField("503")))
	assert.Error(t, h.Parse(tcpPacket(packet.ServerToClient, time.Millisecond, indexed), testFlowID))
}

func TestHTTPPerf_HTTP2PseudoHeaderDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  packet.Direction
		hdrs []hpack.HeaderField
	}{
		{":method from server", packet.ServerToClient, requestFields("/")},
		{":status from client", packet.ClientToServer, []hpack.HeaderField{statusField("200")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := rrtcache.New(rrtcache.DefaultCapacity)
			h := NewHTTPPerf(cache)
			frame := h2Frame(frameHeaders, flagEndHeaders, 1, freshBlock(t, tt.hdrs...))
			assert.ErrorIs(t, h.Parse(tcpPacket(tt.dir, 0, frame), testFlowID), ErrHeaderParseFailed)
			assert.False(t, h.DataUpdated())
			assert.Equal(t, 0, cache.Len())
			_, _, ok := h.AppProtoHead()
			assert.False(t, ok)
		})
	}
}
