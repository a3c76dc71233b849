package perf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/gopacket/layers"
	"golang.org/x/net/http2/hpack"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
)

const (
	h2cHeaderSize     = 9
	http2Magic        = "PRI * HTTP/2.0\r\n\r\nSM\r\n\r\n"
	hpackMaxTableSize = 4096

	frameHeaders      = 0x1
	frameContinuation = 0x9

	flagEndHeaders      = 0x4
	flagHeadersPadded   = 0x8
	flagHeadersPriority = 0x20
)

var httpMethods = map[string]struct{}{
	"OPTIONS": {}, "GET": {}, "HEAD": {}, "POST": {}, "PUT": {},
	"DELETE": {}, "TRACE": {}, "CONNECT": {}, "PATCH": {},
}

type h2FrameHeader struct {
	length   uint32
	typ      uint8
	flags    uint8
	streamID uint32
}

// HTTPPerf 同时识别 HTTP/1 和明文 HTTP/2（h2c）。
type HTTPPerf struct {
	cache *rrtcache.Cache
	stats *PerfStats

	proto      protolog.L7Protocol
	msgType    protolog.LogMessageType
	status     protolog.L7ResponseStatus
	statusCode uint16
	hasLogData bool
	info       *protolog.HTTPInfo

	// HPACK 动态表是按方向维护的连接级状态
	decoders [2]*hpack.Decoder
}

func NewHTTPPerf(cache *rrtcache.Cache) *HTTPPerf {
	return &HTTPPerf{cache: cache, msgType: protolog.MsgTypeOther}
}

func (h *HTTPPerf) Parse(pkt *packet.MetaPacket, flowID uint64) error {
	if pkt.Proto != layers.IPProtocolTCP {
		return ErrInvalidIPProtocol
	}
	payload, ok := pkt.L4Payload()
	if !ok {
		return ErrZeroPayloadLen
	}

	if err := h.parseHTTPv1(payload, pkt.Timestamp, pkt.Direction, flowID); err == nil {
		h.hasLogData = true
		h.proto = protolog.L7ProtocolHTTP1
		return nil
	}
	if err := h.parseHTTPv2(payload, pkt.Timestamp, pkt.Direction, flowID); err == nil {
		h.hasLogData = true
		h.proto = protolog.L7ProtocolHTTP2
		return nil
	}
	return ErrHeaderParseFailed
}

func (h *HTTPPerf) DataUpdated() bool {
	return h.stats != nil
}

func (h *HTTPPerf) CopyAndResetData(timeoutCount uint32) FlowPerfStats {
	s := snapshot(h.proto, h.stats, timeoutCount)
	h.stats = nil
	return s
}

func (h *HTTPPerf) AppProtoHead() (protolog.AppProtoHead, protolog.Info, bool) {
	if (h.proto != protolog.L7ProtocolHTTP1 && h.proto != protolog.L7ProtocolHTTP2) || !h.hasLogData {
		return protolog.AppProtoHead{}, nil, false
	}
	h.hasLogData = false

	var rrt uint64
	if h.stats != nil {
		rrt = uint64(h.stats.RRTLast.Microseconds())
	}
	head := protolog.AppProtoHead{
		Proto:   h.proto,
		MsgType: h.msgType,
		Status:  h.status,
		Code:    h.statusCode,
		RRT:     rrt,
	}
	var info protolog.Info
	if h.info != nil {
		info = h.info
		h.info = nil
	}
	return head, info, true
}

func (h *HTTPPerf) statsOrNew() *PerfStats {
	if h.stats == nil {
		h.stats = &PerfStats{}
	}
	return h.stats
}

func (h *HTTPPerf) onRequest(key rrtcache.Key, ts time.Duration) {
	h.msgType = protolog.MsgTypeRequest
	h.status = protolog.StatusOk
	h.statusCode = 0
	stats := h.statsOrNew()
	stats.ReqCount++
	stats.RRTLast = 0
	h.cache.AddReqTime(key, ts)
}

func (h *HTTPPerf) onResponse(key rrtcache.Key, ts time.Duration, code uint16) {
	h.msgType = protolog.MsgTypeResponse
	stats := h.statsOrNew()
	h.statusCode = code
	h.status = classifyStatus(stats, code)
	stats.RespCount++
	stats.RRTLast = 0

	reqTS, ok := h.cache.GetAndRemoveReqTime(key)
	if !ok {
		return
	}
	stats.addRRT(reqTS, ts)
}

func (h *HTTPPerf) parseHTTPv1(payload []byte, ts time.Duration, dir packet.Direction, flowID uint64) error {
	if !isHTTPv1Payload(payload) {
		return ErrHeaderParseFailed
	}
	lines := parseLines(payload)
	if len(lines) == 0 {
		return ErrHeaderParseFailed
	}

	if dir == packet.ServerToClient {
		// HTTP/1.1 404 Not Found
		version, code, err := parseHTTPRespLine(lines[0])
		if err != nil {
			return err
		}
		info := &protolog.HTTPInfo{Proto: protolog.L7ProtocolHTTP1, Version: version}
		fillHTTPv1Headers(info, lines[1:], dir)
		h.info = info
		h.onResponse(rrtcache.FlowKey(flowID), ts, code)
		return nil
	}

	// GET /background.png HTTP/1.0
	parts := strings.Split(lines[0], " ")
	if len(parts) != 3 {
		return ErrHeaderParseFailed
	}
	if _, ok := httpMethods[parts[0]]; !ok {
		return ErrHeaderParseFailed
	}
	version, err := parseHTTPRequestVersion(parts[2])
	if err != nil {
		return err
	}
	info := &protolog.HTTPInfo{
		Proto:   protolog.L7ProtocolHTTP1,
		Version: version,
		Method:  parts[0],
		Path:    parts[1],
	}
	fillHTTPv1Headers(info, lines[1:], dir)
	h.info = info
	h.onRequest(rrtcache.FlowKey(flowID), ts)
	return nil
}

func isHTTPv1Payload(payload []byte) bool {
	if bytes.HasPrefix(payload, []byte("HTTP")) {
		return true
	}
	i := bytes.IndexByte(payload, ' ')
	if i <= 0 || i > len("OPTIONS") {
		return false
	}
	_, ok := httpMethods[string(payload[:i])]
	return ok
}

// parseLines 按 CRLF 切行，丢弃 \r。前三个字节里的 \n 不当作行尾，
// 避免截断的包被误判；最后一行没有 CRLF 时丢弃。
func parseLines(payload []byte) []string {
	var lines []string
	line := make([]byte, 0, 128)
	for i, ch := range payload {
		if i > 2 && ch == '\n' && payload[i-1] == '\r' {
			lines = append(lines, string(line))
			line = line[:0]
		} else if ch != '\r' {
			line = append(line, ch)
		}
	}
	return lines
}

func parseHTTPRequestVersion(v string) (string, error) {
	switch v {
	case "HTTP/1.0":
		return "1.0", nil
	case "HTTP/1.1":
		return "1.1", nil
	default:
		return "", fmt.Errorf("%w: version %q", ErrHeaderParseFailed, v)
	}
}

func parseHTTPRespLine(line string) (string, uint16, error) {
	const minLen = len("HTTP/1.1 200")
	if len(line) < minLen || !strings.HasPrefix(line, "HTTP/1.") || line[8] != ' ' {
		return "", 0, ErrHeaderParseFailed
	}
	version := line[5:8]
	if version != "1.0" && version != "1.1" {
		return "", 0, ErrHeaderParseFailed
	}
	if len(line) > minLen && line[minLen] != ' ' {
		return "", 0, ErrHeaderParseFailed
	}
	code, err := strconv.ParseUint(line[9:12], 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("%w: status %q", ErrHeaderParseFailed, line[9:12])
	}
	return version, uint16(code), nil
}

func fillHTTPv1Headers(info *protolog.HTTPInfo, lines []string, dir packet.Direction) {
	for _, l := range lines {
		if l == "" {
			break
		}
		name, value, ok := strings.Cut(l, ":")
		if !ok {
			continue
		}
		fillHTTPHeader(info, strings.ToLower(strings.TrimSpace(name)), strings.TrimSpace(value), dir)
	}
}

func fillHTTPHeader(info *protolog.HTTPInfo, name, value string, dir packet.Direction) {
	switch name {
	case "host", ":authority":
		info.Host = value
	case ":method":
		info.Method = value
	case ":path":
		info.Path = value
	case "content-length":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return
		}
		if dir == packet.ServerToClient {
			info.RespContentLength = n
		} else {
			info.ReqContentLength = n
		}
	case "x-request-id":
		info.XRequestID = value
	case "x-forwarded-for":
		first, _, _ := strings.Cut(value, ",")
		info.ClientIP = strings.TrimSpace(first)
	case "traceparent":
		// 00-<trace-id>-<span-id>-<flags>
		parts := strings.Split(value, "-")
		if len(parts) == 4 {
			info.TraceID = parts[1]
			info.SpanID = parts[2]
		}
	}
}

// HTTPv2 协议参考 https://tools.ietf.org/html/rfc7540
func (h *HTTPPerf) parseHTTPv2(payload []byte, ts time.Duration, dir packet.Direction, flowID uint64) error {
	hdr, fields, err := h.parseFrames(payload, dir)
	if err != nil {
		return err
	}
	code, isRequest, err := pseudoHeaderStatus(fields)
	if err != nil {
		return err
	}
	// 伪首部必须和方向一致：请求带 :method，响应带 :status
	if isRequest != (dir == packet.ClientToServer) {
		return ErrHeaderParseFailed
	}

	info := &protolog.HTTPInfo{Proto: protolog.L7ProtocolHTTP2, StreamID: hdr.streamID, Version: "2"}
	for _, f := range fields {
		fillHTTPHeader(info, f.Name, f.Value, dir)
	}
	h.info = info

	key := rrtcache.StreamKey(flowID, hdr.streamID)
	if isRequest {
		h.onRequest(key, ts)
	} else {
		h.onResponse(key, ts, code)
	}
	return nil
}

// pseudoHeaderStatus 找 :method 或 :status，先出现的为准。
func pseudoHeaderStatus(fields []hpack.HeaderField) (code uint16, isRequest bool, err error) {
	for _, f := range fields {
		switch f.Name {
		case ":method":
			return 0, true, nil
		case ":status":
			v, err := strconv.ParseUint(f.Value, 10, 16)
			if err != nil {
				return 0, false, nil
			}
			return uint16(v), false, nil
		}
	}
	return 0, false, ErrHeaderParseFailed
}

func parseFrameHeader(b []byte) (h2FrameHeader, error) {
	if len(b) < h2cHeaderSize {
		return h2FrameHeader{}, ErrHeaderParseFailed
	}
	hdr := h2FrameHeader{
		length:   uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		typ:      b[3],
		flags:    b[4],
		streamID: binary.BigEndian.Uint32(b[5:9]) & 0x7fffffff,
	}
	if hdr.typ > frameContinuation {
		return h2FrameHeader{}, ErrHeaderParseFailed
	}
	return hdr, nil
}

// parseFrames 跳过 HEADERS 之前的其他帧（SETTINGS、WINDOW_UPDATE、PING 等），
// 返回第一个 HEADERS 帧解出的首部。同一个包里后面的首部块也要过一遍解码器，
// 否则动态表和发送端对不上；丢了数据就重置解码器。
func (h *HTTPPerf) parseFrames(payload []byte, dir packet.Direction) (h2FrameHeader, []hpack.HeaderField, error) {
	var (
		first  h2FrameHeader
		fields []hpack.HeaderField
		found  bool
	)
	p := payload
	for len(p) > h2cHeaderSize {
		if bytes.HasPrefix(p, []byte(http2Magic)) {
			p = p[len(http2Magic):]
			continue
		}
		hdr, err := parseFrameHeader(p)
		if err != nil {
			if found {
				h.resetDecoder(dir)
				break
			}
			return hdr, nil, err
		}
		if hdr.typ == frameHeaders {
			if hdr.streamID == 0 {
				if found {
					h.resetDecoder(dir)
					break
				}
				return hdr, nil, ErrHeaderParseFailed
			}
			block, next, complete, err := headerBlock(hdr, p[h2cHeaderSize:])
			if err != nil {
				if found {
					h.resetDecoder(dir)
					break
				}
				return hdr, nil, err
			}
			fs, err := h.decodeHeaderBlock(dir, block, complete)
			if err != nil {
				if found {
					break
				}
				return hdr, nil, err
			}
			if !found {
				first, fields, found = hdr, fs, true
			}
			if !complete {
				h.resetDecoder(dir)
				break
			}
			p = next
			continue
		}

		offset := h2cHeaderSize + int(hdr.length)
		if len(p) < offset {
			if found {
				break
			}
			return hdr, nil, ErrTruncatedFrame
		}
		p = p[offset:]
	}
	if !found {
		return h2FrameHeader{}, nil, ErrHeaderParseFailed
	}
	return first, fields, nil
}

// headerBlock 取出 HEADERS 帧及紧跟的 CONTINUATION 帧拼成的首部块，
// next 是首部块之后剩下的字节。
func headerBlock(hdr h2FrameHeader, rest []byte) (block, next []byte, complete bool, err error) {
	block, err = headerBlockFragment(hdr, rest)
	if err != nil {
		return nil, nil, false, err
	}
	if int(hdr.length) > len(rest) {
		// 只截掉了 padding
		return block, nil, hdr.flags&flagEndHeaders != 0, nil
	}
	next = rest[hdr.length:]
	if hdr.flags&flagEndHeaders != 0 {
		return block, next, true, nil
	}
	block, next, complete = appendContinuations(block, next, hdr.streamID)
	return block, next, complete, nil
}

// headerBlockFragment 按 RFC 7540 6.2 取出首部块片段：
//
//	+---------------+
//	|Pad Length? (8)|
//	+-+-------------+-----------------------------------------------+
//	|E|                 Stream Dependency? (31)                     |
//	+-+-------------+-----------------------------------------------+
//	|  Weight? (8)  |
//	+-+-------------+-----------------------------------------------+
//	|                   Header Block Fragment (*)                 ...
//	+---------------------------------------------------------------+
//	|                           Padding (*)                       ...
//	+---------------------------------------------------------------+
func headerBlockFragment(hdr h2FrameHeader, payload []byte) ([]byte, error) {
	offset, padLen := 0, 0
	if hdr.flags&flagHeadersPadded != 0 {
		if len(payload) < 1 {
			return nil, ErrHeaderParseFailed
		}
		padLen = int(payload[0])
		if uint32(padLen) > hdr.length {
			return nil, ErrHeaderParseFailed
		}
		offset++
	}
	if hdr.flags&flagHeadersPriority != 0 {
		offset += 5
	}
	if len(payload) <= offset {
		return nil, ErrHeaderParseFailed
	}
	end := int(hdr.length) - padLen
	if end < offset || end > len(payload) {
		return nil, ErrHeaderParseFailed
	}
	return payload[offset:end], nil
}

// appendContinuations 拼接同一 stream 上紧跟的 CONTINUATION 帧。
// 抓包被截断时返回已有部分，complete 为 false。
func appendContinuations(block, rest []byte, streamID uint32) ([]byte, []byte, bool) {
	out := append([]byte(nil), block...)
	for len(rest) >= h2cHeaderSize {
		hdr, err := parseFrameHeader(rest)
		if err != nil || hdr.typ != frameContinuation || hdr.streamID != streamID {
			return out, rest, false
		}
		end := h2cHeaderSize + int(hdr.length)
		if end > len(rest) {
			return append(out, rest[h2cHeaderSize:]...), nil, false
		}
		out = append(out, rest[h2cHeaderSize:end]...)
		rest = rest[end:]
		if hdr.flags&flagEndHeaders != 0 {
			return out, rest, true
		}
	}
	return out, rest, false
}

func decoderIndex(dir packet.Direction) int {
	if dir == packet.ServerToClient {
		return 1
	}
	return 0
}

func (h *HTTPPerf) resetDecoder(dir packet.Direction) {
	h.decoders[decoderIndex(dir)] = nil
}

func (h *HTTPPerf) decodeHeaderBlock(dir packet.Direction, block []byte, complete bool) ([]hpack.HeaderField, error) {
	idx := decoderIndex(dir)
	dec := h.decoders[idx]
	if dec == nil {
		dec = hpack.NewDecoder(hpackMaxTableSize, nil)
		h.decoders[idx] = dec
	}

	var fields []hpack.HeaderField
	dec.SetEmitFunc(func(f hpack.HeaderField) {
		fields = append(fields, f)
	})
	if _, err := dec.Write(block); err != nil {
		// 动态表已经不可信，下次重新开始
		h.decoders[idx] = nil
		return nil, fmt.Errorf("%w: hpack: %v", ErrHeaderParseFailed, err)
	}
	if err := dec.Close(); err != nil && complete {
		h.decoders[idx] = nil
		return nil, fmt.Errorf("%w: hpack: %v", ErrHeaderParseFailed, err)
	}
	return fields, nil
}
