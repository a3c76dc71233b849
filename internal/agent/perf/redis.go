package perf

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/google/gopacket/layers"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
)

const redisMaxFieldLen = 256

// RedisPerf 解析 RESP 协议。Redis 单连接上请求响应严格有序，按流关联即可。
type RedisPerf struct {
	cache *rrtcache.Cache
	stats *PerfStats

	msgType    protolog.LogMessageType
	status     protolog.L7ResponseStatus
	hasLogData bool
	info       *protolog.RedisInfo
}

func NewRedisPerf(cache *rrtcache.Cache) *RedisPerf {
	return &RedisPerf{cache: cache, msgType: protolog.MsgTypeOther}
}

func (r *RedisPerf) Parse(pkt *packet.MetaPacket, flowID uint64) error {
	if pkt.Proto != layers.IPProtocolTCP {
		return ErrInvalidIPProtocol
	}
	payload, ok := pkt.L4Payload()
	if !ok {
		return ErrZeroPayloadLen
	}

	key := rrtcache.FlowKey(flowID)
	if pkt.Direction == packet.ClientToServer {
		args, ok := decodeRedisCommand(payload)
		if !ok {
			return ErrHeaderParseFailed
		}
		r.info = &protolog.RedisInfo{
			Request:     truncate(strings.Join(args, " "), redisMaxFieldLen),
			RequestType: strings.ToUpper(args[0]),
		}
		r.onRequest(key, pkt.Timestamp)
		r.hasLogData = true
		return nil
	}

	info, ok := decodeRedisReply(payload)
	if !ok {
		return ErrHeaderParseFailed
	}
	r.info = info
	r.onResponse(key, pkt.Timestamp, info.Error != "")
	r.hasLogData = true
	return nil
}

func (r *RedisPerf) onRequest(key rrtcache.Key, ts time.Duration) {
	r.msgType = protolog.MsgTypeRequest
	r.status = protolog.StatusOk
	stats := r.statsOrNew()
	stats.ReqCount++
	stats.RRTLast = 0
	r.cache.AddReqTime(key, ts)
}

func (r *RedisPerf) onResponse(key rrtcache.Key, ts time.Duration, isErr bool) {
	r.msgType = protolog.MsgTypeResponse
	stats := r.statsOrNew()
	r.status = protolog.StatusOk
	if isErr {
		r.status = protolog.StatusServerError
		stats.RespErrCount++
	}
	stats.RespCount++
	stats.RRTLast = 0

	reqTS, ok := r.cache.GetAndRemoveReqTime(key)
	if !ok {
		return
	}
	stats.addRRT(reqTS, ts)
}

func (r *RedisPerf) statsOrNew() *PerfStats {
	if r.stats == nil {
		r.stats = &PerfStats{}
	}
	return r.stats
}

// decodeRedisCommand 解析 *N\r\n$len\r\narg\r\n... 形式的命令。
// 包被截断时返回已解析出的参数，至少要有命令名。
func decodeRedisCommand(p []byte) ([]string, bool) {
	if len(p) < 4 || p[0] != '*' {
		return nil, false
	}
	line, rest, ok := redisLine(p[1:])
	if !ok {
		return nil, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		return nil, false
	}

	args := make([]string, 0, n)
	for i := 0; i < n && len(rest) > 0; i++ {
		if rest[0] != '$' {
			return nil, false
		}
		line, body, ok := redisLine(rest[1:])
		if !ok {
			break
		}
		size, err := strconv.Atoi(line)
		if err != nil || size < 0 {
			return nil, false
		}
		if size > len(body) {
			args = append(args, string(body))
			break
		}
		args = append(args, string(body[:size]))
		rest = body[size:]
		if len(rest) >= 2 {
			rest = rest[2:]
		}
	}
	if len(args) == 0 || args[0] == "" {
		return nil, false
	}
	return args, true
}

func decodeRedisReply(p []byte) (*protolog.RedisInfo, bool) {
	if len(p) < 3 {
		return nil, false
	}
	line, rest, ok := redisLine(p[1:])
	if !ok {
		return nil, false
	}
	info := &protolog.RedisInfo{}
	switch p[0] {
	case '+':
		info.Status = truncate(line, redisMaxFieldLen)
	case '-':
		if line == "" {
			return nil, false
		}
		info.Error = truncate(line, redisMaxFieldLen)
	case ':':
		if _, err := strconv.ParseInt(line, 10, 64); err != nil {
			return nil, false
		}
		info.Response = line
	case '$':
		size, err := strconv.Atoi(line)
		if err != nil || size < -1 {
			return nil, false
		}
		if size > 0 {
			info.Response = truncate(string(rest[:min(size, len(rest))]), redisMaxFieldLen)
		}
	case '*':
		if _, err := strconv.Atoi(line); err != nil {
			return nil, false
		}
		info.Response = truncate(string(p), redisMaxFieldLen)
	default:
		return nil, false
	}
	return info, true
}

func redisLine(p []byte) (string, []byte, bool) {
	i := bytes.Index(p, []byte("\r\n"))
	if i < 0 {
		return "", nil, false
	}
	return string(p[:i]), p[i+2:], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (r *RedisPerf) DataUpdated() bool {
	return r.stats != nil
}

func (r *RedisPerf) CopyAndResetData(timeoutCount uint32) FlowPerfStats {
	s := snapshot(protolog.L7ProtocolRedis, r.stats, timeoutCount)
	r.stats = nil
	return s
}

func (r *RedisPerf) AppProtoHead() (protolog.AppProtoHead, protolog.Info, bool) {
	if !r.hasLogData {
		return protolog.AppProtoHead{}, nil, false
	}
	r.hasLogData = false

	var rrt uint64
	if r.stats != nil {
		rrt = uint64(r.stats.RRTLast.Microseconds())
	}
	head := protolog.AppProtoHead{
		Proto:   protolog.L7ProtocolRedis,
		MsgType: r.msgType,
		Status:  r.status,
		RRT:     rrt,
	}
	var info protolog.Info
	if r.info != nil {
		info = r.info
		r.info = nil
	}
	return head, info, true
}
