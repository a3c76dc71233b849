package perf

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
)

const (
	dnsHeaderSize     = 12
	dnsTCPLengthBytes = 2
)

// DNSPerf 解析 UDP 和 TCP 上的 DNS，用 transaction id 关联请求和响应。
type DNSPerf struct {
	cache *rrtcache.Cache
	stats *PerfStats

	msgType    protolog.LogMessageType
	status     protolog.L7ResponseStatus
	statusCode uint16
	hasLogData bool
	info       *protolog.DNSInfo

	dns layers.DNS
}

func NewDNSPerf(cache *rrtcache.Cache) *DNSPerf {
	return &DNSPerf{cache: cache, msgType: protolog.MsgTypeOther}
}

func (d *DNSPerf) Parse(pkt *packet.MetaPacket, flowID uint64) error {
	payload, ok := pkt.L4Payload()
	if !ok {
		return ErrZeroPayloadLen
	}
	switch pkt.Proto {
	case layers.IPProtocolUDP:
	case layers.IPProtocolTCP:
		// TCP 上的 DNS 前面有 2 字节长度
		if len(payload) < dnsTCPLengthBytes+dnsHeaderSize {
			return ErrHeaderParseFailed
		}
		n := int(binary.BigEndian.Uint16(payload))
		payload = payload[dnsTCPLengthBytes:]
		if n < len(payload) {
			payload = payload[:n]
		}
	default:
		return ErrInvalidIPProtocol
	}
	if len(payload) < dnsHeaderSize {
		return ErrHeaderParseFailed
	}

	dns := &d.dns
	if err := dns.DecodeFromBytes(payload, gopacket.NilDecodeFeedback); err != nil {
		return fmt.Errorf("%w: %v", ErrHeaderParseFailed, err)
	}
	if dns.OpCode != layers.DNSOpCodeQuery || len(dns.Questions) == 0 {
		return ErrHeaderParseFailed
	}

	info := &protolog.DNSInfo{
		TransID:   dns.ID,
		QueryType: uint16(dns.Questions[0].Type),
		QueryName: string(dns.Questions[0].Name),
	}
	key := rrtcache.StreamKey(flowID, uint32(dns.ID))
	if dns.QR {
		info.Answers = dnsAnswers(dns.Answers)
		d.onResponse(key, pkt.Timestamp, dns.ResponseCode)
	} else {
		d.onRequest(key, pkt.Timestamp)
	}
	d.info = info
	d.hasLogData = true
	return nil
}

func (d *DNSPerf) onRequest(key rrtcache.Key, ts time.Duration) {
	d.msgType = protolog.MsgTypeRequest
	d.status = protolog.StatusOk
	d.statusCode = 0
	stats := d.statsOrNew()
	stats.ReqCount++
	stats.RRTLast = 0
	d.cache.AddReqTime(key, ts)
}

func (d *DNSPerf) onResponse(key rrtcache.Key, ts time.Duration, rcode layers.DNSResponseCode) {
	d.msgType = protolog.MsgTypeResponse
	d.statusCode = uint16(rcode)
	stats := d.statsOrNew()
	switch rcode {
	case layers.DNSResponseCodeNoErr:
		d.status = protolog.StatusOk
	case layers.DNSResponseCodeNXDomain:
		d.status = protolog.StatusNotExist
		stats.ReqErrCount++
	case layers.DNSResponseCodeServFail:
		d.status = protolog.StatusServerError
		stats.RespErrCount++
	default:
		d.status = protolog.StatusClientError
		stats.ReqErrCount++
	}
	stats.RespCount++
	stats.RRTLast = 0

	reqTS, ok := d.cache.GetAndRemoveReqTime(key)
	if !ok {
		return
	}
	stats.addRRT(reqTS, ts)
}

func (d *DNSPerf) statsOrNew() *PerfStats {
	if d.stats == nil {
		d.stats = &PerfStats{}
	}
	return d.stats
}

func dnsAnswers(rrs []layers.DNSResourceRecord) string {
	var out []string
	for _, rr := range rrs {
		switch rr.Type {
		case layers.DNSTypeA, layers.DNSTypeAAAA:
			if rr.IP != nil {
				out = append(out, rr.IP.String())
			}
		case layers.DNSTypeCNAME:
			out = append(out, string(rr.CNAME))
		case layers.DNSTypeNS:
			out = append(out, string(rr.NS))
		case layers.DNSTypePTR:
			out = append(out, string(rr.PTR))
		}
	}
	return strings.Join(out, ";")
}

func (d *DNSPerf) DataUpdated() bool {
	return d.stats != nil
}

func (d *DNSPerf) CopyAndResetData(timeoutCount uint32) FlowPerfStats {
	s := snapshot(protolog.L7ProtocolDNS, d.stats, timeoutCount)
	d.stats = nil
	return s
}

func (d *DNSPerf) AppProtoHead() (protolog.AppProtoHead, protolog.Info, bool) {
	if !d.hasLogData {
		return protolog.AppProtoHead{}, nil, false
	}
	d.hasLogData = false

	var rrt uint64
	if d.stats != nil {
		rrt = uint64(d.stats.RRTLast.Microseconds())
	}
	head := protolog.AppProtoHead{
		Proto:   protolog.L7ProtocolDNS,
		MsgType: d.msgType,
		Status:  d.status,
		Code:    d.statusCode,
		RRT:     rrt,
	}
	var info protolog.Info
	if d.info != nil {
		info = d.info
		d.info = nil
	}
	return head, info, true
}
