package perf

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l7obs/internal/agent/packet"
	"l7obs/internal/agent/protolog"
	"l7obs/internal/agent/rrtcache"
)

// example.com A IN
var dnsQuestion = []byte{
	7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
	0, 1, 0, 1,
}

func dnsQuery(id uint16) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint16(b[0:], id)
	binary.BigEndian.PutUint16(b[2:], 0x0100) // RD
	binary.BigEndian.PutUint16(b[4:], 1)
	return append(b, dnsQuestion...)
}

func dnsResponse(id uint16, rcode uint8, answer []byte) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint16(b[0:], id)
	binary.BigEndian.PutUint16(b[2:], 0x8180|uint16(rcode))
	binary.BigEndian.PutUint16(b[4:], 1)
	if answer != nil {
		binary.BigEndian.PutUint16(b[6:], 1)
	}
	b = append(b, dnsQuestion...)
	if answer != nil {
		// 名字压缩指针指向问题里的 example.com
		b = append(b, 0xc0, 0x0c, 0, 1, 0, 1, 0, 0, 0, 60, 0, 4)
		b = append(b, answer...)
	}
	return b
}

func udpPacket(dir packet.Direction, ts time.Duration, payload []byte) *packet.MetaPacket {
	return &packet.MetaPacket{
		Timestamp: ts,
		Proto:     layers.IPProtocolUDP,
		Direction: dir,
		Payload:   payload,
	}
}

func TestDNSPerf_RoundTrip(t *testing.T) {
	d := NewDNSPerf(rrtcache.New(rrtcache.DefaultCapacity))

	require.NoError(t, d.Parse(udpPacket(packet.ClientToServer, 0, dnsQuery(0x1234)), testFlowID))
	head, info, ok := d.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, protolog.MsgTypeRequest, head.MsgType)
	di := info.(*protolog.DNSInfo)
	assert.Equal(t, "example.com", di.QueryName)
	assert.Equal(t, uint16(1), di.QueryType)

	require.NoError(t, d.Parse(udpPacket(packet.ServerToClient, 2*time.Millisecond, dnsResponse(0x1234, 0, []byte{93, 184, 216, 34})), testFlowID))
	head, info, ok = d.AppProtoHead()
	require.True(t, ok)
	assert.Equal(t, protolog.AppProtoHead{
		Proto:   protolog.L7ProtocolDNS,
		MsgType: protolog.MsgTypeResponse,
		Status:  protolog.StatusOk,
		RRT:     2000,
	}, head)
	assert.Equal(t, "93.184.216.34", info.(*protolog.DNSInfo).Answers)
	sid, ok := info.SessionID()
	require.True(t, ok)
	assert.Equal(t, uint32(0x1234), sid)

	s := d.CopyAndResetData(0)
	assert.Equal(t, protolog.L7ProtocolDNS, s.L7Protocol)
	assert.Equal(t, uint32(1), s.L7.RRTCount)
	assert.Equal(t, uint64(2000), s.L7.RRTSum)
}

func TestDNSPerf_TransactionIDs(t *testing.T) {
	d := NewDNSPerf(rrtcache.New(rrtcache.DefaultCapacity))

	require.NoError(t, d.Parse(udpPacket(packet.ClientToServer, 0, dnsQuery(1)), testFlowID))
	require.NoError(t, d.Parse(udpPacket(packet.ClientToServer, time.Millisecond, dnsQuery(2)), testFlowID))
	require.NoError(t, d.Parse(udpPacket(packet.ServerToClient, 5*time.Millisecond, dnsResponse(2, 0, nil)), testFlowID))
	require.NoError(t, d.Parse(udpPacket(packet.ServerToClient, 9*time.Millisecond, dnsResponse(1, 0, nil)), testFlowID))

	s := d.CopyAndResetData(0)
	assert.Equal(t, uint32(2), s.L7.RRTCount)
	assert.Equal(t, uint32(9000), s.L7.RRTMax)
	assert.Equal(t, uint64(13000), s.L7.RRTSum)
}

func TestDNSPerf_ResponseCodes(t *testing.T) {
	tests := []struct {
		rcode      uint8
		status     protolog.L7ResponseStatus
		clientErrs uint32
		serverErrs uint32
	}{
		{0, protolog.StatusOk, 0, 0},
		{1, protolog.StatusClientError, 1, 0},
		{2, protolog.StatusServerError, 0, 1},
		{3, protolog.StatusNotExist, 1, 0},
		{5, protolog.StatusClientError, 1, 0},
	}
	for _, tt := range tests {
		d := NewDNSPerf(rrtcache.New(rrtcache.DefaultCapacity))
		require.NoError(t, d.Parse(udpPacket(packet.ServerToClient, 0, dnsResponse(7, tt.rcode, nil)), testFlowID))
		head, _, ok := d.AppProtoHead()
		require.True(t, ok)
		assert.Equal(t, tt.status, head.Status, "rcode %d", tt.rcode)
		assert.Equal(t, uint16(tt.rcode), head.Code)

		s := d.CopyAndResetData(0)
		assert.Equal(t, tt.clientErrs, s.L7.ErrClientCount, "rcode %d", tt.rcode)
		assert.Equal(t, tt.serverErrs, s.L7.ErrServerCount, "rcode %d", tt.rcode)
	}
}

func TestDNSPerf_TCP(t *testing.T) {
	d := NewDNSPerf(rrtcache.New(rrtcache.DefaultCapacity))

	q := dnsQuery(9)
	payload := binary.BigEndian.AppendUint16(nil, uint16(len(q)))
	payload = append(payload, q...)
	require.NoError(t, d.Parse(tcpPacket(packet.ClientToServer, 0, payload), testFlowID))
	assert.True(t, d.DataUpdated())
}

func TestDNSPerf_Rejects(t *testing.T) {
	d := NewDNSPerf(rrtcache.New(rrtcache.DefaultCapacity))

	assert.ErrorIs(t, d.Parse(udpPacket(packet.ClientToServer, 0, []byte("short")), testFlowID), ErrHeaderParseFailed)
	assert.ErrorIs(t, d.Parse(udpPacket(packet.ClientToServer, 0, nil), testFlowID), ErrZeroPayloadLen)

	// 没有 question 的报文不算 DNS
	noQuestion := make([]byte, 12)
	assert.ErrorIs(t, d.Parse(udpPacket(packet.ClientToServer, 0, noQuestion), testFlowID), ErrHeaderParseFailed)

	icmp := udpPacket(packet.ClientToServer, 0, dnsQuery(1))
	icmp.Proto = layers.IPProtocolICMPv4
	assert.ErrorIs(t, d.Parse(icmp, testFlowID), ErrInvalidIPProtocol)
	assert.False(t, d.DataUpdated())
}
