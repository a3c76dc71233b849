package session

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l7obs/internal/agent/protolog"
	"l7obs/internal/metrics"
)

func orphanCount(reason string) float64 {
	return testutil.ToFloat64(metrics.SessionsOrphanTotal.WithLabelValues(reason))
}

func record(msgType protolog.LogMessageType, capSeq uint64, code uint16) *protolog.AppProtoLogsData {
	base := protolog.BaseInfo{
		FlowID: 0x01000000000000ff,
		Head:   protolog.AppProtoHead{Proto: protolog.L7ProtocolHTTP1, MsgType: msgType, Code: code},
	}
	info := &protolog.HTTPInfo{Proto: protolog.L7ProtocolHTTP1}
	if msgType == protolog.MsgTypeRequest {
		base.SyscallCapSeq0 = capSeq
		info.Method = "GET"
	} else {
		base.SyscallCapSeq1 = capSeq
	}
	return protolog.New(base, info)
}

func TestAggregator_MergesPair(t *testing.T) {
	a := NewAggregator(time.Second)
	now := time.Unix(100, 0)
	merged := testutil.ToFloat64(metrics.SessionsMergedTotal)

	assert.Empty(t, a.Push(record(protolog.MsgTypeRequest, 1, 0), now))
	assert.Equal(t, 1, a.Len())

	out := a.Push(record(protolog.MsgTypeResponse, 2, 404), now.Add(time.Millisecond))
	require.Len(t, out, 1)
	assert.Equal(t, protolog.MsgTypeSession, out[0].Base.Head.MsgType)
	assert.Equal(t, uint16(404), out[0].Base.Head.Code)
	assert.Equal(t, "GET", out[0].Info.(*protolog.HTTPInfo).Method)
	assert.Zero(t, a.Len())

	assert.Equal(t, merged+1, testutil.ToFloat64(metrics.SessionsMergedTotal))
}

func TestAggregator_ResponseWithoutRequest(t *testing.T) {
	a := NewAggregator(time.Second)
	resp := record(protolog.MsgTypeResponse, 8, 200)
	before := orphanCount(metrics.OrphanUnmatchedResponse)

	out := a.Push(resp, time.Unix(100, 0))
	require.Len(t, out, 1)
	assert.Same(t, resp, out[0])
	assert.Equal(t, protolog.MsgTypeResponse, out[0].Base.Head.MsgType)
	assert.Equal(t, before+1, orphanCount(metrics.OrphanUnmatchedResponse))
}

func TestAggregator_DuplicateRequest(t *testing.T) {
	a := NewAggregator(time.Second)
	now := time.Unix(100, 0)
	first := record(protolog.MsgTypeRequest, 1, 0)
	second := record(protolog.MsgTypeRequest, 1, 0)
	before := orphanCount(metrics.OrphanDuplicateRequest)

	assert.Empty(t, a.Push(first, now))
	out := a.Push(second, now)
	require.Len(t, out, 1)
	assert.Same(t, first, out[0])
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, before+1, orphanCount(metrics.OrphanDuplicateRequest))
}

func TestAggregator_MismatchEmitsBoth(t *testing.T) {
	a := NewAggregator(time.Second)
	now := time.Unix(100, 0)
	req := record(protolog.MsgTypeRequest, 1, 0)
	resp := record(protolog.MsgTypeResponse, 2, 200)
	resp.Info = &protolog.HTTPInfo{Proto: protolog.L7ProtocolHTTP2}
	before := orphanCount(metrics.OrphanMergeFailed)

	a.Push(req, now)
	out := a.Push(resp, now)
	require.Len(t, out, 2)
	assert.Equal(t, protolog.MsgTypeRequest, out[0].Base.Head.MsgType)
	assert.Equal(t, protolog.MsgTypeResponse, out[1].Base.Head.MsgType)
	assert.Equal(t, before+2, orphanCount(metrics.OrphanMergeFailed))
}

func TestAggregator_FlushAndDrain(t *testing.T) {
	a := NewAggregator(time.Second)
	start := time.Unix(100, 0)
	expired, drained := orphanCount(metrics.OrphanExpired), orphanCount(metrics.OrphanDrained)

	a.Push(record(protolog.MsgTypeRequest, 1, 0), start)
	a.Push(record(protolog.MsgTypeRequest, 3, 0), start.Add(100*time.Millisecond))
	a.Push(record(protolog.MsgTypeRequest, 5, 0), start.Add(2*time.Second))

	assert.Empty(t, a.Flush(start.Add(500*time.Millisecond)))

	out := a.Flush(start.Add(1500 * time.Millisecond))
	require.Len(t, out, 2)
	assert.Equal(t, uint64(1), out[0].Base.SyscallCapSeq0)
	assert.Equal(t, uint64(3), out[1].Base.SyscallCapSeq0)
	assert.Equal(t, 1, a.Len())

	out = a.Drain()
	require.Len(t, out, 1)
	assert.Equal(t, uint64(5), out[0].Base.SyscallCapSeq0)
	assert.Zero(t, a.Len())

	assert.Equal(t, expired+2, orphanCount(metrics.OrphanExpired))
	assert.Equal(t, drained+1, orphanCount(metrics.OrphanDrained))
}

func TestAggregator_PassesThroughOtherTypes(t *testing.T) {
	a := NewAggregator(0)
	d := record(protolog.MsgTypeSession, 0, 200)
	out := a.Push(d, time.Now())
	require.Len(t, out, 1)
	assert.Zero(t, a.Len())
}
