package rrtcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetAndRemoveOnce(t *testing.T) {
	c := New(8)
	key := FlowKey(42)
	c.AddReqTime(key, 100*time.Millisecond)

	ts, ok := c.GetAndRemoveReqTime(key)
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, ts)

	// 已经匹配过一次，再查不到
	_, ok = c.GetAndRemoveReqTime(key)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_StreamKeysAreIndependent(t *testing.T) {
	c := New(8)
	c.AddReqTime(StreamKey(1, 1), time.Second)
	c.AddReqTime(StreamKey(1, 3), 2*time.Second)
	c.AddReqTime(FlowKey(1), 3*time.Second)

	ts, ok := c.GetAndRemoveReqTime(StreamKey(1, 3))
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, ts)

	ts, ok = c.GetAndRemoveReqTime(FlowKey(1))
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, ts)

	ts, ok = c.GetAndRemoveReqTime(StreamKey(1, 1))
	require.True(t, ok)
	assert.Equal(t, time.Second, ts)
}

func TestCache_Overwrite(t *testing.T) {
	c := New(8)
	c.AddReqTime(FlowKey(7), time.Second)
	c.AddReqTime(FlowKey(7), 5*time.Second)
	assert.Equal(t, 1, c.Len())

	ts, ok := c.GetAndRemoveReqTime(FlowKey(7))
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, ts)
}

func TestCache_CapacityEvictsOldest(t *testing.T) {
	c := New(2)
	c.AddReqTime(FlowKey(1), 1)
	c.AddReqTime(FlowKey(2), 2)
	c.AddReqTime(FlowKey(3), 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.GetAndRemoveReqTime(FlowKey(1))
	assert.False(t, ok, "oldest entry should be evicted")
	assert.Equal(t, uint32(1), c.TakeEvicted())
	assert.Equal(t, uint32(0), c.TakeEvicted())
}

func TestCache_ExpireBefore(t *testing.T) {
	c := New(0)
	c.AddReqTime(FlowKey(1), 10*time.Second)
	c.AddReqTime(FlowKey(2), 20*time.Second)
	c.AddReqTime(FlowKey(3), 30*time.Second)

	assert.Equal(t, 2, c.ExpireBefore(25*time.Second))
	assert.Equal(t, 1, c.Len())
	_, ok := c.GetAndRemoveReqTime(FlowKey(3))
	assert.True(t, ok)
	assert.Equal(t, 0, c.ExpireBefore(time.Hour))
}
