package rrtcache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const DefaultCapacity = 1024

// Key 由流 ID 和可选的子流 ID 组成。单请求单响应协议（HTTP/1、Redis）不带子流，
// 多路复用协议（HTTP/2 stream id、DNS transaction id）带子流。
type Key struct {
	FlowID    uint64
	StreamID  uint32
	HasStream bool
}

func FlowKey(flowID uint64) Key {
	return Key{FlowID: flowID}
}

func StreamKey(flowID uint64, streamID uint32) Key {
	return Key{FlowID: flowID, StreamID: streamID, HasStream: true}
}

// Cache 记录还没等到响应的请求时间戳。容量有上限，满了以后淘汰最早的请求。
// 不加锁：一个 Cache 只属于一条流，由处理该流的 goroutine 独占。
type Cache struct {
	lru     *simplelru.LRU[Key, time.Duration]
	evicted uint32
}

func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l, err := simplelru.NewLRU[Key, time.Duration](capacity, nil)
	if err != nil {
		// 只有 capacity <= 0 才会失败，上面已经处理。
		panic(err)
	}
	return &Cache{lru: l}
}

func (c *Cache) AddReqTime(key Key, ts time.Duration) {
	if c.lru.Add(key, ts) {
		c.evicted++
	}
}

// GetAndRemoveReqTime 查到即删，保证一个请求时间戳最多匹配一个响应。
func (c *Cache) GetAndRemoveReqTime(key Key) (time.Duration, bool) {
	ts, ok := c.lru.Peek(key)
	if !ok {
		return 0, false
	}
	c.lru.Remove(key)
	return ts, true
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

// ExpireBefore 删除时间戳早于 deadline 的请求，返回删除数量。
// 按插入顺序从最旧的开始扫，遇到第一个未过期的就停。
func (c *Cache) ExpireBefore(deadline time.Duration) int {
	n := 0
	for {
		_, ts, ok := c.lru.GetOldest()
		if !ok || ts >= deadline {
			return n
		}
		c.lru.RemoveOldest()
		n++
	}
}

// TakeEvicted 返回上次调用以来因容量不足被挤掉的请求数，并清零。
func (c *Cache) TakeEvicted() uint32 {
	n := c.evicted
	c.evicted = 0
	return n
}
