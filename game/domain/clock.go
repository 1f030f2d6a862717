package domain

import (
	"sync"
	"time"
)

// Clock はシミュレーションに現在時刻を渡すための時間ソースです。
type Clock interface {
	Now() time.Time
}

// SystemClock は実時間を返す Clock です。
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock はテスト用に手動で進める Clock です。
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance は時刻を d だけ進めます。
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
