package domain

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// IdleReason はどの方向の通信が途絶えているかを表すビット集合です。
type IdleReason uint8

const (
	IdleNone     IdleReason = 0
	IdleRead     IdleReason = 1 << 0
	IdleWrite    IdleReason = 1 << 1
	IdleDisabled IdleReason = 1 << 7 // timeout<=0 のとき
)

func (r IdleReason) Has(x IdleReason) bool { return r&x != 0 }

func (r IdleReason) String() string {
	switch r {
	case IdleNone:
		return "none"
	case IdleDisabled:
		return "disabled"
	}
	var parts []string
	if r.Has(IdleRead) {
		parts = append(parts, "read")
	}
	if r.Has(IdleWrite) {
		parts = append(parts, "write")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("unknown(%d)", r)
	}
	return strings.Join(parts, "|")
}

// Session はホスト側から見た1ピアの論理的な接続状態を表す構造体です。
type Session struct {
	Peer RosterEntry

	clock Clock

	// activity
	lastRead  atomic.Int64
	lastWrite atomic.Int64

	// lifecycle
	closed atomic.Bool
}

func NewSession(peer RosterEntry, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		Peer:  peer,
		clock: clock,
	}
	now := clock.Now().UnixNano()
	s.lastRead.Store(now)
	s.lastWrite.Store(now)
	return s
}

func (s *Session) ID() string {
	return s.Peer.UID
}

func (s *Session) TouchRead() {
	s.lastRead.Store(s.clock.Now().UnixNano())
}

func (s *Session) TouchWrite() {
	s.lastWrite.Store(s.clock.Now().UnixNano())
}

func (s *Session) Close() bool {
	return s.closed.CompareAndSwap(false, true)
}

func (s *Session) IsIdle(timeout time.Duration) (bool, IdleReason) {
	if timeout <= 0 {
		return false, IdleDisabled
	}
	var reason IdleReason
	if s.IsReadIdle(timeout) {
		reason |= IdleRead
	}
	if s.IsWriteIdle(timeout) {
		reason |= IdleWrite
	}
	return reason != IdleNone, reason
}

func (s *Session) IsReadIdle(timeout time.Duration) bool {
	return s.idleSince(s.lastRead.Load(), timeout)
}

func (s *Session) IsWriteIdle(timeout time.Duration) bool {
	return s.idleSince(s.lastWrite.Load(), timeout)
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

func (s *Session) idleSince(nano int64, timeout time.Duration) bool {
	return s.clock.Now().Sub(time.Unix(0, nano)) > timeout
}
