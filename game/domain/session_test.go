package domain

import (
	"testing"
	"time"
)

func TestSessionIdle(t *testing.T) {
	clock := NewManualClock(time.Unix(1000, 0))
	s := NewSession(RosterEntry{UID: "u1", Name: "alice"}, clock)

	if s.ID() != "u1" {
		t.Errorf("ID = %q, want u1", s.ID())
	}
	if idle, reason := s.IsIdle(time.Second); idle {
		t.Fatalf("fresh session reported idle: %s", reason)
	}

	clock.Advance(2 * time.Second)
	s.TouchWrite()

	idle, reason := s.IsIdle(time.Second)
	if !idle {
		t.Fatal("expected idle after timeout")
	}
	if !reason.Has(IdleRead) || reason.Has(IdleWrite) {
		t.Errorf("reason = %s, want read", reason)
	}

	s.TouchRead()
	if idle, _ := s.IsIdle(time.Second); idle {
		t.Error("expected not idle after TouchRead")
	}
}

func TestSessionIdleDisabled(t *testing.T) {
	s := NewSession(RosterEntry{UID: "u1"}, NewManualClock(time.Unix(0, 0)))
	idle, reason := s.IsIdle(0)
	if idle || reason != IdleDisabled {
		t.Errorf("IsIdle(0) = %v,%s, want false,disabled", idle, reason)
	}
}

func TestSessionCloseOnce(t *testing.T) {
	s := NewSession(RosterEntry{UID: "u1"}, nil)
	if !s.Close() {
		t.Fatal("first Close should report true")
	}
	if s.Close() {
		t.Error("second Close should report false")
	}
	if !s.IsClosed() {
		t.Error("IsClosed should be true")
	}
}

func TestIdleReasonString(t *testing.T) {
	tests := map[IdleReason]string{
		IdleNone:             "none",
		IdleDisabled:         "disabled",
		IdleRead:             "read",
		IdleRead | IdleWrite: "read|write",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", r, got, want)
		}
	}
}
