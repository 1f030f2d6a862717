package application

import (
	"testing"
	"time"

	"skirmish/game/domain"
	"skirmish/game/domain/mocks"

	"go.uber.org/mock/gomock"
)

func TestFrameResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockFrameSource(ctrl)
	walk := domain.AnimationKey{Facing: domain.FacingLeft, Action: ActionWalk2}
	missing := domain.AnimationKey{Facing: domain.FacingUp, Action: ActionShoot1}

	src.EXPECT().Frames("player", walk).Return([]domain.Frame{"L0", "L1"}).AnyTimes()
	src.EXPECT().Frames("player", missing).Return(nil).AnyTimes()
	src.EXPECT().Frames("player", domain.FallbackAnimationKey).Return([]domain.Frame{"D0"}).AnyTimes()
	src.EXPECT().Frames("ghost", gomock.Any()).Return(nil).AnyTimes()

	r := NewFrameResolver(src)

	tests := []struct {
		name   string
		sprite string
		key    domain.AnimationKey
		index  int
		want   domain.Frame
	}{
		{"present", "player", walk, 0, "L0"},
		{"wraps index", "player", walk, 3, "L1"},
		{"falls back to down walk1", "player", missing, 5, "D0"},
		{"nothing available", "ghost", missing, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.sprite, tt.key, tt.index); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameResolver_NilSource(t *testing.T) {
	if got := NewFrameResolver(nil).Resolve("player", domain.FallbackAnimationKey, 0); got != nil {
		t.Errorf("Resolve = %v, want nil", got)
	}
}

func TestAnimation_Advance(t *testing.T) {
	t0 := time.Unix(100, 0)
	a := NewAnimation(ActionIdle, 100*time.Millisecond)

	a.Advance(t0, ActionMove)
	if a.Action != ActionMove || a.Frame != 0 {
		t.Fatalf("after switch = %s/%d, want move/0", a.Action, a.Frame)
	}
	a.Advance(t0.Add(50*time.Millisecond), ActionMove)
	if a.Frame != 0 {
		t.Errorf("frame advanced before delay: %d", a.Frame)
	}
	a.Advance(t0.Add(100*time.Millisecond), ActionMove)
	if a.Frame != 1 {
		t.Errorf("frame = %d, want 1", a.Frame)
	}
}

func TestPlayerAnimation_ShootPreemptsWalk(t *testing.T) {
	t0 := time.Unix(100, 0)
	var pa playerAnimation

	pa.startShoot(t0)
	tests := []struct {
		at     time.Duration
		moving bool
		want   string
	}{
		{10 * time.Millisecond, true, ActionShoot1},
		{160 * time.Millisecond, true, ActionShoot2},
		{299 * time.Millisecond, false, ActionShoot2},
		{301 * time.Millisecond, false, ActionWalk1},
	}
	for _, tt := range tests {
		if got := pa.action(t0.Add(tt.at), tt.moving); got != tt.want {
			t.Errorf("action(+%s) = %s, want %s", tt.at, got, tt.want)
		}
	}
}

func TestPlayerAnimation_WalkCycle(t *testing.T) {
	t0 := time.Unix(100, 0)
	var pa playerAnimation

	if got := pa.action(t0, false); got != ActionWalk1 {
		t.Fatalf("idle action = %s, want walk1", got)
	}
	want := []string{ActionWalk2, ActionWalk3, ActionWalk1}
	for i, w := range want {
		now := t0.Add(time.Duration(i+1) * PlayerFrameDelay)
		if got := pa.action(now, true); got != w {
			t.Errorf("step %d = %s, want %s", i, got, w)
		}
	}
}
