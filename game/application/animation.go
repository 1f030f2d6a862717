package application

import (
	"log/slog"
	"time"

	"skirmish/game/domain"
)

const (
	PlayerFrameDelay  = 150 * time.Millisecond
	ShootAnimDuration = 300 * time.Millisecond
	ShootFrameDelay   = 150 * time.Millisecond
)

// アニメーションのアクション名
const (
	ActionWalk1  = "walk1"
	ActionWalk2  = "walk2"
	ActionWalk3  = "walk3"
	ActionShoot1 = "shoot1"
	ActionShoot2 = "shoot2"
	ActionIdle   = "idle"
	ActionMove   = "move"
)

var walkCycle = []string{ActionWalk1, ActionWalk2, ActionWalk3}

// Animation はエンティティ1体分のアニメーション状態です。
// 時刻は TickContext の Now から渡されたものだけを使います。
type Animation struct {
	Action string
	Frame  int

	delay     time.Duration
	lastFrame time.Time
}

func NewAnimation(action string, delay time.Duration) Animation {
	return Animation{Action: action, delay: delay}
}

// Advance は action に切り替え、前回のコマ送りから delay 以上経っていればコマを進めます。
// action が変わった場合はコマを先頭に戻します。
func (a *Animation) Advance(now time.Time, action string) {
	if a.Action != action {
		a.Action = action
		a.Frame = 0
		a.lastFrame = now
		return
	}
	if now.Sub(a.lastFrame) >= a.delay {
		a.Frame++
		a.lastFrame = now
	}
}

// playerAnimation はプレイヤーの歩行・射撃アニメーションを管理します。
type playerAnimation struct {
	walkStep   int
	lastStep   time.Time
	shooting   bool
	shootStart time.Time
}

func (pa *playerAnimation) startShoot(now time.Time) {
	pa.shooting = true
	pa.shootStart = now
}

// action は現在表示すべきアクション名を返します。射撃中は移動より優先されます。
func (pa *playerAnimation) action(now time.Time, moving bool) string {
	if pa.shooting {
		elapsed := now.Sub(pa.shootStart)
		if elapsed <= ShootAnimDuration {
			if (elapsed/ShootFrameDelay)%2 == 0 {
				return ActionShoot1
			}
			return ActionShoot2
		}
		pa.shooting = false
	}
	if !moving {
		pa.walkStep = 0
		pa.lastStep = now
		return ActionWalk1
	}
	if now.Sub(pa.lastStep) >= PlayerFrameDelay {
		pa.walkStep = (pa.walkStep + 1) % len(walkCycle)
		pa.lastStep = now
	}
	return walkCycle[pa.walkStep]
}

type frameKey struct {
	sprite string
	key    domain.AnimationKey
}

// FrameResolver は FrameSource からフレームを引き、見つからない場合はフォールバックします。
// 欠落したキーはキーごとに1度だけログに出します。
type FrameResolver struct {
	source domain.FrameSource
	logged map[frameKey]struct{}
}

func NewFrameResolver(source domain.FrameSource) *FrameResolver {
	return &FrameResolver{
		source: source,
		logged: make(map[frameKey]struct{}),
	}
}

// Resolve は (sprite, key) の index 番目のフレームを返します。
// key が無ければ (down, walk1) を使い、それも無ければ nil を返します。
func (r *FrameResolver) Resolve(sprite string, key domain.AnimationKey, index int) domain.Frame {
	if r == nil || r.source == nil {
		return nil
	}
	frames := r.source.Frames(sprite, key)
	if len(frames) == 0 {
		r.logMissing(sprite, key)
		if key == domain.FallbackAnimationKey {
			return nil
		}
		frames = r.source.Frames(sprite, domain.FallbackAnimationKey)
		if len(frames) == 0 {
			r.logMissing(sprite, domain.FallbackAnimationKey)
			return nil
		}
		index = 0
	}
	if index < 0 {
		index = 0
	}
	return frames[index%len(frames)]
}

func (r *FrameResolver) logMissing(sprite string, key domain.AnimationKey) {
	fk := frameKey{sprite: sprite, key: key}
	if _, ok := r.logged[fk]; ok {
		return
	}
	r.logged[fk] = struct{}{}
	slog.Warn("missing animation frames", "sprite", sprite, "facing", key.Facing.String(), "action", key.Action)
}
