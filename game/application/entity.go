package application

import (
	"context"
	"log/slog"
	"time"

	"skirmish/game/domain"
)

// Entity は1tickごとに更新・描画されるゲーム内オブジェクトです。
type Entity interface {
	Update(tc *TickContext)
	Draw(r domain.Renderer, frames *FrameResolver)
	Bounds() domain.Rect
}

// Body はエンティティ共通の矩形・体力・向きです。
// 体力はダメージ適用時にクランプしないため、tick の途中では負の値もとり得ます。
type Body struct {
	Rect      domain.Rect
	Health    int
	MaxHealth int
	Facing    domain.Facing
}

func (b *Body) Bounds() domain.Rect {
	return b.Rect
}

func (b *Body) Alive() bool {
	return b.Health > 0
}

func (b *Body) ApplyDamage(n int) {
	b.Health -= n
}

// HealthRatio は体力バー用の 0..1 の比率を返します。
func (b *Body) HealthRatio() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	r := float64(b.Health) / float64(b.MaxHealth)
	return clamp(r, 0, 1)
}

// TickContext は1tick分の更新に必要な情報です。
type TickContext struct {
	Now     time.Time
	Arena   domain.Rect
	Players []*Player
	Enemies []*Enemy
	Inputs  *InputManager

	fired []*Bullet
}

// Fire は tick 中に生成された弾を登録します。
func (tc *TickContext) Fire(b *Bullet) {
	if b != nil {
		tc.fired = append(tc.fired, b)
	}
}

// Fired は登録された弾を返し、内部のリストを空にします。
func (tc *TickContext) Fired() []*Bullet {
	out := tc.fired
	tc.fired = nil
	return out
}

// safeUpdate はエンティティ単位で panic を回収します。
// panic したエンティティはその tick だけスキップされます。
func safeUpdate(ctx context.Context, e Entity, tc *TickContext) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "entity update panicked", "bounds", e.Bounds(), "panic", r)
			ok = false
		}
	}()
	e.Update(tc)
	return true
}

// nearestLivingPlayer は from から中心間距離が最も近い生存プレイヤーを返します。
// 同距離の場合は先に並んでいる方を選びます。
func nearestLivingPlayer(from domain.Vec2, players []*Player) *Player {
	var nearest *Player
	best := 0.0
	for _, p := range players {
		if !p.Alive() {
			continue
		}
		d := from.Dist(p.Rect.Center())
		if nearest == nil || d < best {
			nearest, best = p, d
		}
	}
	return nearest
}

// nearestEnemy は from から中心間距離が最も近い敵を返します。
func nearestEnemy(from domain.Vec2, enemies []*Enemy) *Enemy {
	var nearest *Enemy
	best := 0.0
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		d := from.Dist(e.Rect.Center())
		if nearest == nil || d < best {
			nearest, best = e, d
		}
	}
	return nearest
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func hasAction(actions []domain.Action, a domain.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
