package application

import (
	"strconv"
	"time"

	"skirmish/game/domain"
)

const EnemyShootCooldown = 500 * time.Millisecond

// Kind は敵の種類です。
type Kind string

const (
	KindGrunt   Kind = "grunt"
	KindUnicorn Kind = "unicorn"
	KindBrute   Kind = "brute"
)

// Archetype は敵の種類ごとのパラメータです。
type Archetype struct {
	Kind       Kind
	Health     int
	Damage     int
	Speed      float64
	Score      int
	Size       float64
	FrameDelay time.Duration
	Color      domain.Color
}

// Archetypes は既定の敵パラメータ表です。
var Archetypes = map[Kind]Archetype{
	KindGrunt:   {Kind: KindGrunt, Health: 30, Damage: 5, Speed: 2, Score: 5, Size: 20, FrameDelay: 100 * time.Millisecond, Color: domain.ColorRed},
	KindUnicorn: {Kind: KindUnicorn, Health: 60, Damage: 8, Speed: 1.5, Score: 15, Size: 24, FrameDelay: 120 * time.Millisecond, Color: domain.Color{R: 255, G: 105, B: 180}},
	KindBrute:   {Kind: KindBrute, Health: 100, Damage: 10, Speed: 2, Score: 25, Size: 32, FrameDelay: 100 * time.Millisecond, Color: domain.Color{R: 160, G: 32, B: 32}},
}

// Enemy はプレイヤーを追いかけて撃ってくる敵です。
type Enemy struct {
	Body
	Archetype Archetype

	ID            uint64
	ShootCooldown time.Duration
	lastShot      time.Time
	anim          Animation
}

// NewEnemy は pos を左上座標として敵を生成します。
func NewEnemy(id uint64, a Archetype, pos domain.Vec2) *Enemy {
	return &Enemy{
		Body: Body{
			Rect:      domain.Rect{X: pos.X, Y: pos.Y, W: a.Size, H: a.Size},
			Health:    a.Health,
			MaxHealth: a.Health,
			Facing:    domain.FacingDown,
		},
		Archetype:     a,
		ID:            id,
		ShootCooldown: EnemyShootCooldown,
		anim:          NewAnimation(ActionIdle, a.FrameDelay),
	}
}

// Update は最寄りの生存プレイヤーを追いかけ、撃てるなら撃ちます。
func (e *Enemy) Update(tc *TickContext) {
	e.Chase(tc.Now, tc.Players)
	tc.Fire(e.Shoot(tc.Now, tc.Players))
}

// Chase は軸ごとに符号だけを見て1歩進みます。斜め移動は各軸 speed ずつ進むため速くなります。
// 向きは最後に動いた軸で決まります。
func (e *Enemy) Chase(now time.Time, players []*Player) {
	target := nearestLivingPlayer(e.Rect.Center(), players)
	if target == nil {
		e.anim.Advance(now, ActionIdle)
		return
	}

	var dx, dy float64
	switch {
	case target.Rect.X > e.Rect.X:
		dx = e.Archetype.Speed
		e.Facing = domain.FacingRight
	case target.Rect.X < e.Rect.X:
		dx = -e.Archetype.Speed
		e.Facing = domain.FacingLeft
	}
	switch {
	case target.Rect.Y > e.Rect.Y:
		dy = e.Archetype.Speed
		e.Facing = domain.FacingDown
	case target.Rect.Y < e.Rect.Y:
		dy = -e.Archetype.Speed
		e.Facing = domain.FacingUp
	}

	e.Rect.X += dx
	e.Rect.Y += dy

	action := ActionIdle
	if dx != 0 || dy != 0 {
		action = ActionMove
	}
	e.anim.Advance(now, action)
}

// Shoot は最寄りの生存プレイヤーを狙って弾を生成します。
// クールダウン中、または狙える相手がいない場合は nil を返します。
func (e *Enemy) Shoot(now time.Time, players []*Player) *Bullet {
	if !e.lastShot.IsZero() && now.Sub(e.lastShot) < e.ShootCooldown {
		return nil
	}
	origin := e.Rect.Center()
	target := nearestLivingPlayer(origin, players)
	if target == nil {
		return nil
	}
	e.lastShot = now
	return NewBullet(origin, target.Rect.Center(), e.ShooterID(), true, e.Archetype.Damage, domain.ColorRed)
}

// ShooterID は弾に記録する撃ち手の ID です。
func (e *Enemy) ShooterID() string {
	return "npc-" + strconv.FormatUint(e.ID, 10)
}

func (e *Enemy) AnimationKey() domain.AnimationKey {
	return domain.AnimationKey{Facing: e.Facing, Action: e.anim.Action}
}

func (e *Enemy) Draw(r domain.Renderer, frames *FrameResolver) {
	r.DrawEntity(domain.Visual{
		Frame:    frames.Resolve(string(e.Archetype.Kind), e.AnimationKey(), e.anim.Frame),
		Fallback: e.Archetype.Color,
	}, e.Rect)
	bar := domain.Rect{X: e.Rect.X, Y: e.Rect.Y - 10, W: e.Rect.W, H: 5}
	r.DrawHealthBar(bar, e.HealthRatio())
}
