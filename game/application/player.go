package application

import (
	"time"

	"skirmish/game/domain"
)

const (
	PlayerWidth         = 40.0
	PlayerHeight        = 40.0
	PlayerSpeed         = 4.0
	PlayerHealth        = 100
	PlayerShootCooldown = 250 * time.Millisecond
	PlayerBulletDamage  = 10

	// 射撃時は敵の中心より少し上を狙う
	playerAimOffsetY = 8.0

	PlayerSprite = "player"
)

// Player はプレイヤーが操作するキャラクターです。
// 入力バッファは UID をキーに毎tick InputManager から引きます。
type Player struct {
	Body

	UID    string
	Name   string
	Speed  float64
	Color  domain.Color
	Damage int

	ShootCooldown time.Duration
	lastShot      time.Time
	moving        bool
	anim          playerAnimation
	action        string
}

// NewPlayer は pos を左上座標としてプレイヤーを生成します。
func NewPlayer(uid, name string, pos domain.Vec2, color domain.Color) *Player {
	if name == "" {
		name = uid
	}
	return &Player{
		Body: Body{
			Rect:      domain.Rect{X: pos.X, Y: pos.Y, W: PlayerWidth, H: PlayerHeight},
			Health:    PlayerHealth,
			MaxHealth: PlayerHealth,
			Facing:    domain.FacingDown,
		},
		UID:           uid,
		Name:          name,
		Speed:         PlayerSpeed,
		Color:         color,
		Damage:        PlayerBulletDamage,
		ShootCooldown: PlayerShootCooldown,
		action:        ActionWalk1,
	}
}

// Update は入力を適用し、SHOOT があれば射撃します。
func (p *Player) Update(tc *TickContext) {
	inputs := tc.Inputs.Inputs(p.UID)
	p.Move(inputs, tc.Arena)
	if hasAction(inputs, domain.ActionShoot) {
		tc.Fire(p.Shoot(tc.Now, tc.Enemies))
	}
	p.action = p.anim.action(tc.Now, p.moving)
}

// Move は入力に従って移動し、アリーナ内に収めます。
// 同じ軸で逆方向が同時に入っている場合は UP と LEFT が優先されます。
func (p *Player) Move(inputs []domain.Action, arena domain.Rect) {
	p.moving = false
	up, down := hasAction(inputs, domain.ActionUp), hasAction(inputs, domain.ActionDown)
	left, right := hasAction(inputs, domain.ActionLeft), hasAction(inputs, domain.ActionRight)

	if up {
		p.Rect.Y -= p.Speed
		p.Facing = domain.FacingUp
	} else if down {
		p.Rect.Y += p.Speed
		p.Facing = domain.FacingDown
	}

	if left {
		p.Rect.X -= p.Speed
		p.Facing = domain.FacingLeft
	} else if right {
		p.Rect.X += p.Speed
		p.Facing = domain.FacingRight
	}

	p.moving = up || down || left || right
	p.Rect = p.Rect.ClampInside(arena)
}

// Shoot は最寄りの敵を狙って弾を生成します。
// クールダウン中、または敵がいない場合は nil を返します。
func (p *Player) Shoot(now time.Time, enemies []*Enemy) *Bullet {
	if !p.lastShot.IsZero() && now.Sub(p.lastShot) < p.ShootCooldown {
		return nil
	}
	origin := p.Rect.Center()
	target := nearestEnemy(origin, enemies)
	if target == nil {
		return nil
	}
	aim := target.Rect.Center()
	aim.Y -= playerAimOffsetY

	p.lastShot = now
	p.anim.startShoot(now)
	return NewBullet(origin, aim, p.UID, false, p.Damage, p.Color)
}

// AnimationKey は現在のアニメーションキーを返します。
func (p *Player) AnimationKey() domain.AnimationKey {
	return domain.AnimationKey{Facing: p.Facing, Action: p.action}
}

func (p *Player) Draw(r domain.Renderer, frames *FrameResolver) {
	r.DrawEntity(domain.Visual{
		Frame:    frames.Resolve(PlayerSprite, p.AnimationKey(), 0),
		Fallback: p.Color,
	}, p.Rect)
	bar := domain.Rect{X: p.Rect.X, Y: p.Rect.Y - 10, W: p.Rect.W, H: 5}
	r.DrawHealthBar(bar, p.HealthRatio())
	r.DrawText(p.Rect.X, p.Rect.Y-20, p.Name, p.Color)
}
