package application

import (
	"math"

	"skirmish/game/domain"
)

const (
	BulletSpeed = 5.0
	BulletSize  = 5.0
)

// Bullet は弾です。速度は生成時に一度だけ決まり、以後は直進します。
// 撃った側は ID 文字列でのみ参照し、ダメージは発射時点の値を保持します。
type Bullet struct {
	Rect       domain.Rect
	Velocity   domain.Vec2
	ShooterID  string
	EnemyFired bool
	Damage     int
	Color      domain.Color
}

// NewBullet は from から to へ向かう弾を生成します。
func NewBullet(from, to domain.Vec2, shooterID string, enemyFired bool, damage int, color domain.Color) *Bullet {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	return &Bullet{
		Rect:       domain.Rect{X: from.X, Y: from.Y, W: BulletSize, H: BulletSize},
		Velocity:   domain.Vec2{X: math.Cos(angle) * BulletSpeed, Y: math.Sin(angle) * BulletSpeed},
		ShooterID:  shooterID,
		EnemyFired: enemyFired,
		Damage:     damage,
		Color:      color,
	}
}

func (b *Bullet) Update(_ *TickContext) {
	b.Rect.X += b.Velocity.X
	b.Rect.Y += b.Velocity.Y
}

func (b *Bullet) Bounds() domain.Rect {
	return b.Rect
}

// IsOffScreen は弾がアリーナから完全に出たかを返します。
func (b *Bullet) IsOffScreen(arena domain.Rect) bool {
	return b.Rect.Outside(arena)
}

func (b *Bullet) Draw(r domain.Renderer, _ *FrameResolver) {
	r.DrawEntity(domain.Visual{Fallback: b.Color}, b.Rect)
}

// advanceBullets は弾を進め、画面外に出たものを取り除きます。
func advanceBullets(bullets []*Bullet, tc *TickContext) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Update(tc)
		if b.IsOffScreen(tc.Arena) {
			continue
		}
		kept = append(kept, b)
	}
	clear(bullets[len(kept):])
	return kept
}
