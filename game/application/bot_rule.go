package application

import (
	"math"
	"math/rand/v2"

	"skirmish/game/domain"
)

const (
	botDangerDist float64 = 80.0 // 弾丸回避を始める距離
	botNoiseAngle float64 = 0.52 // ±30度 (π/6 ≈ 0.52 rad)
	rushChance    float64 = 0.02 // 毎tick 2% の確率で突撃
	// 方向ベクトルの成分がこれを超えたらその軸のキーを押す (約 22.5 度)
	botAxisThreshold float64 = 0.38
)

// RuleBotController はルールベースのボットAIです。
// ボットごとに異なる個性パラメータを持ちます。
type RuleBotController struct {
	CloseRange float64 // 後退を始める距離
	MidRange   float64 // ストレイフを始める距離
	StrafeSign float64 // +1: 反時計回り, -1: 時計回り

	rng *rand.Rand
}

// NewRuleBotController はランダムな個性を持つボットAIを生成します。
func NewRuleBotController(rng *rand.Rand) *RuleBotController {
	strafeSign := 1.0
	if rng.Float64() < 0.5 {
		strafeSign = -1.0
	}
	return &RuleBotController{
		CloseRange: 80.0 + rng.Float64()*70.0,   // 80〜150
		MidRange:   200.0 + rng.Float64()*150.0, // 200〜350
		StrafeSign: strafeSign,
		rng:        rng,
	}
}

// Decide はこの tick に入力バッファへ積むアクションを返します。
func (r *RuleBotController) Decide(self *Player, w *World) []domain.Action {
	if !self.Alive() {
		return nil
	}
	center := self.Rect.Center()

	// 被弾回避を優先
	if dir, ok := r.evadeBullet(center, w.EnemyBullets); ok {
		return r.toActions(r.addNoise(dir), false)
	}

	// 最寄り敵に対する行動
	nearest := nearestEnemy(center, w.Enemies)
	if nearest == nil {
		return nil
	}

	d := nearest.Rect.Center().Sub(center)
	dist := math.Hypot(d.X, d.Y)
	if dist < 0.001 {
		return []domain.Action{domain.ActionShoot}
	}

	// 正規化
	n := domain.Vec2{X: d.X / dist, Y: d.Y / dist}

	// ランダム突撃: 一定確率で距離に関係なく接近
	if r.rng.Float64() < rushChance {
		return r.toActions(r.addNoise(n), true)
	}

	var dir domain.Vec2
	switch {
	case dist < r.CloseRange:
		// 近距離: 後退
		dir = domain.Vec2{X: -n.X, Y: -n.Y}
	case dist < r.MidRange:
		// 中距離: 横移動（ストレイフ方向はボットごとに異なる）
		dir = domain.Vec2{X: -n.Y * r.StrafeSign, Y: n.X * r.StrafeSign}
	default:
		// 遠距離: 接近
		dir = n
	}

	return r.toActions(r.addNoise(dir), true)
}

// evadeBullet は自分に向かってくる敵弾を回避する方向を返します。
func (r *RuleBotController) evadeBullet(center domain.Vec2, bullets []*Bullet) (domain.Vec2, bool) {
	closestDist := math.MaxFloat64
	var closest *Bullet

	for _, b := range bullets {
		d := center.Sub(b.Rect.Center())
		dist := math.Hypot(d.X, d.Y)
		if dist > botDangerDist {
			continue
		}

		// 弾丸が自分に向かっているか確認（内積 > 0）
		if d.X*b.Velocity.X+d.Y*b.Velocity.Y <= 0 {
			continue
		}

		if dist < closestDist {
			closestDist = dist
			closest = b
		}
	}

	if closest == nil {
		return domain.Vec2{}, false
	}

	// 弾丸の進行方向に対して垂直に回避
	vLen := math.Hypot(closest.Velocity.X, closest.Velocity.Y)
	if vLen < 0.001 {
		return domain.Vec2{}, false
	}
	return domain.Vec2{
		X: -closest.Velocity.Y / vLen,
		Y: closest.Velocity.X / vLen,
	}, true
}

// addNoise は移動方向に ±30度 のランダムノイズを加えます。
func (r *RuleBotController) addNoise(dir domain.Vec2) domain.Vec2 {
	noise := (r.rng.Float64()*2 - 1) * botNoiseAngle
	cos, sin := math.Cos(noise), math.Sin(noise)
	return domain.Vec2{
		X: dir.X*cos - dir.Y*sin,
		Y: dir.X*sin + dir.Y*cos,
	}
}

// toActions は方向ベクトルを方向キーの組に変換します。
func (r *RuleBotController) toActions(dir domain.Vec2, shoot bool) []domain.Action {
	actions := make([]domain.Action, 0, 3)
	switch {
	case dir.Y < -botAxisThreshold:
		actions = append(actions, domain.ActionUp)
	case dir.Y > botAxisThreshold:
		actions = append(actions, domain.ActionDown)
	}
	switch {
	case dir.X < -botAxisThreshold:
		actions = append(actions, domain.ActionLeft)
	case dir.X > botAxisThreshold:
		actions = append(actions, domain.ActionRight)
	}
	if shoot {
		actions = append(actions, domain.ActionShoot)
	}
	return actions
}
