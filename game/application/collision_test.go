package application

import (
	"testing"

	"skirmish/game/domain"
)

func enemyBulletAt(x, y float64, damage int) *Bullet {
	return &Bullet{
		Rect:       domain.Rect{X: x, Y: y, W: BulletSize, H: BulletSize},
		ShooterID:  "npc-1",
		EnemyFired: true,
		Damage:     damage,
	}
}

func playerBulletAt(x, y float64) *Bullet {
	return &Bullet{
		Rect:      domain.Rect{X: x, Y: y, W: BulletSize, H: BulletSize},
		ShooterID: "p1",
		Damage:    PlayerBulletDamage,
	}
}

// 2人が重なっている位置に敵弾が来ても、ダメージを受けるのは先頭の1人だけ
func TestResolveCollisions_EnemyBulletHitsFirstPlayerOnly(t *testing.T) {
	p1 := NewPlayer("p1", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)
	p2 := NewPlayer("p2", "", domain.Vec2{X: 100, Y: 100}, domain.ColorBlue)
	w := &World{
		Players:      []*Player{p1, p2},
		EnemyBullets: []*Bullet{enemyBulletAt(110, 110, 8)},
	}

	report := ResolveCollisions(w)

	if p1.Health != 92 {
		t.Errorf("p1 health = %d, want 92", p1.Health)
	}
	if p2.Health != 100 {
		t.Errorf("p2 health = %d, want 100", p2.Health)
	}
	if len(w.EnemyBullets) != 0 {
		t.Errorf("enemy bullets = %d, want 0", len(w.EnemyBullets))
	}
	if report.PlayerHits != 1 {
		t.Errorf("PlayerHits = %d, want 1", report.PlayerHits)
	}
}

func TestResolveCollisions_EnemyBulletSkipsDeadPlayer(t *testing.T) {
	dead := NewPlayer("dead", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)
	dead.Health = 0
	alive := NewPlayer("alive", "", domain.Vec2{X: 100, Y: 100}, domain.ColorBlue)
	w := &World{
		Players:      []*Player{dead, alive},
		EnemyBullets: []*Bullet{enemyBulletAt(110, 110, 5)},
	}

	ResolveCollisions(w)

	if dead.Health != 0 || alive.Health != 95 {
		t.Errorf("health = %d/%d, want 0/95", dead.Health, alive.Health)
	}
}

func TestResolveCollisions_ContactDoublesDamage(t *testing.T) {
	p := NewPlayer("p1", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)
	e := NewEnemy(1, Archetypes[KindBrute], domain.Vec2{X: 110, Y: 110})
	w := &World{Players: []*Player{p}, Enemies: []*Enemy{e}}

	report := ResolveCollisions(w)

	if p.Health != 80 {
		t.Errorf("player health = %d, want 80", p.Health)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(w.Enemies))
	}
	if report.Contacts != 1 || report.ScoreGained != 0 || w.Score != 0 {
		t.Errorf("report = %+v score = %d, want one contact and no score", report, w.Score)
	}
}

// 同じ tick に複数の弾が同じ敵に当たっても、スコアは撃破1回分だけ
func TestResolveCollisions_ScoreCreditedOncePerKill(t *testing.T) {
	e := NewEnemy(1, Archetypes[KindGrunt], domain.Vec2{X: 300, Y: 300})
	e.Health = 10
	w := &World{
		Players:       []*Player{NewPlayer("p1", "", domain.Vec2{X: 0, Y: 0}, domain.ColorGreen)},
		Enemies:       []*Enemy{e},
		PlayerBullets: []*Bullet{playerBulletAt(305, 305), playerBulletAt(306, 306)},
	}

	report := ResolveCollisions(w)

	if report.Kills != 1 || report.ScoreGained != 5 || w.Score != 5 {
		t.Errorf("report = %+v score = %d, want one kill worth 5", report, w.Score)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(w.Enemies))
	}
	if len(w.PlayerBullets) != 1 {
		t.Errorf("player bullets = %d, want the second bullet to survive", len(w.PlayerBullets))
	}
}

func TestResolveCollisions_DamagedEnemySurvives(t *testing.T) {
	e := NewEnemy(1, Archetypes[KindUnicorn], domain.Vec2{X: 300, Y: 300})
	w := &World{
		Enemies:       []*Enemy{e},
		PlayerBullets: []*Bullet{playerBulletAt(305, 305)},
	}

	report := ResolveCollisions(w)

	if e.Health != 50 {
		t.Errorf("enemy health = %d, want 50", e.Health)
	}
	if len(w.Enemies) != 1 || report.Kills != 0 || report.EnemyHits != 1 {
		t.Errorf("report = %+v enemies = %d, want hit without kill", report, len(w.Enemies))
	}
}

// 撃った敵が先に倒されていても、弾は発射時のダメージで当たる
func TestResolveCollisions_BulletOutlivesShooter(t *testing.T) {
	p := NewPlayer("p1", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)
	w := &World{
		Players:      []*Player{p},
		EnemyBullets: []*Bullet{enemyBulletAt(110, 110, 10)},
	}

	ResolveCollisions(w)

	if p.Health != 90 {
		t.Errorf("player health = %d, want 90", p.Health)
	}
}

// 自弾で倒した敵は体当たり判定に進まない
func TestResolveCollisions_PhaseOrder(t *testing.T) {
	p := NewPlayer("p1", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)
	e := NewEnemy(1, Archetypes[KindGrunt], domain.Vec2{X: 110, Y: 110})
	e.Health = 5
	w := &World{
		Players:       []*Player{p},
		Enemies:       []*Enemy{e},
		PlayerBullets: []*Bullet{playerBulletAt(112, 112)},
	}

	report := ResolveCollisions(w)

	if p.Health != 100 {
		t.Errorf("player health = %d, want 100", p.Health)
	}
	if report.Kills != 1 || report.Contacts != 0 {
		t.Errorf("report = %+v, want kill before contact", report)
	}
}
