package application

import (
	"testing"
	"time"

	"skirmish/game/domain"
)

func TestEnemy_ChaseNearestFirstOnTie(t *testing.T) {
	e := NewEnemy(1, Archetypes[KindGrunt], domain.Vec2{X: 90, Y: 90}) // centre (100,100)
	left := NewPlayer("left", "", domain.Vec2{X: 30, Y: 80}, domain.ColorGreen)
	right := NewPlayer("right", "", domain.Vec2{X: 130, Y: 80}, domain.ColorBlue)

	e.Chase(time.Unix(100, 0), []*Player{left, right})

	// 同距離なら先頭のプレイヤーを追う。斜めは各軸 speed ずつ進む
	if e.Rect.X != 88 || e.Rect.Y != 88 {
		t.Errorf("position = (%f,%f), want (88,88)", e.Rect.X, e.Rect.Y)
	}
	if e.Facing != domain.FacingUp {
		t.Errorf("facing = %s, want up", e.Facing)
	}
	if e.AnimationKey().Action != ActionMove {
		t.Errorf("action = %s, want move", e.AnimationKey().Action)
	}
}

func TestEnemy_ChaseIgnoresDeadPlayers(t *testing.T) {
	e := NewEnemy(1, Archetypes[KindUnicorn], domain.Vec2{X: 100, Y: 100})
	dead := NewPlayer("dead", "", domain.Vec2{X: 90, Y: 100}, domain.ColorGreen)
	dead.Health = 0
	alive := NewPlayer("alive", "", domain.Vec2{X: 500, Y: 100}, domain.ColorBlue)

	e.Chase(time.Unix(100, 0), []*Player{dead, alive})

	if e.Rect.X != 101.5 || e.Rect.Y != 100 {
		t.Errorf("position = (%f,%f), want (101.5,100)", e.Rect.X, e.Rect.Y)
	}
	if e.Facing != domain.FacingRight {
		t.Errorf("facing = %s, want right", e.Facing)
	}
}

func TestEnemy_ChaseWithoutPlayersIdles(t *testing.T) {
	e := NewEnemy(1, Archetypes[KindGrunt], domain.Vec2{X: 100, Y: 100})
	e.Chase(time.Unix(100, 0), nil)
	if e.Rect.X != 100 || e.Rect.Y != 100 {
		t.Errorf("enemy moved without target: (%f,%f)", e.Rect.X, e.Rect.Y)
	}
	if e.AnimationKey().Action != ActionIdle {
		t.Errorf("action = %s, want idle", e.AnimationKey().Action)
	}
}

func TestEnemy_ShootCooldown(t *testing.T) {
	t0 := time.Unix(100, 0)
	e := NewEnemy(7, Archetypes[KindBrute], domain.Vec2{X: 300, Y: 300})
	players := []*Player{NewPlayer("p1", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)}

	b := e.Shoot(t0, players)
	if b == nil {
		t.Fatal("first shot should fire")
	}
	if !b.EnemyFired || b.Damage != 10 || b.ShooterID != "npc-7" {
		t.Errorf("bullet = %+v, want enemy-fired, damage 10, shooter npc-7", b)
	}
	if e.Shoot(t0.Add(499*time.Millisecond), players) != nil {
		t.Error("shot inside cooldown should be blocked")
	}
	if e.Shoot(t0.Add(500*time.Millisecond), players) == nil {
		t.Error("shot after cooldown should fire")
	}
}

func TestEnemy_ShootWithoutLivingPlayers(t *testing.T) {
	e := NewEnemy(1, Archetypes[KindGrunt], domain.Vec2{X: 300, Y: 300})
	p := NewPlayer("p1", "", domain.Vec2{X: 100, Y: 100}, domain.ColorGreen)
	p.Health = -5

	if b := e.Shoot(time.Unix(100, 0), []*Player{p}); b != nil {
		t.Errorf("Shoot = %+v, want nil", b)
	}
}
