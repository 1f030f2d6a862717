package application

import (
	"context"
	"log/slog"
	"time"

	"skirmish/game/domain"
	"skirmish/utils"
)

// applyInbound は受信イベントをシミュレーション goroutine 上で適用します。
func (s *GameSession) applyInbound(ctx context.Context, now time.Time) {
	if s.replicator == nil {
		return
	}
	for _, msg := range s.replicator.Drain() {
		s.apply(ctx, now, msg)
	}
}

func (s *GameSession) apply(ctx context.Context, now time.Time, msg domain.Message) {
	switch p := msg.Payload.(type) {
	case *domain.InfoPayload:
		s.applyRoster(ctx, p)
	case *domain.MovePayload:
		if s.cfg.Role == domain.RoleHost {
			s.applyMove(p)
		}
	case *domain.GameStatePayload:
		if s.cfg.Role == domain.RoleClient {
			s.applyGameState(now, p)
		}
	default:
		slog.WarnContext(ctx, "unhandled inbound event", "event", msg.Event, "seq", msg.Seq)
	}
}

// applyRoster は未知の UID のプレイヤーを既定の位置に追加します。
func (s *GameSession) applyRoster(ctx context.Context, info *domain.InfoPayload) {
	for _, entry := range info.ClientList {
		if entry.UID == "" {
			continue
		}
		if p, ok := s.world.Player(entry.UID); ok {
			if entry.Name != "" {
				p.Name = entry.Name
			}
			continue
		}
		s.addRemotePlayer(entry.UID, entry.Name)
		slog.InfoContext(ctx, "player joined", "uid", entry.UID, "name", entry.Name)
	}
}

func (s *GameSession) addRemotePlayer(uid, name string) *Player {
	p := NewPlayer(uid, name, s.cfg.RemoteSpawn, s.cfg.RemoteColor)
	s.world.Players = append(s.world.Players, p)
	return p
}

// applyMove はクライアントから届いた入力を入力バッファに積みます。未知のアクションは捨てます。
func (s *GameSession) applyMove(move *domain.MovePayload) {
	if move.UID == "" {
		return
	}
	valid := move.Inputs[:0:0]
	for _, a := range move.Inputs {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	s.inputs.AddInputs(move.UID, valid)
}

// applyGameState はホストのスナップショットで位置と体力を上書きします。補間は行いません。
// 知らない UID の行は無視します。プレイヤーは info のロスターでのみ追加されます。
func (s *GameSession) applyGameState(now time.Time, state *domain.GameStatePayload) {
	for _, ps := range state.Players {
		if !utils.FiniteXY(ps.X, ps.Y) {
			continue
		}
		p, ok := s.world.Player(ps.UID)
		if !ok {
			continue
		}
		dx, dy := ps.X-p.Rect.X, ps.Y-p.Rect.Y
		p.Rect.X, p.Rect.Y = ps.X, ps.Y
		p.Health = ps.Health
		p.moving = dx != 0 || dy != 0
		p.Facing = facingFromDelta(dx, dy, p.Facing)
		p.action = p.anim.action(now, p.moving)
	}

	enemies := make([]*Enemy, 0, len(state.NPCs))
	seen := make(map[uint64]struct{}, len(state.NPCs))
	for _, n := range state.NPCs {
		if !utils.FiniteXY(n.X, n.Y) {
			continue
		}
		seen[n.ID] = struct{}{}
		e, ok := s.mirrored[n.ID]
		if !ok {
			a, known := s.cfg.Spawn.Archetypes[Kind(n.Kind)]
			if !known {
				a = Archetypes[KindGrunt]
				a.Kind = Kind(n.Kind)
			}
			e = NewEnemy(n.ID, a, domain.Vec2{X: n.X, Y: n.Y})
			s.mirrored[n.ID] = e
		}
		action := ActionIdle
		if n.X != e.Rect.X || n.Y != e.Rect.Y {
			action = ActionMove
		}
		e.Rect.X, e.Rect.Y = n.X, n.Y
		e.Health, e.MaxHealth = n.Health, n.MaxHealth
		e.Facing = n.Facing
		e.anim.Advance(now, action)
		enemies = append(enemies, e)
	}
	for id := range s.mirrored {
		if _, ok := seen[id]; !ok {
			delete(s.mirrored, id)
		}
	}
	s.world.Enemies = enemies

	s.world.PlayerBullets = s.world.PlayerBullets[:0]
	s.world.EnemyBullets = s.world.EnemyBullets[:0]
	for _, bs := range state.Bullets {
		if !utils.FiniteXY(bs.X, bs.Y) {
			continue
		}
		b := &Bullet{
			Rect:       domain.Rect{X: bs.X, Y: bs.Y, W: BulletSize, H: BulletSize},
			EnemyFired: bs.EnemyFired,
			Color:      domain.ColorWhite,
		}
		if bs.EnemyFired {
			b.Color = domain.ColorRed
			s.world.EnemyBullets = append(s.world.EnemyBullets, b)
			continue
		}
		s.world.PlayerBullets = append(s.world.PlayerBullets, b)
	}
	s.world.Score = state.Score
}

// Snapshot はクライアントに配信する現在の状態を返します。
func (s *GameSession) Snapshot() *domain.GameStatePayload {
	w := s.world
	state := &domain.GameStatePayload{
		Players: make([]domain.PlayerSnapshot, 0, len(w.Players)),
		NPCs:    make([]domain.NPCSnapshot, 0, len(w.Enemies)),
		Bullets: make([]domain.BulletSnapshot, 0, len(w.PlayerBullets)+len(w.EnemyBullets)),
		Score:   w.Score,
	}
	for _, p := range w.Players {
		state.Players = append(state.Players, domain.PlayerSnapshot{
			UID:    p.UID,
			X:      p.Rect.X,
			Y:      p.Rect.Y,
			Health: p.Health,
		})
	}
	for _, e := range w.Enemies {
		state.NPCs = append(state.NPCs, domain.NPCSnapshot{
			ID:        e.ID,
			Kind:      string(e.Archetype.Kind),
			X:         e.Rect.X,
			Y:         e.Rect.Y,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Facing:    e.Facing,
		})
	}
	for _, bullets := range [][]*Bullet{w.PlayerBullets, w.EnemyBullets} {
		for _, b := range bullets {
			state.Bullets = append(state.Bullets, domain.BulletSnapshot{X: b.Rect.X, Y: b.Rect.Y, EnemyFired: b.EnemyFired})
		}
	}
	return state
}

// facingFromDelta は移動量から向きを決めます。縦方向の移動を優先し、動いていなければ current のままです。
func facingFromDelta(dx, dy float64, current domain.Facing) domain.Facing {
	switch {
	case dy < 0:
		return domain.FacingUp
	case dy > 0:
		return domain.FacingDown
	case dx < 0:
		return domain.FacingLeft
	case dx > 0:
		return domain.FacingRight
	}
	return current
}
