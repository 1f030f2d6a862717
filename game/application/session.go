package application

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"skirmish/game/domain"
)

// Outcome はセッションの終わり方です。
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeQuit Outcome = "quit"
)

// Result はセッション終了時の結果です。
type Result struct {
	Outcome Outcome
	Score   int
}

// Replicator はネットワーク同期の能力です。ネットワークを使わないセッションでは nil です。
type Replicator interface {
	// Connected は接続が確立しているかを返します。
	Connected() bool
	// Drain は前回呼び出し以降に受信したイベントを返します。ブロックしません。
	Drain() []domain.Message
	// Publish はイベントを送信キューに積みます。ブロックしません。
	Publish(event domain.EventName, payload any) error
}

const statusConnecting = "connecting..."

// GameSession は固定レートでシミュレーションと描画を進めるゲームループです。
// エンティティの集合はすべてこの構造体が所有し、Run を呼んだ goroutine だけが触ります。
type GameSession struct {
	cfg        Config
	clock      domain.Clock
	rng        *rand.Rand
	device     domain.InputDevice
	renderer   domain.Renderer
	frames     *FrameResolver
	replicator Replicator

	inputs  *InputManager
	world   *World
	spawner *SpawnScheduler
	bots    map[string]*RuleBotController

	// クライアント側でスナップショットの敵を ID で引くための索引
	mirrored map[uint64]*Enemy

	ended  bool
	result Result
}

// Option は GameSession のコラボレータを差し替えます。
type Option func(*GameSession)

func WithClock(c domain.Clock) Option {
	return func(s *GameSession) { s.clock = c }
}

func WithRand(r *rand.Rand) Option {
	return func(s *GameSession) { s.rng = r }
}

func WithInputDevice(d domain.InputDevice) Option {
	return func(s *GameSession) { s.device = d }
}

func WithRenderer(r domain.Renderer) Option {
	return func(s *GameSession) { s.renderer = r }
}

func WithFrameSource(src domain.FrameSource) Option {
	return func(s *GameSession) { s.frames = NewFrameResolver(src) }
}

func WithReplicator(r Replicator) Option {
	return func(s *GameSession) { s.replicator = r }
}

// NewGameSession は設定に従ってプレイヤーを配置したセッションを生成します。
func NewGameSession(cfg Config, opts ...Option) *GameSession {
	s := &GameSession{
		cfg:      cfg,
		clock:    domain.SystemClock{},
		renderer: NopRenderer{},
		world:    &World{},
		bots:     make(map[string]*RuleBotController),
		mirrored: make(map[uint64]*Enemy),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if s.frames == nil {
		s.frames = NewFrameResolver(nil)
	}

	s.inputs = NewInputManager(cfg.InputCap)
	for _, pt := range cfg.Participants {
		s.world.Players = append(s.world.Players, NewPlayer(pt.UID, pt.Name, pt.Spawn, pt.Color))
		if pt.Keymap != nil {
			s.inputs.AddKeymap(pt.UID, pt.Keymap)
		}
		if pt.Bot {
			s.bots[pt.UID] = NewRuleBotController(s.rng)
		}
	}

	if cfg.Role != domain.RoleClient {
		s.spawner = NewSpawnScheduler(cfg.Spawn, cfg.Arena, s.rng, s.clock.Now())
		if cfg.InitialSpawn {
			if e := s.spawner.Spawn(0); e != nil {
				s.world.Enemies = append(s.world.Enemies, e)
			}
		}
	}
	return s
}

func (s *GameSession) World() *World {
	return s.world
}

func (s *GameSession) Inputs() *InputManager {
	return s.inputs
}

func (s *GameSession) Ended() bool {
	return s.ended
}

func (s *GameSession) Result() Result {
	return s.result
}

// Run は TickRate に従って Step を呼び続け、セッションが終わるかコンテキストがキャンセルされるまでブロックします。
// キャンセルされた場合は quit として結果を返します。
func (s *GameSession) Run(ctx context.Context) (Result, error) {
	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	slog.InfoContext(ctx, "game session started",
		"role", s.cfg.Role.String(),
		"self", s.cfg.Self,
		"players", len(s.world.Players),
		"tickRate", s.cfg.TickRate,
	)

	for {
		select {
		case <-ctx.Done():
			s.end(OutcomeQuit)
			slog.InfoContext(ctx, "game session cancelled", "score", s.result.Score)
			return s.result, nil
		case <-ticker.C:
			if s.Step(ctx, s.clock.Now()) {
				slog.InfoContext(ctx, "game session ended",
					"outcome", s.result.Outcome,
					"score", s.result.Score,
				)
				return s.result, nil
			}
		}
	}
}

// Step は1tick分の処理を固定の順序で行い、セッションが終了したかを返します。
func (s *GameSession) Step(ctx context.Context, now time.Time) bool {
	if s.ended {
		return true
	}

	// 1. デバイスイベント
	if s.device != nil {
		for _, ev := range s.device.PollEvents() {
			if ev.Kind == domain.DeviceEventQuit {
				s.end(OutcomeQuit)
				return true
			}
		}
	}

	// 2. 入力の取り込みと受信イベントの適用
	s.collectInputs()
	s.applyInbound(ctx, now)

	// 3. 未接続なら状態表示のみ
	if s.replicator != nil && !s.replicator.Connected() {
		s.renderStatus(statusConnecting)
		return false
	}

	// 4. クライアントは入力を送ってスナップショットを描画するだけ
	if s.cfg.Role == domain.RoleClient {
		s.publishMove(ctx)
		s.render()
		s.checkEnd()
		return s.ended
	}

	tc := &TickContext{
		Now:     now,
		Arena:   s.cfg.Arena,
		Players: s.world.Players,
		Inputs:  s.inputs,
	}

	// 5. 出現
	if s.spawner != nil {
		if e := s.spawner.TrySpawn(now, s.world.Score); e != nil {
			s.world.Enemies = append(s.world.Enemies, e)
			slog.DebugContext(ctx, "enemy spawned", "id", e.ID, "kind", e.Archetype.Kind, "x", e.Rect.X, "y", e.Rect.Y)
		}
	}
	tc.Enemies = s.world.Enemies

	// 6. プレイヤー
	for _, p := range s.world.Players {
		if p.Alive() {
			safeUpdate(ctx, p, tc)
		}
		s.inputs.ClearInputs(p.UID)
	}
	s.world.PlayerBullets = append(s.world.PlayerBullets, tc.Fired()...)

	// 7. 敵
	for _, e := range s.world.Enemies {
		safeUpdate(ctx, e, tc)
	}
	s.world.EnemyBullets = append(s.world.EnemyBullets, tc.Fired()...)

	// 8. 弾
	s.world.PlayerBullets = advanceBullets(s.world.PlayerBullets, tc)
	s.world.EnemyBullets = advanceBullets(s.world.EnemyBullets, tc)

	// 9. 描画
	s.render()

	// 10. 衝突判定
	if report := ResolveCollisions(s.world); report != (CollisionReport{}) {
		slog.DebugContext(ctx, "collisions resolved",
			"scoreGained", report.ScoreGained,
			"kills", report.Kills,
			"contacts", report.Contacts,
			"playerHits", report.PlayerHits,
			"enemyHits", report.EnemyHits,
		)
	}

	// 11. ホストはスナップショットを配信
	if s.cfg.Role == domain.RoleHost && s.replicator != nil {
		if err := s.replicator.Publish(domain.EventGameState, s.Snapshot()); err != nil {
			slog.WarnContext(ctx, "publish game_state failed", "err", err)
		}
	}

	// 12. 終了判定
	s.checkEnd()
	return s.ended
}

// collectInputs はデバイスで押されているキーとボットの判断を入力バッファに積みます。
func (s *GameSession) collectInputs() {
	if s.device != nil {
		pressed := s.device.Pressed()
		for _, pt := range s.cfg.Participants {
			if pt.Keymap == nil {
				continue
			}
			for _, key := range pressed {
				s.inputs.AddInput(pt.UID, key)
			}
		}
	}
	for uid, bot := range s.bots {
		p, ok := s.world.Player(uid)
		if !ok {
			continue
		}
		s.inputs.AddInputs(uid, bot.Decide(p, s.world))
	}
}

func (s *GameSession) publishMove(ctx context.Context) {
	for _, pt := range s.cfg.Participants {
		inputs := s.inputs.Inputs(pt.UID)
		s.inputs.ClearInputs(pt.UID)
		if len(inputs) == 0 || s.replicator == nil {
			continue
		}
		if err := s.replicator.Publish(domain.EventMove, &domain.MovePayload{UID: pt.UID, Inputs: inputs}); err != nil {
			slog.WarnContext(ctx, "publish move failed", "uid", pt.UID, "err", err)
		}
	}
}

// checkEnd は生存プレイヤーがいなくなったら勝敗を決めます。
func (s *GameSession) checkEnd() {
	if s.world.LivingPlayers() > 0 {
		return
	}
	if s.world.Score >= s.cfg.WinScore {
		s.end(OutcomeWin)
		return
	}
	s.end(OutcomeLoss)
}

func (s *GameSession) end(outcome Outcome) {
	if s.ended {
		return
	}
	s.ended = true
	s.result = Result{Outcome: outcome, Score: s.world.Score}
}
