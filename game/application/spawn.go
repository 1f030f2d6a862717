package application

import (
	"fmt"
	"math/rand/v2"
	"time"

	"skirmish/game/domain"
)

const (
	DefaultSpawnMinInterval = 3000 * time.Millisecond
	DefaultSpawnMaxInterval = 5000 * time.Millisecond
	DefaultSpawnInset       = 50.0
)

// SpawnMode は出現位置の決め方です。
type SpawnMode uint8

const (
	SpawnCorners SpawnMode = iota // 四隅から内側に Inset だけ入った位置
	SpawnRandom                   // Inset の内側の一様乱数位置
)

func (m SpawnMode) String() string {
	if m == SpawnRandom {
		return "random"
	}
	return "corners"
}

// ParseSpawnMode は "corners" / "random" を SpawnMode に変換します。空文字は corners です。
func ParseSpawnMode(s string) (SpawnMode, error) {
	switch s {
	case "corners", "":
		return SpawnCorners, nil
	case "random":
		return SpawnRandom, nil
	}
	return SpawnCorners, fmt.Errorf("unknown spawn mode %q", s)
}

// Bracket はスコア帯 [Min, Max) ごとの出現候補です。Max <= 0 は上限なしです。
type Bracket struct {
	Min   int
	Max   int
	Kinds []Kind
}

func (b Bracket) contains(score int) bool {
	return score >= b.Min && (b.Max <= 0 || score < b.Max)
}

// DefaultBrackets は既定のスコア帯です。
var DefaultBrackets = []Bracket{
	{Min: 0, Max: 10, Kinds: []Kind{KindGrunt}},
	{Min: 10, Max: 20, Kinds: []Kind{KindUnicorn}},
	{Min: 20, Kinds: []Kind{KindUnicorn, KindBrute}},
}

// SelectArchetype はスコアに該当するスコア帯から一様に種類を選びます。
func SelectArchetype(score int, brackets []Bracket, rng *rand.Rand) (Kind, bool) {
	for _, b := range brackets {
		if !b.contains(score) || len(b.Kinds) == 0 {
			continue
		}
		return b.Kinds[rng.IntN(len(b.Kinds))], true
	}
	return "", false
}

// SpawnConfig は出現スケジューラの設定です。
type SpawnConfig struct {
	MinInterval time.Duration
	MaxInterval time.Duration
	Mode        SpawnMode
	Inset       float64
	Brackets    []Bracket
	Archetypes  map[Kind]Archetype
}

func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		MinInterval: DefaultSpawnMinInterval,
		MaxInterval: DefaultSpawnMaxInterval,
		Mode:        SpawnCorners,
		Inset:       DefaultSpawnInset,
		Brackets:    DefaultBrackets,
		Archetypes:  Archetypes,
	}
}

// SpawnScheduler は時間とスコアに応じて敵を出現させます。
type SpawnScheduler struct {
	cfg          SpawnConfig
	arena        domain.Rect
	rng          *rand.Rand
	lastSpawn    time.Time
	nextInterval time.Duration
	nextID       uint64
}

func NewSpawnScheduler(cfg SpawnConfig, arena domain.Rect, rng *rand.Rand, now time.Time) *SpawnScheduler {
	if cfg.Archetypes == nil {
		cfg.Archetypes = Archetypes
	}
	if cfg.Brackets == nil {
		cfg.Brackets = DefaultBrackets
	}
	s := &SpawnScheduler{
		cfg:       cfg,
		arena:     arena,
		rng:       rng,
		lastSpawn: now,
	}
	s.nextInterval = s.drawInterval()
	return s
}

// TrySpawn は前回の出現から nextInterval を超えていれば1体出現させます。
func (s *SpawnScheduler) TrySpawn(now time.Time, score int) *Enemy {
	if now.Sub(s.lastSpawn) <= s.nextInterval {
		return nil
	}
	e := s.Spawn(score)
	s.lastSpawn = now
	s.nextInterval = s.drawInterval()
	return e
}

// Spawn は時間に関係なく1体生成します。該当するスコア帯が無ければ nil を返します。
func (s *SpawnScheduler) Spawn(score int) *Enemy {
	kind, ok := SelectArchetype(score, s.cfg.Brackets, s.rng)
	if !ok {
		return nil
	}
	a, ok := s.cfg.Archetypes[kind]
	if !ok {
		return nil
	}
	s.nextID++
	return NewEnemy(s.nextID, a, s.position(a.Size))
}

func (s *SpawnScheduler) position(size float64) domain.Vec2 {
	inset := s.cfg.Inset
	left, top := s.arena.X+inset, s.arena.Y+inset
	right := s.arena.X + s.arena.W - inset
	bottom := s.arena.Y + s.arena.H - inset

	if s.cfg.Mode == SpawnRandom {
		return domain.Vec2{
			X: left + s.rng.Float64()*max(right-left, 0),
			Y: top + s.rng.Float64()*max(bottom-top, 0),
		}
	}
	corners := [...]domain.Vec2{
		{X: left, Y: top},
		{X: right - size, Y: top},
		{X: left, Y: bottom - size},
		{X: right - size, Y: bottom - size},
	}
	return corners[s.rng.IntN(len(corners))]
}

// drawInterval は [MinInterval, MaxInterval) から一様に待ち時間を選びます。
func (s *SpawnScheduler) drawInterval() time.Duration {
	lo, hi := s.cfg.MinInterval, s.cfg.MaxInterval
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rng.Int64N(int64(hi-lo)))
}
