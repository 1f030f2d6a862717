package application

import (
	"math/rand/v2"
	"testing"
	"time"

	"skirmish/game/domain"

	"pgregory.net/rapid"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestSelectArchetype_Brackets(t *testing.T) {
	table := []Bracket{
		{Min: 0, Max: 10, Kinds: []Kind{"A"}},
		{Min: 10, Max: 20, Kinds: []Kind{"B"}},
		{Min: 20, Kinds: []Kind{"C"}},
	}
	rapid.Check(t, func(t *rapid.T) {
		rng := testRand(rapid.Uint64().Draw(t, "seed"))
		kind, ok := SelectArchetype(15, table, rng)
		if !ok || kind != "B" {
			t.Fatalf("SelectArchetype(15) = %q,%v, want B", kind, ok)
		}
	})

	tests := []struct {
		score int
		want  Kind
	}{
		{0, "A"},
		{9, "A"},
		{10, "B"},
		{20, "C"},
		{10_000, "C"},
	}
	for _, tt := range tests {
		if got, _ := SelectArchetype(tt.score, table, testRand(1)); got != tt.want {
			t.Errorf("SelectArchetype(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSelectArchetype_NoBracket(t *testing.T) {
	table := []Bracket{{Min: 10, Max: 20, Kinds: []Kind{"B"}}}
	if _, ok := SelectArchetype(5, table, testRand(1)); ok {
		t.Error("expected no selection below the first bracket")
	}
}

func TestSelectArchetype_DefaultHighScoreMix(t *testing.T) {
	seen := map[Kind]bool{}
	rng := testRand(42)
	for i := 0; i < 200; i++ {
		kind, _ := SelectArchetype(25, DefaultBrackets, rng)
		seen[kind] = true
	}
	if !seen[KindUnicorn] || !seen[KindBrute] || seen[KindGrunt] {
		t.Errorf("kinds seen at score 25 = %v, want unicorn and brute only", seen)
	}
}

func TestSpawnScheduler_Interval(t *testing.T) {
	t0 := time.Unix(100, 0)
	arena := domain.Rect{W: ArenaWidth, H: ArenaHeight}
	rapid.Check(t, func(t *rapid.T) {
		s := NewSpawnScheduler(DefaultSpawnConfig(), arena, testRand(rapid.Uint64().Draw(t, "seed")), t0)
		if iv := s.nextInterval; iv < DefaultSpawnMinInterval || iv >= DefaultSpawnMaxInterval {
			t.Fatalf("interval %s outside [3s,5s)", iv)
		}
	})
}

func TestSpawnScheduler_TrySpawn(t *testing.T) {
	t0 := time.Unix(100, 0)
	arena := domain.Rect{W: ArenaWidth, H: ArenaHeight}
	cfg := DefaultSpawnConfig()
	cfg.MinInterval = 3 * time.Second
	cfg.MaxInterval = 3 * time.Second

	s := NewSpawnScheduler(cfg, arena, testRand(7), t0)

	if e := s.TrySpawn(t0.Add(3*time.Second), 0); e != nil {
		t.Fatal("spawned at exactly the interval, want strictly greater")
	}
	e := s.TrySpawn(t0.Add(3*time.Second+time.Millisecond), 0)
	if e == nil {
		t.Fatal("expected a spawn after the interval")
	}
	if e.Archetype.Kind != KindGrunt || e.Health != 30 || e.Rect.W != 20 {
		t.Errorf("spawned %+v, want a grunt at score 0", e.Archetype)
	}

	corners := map[domain.Vec2]bool{
		{X: 50, Y: 50}:   true,
		{X: 730, Y: 50}:  true,
		{X: 50, Y: 530}:  true,
		{X: 730, Y: 530}: true,
	}
	if !corners[domain.Vec2{X: e.Rect.X, Y: e.Rect.Y}] {
		t.Errorf("spawn position (%f,%f) is not a corner", e.Rect.X, e.Rect.Y)
	}

	// 直後は次の間隔が経つまで出現しない
	if s.TrySpawn(t0.Add(4*time.Second), 0) != nil {
		t.Error("spawned again before the next interval")
	}
	next := s.TrySpawn(t0.Add(6*time.Second+2*time.Millisecond), 0)
	if next == nil || next.ID == e.ID {
		t.Errorf("expected a second spawn with a new id")
	}
}

func TestSpawnScheduler_RandomModeStaysInside(t *testing.T) {
	arena := domain.Rect{W: ArenaWidth, H: ArenaHeight}
	cfg := DefaultSpawnConfig()
	cfg.Mode = SpawnRandom
	rapid.Check(t, func(t *rapid.T) {
		s := NewSpawnScheduler(cfg, arena, testRand(rapid.Uint64().Draw(t, "seed")), time.Unix(0, 0))
		e := s.Spawn(rapid.IntRange(0, 500).Draw(t, "score"))
		if e == nil {
			t.Fatal("expected an enemy")
		}
		if e.Rect.X < 50 || e.Rect.X > 750 || e.Rect.Y < 50 || e.Rect.Y > 550 {
			t.Fatalf("position (%f,%f) outside the inset area", e.Rect.X, e.Rect.Y)
		}
	})
}

func TestParseSpawnMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SpawnMode
		wantErr bool
	}{
		{in: "", want: SpawnCorners},
		{in: "corners", want: SpawnCorners},
		{in: "random", want: SpawnRandom},
		{in: "RANDOM", wantErr: true},
		{in: "edges", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpawnMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpawnMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSpawnMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if err == nil {
				if back, _ := ParseSpawnMode(got.String()); back != got {
					t.Errorf("String round trip: %v -> %v", got, back)
				}
			}
		})
	}
}
