package application

import (
	"reflect"
	"testing"

	"skirmish/game/domain"

	"pgregory.net/rapid"
)

func TestInputBuffer_EvictsOldest(t *testing.T) {
	buf := NewInputBuffer(3)
	for _, a := range []domain.Action{domain.ActionUp, domain.ActionDown, domain.ActionLeft, domain.ActionRight} {
		buf.Add(a)
	}

	got := buf.Snapshot()
	want := []domain.Action{domain.ActionDown, domain.ActionLeft, domain.ActionRight}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot = %v, want %v", got, want)
	}
}

func TestInputBuffer_KeepsDuplicatesAndOpposites(t *testing.T) {
	buf := NewInputBuffer(5)
	buf.Add(domain.ActionUp)
	buf.Add(domain.ActionUp)
	buf.Add(domain.ActionDown)

	want := []domain.Action{domain.ActionUp, domain.ActionUp, domain.ActionDown}
	if got := buf.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot = %v, want %v", got, want)
	}
}

// 任意の入力列に対して、バッファは末尾 capacity 件を順序通りに保持する
func TestInputBuffer_FIFOProperty(t *testing.T) {
	actions := []domain.Action{domain.ActionUp, domain.ActionDown, domain.ActionLeft, domain.ActionRight, domain.ActionShoot}
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 30).Draw(t, "capacity")
		seq := rapid.SliceOf(rapid.SampledFrom(actions)).Draw(t, "seq")

		buf := NewInputBuffer(capacity)
		for _, a := range seq {
			buf.Add(a)
		}

		want := seq
		if len(want) > capacity {
			want = want[len(want)-capacity:]
		}
		if buf.Len() != len(want) {
			t.Fatalf("Len = %d, want %d", buf.Len(), len(want))
		}
		got := buf.Snapshot()
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})
}

func TestInputManager(t *testing.T) {
	m := NewInputManager(0)
	m.AddKeymap("p1", KeymapWASD)

	m.AddInput("p1", "w")
	m.AddInput("p1", "x") // 未登録キー
	m.AddInput("p1", "space")
	m.AddInput("p2", "up") // キーマップなし

	want := []domain.Action{domain.ActionUp, domain.ActionShoot}
	if got := m.Inputs("p1"); !reflect.DeepEqual(got, want) {
		t.Errorf("Inputs(p1) = %v, want %v", got, want)
	}
	if got := m.Inputs("p2"); len(got) != 0 {
		t.Errorf("Inputs(p2) = %v, want empty", got)
	}

	// スナップショットは内部状態と独立している
	snap := m.Inputs("p1")
	snap[0] = domain.ActionDown
	if got := m.Inputs("p1"); got[0] != domain.ActionUp {
		t.Errorf("snapshot aliased internal buffer")
	}

	m.AddInputs("remote", []domain.Action{domain.ActionLeft, domain.ActionShoot})
	if got := m.Inputs("remote"); len(got) != 2 {
		t.Errorf("Inputs(remote) = %v, want 2 actions", got)
	}

	m.ClearInputs("p1")
	m.ClearInputs("unknown")
	if got := m.Inputs("p1"); got == nil || len(got) != 0 {
		t.Errorf("Inputs after clear = %#v, want empty non-nil", got)
	}
}
