package view

import (
	"errors"
	"testing"
	"time"

	"golife/internal/core"
	"golife/internal/life"
)

func seededBoard(t *testing.T, w, h int, points []life.Point) *life.Universe {
	t.Helper()
	u := life.New(w, h, core.NewRNG(1))
	u.Clear()
	if err := u.SetCells(points); err != nil {
		t.Fatal(err)
	}
	return u
}

func waitDone(t *testing.T, r *Runner) {
	t.Helper()
	select {
	case <-r.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("run did not finish in time")
	}
}

func TestManualStepAdvancesOneGeneration(t *testing.T) {
	u := seededBoard(t, 5, 5, []life.Point{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})
	r := NewRunner(u, time.Millisecond, 0)

	r.Step()
	r.Step()
	r.Step()

	st := r.Status()
	if st.Iteration != 3 {
		t.Fatalf("iteration = %d, expected 3", st.Iteration)
	}
	if st.Mode != ModeManual {
		t.Fatalf("mode = %v, expected manual", st.Mode)
	}
	if st.Population != 3 {
		t.Fatalf("blinker population = %d, expected 3", st.Population)
	}
}

func TestRunFinishesWhenBoardGoesStatic(t *testing.T) {
	// A 2x2 block is a still life: the first tick changes nothing.
	u := seededBoard(t, 4, 4, []life.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}})
	r := NewRunner(u, time.Millisecond, 0)

	r.Run()
	waitDone(t, r)

	st := r.Status()
	if st.Mode != ModeFinished {
		t.Fatalf("mode = %v, expected finished", st.Mode)
	}
	if st.Iteration != 1 {
		t.Fatalf("iteration = %d, expected 1", st.Iteration)
	}
	if st.Population != 4 {
		t.Fatalf("population = %d, expected 4", st.Population)
	}
}

func TestRunFinishesOnExtinction(t *testing.T) {
	u := seededBoard(t, 4, 4, []life.Point{{Row: 2, Col: 2}})
	r := NewRunner(u, time.Millisecond, 0)

	r.Run()
	waitDone(t, r)

	st := r.Status()
	if st.Population != 0 {
		t.Fatalf("population = %d, expected 0", st.Population)
	}
	if st.Iteration != 1 {
		t.Fatalf("iteration = %d, expected 1", st.Iteration)
	}
}

func TestRunHonorsStepLimit(t *testing.T) {
	// A blinker oscillates forever, so only the limit can stop it.
	u := seededBoard(t, 5, 5, []life.Point{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})
	r := NewRunner(u, time.Millisecond, 4)

	r.Run()
	waitDone(t, r)

	st := r.Status()
	if st.Iteration != 4 {
		t.Fatalf("iteration = %d, expected 4", st.Iteration)
	}
	if st.Mode != ModeFinished {
		t.Fatalf("mode = %v, expected finished", st.Mode)
	}
}

func TestToggleRejectsOutOfBounds(t *testing.T) {
	u := seededBoard(t, 3, 3, nil)
	r := NewRunner(u, time.Millisecond, 0)

	if err := r.Toggle(5, 5); !errors.Is(err, life.ErrOutOfBounds) {
		t.Fatalf("got %v, expected ErrOutOfBounds", err)
	}
	if err := r.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	if st := r.Status(); st.Population != 1 {
		t.Fatalf("population = %d after toggle, expected 1", st.Population)
	}
}

func TestClearResetsCountersAndBoard(t *testing.T) {
	u := seededBoard(t, 5, 5, []life.Point{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})
	r := NewRunner(u, time.Millisecond, 0)

	r.Step()
	r.Clear()

	st := r.Status()
	if st.Iteration != 0 || st.Population != 0 {
		t.Fatalf("after Clear: iteration=%d population=%d", st.Iteration, st.Population)
	}
	if st.Mode != ModeManual {
		t.Fatalf("mode = %v, expected manual", st.Mode)
	}
}

func TestViewersAreNotifiedOnChange(t *testing.T) {
	u := seededBoard(t, 3, 3, nil)
	r := NewRunner(u, time.Millisecond, 0)

	calls := 0
	r.OnChange(func() { calls++ })

	r.Step()
	if calls == 0 {
		t.Fatal("viewer was not notified by Step")
	}
}

func TestBoardSnapshotSurvivesNextTick(t *testing.T) {
	u := seededBoard(t, 5, 5, []life.Point{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})
	r := NewRunner(u, time.Millisecond, 0)

	_, before := r.Board()
	r.Step()
	_, after := r.Board()

	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("blinker snapshot identical across a tick; Board must copy, not alias")
	}
}
