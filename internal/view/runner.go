package view

import (
	"slices"
	"sync"
	"time"

	"golife/internal/core"
	"golife/internal/life"
)

// Mode is the runner's execution state.
type Mode int

const (
	// ModeManual means the simulation only advances on explicit Step calls.
	ModeManual Mode = iota
	// ModeRunning means a background loop is ticking the simulation.
	ModeRunning
	// ModeFinished means the run hit its step limit or the board went static.
	ModeFinished
)

// Status is a point-in-time snapshot of a run.
type Status struct {
	Iteration  int
	Population int
	StepTime   time.Duration
	Mode       Mode
	Size       core.Size
}

// Runner drives a Universe from the terminal hosts. The universe itself
// assumes single-goroutine access, so the runner serializes every touch
// behind one mutex; viewers observe state only through Status and Board
// snapshots.
type Runner struct {
	mu       sync.Mutex
	universe *life.Universe
	interval time.Duration
	maxSteps int

	iteration int
	stepTime  time.Duration
	mode      Mode
	scratch   []life.Cell

	stop       chan struct{}
	done       chan struct{}
	doneClosed bool

	viewers []func()
}

// NewRunner wraps a universe with run control. interval paces the background
// loop; maxSteps of 0 means unlimited.
func NewRunner(u *life.Universe, interval time.Duration, maxSteps int) *Runner {
	return &Runner{
		universe: u,
		interval: interval,
		maxSteps: maxSteps,
		done:     make(chan struct{}),
	}
}

// OnChange registers a refresh hook invoked after every state change.
func (r *Runner) OnChange(fn func()) {
	r.mu.Lock()
	r.viewers = append(r.viewers, fn)
	r.mu.Unlock()
}

// Interval returns the configured delay between generations.
func (r *Runner) Interval() time.Duration { return r.interval }

// MaxSteps returns the configured step limit (0 = unlimited).
func (r *Runner) MaxSteps() int { return r.maxSteps }

// Status returns a snapshot of the current run state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Iteration:  r.iteration,
		Population: r.universe.Population(),
		StepTime:   r.stepTime,
		Mode:       r.mode,
		Size:       r.universe.Size(),
	}
}

// Board returns the dimensions and a copy of the current cells. The copy
// stays valid after the next tick, unlike the universe's own view.
func (r *Runner) Board() (core.Size, []life.Cell) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.universe.Size(), append([]life.Cell(nil), r.universe.Cells()...)
}

// Done is closed when a run finishes (step limit or static board).
func (r *Runner) Done() <-chan struct{} { return r.done }

// Step advances one generation unless a background run is active.
func (r *Runner) Step() {
	r.mu.Lock()
	if r.mode == ModeRunning {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.tick()
}

// Run starts the background loop. No-op if already running.
func (r *Runner) Run() {
	r.mu.Lock()
	if r.mode == ModeRunning {
		r.mu.Unlock()
		return
	}
	r.mode = ModeRunning
	r.stop = make(chan struct{})
	stop := r.stop
	r.mu.Unlock()
	r.notify()

	go r.loop(stop)
}

// Stop halts a background run without resetting the board.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.mode == ModeRunning {
		r.mode = ModeManual
		close(r.stop)
	}
	r.mu.Unlock()
	r.notify()
}

// Clear kills every cell and resets the run counters.
func (r *Runner) Clear() {
	r.mu.Lock()
	r.haltLocked()
	r.universe.Clear()
	r.iteration = 0
	r.stepTime = 0
	r.mu.Unlock()
	r.notify()
}

// Randomize reseeds the board and resets the run counters.
func (r *Runner) Randomize() {
	r.mu.Lock()
	r.haltLocked()
	r.universe.Randomize()
	r.iteration = 0
	r.stepTime = 0
	r.mu.Unlock()
	r.notify()
}

// Toggle flips a single cell.
func (r *Runner) Toggle(row, col int) error {
	r.mu.Lock()
	err := r.universe.ToggleCell(row, col)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

func (r *Runner) haltLocked() {
	if r.mode == ModeRunning {
		close(r.stop)
	}
	r.mode = ModeManual
}

func (r *Runner) loop(stop chan struct{}) {
	pacer := core.NewFixedStep(r.interval)
	for {
		select {
		case <-stop:
			return
		default:
		}
		if !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		if !r.tick() {
			return
		}
	}
}

// tick advances one generation and reports whether the run should continue.
// A run finishes at the step limit, or as soon as a step changes nothing
// (static board, including an extinct one).
func (r *Runner) tick() bool {
	r.mu.Lock()
	r.scratch = append(r.scratch[:0], r.universe.Cells()...)

	start := time.Now()
	r.universe.Step()
	r.stepTime = time.Since(start)
	r.iteration++

	changed := !slices.Equal(r.scratch, r.universe.Cells())
	alive := r.universe.Population() > 0
	finished := !changed || !alive || (r.maxSteps > 0 && r.iteration >= r.maxSteps)
	if finished {
		r.mode = ModeFinished
		if !r.doneClosed {
			close(r.done)
			r.doneClosed = true
		}
	} else if r.mode == ModeFinished {
		// A manual step revived a finished board.
		r.mode = ModeManual
	}
	r.mu.Unlock()
	r.notify()
	return !finished
}

func (r *Runner) notify() {
	r.mu.Lock()
	viewers := make([]func(), len(r.viewers))
	copy(viewers, r.viewers)
	r.mu.Unlock()
	for _, fn := range viewers {
		fn()
	}
}
