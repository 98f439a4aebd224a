package search

import (
	"sync/atomic"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/state"
)

// Status is the terminal outcome of a search run.
type Status int

const (
	Solved Status = iota
	Unsolvable
	Aborted
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "SOLVED"
	case Unsolvable:
		return "UNSOLVABLE"
	case Aborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// Stats accumulates the counters the CLI driver reports alongside a result.
type Stats struct {
	Expanded   int
	Generated  int
	Evaluated  int
	MaxDepth   int
	MaxGValue  float64
	MaxFValue  float64
}

// Result is what a strategy returns: the outcome, the plan when Solved (nil
// otherwise), and the statistics collected up to termination.
type Result struct {
	Status Status
	Plan   []*gaction.Action
	Stats  Stats
}

// SuccessorFunc returns every ground action applicable in s.
type SuccessorFunc func(s *state.State) []*gaction.Action

// GoalFunc reports whether s satisfies the problem's goal.
type GoalFunc func(s *state.State) bool

// HeuristicFunc evaluates s, returning an admissible cost estimate and
// whether s is a known dead end.
type HeuristicFunc func(s *state.State) (cost float64, deadEnd bool)

// Option configures a Framework at construction time.
type Option func(*Framework)

// WithHandler registers a nullary callback invoked whenever a strategy's
// progress metric advances (max_depth for BFS, max_f_value for A*/Dijkstra).
func WithHandler(fn func()) Option {
	return func(f *Framework) {
		f.handlers = append(f.handlers, fn)
	}
}

// Framework holds the state every strategy shares: the problem and initial
// state being searched, a cooperative abort flag, progress handlers, and
// running statistics.
type Framework struct {
	problem *formalism.Problem
	initial *state.State

	abort    atomic.Bool
	handlers []func()
	stats    Stats
}

// NewFramework constructs a Framework for one search over problem, starting
// from initial.
func NewFramework(problem *formalism.Problem, initial *state.State, opts ...Option) *Framework {
	f := &Framework{problem: problem, initial: initial}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Abort requests cancellation; the running strategy observes this between
// expansions and returns Aborted with the statistics collected so far. Safe
// to call from another goroutine.
func (f *Framework) Abort() { f.abort.Store(true) }

func (f *Framework) aborted() bool { return f.abort.Load() }

func (f *Framework) notify() {
	for _, h := range f.handlers {
		h()
	}
}

// Problem returns the problem this framework was built for.
func (f *Framework) Problem() *formalism.Problem { return f.problem }

// Stats returns a snapshot of the running statistics collected so far. Safe
// to call from a progress handler registered with WithHandler, which runs on
// the same goroutine as the strategy between expansions.
func (f *Framework) Stats() Stats { return f.stats }

// frame is one discovered state: its predecessor index, the action that
// reached it from that predecessor (nil for the initial state), and the
// strategy-specific fields each search populates.
type frame struct {
	state       *state.State
	predecessor int
	action      *gaction.Action
	depth       int
	g           float64
	h           float64
	closed      bool
}

// frameTable assigns dense indices to discovered states, indices starting
// at 1 so that index 0 is a reserved dummy frame: the initial state's
// predecessor, where plan reconstruction stops.
type frameTable struct {
	frames []frame
	byHash map[uint64][]int
}

func newFrameTable(initial *state.State) *frameTable {
	t := &frameTable{
		frames: []frame{{}, {state: initial, predecessor: 0}},
		byHash: make(map[uint64][]int),
	}
	t.byHash[initial.Hash()] = []int{1}
	return t
}

// findOrAssign returns the dense index of s, assigning the next index if s
// has not been seen before.
func (t *frameTable) findOrAssign(s *state.State) (idx int, isNew bool) {
	h := s.Hash()
	for _, cand := range t.byHash[h] {
		if t.frames[cand].state.Equal(s) {
			return cand, false
		}
	}
	idx = len(t.frames)
	t.frames = append(t.frames, frame{state: s})
	t.byHash[h] = append(t.byHash[h], idx)
	return idx, true
}

// discardNew undoes the most recent findOrAssign call that returned isNew,
// removing its frame and hash-bucket entry. Only valid when idx is still the
// table's highest index (no other insertion has happened since).
func (t *frameTable) discardNew(idx int) {
	h := t.frames[idx].state.Hash()
	bucket := t.byHash[h]
	if n := len(bucket); n > 0 && bucket[n-1] == idx {
		if n == 1 {
			delete(t.byHash, h)
		} else {
			t.byHash[h] = bucket[:n-1]
		}
	}
	t.frames = t.frames[:idx]
}

// reconstructPlan walks predecessor indices from idx back to the dummy at
// index 0, accumulating actions, then reverses them into start-to-goal order.
func (t *frameTable) reconstructPlan(idx int) []*gaction.Action {
	var acts []*gaction.Action
	for idx != 0 {
		fr := t.frames[idx]
		if fr.action != nil {
			acts = append(acts, fr.action)
		}
		idx = fr.predecessor
	}
	for i, j := 0, len(acts)-1; i < j; i, j = i+1, j-1 {
		acts[i], acts[j] = acts[j], acts[i]
	}
	return acts
}
