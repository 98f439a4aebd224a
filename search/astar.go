package search

import "github.com/gopherplan/strips/openlist"

// AStar runs eager A*: pop the lowest g+h frame, skip it if already closed,
// otherwise close and expand it. A successor that evaluates as a dead end
// under h is dropped (never generated into a frame); a successor rediscovered
// with a strictly better g is updated in place and reinserted — the stale
// open-list entry for its old priority is simply skipped when it eventually
// surfaces, since by then the frame is already closed.
func (f *Framework) AStar(isGoal GoalFunc, succ SuccessorFunc, h HeuristicFunc) *Result {
	t := newFrameTable(f.initial)
	f.stats = Stats{}

	h0, deadEnd0 := h(f.initial)
	f.stats.Evaluated++
	if deadEnd0 {
		return &Result{Status: Unsolvable, Stats: f.stats}
	}
	t.frames[1].h = h0

	open := openlist.New()
	open.Insert(1, h0)

	for {
		if f.aborted() {
			return &Result{Status: Aborted, Stats: f.stats}
		}

		handle, ok := open.Pop()
		if !ok {
			return &Result{Status: Unsolvable, Stats: f.stats}
		}
		cur := handle.(int)
		if t.frames[cur].closed {
			continue
		}
		t.frames[cur].closed = true
		f.stats.Expanded++

		if isGoal(t.frames[cur].state) {
			return &Result{Status: Solved, Plan: t.reconstructPlan(cur), Stats: f.stats}
		}

		for _, a := range succ(t.frames[cur].state) {
			f.stats.Generated++
			next, err := t.frames[cur].state.Apply(a)
			if err != nil {
				continue
			}
			g2 := t.frames[cur].g + a.Cost

			idx, isNew := t.findOrAssign(next)
			if !isNew && t.frames[idx].closed {
				continue
			}
			if !isNew && g2 >= t.frames[idx].g {
				continue
			}

			h2, deadEnd2 := h(next)
			f.stats.Evaluated++
			if deadEnd2 {
				if isNew {
					// Drop the just-allocated frame rather than leaving a
					// permanently unreachable placeholder in the table.
					t.discardNew(idx)
				}
				continue
			}

			t.frames[idx].predecessor = cur
			t.frames[idx].action = a
			t.frames[idx].g = g2
			t.frames[idx].h = h2

			fval := g2 + h2
			if g2 > f.stats.MaxGValue {
				f.stats.MaxGValue = g2
			}
			if fval > f.stats.MaxFValue {
				f.stats.MaxFValue = fval
				f.notify()
			}
			open.Insert(idx, fval)
		}
	}
}
