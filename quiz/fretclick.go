package quiz

import (
	"sort"
	"time"

	"github.com/rapidmidiex/fretui/theory"
)

type (
	// FretClick names a note and asks for every position it sounds on.
	FretClick struct {
		session
		target   theory.PitchClass
		selected map[theory.Position]bool
	}

	ClickResult struct {
		Correct []theory.Position
		Wrong   []theory.Position
		Missed  []theory.Position
		Elapsed time.Duration
	}
)

func NewFretClick(o Options) *FretClick {
	return &FretClick{session: newSession(o), selected: map[theory.Position]bool{}}
}

// Next starts a round with a random target note and no selection.
func (g *FretClick) Next() (theory.PitchClass, error) {
	if err := g.ask(); err != nil {
		return 0, err
	}
	g.target = theory.PitchClass(g.rng.Intn(theory.NumPitchClasses))
	g.selected = map[theory.Position]bool{}
	return g.target, nil
}

func (g *FretClick) Target() theory.PitchClass { return g.target }

// Toggle selects or deselects a position and reports whether it is now
// selected. Nothing changes once the round is checked.
func (g *FretClick) Toggle(pos theory.Position) bool {
	if !g.open {
		return g.selected[pos]
	}
	if g.selected[pos] {
		delete(g.selected, pos)
		return false
	}
	g.selected[pos] = true
	return true
}

func (g *FretClick) IsSelected(pos theory.Position) bool {
	return g.selected[pos]
}

// Selected lists the selection low string first.
func (g *FretClick) Selected() []theory.Position {
	out := make([]theory.Position, 0, len(g.selected))
	for pos := range g.selected {
		out = append(out, pos)
	}
	sortPositions(out)
	return out
}

// Check scores the round. It only counts when nothing was missed and
// nothing wrong was picked.
func (g *FretClick) Check() (ClickResult, error) {
	if !g.open {
		return ClickResult{}, ErrNotAsked
	}
	var res ClickResult
	want := map[theory.Position]bool{}
	for _, pos := range theory.PositionsOf(g.target) {
		want[pos] = true
		if g.selected[pos] {
			res.Correct = append(res.Correct, pos)
		} else {
			res.Missed = append(res.Missed, pos)
		}
	}
	for _, pos := range g.Selected() {
		if !want[pos] {
			res.Wrong = append(res.Wrong, pos)
		}
	}
	res.Elapsed = g.answer(res.Perfect())
	return res, nil
}

func (r ClickResult) Perfect() bool {
	return len(r.Wrong) == 0 && len(r.Missed) == 0
}

func sortPositions(ps []theory.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].String != ps[j].String {
			return ps[i].String < ps[j].String
		}
		return ps[i].Fret < ps[j].Fret
	})
}
