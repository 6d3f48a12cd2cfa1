package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/rapidmidiex/fretui/theory"
)

// AllTypes offers every triad type whose root can be told from its shape.
const AllTypes = "all"

var ErrTriadType = errors.New("triad type not offered")

type (
	// RootID shows a triad voicing and asks which of its notes is the root.
	RootID struct {
		session
		types   []theory.TriadType
		current RootQuestion
		prevKey string
	}

	RootQuestion struct {
		Root      theory.PitchClass
		Type      theory.TriadType
		Set       theory.StringSet
		Inversion int
		Voicing   theory.Voicing
		ShapeKey  string
	}

	RootAnswer struct {
		Correct bool
		// Root is the index of the root within the voicing.
		Root    int
		Elapsed time.Duration
	}
)

// RootIDTriadTypes resolves a type filter. Symmetric triads are never
// offered since any of their notes could be the root.
func RootIDTriadTypes(filter string) ([]theory.TriadType, error) {
	var types []theory.TriadType
	for _, t := range theory.TriadTypes() {
		if t.Symmetric() {
			continue
		}
		if filter == AllTypes || filter == t.ID {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTriadType, filter)
	}
	return types, nil
}

func NewRootID(o Options, filter string) (*RootID, error) {
	types, err := RootIDTriadTypes(filter)
	if err != nil {
		return nil, err
	}
	return &RootID{session: newSession(o), types: types}, nil
}

// Next builds a random voicing whose shape differs from the previous one.
func (g *RootID) Next() (RootQuestion, error) {
	if err := g.ask(); err != nil {
		return RootQuestion{}, err
	}
	g.current = distinct(g.draw, func(q RootQuestion) bool {
		return g.prevKey != "" && q.ShapeKey == g.prevKey
	})
	g.prevKey = g.current.ShapeKey
	return g.current, nil
}

func (g *RootID) draw() RootQuestion {
	sets := theory.StringSets()
	q := RootQuestion{
		Root:      theory.PitchClass(g.rng.Intn(theory.NumPitchClasses)),
		Type:      g.types[g.rng.Intn(len(g.types))],
		Set:       sets[g.rng.Intn(len(sets))],
		Inversion: g.rng.Intn(theory.NumInversions),
	}
	q.Voicing = theory.BuildVoicing(q.Root, q.Type, q.Set, q.Inversion)
	q.ShapeKey = theory.ShapeKey(q.Type, q.Set, q.Inversion)
	return q
}

func (g *RootID) Current() RootQuestion { return g.current }

// Pick answers with the voicing note at index, counted from the lowest
// string.
func (g *RootID) Pick(index int) (RootAnswer, error) {
	if !g.open {
		return RootAnswer{}, ErrNotAsked
	}
	if index < 0 || index >= len(g.current.Voicing) {
		return RootAnswer{}, &theory.IndexError{Kind: "voicing note", Value: index, Limit: len(g.current.Voicing)}
	}
	correct := g.current.Voicing[index].IsRoot
	return RootAnswer{
		Correct: correct,
		Root:    g.current.Voicing.Root(),
		Elapsed: g.answer(correct),
	}, nil
}
