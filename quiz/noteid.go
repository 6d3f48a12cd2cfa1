package quiz

import (
	"strings"
	"time"

	"github.com/rapidmidiex/fretui/theory"
)

type (
	// NoteID shows a position and asks for the name of its note.
	NoteID struct {
		session
		pos     theory.Position
		prev    theory.PitchClass
		hasPrev bool
		missed  []Miss
	}

	Miss struct {
		theory.Position
		Correct theory.PitchClass
		Answer  string
	}

	NoteAnswer struct {
		Correct bool
		Note    theory.PitchClass
		Elapsed time.Duration
	}
)

func NewNoteID(o Options) *NoteID {
	return &NoteID{session: newSession(o)}
}

// Next asks a new question on a random position, frets 0 to 12, whose note
// differs from the previous question's.
func (g *NoteID) Next() (theory.Position, error) {
	if err := g.ask(); err != nil {
		return theory.Position{}, err
	}
	g.pos = distinct(
		func() theory.Position {
			return theory.Position{
				String: g.rng.Intn(theory.NumStrings),
				Fret:   g.rng.Intn(theory.FretCount + 1),
			}
		},
		func(p theory.Position) bool {
			return g.hasPrev && theory.NoteAt(p.String, p.Fret) == g.prev
		},
	)
	g.prev, g.hasPrev = g.Note(), true
	return g.pos, nil
}

func (g *NoteID) Position() theory.Position { return g.pos }

// Note is the answer to the current question.
func (g *NoteID) Note() theory.PitchClass {
	return theory.NoteAt(g.pos.String, g.pos.Fret)
}

// Answer checks a typed note name. Blank input is rejected without using
// up the question. Either enharmonic spelling is accepted.
func (g *NoteID) Answer(input string) (NoteAnswer, error) {
	if !g.open {
		return NoteAnswer{}, ErrNotAsked
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return NoteAnswer{}, ErrEmptyAnswer
	}
	note := g.Note()
	correct := theory.NamesMatch(input, note.Name())
	if !correct {
		g.missed = append(g.missed, Miss{Position: g.pos, Correct: note, Answer: input})
	}
	return NoteAnswer{Correct: correct, Note: note, Elapsed: g.answer(correct)}, nil
}

func (g *NoteID) Missed() []Miss {
	return append([]Miss(nil), g.missed...)
}
