package quiz_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/rapidmidiex/fretui/quiz"
	"github.com/rapidmidiex/fretui/theory"
	"github.com/stretchr/testify/require"
)

// stepClock moves forward a fixed step every time it is read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func options(questions int, seed int64) quiz.Options {
	c := &stepClock{t: time.Unix(0, 0), step: 1500 * time.Millisecond}
	return quiz.Options{Questions: questions, Rand: rand.New(rand.NewSource(seed)), Now: c.now}
}

func TestNoteID(t *testing.T) {
	t.Run("never repeats the previous note", func(t *testing.T) {
		g := quiz.NewNoteID(options(200, 7))
		var prev theory.PitchClass = -1
		for i := 0; i < 200; i++ {
			pos, err := g.Next()
			require.NoError(t, err)
			require.Less(t, pos.Fret, theory.FretCount+1)
			note := theory.NoteAt(pos.String, pos.Fret)
			require.NotEqual(t, prev, note)
			prev = note
			_, err = g.Answer("x")
			require.NoError(t, err)
		}
	})

	t.Run("scores and records misses", func(t *testing.T) {
		g := quiz.NewNoteID(options(2, 1))

		_, err := g.Next()
		require.NoError(t, err)
		_, err = g.Answer("   ")
		require.ErrorIs(t, err, quiz.ErrEmptyAnswer)
		require.True(t, g.Open())

		res, err := g.Answer(" " + g.Note().Name() + " ")
		require.NoError(t, err)
		require.True(t, res.Correct)
		require.Equal(t, 1500*time.Millisecond, res.Elapsed)

		_, err = g.Answer(g.Note().Name())
		require.ErrorIs(t, err, quiz.ErrNotAsked)

		pos, err := g.Next()
		require.NoError(t, err)
		wrong := g.Note().Transpose(1).Name()
		res, err = g.Answer(wrong)
		require.NoError(t, err)
		require.False(t, res.Correct)

		require.True(t, g.Done())
		require.Equal(t, []quiz.Miss{{Position: pos, Correct: g.Note(), Answer: wrong}}, g.Missed())

		results := g.Results()
		require.Equal(t, 1, results.Score)
		require.Equal(t, 2, results.Total)
		require.Len(t, results.Times, 2)
		require.Equal(t, 1500*time.Millisecond, results.AvgTime())

		_, err = g.Next()
		require.True(t, errors.Is(err, quiz.ErrFinished))
	})

	t.Run("defaults to ten questions", func(t *testing.T) {
		require.Equal(t, quiz.DefaultQuestions, quiz.NewNoteID(quiz.Options{}).Total())
	})
}

func TestFretClick(t *testing.T) {
	t.Run("perfect round scores", func(t *testing.T) {
		g := quiz.NewFretClick(options(1, 3))
		target, err := g.Next()
		require.NoError(t, err)

		for _, pos := range theory.PositionsOf(target) {
			require.True(t, g.Toggle(pos))
		}
		res, err := g.Check()
		require.NoError(t, err)
		require.True(t, res.Perfect())
		require.Len(t, res.Correct, len(theory.PositionsOf(target)))
		require.Equal(t, 1, g.Score())
		require.True(t, g.Done())
	})

	t.Run("wrong and missed clicks", func(t *testing.T) {
		g := quiz.NewFretClick(options(1, 3))
		target, err := g.Next()
		require.NoError(t, err)

		want := theory.PositionsOf(target)
		g.Toggle(want[0])
		g.Toggle(want[1])
		g.Toggle(want[1]) // deselect
		require.False(t, g.IsSelected(want[1]))

		off := theory.Position{String: 0, Fret: theory.FretFor(0, target.Transpose(1))}
		g.Toggle(off)
		require.ElementsMatch(t, []theory.Position{want[0], off}, g.Selected())

		res, err := g.Check()
		require.NoError(t, err)
		require.False(t, res.Perfect())
		require.Equal(t, []theory.Position{want[0]}, res.Correct)
		require.Equal(t, []theory.Position{off}, res.Wrong)
		require.Len(t, res.Missed, len(want)-1)
		require.Equal(t, 0, g.Score())

		require.False(t, g.Toggle(want[2]), "checked rounds are frozen")
	})
}

func TestRootIDTriadTypes(t *testing.T) {
	all, err := quiz.RootIDTriadTypes(quiz.AllTypes)
	require.NoError(t, err)
	var ids []string
	for _, tt := range all {
		ids = append(ids, tt.ID)
	}
	require.Equal(t, []string{"major", "minor", "diminished"}, ids)

	minor, err := quiz.RootIDTriadTypes("minor")
	require.NoError(t, err)
	require.Len(t, minor, 1)

	_, err = quiz.RootIDTriadTypes("augmented")
	require.ErrorIs(t, err, quiz.ErrTriadType)
}

func TestRootID(t *testing.T) {
	t.Run("never offers augmented or repeats a shape", func(t *testing.T) {
		g, err := quiz.NewRootID(options(300, 11), quiz.AllTypes)
		require.NoError(t, err)
		prev := ""
		for i := 0; i < 300; i++ {
			q, err := g.Next()
			require.NoError(t, err)
			require.False(t, q.Type.Symmetric())
			require.NotEqual(t, prev, q.ShapeKey)
			prev = q.ShapeKey
			_, err = g.Pick(0)
			require.NoError(t, err)
		}
	})

	t.Run("picking the root", func(t *testing.T) {
		g, err := quiz.NewRootID(options(2, 5), "major")
		require.NoError(t, err)

		q, err := g.Next()
		require.NoError(t, err)
		root := q.Voicing.Root()
		res, err := g.Pick(root)
		require.NoError(t, err)
		require.True(t, res.Correct)
		require.Equal(t, root, res.Root)

		q, err = g.Next()
		require.NoError(t, err)
		res, err = g.Pick((q.Voicing.Root() + 1) % 3)
		require.NoError(t, err)
		require.False(t, res.Correct)

		require.Equal(t, 1, g.Score())
		require.True(t, g.Done())
	})

	t.Run("out of range pick", func(t *testing.T) {
		g, err := quiz.NewRootID(options(1, 5), quiz.AllTypes)
		require.NoError(t, err)
		_, err = g.Next()
		require.NoError(t, err)
		_, err = g.Pick(3)
		require.ErrorIs(t, err, theory.ErrInvalidIndex)
		require.True(t, g.Open())
	})
}
