package theory_test

import (
	"errors"
	"testing"

	"github.com/rapidmidiex/fretui/theory"
	"github.com/stretchr/testify/require"
)

func TestNoteAt(t *testing.T) {
	require.Equal(t, "E", theory.NoteAt(0, 0).Name())
	require.Equal(t, "C", theory.NoteAt(1, 3).Name())
	require.Equal(t, "E", theory.NoteAt(5, 12).Name())
	require.Equal(t, "C#", theory.NoteAt(4, 2).Name())
	require.Equal(t, "G", theory.NoteAt(2, 17).Name())
}

func TestFretForRoundTrip(t *testing.T) {
	for s := 0; s < theory.NumStrings; s++ {
		for fret := 0; fret < 12; fret++ {
			require.Equal(t, fret, theory.FretFor(s, theory.NoteAt(s, fret)))
		}
		// Fret 12 is the octave of the open string.
		require.Equal(t, 0, theory.FretFor(s, theory.NoteAt(s, 12)))
	}
	require.Equal(t, 8, theory.FretFor(0, 0))
	require.Equal(t, 7, theory.FretFor(1, 4))
}

func TestPositionsOf(t *testing.T) {
	for pc := theory.PitchClass(0); pc < theory.NumPitchClasses; pc++ {
		openMatches := 0
		for s := 0; s < theory.NumStrings; s++ {
			if theory.OpenString(s) == pc {
				openMatches++
			}
		}

		positions := theory.PositionsOf(pc)
		// Every string has the note once in frets 0-11, open strings again at 12.
		require.Len(t, positions, theory.NumStrings+openMatches, pc.Name())
		for i, p := range positions {
			require.Equal(t, pc, theory.NoteAt(p.String, p.Fret))
			if i > 0 {
				prev := positions[i-1]
				require.True(t, prev.String < p.String || (prev.String == p.String && prev.Fret < p.Fret))
			}
		}
	}

	require.Equal(t, []theory.Position{
		{String: 0, Fret: 8},
		{String: 1, Fret: 3},
		{String: 2, Fret: 10},
		{String: 3, Fret: 5},
		{String: 4, Fret: 1},
		{String: 5, Fret: 8},
	}, theory.PositionsOf(0))
}

func TestPositionsOfName(t *testing.T) {
	require.Equal(t, theory.PositionsOf(1), theory.PositionsOfName("Db"))
	require.Equal(t, theory.PositionsOf(1), theory.PositionsOfName("c#"))
	require.Len(t, theory.PositionsOfName("E"), 8)
	require.Empty(t, theory.PositionsOfName("X"))
}

func TestFrequencyAndMIDI(t *testing.T) {
	require.InDelta(t, 110.0, theory.Frequency(1, 0), 1e-9)
	require.InDelta(t, 220.0, theory.Frequency(1, 12), 1e-9)
	require.InDelta(t, 440.0, theory.Frequency(5, 5), 0.05)
	require.Equal(t, 40, theory.MIDIKey(0, 0))
	require.Equal(t, 69, theory.MIDIKey(5, 5))
}

func TestMarkers(t *testing.T) {
	for _, fret := range []int{3, 5, 7, 9, 12} {
		require.True(t, theory.IsMarkerFret(fret))
	}
	require.False(t, theory.IsMarkerFret(4))
	require.True(t, theory.IsDoubleMarkerFret(12))
	require.False(t, theory.IsDoubleMarkerFret(0))
}

func TestInvalidIndexPanics(t *testing.T) {
	assertIndexPanic := func(f func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			require.True(t, errors.Is(err, theory.ErrInvalidIndex))
		}()
		f()
	}

	assertIndexPanic(func() { theory.NoteAt(6, 0) })
	assertIndexPanic(func() { theory.NoteAt(0, -1) })
	assertIndexPanic(func() { theory.FretFor(-1, 0) })
	assertIndexPanic(func() { theory.StringName(7) })
}
