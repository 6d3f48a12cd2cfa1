package theory_test

import (
	"errors"
	"testing"

	"github.com/rapidmidiex/fretui/theory"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for p := 0; p < theory.NumPitchClasses; p++ {
		require.Equal(t, theory.PitchClass(p), theory.Normalize(p))
		require.Equal(t, theory.PitchClass(p), theory.Normalize(p+12))
		require.Equal(t, theory.PitchClass(p), theory.Normalize(p-12))
	}
	require.Equal(t, theory.PitchClass(11), theory.Normalize(-1))
	require.Equal(t, theory.PitchClass(1), theory.Normalize(-131))
	require.Equal(t, theory.PitchClass(4), theory.Normalize(124))
}

func TestNames(t *testing.T) {
	require.Equal(t, "C", theory.PitchClass(0).Name())
	require.Equal(t, "F#", theory.PitchClass(6).Name())
	require.Equal(t, "B", theory.PitchClass(11).String())
	require.Equal(t, "A#/Bb", theory.PitchClass(10).DisplayName())
	require.Equal(t, "E", theory.PitchClass(4).DisplayName())

	require.PanicsWithError(t, "pitch class 12: out of range [0,12)", func() {
		_ = theory.PitchClass(12).Name()
	})
}

func TestEnharmonic(t *testing.T) {
	for sharp, flat := range map[string]string{"C#": "Db", "D#": "Eb", "F#": "Gb", "G#": "Ab", "A#": "Bb"} {
		got, ok := theory.Enharmonic(sharp)
		require.True(t, ok)
		require.Equal(t, flat, got)

		back, ok := theory.Enharmonic(flat)
		require.True(t, ok)
		require.Equal(t, sharp, back)
	}

	for _, natural := range []string{"C", "D", "E", "F", "G", "A", "B"} {
		_, ok := theory.Enharmonic(natural)
		require.False(t, ok, natural)
	}
}

func TestNamesMatch(t *testing.T) {
	tt := []struct {
		input, canonical string
		want             bool
	}{
		{"c#", "C#", true},
		{"db", "C#", true},
		{"DB", "C#", true},
		{"d", "C#", false},
		{"e", "E", true},
		{"fb", "E", false},
		{"", "C", false},
		{"bb", "A#", true},
		{"a#", "A#", true},
	}

	for _, tc := range tt {
		require.Equal(t, tc.want, theory.NamesMatch(tc.input, tc.canonical), "%q vs %q", tc.input, tc.canonical)
	}
}

func TestParseName(t *testing.T) {
	pc, err := theory.ParseName("eb")
	require.NoError(t, err)
	require.Equal(t, theory.PitchClass(3), pc)

	pc, err = theory.ParseName(" G ")
	require.NoError(t, err)
	require.Equal(t, theory.PitchClass(7), pc)

	_, err = theory.ParseName("H")
	require.True(t, errors.Is(err, theory.ErrUnknownNote))
}
