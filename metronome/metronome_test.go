package metronome_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rapidmidiex/fretui/metronome"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := metronome.New(metronome.DefaultBPM, metronome.DefaultBeats)
	require.NoError(t, err)
	require.Equal(t, 120, m.BPM())
	require.Equal(t, 4, m.BeatsPerMeasure())
	require.False(t, m.Running())
	require.Equal(t, -1, m.Sounding())
	require.Equal(t, 500*time.Millisecond, m.Interval())

	_, err = metronome.New(120, 5)
	require.True(t, errors.Is(err, metronome.ErrTimeSignature))
}

func TestSetBPM(t *testing.T) {
	m, err := metronome.New(120, 4)
	require.NoError(t, err)

	m.SetBPM(10)
	require.Equal(t, metronome.MinBPM, m.BPM())
	m.SetBPM(500)
	require.Equal(t, metronome.MaxBPM, m.BPM())
	require.Equal(t, 250*time.Millisecond, m.Interval())
}

func TestAdvance(t *testing.T) {
	m, err := metronome.New(120, 3)
	require.NoError(t, err)
	m.Start()

	var got []int
	for i := 0; i < 7; i++ {
		got = append(got, m.Advance())
	}
	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, got)
	require.Equal(t, 0, m.Sounding())
	require.Equal(t, 1, m.Beat())
}

func TestTimeSignatureChangeWhileRunning(t *testing.T) {
	m, err := metronome.New(120, 4)
	require.NoError(t, err)
	m.Start()
	m.Advance()
	m.Advance()

	require.NoError(t, m.SetBeatsPerMeasure(6))
	require.Equal(t, 0, m.Beat())

	m.NextBeatsPerMeasure()
	require.Equal(t, 2, m.BeatsPerMeasure())
}

func TestTick(t *testing.T) {
	m, err := metronome.New(120, 4)
	require.NoError(t, err)

	_, ok := m.Tick(uuid.New())
	require.False(t, ok, "stopped metronome ignores ticks")

	first := m.Start()
	require.Equal(t, first, m.Start(), "start while running keeps the run")
	beat, ok := m.Tick(first)
	require.True(t, ok)
	require.Equal(t, 0, beat)

	require.Equal(t, uuid.Nil, m.Toggle())
	second := m.Toggle()
	require.NotEqual(t, first, second)

	_, ok = m.Tick(first)
	require.False(t, ok, "tick from an old run")
	beat, ok = m.Tick(second)
	require.True(t, ok)
	require.Equal(t, 0, beat)
}

func TestAccent(t *testing.T) {
	require.True(t, metronome.Accent(0))
	require.False(t, metronome.Accent(3))
}
