package metronomeui_test

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/metronome"
	"github.com/rapidmidiex/fretui/metronomeui"
	"github.com/stretchr/testify/require"
)

type clicker struct {
	accents []bool
}

func (c *clicker) PlayNote(int, int) {}
func (c *clicker) Click(accent bool) { c.accents = append(c.accents, accent) }
func (c *clicker) Close() error      { return nil }

func newModel(t *testing.T, c *clicker) tea.Model {
	t.Helper()
	met, err := metronome.New(metronome.DefaultBPM, 3)
	require.NoError(t, err)
	return metronomeui.New(met, c, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func met(m tea.Model) *metronome.Metronome {
	mt := m.(metronomeui.Model).Metronome()
	return &mt
}

func TestStartAndTick(t *testing.T) {
	c := &clicker{}
	m, cmd := newModel(t, c).Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, met(m).Running())
	require.NotNil(t, cmd)

	first, ok := cmd().(metronomeui.TickMsg)
	require.True(t, ok)

	for i := 0; i < 4; i++ {
		var next tea.Cmd
		m, next = m.Update(first)
		require.NotNil(t, next)
		// The batch holds the click and the next tick; only run the click.
		batch := next().(tea.BatchMsg)
		batch[0]()
	}
	require.Equal(t, []bool{true, false, false, true}, c.accents)
	require.Equal(t, 0, met(m).Sounding())
}

func TestStaleTicksAreIgnored(t *testing.T) {
	m, cmd := newModel(t, &clicker{}).Update(tea.KeyMsg{Type: tea.KeySpace})
	old := cmd().(metronomeui.TickMsg)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, met(m).Running())
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.NotEqual(t, old.Run, cmd().(metronomeui.TickMsg).Run)

	_, next := m.Update(old)
	require.Nil(t, next)
	_, next = m.Update(metronomeui.TickMsg{Run: uuid.New()})
	require.Nil(t, next)
}

func TestTempoAndMeter(t *testing.T) {
	m := newModel(t, &clicker{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	require.Equal(t, 130, met(m).BPM())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	require.Equal(t, 125, met(m).BPM())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 4, met(m).BeatsPerMeasure())
	require.Contains(t, m.View(), "125 BPM")
}

func TestGoBackStops(t *testing.T) {
	m, _ := newModel(t, &clicker{}).Update(tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, met(m).Running())
	require.Equal(t, menuui.BackMsg{}, cmd())
}
