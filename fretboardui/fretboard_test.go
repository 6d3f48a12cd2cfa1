package fretboardui_test

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/fretui/fretboardui"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/theory"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	played []theory.Position
}

func (r *recorder) PlayNote(str, fret int) {
	r.played = append(r.played, theory.Position{String: str, Fret: fret})
}
func (r *recorder) Click(bool)   {}
func (r *recorder) Close() error { return nil }

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(p *recorder) tea.Model {
	return fretboardui.New(p, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMoveAndPlay(t *testing.T) {
	p := &recorder{}
	m, _ := press(t, newModel(p),
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
	)
	require.Equal(t, theory.Position{String: 1, Fret: 3}, m.(fretboardui.Model).Cursor())

	_, cmd := m.Update(runes("p"))
	require.NotNil(t, cmd)
	cmd()
	require.Equal(t, []theory.Position{{String: 1, Fret: 3}}, p.played)
}

func TestCursorStaysOnTheNeck(t *testing.T) {
	m, _ := press(t, newModel(&recorder{}),
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	require.Equal(t, theory.Position{}, m.(fretboardui.Model).Cursor())

	var keys []tea.KeyMsg
	for i := 0; i < 20; i++ {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})
	}
	m, _ = press(t, m, keys...)
	require.Equal(t, theory.Position{String: 5, Fret: 12}, m.(fretboardui.Model).Cursor())
}

func TestFocusNote(t *testing.T) {
	m, _ := press(t, newModel(&recorder{}), runes("]"))
	focus, ok := m.(fretboardui.Model).Focus()
	require.True(t, ok)
	require.Equal(t, theory.PitchClass(4), focus, "starts at the note under the cursor")

	m, _ = press(t, m, runes("]"), runes("]"))
	focus, _ = m.(fretboardui.Model).Focus()
	require.Equal(t, "F#", focus.Name())

	require.Contains(t, m.View(), "F#/Gb")
}

func TestGoBack(t *testing.T) {
	_, cmd := newModel(&recorder{}).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, menuui.BackMsg{}, cmd())
}
