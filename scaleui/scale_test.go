package scaleui_test

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/scaleui"
	"github.com/stretchr/testify/require"
)

func newModel() tea.Model {
	return scaleui.New(audio.Silent{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func state(m tea.Model) scaleui.State {
	return m.(scaleui.Model).State()
}

func TestKeyAndScale(t *testing.T) {
	m := newModel()
	require.Equal(t, "C", state(m).Key.Name())
	require.Equal(t, "major", state(m).Scale.ID)

	m, _ = m.Update(runes("["))
	require.Equal(t, "B", state(m).Key.Name())
	m, _ = m.Update(runes("]"))
	m, _ = m.Update(runes("]"))
	require.Equal(t, "C#", state(m).Key.Name())

	for _, want := range []string{"minor", "pentatonic-major", "pentatonic-minor", "major"} {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		require.Equal(t, want, state(m).Scale.ID)
	}
}

func TestSelectShape(t *testing.T) {
	m, _ := newModel().Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 4, state(m).Shape)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 0, state(m).Shape)
}

func TestView(t *testing.T) {
	view := newModel().View()
	require.Contains(t, view, "C Major")
	require.Contains(t, view, "C - D - E - F - G - A - B")
	// CAGED windows in C
	for _, frets := range []string{"Frets 8-12", "Frets 10-14", "Frets 0-4", "Frets 3-7", "Frets 5-9"} {
		require.Contains(t, view, frets)
	}
}

func TestGoBack(t *testing.T) {
	_, cmd := newModel().Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, menuui.BackMsg{}, cmd())
}
