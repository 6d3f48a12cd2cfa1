package fretui_test

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/fretui"
	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/config"
	"github.com/rapidmidiex/fretui/freterr"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/metronomeui"
	"github.com/rapidmidiex/fretui/quizui"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) tea.Model {
	t.Helper()
	cfg, err := config.Load(config.New())
	require.NoError(t, err)
	m, err := fretui.NewModel(cfg, audio.Silent{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return m
}

func TestSwitchViews(t *testing.T) {
	m := newModel(t)
	require.Contains(t, m.View(), "Guitar Practice")

	m, _ = m.Update(menuui.WidgetSelected{Widget: menuui.NoteID})
	require.Contains(t, m.View(), "Note ID")

	// Quiz keys now reach the note ID screen.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Contains(t, m.View(), "Question 1/10")

	m, _ = m.Update(menuui.BackMsg{})
	require.Contains(t, m.View(), "Guitar Practice")
}

func TestMetronomeTempoSurvivesBack(t *testing.T) {
	m := newModel(t)
	m, _ = m.Update(menuui.WidgetSelected{Widget: menuui.Metronome})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	require.Contains(t, m.View(), "125 BPM")

	m, _ = m.Update(menuui.BackMsg{})
	m, _ = m.Update(menuui.WidgetSelected{Widget: menuui.Metronome})
	require.Contains(t, m.View(), "125 BPM")
}

func TestErrorsAreShown(t *testing.T) {
	m := newModel(t)
	m, _ = m.Update(menuui.WidgetSelected{Widget: menuui.RootID})
	m, _ = m.Update(freterr.ErrMsg{Err: errors.New("boom")})
	require.Contains(t, m.View(), "boom")

	m, _ = m.Update(menuui.BackMsg{})
	require.NotContains(t, m.View(), "boom")
}

func TestQuit(t *testing.T) {
	_, cmd := newModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestStaleMessagesDoNotLeak(t *testing.T) {
	m := newModel(t)
	m, cmd := m.Update(metronomeui.TickMsg{})
	require.Nil(t, cmd)
	m, cmd = m.Update(quizui.NextMsg{})
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "Guitar Practice")
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fretui.log")
	logger, closer, err := fretui.NewLogger(path, true)
	require.NoError(t, err)
	logger.Debug("hello", "n", 1)
	require.NoError(t, closer.Close())
	require.FileExists(t, path)

	logger, closer, err = fretui.NewLogger("", false)
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closer.Close())

	_, _, err = fretui.NewLogger(filepath.Join(t.TempDir(), "missing", "x.log"), false)
	require.Error(t, err)
}

func TestNewPlayerDisabled(t *testing.T) {
	p, err := fretui.NewPlayer(config.AudioConfig{Enabled: false}, slog.Default())
	require.NoError(t, err)
	require.Equal(t, audio.Silent{}, p)
}
