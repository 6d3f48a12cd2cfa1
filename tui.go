// Package fretui is a terminal guitar trainer: a fretboard explorer, scale,
// triad and progression references, a metronome and note quizzes.
package fretui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/config"
	"github.com/rapidmidiex/fretui/fretboardui"
	"github.com/rapidmidiex/fretui/freterr"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/metronome"
	"github.com/rapidmidiex/fretui/metronomeui"
	"github.com/rapidmidiex/fretui/progressionui"
	"github.com/rapidmidiex/fretui/quizui"
	"github.com/rapidmidiex/fretui/scaleui"
	"github.com/rapidmidiex/fretui/styles"
	"github.com/rapidmidiex/fretui/triadui"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type (
	appView int

	mainModel struct {
		curView  appView
		curError string
		menu     tea.Model
		widget   tea.Model
		current  menuui.Widget

		// met outlives the metronome screen so tempo survives a visit to the menu.
		met      *metronome.Metronome
		quizOpts quizui.Options
		player   audio.Player
		log      *slog.Logger
	}
)

const (
	menuView appView = iota
	widgetView
)

func NewModel(cfg *config.Config, player audio.Player, logger *slog.Logger) (mainModel, error) {
	met, err := metronome.New(cfg.Metronome.BPM, cfg.Metronome.Beats)
	if err != nil {
		return mainModel{}, fmt.Errorf("metronome: %w", err)
	}
	return mainModel{
		curView:  menuView,
		menu:     menuui.New(),
		met:      met,
		quizOpts: quizui.Options{Questions: cfg.Quiz.Questions},
		player:   player,
		log:      logger,
	}, nil
}

func (m mainModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case freterr.ErrMsg:
		m.log.Error("widget failed", "widget", m.current.String(), "err", msg.Err)
		m.curError = msg.Error()
		return m, nil

	case tea.KeyMsg:
		// Ctrl+c exits from every screen.
		if key.Matches(msg, keymap.DefaultMapping.Quit) {
			return m, tea.Quit
		}

	case menuui.WidgetSelected:
		m.current = msg.Widget
		m.widget = m.newWidget(msg.Widget)
		m.curView = widgetView
		m.curError = ""
		m.log.Debug("open widget", "widget", msg.Widget.String())
		return m, m.widget.Init()

	case menuui.BackMsg:
		if mm, ok := m.widget.(metronomeui.Model); ok {
			*m.met = mm.Metronome()
		}
		m.widget = nil
		m.curView = menuView
		m.curError = ""
		return m, nil
	}

	switch m.curView {
	case widgetView:
		m.widget, cmd = m.widget.Update(msg)
	default:
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

func (m mainModel) newWidget(w menuui.Widget) tea.Model {
	switch w {
	case menuui.Scales:
		return scaleui.New(m.player, m.log)
	case menuui.Triads:
		return triadui.New(m.player, m.log)
	case menuui.Progressions:
		return progressionui.New(m.player, m.log)
	case menuui.Metronome:
		return metronomeui.New(m.met, m.player, m.log)
	case menuui.NoteID:
		return quizui.NewNoteID(m.quizOpts, m.player, m.log)
	case menuui.FretClick:
		return quizui.NewFretClick(m.quizOpts, m.player, m.log)
	case menuui.RootID:
		return quizui.NewRootID(m.quizOpts, m.player, m.log)
	default:
		return fretboardui.New(m.player, m.log)
	}
}

func (m mainModel) View() string {
	var view string
	switch m.curView {
	case widgetView:
		view = m.widget.View()
	default:
		view = m.menu.View()
	}
	if m.curError != "" {
		view += "\n" + styles.RenderError(m.curError)
	}
	return view
}

// NewLogger writes text logs to path, or drops them when path is empty.
// The returned closer releases the log file.
func NewLogger(path string, debug bool) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	return slog.New(h), closer, nil
}

// NewPlayer opens the speaker, or returns a silent player when audio is off.
// A missing audio device is logged and the app runs without sound.
func NewPlayer(cfg config.AudioConfig, logger *slog.Logger) (audio.Player, error) {
	if !cfg.Enabled {
		return audio.Silent{}, nil
	}
	sp, err := audio.NewSpeaker(audio.SpeakerOpts{
		SampleRate: cfg.SampleRate,
		SoundFont:  cfg.SoundFont,
		Logger:     logger,
	})
	if err != nil {
		if cfg.SoundFont != "" {
			return nil, err
		}
		logger.Warn("audio unavailable", "err", err)
		return audio.Silent{}, nil
	}
	return sp, nil
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg *config.Config, player audio.Player, logger *slog.Logger) error {
	m, err := NewModel(cfg, player, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
