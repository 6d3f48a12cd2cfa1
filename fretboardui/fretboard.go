// Package fretboardui is the free fretboard explorer: move around the neck,
// hear positions and light up every place a note sounds.
package fretboardui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/diagram"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/styles"
	"github.com/rapidmidiex/fretui/theory"
	"golang.org/x/term"
)

var docStyle = styles.DocStyle

type Model struct {
	cursor theory.Position
	// focus is the note lit up across the neck, if any.
	focus    theory.PitchClass
	hasFocus bool
	// names labels every position with its note.
	names bool

	player audio.Player
	help   help.Model
	keys   keymap.Help
	log    *slog.Logger
}

func New(player audio.Player, logger *slog.Logger) Model {
	km := keymap.DefaultMapping
	return Model{
		player: player,
		help:   help.New(),
		keys: keymap.Help{
			km.Up, km.Down, km.Left, km.Right, km.Play,
			km.Select, km.PrevKey, km.NextKey, km.NextType, km.GoBack,
		},
		log: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Cursor() theory.Position { return m.cursor }

// Focus returns the lit up note.
func (m Model) Focus() (theory.PitchClass, bool) { return m.focus, m.hasFocus }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.GoBack):
			return m, menuui.Back
		// High e is drawn on top, so up means a higher string.
		case key.Matches(msg, km.Up):
			m.cursor.String = min(m.cursor.String+1, theory.NumStrings-1)
		case key.Matches(msg, km.Down):
			m.cursor.String = max(m.cursor.String-1, 0)
		case key.Matches(msg, km.Left):
			m.cursor.Fret = max(m.cursor.Fret-1, 0)
		case key.Matches(msg, km.Right):
			m.cursor.Fret = min(m.cursor.Fret+1, theory.FretCount)
		case key.Matches(msg, km.Play):
			return m, playNote(m.player, m.cursor)
		case key.Matches(msg, km.Select):
			note := theory.NoteAt(m.cursor.String, m.cursor.Fret)
			if m.hasFocus && m.focus == note {
				m.hasFocus = false
			} else {
				m.focus, m.hasFocus = note, true
			}
			return m, playNote(m.player, m.cursor)
		case key.Matches(msg, km.NextKey):
			m.shiftFocus(1)
		case key.Matches(msg, km.PrevKey):
			m.shiftFocus(-1)
		case key.Matches(msg, km.NextType):
			m.names = !m.names
		}
	}
	return m, nil
}

func (m *Model) shiftFocus(semitones int) {
	if !m.hasFocus {
		m.focus, m.hasFocus = theory.NoteAt(m.cursor.String, m.cursor.Fret), true
		return
	}
	m.focus = m.focus.Transpose(semitones)
	m.log.Debug("focus note", "note", m.focus.Name())
}

func (m Model) markers() []diagram.Marker {
	var markers []diagram.Marker
	if m.names {
		for s := 0; s < theory.NumStrings; s++ {
			for fret := 0; fret <= theory.FretCount; fret++ {
				markers = append(markers, diagram.Marker{
					Position: theory.Position{String: s, Fret: fret},
					Label:    theory.NoteAt(s, fret).Name(),
					Kind:     diagram.Tone,
				})
			}
		}
	}
	if m.hasFocus {
		for _, pos := range theory.PositionsOf(m.focus) {
			markers = append(markers, diagram.Marker{Position: pos, Label: m.focus.Name(), Kind: diagram.Root})
		}
	}
	return markers
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.Title.Render("Fretboard"))
	doc.WriteString("\n")

	cursor := m.cursor
	doc.WriteString(diagram.Render(diagram.Board{
		Window:  theory.Window{Start: 0, End: theory.FretCount},
		Markers: m.markers(),
		Cursor:  &cursor,
	}))
	doc.WriteString("\n\n")

	note := theory.NoteAt(cursor.String, cursor.Fret)
	doc.WriteString(fmt.Sprintf("%s string, fret %d: %s",
		theory.StringName(cursor.String), cursor.Fret, styles.BoldStyle.Render(note.DisplayName())))
	if m.hasFocus {
		doc.WriteString(fmt.Sprintf("\nShowing every %s (%d positions)",
			styles.RootNote.Render(m.focus.DisplayName()), len(theory.PositionsOf(m.focus))))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func playNote(p audio.Player, pos theory.Position) tea.Cmd {
	return func() tea.Msg {
		p.PlayNote(pos.String, pos.Fret)
		return nil
	}
}
