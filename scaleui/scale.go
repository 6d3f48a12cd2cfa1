// Package scaleui shows a scale in all five CAGED positions.
package scaleui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

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

const (
	cardsPerRow = 3
	// noteGap spaces out the notes when a shape is played.
	noteGap = 250 * time.Millisecond
)

type (
	// State is what the screen shows.
	State struct {
		Key   theory.PitchClass
		Scale theory.ScaleType
		// Shape is the index of the selected CAGED shape.
		Shape int
	}

	Model struct {
		state  State
		player audio.Player
		help   help.Model
		keys   keymap.Help
		log    *slog.Logger
	}
)

func New(player audio.Player, logger *slog.Logger) Model {
	km := keymap.DefaultMapping
	return Model{
		state:  State{Key: 0, Scale: theory.ScaleTypes()[0]},
		player: player,
		help:   help.New(),
		keys: keymap.Help{
			km.PrevKey, km.NextKey, km.NextType, km.Left, km.Right, km.Play, km.GoBack,
		},
		log: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) State() State { return m.state }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
	shapes := theory.CAGEDShapes()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.GoBack):
			return m, menuui.Back
		case key.Matches(msg, km.NextKey):
			m.state.Key = m.state.Key.Transpose(1)
		case key.Matches(msg, km.PrevKey):
			m.state.Key = m.state.Key.Transpose(-1)
		case key.Matches(msg, km.NextType):
			m.state.Scale = nextScale(m.state.Scale)
		case key.Matches(msg, km.Right):
			m.state.Shape = (m.state.Shape + 1) % len(shapes)
		case key.Matches(msg, km.Left):
			m.state.Shape = (m.state.Shape + len(shapes) - 1) % len(shapes)
		case key.Matches(msg, km.Play):
			s := m.state
			m.log.Debug("play scale", "key", s.Key.Name(), "scale", s.Scale.ID, "shape", shapes[s.Shape].Name)
			return m, playNotes(m.player, theory.ScaleNotesInWindow(s.Scale, s.Key, shapes[s.Shape].Window(s.Key)))
		}
	}
	return m, nil
}

func nextScale(current theory.ScaleType) theory.ScaleType {
	types := theory.ScaleTypes()
	for i, st := range types {
		if st.ID == current.ID {
			return types[(i+1)%len(types)]
		}
	}
	return types[0]
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}
	s := m.state

	doc.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", s.Key.Name(), s.Scale.Name)))
	doc.WriteString("\n")

	names := make([]string, 0, len(s.Scale.Intervals))
	for _, n := range s.Scale.Notes(s.Key) {
		names = append(names, n.Name())
	}
	doc.WriteString(strings.Join(names, " - ") + "\n\n")

	var cards []string
	for i, shape := range theory.CAGEDShapes() {
		w := shape.Window(s.Key)
		title := shape.Name
		if i == s.Shape {
			title = styles.Highlighted.Render(" " + title + " ")
		}
		cards = append(cards, diagram.Card(title, fmt.Sprintf("Frets %d-%d", w.Start, w.End), diagram.Board{
			Window:  w,
			Markers: diagram.FromNotes(theory.ScaleNotesInWindow(s.Scale, s.Key, w)),
		}))
	}
	doc.WriteString(diagram.Grid(cards, cardsPerRow))

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

// playNotes sounds notes one after another.
func playNotes(p audio.Player, notes []theory.Note) tea.Cmd {
	return func() tea.Msg {
		for i, n := range notes {
			if i > 0 {
				time.Sleep(noteGap)
			}
			p.PlayNote(n.String, n.Fret)
		}
		return nil
	}
}
