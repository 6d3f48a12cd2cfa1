// Package triadui lists triad voicings for every string set and inversion.
package triadui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
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

// AllTypes shows every triad type.
const AllTypes = "all"

const (
	viewportWidth  = 100
	viewportHeight = 20
	// chrome is the space taken by the title and help around the viewport.
	chrome = 8
)

type (
	State struct {
		Root theory.PitchClass
		// Type is a triad type id or AllTypes.
		Type string
	}

	Model struct {
		state    State
		viewport viewport.Model
		player   audio.Player
		help     help.Model
		keys     keymap.Help
		log      *slog.Logger
	}
)

func New(player audio.Player, logger *slog.Logger) Model {
	km := keymap.DefaultMapping
	m := Model{
		state:    State{Root: 0, Type: AllTypes},
		viewport: viewport.New(viewportWidth, viewportHeight),
		player:   player,
		help:     help.New(),
		keys: keymap.Help{
			km.PrevKey, km.NextKey, km.NextType, km.Up, km.Down, km.Play, km.GoBack,
		},
		log: logger,
	}
	m.viewport.SetContent(m.diagrams())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) State() State { return m.state }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.GoBack):
			return m, menuui.Back
		case key.Matches(msg, km.NextKey):
			m.state.Root = m.state.Root.Transpose(1)
		case key.Matches(msg, km.PrevKey):
			m.state.Root = m.state.Root.Transpose(-1)
		case key.Matches(msg, km.NextType):
			m.state.Type = nextType(m.state.Type)
		case key.Matches(msg, km.Play):
			return m, m.playTriad()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.viewport.SetContent(m.diagrams())
		m.viewport.GotoTop()
	}
	return m, nil
}

// nextType cycles all -> major -> ... -> augmented -> all.
func nextType(current string) string {
	types := theory.TriadTypes()
	if current == AllTypes {
		return types[0].ID
	}
	for i, t := range types {
		if t.ID == current && i+1 < len(types) {
			return types[i+1].ID
		}
	}
	return AllTypes
}

func (m Model) types() []theory.TriadType {
	if m.state.Type == AllTypes {
		return theory.TriadTypes()
	}
	t, ok := theory.TriadTypeByID(m.state.Type)
	if !ok {
		return nil
	}
	return []theory.TriadType{t}
}

// playTriad strums the root position voicing on the highest string set.
func (m Model) playTriad() tea.Cmd {
	types := m.types()
	if len(types) == 0 {
		return nil
	}
	sets := theory.StringSets()
	v := theory.BuildVoicing(m.state.Root, types[0], sets[len(sets)-1], 0)
	p := m.player
	return func() tea.Msg {
		for _, n := range v {
			p.PlayNote(n.String, n.Fret)
		}
		return nil
	}
}

func (m Model) diagrams() string {
	doc := strings.Builder{}
	root := m.state.Root
	for _, t := range m.types() {
		notes := t.Notes(root)
		names := []string{notes[0].Name(), notes[1].Name(), notes[2].Name()}
		doc.WriteString(styles.BoldStyle.Render(fmt.Sprintf("%s %s", root.Name(), t.Name)))
		doc.WriteString("  " + styles.Faint.Render(strings.Join(names, " - ")) + "\n")

		for _, set := range theory.StringSets() {
			cards := make([]string, 0, theory.NumInversions)
			for inv := 0; inv < theory.NumInversions; inv++ {
				v := theory.BuildVoicing(root, t, set, inv)
				cards = append(cards, diagram.Card(set.Name, theory.InversionName(inv), diagram.Board{
					Window:  v.Window(),
					Strings: set.Strings[:],
					Markers: diagram.FromNotes(v[:]),
				}))
			}
			doc.WriteString(diagram.Grid(cards, theory.NumInversions) + "\n")
		}
		doc.WriteString("\n")
	}
	return doc.String()
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	filter := "All types"
	if m.state.Type != AllTypes {
		t, _ := theory.TriadTypeByID(m.state.Type)
		filter = t.Name
	}
	doc.WriteString(styles.Title.Render(fmt.Sprintf("Triads in %s", m.state.Root.DisplayName())))
	doc.WriteString("  " + styles.Faint.Render(filter) + "\n")
	doc.WriteString(m.viewport.View())
	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}
