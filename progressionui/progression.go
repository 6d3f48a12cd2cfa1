// Package progressionui shows the diatonic chords of a mode, its common
// progressions and fingerings for the chords players rarely know by heart.
package progressionui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/diagram"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/styles"
	"github.com/rapidmidiex/fretui/theory"
	"golang.org/x/term"
)

var docStyle = styles.DocStyle

const chordGap = 700 * time.Millisecond

// strumSet is the string set progressions are played on.
var strumSet = theory.StringSets()[2]

type (
	State struct {
		Key  theory.PitchClass
		Mode theory.Mode
	}

	Model struct {
		state  State
		table  table.Model
		player audio.Player
		help   help.Model
		keys   keymap.Help
		log    *slog.Logger
	}
)

func New(player audio.Player, logger *slog.Logger) Model {
	km := keymap.DefaultMapping
	m := Model{
		state:  State{Key: 0, Mode: theory.Modes()[0]},
		player: player,
		help:   help.New(),
		keys: keymap.Help{
			km.PrevKey, km.NextKey, km.NextType, km.Up, km.Down, km.Play, km.GoBack,
		},
		log: logger,
	}
	m.table = makeProgressionTable(m.state)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) State() State { return m.state }

// Selected is the progression under the table cursor.
func (m Model) Selected() theory.Progression {
	row := m.table.SelectedRow()
	for _, p := range m.state.Mode.Progressions {
		if len(row) > 0 && row[0] == p.Name {
			return p
		}
	}
	return m.state.Mode.Progressions[0]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
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
			m.state.Mode = nextMode(m.state.Mode)
		case key.Matches(msg, km.Play):
			p := m.Selected()
			m.log.Debug("play progression", "key", m.state.Key.Name(), "mode", m.state.Mode.ID, "progression", p.Name)
			return m, playProgression(m.player, m.state, p)
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		m.table = makeProgressionTable(m.state)
	}
	return m, nil
}

func nextMode(current theory.Mode) theory.Mode {
	modes := theory.Modes()
	for i, md := range modes {
		if md.ID == current.ID {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}
	s := m.state

	doc.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", s.Key.Name(), s.Mode.Name)))
	doc.WriteString("\n")
	doc.WriteString(renderChords(s) + "\n\n")
	doc.WriteString(styles.BaseStyle.Render(m.table.View()) + "\n")

	if cards := chordDiagrams(s); len(cards) > 0 {
		doc.WriteString("\n" + diagram.Grid(cards, 3))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

// renderChords lays out the seven diatonic chords under their numerals.
func renderChords(s State) string {
	cols := make([]string, 0, theory.DegreesPerMode)
	for degree := 0; degree < theory.DegreesPerMode; degree++ {
		name := s.Mode.ChordName(s.Key, degree)
		if s.Mode.Qualities[degree].NeedsDiagram() {
			name = styles.RootNote.Render(name)
		}
		col := lipgloss.JoinVertical(lipgloss.Center,
			styles.Faint.Render(s.Mode.Numerals[degree]),
			name,
		)
		cols = append(cols, lipgloss.NewStyle().Width(7).Align(lipgloss.Center).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// chordDiagrams draws every fingering of the chords that need one.
func chordDiagrams(s State) []string {
	var cards []string
	for degree := 0; degree < theory.DegreesPerMode; degree++ {
		q := s.Mode.Qualities[degree]
		if !q.NeedsDiagram() {
			continue
		}
		root := s.Mode.ChordRoot(s.Key, degree)
		title := fmt.Sprintf("%s (%s)", s.Mode.ChordName(s.Key, degree), s.Mode.Numerals[degree])
		for _, shape := range theory.ChordShapes(q) {
			frets := theory.PlaceShape(shape, root)
			var played, active []int
			for str, fret := range frets {
				if fret != theory.Muted {
					played = append(played, fret)
					active = append(active, str)
				}
			}
			cards = append(cards, diagram.Card(title, shape.Name, diagram.Board{
				Window:  theory.DiagramWindow(played...),
				Strings: active,
				Markers: diagram.FromNotes(theory.ShapeNotes(frets, root)),
			}))
		}
	}
	return cards
}

func makeProgressionTable(s State) table.Model {
	columns := []table.Column{
		{Title: "Progression", Width: 18},
		{Title: "Numerals", Width: 34},
		{Title: "Chords", Width: 34},
	}

	rows := make([]table.Row, 0, len(s.Mode.Progressions))
	for _, p := range s.Mode.Progressions {
		chords := strings.Join(s.Mode.ProgressionChordNames(s.Key, p), " - ")
		rows = append(rows, table.Row{p.Name, p.Numerals, chords})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// playProgression strums each chord as a root position triad.
func playProgression(p audio.Player, s State, prog theory.Progression) tea.Cmd {
	voicings := make([]theory.Voicing, 0, len(prog.Degrees))
	for _, degree := range prog.Degrees {
		t, ok := theory.TriadTypeByID(s.Mode.Qualities[degree].String())
		if !ok {
			continue
		}
		voicings = append(voicings, theory.BuildVoicing(s.Mode.ChordRoot(s.Key, degree), t, strumSet, 0))
	}
	return func() tea.Msg {
		for i, v := range voicings {
			if i > 0 {
				time.Sleep(chordGap)
			}
			for _, n := range v {
				p.PlayNote(n.String, n.Fret)
			}
		}
		return nil
	}
}
