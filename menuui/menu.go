package menuui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/styles"
	"golang.org/x/term"
)

var (
	docStyle = styles.DocStyle
)

type Widget int

const (
	Fretboard Widget = iota
	Scales
	Triads
	Progressions
	Metronome
	NoteID
	FretClick
	RootID
)

type widgetInfo struct {
	name string
	desc string
}

var widgets = []widgetInfo{
	Fretboard:    {"Fretboard", "Explore notes on the neck"},
	Scales:       {"Scales", "CAGED scale shapes in any key"},
	Triads:       {"Triads", "Triad voicings on every string set"},
	Progressions: {"Progressions", "Common chord progressions by mode"},
	Metronome:    {"Metronome", "Click track, 40-240 bpm"},
	NoteID:       {"Note ID", "Name the highlighted note"},
	FretClick:    {"Fretboard Click", "Find every position of a note"},
	RootID:       {"Root ID", "Spot the root of a triad shape"},
}

func (w Widget) String() string {
	return widgets[w].name
}

// Messages
type (
	WidgetSelected struct {
		Widget Widget
	}

	// BackMsg returns to the menu from any widget.
	BackMsg struct{}
)

// Back is the command widgets send on esc.
func Back() tea.Msg {
	return BackMsg{}
}

type Model struct {
	table table.Model
	help  help.Model
	keys  keymap.Help
}

func New() Model {
	km := keymap.DefaultMapping
	return Model{
		table: makeWidgetTable(),
		help:  help.New(),
		keys:  keymap.Help{km.Up, km.Down, km.Submit, km.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected is the widget under the cursor.
func (m Model) Selected() Widget {
	row := m.table.SelectedRow()
	for i, w := range widgets {
		if len(row) > 0 && row[0] == w.name {
			return Widget(i)
		}
	}
	return Fretboard
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, keymap.DefaultMapping.Submit) {
			cmds = append(cmds, widgetSelect(m.Selected()))
		}
	}
	newTable, tCmd := m.table.Update(msg)
	m.table = newTable

	cmds = append(cmds, tCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.Title.Render("Guitar Practice"))
	doc.WriteString("\n")
	doc.WriteString(styles.BaseStyle.Width(styles.Width).Render(m.table.View()))
	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func makeWidgetTable() table.Model {
	columns := []table.Column{
		{Title: "Widget", Width: 18},
		{Title: "", Width: 40},
	}

	rows := make([]table.Row, 0, len(widgets))
	for _, w := range widgets {
		rows = append(rows, table.Row{w.name, w.desc})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func widgetSelect(w Widget) tea.Cmd {
	return func() tea.Msg {
		return WidgetSelected{w}
	}
}
