package metronomeui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/metronome"
	"github.com/rapidmidiex/fretui/styles"
	"golang.org/x/term"
)

var docStyle = styles.DocStyle

const bpmStep = 5

type (
	// TickMsg sounds the next beat of a run.
	TickMsg struct {
		Run uuid.UUID
	}

	Model struct {
		met    metronome.Metronome
		player audio.Player
		help   help.Model
		keys   keymap.Help
		log    *slog.Logger
	}
)

func New(met *metronome.Metronome, player audio.Player, logger *slog.Logger) Model {
	km := keymap.DefaultMapping
	return Model{
		met:    *met,
		player: player,
		help:   help.New(),
		keys:   keymap.Help{km.Toggle, km.Faster, km.Slower, km.NextType, km.GoBack},
		log:    logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Metronome() metronome.Metronome { return m.met }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case TickMsg:
		beat, ok := m.met.Tick(msg.Run)
		if !ok {
			// A tick from a stopped or restarted run.
			return m, nil
		}
		return m, tea.Batch(click(m.player, beat), tick(m.met.Interval(), msg.Run))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.GoBack):
			m.met.Stop()
			return m, menuui.Back
		case key.Matches(msg, km.Toggle):
			run := m.met.Toggle()
			m.log.Debug("metronome", "running", m.met.Running(), "bpm", m.met.BPM())
			if run == uuid.Nil {
				return m, nil
			}
			// The first beat sounds right away.
			return m, func() tea.Msg { return TickMsg{Run: run} }
		case key.Matches(msg, km.Faster):
			m.met.SetBPM(m.met.BPM() + bpmStep)
		case key.Matches(msg, km.Slower):
			m.met.SetBPM(m.met.BPM() - bpmStep)
		case key.Matches(msg, km.NextType):
			m.met.NextBeatsPerMeasure()
		}
	}
	return m, nil
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.Title.Render("Metronome"))
	doc.WriteString("\n")
	doc.WriteString(styles.BoldStyle.Render(fmt.Sprintf("%d BPM", m.met.BPM())))
	doc.WriteString(fmt.Sprintf("   %d beats per measure\n\n", m.met.BeatsPerMeasure()))

	beats := make([]string, 0, m.met.BeatsPerMeasure())
	for i := 0; i < m.met.BeatsPerMeasure(); i++ {
		style := styles.Beat
		switch {
		case i == m.met.Sounding():
			style = styles.ActiveBeat
		case i == 0:
			style = styles.Downbeat
		}
		beats = append(beats, style.Render("●"))
	}
	doc.WriteString(strings.Join(beats, "  ") + "\n\n")

	status := "Stopped"
	if m.met.Running() {
		status = "Running"
	}
	doc.WriteString(styles.StatusStyle.Render(status))

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func tick(d time.Duration, run uuid.UUID) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{Run: run}
	})
}

func click(p audio.Player, beat int) tea.Cmd {
	return func() tea.Msg {
		p.Click(metronome.Accent(beat))
		return nil
	}
}
