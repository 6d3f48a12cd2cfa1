package quizui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rapidmidiex/fretui/audio"
	"github.com/rapidmidiex/fretui/diagram"
	"github.com/rapidmidiex/fretui/freterr"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/menuui"
	"github.com/rapidmidiex/fretui/quiz"
	"github.com/rapidmidiex/fretui/styles"
	"github.com/rapidmidiex/fretui/theory"
	"github.com/rapidmidiex/fretui/timing"
)

// NoteIDModel shows a position and asks for its note name.
type NoteIDModel struct {
	phase    phase
	setup    setup
	opts     Options
	game     *quiz.NoteID
	gameID   uuid.UUID
	input    textinput.Model
	feedback string
	stats    timing.CalcMsg

	player audio.Player
	help   help.Model
	keys   keymap.Help
	log    *slog.Logger
}

func NewNoteID(opts Options, player audio.Player, logger *slog.Logger) NoteIDModel {
	ti := textinput.New()
	ti.Placeholder = "Note name, ex: C# or Db"
	ti.CharLimit = 8
	ti.Prompt = "┃ "

	km := keymap.DefaultMapping
	return NoteIDModel{
		setup:  newSetup(opts.Questions),
		opts:   opts,
		input:  ti,
		player: player,
		help:   help.New(),
		keys:   keymap.Help{km.Left, km.Right, km.Submit, km.GoBack},
		log:    logger,
	}
}

func (m NoteIDModel) Init() tea.Cmd {
	return nil
}

func (m NoteIDModel) Game() *quiz.NoteID { return m.game }

func (m NoteIDModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case timing.CalcMsg:
		m.stats = msg
	case NextMsg:
		if msg.Game != m.gameID || m.phase != feedbackPhase {
			return m, nil
		}
		return m.ask()
	case tea.KeyMsg:
		if key.Matches(msg, km.GoBack) {
			return m, menuui.Back
		}
		switch m.phase {
		case setupPhase:
			if m.setup.update(msg) {
				return m.start()
			}
		case askPhase:
			if key.Matches(msg, km.Submit) {
				return m.submit()
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		case resultsPhase:
			if key.Matches(msg, km.Submit) {
				m.phase = setupPhase
			}
		}
	}
	return m, nil
}

func (m NoteIDModel) start() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Questions = m.setup.questions
	m.game = quiz.NewNoteID(opts)
	m.gameID = uuid.New()
	m.stats = timing.CalcMsg{}
	m.log.Debug("note id started", "questions", opts.Questions)
	return m.ask()
}

func (m NoteIDModel) ask() (tea.Model, tea.Cmd) {
	pos, err := m.game.Next()
	if errors.Is(err, quiz.ErrFinished) {
		m.phase = resultsPhase
		m.input.Blur()
		return m, timing.CalcStats(m.game.Results().Times)
	}
	if err != nil {
		return m, freterr.Report(err)
	}
	m.phase = askPhase
	m.feedback = ""
	m.input.Reset()
	m.input.Focus()
	p := m.player
	return m, func() tea.Msg {
		p.PlayNote(pos.String, pos.Fret)
		return nil
	}
}

func (m NoteIDModel) submit() (tea.Model, tea.Cmd) {
	res, err := m.game.Answer(m.input.Value())
	if errors.Is(err, quiz.ErrEmptyAnswer) {
		return m, nil
	}
	if err != nil {
		return m, freterr.Report(err)
	}
	m.log.Debug("note id answer", "answer", m.input.Value(), "correct", res.Correct)

	if res.Correct {
		m.feedback = styles.RenderFeedback(true, "Correct!")
	} else {
		m.feedback = styles.RenderFeedback(false, "Wrong, it was "+spellings(res.Note))
	}
	m.phase = feedbackPhase
	m.input.Blur()
	return m, next(quiz.NoteIDFeedback, m.gameID)
}

// spellings lists both names of an accidental, ex: "C# / Db".
func spellings(pc theory.PitchClass) string {
	if alt, ok := theory.Enharmonic(pc.Name()); ok {
		return pc.Name() + " / " + alt
	}
	return pc.Name()
}

func (m NoteIDModel) View() string {
	doc := strings.Builder{}
	doc.WriteString(styles.Title.Render("Note ID"))
	doc.WriteString("\n")

	switch m.phase {
	case setupPhase:
		doc.WriteString("Name the note at the highlighted position.\n\n")
		doc.WriteString(m.setup.view() + "\n\n")
		doc.WriteString(styles.Faint.Render("enter to start"))
	case askPhase, feedbackPhase:
		pos := m.game.Position()
		doc.WriteString(progressView(m.game.Question(), m.game.Total(), m.game.Score()) + "\n\n")
		doc.WriteString(diagram.Render(diagram.Board{
			Window:  theory.Window{Start: 0, End: theory.FretCount},
			Markers: []diagram.Marker{{Position: pos, Label: "?", Kind: diagram.Highlight}},
		}))
		doc.WriteString(fmt.Sprintf("\n\n%s string, fret %d\n", theory.StringName(pos.String), pos.Fret))
		doc.WriteString(m.input.View() + "\n")
		doc.WriteString(m.feedback)
	case resultsPhase:
		doc.WriteString(resultsView(m.game.Results(), m.stats))
		doc.WriteString(missesView(m.game.Missed()))
		doc.WriteString("\n" + styles.Faint.Render("enter to play again"))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))
	return render(doc.String())
}

func missesView(missed []quiz.Miss) string {
	if len(missed) == 0 {
		return styles.RenderFeedback(true, "Perfect score, no missed notes!") + "\n"
	}
	doc := strings.Builder{}
	doc.WriteString("\nMissed notes:\n")
	for _, miss := range missed {
		doc.WriteString(fmt.Sprintf("  %s string, fret %d: %s (you said %s)\n",
			theory.StringName(miss.String), miss.Fret, spellings(miss.Correct), miss.Answer))
	}
	return doc.String()
}
