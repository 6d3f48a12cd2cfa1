package quizui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
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

// FretClickModel names a note and has the player mark all its positions.
type FretClickModel struct {
	phase    phase
	setup    setup
	opts     Options
	game     *quiz.FretClick
	gameID   uuid.UUID
	cursor   theory.Position
	result   quiz.ClickResult
	feedback string
	stats    timing.CalcMsg

	player audio.Player
	help   help.Model
	keys   keymap.Help
	log    *slog.Logger
}

func NewFretClick(opts Options, player audio.Player, logger *slog.Logger) FretClickModel {
	km := keymap.DefaultMapping
	return FretClickModel{
		setup:  newSetup(opts.Questions),
		opts:   opts,
		player: player,
		help:   help.New(),
		keys:   keymap.Help{km.Up, km.Down, km.Left, km.Right, km.Select, km.Submit, km.GoBack},
		log:    logger,
	}
}

func (m FretClickModel) Init() tea.Cmd {
	return nil
}

func (m FretClickModel) Game() *quiz.FretClick { return m.game }

func (m FretClickModel) Cursor() theory.Position { return m.cursor }

func (m FretClickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return m.play(msg)
		case resultsPhase:
			if key.Matches(msg, km.Submit) {
				m.phase = setupPhase
			}
		}
	}
	return m, nil
}

func (m FretClickModel) play(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping
	switch {
	case key.Matches(msg, km.Up):
		m.cursor.String = min(m.cursor.String+1, theory.NumStrings-1)
	case key.Matches(msg, km.Down):
		m.cursor.String = max(m.cursor.String-1, 0)
	case key.Matches(msg, km.Left):
		m.cursor.Fret = max(m.cursor.Fret-1, 0)
	case key.Matches(msg, km.Right):
		m.cursor.Fret = min(m.cursor.Fret+1, theory.FretCount)
	case key.Matches(msg, km.Select):
		m.game.Toggle(m.cursor)
	case key.Matches(msg, km.Submit):
		return m.check()
	}
	return m, nil
}

func (m FretClickModel) start() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Questions = m.setup.questions
	m.game = quiz.NewFretClick(opts)
	m.gameID = uuid.New()
	m.stats = timing.CalcMsg{}
	m.log.Debug("fretboard click started", "questions", opts.Questions)
	return m.ask()
}

func (m FretClickModel) ask() (tea.Model, tea.Cmd) {
	_, err := m.game.Next()
	if errors.Is(err, quiz.ErrFinished) {
		m.phase = resultsPhase
		return m, timing.CalcStats(m.game.Results().Times)
	}
	if err != nil {
		return m, freterr.Report(err)
	}
	m.phase = askPhase
	m.feedback = ""
	m.result = quiz.ClickResult{}
	return m, nil
}

func (m FretClickModel) check() (tea.Model, tea.Cmd) {
	res, err := m.game.Check()
	if err != nil {
		return m, freterr.Report(err)
	}
	m.result = res
	m.log.Debug("fretboard click checked",
		"correct", len(res.Correct), "wrong", len(res.Wrong), "missed", len(res.Missed))

	if res.Perfect() {
		m.feedback = styles.RenderFeedback(true, fmt.Sprintf("Perfect! All %d found.", len(res.Correct)))
	} else {
		m.feedback = styles.RenderFeedback(false, fmt.Sprintf("%d correct, %d wrong, %d missed",
			len(res.Correct), len(res.Wrong), len(res.Missed)))
	}
	m.phase = feedbackPhase
	return m, next(quiz.FretClickFeedback, m.gameID)
}

func (m FretClickModel) markers() []diagram.Marker {
	var markers []diagram.Marker
	if m.phase == feedbackPhase {
		add := func(ps []theory.Position, kind diagram.Kind) {
			for _, pos := range ps {
				markers = append(markers, diagram.Marker{Position: pos, Label: m.game.Target().Name(), Kind: kind})
			}
		}
		add(m.result.Correct, diagram.Correct)
		add(m.result.Missed, diagram.Missed)
		for _, pos := range m.result.Wrong {
			markers = append(markers, diagram.Marker{Position: pos, Label: "x", Kind: diagram.Wrong})
		}
		return markers
	}
	for _, pos := range m.game.Selected() {
		markers = append(markers, diagram.Marker{Position: pos, Kind: diagram.Selected})
	}
	return markers
}

func (m FretClickModel) View() string {
	doc := strings.Builder{}
	doc.WriteString(styles.Title.Render("Fretboard Click"))
	doc.WriteString("\n")

	switch m.phase {
	case setupPhase:
		doc.WriteString("Mark every position of the named note, frets 0 to 12.\n\n")
		doc.WriteString(m.setup.view() + "\n\n")
		doc.WriteString(styles.Faint.Render("enter to start"))
	case askPhase, feedbackPhase:
		doc.WriteString(progressView(m.game.Question(), m.game.Total(), m.game.Score()) + "\n\n")
		doc.WriteString("Find every " + styles.RootNote.Render(m.game.Target().DisplayName()) + "\n\n")
		board := diagram.Board{
			Window:  theory.Window{Start: 0, End: theory.FretCount},
			Markers: m.markers(),
		}
		if m.phase == askPhase {
			cursor := m.cursor
			board.Cursor = &cursor
		}
		doc.WriteString(diagram.Render(board) + "\n\n")
		doc.WriteString(m.feedback)
	case resultsPhase:
		doc.WriteString(resultsView(m.game.Results(), m.stats))
		doc.WriteString("\n" + styles.Faint.Render("enter to play again"))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))
	return render(doc.String())
}
