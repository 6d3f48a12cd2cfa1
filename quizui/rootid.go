package quizui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
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

// RootIDModel shows an unlabelled triad shape; the player picks its root.
type RootIDModel struct {
	phase    phase
	setup    setup
	filter   string
	opts     Options
	game     *quiz.RootID
	gameID   uuid.UUID
	picked   int
	feedback string
	stats    timing.CalcMsg

	player audio.Player
	help   help.Model
	keys   keymap.Help
	log    *slog.Logger
}

func NewRootID(opts Options, player audio.Player, logger *slog.Logger) RootIDModel {
	km := keymap.DefaultMapping
	return RootIDModel{
		setup:  newSetup(opts.Questions),
		filter: quiz.AllTypes,
		opts:   opts,
		player: player,
		help:   help.New(),
		keys:   keymap.Help{km.Left, km.Right, km.NextType, km.PickNote, km.Submit, km.GoBack},
		log:    logger,
	}
}

func (m RootIDModel) Init() tea.Cmd {
	return nil
}

func (m RootIDModel) Game() *quiz.RootID { return m.game }

// Filter is the triad type offered, or quiz.AllTypes.
func (m RootIDModel) Filter() string { return m.filter }

func (m RootIDModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if key.Matches(msg, km.NextType) {
				m.filter = nextFilter(m.filter)
				return m, nil
			}
			if m.setup.update(msg) {
				return m.start()
			}
		case askPhase:
			if key.Matches(msg, km.PickNote) {
				index, _ := strconv.Atoi(msg.String())
				return m.pick(index - 1)
			}
		case resultsPhase:
			if key.Matches(msg, km.Submit) {
				m.phase = setupPhase
			}
		}
	}
	return m, nil
}

// nextFilter cycles all -> major -> minor -> diminished -> all.
func nextFilter(current string) string {
	types, _ := quiz.RootIDTriadTypes(quiz.AllTypes)
	if current == quiz.AllTypes {
		return types[0].ID
	}
	for i, t := range types {
		if t.ID == current && i+1 < len(types) {
			return types[i+1].ID
		}
	}
	return quiz.AllTypes
}

func (m RootIDModel) start() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Questions = m.setup.questions
	game, err := quiz.NewRootID(opts, m.filter)
	if err != nil {
		return m, freterr.Report(err)
	}
	m.game = game
	m.gameID = uuid.New()
	m.stats = timing.CalcMsg{}
	m.log.Debug("root id started", "questions", opts.Questions, "filter", m.filter)
	return m.ask()
}

func (m RootIDModel) ask() (tea.Model, tea.Cmd) {
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
	m.picked = -1
	return m, nil
}

func (m RootIDModel) pick(index int) (tea.Model, tea.Cmd) {
	res, err := m.game.Pick(index)
	if err != nil {
		return m, freterr.Report(err)
	}
	m.picked = index
	q := m.game.Current()
	m.log.Debug("root id pick", "shape", q.ShapeKey, "picked", index, "correct", res.Correct)

	chord := q.Type.ChordName(q.Root)
	if res.Correct {
		m.feedback = styles.RenderFeedback(true, fmt.Sprintf("Correct! %s is the root of %s.", q.Root.Name(), chord))
	} else {
		m.feedback = styles.RenderFeedback(false, fmt.Sprintf("Not quite, the root of %s is %s.", chord, q.Root.Name()))
	}
	m.phase = feedbackPhase

	v := q.Voicing
	p := m.player
	strum := func() tea.Msg {
		for _, n := range v {
			p.PlayNote(n.String, n.Fret)
		}
		return nil
	}
	return m, tea.Batch(strum, next(quiz.RootIDFeedback, m.gameID))
}

func (m RootIDModel) markers() []diagram.Marker {
	q := m.game.Current()
	markers := make([]diagram.Marker, 0, len(q.Voicing))
	for i, n := range q.Voicing {
		marker := diagram.Marker{Position: n.Position, Label: strconv.Itoa(i + 1), Kind: diagram.Tone}
		if m.phase == feedbackPhase {
			marker.Label = n.PitchClass.Name()
			switch {
			case n.IsRoot:
				marker.Kind = diagram.Correct
			case i == m.picked:
				marker.Kind = diagram.Wrong
			}
		}
		markers = append(markers, marker)
	}
	return markers
}

func (m RootIDModel) View() string {
	doc := strings.Builder{}
	doc.WriteString(styles.Title.Render("Root ID"))
	doc.WriteString("\n")

	switch m.phase {
	case setupPhase:
		doc.WriteString("Pick the root note of each triad shape.\n\n")
		doc.WriteString(m.setup.view() + "\n")
		filter := "All (major, minor, diminished)"
		if t, ok := theory.TriadTypeByID(m.filter); ok {
			filter = t.Name
		}
		doc.WriteString("Triads: " + styles.Selected.Render(" "+filter+" ") + "\n\n")
		doc.WriteString(styles.Faint.Render("tab to change triads, enter to start"))
	case askPhase, feedbackPhase:
		q := m.game.Current()
		doc.WriteString(progressView(m.game.Question(), m.game.Total(), m.game.Score()) + "\n\n")
		doc.WriteString(fmt.Sprintf("%s triad, %s strings, %s\n\n",
			q.Type.Name, q.Set.Name, theory.InversionName(q.Inversion)))
		doc.WriteString(diagram.Render(diagram.Board{
			Window:  q.Voicing.Window(),
			Strings: q.Set.Strings[:],
			Markers: m.markers(),
		}))
		doc.WriteString("\n\n")
		if m.phase == askPhase {
			doc.WriteString(styles.Faint.Render("press 1, 2 or 3 to pick the root"))
		}
		doc.WriteString(m.feedback)
	case resultsPhase:
		doc.WriteString(resultsView(m.game.Results(), m.stats))
		doc.WriteString("\n" + styles.Faint.Render("enter to play again"))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))
	return render(doc.String())
}
