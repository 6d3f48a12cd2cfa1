// Package quizui holds the three practice games: naming a note, finding all
// positions of a note and spotting the root of a triad. Each game moves
// through setup, questions with timed feedback, and a results screen.
package quizui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rapidmidiex/fretui/keymap"
	"github.com/rapidmidiex/fretui/quiz"
	"github.com/rapidmidiex/fretui/styles"
	"github.com/rapidmidiex/fretui/timing"
	"golang.org/x/term"
)

var docStyle = styles.DocStyle

type phase int

const (
	setupPhase phase = iota
	askPhase
	feedbackPhase
	resultsPhase
)

type (
	// NextMsg ends the feedback pause of a game.
	NextMsg struct {
		Game uuid.UUID
	}

	// Options are passed on to every game started from the screen.
	Options = quiz.Options

	// setup is the pre-game form shared by the games.
	setup struct {
		questions int
	}
)

func newSetup(questions int) setup {
	for _, q := range quiz.QuestionChoices {
		if q == questions {
			return setup{questions: questions}
		}
	}
	return setup{questions: quiz.DefaultQuestions}
}

// update handles the question count keys and reports a start request.
func (s *setup) update(msg tea.KeyMsg) (start bool) {
	km := keymap.DefaultMapping
	choices := quiz.QuestionChoices
	i := 0
	for j, q := range choices {
		if q == s.questions {
			i = j
		}
	}
	switch {
	case key.Matches(msg, km.Right):
		s.questions = choices[(i+1)%len(choices)]
	case key.Matches(msg, km.Left):
		s.questions = choices[(i+len(choices)-1)%len(choices)]
	case key.Matches(msg, km.Submit):
		return true
	}
	return false
}

func (s setup) view() string {
	doc := strings.Builder{}
	for _, q := range quiz.QuestionChoices {
		label := fmt.Sprintf(" %d ", q)
		if q == s.questions {
			label = styles.Selected.Render(label)
		}
		doc.WriteString(label)
	}
	return "Questions: " + doc.String()
}

func next(d time.Duration, game uuid.UUID) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NextMsg{Game: game}
	})
}

func progressView(question, total, score int) string {
	return styles.StatusText.Render(fmt.Sprintf("Question %d/%d", question, total)) + " " +
		styles.ScoreStyle.Render(fmt.Sprintf("Score %d", score))
}

func resultsView(r quiz.Results, stats timing.CalcMsg) string {
	doc := strings.Builder{}
	doc.WriteString(styles.BoldStyle.Render(fmt.Sprintf("Score: %d/%d", r.Score, r.Total)))
	doc.WriteString("\n")
	if stats.Count > 0 {
		doc.WriteString(fmt.Sprintf("Average time: %s (fastest %s, slowest %s)\n",
			timing.Seconds(stats.Avg), timing.Seconds(stats.Min), timing.Seconds(stats.Max)))
	}
	return doc.String()
}

func render(doc string) string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc)
}
