// Package quiz holds the state of the practice games. The games are plain
// state machines: the caller asks for the next question, reports the
// player's answer and decides when to move on.
package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rapidmidiex/fretui/timing"
)

const (
	DefaultQuestions = 10
	// maxAttempts bounds the search for a question unlike the previous one.
	maxAttempts = 20
)

// QuestionChoices are the offered game lengths.
var QuestionChoices = []int{5, 10, 20}

// How long answer feedback stays up before the next question.
const (
	NoteIDFeedback    = 1200 * time.Millisecond
	FretClickFeedback = 2 * time.Second
	RootIDFeedback    = 1500 * time.Millisecond
)

var (
	ErrFinished    = errors.New("quiz finished")
	ErrNotAsked    = errors.New("no open question")
	ErrEmptyAnswer = errors.New("empty answer")
)

type (
	Options struct {
		Questions int
		// Rand and Now default to a time seeded source and time.Now.
		Rand *rand.Rand
		Now  func() time.Time
	}

	// Results summarizes a finished or running game.
	Results struct {
		Score int
		Total int
		Times []time.Duration
	}

	// session is the bookkeeping all games share.
	session struct {
		total    int
		question int
		score    int
		open     bool
		asked    time.Time
		times    []time.Duration
		rng      *rand.Rand
		now      func() time.Time
	}
)

func newSession(o Options) session {
	if o.Questions <= 0 {
		o.Questions = DefaultQuestions
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return session{total: o.Questions, rng: o.Rand, now: o.Now}
}

func (s *session) ask() error {
	if s.question >= s.total {
		return ErrFinished
	}
	s.question++
	s.open = true
	s.asked = s.now()
	return nil
}

func (s *session) answer(correct bool) time.Duration {
	elapsed := s.now().Sub(s.asked)
	s.times = append(s.times, elapsed)
	s.open = false
	if correct {
		s.score++
	}
	return elapsed
}

// Question is the 1-based number of the current question.
func (s *session) Question() int { return s.question }
func (s *session) Total() int    { return s.total }
func (s *session) Score() int    { return s.score }

// Open reports whether the current question still waits for an answer.
func (s *session) Open() bool { return s.open }

// Done reports whether the last question has been answered.
func (s *session) Done() bool { return s.question >= s.total && !s.open }

func (s *session) Results() Results {
	return Results{
		Score: s.score,
		Total: s.total,
		Times: append([]time.Duration(nil), s.times...),
	}
}

// AvgTime is the mean answer time, zero before any answer.
func (r Results) AvgTime() time.Duration {
	return timing.Avg(r.Times)
}

// distinct draws questions until one differs from the previous, giving up
// after maxAttempts draws.
func distinct[Q any](draw func() Q, same func(Q) bool) Q {
	q := draw()
	for attempt := 1; attempt < maxAttempts && same(q); attempt++ {
		q = draw()
	}
	return q
}
