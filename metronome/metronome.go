// Package metronome keeps the beat state of a click track. Timing is driven
// from outside: every Tick of the current run sounds one beat.
package metronome

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MinBPM       = 40
	MaxBPM       = 240
	DefaultBPM   = 120
	DefaultBeats = 4
)

var ErrTimeSignature = errors.New("unsupported time signature")

// BeatsChoices are the supported beats per measure.
var BeatsChoices = []int{2, 3, 4, 6}

type Metronome struct {
	bpm     int
	beats   int
	beat    int
	last    int
	running bool
	// run identifies the current start so ticks from an earlier run can be
	// told apart.
	run uuid.UUID
}

// New returns a stopped metronome. bpm is clamped to the supported range.
func New(bpm, beats int) (*Metronome, error) {
	m := &Metronome{beats: DefaultBeats, last: -1}
	m.SetBPM(bpm)
	if err := m.SetBeatsPerMeasure(beats); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metronome) BPM() int            { return m.bpm }
func (m *Metronome) BeatsPerMeasure() int { return m.beats }
func (m *Metronome) Running() bool        { return m.running }

// Beat is the beat that will sound next.
func (m *Metronome) Beat() int { return m.beat }

// Sounding is the most recently sounded beat, or -1 when stopped.
func (m *Metronome) Sounding() int { return m.last }

// Interval is the time between two beats.
func (m *Metronome) Interval() time.Duration {
	return time.Minute / time.Duration(m.bpm)
}

func (m *Metronome) SetBPM(bpm int) {
	m.bpm = min(max(bpm, MinBPM), MaxBPM)
}

// SetBeatsPerMeasure changes the time signature. A running metronome
// starts over at the downbeat.
func (m *Metronome) SetBeatsPerMeasure(beats int) error {
	if !validBeats(beats) {
		return fmt.Errorf("%w: %d beats per measure", ErrTimeSignature, beats)
	}
	m.beats = beats
	if m.running {
		m.beat = 0
	}
	return nil
}

// NextBeatsPerMeasure cycles through BeatsChoices.
func (m *Metronome) NextBeatsPerMeasure() {
	for i, b := range BeatsChoices {
		if b == m.beats {
			_ = m.SetBeatsPerMeasure(BeatsChoices[(i+1)%len(BeatsChoices)])
			return
		}
	}
}

func validBeats(beats int) bool {
	for _, b := range BeatsChoices {
		if b == beats {
			return true
		}
	}
	return false
}

// Start begins a new run at the downbeat and returns its id. Starting a
// running metronome keeps the current run.
func (m *Metronome) Start() uuid.UUID {
	if m.running {
		return m.run
	}
	m.running = true
	m.beat = 0
	m.run = uuid.New()
	return m.run
}

func (m *Metronome) Stop() {
	m.running = false
	m.last = -1
	m.run = uuid.Nil
}

// Toggle starts or stops the metronome and returns the run id, uuid.Nil
// when it stopped.
func (m *Metronome) Toggle() uuid.UUID {
	if m.running {
		m.Stop()
		return uuid.Nil
	}
	return m.Start()
}

// Advance returns the beat that sounds now and moves to the next one.
func (m *Metronome) Advance() int {
	sounding := m.beat
	m.last = sounding
	m.beat = (m.beat + 1) % m.beats
	return sounding
}

// Tick advances for a tick of run. Ticks of a stopped or replaced run are
// rejected.
func (m *Metronome) Tick(run uuid.UUID) (beat int, ok bool) {
	if !m.running || run != m.run {
		return 0, false
	}
	return m.Advance(), true
}

// Accent reports whether beat gets the accented click, the downbeat does.
func Accent(beat int) bool {
	return beat == 0
}
