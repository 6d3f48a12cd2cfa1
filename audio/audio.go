// Package audio makes the sounds behind the widgets: plucked notes for
// fretboard positions and metronome clicks.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rapidmidiex/fretui/theory"
)

// DefaultSampleRate is used when none is configured.
const DefaultSampleRate = 44100

type (
	// Player is what the widgets talk to. Calls never block on playback.
	Player interface {
		PlayNote(str, fret int)
		Click(accent bool)
		Close() error
	}

	// Silent drops every sound.
	Silent struct{}

	// Speaker plays through the system audio device.
	Speaker struct {
		sr    beep.SampleRate
		mixer *beep.Mixer
		font  *SoundFont
		log   *slog.Logger
	}

	SpeakerOpts struct {
		SampleRate int
		// SoundFont is an optional .sf2 path. Without it notes use the
		// additive pluck voice.
		SoundFont string
		Logger    *slog.Logger
	}
)

func (Silent) PlayNote(int, int) {}
func (Silent) Click(bool)        {}
func (Silent) Close() error      { return nil }

// NewSpeaker opens the audio device and starts an always-running mixer.
// The mixer plays silence while no sound is queued.
func NewSpeaker(o SpeakerOpts) (*Speaker, error) {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	sr := beep.SampleRate(o.SampleRate)

	var font *SoundFont
	if o.SoundFont != "" {
		var err error
		if font, err = LoadSoundFont(o.SoundFont, o.SampleRate); err != nil {
			return nil, err
		}
	}

	// Bigger buffers cost less CPU but respond later.
	if err := speaker.Init(sr, sr.N(time.Millisecond*50)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	o.Logger.Debug("speaker ready", "sampleRate", o.SampleRate, "soundFont", o.SoundFont)
	return &Speaker{sr: sr, mixer: mixer, font: font, log: o.Logger}, nil
}

func (s *Speaker) PlayNote(str, fret int) {
	var voice beep.Streamer
	if s.font != nil {
		voice = s.font.Pluck(uint8(theory.MIDIKey(str, fret)))
	} else {
		voice = Pluck(s.sr, theory.Frequency(str, fret))
	}
	s.log.Debug("play note", "string", str, "fret", fret)
	s.add(voice)
}

func (s *Speaker) Click(accent bool) {
	s.add(ClickTone(accent).Streamer(s.sr))
}

func (s *Speaker) add(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
