package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/sinshu/go-meltysynth/meltysynth"
	"gitlab.com/gomidi/midi/v2"
)

const (
	// General MIDI "Acoustic Guitar (steel)".
	guitarProgram uint8 = 25
	noteVelocity  uint8 = 100

	noteHold    = time.Second
	noteRelease = time.Second / 2
)

// SoundFont renders notes with a sampled instrument instead of the
// additive pluck.
type SoundFont struct {
	mu    sync.Mutex
	synth *meltysynth.Synthesizer
	sr    int
}

// LoadSoundFont reads an .sf2 file and selects a guitar patch on channel 0.
func LoadSoundFont(path string, sampleRate int) (*SoundFont, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound font: %w", err)
	}
	defer f.Close()

	sf2, err := meltysynth.NewSoundFont(f)
	if err != nil {
		return nil, fmt.Errorf("parse sound font %s: %w", path, err)
	}
	settings := meltysynth.NewSynthesizerSettings(int32(sampleRate))
	synth, err := meltysynth.NewSynthesizer(sf2, settings)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}

	font := &SoundFont{synth: synth, sr: sampleRate}
	font.Send(midi.ProgramChange(0, guitarProgram))
	return font, nil
}

// Send feeds one MIDI message to the synthesizer.
func (f *SoundFont) Send(msg midi.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.send(msg)
}

func (f *SoundFont) send(msg midi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		f.synth.NoteOn(int32(ch), int32(key), int32(vel))
	case msg.GetNoteEnd(&ch, &key):
		f.synth.NoteOff(int32(ch), int32(key))
	case len(msg) >= 2:
		var data2 int32
		if len(msg) > 2 {
			data2 = int32(msg[2])
		}
		f.synth.ProcessMidiMessage(int32(msg[0]&0x0f), int32(msg[0]&0xf0), int32(msg[1]), data2)
	}
}

// Pluck renders a held then released note into a buffer ready to play.
func (f *SoundFont) Pluck(key uint8) beep.Streamer {
	sr := beep.SampleRate(f.sr)
	buf := NewBufferStreamer(sr.N(noteHold + noteRelease))
	hold := sr.N(noteHold)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.send(midi.NoteOn(0, key, noteVelocity))
	f.synth.Render(buf.left[:hold], buf.right[:hold])
	f.send(midi.NoteOff(0, key))
	f.synth.Render(buf.left[hold:], buf.right[hold:])
	return buf
}

// BufferStreamer plays back pre-rendered stereo samples.
type BufferStreamer struct {
	pos   int
	left  []float32
	right []float32
}

func NewBufferStreamer(samples int) *BufferStreamer {
	return &BufferStreamer{
		left:  make([]float32, samples),
		right: make([]float32, samples),
	}
}

// Stream implements beep.Streamer.
func (bs *BufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if bs.pos >= len(bs.left) {
		return 0, false
	}
	for i := range samples {
		if bs.pos >= len(bs.left) {
			break
		}
		samples[i][0] = float64(bs.left[bs.pos])
		samples[i][1] = float64(bs.right[bs.pos])
		bs.pos++
		n++
	}
	return n, true
}

func (bs *BufferStreamer) Err() error {
	return nil
}

// Len returns the total number of samples.
func (bs *BufferStreamer) Len() int {
	return len(bs.left)
}

// Position returns the current position of the Streamer.
func (bs *BufferStreamer) Position() int {
	return bs.pos
}

// Seek sets the position of the Streamer to the provided value.
func (bs *BufferStreamer) Seek(p int) error {
	if p < 0 || p > len(bs.left) {
		return fmt.Errorf("seek %d: out of range [0,%d]", p, len(bs.left))
	}
	bs.pos = p
	return nil
}
