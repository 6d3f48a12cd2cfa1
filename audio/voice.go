package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	pluckLength = 2 * time.Second
	pluckGain   = 0.3
	// Exponential envelopes fade towards this floor instead of zero.
	floorGain = 0.001
)

// Higher harmonics are quieter and die out sooner.
var harmonicGains = []float64{1, 0.5, 0.33, 0.25, 0.2, 0.15}

// Tone is a plain sine beep.
type Tone struct {
	Frequency float64
	Gain      float64
	Duration  time.Duration
}

// ClickTone is the metronome click, higher and louder on the downbeat.
func ClickTone(accent bool) Tone {
	if accent {
		return Tone{Frequency: 1000, Gain: 0.3, Duration: 30 * time.Millisecond}
	}
	return Tone{Frequency: 800, Gain: 0.15, Duration: 30 * time.Millisecond}
}

func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	return &generator{
		sr:  sr,
		len: sr.N(t.Duration),
		sample: func(sec float64) float64 {
			return t.Gain * math.Sin(2*math.Pi*t.Frequency*sec)
		},
	}
}

// Pluck is a plucked string at freq: stacked triangle harmonics under a
// decaying master envelope.
func Pluck(sr beep.SampleRate, freq float64) beep.Streamer {
	total := pluckLength.Seconds()
	return &generator{
		sr:  sr,
		len: sr.N(pluckLength),
		sample: func(sec float64) float64 {
			var v float64
			for i, gain := range harmonicGains {
				h := float64(i + 1)
				v += triangle(freq*h*sec) * decay(gain, sec, total/h)
			}
			return v * decay(pluckGain, sec, total)
		},
	}
}

// decay ramps exponentially from start to floorGain over length seconds
// and holds the floor afterwards.
func decay(start, sec, length float64) float64 {
	if sec >= length {
		return floorGain
	}
	return start * math.Pow(floorGain/start, sec/length)
}

// triangle is a unit triangle wave of phase p, in cycles.
func triangle(p float64) float64 {
	_, frac := math.Modf(p)
	return 4*math.Abs(frac-0.5) - 1
}

// generator streams a mono signal to both channels.
type generator struct {
	sr     beep.SampleRate
	pos    int
	len    int
	sample func(sec float64) float64
}

func (g *generator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.len {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.len {
			break
		}
		v := g.sample(g.sr.D(g.pos).Seconds())
		samples[i][0], samples[i][1] = v, v
		g.pos++
		n++
	}
	return n, true
}

func (g *generator) Err() error {
	return nil
}
