// Package theory is the fretboard and music-theory engine: pitch classes,
// the standard-tuned fretboard, scales and modes, triad voicings and the
// window that bounds a diagram. Everything here is a pure function over
// read-only tables.
package theory

import (
	"fmt"
	"strings"
)

// PitchClass is one of the 12 tones of the octave, 0 = C.
type PitchClass int

const NumPitchClasses = 12

var noteNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var enharmonics = map[string]string{
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
	"A#": "Bb", "Bb": "A#",
}

// Normalize folds any integer into [0,12).
func Normalize(n int) PitchClass {
	return PitchClass(((n % NumPitchClasses) + NumPitchClasses) % NumPitchClasses)
}

// Name returns the sharp spelling, ex: "C#".
func (p PitchClass) Name() string {
	checkIndex("pitch class", int(p), NumPitchClasses)
	return noteNames[p]
}

func (p PitchClass) String() string {
	return p.Name()
}

// DisplayName joins both spellings for accidentals, ex: "C#/Db".
func (p PitchClass) DisplayName() string {
	name := p.Name()
	if alt, ok := Enharmonic(name); ok {
		return name + "/" + alt
	}
	return name
}

func (p PitchClass) Transpose(semitones int) PitchClass {
	return Normalize(int(p) + semitones)
}

// Enharmonic returns the other spelling of an accidental. Naturals have none.
func Enharmonic(name string) (string, bool) {
	alt, ok := enharmonics[name]
	return alt, ok
}

// NamesMatch is the answer check used by the quiz games. The input is
// capitalised ("db" -> "Db") and compared against the canonical name and
// its enharmonic spelling.
func NamesMatch(input, canonical string) bool {
	normalized := capitalize(input)
	if normalized == "" {
		return false
	}
	if normalized == canonical {
		return true
	}
	alt, ok := Enharmonic(canonical)
	return ok && alt == normalized
}

// ParseName reads a note name in either spelling, any case.
func ParseName(name string) (PitchClass, error) {
	for i, n := range noteNames {
		if NamesMatch(strings.TrimSpace(name), n) {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", name, ErrUnknownNote)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
