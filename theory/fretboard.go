package theory

import "math"

const (
	NumStrings = 6
	// FretCount is the highest fret shown on the full fretboard.
	FretCount = 12
)

// Standard tuning, index 0 = low E.
var (
	tuning          = [NumStrings]PitchClass{4, 9, 2, 7, 11, 4}
	stringNames     = [NumStrings]string{"E", "A", "D", "G", "B", "e"}
	openFrequencies = [NumStrings]float64{82.41, 110.00, 146.83, 196.00, 246.94, 329.63}
	// E2(40)  A2(45)  D3(50)  G3(55)  B3(59)  E4(64)
	openMIDIKeys = [NumStrings]int{40, 45, 50, 55, 59, 64}

	markerFrets = []int{3, 5, 7, 9, 12}
)

// Position is a string/fret coordinate on the neck.
type Position struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// Note is a sounding position together with its pitch class.
type Note struct {
	Position
	PitchClass PitchClass `json:"pitchClass"`
	IsRoot     bool       `json:"isRoot"`
}

func OpenString(s int) PitchClass {
	checkIndex("string", s, NumStrings)
	return tuning[s]
}

// StringName is the label of a string, the high E is "e".
func StringName(s int) string {
	checkIndex("string", s, NumStrings)
	return stringNames[s]
}

func checkFret(fret int) {
	if fret < 0 {
		panic(&IndexError{Kind: "fret", Value: fret, Limit: -1})
	}
}

// NoteAt returns the pitch class sounding at a position.
func NoteAt(s, fret int) PitchClass {
	checkFret(fret)
	return Normalize(int(OpenString(s)) + fret)
}

// FretFor returns the fret in [0,12) where pc sounds on string s.
func FretFor(s int, pc PitchClass) int {
	return int(Normalize(int(pc) - int(OpenString(s))))
}

// PositionsOf lists every position up to FretCount playing pc, by string
// then fret.
func PositionsOf(pc PitchClass) []Position {
	return collectPositions(func(note PitchClass) bool { return note == pc })
}

// PositionsOfName is PositionsOf for free text; either spelling matches.
func PositionsOfName(name string) []Position {
	return collectPositions(func(note PitchClass) bool { return NamesMatch(name, note.Name()) })
}

func collectPositions(match func(PitchClass) bool) []Position {
	positions := make([]Position, 0, 7)
	for s := 0; s < NumStrings; s++ {
		for fret := 0; fret <= FretCount; fret++ {
			if match(NoteAt(s, fret)) {
				positions = append(positions, Position{String: s, Fret: fret})
			}
		}
	}
	return positions
}

// Frequency is the pitch in Hz of a position: open string * 2^(fret/12).
func Frequency(s, fret int) float64 {
	checkIndex("string", s, NumStrings)
	checkFret(fret)
	return openFrequencies[s] * math.Pow(2, float64(fret)/12)
}

// MIDIKey is the MIDI note number of a position.
func MIDIKey(s, fret int) int {
	checkIndex("string", s, NumStrings)
	checkFret(fret)
	return openMIDIKeys[s] + fret
}

// IsMarkerFret reports whether a fret carries an inlay dot.
func IsMarkerFret(fret int) bool {
	for _, m := range markerFrets {
		if m == fret {
			return true
		}
	}
	return false
}

// IsDoubleMarkerFret reports the octave frets, drawn with two dots.
func IsDoubleMarkerFret(fret int) bool {
	return fret > 0 && fret%12 == 0
}
