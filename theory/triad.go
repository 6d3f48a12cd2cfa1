package theory

import "fmt"

type (
	// TriadType is a three-note chord quality.
	TriadType struct {
		ID        string
		Name      string
		Symbol    string
		Intervals [3]int
	}

	// StringSet is three adjacent strings, low to high.
	StringSet struct {
		Name    string
		Strings [3]int
	}

	// Voicing is a triad placed on a string set, one note per string.
	Voicing [3]Note
)

const NumInversions = 3

// maxTriadSpan is the widest stretch a voicing may keep before notes are
// folded down an octave.
const maxTriadSpan = 5

var (
	triadTypes = []TriadType{
		{ID: "major", Name: "Major", Symbol: "", Intervals: [3]int{0, 4, 7}},
		{ID: "minor", Name: "Minor", Symbol: "m", Intervals: [3]int{0, 3, 7}},
		{ID: "diminished", Name: "Diminished", Symbol: "dim", Intervals: [3]int{0, 3, 6}},
		{ID: "augmented", Name: "Augmented", Symbol: "aug", Intervals: [3]int{0, 4, 8}},
	}

	stringSets = []StringSet{
		{Name: "E-A-D", Strings: [3]int{0, 1, 2}},
		{Name: "A-D-G", Strings: [3]int{1, 2, 3}},
		{Name: "D-G-B", Strings: [3]int{2, 3, 4}},
		{Name: "G-B-e", Strings: [3]int{3, 4, 5}},
	}

	inversionNames = [NumInversions]string{"Root Position", "1st Inversion", "2nd Inversion"}
)

func TriadTypes() []TriadType {
	return append([]TriadType(nil), triadTypes...)
}

func TriadTypeByID(id string) (TriadType, bool) {
	for _, t := range triadTypes {
		if t.ID == id {
			return t, true
		}
	}
	return TriadType{}, false
}

func StringSets() []StringSet {
	return append([]StringSet(nil), stringSets...)
}

func InversionName(inversion int) string {
	checkIndex("inversion", inversion, NumInversions)
	return inversionNames[inversion]
}

// Notes returns root, third and fifth.
func (t TriadType) Notes(root PitchClass) [3]PitchClass {
	var notes [3]PitchClass
	for i, interval := range t.Intervals {
		notes[i] = root.Transpose(interval)
	}
	return notes
}

// ChordName spells the triad, ex: "Caug".
func (t TriadType) ChordName(root PitchClass) string {
	return root.Name() + t.Symbol
}

// Symmetric reports triads built from equal intervals, whose inversions are
// indistinguishable by shape.
func (t TriadType) Symmetric() bool {
	step := t.Intervals[1] - t.Intervals[0]
	return t.Intervals[2]-t.Intervals[1] == step && NumPitchClasses-t.Intervals[2] == step
}

// BuildVoicing places a triad inversion on a string set. The first string
// gets the inverted bass note and frets are kept within one hand position.
func BuildVoicing(root PitchClass, t TriadType, set StringSet, inversion int) Voicing {
	checkIndex("inversion", inversion, NumInversions)
	checkIndex("pitch class", int(root), NumPitchClasses)

	notes := t.Notes(root)
	var v Voicing
	for i, s := range set.Strings {
		pc := notes[(i+inversion)%len(notes)]
		v[i] = Note{
			Position:   Position{String: s, Fret: FretFor(s, pc)},
			PitchClass: pc,
			IsRoot:     pc == root,
		}
	}
	v.compact()
	return v
}

func (v *Voicing) compact() {
	lo, hi := v.span()
	if hi-lo > maxTriadSpan {
		for i := range v {
			if v[i].Fret-lo > maxTriadSpan {
				v[i].Fret -= FretCount
			}
		}
	}
	if lo, _ = v.span(); lo < 0 {
		for i := range v {
			v[i].Fret += FretCount
		}
	}
}

func (v Voicing) span() (lo, hi int) {
	lo, hi = v[0].Fret, v[0].Fret
	for _, n := range v[1:] {
		lo = min(lo, n.Fret)
		hi = max(hi, n.Fret)
	}
	return lo, hi
}

func (v Voicing) Frets() []int {
	return []int{v[0].Fret, v[1].Fret, v[2].Fret}
}

// Window is the diagram range for the voicing.
func (v Voicing) Window() Window {
	return DiagramWindow(v.Frets()...)
}

// Root returns the index of the root note.
func (v Voicing) Root() int {
	for i, n := range v {
		if n.IsRoot {
			return i
		}
	}
	panic(fmt.Sprintf("voicing %v has no root", v))
}

// ShapeKey identifies a voicing shape independent of its root.
func ShapeKey(t TriadType, set StringSet, inversion int) string {
	return fmt.Sprintf("%s-%s-%d", t.ID, set.Name, inversion)
}
