package theory

// ScaleType is a scale shown on the CAGED diagrams.
type ScaleType struct {
	ID        string
	Name      string
	Intervals []int
}

var scaleTypes = []ScaleType{
	{ID: "major", Name: "Major", Intervals: []int{0, 2, 4, 5, 7, 9, 11}},
	{ID: "minor", Name: "Minor", Intervals: []int{0, 2, 3, 5, 7, 8, 10}},
	{ID: "pentatonic-major", Name: "Pentatonic Major", Intervals: []int{0, 2, 4, 7, 9}},
	{ID: "pentatonic-minor", Name: "Pentatonic Minor", Intervals: []int{0, 3, 5, 7, 10}},
}

func ScaleTypes() []ScaleType {
	return append([]ScaleType(nil), scaleTypes...)
}

func ScaleTypeByID(id string) (ScaleType, bool) {
	for _, st := range scaleTypes {
		if st.ID == id {
			return st, true
		}
	}
	return ScaleType{}, false
}

// Notes returns the scale tones starting from key.
func (st ScaleType) Notes(key PitchClass) []PitchClass {
	notes := make([]PitchClass, len(st.Intervals))
	for i, interval := range st.Intervals {
		notes[i] = key.Transpose(interval)
	}
	return notes
}

func (st ScaleType) Contains(key, pc PitchClass) bool {
	for _, n := range st.Notes(key) {
		if n == pc {
			return true
		}
	}
	return false
}

// Shape is a CAGED scale position. BaseStart is its first fret in the key
// of E.
type Shape struct {
	Name      string
	BaseStart int
	Span      int
}

// E is the pitch class the CAGED shapes are anchored on.
const cagedAnchor = 4

var cagedShapes = []Shape{
	{Name: "E Shape", BaseStart: 0, Span: 4},
	{Name: "D Shape", BaseStart: 2, Span: 4},
	{Name: "C Shape", BaseStart: 4, Span: 4},
	{Name: "A Shape", BaseStart: 7, Span: 4},
	{Name: "G Shape", BaseStart: 9, Span: 4},
}

func CAGEDShapes() []Shape {
	return append([]Shape(nil), cagedShapes...)
}

// StartFret moves the shape to key, keeping it below the 12th fret.
func (s Shape) StartFret(key PitchClass) int {
	start := int(Normalize(int(key)-cagedAnchor)) + s.BaseStart
	if start >= FretCount {
		start -= FretCount
	}
	return start
}

func (s Shape) Window(key PitchClass) Window {
	start := s.StartFret(key)
	return Window{Start: start, End: start + s.Span}
}

// ScaleNotesInWindow lists the scale tones inside w on every string, by
// string then fret.
func ScaleNotesInWindow(st ScaleType, key PitchClass, w Window) []Note {
	var notes []Note
	for s := 0; s < NumStrings; s++ {
		for fret := w.Start; fret <= w.End; fret++ {
			pc := NoteAt(s, fret)
			if !st.Contains(key, pc) {
				continue
			}
			notes = append(notes, Note{
				Position:   Position{String: s, Fret: fret},
				PitchClass: pc,
				IsRoot:     pc == key,
			})
		}
	}
	return notes
}
