package theory

// Muted marks a string left out of a chord shape.
const Muted = -1

// ChordShape is a movable fingering. Offsets are relative to the root fret
// on RootString.
type ChordShape struct {
	Name       string
	RootString int
	Offsets    [NumStrings]int
}

var chordShapes = map[Quality][]ChordShape{
	Diminished: {
		{Name: "E-shape", RootString: 0, Offsets: [NumStrings]int{0, Muted, 2, 3, 2, Muted}},
		{Name: "A-shape", RootString: 1, Offsets: [NumStrings]int{Muted, 0, 1, 2, 1, Muted}},
		{Name: "D-shape", RootString: 2, Offsets: [NumStrings]int{Muted, Muted, 0, 1, 0, 1}},
	},
}

// ChordShapes returns the fingerings drawn for a quality, if any.
func ChordShapes(q Quality) []ChordShape {
	return append([]ChordShape(nil), chordShapes[q]...)
}

// PlaceShape moves a shape so its root lands on root. Muted strings stay
// Muted.
func PlaceShape(shape ChordShape, root PitchClass) [NumStrings]int {
	base := FretFor(shape.RootString, root)
	var frets [NumStrings]int
	for s, offset := range shape.Offsets {
		if offset == Muted {
			frets[s] = Muted
			continue
		}
		frets[s] = base + offset
	}
	return frets
}

// ShapeNotes lists the sounding strings of a placed shape.
func ShapeNotes(frets [NumStrings]int, root PitchClass) []Note {
	var notes []Note
	for s, fret := range frets {
		if fret == Muted {
			continue
		}
		pc := NoteAt(s, fret)
		notes = append(notes, Note{
			Position:   Position{String: s, Fret: fret},
			PitchClass: pc,
			IsRoot:     pc == root,
		})
	}
	return notes
}
