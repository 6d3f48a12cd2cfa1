package theory

// Quality of a diatonic triad.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
)

var qualities = []struct {
	name      string
	suffix    string
	intervals [3]int
}{
	Major:      {"major", "", [3]int{0, 4, 7}},
	Minor:      {"minor", "m", [3]int{0, 3, 7}},
	Diminished: {"diminished", "dim", [3]int{0, 3, 6}},
}

func (q Quality) String() string {
	checkIndex("quality", int(q), len(qualities))
	return qualities[q].name
}

// Suffix is appended to the root name to spell the chord, ex: "m".
func (q Quality) Suffix() string {
	checkIndex("quality", int(q), len(qualities))
	return qualities[q].suffix
}

func (q Quality) Intervals() [3]int {
	checkIndex("quality", int(q), len(qualities))
	return qualities[q].intervals
}

// NeedsDiagram reports chords shown with explicit fingerings; only
// diminished chords lack a familiar open shape.
func (q Quality) NeedsDiagram() bool {
	return q == Diminished
}

// ChordTones returns root, third and fifth.
func ChordTones(root PitchClass, q Quality) [3]PitchClass {
	var tones [3]PitchClass
	for i, interval := range q.Intervals() {
		tones[i] = root.Transpose(interval)
	}
	return tones
}

const DegreesPerMode = 7

type (
	// Progression is a named sequence of scale degrees (0-based).
	Progression struct {
		Name     string
		Degrees  []int
		Numerals string
	}

	// Mode is a seven-note scale with its diatonic chords. Intervals,
	// Qualities and Numerals are index-aligned by scale degree.
	Mode struct {
		ID           string
		Name         string
		Intervals    [DegreesPerMode]int
		Qualities    [DegreesPerMode]Quality
		Numerals     [DegreesPerMode]string
		Progressions []Progression
	}
)

var modes = []Mode{
	{
		ID:        "major",
		Name:      "Major (Ionian)",
		Intervals: [7]int{0, 2, 4, 5, 7, 9, 11},
		Qualities: [7]Quality{Major, Minor, Minor, Major, Major, Minor, Diminished},
		Numerals:  [7]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"},
		Progressions: []Progression{
			{"Classic", []int{0, 3, 4, 0}, "I - IV - V - I"},
			{"Pop", []int{0, 4, 5, 3}, "I - V - vi - IV"},
			{"50s", []int{0, 5, 3, 4}, "I - vi - IV - V"},
			{"Jazz ii-V-I", []int{1, 4, 0}, "ii - V - I"},
			{"Pachelbel", []int{0, 4, 5, 2, 3, 0, 3, 4}, "I - V - vi - iii - IV - I - IV - V"},
		},
	},
	{
		ID:        "minor",
		Name:      "Natural Minor (Aeolian)",
		Intervals: [7]int{0, 2, 3, 5, 7, 8, 10},
		Qualities: [7]Quality{Minor, Diminished, Major, Minor, Minor, Major, Major},
		Numerals:  [7]string{"i", "ii°", "III", "iv", "v", "VI", "VII"},
		Progressions: []Progression{
			{"Andalusian", []int{0, 6, 5, 4}, "i - VII - VI - v"},
			{"Minor Classic", []int{0, 3, 4, 0}, "i - iv - v - i"},
			{"Epic", []int{0, 5, 2, 6}, "i - VI - III - VII"},
			{"Emotional", []int{0, 3, 6, 5}, "i - iv - VII - VI"},
		},
	},
	{
		ID:        "dorian",
		Name:      "Dorian",
		Intervals: [7]int{0, 2, 3, 5, 7, 9, 10},
		Qualities: [7]Quality{Minor, Minor, Major, Major, Minor, Diminished, Major},
		Numerals:  [7]string{"i", "ii", "III", "IV", "v", "vi°", "VII"},
		Progressions: []Progression{
			{"Dorian Vamp", []int{0, 3}, "i - IV"},
			{"So What", []int{0, 1, 0}, "i - ii - i"},
			{"Funk", []int{0, 3, 6, 0}, "i - IV - VII - i"},
			{"Santana", []int{0, 6, 3, 0}, "i - VII - IV - i"},
		},
	},
	{
		ID:        "phrygian",
		Name:      "Phrygian",
		Intervals: [7]int{0, 1, 3, 5, 7, 8, 10},
		Qualities: [7]Quality{Minor, Major, Major, Minor, Diminished, Major, Minor},
		Numerals:  [7]string{"i", "II", "III", "iv", "v°", "VI", "vii"},
		Progressions: []Progression{
			{"Phrygian Cadence", []int{0, 1}, "i - II"},
			{"Flamenco", []int{0, 1, 2, 1}, "i - II - III - II"},
			{"Metal", []int{0, 1, 0, 6}, "i - II - i - vii"},
			{"Spanish", []int{0, 6, 5, 1}, "i - vii - VI - II"},
		},
	},
	{
		ID:        "lydian",
		Name:      "Lydian",
		Intervals: [7]int{0, 2, 4, 6, 7, 9, 11},
		Qualities: [7]Quality{Major, Major, Minor, Diminished, Major, Minor, Minor},
		Numerals:  [7]string{"I", "II", "iii", "#iv°", "V", "vi", "vii"},
		Progressions: []Progression{
			{"Lydian Float", []int{0, 1}, "I - II"},
			{"Dreamy", []int{0, 1, 0, 4}, "I - II - I - V"},
			{"Film Score", []int{0, 1, 6, 0}, "I - II - vii - I"},
			{"Ethereal", []int{0, 5, 1, 0}, "I - vi - II - I"},
		},
	},
	{
		ID:        "mixolydian",
		Name:      "Mixolydian",
		Intervals: [7]int{0, 2, 4, 5, 7, 9, 10},
		Qualities: [7]Quality{Major, Minor, Diminished, Major, Minor, Minor, Major},
		Numerals:  [7]string{"I", "ii", "iii°", "IV", "v", "vi", "VII"},
		Progressions: []Progression{
			{"Rock Mixo", []int{0, 6, 3}, "I - VII - IV"},
			{"Hey Jude", []int{0, 6, 0, 3}, "I - VII - I - IV"},
			{"Sweet Home", []int{0, 3, 6, 0}, "I - IV - VII - I"},
			{"Blues Rock", []int{0, 3, 0, 6}, "I - IV - I - VII"},
		},
	},
	{
		ID:        "locrian",
		Name:      "Locrian",
		Intervals: [7]int{0, 1, 3, 5, 6, 8, 10},
		Qualities: [7]Quality{Diminished, Major, Minor, Minor, Major, Major, Minor},
		Numerals:  [7]string{"i°", "II", "iii", "iv", "V", "VI", "vii"},
		Progressions: []Progression{
			{"Locrian Resolve", []int{0, 1}, "i° - II"},
			{"Dark Tension", []int{0, 4, 5, 0}, "i° - V - VI - i°"},
			{"Avant-garde", []int{0, 2, 3, 1}, "i° - iii - iv - II"},
		},
	},
}

// Modes returns the mode catalog in display order.
func Modes() []Mode {
	return append([]Mode(nil), modes...)
}

func ModeByID(id string) (Mode, bool) {
	for _, mode := range modes {
		if mode.ID == id {
			return mode, true
		}
	}
	return Mode{}, false
}

// ChordRoot is the root of the chord built on a scale degree.
func (md Mode) ChordRoot(key PitchClass, degree int) PitchClass {
	checkIndex("degree", degree, DegreesPerMode)
	return key.Transpose(md.Intervals[degree])
}

// ChordName spells the diatonic chord on a degree, ex: "Dm".
func (md Mode) ChordName(key PitchClass, degree int) string {
	return md.ChordRoot(key, degree).Name() + md.Qualities[degree].Suffix()
}

// ChordTones of the diatonic chord on a degree.
func (md Mode) ChordTones(key PitchClass, degree int) [3]PitchClass {
	return ChordTones(md.ChordRoot(key, degree), md.Qualities[degree])
}

// ProgressionChordNames resolves each degree of p in the given key.
func (md Mode) ProgressionChordNames(key PitchClass, p Progression) []string {
	names := make([]string, len(p.Degrees))
	for i, degree := range p.Degrees {
		names[i] = md.ChordName(key, degree)
	}
	return names
}

// Notes are the seven scale tones from the key.
func (md Mode) Notes(key PitchClass) [DegreesPerMode]PitchClass {
	var notes [DegreesPerMode]PitchClass
	for i, interval := range md.Intervals {
		notes[i] = key.Transpose(interval)
	}
	return notes
}
