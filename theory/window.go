package theory

// MinWindowWidth is the narrowest diagram, in frets.
const MinWindowWidth = 4

// Window is the fret range a diagram displays, both ends inclusive.
type Window struct {
	Start int `json:"startFret"`
	End   int `json:"endFret"`
}

// DiagramWindow bounds a set of frets with one fret of context on each side
// (never below the nut) and at least MinWindowWidth frets.
func DiagramWindow(frets ...int) Window {
	if len(frets) == 0 {
		panic(&IndexError{Kind: "fret count", Value: 0, Limit: -1})
	}
	lo, hi := frets[0], frets[0]
	for _, f := range frets[1:] {
		lo = min(lo, f)
		hi = max(hi, f)
	}

	start := max(0, lo-1)
	end := max(start+MinWindowWidth, hi+1)
	if end-start < MinWindowWidth {
		end = start + MinWindowWidth
	}
	return Window{Start: start, End: end}
}

func (w Window) Width() int {
	return w.End - w.Start
}

func (w Window) Contains(fret int) bool {
	return fret >= w.Start && fret <= w.End
}
