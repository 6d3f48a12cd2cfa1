// Package diagram draws fretboard windows as text. It only consumes engine
// output (windows, positions, notes); it never computes theory itself.
package diagram

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/fretui/styles"
	"github.com/rapidmidiex/fretui/theory"
)

type Kind int

const (
	Tone Kind = iota
	Root
	Highlight
	Selected
	Correct
	Wrong
	Missed
)

const (
	cellWidth = 4
	dot       = "●"
)

type (
	// Marker is something drawn on a position: a note name or a dot.
	Marker struct {
		theory.Position
		Label string
		Kind  Kind
	}

	Board struct {
		Window theory.Window
		// Strings limits which strings are active; nil means all six.
		Strings []int
		Markers []Marker
		// Cursor, when set, is drawn reversed.
		Cursor *theory.Position
	}
)

func (k Kind) style() lipgloss.Style {
	switch k {
	case Root:
		return styles.RootNote
	case Highlight:
		return styles.Highlighted
	case Selected:
		return styles.Selected
	case Correct:
		return styles.Correct
	case Wrong:
		return styles.Wrong
	case Missed:
		return styles.Missed
	default:
		return styles.ScaleNote
	}
}

// FromNotes labels engine notes with their names, roots stand out.
func FromNotes(notes []theory.Note) []Marker {
	markers := make([]Marker, 0, len(notes))
	for _, n := range notes {
		kind := Tone
		if n.IsRoot {
			kind = Root
		}
		markers = append(markers, Marker{Position: n.Position, Label: n.PitchClass.Name(), Kind: kind})
	}
	return markers
}

// Render draws the board high e on top, like tablature, with inlays and
// fret numbers underneath.
func Render(b Board) string {
	markers := make(map[theory.Position]Marker, len(b.Markers))
	for _, m := range b.Markers {
		markers[m.Position] = m
	}

	var rows []string
	for s := theory.NumStrings - 1; s >= 0; s-- {
		rows = append(rows, renderString(b, s, markers))
	}
	rows = append(rows, renderInlays(b.Window), renderFretNumbers(b.Window))
	return strings.Join(rows, "\n")
}

func (b Board) active(s int) bool {
	if b.Strings == nil {
		return true
	}
	for _, active := range b.Strings {
		if active == s {
			return true
		}
	}
	return false
}

func renderString(b Board, s int, markers map[theory.Position]Marker) string {
	active := b.active(s)
	row := strings.Builder{}
	label := theory.StringName(s) + " "
	if !active {
		label = styles.Faint.Render(label)
	}
	row.WriteString(label)

	for fret := b.Window.Start; fret <= b.Window.End; fret++ {
		pos := theory.Position{String: s, Fret: fret}
		cell := "----"
		if m, ok := markers[pos]; ok && active {
			cell = renderCell(m)
		}
		if !active {
			cell = styles.Faint.Render(cell)
		}
		if b.Cursor != nil && *b.Cursor == pos {
			cell = styles.Cursor.Render(cell)
		}
		row.WriteString(cell)
		row.WriteString(separator(b.Window, fret))
	}
	return row.String()
}

func renderCell(m Marker) string {
	label := m.Label
	if label == "" {
		label = dot
	}
	if r := []rune(label); len(r) > cellWidth-1 {
		label = string(r[:cellWidth-1])
	}
	pad := cellWidth - 1 - lipgloss.Width(label)
	return "-" + m.Kind.style().Render(label) + strings.Repeat("-", pad)
}

// separator follows the cell of fret: the nut after an open string, a fret
// wire otherwise.
func separator(w theory.Window, fret int) string {
	if fret == 0 && w.Start == 0 {
		return "‖"
	}
	return "|"
}

func renderInlays(w theory.Window) string {
	row := strings.Builder{}
	row.WriteString("  ")
	for fret := w.Start; fret <= w.End; fret++ {
		mark := ""
		switch {
		case theory.IsDoubleMarkerFret(fret):
			mark = "••"
		case theory.IsMarkerFret(fret):
			mark = "•"
		}
		row.WriteString(padRight(" "+mark, cellWidth+1))
	}
	return styles.Faint.Render(strings.TrimRight(row.String(), " "))
}

func renderFretNumbers(w theory.Window) string {
	row := strings.Builder{}
	row.WriteString("  ")
	for fret := w.Start; fret <= w.End; fret++ {
		row.WriteString(padRight(" "+strconv.Itoa(fret), cellWidth+1))
	}
	return strings.TrimRight(row.String(), " ")
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Card frames a diagram with a title and a subtitle line.
func Card(title, subtitle string, b Board) string {
	body := styles.BoldStyle.Render(title)
	if subtitle != "" {
		body += "\n" + styles.Faint.Render(subtitle)
	}
	return styles.Card.Render(body + "\n" + Render(b))
}

// Grid lays cards out perRow to a line.
func Grid(cards []string, perRow int) string {
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
