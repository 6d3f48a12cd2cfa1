package diagram_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/fretui/diagram"
	"github.com/rapidmidiex/fretui/theory"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("high e is drawn on top", func(t *testing.T) {
		out := diagram.Render(diagram.Board{Window: theory.Window{Start: 0, End: 4}})
		lines := strings.Split(out, "\n")
		require.Len(t, lines, theory.NumStrings+2)
		require.True(t, strings.HasPrefix(lines[0], "e"))
		require.True(t, strings.HasPrefix(lines[5], "E"))
	})

	t.Run("string rows share a width", func(t *testing.T) {
		v := theory.BuildVoicing(0, theory.TriadTypes()[0], theory.StringSets()[0], 0)
		out := diagram.Render(diagram.Board{
			Window:  v.Window(),
			Strings: []int{0, 1, 2},
			Markers: diagram.FromNotes(v[:]),
		})
		lines := strings.Split(out, "\n")
		for _, line := range lines[1:theory.NumStrings] {
			require.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(line))
		}
		for _, name := range []string{"C", "E", "G"} {
			require.Contains(t, out, name)
		}
	})

	t.Run("nut only at the open position", func(t *testing.T) {
		open := diagram.Render(diagram.Board{Window: theory.Window{Start: 0, End: 4}})
		require.Contains(t, open, "‖")
		up := diagram.Render(diagram.Board{Window: theory.Window{Start: 5, End: 9}})
		require.NotContains(t, up, "‖")
	})

	t.Run("fret numbers cover the window", func(t *testing.T) {
		out := diagram.Render(diagram.Board{Window: theory.Window{Start: 9, End: 13}})
		lines := strings.Split(out, "\n")
		numbers := strings.Fields(lines[len(lines)-1])
		require.Equal(t, []string{"9", "10", "11", "12", "13"}, numbers)
		require.Contains(t, lines[len(lines)-2], "••")
	})

	t.Run("unlabelled markers draw a dot", func(t *testing.T) {
		out := diagram.Render(diagram.Board{
			Window:  theory.Window{Start: 0, End: 4},
			Markers: []diagram.Marker{{Position: theory.Position{String: 3, Fret: 2}}},
		})
		require.Contains(t, out, "●")
	})

	t.Run("markers on inactive strings are hidden", func(t *testing.T) {
		out := diagram.Render(diagram.Board{
			Window:  theory.Window{Start: 0, End: 4},
			Strings: []int{0},
			Markers: []diagram.Marker{{Position: theory.Position{String: 5, Fret: 1}, Label: "F"}},
		})
		require.NotContains(t, out, "F")
	})
}

func TestFromNotes(t *testing.T) {
	notes := theory.ShapeNotes(theory.PlaceShape(theory.ChordShapes(theory.Diminished)[0], 11), 11)
	markers := diagram.FromNotes(notes)
	require.Len(t, markers, len(notes))
	require.Equal(t, diagram.Root, markers[0].Kind)
	require.Equal(t, "B", markers[0].Label)
}

func TestGrid(t *testing.T) {
	cards := []string{"a", "b", "c"}
	out := diagram.Grid(cards, 2)
	require.Len(t, strings.Split(out, "\n"), 2)
}
