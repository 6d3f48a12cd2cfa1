package theory_test

import (
	"testing"

	"github.com/rapidmidiex/fretui/theory"
	"github.com/stretchr/testify/require"
)

func triad(t *testing.T, id string) theory.TriadType {
	t.Helper()
	tt, ok := theory.TriadTypeByID(id)
	require.True(t, ok, id)
	return tt
}

func TestBuildVoicing(t *testing.T) {
	sets := theory.StringSets()
	eAD, dGB, gBe := sets[0], sets[2], sets[3]

	tt := []struct {
		name      string
		root      theory.PitchClass
		triad     string
		set       theory.StringSet
		inversion int
		frets     []int
		notes     []theory.PitchClass
		root0     int
	}{
		{"C root position E-A-D", 0, "major", eAD, 0, []int{8, 7, 5}, []theory.PitchClass{0, 4, 7}, 0},
		// E on the open E string, G and C at 10 fold down then lift back up.
		{"C 1st inversion E-A-D", 0, "major", eAD, 1, []int{12, 10, 10}, []theory.PitchClass{4, 7, 0}, 2},
		{"C 2nd inversion E-A-D", 0, "major", eAD, 2, []int{3, 3, 2}, []theory.PitchClass{7, 0, 4}, 1},
		{"C root position G-B-e", 0, "major", gBe, 0, []int{5, 5, 3}, []theory.PitchClass{0, 4, 7}, 0},
		{"Am root position D-G-B", 9, "minor", dGB, 0, []int{7, 5, 5}, []theory.PitchClass{9, 0, 4}, 0},
		{"G root position E-A-D", 7, "major", eAD, 0, []int{3, 2, 0}, []theory.PitchClass{7, 11, 2}, 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v := theory.BuildVoicing(tc.root, triad(t, tc.triad), tc.set, tc.inversion)
			require.Equal(t, tc.frets, v.Frets())
			for i, n := range v {
				require.Equal(t, tc.set.Strings[i], n.String)
				require.Equal(t, tc.notes[i], n.PitchClass)
				require.Equal(t, tc.notes[i], theory.NoteAt(n.String, n.Fret))
			}
			require.Equal(t, tc.root0, v.Root())
			require.Equal(t, tc.root, v[v.Root()].PitchClass)
		})
	}
}

func TestBuildVoicingDiminished1stInversion(t *testing.T) {
	v := theory.BuildVoicing(11, triad(t, "diminished"), theory.StringSets()[1], 1)
	require.Equal(t, []int{5, 3, 4}, v.Frets())
	require.Equal(t, 2, v.Root())
}

func TestBuildVoicingIsPlayable(t *testing.T) {
	for root := theory.PitchClass(0); root < theory.NumPitchClasses; root++ {
		for _, tt := range theory.TriadTypes() {
			for _, set := range theory.StringSets() {
				for inversion := 0; inversion < theory.NumInversions; inversion++ {
					v := theory.BuildVoicing(root, tt, set, inversion)
					lo, hi := v[0].Fret, v[0].Fret
					for _, n := range v {
						require.Equal(t, theory.NoteAt(n.String, n.Fret), n.PitchClass)
						require.Equal(t, n.PitchClass == root, n.IsRoot)
						lo, hi = min(lo, n.Fret), max(hi, n.Fret)
					}
					require.GreaterOrEqual(t, lo, 0)
					require.LessOrEqual(t, hi-lo, 5, "%s %s %d", tt.ChordName(root), set.Name, inversion)
				}
			}
		}
	}
}

func TestBuildVoicingRejectsInversion(t *testing.T) {
	require.Panics(t, func() {
		theory.BuildVoicing(0, triad(t, "major"), theory.StringSets()[0], 3)
	})
}

func TestTriadTypes(t *testing.T) {
	require.Len(t, theory.TriadTypes(), 4)
	require.True(t, triad(t, "augmented").Symmetric())
	require.False(t, triad(t, "major").Symmetric())
	require.False(t, triad(t, "diminished").Symmetric())
	require.Equal(t, "F#dim", triad(t, "diminished").ChordName(6))
	require.Equal(t, "1st Inversion", theory.InversionName(1))
	require.Equal(t, "major-D-G-B-2", theory.ShapeKey(triad(t, "major"), theory.StringSets()[2], 2))
}
