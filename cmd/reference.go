package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rapidmidiex/fretui/diagram"
	"github.com/rapidmidiex/fretui/export"
	"github.com/rapidmidiex/fretui/theory"
	"github.com/spf13/cobra"
)

const allTypes = "all"

func jsonOutput(cmd *cobra.Command) bool {
	on, _ := cmd.Flags().GetBool("json")
	return on
}

// emit prints envs as JSON when --json is set, else calls text.
func emit(cmd *cobra.Command, envs []export.Envelope, text func(io.Writer)) error {
	if jsonOutput(cmd) {
		return export.Write(cmd.OutOrStdout(), envs...)
	}
	text(cmd.OutOrStdout())
	return nil
}

func newPositionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "positions <note>",
		Short:   "Lists every position of a note, frets 0 to 12",
		Example: "  fretui positions Bb",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := theory.ParseName(args[0])
			if err != nil {
				return err
			}
			positions := theory.PositionsOf(pc)

			env, err := export.New(export.POSITIONS, export.PositionsMsg{Note: pc.Name(), Positions: positions})
			if err != nil {
				return err
			}
			return emit(cmd, []export.Envelope{env}, func(w io.Writer) {
				markers := make([]diagram.Marker, 0, len(positions))
				for _, pos := range positions {
					markers = append(markers, diagram.Marker{Position: pos, Label: pc.Name(), Kind: diagram.Highlight})
				}
				fmt.Fprintf(w, "%s: %d positions\n\n", pc.DisplayName(), len(positions))
				fmt.Fprintln(w, diagram.Render(diagram.Board{
					Window:  theory.Window{Start: 0, End: theory.FretCount},
					Markers: markers,
				}))
			})
		},
	}
}

func newTriadsCmd() *cobra.Command {
	var typeID string
	cmd := &cobra.Command{
		Use:     "triads <root>",
		Short:   "Shows triad voicings on every string set and inversion",
		Example: "  fretui triads A --type minor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := theory.ParseName(args[0])
			if err != nil {
				return err
			}
			types, err := triadTypes(typeID)
			if err != nil {
				return err
			}

			var (
				envs  []export.Envelope
				cards []string
			)
			for _, t := range types {
				for _, set := range theory.StringSets() {
					for inv := 0; inv < theory.NumInversions; inv++ {
						v := theory.BuildVoicing(root, t, set, inv)
						env, err := export.New(export.VOICING, export.VoicingMsg{
							Chord:     t.ChordName(root),
							Type:      t.ID,
							StringSet: set.Name,
							Inversion: theory.InversionName(inv),
							Notes:     v[:],
							Window:    v.Window(),
						})
						if err != nil {
							return err
						}
						envs = append(envs, env)
						cards = append(cards, diagram.Card(
							fmt.Sprintf("%s %s", t.ChordName(root), set.Name),
							theory.InversionName(inv),
							diagram.Board{Window: v.Window(), Strings: set.Strings[:], Markers: diagram.FromNotes(v[:])},
						))
					}
				}
			}
			return emit(cmd, envs, func(w io.Writer) {
				for i, t := range types {
					notes := t.Notes(root)
					fmt.Fprintf(w, "%s %s (%s)\n", root.Name(), t.Name, joinNames(notes[:]))
					per := len(theory.StringSets()) * theory.NumInversions
					fmt.Fprintln(w, diagram.Grid(cards[i*per:(i+1)*per], theory.NumInversions))
				}
			})
		},
	}
	cmd.Flags().StringVarP(&typeID, "type", "t", "major", "triad type: major, minor, diminished, augmented or all")
	return cmd
}

func triadTypes(id string) ([]theory.TriadType, error) {
	if id == allTypes {
		return theory.TriadTypes(), nil
	}
	t, ok := theory.TriadTypeByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown triad type %q", id)
	}
	return []theory.TriadType{t}, nil
}

func newScaleCmd() *cobra.Command {
	var scaleID string
	cmd := &cobra.Command{
		Use:     "scale <key>",
		Short:   "Shows the five CAGED shapes of a scale",
		Example: "  fretui scale G --scale pentatonic-minor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := theory.ParseName(args[0])
			if err != nil {
				return err
			}
			st, ok := theory.ScaleTypeByID(scaleID)
			if !ok {
				return fmt.Errorf("unknown scale %q", scaleID)
			}

			var (
				envs  []export.Envelope
				cards []string
			)
			for _, shape := range theory.CAGEDShapes() {
				w := shape.Window(key)
				notes := theory.ScaleNotesInWindow(st, key, w)
				env, err := export.New(export.SCALE, export.ScaleMsg{
					Key:    key.Name(),
					Scale:  st.ID,
					Shape:  shape.Name,
					Window: w,
					Notes:  notes,
				})
				if err != nil {
					return err
				}
				envs = append(envs, env)
				cards = append(cards, diagram.Card(
					shape.Name,
					fmt.Sprintf("Frets %d-%d", w.Start, w.End),
					diagram.Board{Window: w, Markers: diagram.FromNotes(notes)},
				))
			}
			return emit(cmd, envs, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n%s\n\n", key.Name(), st.Name, joinNames(st.Notes(key)))
				fmt.Fprintln(w, diagram.Grid(cards, 3))
			})
		},
	}
	cmd.Flags().StringVarP(&scaleID, "scale", "s", "major", "major, minor, pentatonic-major or pentatonic-minor")
	return cmd
}

func newProgressionsCmd() *cobra.Command {
	var modeID string
	cmd := &cobra.Command{
		Use:     "progressions <key>",
		Short:   "Lists common chord progressions in a key",
		Example: "  fretui progressions D --mode dorian",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := theory.ParseName(args[0])
			if err != nil {
				return err
			}
			mode, ok := theory.ModeByID(modeID)
			if !ok {
				return fmt.Errorf("unknown mode %q", modeID)
			}

			envs := make([]export.Envelope, 0, len(mode.Progressions))
			for _, p := range mode.Progressions {
				env, err := export.New(export.PROGRESSION, export.ProgressionMsg{
					Key:      key.Name(),
					Mode:     mode.ID,
					Name:     p.Name,
					Numerals: p.Numerals,
					Chords:   mode.ProgressionChordNames(key, p),
				})
				if err != nil {
					return err
				}
				envs = append(envs, env)
			}
			return emit(cmd, envs, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n\n", key.Name(), mode.Name)
				for _, p := range mode.Progressions {
					fmt.Fprintf(w, "%-18s %-34s %s\n", p.Name, p.Numerals,
						strings.Join(mode.ProgressionChordNames(key, p), " - "))
				}
			})
		},
	}
	cmd.Flags().StringVarP(&modeID, "mode", "m", "major", "major, minor, dorian, phrygian, lydian, mixolydian or locrian")
	return cmd
}

func joinNames(pcs []theory.PitchClass) string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = pc.Name()
	}
	return strings.Join(names, " - ")
}
