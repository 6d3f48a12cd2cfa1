// Package cmd is the fretui command line. With no subcommand it opens the
// TUI; the subcommands print engine results as text or JSON.
package cmd

import (
	"github.com/rapidmidiex/fretui"
	"github.com/rapidmidiex/fretui/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the command tree around a fresh viper instance.
func NewRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "fretui",
		Short: "Guitar fretboard trainer for the terminal",
		Long: `fretui explores notes, CAGED scale shapes, triads and chord
progressions on a standard tuned guitar, keeps time with a metronome and
drills the fretboard with three quiz games.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(v)
		},
	}

	f := rootCmd.Flags()
	f.Bool("audio", true, "play notes and clicks")
	f.String("soundfont", "", "SoundFont (.sf2) used for notes")
	f.Int("sample-rate", 44100, "audio sample rate")
	f.Int("bpm", 120, "metronome tempo")
	f.Int("beats", 4, "metronome beats per measure")
	f.Int("questions", 10, "questions per quiz game")
	f.String("log-file", "", "write logs to this file")
	f.Bool("debug", false, "debug logging")
	bind(v, rootCmd, map[string]string{
		"audio.enabled":     "audio",
		"audio.soundfont":   "soundfont",
		"audio.sample_rate": "sample-rate",
		"metronome.bpm":     "bpm",
		"metronome.beats":   "beats",
		"quiz.questions":    "questions",
		"log.file":          "log-file",
		"log.debug":         "debug",
	})

	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON documents")

	rootCmd.AddCommand(
		newPositionsCmd(),
		newTriadsCmd(),
		newScaleCmd(),
		newProgressionsCmd(),
	)
	return rootCmd
}

func bind(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		cobra.CheckErr(v.BindPFlag(key, cmd.Flags().Lookup(flag)))
	}
}

func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}

func runTUI(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, closer, err := fretui.NewLogger(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	player, err := fretui.NewPlayer(cfg.Audio, logger)
	if err != nil {
		return err
	}
	defer player.Close()

	logger.Info("starting", "bpm", cfg.Metronome.BPM, "questions", cfg.Quiz.Questions, "audio", cfg.Audio.Enabled)
	return fretui.Run(cfg, player, logger)
}
