// Package config loads user settings from an optional fretui.yaml file,
// FRETUI_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Audio     AudioConfig
	Metronome MetronomeConfig
	Quiz      QuizConfig
	Log       LogConfig
}

type AudioConfig struct {
	Enabled    bool
	SoundFont  string `validate:"omitempty,file"`
	SampleRate int    `validate:"oneof=22050 44100 48000"`
}

type MetronomeConfig struct {
	BPM   int `validate:"min=40,max=240"`
	Beats int `validate:"oneof=2 3 4 6"`
}

type QuizConfig struct {
	Questions int `validate:"oneof=5 10 20"`
}

type LogConfig struct {
	// File receives the logs; they are dropped when empty.
	File  string
	Debug bool
}

// New returns a viper instance with the search paths, environment binding
// and defaults in place. Flags can be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("fretui")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "fretui"))
	}

	// FRETUI_METRONOME_BPM -> metronome.bpm
	v.SetEnvPrefix("fretui")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.soundfont", "")
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("metronome.bpm", 120)
	v.SetDefault("metronome.beats", 4)
	v.SetDefault("quiz.questions", 10)
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)
	return v
}

// Load reads the config file if there is one and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	cfg := &Config{
		Audio: AudioConfig{
			Enabled:    v.GetBool("audio.enabled"),
			SoundFont:  v.GetString("audio.soundfont"),
			SampleRate: v.GetInt("audio.sample_rate"),
		},
		Metronome: MetronomeConfig{
			BPM:   v.GetInt("metronome.bpm"),
			Beats: v.GetInt("metronome.beats"),
		},
		Quiz: QuizConfig{
			Questions: v.GetInt("quiz.questions"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Debug: v.GetBool("log.debug"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}
