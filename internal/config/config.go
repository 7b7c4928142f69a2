package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"initiative-tracker/internal/turnorder"
)

// UI front ends.
const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Config holds everything the tracker reads at start-up.
type Config struct {
	UI       string `yaml:"ui"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // empty = tracker.log in the data dir

	Theme     Theme      `yaml:"theme"`
	Encounter []Creature `yaml:"encounter"`
}

// envOverrides are the TRACKER_* variables; set ones replace file values.
type envOverrides struct {
	UI       string `env:"TRACKER_UI"`
	LogLevel string `env:"TRACKER_LOG_LEVEL"`
	LogFile  string `env:"TRACKER_LOG_FILE"`
}

// Theme names the TUI colours (any name tcell understands, or #rrggbb).
type Theme struct {
	Current string `yaml:"current"`
	Text    string `yaml:"text"`
	Dim     string `yaml:"dim"`
	Message string `yaml:"message"`
}

// Creature is one pre-rolled roster entry.
type Creature struct {
	Name       string   `yaml:"name"`
	Initiative int      `yaml:"initiative"`
	Effects    []Effect `yaml:"effects"`
}

// Effect is a status effect on a pre-rolled creature. A nil Turns means the
// effect is indefinite.
type Effect struct {
	Name  string `yaml:"name"`
	Turns *int   `yaml:"turns"`
	Clear string `yaml:"clear"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		UI:       UIConsole,
		LogLevel: "info",
		Theme: Theme{
			Current: "yellow",
			Text:    "white",
			Dim:     "gray",
			Message: "lightyellow",
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// TRACKER_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if ov.UI != "" {
		cfg.UI = ov.UI
	}
	if ov.LogLevel != "" {
		cfg.LogLevel = ov.LogLevel
	}
	if ov.LogFile != "" {
		cfg.LogFile = ov.LogFile
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.UI {
	case UIConsole, UITUI:
	default:
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIConsole, UITUI)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a config string to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Seed adds the encounter to order through its public API.
func (c Config) Seed(order *turnorder.TurnOrder) error {
	for _, cr := range c.Encounter {
		order.AddCreature(cr.Name, cr.Initiative)
		index := indexOf(order, cr.Name, cr.Initiative)
		for _, eff := range cr.Effects {
			if err := seedEffect(order, index, eff); err != nil {
				return fmt.Errorf("encounter creature %s: %w", cr.Name, err)
			}
		}
	}
	return nil
}

func seedEffect(order *turnorder.TurnOrder, index int, eff Effect) error {
	if eff.Turns == nil {
		return order.AddStatusEffect(index, eff.Name)
	}
	ct := turnorder.ClearBeginningOfTurn
	if eff.Clear != "" {
		var err error
		if ct, err = turnorder.ParseClearType(eff.Clear); err != nil {
			return fmt.Errorf("effect %s: %w", eff.Name, err)
		}
	}
	return order.AddStatusEffectTimed(index, eff.Name, *eff.Turns, ct)
}

// indexOf finds the creature just added: ties keep insertion order, so it is
// the last entry with that name and initiative.
func indexOf(order *turnorder.TurnOrder, name string, initiative int) int {
	index := -1
	for i, c := range order.Creatures() {
		if c.Name() == name && c.Initiative() == initiative {
			index = i
		}
	}
	return index
}
