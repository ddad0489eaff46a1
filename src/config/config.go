package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	HISTORY_LOG      = "log"
	HISTORY_SNAPSHOT = "snapshot"

	LABELS_COUNTER = "counter"
	LABELS_SCAN    = "scan"

	PALETTE_UNIFORM = "uniform"
	PALETTE_HAPPY   = "happy"
)

type Config struct {
	// Number of columns of rows appended to an empty grid
	Columns int `yaml:"columns"`
	// Number of rows created at startup when no layout is given
	Rows int `yaml:"rows"`
	// History design: "log" records commands, "snapshot" records the whole grid
	History      string `yaml:"history"`
	HistoryLimit int    `yaml:"history_limit"`
	Labels       string `yaml:"labels"`
	LabelBase    int    `yaml:"label_base"`
	LabelStep    int    `yaml:"label_step"`
	Palette      string `yaml:"palette"`
	// XHTML file containing the initial table
	Layout    string `yaml:"layout"`
	LogFile   string `yaml:"log_file"`
	Clipboard bool   `yaml:"clipboard"`
	// Panic on invariant violations instead of reporting them
	Strict bool `yaml:"strict"`
	// Seed for box colors, 0 means seed from the clock
	Seed int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Columns:   3,
		Rows:      3,
		History:   HISTORY_LOG,
		Labels:    LABELS_COUNTER,
		LabelBase: 1000,
		LabelStep: 1,
		Palette:   PALETTE_UNIFORM,
		Clipboard: true,
	}
}

// DefaultPath returns the location of the config file in the user's config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "boxgrid", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults. A missing file is not
// an error unless required is set
func Load(path string, required bool) (Config, error) {
	c := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return c, nil
		}
		return c, fmt.Errorf("Failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(content, &c); err != nil {
		return c, fmt.Errorf("Failed to parse config '%s': %w", path, err)
	}
	// The label defaults depend on the label policy
	if c.Labels == LABELS_SCAN && !setsKey(content, "label_base") {
		c.LabelBase = 100
	}
	if c.Labels == LABELS_SCAN && !setsKey(content, "label_step") {
		c.LabelStep = 100
	}
	return c, c.Validate()
}

func setsKey(content []byte, key string) bool {
	var keys map[string]any
	if err := yaml.Unmarshal(content, &keys); err != nil {
		return false
	}
	_, ok := keys[key]
	return ok
}

func (c Config) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("Columns must be positive, got %d", c.Columns)
	}
	if c.Rows < 0 {
		return fmt.Errorf("Rows must not be negative, got %d", c.Rows)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("History limit must not be negative, got %d", c.HistoryLimit)
	}
	// The counter policy always counts in steps of one
	if c.Labels == LABELS_SCAN && c.LabelStep <= 0 {
		return fmt.Errorf("Label step must be positive, got %d", c.LabelStep)
	}
	switch c.History {
	case HISTORY_LOG, HISTORY_SNAPSHOT:
	default:
		return fmt.Errorf("Unknown history design '%s' (expected '%s' or '%s')", c.History, HISTORY_LOG, HISTORY_SNAPSHOT)
	}
	switch c.Labels {
	case LABELS_COUNTER, LABELS_SCAN:
	default:
		return fmt.Errorf("Unknown label policy '%s' (expected '%s' or '%s')", c.Labels, LABELS_COUNTER, LABELS_SCAN)
	}
	switch c.Palette {
	case PALETTE_UNIFORM, PALETTE_HAPPY:
	default:
		return fmt.Errorf("Unknown palette '%s' (expected '%s' or '%s')", c.Palette, PALETTE_UNIFORM, PALETTE_HAPPY)
	}
	return nil
}
