// Package config holds program configuration: logging, template-part
// detection policy and export options. The detection weights are
// configuration rather than constants because their values are policy, not
// physics; defaults mirror the scoring rubric the detector was tuned with.
package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	// DetectorWeights is the additive confidence rubric for one template
	// part kind. Confidence is capped at 100.
	DetectorWeights struct {
		Tag       int `yaml:"tag"`       // semantic tag match (<header>, <footer>, <aside>)
		ID        int `yaml:"id"`        // id substring match
		Class     int `yaml:"class"`     // class substring match
		Secondary int `yaml:"secondary"` // nav/social/widget secondary signal
	}

	DetectorConfig struct {
		Header  DetectorWeights `yaml:"header"`
		Footer  DetectorWeights `yaml:"footer"`
		Sidebar DetectorWeights `yaml:"sidebar"`

		// PresenceThreshold is the minimum confidence for a part to count
		// as present in the consistency statistic.
		PresenceThreshold int `yaml:"presence_threshold"`

		// RecurrenceRatio is the share of pages a candidate must appear on
		// to be marked recurring.
		RecurrenceRatio float64 `yaml:"recurrence_ratio"`
	}

	ExportConfig struct {
		Title        string `yaml:"title"`
		ContentWidth int    `yaml:"content_width"`
		CustomCSS    bool   `yaml:"custom_css"`
	}

	Config struct {
		Version  int            `yaml:"version"`
		Logging  LoggingConfig  `yaml:"logging"`
		Detector DetectorConfig `yaml:"detector"`
		Export   ExportConfig   `yaml:"export"`
	}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
		Detector: DetectorConfig{
			Header:            DetectorWeights{Tag: 40, ID: 40, Class: 25, Secondary: 15},
			Footer:            DetectorWeights{Tag: 40, ID: 40, Class: 25, Secondary: 10},
			Sidebar:           DetectorWeights{Tag: 40, ID: 35, Class: 25, Secondary: 10},
			PresenceThreshold: 60,
			RecurrenceRatio:   0.5,
		},
		Export: ExportConfig{
			Title:        "Imported page",
			ContentWidth: 1140,
			CustomCSS:    true,
		},
	}
}

// LoadConfiguration reads configuration from path, layered over defaults.
// An empty path returns the defaults untouched.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	// We want to use only fields we defined, so an unknown key is an error
	// rather than a silent typo.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("bad configuration %s: %w", path, err)
	}
	return cfg, nil
}

// Dump serializes the active configuration back to YAML.
func Dump(c *Config) ([]byte, error) {
	if c == nil {
		c = Default()
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", c.Version)
	}
	for _, l := range []LoggerConfig{c.Logging.ConsoleLogger, c.Logging.FileLogger} {
		switch l.Level {
		case "", "none", "normal", "debug":
		default:
			return fmt.Errorf("unknown log level %q", l.Level)
		}
		switch l.Mode {
		case "", "append", "overwrite":
		default:
			return fmt.Errorf("unknown log mode %q", l.Mode)
		}
	}
	if c.Detector.PresenceThreshold < 0 || c.Detector.PresenceThreshold > 100 {
		return fmt.Errorf("presence threshold %d out of range", c.Detector.PresenceThreshold)
	}
	if c.Detector.RecurrenceRatio < 0 || c.Detector.RecurrenceRatio > 1 {
		return fmt.Errorf("recurrence ratio %v out of range", c.Detector.RecurrenceRatio)
	}
	if c.Export.ContentWidth <= 0 {
		return fmt.Errorf("content width must be positive")
	}
	return nil
}
