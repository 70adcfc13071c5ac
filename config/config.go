// Package config holds the settings for a ranking run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/powellquiring/wordle-entropy/gowordle"
	"github.com/powellquiring/wordle-entropy/words"
)

// Config selects the word lists and how they are ranked.
// Guesses and Truths are "possible" for the bundled list or a file path.
type Config struct {
	Guesses  string `yaml:"guesses"`
	Truths   string `yaml:"truths"`
	Rule     string `yaml:"rule"`
	Top      int    `yaml:"top"`
	Workers  int    `yaml:"workers"`
	Unique   bool   `yaml:"unique"`
	Progress bool   `yaml:"progress"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Guesses:  words.Possible,
		Truths:   words.Possible,
		Rule:     gowordle.RuleReference,
		Top:      20,
		Workers:  1,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	ret, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

func Parse(data []byte) (Config, error) {
	ret := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ret); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return Config{}, err
	}
	return ret, nil
}

func (c Config) Validate() error {
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative: %d", c.Top)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if _, err := gowordle.RuleByName(c.Rule); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// LoggerLevel is the zerolog level for LogLevel, info if it does not parse
func (c Config) LoggerLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
