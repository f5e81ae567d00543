package bench

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the environment variables overriding the configuration.
const EnvPrefix = "PREDICT_"

// Config describes a comparison run.
type Config struct {
	// Sizes is the list of input lengths to evaluate.
	Sizes []int `json:"sizes"`
	// Strategies to compare: direct, vectorized, compiled, deferred or
	// deferred:<eager strategy>.
	Strategies []string `json:"strategies"`
	// Rounds is the number of timed evaluations per strategy and size.
	Rounds int `json:"rounds"`
	// Overlay is the flag passed to the predictor.
	Overlay bool `json:"overlay"`
	// Seed of the random inputs generator.
	Seed int64 `json:"seed"`
	// MaxX is the exclusive upper bound of the integer x values.
	MaxX int `json:"max_x"`
	// Chunks and Workers are used by the deferred strategies.
	Chunks  int `json:"chunks"`
	Workers int `json:"workers"`
}

// DefaultConfig returns a configuration with all defaults set.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills the fields that were left empty.
func (c *Config) SetDefaults() {
	if len(c.Sizes) == 0 {
		c.Sizes = []int{1000, 10000, 100000}
	}
	if len(c.Strategies) == 0 {
		c.Strategies = []string{"direct", "vectorized", "compiled", "deferred:direct", "deferred:compiled"}
	}
	if c.Rounds == 0 {
		c.Rounds = 3
	}
	if c.MaxX == 0 {
		c.MaxX = 100
	}
	if c.Chunks == 0 {
		c.Chunks = 1
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no input sizes configured")
	}
	for _, size := range c.Sizes {
		if size < 0 {
			return fmt.Errorf("invalid input size %d", size)
		}
	}
	if len(c.Strategies) == 0 {
		return errors.New("no strategies configured")
	}
	for _, name := range c.Strategies {
		if _, err := resolve(name, c); err != nil {
			return err
		}
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.MaxX < 1 {
		return fmt.Errorf("max_x must be positive, got %d", c.MaxX)
	}
	if c.Chunks < 1 || c.Workers < 1 {
		return fmt.Errorf("chunks and workers must be positive, got %d and %d", c.Chunks, c.Workers)
	}
	return nil
}

// LoadConfig loads the configuration from a YAML or JSON file, if path is not
// empty, then applies the PREDICT_ environment overrides, defaults and validation.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
