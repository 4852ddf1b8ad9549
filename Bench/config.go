package Bench

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".treebench"
	configType = "yaml"
	envPrefix  = "TREEBENCH"
)

const (
	DefaultSize     = 100_000
	DefaultSteps    = 10
	DefaultDataset  = Uniform
	DefaultMaxValue = 1 << 30
	DefaultSearches = 1000
	DefaultSeed     = 42
	DefaultOutDir   = "data/results"
	DefaultFormat   = "json"
)

// Formats results can be saved in.
var Formats = []string{"json", "yaml"}

// Config of one benchmark run.
type Config struct {
	Size     int      `mapstructure:"size"`
	Steps    int      `mapstructure:"steps"`
	Dataset  Kind     `mapstructure:"dataset"`
	MaxValue int      `mapstructure:"max_value"`
	Searches int      `mapstructure:"searches"`
	Seed     uint64   `mapstructure:"seed"`
	Engines  []string `mapstructure:"engines"`
	OutDir   string   `mapstructure:"out_dir"`
	Format   string   `mapstructure:"format"`
}

// flagKeys maps config keys to the command line flags that may set them.
var flagKeys = map[string]string{
	"size":      "size",
	"steps":     "steps",
	"dataset":   "dataset",
	"max_value": "max-value",
	"searches":  "searches",
	"seed":      "seed",
	"engines":   "engines",
	"out_dir":   "out",
	"format":    "format",
}

// LoadConfig layers defaults, the config file, TREEBENCH_* environment
// variables and the flags that were set, in rising precedence. An empty path
// searches for .treebench.yaml in the working and home directories; not
// finding one is fine. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("size", DefaultSize)
	v.SetDefault("steps", DefaultSteps)
	v.SetDefault("dataset", string(DefaultDataset))
	v.SetDefault("max_value", DefaultMaxValue)
	v.SetDefault("searches", DefaultSearches)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("engines", EngineNames())
	v.SetDefault("out_dir", DefaultOutDir)
	v.SetDefault("format", DefaultFormat)
}

// Validate reports the first setting the runner can't work with.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("size must be positive, got %d", c.Size)
	case c.Steps <= 0 || c.Steps > c.Size:
		return fmt.Errorf("steps must be in [1, %d], got %d", c.Size, c.Steps)
	case c.MaxValue <= 0:
		return fmt.Errorf("max_value must be positive, got %d", c.MaxValue)
	case c.Searches < 0:
		return fmt.Errorf("searches can't be negative, got %d", c.Searches)
	case !c.Dataset.Valid():
		return fmt.Errorf("unknown dataset %q, want one of %v", c.Dataset, Kinds())
	case len(c.Engines) == 0:
		return errors.New("no engines selected")
	case !slices.Contains(Formats, c.Format):
		return fmt.Errorf("unknown format %q, want one of %v", c.Format, Formats)
	}
	for i, e := range c.Engines {
		if _, ok := factories[e]; !ok {
			return fmt.Errorf("unknown engine %q, want one of %v", e, EngineNames())
		}
		if slices.Contains(c.Engines[:i], e) {
			return fmt.Errorf("engine %q selected twice", e)
		}
	}
	return nil
}
