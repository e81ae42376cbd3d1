package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-freqsort/freq"
	"github.com/ajroetker/go-freqsort/freq/sort"
)

// Config holds the runtime settings of the command.
type Config struct {
	// Workers is the worker pool size; 0 means one per available CPU.
	Workers int `toml:"workers"`

	// Threshold is the smallest range length sorted in parallel.
	Threshold int `toml:"threshold"`

	// MaxNumbers bounds the input size; 0 means unbounded.
	MaxNumbers int `toml:"max_numbers"`

	// Sequential disables the worker pool.
	Sequential bool `toml:"sequential"`

	Log LogConfig `toml:"log"`
}

// LogConfig selects the diagnostic log output on stderr.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func defaultConfig() Config {
	return Config{
		Threshold:  sort.DefaultSequentialThreshold,
		MaxNumbers: freq.DefaultMaxNumbers,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func addConfigFlags(flags *pflag.FlagSet) {
	def := defaultConfig()
	flags.Int("workers", def.Workers, "worker pool size (0 = available CPUs)")
	flags.Int("threshold", def.Threshold, "smallest range length sorted in parallel")
	flags.Int("max-numbers", def.MaxNumbers, "maximum count of input numbers (0 = unbounded)")
	flags.Bool("sequential", def.Sequential, "run without a worker pool")
	flags.String("log-level", def.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", def.Log.Format, "log format (text, json)")
}

// loadConfig layers defaults, the TOML file at path (if any), the
// environment and the flags that were set explicitly.
func loadConfig(path string, env func() (freq.Settings, error), flags *pflag.FlagSet) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: unknown key %q in %s", freq.ErrConfiguration, undecoded[0].String(), path)
		}
	}

	s, err := env()
	if err != nil {
		return cfg, err
	}
	if s.Workers != nil {
		cfg.Workers = *s.Workers
	}
	if s.Threshold != nil {
		cfg.Threshold = *s.Threshold
	}
	if s.MaxNumbers != nil {
		cfg.MaxNumbers = *s.MaxNumbers
	}
	if s.Sequential {
		cfg.Sequential = true
	}

	if flags != nil {
		if err := applyFlags(&cfg, flags); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func applyFlags(cfg *Config, flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("threshold") {
		if cfg.Threshold, err = flags.GetInt("threshold"); err != nil {
			return err
		}
	}
	if flags.Changed("max-numbers") {
		if cfg.MaxNumbers, err = flags.GetInt("max-numbers"); err != nil {
			return err
		}
	}
	if flags.Changed("sequential") {
		if cfg.Sequential, err = flags.GetBool("sequential"); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if flags.Changed("log-format") {
		if cfg.Log.Format, err = flags.GetString("log-format"); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) logger(w io.Writer) (*freq.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", freq.ErrConfiguration, c.Log.Level)
	}

	switch c.Log.Format {
	case "", "text":
		return freq.NewTextLogger(w, level), nil
	case "json":
		return freq.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", freq.ErrConfiguration, c.Log.Format)
	}
}

func (c Config) options(logger *freq.Logger) []sort.Option {
	opts := []sort.Option{
		sort.WithWorkers(c.Workers),
		sort.WithSequentialThreshold(c.Threshold),
		sort.WithMaxNumbers(c.MaxNumbers),
		sort.WithLogger(logger),
	}
	if c.Sequential {
		opts = append(opts, sort.WithSequential())
	}
	return opts
}
