package freq

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by Env.
const (
	EnvWorkers    = "FREQSORT_WORKERS"
	EnvThreshold  = "FREQSORT_THRESHOLD"
	EnvMaxNumbers = "FREQSORT_MAX_NUMBERS"
	EnvSequential = "FREQSORT_SEQUENTIAL"
)

// DefaultMaxNumbers is the default input capacity.
const DefaultMaxNumbers = 1000

// Settings holds the tunables that may come from the environment.
// A nil pointer field means the variable was not set.
type Settings struct {
	Workers    *int
	Threshold  *int
	MaxNumbers *int
	Sequential bool
}

// Env reads the FREQSORT_* variables from the process environment.
// It fails on integer variables that do not parse.
func Env() (Settings, error) {
	return envFrom(os.Getenv)
}

func envFrom(getenv func(string) string) (Settings, error) {
	var s Settings
	var err error

	if s.Workers, err = envInt(getenv, EnvWorkers); err != nil {
		return s, err
	}
	if s.Threshold, err = envInt(getenv, EnvThreshold); err != nil {
		return s, err
	}
	if s.MaxNumbers, err = envInt(getenv, EnvMaxNumbers); err != nil {
		return s, err
	}
	s.Sequential = envBool(getenv(EnvSequential))
	return s, nil
}

func envInt(getenv func(string) string, key string) (*int, error) {
	val := getenv(key)
	if val == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrConfiguration, key, val)
	}
	return &n, nil
}

// SequentialEnv checks if FREQSORT_SEQUENTIAL is set. When set, the sorters
// run without a worker pool.
func SequentialEnv() bool {
	return envBool(os.Getenv(EnvSequential))
}

func envBool(val string) bool {
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
