package cli

import (
	"os"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	ConfigPath string
	Seed       uint64
	Output     string
	Verbose    bool
	NoColor    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigPath: os.Getenv("TRIO_CONFIG"),
		Seed:       getEnvUint("TRIO_SEED", 0),
		Output:     "text",
		Verbose:    false,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}
