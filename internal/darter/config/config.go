// Package config loads the optional TOML settings file that tunes
// conflict-resolution policy, the regex-strategy lexer's complex-literal
// support, and table caching. Its absence is never an error: Load returns
// Default() unchanged when the file does not exist.
package config

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every user-tunable setting. Field names match the TOML keys
// directly, in the BurntSushi/toml convention seen throughout the pack's
// other TOML-backed config files.
type Config struct {
	ConflictPolicy        string `toml:"conflict_policy"`
	EnableComplexLiterals bool   `toml:"enable_complex_literals"`
	CacheTables           bool   `toml:"cache_tables"`
}

// Default returns the built-in settings used when no config file is
// present or it fails to parse.
func Default() Config {
	return Config{
		ConflictPolicy:        "shift-wins",
		EnableComplexLiterals: false,
		CacheTables:           true,
	}
}

// Load reads and parses the TOML file at path over top of Default(). A
// missing file is not an error and silently yields the defaults; a
// malformed file logs a warning and also falls back to the defaults, per
// the same "never fatal for optional ambient config" policy the cache
// package follows for corrupt cache files.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN  could not read config file %s: %s (using defaults)", path, err)
		}
		return cfg
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		log.Printf("WARN  could not parse config file %s: %s (using defaults)", path, err)
		return Default()
	}

	return cfg
}
