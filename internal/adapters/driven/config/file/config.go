// Package file provides the TOML configuration file for duafinder.
// Configuration lives in ~/.duafinder/config.toml unless a directory
// is supplied explicitly.
package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds host-level settings. Matching behaviour (weights,
// stop words, TTL) is deliberately not configurable; only where the
// corpus lives and how results are presented.
type Config struct {
	// CorpusPath is the TOML corpus file the search command reads
	// when no SQLite store is used.
	CorpusPath string `toml:"corpus_path"`

	// DataDir is where the SQLite record database lives.
	DataDir string `toml:"data_dir"`

	// ResultLimit is the default number of results presented.
	ResultLimit int `toml:"result_limit"`

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ResultLimit: 3,
	}
}

// Path returns the config file path for a config directory,
// defaulting to ~/.duafinder.
func Path(configDir string) (string, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".duafinder")
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads configuration from configDir, falling back to defaults
// when no file exists yet.
func Load(configDir string) (Config, error) {
	path, err := Path(configDir)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = Default().ResultLimit
	}
	return cfg, nil
}

// Save persists configuration to configDir with restricted
// permissions, creating the directory if needed.
func Save(configDir string, cfg Config) error {
	path, err := Path(configDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
