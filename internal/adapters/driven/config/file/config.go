// Package file loads the fortuna configuration from a TOML file.
//
// Configuration is read once at startup into a value that is passed into
// the adapters that need it; nothing here is a process-wide global.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// Config holds the startup configuration. Every field can be overridden
// by a command-line flag.
type Config struct {
	// EphemerisPath is the directory holding the VSOP87 data files.
	EphemerisPath string `toml:"ephemeris_path"`

	// DataDir is where the scan-history database lives.
	// Empty means ~/.fortuna/data.
	DataDir string `toml:"data_dir"`

	// Latitude and Longitude are the default observer position.
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`

	// HouseSystem is the default house-system code.
	HouseSystem string `toml:"house_system"`
}

// Default returns the built-in configuration: central London, Whole Sign.
func Default() Config {
	return Config{
		Latitude:    51.5072,
		Longitude:   -0.1276,
		HouseSystem: string(domain.WholeSign),
	}
}

// DefaultPath returns the conventional config location, ~/.fortuna/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fortuna", "config.toml"), nil
}

// Load reads the configuration from path. An empty path means the default
// location; a missing file at the default location yields Default() rather
// than an error, but an explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
