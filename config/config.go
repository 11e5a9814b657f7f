// Package config handles libpaysplit configuration loading and validation.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultMaxPayees is the payee cap used when none is configured.
const DefaultMaxPayees = 5

// Config holds the splitter host configuration.
type Config struct {
	DataDir   string // directory for the state database
	DBFile    string // state database file name within DataDir
	MaxPayees int    // payee cap, 1..10
	LogLevel  string // debug, info, warn, error
}

// DefaultConfig returns the default configuration. The data directory is
// {home}/.paysplit, falling back to a relative .paysplit if the home
// directory cannot be determined.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:   filepath.Join(home, ".paysplit"),
		DBFile:    "state.db",
		MaxPayees: DefaultMaxPayees,
		LogLevel:  "info",
	}
}

// DBPath returns the full path of the state database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// SaveConfig writes cfg to path in key = value format, creating parent
// directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# libpaysplit configuration\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "dbfile = %s\n", cfg.DBFile)
	fmt.Fprintf(&b, "maxpayees = %d\n", cfg.MaxPayees)
	fmt.Fprintf(&b, "loglevel = %s\n", cfg.LogLevel)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write file: %w", err)
	}
	return nil
}

// LoadConfig reads a configuration file. Missing keys retain their defaults;
// unknown keys are ignored so older binaries can read newer files.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("config: open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo, line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "dbfile":
			cfg.DBFile = value
		case "maxpayees":
			n, err := strconv.Atoi(value)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: maxpayees %q", ErrInvalidConfigLine, lineNo, value)
			}
			cfg.MaxPayees = n
		case "loglevel":
			cfg.LogLevel = value
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read file: %w", err)
	}
	return cfg, nil
}
