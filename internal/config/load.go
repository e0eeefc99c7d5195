package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/todotxt/todotxt.toml)
// 3. Project config file (.todotxt.toml in the current directory)
// 4. Environment variables (TODOTXT_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

// findUserConfigFile returns the user-level config path, or "" when none
// exists.
func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "todotxt", "todotxt.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// findProjectConfigFile returns the project-level config path, or "" when
// none exists.
func findProjectConfigFile() string {
	path := ".todotxt.toml"
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOTXT_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TODOTXT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("TODOTXT_INDENT"); v != "" {
		cfg.Indent = v
	}
	if v := os.Getenv("TODOTXT_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}

// parseFlags registers flags against the current config values, so flags
// override every earlier source, and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.File, "file", cfg.File, "todo.txt file to read")
	fs.StringVar(&cfg.File, "f", cfg.File, "todo.txt file to read (shorthand)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel parse workers (0 = one per CPU)")
	fs.StringVar(&cfg.Indent, "indent", cfg.Indent, "JSON indentation unit")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable diagnostic logging")

	return fs.Parse(args)
}
