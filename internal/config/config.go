// Package config handles configuration loading and defaults for the
// todotxt CLI.
package config

// Default values.
const (
	DefaultFile    = "todo.txt"
	DefaultIndent  = "  "
	DefaultWorkers = 0 // 0 means one worker per CPU
)

// Config holds the full configuration for the todotxt CLI.
type Config struct {
	// File is the todo.txt file commands fall back to when neither an
	// argument nor piped stdin is given.
	File string `toml:"file"`

	// Workers caps the parallel parse pool; 0 uses one per CPU.
	Workers int `toml:"workers"`

	// Indent is the indentation unit for JSON output.
	Indent string `toml:"indent"`

	// Verbose enables diagnostic logging.
	Verbose bool `toml:"verbose"`
}

func setDefaults(cfg *Config) {
	cfg.File = DefaultFile
	cfg.Indent = DefaultIndent
	cfg.Workers = DefaultWorkers
}
