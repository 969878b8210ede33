// Package config holds settings shared by all commands.
package config

const (
	// AppName is the binary name used in usage and version output.
	AppName = "todo"
)

// Config holds settings parsed from the common flags.
// There is no configuration file and no environment lookup.
type Config struct {
	// Debug enables debug logging to stderr.
	Debug bool

	// Quiet suppresses informational output such as "ok".
	Quiet bool
}

// New creates a Config with everything off.
func New() *Config {
	return &Config{}
}
