package spill

import (
	"github.com/rs/zerolog"
)

// DefaultThreshold is the in-memory size limit used when a Config does not
// set one.
const DefaultThreshold = 1 << 20 // 1MB

// Config holds configuration settings for a Buffer
type Config struct {
	Threshold int64           // in-memory size above which content moves to disk
	Dir       string          // directory for the spill file, empty for the OS default
	Prefix    string          // spill file name prefix
	Suffix    string          // spill file name suffix
	Logger    *zerolog.Logger // destination for best-effort cleanup reporting, nil to stay quiet
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	nop := zerolog.Nop()
	return &Config{
		Threshold: DefaultThreshold,
		Prefix:    "memfile-",
		Suffix:    ".tmp",
		Logger:    &nop,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.Threshold <= 0 {
		c.Threshold = d.Threshold
	}
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.Suffix == "" {
		c.Suffix = d.Suffix
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	// skipping Dir as the empty string selects the OS temp directory
	return c
}
