package teebuf

import (
	"bytes"
	"io"
)

// DefaultBufferSize is the size of the internal read buffer used when none
// is configured.
const DefaultBufferSize = 4096

// Config holds configuration settings for a Reader
type Config struct {
	Sink       io.Writer // destination for the mirrored bytes, nil for a fresh in-memory buffer
	MaxSize    int64     // maximum number of bytes to observe before reads fail, 0 for unbounded
	BufferSize int       // internal read buffer size
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Sink:       new(bytes.Buffer),
		MaxSize:    0,
		BufferSize: DefaultBufferSize,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.Sink == nil {
		c.Sink = d.Sink
	}
	if c.MaxSize < 0 {
		c.MaxSize = 0
	}
	if c.BufferSize <= 0 {
		c.BufferSize = d.BufferSize
	}
	return c
}
