// Package spill implements a write-append byte buffer with a bounded
// in-memory phase: content lives in memory until a write would push it past
// a configured threshold, then moves once to a temporary file on disk. The
// move is invisible to writers and the file is removed again when the
// buffer is closed.
package spill

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

var (
	_ io.ReadWriteSeeker = (*Buffer)(nil)
	_ io.Closer          = (*Buffer)(nil)
)

// backing is the narrow store contract shared by the in-memory and disk
// variants. Buffer talks to whichever is active through this single
// indirection; the two behave identically behind it.
type backing interface {
	io.Reader
	io.Writer
	io.Seeker
}

// Buffer is an append-oriented byte sink that starts in memory and spills
// to disk at most once. A Buffer is not safe for concurrent use.
type Buffer struct {
	config  Config
	store   backing
	mem     *memBacking // nil once spilled
	file    *os.File    // nil until spilled
	spilled bool
	closed  bool
}

// New returns an empty Buffer. config can be nil to use the defaults, or
// only set the non-default values desired.
func New(config *Config) *Buffer {
	b := new(Buffer)
	b.config = *mergeConfig(config)
	b.mem = new(memBacking)
	b.store = b.mem
	return b
}

// InMemory reports whether the content still lives in memory. It becomes
// false on the write that crosses the threshold and stays false from then
// on.
func (b *Buffer) InMemory() bool {
	return !b.spilled
}

// Write appends p to the buffer. A write that would push the in-memory size
// past the threshold moves the accumulated content to a spill file first and
// then lands on disk; a single write larger than the threshold takes the
// same path. Empty writes never trigger the move.
func (b *Buffer) Write(p []byte) (int, error) {
	if !b.spilled {
		pos, err := b.store.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, err
		}
		if pos+int64(len(p)) > b.config.Threshold {
			if err := b.spill(); err != nil {
				return 0, err
			}
		}
	}
	return b.store.Write(p)
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// WriteLines appends each line in order.
func (b *Buffer) WriteLines(lines [][]byte) error {
	for _, line := range lines {
		if _, err := b.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Read reads from the active store at its current position.
func (b *Buffer) Read(p []byte) (int, error) {
	return b.store.Read(p)
}

// Seek repositions the active store.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	return b.store.Seek(offset, whence)
}

// Len returns the logical content length, valid on both sides of the memory
// to disk move.
func (b *Buffer) Len() (int64, error) {
	if !b.spilled {
		return int64(len(b.mem.Bytes())), nil
	}
	info, err := b.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Name returns the path of the spill file, or the empty string while the
// content is still in memory.
func (b *Buffer) Name() string {
	if !b.spilled {
		return ""
	}
	return b.file.Name()
}

// Flush forces spilled content to stable storage. It is a no-op while in
// memory.
func (b *Buffer) Flush() error {
	if !b.spilled {
		return nil
	}
	return b.file.Sync()
}

// spill moves the accumulated content into a fresh temp file and adopts it
// as the active store. Runs at most once per Buffer.
func (b *Buffer) spill() error {
	f, err := ioutil.TempFile(b.config.Dir, b.config.Prefix+"*"+b.config.Suffix)
	if err != nil {
		return fmt.Errorf("spill: creating temp file: %w", err)
	}
	if _, err := f.Write(b.mem.Bytes()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("spill: copying buffered content: %w", err)
	}
	b.file = f
	b.store = f
	b.mem = nil
	b.spilled = true
	return nil
}

// Close releases the spill file if one was created. Removal is best effort:
// a file that cannot be removed is reported through the configured logger
// and does not fail an otherwise clean close. Closing a buffer that never
// left memory does nothing.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if !b.spilled {
		return nil
	}
	name := b.file.Name()
	err := b.file.Close()
	b.config.Logger.Debug().Str("file", name).Msg("removing spill file")
	if rmErr := os.Remove(name); rmErr != nil && !os.IsNotExist(rmErr) {
		b.config.Logger.Warn().Err(rmErr).Str("file", name).Msg("could not remove spill file")
	}
	return err
}
