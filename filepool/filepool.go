// Package filepool hands out fresh record files with sequentially numbered
// names, never reusing a name that already exists on disk.
package filepool

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPattern names record files the way the archiver expects them.
const DefaultPattern = "record-%d.arc.gz"

// Pool allocates output files under a single directory. A Pool is not safe
// for concurrent use.
type Pool struct {
	dir     string
	pattern string
	next    int
}

// New returns a Pool creating files in dir. pattern must contain one %d
// verb for the sequence number; the empty string selects DefaultPattern.
// An empty dir selects the OS temp directory.
func New(dir, pattern string) *Pool {
	if dir == "" {
		dir = os.TempDir()
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Pool{dir: dir, pattern: pattern}
}

// Get opens the next free file in the sequence for writing. An existing
// file is never overwritten; the sequence number advances past any names
// already taken.
func (p *Pool) Get() (*os.File, error) {
	for {
		name := filepath.Join(p.dir, fmt.Sprintf(p.pattern, p.next))
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}
		p.next++
	}
}
