package spill

import (
	"fmt"
	"io"
)

// memBacking is a seekable in-memory byte store. It grows on writes past
// the end and overwrites in place after a seek, matching the semantics of a
// freshly created file.
type memBacking struct {
	data []byte
	pos  int64
}

func (m *memBacking) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		if end <= int64(cap(m.data)) {
			m.data = m.data[:end]
		} else {
			grown := make([]byte, end)
			copy(grown, m.data)
			m.data = grown
		}
	}
	copy(m.data[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *memBacking) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memBacking) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, fmt.Errorf("spill: invalid seek whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("spill: negative seek position %d", abs)
	}
	m.pos = abs
	return abs, nil
}

// Bytes returns the full content regardless of the current position.
func (m *memBacking) Bytes() []byte {
	return m.data
}
