// Package teebuf implements transparent decorators for byte streams: a tee
// reader that records everything read from an underlying stream while
// enforcing an upper bound on the total bytes observed, and a bounded chunk
// iterator over a fixed-size region of a stream. The spill subpackage
// provides the matching sink that moves itself from memory to disk once it
// grows past a threshold.
package teebuf

import (
	"bufio"
	"fmt"
	"io"
)

var (
	_ io.Reader = (*Reader)(nil)
	_ io.Closer = (*Reader)(nil)
)

// Reader wraps a readable stream and records every byte handed to the
// caller in a secondary sink, like tee(1) for reads.
//
//	client <--- Reader <--- source
//	              |
//	              v
//	            sink
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src    *bufio.Reader
	closer io.Closer
	sink   io.Writer
	max    int64
	seen   int64
}

// Flusher is implemented by sinks that buffer writes and can force them out.
type Flusher interface {
	Flush() error
}

// NewReader returns a Reader that mirrors everything read from src into the
// configured sink. config can be nil to use the defaults, or only set the
// non-default values desired.
func NewReader(src io.Reader, config *Config) *Reader {
	c := mergeConfig(config)
	r := new(Reader)
	r.src = bufio.NewReaderSize(src, c.BufferSize)
	if closer, ok := src.(io.Closer); ok {
		r.closer = closer
	}
	r.sink = c.Sink
	r.max = c.MaxSize
	return r
}

// Read reads up to len(p) bytes from the source. The bytes obtained are
// appended to the sink and counted before the size limit is checked, so the
// call that crosses the limit still returns its data alongside the
// *SizeLimitError and the mirrored copy stays complete for everything that
// flowed before the limit tripped.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		if serr := r.record(p[:n]); serr != nil {
			return n, serr
		}
	}
	if lerr := r.checkSize(); lerr != nil {
		return n, lerr
	}
	return n, err
}

// ReadLine reads until the next newline or the end of the stream, mirroring
// the returned bytes to the sink. A final line with no trailing newline is
// returned together with io.EOF.
func (r *Reader) ReadLine() ([]byte, error) {
	line, err := r.src.ReadBytes('\n')
	if len(line) > 0 {
		if serr := r.record(line); serr != nil {
			return line, serr
		}
	}
	if lerr := r.checkSize(); lerr != nil {
		return line, lerr
	}
	return line, err
}

// record appends b to the sink and advances the byte counter.
func (r *Reader) record(b []byte) error {
	if _, err := r.sink.Write(b); err != nil {
		return fmt.Errorf("teebuf: writing to sink: %w", err)
	}
	r.seen += int64(len(b))
	return nil
}

// checkSize returns a *SizeLimitError once the counter has passed the
// configured maximum. The comparison is strictly greater than: a stream of
// exactly max bytes never trips the limit.
func (r *Reader) checkSize() error {
	if r.max > 0 && r.seen > r.max {
		return &SizeLimitError{Seen: r.seen, Max: r.max}
	}
	return nil
}

// ChangeSink flushes and closes the current sink, then directs all future
// mirrored bytes to w. The source and the byte counter are left untouched.
func (r *Reader) ChangeSink(w io.Writer) error {
	if f, ok := r.sink.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("teebuf: flushing old sink: %w", err)
		}
	}
	if c, ok := r.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("teebuf: closing old sink: %w", err)
		}
	}
	r.sink = w
	return nil
}

// Sink returns the writer currently receiving the mirrored bytes, so a
// captured payload can be inspected after reading is done.
func (r *Reader) Sink() io.Writer {
	return r.sink
}

// BytesSeen returns the total number of bytes returned to callers so far.
func (r *Reader) BytesSeen() int64 {
	return r.seen
}

// Close closes the underlying source if it can be closed. The sink is left
// open; its lifecycle belongs to the caller.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
