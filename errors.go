package teebuf

import (
	"errors"
	"fmt"
)

// SizeLimitError reports that a Reader has observed more data than its
// configured maximum. It is first returned by the read call whose completion
// pushes the cumulative count past the limit; that call's bytes have already
// been mirrored and counted. Callers can match it with errors.As to tell an
// oversized stream apart from a genuine I/O fault.
type SizeLimitError struct {
	// Seen is the total number of bytes observed so far
	Seen int64
	// Max is the configured limit that was exceeded
	Max int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("tee limit exceeded: read %d bytes (max size: %d)", e.Seen, e.Max)
}

// IsSizeLimit reports whether err is, or wraps, a *SizeLimitError.
func IsSizeLimit(err error) bool {
	var e *SizeLimitError
	return errors.As(err, &e)
}
