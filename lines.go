package teebuf

import "io"

// LineIterator is a lazy, finite iterator over the remaining lines of a
// Reader, in the style of bufio.Scanner. The sequence ends once a read
// returns no bytes; it is not restartable. Each line reaches the sink as a
// side effect of the underlying ReadLine calls.
type LineIterator struct {
	r    *Reader
	line []byte
	err  error
	done bool
}

// Lines returns an iterator over the remaining lines of the stream.
func (r *Reader) Lines() *LineIterator {
	return &LineIterator{r: r}
}

// Next advances to the next line. It returns false when the stream is
// exhausted or a read failed; the two cases are told apart by Err. A line
// delivered together with an error is still yielded before iteration stops.
func (it *LineIterator) Next() bool {
	if it.done {
		return false
	}
	line, err := it.r.ReadLine()
	if len(line) == 0 {
		it.done = true
		it.line = nil
		if err != nil && err != io.EOF {
			it.err = err
		}
		return false
	}
	it.line = line
	if err != nil && err != io.EOF {
		it.err = err
		it.done = true
	}
	return true
}

// Bytes returns the current line, including its trailing newline when the
// source contained one. The slice is valid until the next call to Next.
func (it *LineIterator) Bytes() []byte {
	return it.line
}

// Text returns the current line as a string.
func (it *LineIterator) Text() string {
	return string(it.line)
}

// Err returns the first error hit during iteration. A stream that simply
// ran out of data leaves Err nil.
func (it *LineIterator) Err() error {
	return it.err
}

// ReadLines reads every remaining line of the stream. It is the eager form
// of Lines.
func (r *Reader) ReadLines() ([][]byte, error) {
	var lines [][]byte
	it := r.Lines()
	for it.Next() {
		line := make([]byte, len(it.Bytes()))
		copy(line, it.Bytes())
		lines = append(lines, line)
	}
	return lines, it.Err()
}
