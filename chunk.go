package teebuf

import "io"

// DefaultChunkSize is the per-step read size used when Chunks is given a
// non-positive chunk size.
const DefaultChunkSize = 10 * 1024

// ChunkIterator yields successive pieces of a fixed-size region of a
// stream. The sequence is finite and not restartable; a source that runs
// out of data before the region is covered simply ends it short. A
// ChunkIterator is not safe for concurrent use.
type ChunkIterator struct {
	r         io.Reader
	remaining int64
	buf       []byte
	chunk     []byte
	err       error
	done      bool
}

// Chunks returns an iterator over the next size bytes of r, reading at most
// chunkSize bytes per step. chunkSize <= 0 selects DefaultChunkSize.
func Chunks(r io.Reader, size, chunkSize int64) *ChunkIterator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkIterator{
		r:         r,
		remaining: size,
		buf:       make([]byte, chunkSize),
	}
}

// Next advances the iterator. It returns false once size bytes have been
// yielded, the source has nothing left, or a read failed.
func (it *ChunkIterator) Next() bool {
	if it.done || it.remaining <= 0 {
		it.done = true
		it.chunk = nil
		return false
	}
	n := it.remaining
	if n > int64(len(it.buf)) {
		n = int64(len(it.buf))
	}
	read, err := it.r.Read(it.buf[:n])
	if read == 0 {
		// early exhaustion is not an error, the sequence just ends short
		it.done = true
		it.chunk = nil
		if err != nil && err != io.EOF {
			it.err = err
		}
		return false
	}
	it.chunk = it.buf[:read]
	it.remaining -= int64(read)
	if err != nil && err != io.EOF {
		it.err = err
		it.done = true
	}
	return true
}

// Chunk returns the bytes read by the last call to Next. The slice is
// reused; it is only valid until the next call.
func (it *ChunkIterator) Chunk() []byte {
	return it.chunk
}

// Err returns the first read error hit during iteration. A source that ran
// out of data early leaves Err nil.
func (it *ChunkIterator) Err() error {
	return it.err
}
