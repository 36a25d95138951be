// Package bytecount tracks the bytes moved through a standard library
// io.Reader, for transfer accounting.
package bytecount

import (
	"io"
	"sync"
)

// Reader counts the bytes read through it.
type Reader struct {
	r io.Reader

	mu    sync.Mutex
	total uint64
}

// NewReader wraps r with byte accounting.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read wraps [io.Reader.Read] with internal count updates.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)

	r.mu.Lock()
	r.total += uint64(n)
	r.mu.Unlock()

	return n, err
}

// Total returns the number of bytes read so far.
func (r *Reader) Total() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}
