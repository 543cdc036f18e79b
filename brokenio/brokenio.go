// brokenio is a wrapper around an io.ReadCloser which breaks.
// Typical use: You have a reader over some test input and write
// reader = brokenio.NewReader(reader). Everything then functions as
// before until the limit is reached, after which every read fails.
// We use it to check that readers pass errors back instead of
// treating them as the end of a file.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is returned by every read after the limit.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// BrknRdrClsr is modelled on the various Readers in the standard library.
// It passes through failAfter bytes and then fails.
type BrknRdrClsr struct {
	rdr_orig  io.ReadCloser // Wrapped reader
	failAfter int
	nByte     int
}

// NewReader returns a new Reader which fails once failAfter bytes
// have been read. Zero means the very first read fails.
func NewReader(rIn io.ReadCloser, failAfter int) *BrknRdrClsr {
	return &BrknRdrClsr{rdr_orig: rIn, failAfter: failAfter}
}

// Read wraps the original reader and sums up the amount of data that
// has gone through. A read which would cross the limit is cut short.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	left := r.failAfter - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdr_orig.Close()
}
