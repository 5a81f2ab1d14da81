// brokenio is a wrapper around an io.Reader. It lets tests decide
// when a read should fail.
// Typical use: You get a file pointer or a strings.Reader and write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, but with artificial errors.
// A zero length file is simulated by returning io.EOF with no data on
// the first read. A failure returns the data up to the failure point
// and then an error on every later call.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is returned by default when a read fails.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A Reader is modelled on the various Readers in the standard library,
// but with settings controlling the failures.
type Reader struct {
	rdr      io.Reader // Wrapped reader
	failAt   int       // Fail after this many bytes, never if negative
	err      error     // Returned when we fail
	zeroFile bool      // First read gives io.EOF
	nCalled  int
	nByte    int
}

// NewReader returns a new Reader - a wrapper around the old one.
// Until one of the setters is called, it reads like the original.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdr: rIn, failAt: -1, err: ErrBroken}
}

// SetFailAt says reading should fail once n bytes have been delivered.
// A negative value switches failure off.
func (r *Reader) SetFailAt(n int) { r.failAt = n }

// SetErr sets the error returned on failure.
func (r *Reader) SetErr(err error) { r.err = err }

// SetZeroFile makes the first read look like an empty file.
func (r *Reader) SetZeroFile(zero bool) { r.zeroFile = zero }

// NByte is the number of bytes that have gone through.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.nCalled == 1 && r.zeroFile {
		return 0, io.EOF
	}
	if r.failAt >= 0 {
		left := r.failAt - r.nByte
		if left <= 0 {
			return 0, r.err
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr.Read(p)
	r.nByte += n
	return n, err
}
