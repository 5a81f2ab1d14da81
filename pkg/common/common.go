// 29 Apr 2020

// Package common has the few constants and helpers shared by the
// commands and their tests.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// KeepErr calls done, typically a Close or Unmap, and puts its error in
// *err if *err was nil. It is meant for deferring with a named error
// result, so a failure on the way out is not lost.
func KeepErr(err *error, done func() error) {
	if e := done(); e != nil && *err == nil {
		*err = e
	}
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (fname string, err error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer KeepErr(&err, f_tmp.Close)
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
