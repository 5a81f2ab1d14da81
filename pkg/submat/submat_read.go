// 23 Feb 2018
// read a substitution matrix

package submat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character and remove leading and trailing white space.
type CmmtScanner struct {
	*bufio.Scanner
	cmmt  byte // Comment character
	nline int  // line number of the last line read
}

// NewCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - removes leading and trailing spaces
//   - removes anything after a comment character
func NewCmmtScanner(r io.Reader, cmmt byte) *CmmtScanner {
	return &CmmtScanner{Scanner: bufio.NewScanner(r), cmmt: cmmt}
}

// Next moves to the next line with something on it and returns it,
// without comment and surrounding white space. At the end of input,
// it returns nil and Err says if there was a problem.
// Like the Bytes function, this works directly in the i/o buffer.
// If you like the slice it returns, you have to copy it.
func (s *CmmtScanner) Next() []byte {
	for s.Scan() {
		s.nline++
		b := s.Bytes()
		if i := bytes.IndexByte(b, s.cmmt); i >= 0 {
			b = b[:i]
		}
		if b = bytes.TrimSpace(b); len(b) > 0 {
			return b
		}
	}
	return nil
}

// Line is the line number, from 1, of the last line Next looked at.
func (s *CmmtScanner) Line() int { return s.nline }

// The first non-comment line of the substitution matrix file
// contains a list of the column symbols. Each field has to be
// one character long
func alfbtLine(fields [][]byte, nline int) ([]byte, error) {
	syms := make([]byte, len(fields))
	for i, c := range fields {
		if len(c) != 1 {
			return nil, fmt.Errorf("%w: line %d: expected a single character, got %q",
				ErrFormat, nline, c)
		}
		syms[i] = c[0]
	}
	return syms, nil
}

// ReadFrom reads a substitution matrix. The first line with content
// has the column symbols. Each following line has a row symbol and
// then one integer per column. Everything after a '#' is ignored.
func ReadFrom(r io.Reader) (*Submat, error) {
	scnr := NewCmmtScanner(r, '#')
	line := scnr.Next()
	if line == nil {
		if err := scnr.Err(); err != nil {
			return nil, fmt.Errorf("reading scoring matrix: %w", err)
		}
		return nil, fmt.Errorf("%w: no symbols found", ErrFormat)
	}
	cols, err := alfbtLine(bytes.Fields(bytes.ToUpper(line)), scnr.Line())
	if err != nil {
		return nil, err
	}
	var rows []byte
	var scores [][]int
	for line = scnr.Next(); line != nil; line = scnr.Next() {
		fields := bytes.Fields(bytes.ToUpper(line))
		if len(fields) != len(cols)+1 {
			return nil, fmt.Errorf("%w: line %d: wrong number of items, want %d, got %d",
				ErrFormat, scnr.Line(), len(cols)+1, len(fields))
		}
		if len(fields[0]) != 1 {
			return nil, fmt.Errorf("%w: line %d: row symbol %q is not one character",
				ErrFormat, scnr.Line(), fields[0])
		}
		row := make([]int, len(cols))
		for j, f := range fields[1:] {
			if row[j], err = strconv.Atoi(string(f)); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, scnr.Line(), err)
			}
		}
		rows = append(rows, fields[0][0])
		scores = append(scores, row)
	}
	if err := scnr.Err(); err != nil {
		return nil, fmt.Errorf("reading scoring matrix: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows of scores", ErrFormat)
	}
	return New(rows, cols, scores)
}

// Read will read a substitution matrix from a filename.
func Read(fname string) (*Submat, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	submat, err := ReadFrom(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return submat, nil
}
