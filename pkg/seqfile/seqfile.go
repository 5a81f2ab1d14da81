// 3 Aug 2020

// Package seqfile gets the two sequences to be aligned from a file.
// The simple format is two lines, one sequence on each. Blank lines are
// ignored. If the first line with something on it starts with '>', the
// file is read as fasta and the first two entries are used.
// Anything after the first two sequences is ignored.
package seqfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pairalign/pkg/common"
	"github.com/edsrzf/mmap-go"
)

const cmmtChar byte = '>' // and this introduces comments in fasta format

var (
	// ErrTooFew means the input did not have two sequences.
	ErrTooFew = errors.New("seqfile: fewer than two sequences")
	// ErrEmptySeq is for a fasta entry with a comment but no sequence.
	ErrEmptySeq = errors.New("seqfile: empty sequence")
)

// nextLine returns the first line of b, without white space at either
// end, and the rest of b.
func nextLine(b []byte) (line, rest []byte) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		line, rest = b[:i], b[i+1:]
	} else {
		line = b
	}
	return bytes.TrimSpace(line), rest
}

// Parse finds two sequences in b. The sequences returned are copies
// and do not point into b.
func Parse(b []byte) (s, t []byte, err error) {
	var seqs [][]byte
	var fasta, started bool
	for line, rest := nextLine(b); len(line) > 0 || len(rest) > 0; line, rest = nextLine(rest) {
		if len(line) == 0 {
			continue
		}
		if !started {
			started = true
			fasta = line[0] == cmmtChar
		}
		if !fasta {
			seqs = append(seqs, append([]byte(nil), line...))
			if len(seqs) == 2 {
				break
			}
			continue
		}
		if line[0] == cmmtChar {
			if len(seqs) == 2 {
				break
			}
			seqs = append(seqs, []byte{})
			continue
		}
		seqs[len(seqs)-1] = append(seqs[len(seqs)-1], line...)
	}
	if len(seqs) < 2 {
		return nil, nil, fmt.Errorf("%w: found %d", ErrTooFew, len(seqs))
	}
	for i, sq := range seqs {
		if len(sq) == 0 {
			return nil, nil, fmt.Errorf("%w: number %d", ErrEmptySeq, i+1)
		}
	}
	return seqs[0], seqs[1], nil
}

// ReadFrom reads everything from r and parses it.
func ReadFrom(r io.Reader) (s, t []byte, err error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return Parse(b)
}

// Read maps the file into memory and parses it. An empty file cannot
// be mapped, but it cannot have sequences either. A failure to unmap
// is returned as an error.
func Read(fname string) (s, t []byte, err error) {
	var fp *os.File
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return nil, nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, nil, err
	}
	if fi.Size() == 0 {
		return nil, nil, fmt.Errorf("%s: %w: empty file", fname, ErrTooFew)
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return nil, nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer common.KeepErr(&err, mm.Unmap)
	if s, t, err = Parse(mm); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, t, nil
}
