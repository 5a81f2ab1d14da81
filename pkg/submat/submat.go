// 23 Feb 2018

// Package submat has substitution (scoring) matrices. A matrix has a
// set of row symbols and a set of column symbols. A symbol from the
// first sequence picks the row and a symbol from the second sequence
// picks the column. Nothing assumes the two sets are the same or that
// the table is symmetric.
// Symbols are single ascii characters and lookups ignore case.
package submat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/andrew-torda/matrix"
)

// Submat is the export type. Its internals do not have to be exported.
// Once built, it is never changed, so it can be shared.
type Submat struct {
	mat    *matrix.IMatrix2d
	rows   []byte
	cols   []byte
	rowmap [utf8.RuneSelf]int16
	colmap [utf8.RuneSelf]int16
}

var (
	// ErrLookup means a symbol has no row or column in the matrix.
	ErrLookup = errors.New("submat: symbol not in scoring matrix")
	// ErrFormat is for matrices which cannot be built or parsed.
	ErrFormat = errors.New("submat: bad scoring matrix")
)

const notset int16 = -1

// upper is bytes.ToUpper for one ascii character.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// mkmap fills out a symbol map from a list of headers. The headers are
// converted to upper case in place.
func mkmap(syms []byte, cmap *[utf8.RuneSelf]int16, axis string) error {
	for i := range cmap {
		cmap[i] = notset
	}
	if len(syms) == 0 {
		return fmt.Errorf("%w: no %s symbols", ErrFormat, axis)
	}
	for i, c := range syms {
		if c >= utf8.RuneSelf {
			return fmt.Errorf("%w: non-ascii %s symbol %q", ErrFormat, axis, c)
		}
		c = upper(c)
		syms[i] = c
		if cmap[c] != notset {
			return fmt.Errorf("%w: %s symbol %q appears twice", ErrFormat, axis, c)
		}
		cmap[c] = int16(i)
	}
	return nil
}

// New builds a matrix from row symbols, column symbols and the scores,
// which must have one row per row symbol and one column per column
// symbol. Scores are stored as int32. The arguments are copied.
func New(rowSyms, colSyms []byte, scores [][]int) (*Submat, error) {
	submat := &Submat{
		rows: append([]byte(nil), rowSyms...),
		cols: append([]byte(nil), colSyms...),
	}
	if err := mkmap(submat.rows, &submat.rowmap, "row"); err != nil {
		return nil, err
	}
	if err := mkmap(submat.cols, &submat.colmap, "column"); err != nil {
		return nil, err
	}
	if len(scores) != len(submat.rows) {
		return nil, fmt.Errorf("%w: %d row symbols but %d rows of scores",
			ErrFormat, len(submat.rows), len(scores))
	}
	submat.mat = matrix.NewIMatrix2d(len(submat.rows), len(submat.cols))
	for i, row := range scores {
		if len(row) != len(submat.cols) {
			return nil, fmt.Errorf("%w: row %q has %d scores, want %d",
				ErrFormat, submat.rows[i], len(row), len(submat.cols))
		}
		for j, x := range row {
			if x < math.MinInt32 || x > math.MaxInt32 {
				return nil, fmt.Errorf("%w: score %d for %q %q out of range",
					ErrFormat, x, submat.rows[i], submat.cols[j])
			}
			submat.mat.Mat[i][j] = int32(x)
		}
	}
	return submat, nil
}

// index finds the place of a symbol in a map or returns notset.
func index(cmap *[utf8.RuneSelf]int16, c byte) int16 {
	if c >= utf8.RuneSelf {
		return notset
	}
	return cmap[upper(c)]
}

// Score returns the score for a from the first sequence against b from
// the second. If either is missing, the error wraps ErrLookup.
func (submat *Submat) Score(a, b byte) (int, error) {
	i := index(&submat.rowmap, a)
	if i == notset {
		return 0, fmt.Errorf("%w: %q is not a row symbol", ErrLookup, a)
	}
	j := index(&submat.colmap, b)
	if j == notset {
		return 0, fmt.Errorf("%w: %q is not a column symbol", ErrLookup, b)
	}
	return int(submat.mat.Mat[i][j]), nil
}

// ScoreSeqs will take two sequences and calculate a similarity matrix
// based on the substitution matrix.
// We return a len(t) x len(s) matrix, so t runs down the rows and s
// runs along the columns. Entry [i][j] is Score(s[j], t[i]).
// Every symbol is looked up once before anything is filled in.
func (submat *Submat) ScoreSeqs(s, t []byte) (*matrix.IMatrix2d, error) {
	si := make([]int16, len(s))
	for j, c := range s {
		if si[j] = index(&submat.rowmap, c); si[j] == notset {
			return nil, fmt.Errorf("%w: %q at position %d of first sequence", ErrLookup, c, j+1)
		}
	}
	ti := make([]int16, len(t))
	for i, c := range t {
		if ti[i] = index(&submat.colmap, c); ti[i] == notset {
			return nil, fmt.Errorf("%w: %q at position %d of second sequence", ErrLookup, c, i+1)
		}
	}
	scr_mat := matrix.NewIMatrix2d(len(t), len(s))
	mat := scr_mat.Mat
	for i, ct := range ti {
		for j, cs := range si {
			mat[i][j] = submat.mat.Mat[cs][ct]
		}
	}
	return scr_mat, nil
}

// Rows returns a copy of the row symbols, upper case, in file order.
func (submat *Submat) Rows() []byte { return append([]byte(nil), submat.rows...) }

// Cols returns a copy of the column symbols.
func (submat *Submat) Cols() []byte { return append([]byte(nil), submat.cols...) }

// String prints out a substitution matrix with the numbers right
// justified. Useful during debugging.
func (submat *Submat) String() string {
	width := 1
	for _, row := range submat.mat.Mat {
		for _, x := range row {
			if n := len(strconv.Itoa(int(x))); n > width {
				width = n
			}
		}
	}
	var b strings.Builder
	b.WriteString(" ")
	for _, c := range submat.cols {
		fmt.Fprintf(&b, " %*c", width, c)
	}
	b.WriteByte('\n')
	for i, row := range submat.mat.Mat {
		b.WriteByte(submat.rows[i])
		for _, x := range row {
			fmt.Fprintf(&b, " %*d", width, x)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
