// Feb 2018

// Package align does pair-wise alignments with a substitution matrix
// and affine gap penalties. The first gap in a run costs Open and every
// further gap in the same run costs Ext.
// There is one summation matrix and one matrix of directions. Whether a
// vertical or horizontal step opens or extends a gap is decided by
// looking at the direction stored in the neighbouring cell, not by
// keeping separate gap matrices as in Gotoh's method. The two can give
// different answers next to gaps and mismatches. Keep it like this.
// On ties, diagonal beats vertical beats horizontal.
//
// Sequence s (the first) runs along the columns, sequence t (the
// second) runs down the rows.
package align

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Mode is a byte which can be global or local. By making it its
// own type, we can add a String() method to it.
type Mode byte

// Local/Global are exported constants to say what kind of alignment one wants.
const (
	Local  Mode = iota // Local alignment
	Global             // global alignment
)

// String for the alignment type is used in messages and when parsing.
func (a Mode) String() string {
	switch a {
	case Local:
		return "local"
	case Global:
		return "global"
	}
	return fmt.Sprintf("Mode(%d)", byte(a))
}

// ParseMode turns "local" or "global" into a Mode. Case does not matter.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "local":
		return Local, nil
	case "global":
		return Global, nil
	}
	return 0, fmt.Errorf("%w: %q, want local or global", ErrBadMode, s)
}

// Pnlty has the gap opening and extension values. They are added to
// the score, so they should be zero or negative. This is not checked.
type Pnlty struct {
	Open int // first gap in a run
	Ext  int // each further gap in the same run
}

// Scorer scores a symbol from the first sequence against a symbol from
// the second. *submat.Submat is one.
type Scorer interface {
	Score(a, b byte) (int, error)
}

// DefaultDigits is the number of decimal places kept in percent identity.
const DefaultDigits = 4

// Params is everything about an alignment, except the sequences and
// the substitution matrix.
type Params struct {
	Mode   Mode
	Pnlty  Pnlty
	Digits int       // decimal places for percent identity, 0 means DefaultDigits
	Dbg    io.Writer // If not nil, the score and direction matrices are written here
}

// DefaultParams gives a global alignment with zero penalties and
// DefaultDigits decimal places.
func DefaultParams() Params {
	return Params{Mode: Global, Digits: DefaultDigits}
}

// Pair is one alignment. S and T are the same length, with gaps as '-'.
// There is never a gap in both at the same place.
type Pair struct {
	S []byte // aligned first sequence
	T []byte // aligned second sequence
}

// String puts the two sequences on two lines.
func (p Pair) String() string { return string(p.S) + "\n" + string(p.T) }

// Report is an aligned pair and the numbers calculated from it.
type Report struct {
	Pair
	Match    string  // '|' where the two sequences agree, ' ' elsewhere
	Score    int     // recalculated from the aligned pair
	Identity float64 // percent identical, rounded
}

var (
	// ErrBadMode is for a Mode that is neither Local nor Global.
	ErrBadMode = errors.New("align: unknown alignment mode")
	// ErrEmptySeq means one of the sequences has no symbols.
	ErrEmptySeq = errors.New("align: empty sequence")
	// ErrEmptyPair is returned by PercentIdentity for a zero-length pair.
	ErrEmptyPair = errors.New("align: empty aligned pair")
	// ErrNoAlignment means no cell of a local alignment scored above zero.
	ErrNoAlignment = errors.New("align: no positive scoring local alignment")
)

// Align aligns s and t and returns one report for a global alignment
// and one for every place the best score occurs in a local alignment.
// If params is nil, DefaultParams is used.
// A symbol missing from the substitution matrix gives the scorer's
// error and no reports.
func Align(s, t []byte, sc Scorer, params *Params) ([]Report, error) {
	if params == nil {
		p := DefaultParams()
		params = &p
	}
	pairs, err := Pairs(s, t, sc, params)
	if err != nil {
		return nil, err
	}
	return Reports(pairs, sc, params)
}
