package align

import (
	"math"

	"github.com/andrew-torda/pairalign/pkg/common"
)

// The functions here only look at aligned pairs. They do not use the
// score matrix, so the score is a genuine recalculation.

// MatchString has a '|' wherever the two aligned sequences have the
// same character and a space elsewhere. The comparison is exact, so
// 'a' and 'A' do not match.
func MatchString(p Pair) string {
	b := make([]byte, len(p.S))
	for i, c := range p.S {
		if c == p.T[i] {
			b[i] = '|'
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}

// RawScore adds up the substitution scores of the aligned positions
// and the gap penalties. Each sequence has its own flag saying if we
// are in a gap. A gap with the flag down is an opening and raises the
// flag. A gap with the flag up is an extension. A position with no gap
// lowers both flags.
func RawScore(p Pair, sc Scorer, pnlty Pnlty) (int, error) {
	var subst, nOpen, nExt int
	var inGapS, inGapT bool
	for i, a := range p.S {
		b := p.T[i]
		if a != common.GapChar && b != common.GapChar {
			inGapS, inGapT = false, false
			x, err := sc.Score(a, b)
			if err != nil {
				return 0, err
			}
			subst += x
			continue
		}
		if a == common.GapChar {
			if inGapS {
				nExt++
			} else {
				nOpen++
				inGapS = true
			}
		}
		if b == common.GapChar {
			if inGapT {
				nExt++
			} else {
				nOpen++
				inGapT = true
			}
		}
	}
	return subst + nOpen*pnlty.Open + nExt*pnlty.Ext, nil
}

// roundHalfUp rounds x to digits decimal places, with halves going up.
func roundHalfUp(x float64, digits int) float64 {
	f := math.Pow10(digits)
	return math.Floor(x*f+0.5) / f
}

// PercentIdentity is the number of identical positions * 100 divided
// by the length of the alignment, rounded half up to digits decimal
// places.
func PercentIdentity(p Pair, digits int) (float64, error) {
	if len(p.S) == 0 {
		return 0, ErrEmptyPair
	}
	n := 0
	for i, c := range p.S {
		if c == p.T[i] {
			n++
		}
	}
	return roundHalfUp(float64(n*100)/float64(len(p.S)), digits), nil
}

// Reports works out the match string, score and identity for each pair.
// A params.Digits of zero gives DefaultDigits.
func Reports(pairs []Pair, sc Scorer, params *Params) ([]Report, error) {
	digits := params.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	reps := make([]Report, 0, len(pairs))
	for _, p := range pairs {
		scr, err := RawScore(p, sc, params.Pnlty)
		if err != nil {
			return nil, err
		}
		ident, err := PercentIdentity(p, digits)
		if err != nil {
			return nil, err
		}
		reps = append(reps, Report{Pair: p, Match: MatchString(p), Score: scr, Identity: ident})
	}
	return reps, nil
}
