// 31 July 2020

// Package randseq makes random sequences for testing the aligner.
// Everything takes its own *rand.Rand, so a fixed seed gives the same
// sequences every time.
package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// Alphabets for New and Mutate.
var (
	DNA     = []byte("ACGT")
	Protein = []byte("ACDEFGHIKLMNPQRSTVWY")
)

// ErrTooMany is returned by DelN when asked to delete more than there is.
var ErrTooMany = errors.New("randseq: more deletions than sequence")

// New returns a random sequence of length n using letters from alfbt.
func New(rnd *rand.Rand, alfbt []byte, n int) []byte {
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = alfbt[rnd.Intn(len(alfbt))]
	}
	return ret
}

// Mutate changes each site, with probability frac, to a different
// letter from alfbt. It works in place and returns the number of
// sites changed. With a one letter alphabet, nothing can change.
func Mutate(rnd *rand.Rand, alfbt []byte, frac float64, s []byte) int {
	if len(alfbt) < 2 {
		return 0
	}
	n := 0
	for i, c := range s {
		if rnd.Float64() >= frac {
			continue
		}
		for s[i] == c {
			s[i] = alfbt[rnd.Intn(len(alfbt))]
		}
		n++
	}
	return n
}

// DelN removes n randomly chosen sites from s and returns the shorter
// slice, which shares the storage of s.
func DelN(rnd *rand.Rand, n int, s []byte) ([]byte, error) {
	if n > len(s) {
		return s, fmt.Errorf("%w: %d from %d", ErrTooMany, n, len(s))
	}
	for ; n > 0; n-- {
		i := rnd.Intn(len(s))
		s = append(s[:i], s[i+1:]...)
	}
	return s, nil
}

// RandSeqArgs is the set of arguments passed to RandSeqMain.
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Len   int       // Length of first sequence
	Mut   float64   // fraction of sites to mutate in the second
	Del   float64   // fraction of sites to delete from the second
	Prot  bool      // protein, rather than DNA
}

// RandSeqMain writes a random sequence and a mutated copy of it, one
// per line, which is what the aligner reads.
func RandSeqMain(args *RandSeqArgs) error {
	rnd := rand.New(rand.NewSource(args.Iseed))
	alfbt := DNA
	if args.Prot {
		alfbt = Protein
	}
	s := New(rnd, alfbt, args.Len)
	t := append([]byte(nil), s...)
	Mutate(rnd, alfbt, args.Mut, t)
	t, err := DelN(rnd, int(float64(len(t))*args.Del), t)
	if err != nil {
		return err
	}
	if len(t) == 0 {
		return fmt.Errorf("randseq: nothing left of second sequence of length %d", args.Len)
	}
	_, err = fmt.Fprintf(args.Wrtr, "%s\n%s\n", s, t)
	return err
}
