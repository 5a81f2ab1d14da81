package align_test

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/andrew-torda/pairalign/pkg/align"
	"github.com/andrew-torda/pairalign/pkg/randseq"
	"github.com/andrew-torda/pairalign/pkg/submat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pnlty = align.Pnlty{Open: -5, Ext: -1}

// identMat makes a square matrix over alfbt with match on the
// diagonal and mismatch everywhere else.
func identMat(t *testing.T, alfbt string, match, mismatch int) *submat.Submat {
	t.Helper()
	scores := make([][]int, len(alfbt))
	for i := range scores {
		scores[i] = make([]int, len(alfbt))
		for j := range scores[i] {
			if i == j {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}
	smat, err := submat.New([]byte(alfbt), []byte(alfbt), scores)
	require.NoError(t, err)
	return smat
}

func dnaMat(t *testing.T) *submat.Submat { return identMat(t, "ACGT", 5, -4) }

func params(mode align.Mode) *align.Params {
	p := align.DefaultParams()
	p.Mode = mode
	p.Pnlty = pnlty
	return &p
}

func doAlign(t *testing.T, s1, s2 string, sc align.Scorer, mode align.Mode) []align.Report {
	t.Helper()
	reps, err := align.Align([]byte(s1), []byte(s2), sc, params(mode))
	require.NoError(t, err)
	return reps
}

func TestGlobalIdentical(t *testing.T) {
	reps := doAlign(t, "ACGT", "ACGT", dnaMat(t), align.Global)
	require.Len(t, reps, 1)
	r := reps[0]
	assert.Equal(t, "ACGT", string(r.S))
	assert.Equal(t, "ACGT", string(r.T))
	assert.Equal(t, "||||", r.Match)
	assert.Equal(t, 20, r.Score)
	assert.Equal(t, 100.0, r.Identity)
}

func TestGlobalOneSubstitution(t *testing.T) {
	reps := doAlign(t, "ACGT", "ACCT", dnaMat(t), align.Global)
	require.Len(t, reps, 1)
	r := reps[0]
	assert.Equal(t, "ACGT\nACCT", r.Pair.String())
	assert.Equal(t, "|| |", r.Match)
	assert.Equal(t, 11, r.Score)
	assert.Equal(t, 75.0, r.Identity)
}

func TestLocalCore(t *testing.T) {
	smat := identMat(t, "ACGTXY", 5, -4)
	reps := doAlign(t, "XXACGTXX", "YYACGTYY", smat, align.Local)
	require.Len(t, reps, 1)
	assert.Equal(t, "ACGT", string(reps[0].S))
	assert.Equal(t, "ACGT", string(reps[0].T))
	assert.Equal(t, 20, reps[0].Score)
}

func TestLookupFail(t *testing.T) {
	for _, mode := range []align.Mode{align.Global, align.Local} {
		reps, err := align.Align([]byte("ACNT"), []byte("ACGT"), dnaMat(t), params(mode))
		assert.ErrorIs(t, err, submat.ErrLookup, mode)
		assert.Nil(t, reps)
		reps, err = align.Align([]byte("ACGT"), []byte("ACGN"), dnaMat(t), params(mode))
		assert.ErrorIs(t, err, submat.ErrLookup, mode)
		assert.Nil(t, reps)
	}
}

// Two separate places give the same best score, so there are two
// reports, in row order.
func TestLocalTwoMaxima(t *testing.T) {
	reps := doAlign(t, "AC", "ACGGAC", dnaMat(t), align.Local)
	require.Len(t, reps, 2)
	for _, r := range reps {
		assert.Equal(t, "AC", string(r.S))
		assert.Equal(t, "AC", string(r.T))
		assert.Equal(t, 10, r.Score)
		assert.Equal(t, 100.0, r.Identity)
	}
}

// Every local traceback starts from scratch.
func TestLocalNoCarryOver(t *testing.T) {
	reps := doAlign(t, "ACGTTTTTTACGT", "ACGT", dnaMat(t), align.Local)
	require.Len(t, reps, 2)
	for _, r := range reps {
		assert.Equal(t, "ACGT", string(r.S))
	}
}

func TestLocalNothingPositive(t *testing.T) {
	_, err := align.Align([]byte("AAA"), []byte("CC"), dnaMat(t), params(align.Local))
	assert.ErrorIs(t, err, align.ErrNoAlignment)
}

// A single cell where all three ways in score the same.
// Diagonal must win. Then vertical must beat horizontal.
func TestTieBreak(t *testing.T) {
	tie := func(aa int) align.Report {
		smat, err := submat.New([]byte("A"), []byte("A"), [][]int{{aa}})
		require.NoError(t, err)
		reps := doAlign(t, "A", "A", smat, align.Global)
		require.Len(t, reps, 1)
		return reps[0]
	}
	for i := 0; i < 3; i++ {
		r := tie(-10) // diagonal -10, vertical and horizontal -5 + -5
		assert.Equal(t, "A", string(r.S))
		assert.Equal(t, "A", string(r.T))
		assert.Equal(t, -10, r.Score)
	}
	r := tie(-20) // vertical and horizontal tie at -10
	assert.Equal(t, "A-", string(r.S))
	assert.Equal(t, "-A", string(r.T))
	assert.Equal(t, "  ", r.Match)
	assert.Equal(t, -10, r.Score)
	assert.Equal(t, 0.0, r.Identity)
}

func TestHorizontal(t *testing.T) {
	reps := doAlign(t, "AC", "A", dnaMat(t), align.Global)
	require.Len(t, reps, 1)
	assert.Equal(t, "AC", string(reps[0].S))
	assert.Equal(t, "A-", string(reps[0].T))
	assert.Equal(t, 0, reps[0].Score)
}

// A long gap should cost one opening and then extensions.
func TestGlobalGapRun(t *testing.T) {
	reps := doAlign(t, "AAAACCCCGGGG", "AAAAGGGG", dnaMat(t), align.Global)
	require.Len(t, reps, 1)
	r := reps[0]
	assert.Equal(t, "AAAACCCCGGGG", string(r.S))
	assert.Equal(t, "AAAA----GGGG", string(r.T))
	assert.Equal(t, 40-5-3, r.Score)
	assert.Equal(t, 66.6667, r.Identity)
}

func TestLeadingGap(t *testing.T) {
	reps := doAlign(t, "GGACGT", "ACGT", dnaMat(t), align.Global)
	require.Len(t, reps, 1)
	assert.Equal(t, "GGACGT", string(reps[0].S))
	assert.Equal(t, "--ACGT", string(reps[0].T))
	assert.Equal(t, 20-5-1, reps[0].Score)
}

func TestCaseIgnoredInLookup(t *testing.T) {
	reps := doAlign(t, "acgt", "ACGT", dnaMat(t), align.Global)
	require.Len(t, reps, 1)
	assert.Equal(t, "acgt", string(reps[0].S), "input case is kept")
	assert.Equal(t, "    ", reps[0].Match)
	assert.Equal(t, 20, reps[0].Score)
	assert.Equal(t, 0.0, reps[0].Identity)
}

func TestBadInput(t *testing.T) {
	smat := dnaMat(t)
	_, err := align.Align(nil, []byte("A"), smat, params(align.Global))
	assert.ErrorIs(t, err, align.ErrEmptySeq)
	_, err = align.Align([]byte("A"), []byte{}, smat, params(align.Local))
	assert.ErrorIs(t, err, align.ErrEmptySeq)
	_, err = align.Align([]byte("A"), []byte("A"), smat, params(align.Mode(7)))
	assert.ErrorIs(t, err, align.ErrBadMode)
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]align.Mode{"local": align.Local, "Global": align.Global, "LOCAL": align.Local} {
		got, err := align.ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, s := range []string{"", "semi-global", "glob"} {
		_, err := align.ParseMode(s)
		assert.ErrorIs(t, err, align.ErrBadMode, s)
	}
	assert.Equal(t, "local", align.Local.String())
	assert.Equal(t, "global", align.Global.String())
	assert.Equal(t, "Mode(9)", align.Mode(9).String())
}

func TestNilParams(t *testing.T) {
	reps, err := align.Align([]byte("ACGT"), []byte("AGT"), dnaMat(t), nil)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "ACGT", string(reps[0].S))
	assert.Equal(t, "A-GT", string(reps[0].T))
	assert.Equal(t, 15, reps[0].Score, "zero penalties by default")
}

// A Params literal without Digits still gets the default rounding.
func TestParamsNoDigits(t *testing.T) {
	p := &align.Params{Mode: align.Global, Pnlty: pnlty}
	reps, err := align.Align([]byte("ACG"), []byte("ACT"), dnaMat(t), p)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, 66.6667, reps[0].Identity)
	assert.Equal(t, 6, reps[0].Score)
}

// identScorer only has Score, so the engine has to build the table
// itself.
type identScorer struct{}

func (identScorer) Score(a, b byte) (int, error) {
	if a == '?' || b == '?' {
		return 0, fmt.Errorf("cannot score %c %c", a, b)
	}
	if a == b {
		return 5, nil
	}
	return -4, nil
}

func TestPlainScorer(t *testing.T) {
	reps := doAlign(t, "ACGT", "ACCT", identScorer{}, align.Global)
	require.Len(t, reps, 1)
	assert.Equal(t, 11, reps[0].Score)
	_, err := align.Align([]byte("AC?T"), []byte("ACGT"), identScorer{}, params(align.Local))
	assert.Error(t, err)
}

func TestDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	p := params(align.Local)
	p.Dbg = &buf
	_, err := align.Align([]byte("AC"), []byte("AC"), dnaMat(t), p)
	require.NoError(t, err)
	want := "local score matrix\n" +
		" 0  0  0\n" +
		" 0  5  0\n" +
		" 0  0 10\n" +
		"local direction matrix\n" +
		"   0    0    0 \n" +
		"   0    1    3 \n" +
		"   0    2    1 \n" +
		"best score 10 at [[2 2]]\n"
	assert.Equal(t, want, buf.String())

	// global has a penalised border and no list of maxima
	buf.Reset()
	smat, err := submat.New([]byte("A"), []byte("A"), [][]int{{-10}})
	require.NoError(t, err)
	p = params(align.Global)
	p.Dbg = &buf
	_, err = align.Align([]byte("A"), []byte("A"), smat, p)
	require.NoError(t, err)
	want = "global score matrix\n" +
		"  0  -5\n" +
		" -5 -10\n" +
		"global direction matrix\n" +
		"   0    0 \n" +
		"   0    1 \n"
	assert.Equal(t, want, buf.String())
}

func stripGaps(b []byte) []byte { return bytes.ReplaceAll(b, []byte("-"), nil) }

func checkPair(t *testing.T, p align.Pair) {
	t.Helper()
	require.Equal(t, len(p.S), len(p.T))
	for i := range p.S {
		if p.S[i] == '-' && p.T[i] == '-' {
			t.Fatalf("gap in both at %d\n%s", i, p)
		}
	}
}

// Random sequences, with the properties that have to hold every time.
func TestRandProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	smat := dnaMat(t)
	for n := 0; n < 200; n++ {
		s1 := randseq.New(rnd, randseq.DNA, 1+rnd.Intn(30))
		s2 := append([]byte(nil), s1...)
		randseq.Mutate(rnd, randseq.DNA, 1./3., s2)
		s2, err := randseq.DelN(rnd, rnd.Intn(len(s2)), s2)
		require.NoError(t, err)

		reps, err := align.Align(s1, s2, smat, params(align.Global))
		require.NoError(t, err)
		require.Len(t, reps, 1)
		p := reps[0].Pair
		checkPair(t, p)
		assert.GreaterOrEqual(t, len(p.S), max(len(s1), len(s2)))
		assert.Equal(t, s1, stripGaps(p.S))
		assert.Equal(t, s2, stripGaps(p.T))
		again, err := align.Align(s1, s2, smat, params(align.Global))
		require.NoError(t, err)
		assert.Equal(t, reps, again)

		reps, err = align.Align(s1, s2, smat, params(align.Local))
		if errors.Is(err, align.ErrNoAlignment) {
			continue
		}
		require.NoError(t, err)
		require.NotEmpty(t, reps)
		for _, r := range reps {
			checkPair(t, r.Pair)
			assert.True(t, bytes.Contains(s1, stripGaps(r.S)), "%s not in %s", r.S, s1)
			assert.True(t, bytes.Contains(s2, stripGaps(r.T)), "%s not in %s", r.T, s2)
			assert.Positive(t, r.Score)
		}
		again, err = align.Align(s1, s2, smat, params(align.Local))
		require.NoError(t, err)
		assert.Equal(t, reps, again)
	}
}
