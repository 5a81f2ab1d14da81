package align

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pairalign/pkg/common"
)

// Directions stored in the direction matrix. Border cells are never
// written, so they stay unset, which is neither pway nor qway.
const (
	unset byte = iota // border
	diag              // diagonal movement
	pway              // along the P direction, vertical, over rows
	qway              // Q direction, horizontal, over columns
	stop              // local alignment was floored to zero here
)

// seqScorer is implemented by scorers that can fill out the whole table
// for two sequences in one go.
type seqScorer interface {
	ScoreSeqs(s, t []byte) (*matrix.IMatrix2d, error)
}

// aligner has the state for one alignment. It is thrown away
// afterwards.
type aligner struct {
	s, t  []byte
	mode  Mode
	pnlty Pnlty
	subst [][]int32         // subst[i][j] scores s[j] against t[i]
	scr   *matrix.IMatrix2d // (len(t)+1) x (len(s)+1) sums
	dir   *matrix.BMatrix2d // where each cell came from
}

// scoreSeqs gets the substitution score for every pair of symbols
// before any summing starts, so a missing symbol stops us early.
func scoreSeqs(sc Scorer, s, t []byte) ([][]int32, error) {
	if ss, ok := sc.(seqScorer); ok {
		m, err := ss.ScoreSeqs(s, t)
		if err != nil {
			return nil, err
		}
		return m.Mat, nil
	}
	m := matrix.NewIMatrix2d(len(t), len(s))
	for i, ct := range t {
		for j, cs := range s {
			x, err := sc.Score(cs, ct)
			if err != nil {
				return nil, err
			}
			m.Mat[i][j] = int32(x)
		}
	}
	return m.Mat, nil
}

// border sets the first row and column. For a local alignment they
// stay zero. For a global alignment, a leading gap of k costs one
// opening and k-1 extensions.
func (al *aligner) border() {
	if al.mode == Local {
		return
	}
	mat := al.scr.Mat
	open, ext := int32(al.pnlty.Open), int32(al.pnlty.Ext)
	for i := 1; i < len(mat); i++ {
		if i == 1 {
			mat[i][0] = open
		} else {
			mat[i][0] = mat[i-1][0] + ext
		}
	}
	row := mat[0]
	for j := 1; j < len(row); j++ {
		if j == 1 {
			row[j] = open
		} else {
			row[j] = row[j-1] + ext
		}
	}
}

// fill does the summation. Indexing is such that we walk along each
// row, left to right.
func (al *aligner) fill() {
	mat, dir := al.scr.Mat, al.dir.Mat
	open, ext := int32(al.pnlty.Open), int32(al.pnlty.Ext)
	for i := 1; i < len(mat); i++ {
		for j := 1; j < len(mat[i]); j++ {
			vgap, hgap := open, open
			if dir[i-1][j] == pway {
				vgap = ext
			}
			if dir[i][j-1] == qway {
				hgap = ext
			}
			best, drctn := mat[i-1][j-1]+al.subst[i-1][j-1], diag
			if v := mat[i-1][j] + vgap; v > best {
				best, drctn = v, pway
			}
			if h := mat[i][j-1] + hgap; h > best {
				best, drctn = h, qway
			}
			if al.mode == Local && best < 0 {
				best, drctn = 0, stop
			}
			mat[i][j] = best
			dir[i][j] = drctn
		}
	}
}

// trace walks back from cell (i, j) and returns the aligned pair.
// It stops at the top row or left column. A local alignment also
// stops at a cell whose score is not positive. That cell is not part
// of the alignment. A global alignment finishes by running along the
// edge with gaps.
func (al *aligner) trace(i, j int) Pair {
	mat, dir := al.scr.Mat, al.dir.Mat
	n := max(i, j) //      Take a guess as to how much space we
	n += n / 10    //      might need and add 10 %.
	s1 := make([]byte, 0, n)
	t1 := make([]byte, 0, n)
	for i > 0 && j > 0 {
		if al.mode == Local && mat[i][j] <= 0 {
			break
		}
		switch dir[i][j] {
		case diag:
			s1 = append(s1, al.s[j-1])
			t1 = append(t1, al.t[i-1])
			i--
			j--
		case pway:
			s1 = append(s1, common.GapChar)
			t1 = append(t1, al.t[i-1])
			i--
		case qway:
			s1 = append(s1, al.s[j-1])
			t1 = append(t1, common.GapChar)
			j--
		default:
			panic(fmt.Sprintf("align: no direction at %d %d", i, j))
		}
	}
	if al.mode == Global {
		for ; i > 0; i-- {
			s1 = append(s1, common.GapChar)
			t1 = append(t1, al.t[i-1])
		}
		for ; j > 0; j-- {
			s1 = append(s1, al.s[j-1])
			t1 = append(t1, common.GapChar)
		}
	}
	slices.Reverse(s1)
	slices.Reverse(t1)
	return Pair{S: s1, T: t1}
}

// maxScr is the biggest value in a matrix which is not empty.
func maxScr(m *matrix.IMatrix2d) int32 {
	best := m.Mat[0][0]
	for _, row := range m.Mat {
		for _, x := range row {
			if x > best {
				best = x
			}
		}
	}
	return best
}

// scrString prints the score matrix with the numbers right justified
// to the width of the widest.
func scrString(m *matrix.IMatrix2d) string {
	width := 1
	for _, row := range m.Mat {
		for _, x := range row {
			if n := len(strconv.Itoa(int(x))); n > width {
				width = n
			}
		}
	}
	var b strings.Builder
	for _, row := range m.Mat {
		for j, x := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, x)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// maxCells returns every cell holding the biggest score, in row order.
func (al *aligner) maxCells() (best int32, cells [][2]int) {
	best = maxScr(al.scr)
	for i, row := range al.scr.Mat {
		for j, x := range row {
			if x == best {
				cells = append(cells, [2]int{i, j})
			}
		}
	}
	return best, cells
}

// Pairs fills out the score matrix for s and t and traces back.
// A global alignment gives exactly one pair, starting from the last
// cell. A local alignment gives one pair for every cell holding the
// maximum score. If the maximum appears in overlapping places, the
// alignments overlap or repeat. Nothing is removed.
func Pairs(s, t []byte, sc Scorer, params *Params) ([]Pair, error) {
	if params == nil {
		p := DefaultParams()
		params = &p
	}
	if len(s) == 0 || len(t) == 0 {
		return nil, ErrEmptySeq
	}
	if params.Mode != Local && params.Mode != Global {
		return nil, fmt.Errorf("%w: %v", ErrBadMode, params.Mode)
	}
	subst, err := scoreSeqs(sc, s, t)
	if err != nil {
		return nil, fmt.Errorf("%v alignment: %w", params.Mode, err)
	}
	al := aligner{
		s: s, t: t,
		mode:  params.Mode,
		pnlty: params.Pnlty,
		subst: subst,
		scr:   matrix.NewIMatrix2d(len(t)+1, len(s)+1),
		dir:   matrix.NewBMatrix2d(len(t)+1, len(s)+1),
	}
	al.border()
	al.fill()
	if params.Dbg != nil {
		fmt.Fprintf(params.Dbg, "%v score matrix\n%s", params.Mode, scrString(al.scr))
		fmt.Fprintf(params.Dbg, "%v direction matrix\n%v", params.Mode, al.dir)
	}

	if al.mode == Global {
		return []Pair{al.trace(len(t), len(s))}, nil
	}
	best, cells := al.maxCells()
	if params.Dbg != nil {
		fmt.Fprintln(params.Dbg, "best score", best, "at", cells)
	}
	if best <= 0 {
		return nil, ErrNoAlignment
	}
	pairs := make([]Pair, 0, len(cells))
	for _, c := range cells {
		pairs = append(pairs, al.trace(c[0], c[1]))
	}
	return pairs, nil
}
