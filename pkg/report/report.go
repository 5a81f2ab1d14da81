// Package report writes alignment reports for people to read.
// An alignment is three lines: the first sequence, the match string and
// the second sequence. The score and percent identity follow on their
// own lines. Consecutive reports are separated by blank lines.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/pairalign/pkg/align"
)

// Percent formats a percent identity with as many digits as it needs,
// but at least one after the decimal point, so 75 comes out as 75.0.
func Percent(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func wrtAlignment(w io.Writer, r *align.Report) {
	fmt.Fprintf(w, "%s\n%s\n%s\n", r.S, r.Match, r.T)
}

func wrtScores(w io.Writer, r *align.Report) {
	fmt.Fprintf(w, "Raw alignment score: %d\n", r.Score)
	fmt.Fprintf(w, "The percent identity between two aligned sequences: %s%%\n", Percent(r.Identity))
}

// Write writes each alignment followed by its numbers.
func Write(w io.Writer, reps []align.Report) error {
	bw := bufio.NewWriter(w)
	for i := range reps {
		if i > 0 {
			bw.WriteString("\n\n\n")
		}
		wrtAlignment(bw, &reps[i])
		wrtScores(bw, &reps[i])
	}
	return bw.Flush()
}

// WriteAlignments only writes the aligned sequences and match strings.
func WriteAlignments(w io.Writer, reps []align.Report) error {
	bw := bufio.NewWriter(w)
	for i := range reps {
		if i > 0 {
			bw.WriteString("\n\n")
		}
		wrtAlignment(bw, &reps[i])
	}
	return bw.Flush()
}

// WriteScores only writes the score and identity lines.
func WriteScores(w io.Writer, reps []align.Report) error {
	bw := bufio.NewWriter(w)
	for i := range reps {
		if i > 0 {
			bw.WriteString("\n\n\n")
		}
		wrtScores(bw, &reps[i])
	}
	return bw.Flush()
}
