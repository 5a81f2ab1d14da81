// Package pairalign is the guts of the pairalign command. It checks the
// arguments, reads the sequences and the scoring matrix, aligns and
// writes the results.
package pairalign

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/andrew-torda/pairalign/pkg/align"
	"github.com/andrew-torda/pairalign/pkg/report"
	"github.com/andrew-torda/pairalign/pkg/seqfile"
	"github.com/andrew-torda/pairalign/pkg/submat"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Input     string // file with two sequences
	Alignment string // "local" or "global"
	SubMat    string // scoring matrix file
	GapOpen   int    // penalty for the first gap in a run, not positive
	GapExt    int    // penalty for each further gap, not positive
	Output    string // alignments go here if set. It must not exist.
	Vbsty     int    // verbosity, 0 is quiet
}

// ErrUsage is wrapped by every complaint about the arguments.
var ErrUsage = errors.New("pairalign: bad arguments")

// check looks at all the arguments before anything is read, and
// reports every problem it finds, not just the first.
func (flags *CmdFlag) check() (align.Mode, error) {
	var errs []error
	mode, err := align.ParseMode(flags.Alignment)
	if err != nil {
		errs = append(errs, err)
	}
	for _, p := range []struct {
		name string
		val  int
	}{{"gap opening penalty", flags.GapOpen}, {"gap extension penalty", flags.GapExt}} {
		if p.val > 0 {
			errs = append(errs, fmt.Errorf("%s cannot be positive, got %d", p.name, p.val))
		}
	}
	for _, p := range []struct{ name, path string }{
		{"input", flags.Input}, {"scoring matrix", flags.SubMat},
	} {
		if _, err := os.Stat(p.path); err != nil {
			errs = append(errs, fmt.Errorf("%s path: %w", p.name, err))
		}
	}
	if flags.Output != "" {
		if _, err := os.Stat(flags.Output); err == nil {
			errs = append(errs, fmt.Errorf("output path %s already exists", flags.Output))
		}
	}
	if len(errs) > 0 {
		return 0, fmt.Errorf("%w\n%w", ErrUsage, errors.Join(errs...))
	}
	return mode, nil
}

// wrtOutput puts the alignments in a new file and the numbers on stdout.
func wrtOutput(fname string, stdout io.Writer, reps []align.Report) error {
	fp, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("cannot use %s for writing: %w", fname, err)
	}
	if err = report.WriteAlignments(fp, reps); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err = fp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", fname, err)
	}
	if abs, err := filepath.Abs(fname); err == nil {
		fname = abs
	}
	fmt.Fprintln(stdout, "The alignment output has been recorded to the following path:", fname)
	if len(reps) > 1 {
		fmt.Fprintln(stdout, "There were more than 1 results. The results given below"+
			" belong to the alignments recorded in the output file in the same order.")
	}
	return report.WriteScores(stdout, reps)
}

// Mymain does one run. Results go to stdout, or to flags.Output.
// Log messages go to stderr if flags.Vbsty is above zero. With
// Vbsty above 2, the score matrix is printed as well.
func Mymain(flags *CmdFlag, stdout, stderr io.Writer) error {
	logger := log.New(io.Discard, "pairalign: ", 0)
	if flags.Vbsty > 0 {
		logger.SetOutput(stderr)
	}
	mode, err := flags.check()
	if err != nil {
		return err
	}
	s, t, err := seqfile.Read(flags.Input)
	if err != nil {
		return fmt.Errorf("reading sequences: %w", err)
	}
	logger.Printf("sequences of length %d and %d from %s", len(s), len(t), flags.Input)
	smat, err := submat.Read(flags.SubMat)
	if err != nil {
		return fmt.Errorf("reading scoring matrix: %w", err)
	}
	if flags.Vbsty > 1 {
		logger.Printf("scoring matrix from %s\n%v", flags.SubMat, smat)
	}

	params := align.DefaultParams()
	params.Mode = mode
	params.Pnlty = align.Pnlty{Open: flags.GapOpen, Ext: flags.GapExt}
	if flags.Vbsty > 2 {
		params.Dbg = stderr
	}
	reps, err := align.Align(s, t, smat, &params)
	if err != nil {
		return err
	}
	logger.Printf("%v alignment gave %d result(s)", mode, len(reps))

	if flags.Output == "" {
		return report.Write(stdout, reps)
	}
	return wrtOutput(flags.Output, stdout, reps)
}
