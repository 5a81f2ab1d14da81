package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	. "github.com/andrew-torda/pairalign/pkg/common"
	"github.com/andrew-torda/pairalign/pkg/pairalign"
)

var required = []string{
	"input", "alignment", "scoring-matrix",
	"gap-opening-penalty", "gap-extension-penalty",
}

// missing returns the names of required flags that were not given.
func missing() []string {
	seen := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	var ret []string
	for _, name := range required {
		if !seen[name] {
			ret = append(ret, "--"+name)
		}
	}
	return ret
}

func main() {
	var flags pairalign.CmdFlag
	flag.StringVar(&flags.Input, "input", "", "file with the two sequences")
	flag.StringVar(&flags.Alignment, "alignment", "", "local or global")
	flag.StringVar(&flags.SubMat, "scoring-matrix", "", "scoring matrix file")
	flag.IntVar(&flags.GapOpen, "gap-opening-penalty", 0, "opening a gap, zero or negative")
	flag.IntVar(&flags.GapExt, "gap-extension-penalty", 0, "extending a gap, zero or negative")
	flag.StringVar(&flags.Output, "output", "", "write alignments to this new file")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.Parse()

	if m := missing(); len(m) > 0 || flag.NArg() != 0 {
		if len(m) > 0 {
			fmt.Fprintln(os.Stderr, "missing", strings.Join(m, ", "))
		}
		if flag.NArg() != 0 {
			fmt.Fprintln(os.Stderr, "unexpected arguments:", flag.Args())
		}
		flag.Usage()
		os.Exit(ExitUsageError)
	}

	if err := pairalign.Mymain(&flags, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, pairalign.ErrUsage) {
			os.Exit(ExitUsageError)
		}
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
