// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	. "github.com/andrew-torda/pairalign/pkg/common"
	"github.com/andrew-torda/pairalign/pkg/randseq"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.Float64Var(&args.Mut, "m", 0.2, "fraction of sites to mutate")
	f.Float64Var(&args.Del, "d", 0.1, "fraction of sites to delete")
	f.BoolVar(&args.Prot, "p", false, "protein instead of DNA")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 2 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandseq [..] file length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	if args.Mut < 0 || args.Mut > 1 || args.Del < 0 || args.Del >= 1 {
		fmt.Fprintln(f.Output(), "fractions for -m and -d must be from 0 to 1")
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nlen, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil || nlen == 0 {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(ExitUsageError)
	} else {
		args.Len = int(nlen)
	}

	fname := f.Args()[0]
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		args.Wrtr = ft
		defer func() {
			if err := ft.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(ExitFailure)
			}
		}()
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
