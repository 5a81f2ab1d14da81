// 31 July 2020

/*
Randseq makes a pair of related random sequences for testing the aligner.
Usage:

	randseq [options] fname length

will write a random sequence of length length and a mutated copy of
it to fname, one per line, which is what pairalign reads. If fname is
"-", the sequences go to standard output.

Flags:

	-m
		fraction of sites in the second sequence to change
	-d
		fraction of sites to delete from the second sequence
	-p
		protein sequences, rather than DNA
	-r
		random number seed
*/
package main
