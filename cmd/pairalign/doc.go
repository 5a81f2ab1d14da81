/*
Pairalign aligns two sequences with affine gap penalties.

Usage:

	pairalign --input file --alignment local|global --scoring-matrix file \
		--gap-opening-penalty n --gap-extension-penalty n [--output file] [-v n]

The input file has two sequences, either one per line, or as the first
two entries of a fasta file. The scoring matrix has the column symbols
on the first line, then one line per row symbol, starting with the
symbol. Anything after a '#' is ignored.

Gap penalties are added to the score, so they must be zero or
negative. A run of k gaps costs one opening penalty and k-1 extension
penalties.

Each alignment is printed as three lines: the first sequence, a line
with '|' where the two sequences agree, and the second sequence. The
raw score and percent identity come next. A local alignment can give
more than one result, if the best score appears in more than one
place.

Flags:

	--output
		The alignments go to this file, which must not exist yet.
		The scores still go to standard output.
	-v
		verbosity. 1 says what is being read, 2 prints the scoring
		matrix and 3 prints the score and direction matrices.

Exit status is 0 on success, 2 for bad arguments and 1 for anything
else.
*/
package main
