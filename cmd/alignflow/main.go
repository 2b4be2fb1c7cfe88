// Command alignflow provides a CLI for global sequence alignment.
//
// Usage:
//
//	alignflow [command] [options]
//
// Commands:
//
//	align       Align two sequences and print the report
//	generate    Generate random DNA sequences
//	info        Show sequence information
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alignflow/alignflow-go/pkg/alignflow"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "generate":
		generateCmd(os.Args[2:])
	case "info":
		infoCmd(os.Args[2:])
	case "version":
		fmt.Println(alignflow.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`AlignFlow - Global Sequence Alignment Tool

Usage:
  alignflow <command> [options]

Commands:
  align     Align two sequences and print the report
  generate  Generate random DNA sequences
  info      Show sequence information
  version   Show version information
  help      Show this help message

Use "alignflow <command> -h" for more information about a command.`)
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	seq1 := fs.String("seq1", "", "First sequence")
	seq2 := fs.String("seq2", "", "Second sequence")
	file := fs.String("file", "", "FASTA file holding the two sequences to align")
	random := fs.Bool("random", false, "Generate both sequences randomly")
	len1 := fs.Int("len1", 50, "Length of the first random sequence")
	len2 := fs.Int("len2", 50, "Length of the second random sequence")
	seed := fs.Int64("seed", 0, "Random seed (0 means seed from the clock)")
	match := fs.Int("match", 1, "Match score")
	mismatch := fs.Int("mismatch", -1, "Mismatch penalty")
	gap := fs.Int("gap", -2, "Gap penalty")
	out := fs.String("out", "", "Also export the report to this file")
	fs.Parse(args)

	var s1, s2 *alignflow.Sequence
	var err error

	switch {
	case *random:
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(s))
		s1 = alignflow.RandomSequence(rng, *len1)
		s2 = alignflow.RandomSequence(rng, *len2)
		fmt.Printf("Generated Sequences:\nSequence 1: %s\nSequence 2: %s\n\n", s1.Bases, s2.Bases)
	case *file != "":
		sequences, err := alignflow.ReadFASTA(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		if len(sequences) < 2 {
			fmt.Fprintln(os.Stderr, "Error: FASTA file must hold at least two sequences")
			os.Exit(1)
		}
		s1, s2 = sequences[0], sequences[1]
	default:
		s1, err = alignflow.NewSequence(*seq1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sequence 1: %v\n", err)
			os.Exit(1)
		}
		s2, err = alignflow.NewSequence(*seq2)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sequence 2: %v\n", err)
			os.Exit(1)
		}
	}

	scoring := alignflow.Scoring{Match: *match, Mismatch: *mismatch, Gap: *gap}
	res := alignflow.AlignWithScoring(s1, s2, scoring)

	if err := alignflow.Report(os.Stdout, res); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := alignflow.Export(*out, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nResults have been exported to '%s'\n", *out)
	}
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	length := fs.Int("len", 50, "Sequence length")
	count := fs.Int("count", 1, "Number of sequences")
	seed := fs.Int64("seed", 0, "Random seed (0 means seed from the clock)")
	fs.Parse(args)

	if *length < 0 || *count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -len must be non-negative and -count positive")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	for i := 0; i < *count; i++ {
		seq := alignflow.RandomSequence(rng, *length)
		seq.ID = fmt.Sprintf("random_%d", i+1)
		fmt.Print(seq.ToFASTA())
	}
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to analyze")
	seq := fs.String("seq", "", "Sequence string to analyze")
	fs.Parse(args)

	if *file == "" && *seq == "" {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	var sequences []*alignflow.Sequence
	var err error

	if *file != "" {
		sequences, err = alignflow.ReadFASTA(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		s, err := alignflow.NewSequence(*seq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sequence: %v\n", err)
			os.Exit(1)
		}
		sequences = []*alignflow.Sequence{s}
	}

	for i, s := range sequences {
		counts := s.BaseCounts()
		fmt.Printf("Sequence %d:\n", i+1)
		if s.ID != "" {
			fmt.Printf("  ID: %s\n", s.ID)
		}
		fmt.Printf("  Length: %d bp\n", s.Len())
		fmt.Printf("  GC Content: %.2f%%\n", s.GCContent()*100)
		fmt.Printf("  Base Counts: A=%d, C=%d, G=%d, T=%d, N=%d\n",
			counts.A, counts.C, counts.G, counts.T, counts.N)
		fmt.Println()
	}
}
