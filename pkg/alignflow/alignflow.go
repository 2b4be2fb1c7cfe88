// Package alignflow provides a high-level API for global sequence
// alignment.
//
// Example usage:
//
//	seq1, err := alignflow.NewSequence("GATTACA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	seq2, _ := alignflow.NewSequence("GCATGCU")
//
//	res := alignflow.Align(seq1, seq2)
//	fmt.Println(res.Score)
//	alignflow.Report(os.Stdout, res)
package alignflow

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/alignflow/alignflow-go/internal/align"
	"github.com/alignflow/alignflow-go/internal/report"
	"github.com/alignflow/alignflow-go/internal/sequence"
)

// Re-export types for convenience
type (
	Sequence   = sequence.Sequence
	BaseCounts = sequence.BaseCounts
	Scoring    = align.Scoring
	Result     = align.Result
	Statistics = align.Statistics
	Matrix     = align.Matrix
	Direction  = align.Direction
)

// NewSequence creates a new DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// RandomSequence generates a random DNA sequence from the given
// generator.
func RandomSequence(rng *rand.Rand, length int) *Sequence {
	return sequence.Random(rng, length)
}

// DefaultScoring returns the default scoring parameters
// (match +1, mismatch -1, gap -2).
func DefaultScoring() Scoring {
	return align.DefaultScoring()
}

// Align performs global alignment with the default scoring.
func Align(seq1, seq2 *Sequence) *Result {
	return align.Align(seq1.Bases, seq2.Bases, align.DefaultScoring())
}

// AlignWithScoring performs global alignment with custom scoring.
func AlignWithScoring(seq1, seq2 *Sequence, sc Scoring) *Result {
	return align.Align(seq1.Bases, seq2.Bases, sc)
}

// AlignScore computes only the alignment score, using two-row storage.
func AlignScore(seq1, seq2 *Sequence, sc Scoring) int {
	return align.Score(seq1.Bases, seq2.Bases, sc)
}

// Stats derives statistics from an alignment result.
func Stats(res *Result) Statistics {
	return res.Statistics()
}

// StatsFor derives statistics from an already aligned pair of
// equal-length sequences.
func StatsFor(alignedSeq1, alignedSeq2 string) Statistics {
	return align.Stats(alignedSeq1, alignedSeq2)
}

// Report renders the full text report for an alignment to w.
func Report(w io.Writer, res *Result) error {
	return report.Write(w, res, res.Statistics())
}

// Export writes the full text report for an alignment to a file.
func Export(path string, res *Result) error {
	return report.Export(path, res, res.Statistics())
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flushSequence := func() error {
		if currentBases.Len() > 0 {
			seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc)
			if err != nil {
				return err
			}
			sequences = append(sequences, seq)
			currentBases.Reset()
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// WriteFASTA writes sequences to a FASTA file.
func WriteFASTA(filename string, sequences []*Sequence) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, seq := range sequences {
		if _, err := file.WriteString(seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}

	return nil
}

// Version returns the AlignFlow version.
func Version() string {
	return "1.0.0"
}

// Info returns information about AlignFlow.
func Info() string {
	return fmt.Sprintf(`AlignFlow v%s - Global Sequence Alignment Library

Features:
  - Needleman-Wunsch global alignment with configurable scoring
  - Full scoring matrix and traceback path reporting
  - Alignment statistics (matches, mismatches, gaps, percentages)
  - DNA sequence validation and random generation
  - FASTA file parsing and writing
  - Text report rendering and export
`, Version())
}
