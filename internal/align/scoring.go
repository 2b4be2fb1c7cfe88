// Package align implements optimal global alignment of two sequences
// using the Needleman-Wunsch algorithm.
//
// The aligner retains the full scoring matrix so callers can inspect or
// render it, and reports the traceback path that produced the returned
// alignment. Ties between candidate scores are resolved in a fixed
// priority (Diagonal, then Up, then Left), so repeated runs over the
// same inputs produce identical results.
package align

import "fmt"

// GapMarker is the placeholder written into an aligned sequence where
// the other sequence contributes a symbol and this one does not.
const GapMarker = '-'

// Direction represents the traceback direction recorded for a cell of
// the scoring matrix.
type Direction int

const (
	// None marks the top-left corner cell, which has no predecessor.
	None Direction = iota
	// Diagonal represents a match or mismatch
	Diagonal
	// Up represents a gap in sequence 2
	Up
	// Left represents a gap in sequence 1
	Left
)

func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// Scoring holds the three scoring parameters for one alignment run.
//
// No structural constraints are imposed on the values: the algorithm is
// agnostic to sign conventions, and callers may pass any combination of
// integers (including mismatch > match).
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns the conventional DNA scoring parameters:
// match +1, mismatch -1, gap -2.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Mismatch: -1, Gap: -2}
}

// Score returns the substitution score for a pair of symbols.
func (s Scoring) Score(a, b byte) int {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// String returns a string representation of the scoring parameters.
func (s Scoring) String() string {
	return fmt.Sprintf("Scoring { match: %d, mismatch: %d, gap: %d }",
		s.Match, s.Mismatch, s.Gap)
}
