// Package sequence provides a validated DNA sequence type plus the
// random-sequence generation used by the input layer.
//
// Validation is a boundary concern: the aligner itself accepts any
// string, while CLI and API inputs pass through this package first.
// The empty sequence is valid, since alignment is total over empty
// inputs.
package sequence

import (
	"fmt"
	"math/rand"
	"strings"
)

// Sequence represents a DNA sequence, optionally carrying a FASTA
// identifier and description.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a sequence with uppercase normalization and alphabet
// validation. Empty input yields an empty sequence.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)
	if err := ValidateDNA(normalized); err != nil {
		return nil, err
	}
	return &Sequence{Bases: normalized}, nil
}

// WithID creates a sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	return seq, nil
}

// WithMetadata creates a sequence with identifier and description.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	seq.Description = description
	return seq, nil
}

// randomAlphabet is the symbol set drawn from by Random.
var randomAlphabet = []byte("ACGT")

// Random generates a random DNA sequence of the given length from an
// explicitly passed generator, so callers control seeding and no
// process-wide RNG state is touched. A non-positive length yields the
// empty sequence.
func Random(rng *rand.Rand, length int) *Sequence {
	if length <= 0 {
		return &Sequence{}
	}
	bases := make([]byte, length)
	for i := range bases {
		bases[i] = randomAlphabet[rng.Intn(len(randomAlphabet))]
	}
	return &Sequence{Bases: string(bases)}
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// BaseCounts holds counts of each base type.
type BaseCounts struct {
	A int
	C int
	G int
	T int
	N int
}

// Total returns the total count of all bases.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T + bc.N
}

// BaseCounts returns the count of each base type.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}
	for _, b := range s.Bases {
		switch b {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		case 'N':
			counts.N++
		}
	}
	return counts
}

// GCContent calculates the proportion of G and C bases.
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	gcCount := 0
	for _, b := range s.Bases {
		if b == 'G' || b == 'C' {
			gcCount++
		}
	}
	return float64(gcCount) / float64(len(s.Bases))
}

// ToFASTA returns the sequence in FASTA format, wrapped at 80 columns.
func (s *Sequence) ToFASTA() string {
	var header string
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	} else {
		header = ">sequence"
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteRune('\n')

	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteRune('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}

// Equal checks equality with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases
}
