package sequence

import "fmt"

// ValidDNABases is the accepted DNA alphabet, including the ambiguous
// base N.
var ValidDNABases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// InvalidBaseError is returned when an invalid base is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

// ValidateDNA validates that a string contains only valid DNA bases.
func ValidateDNA(bases string) error {
	for i, b := range bases {
		if !ValidDNABases[b] {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidDNABase checks if a character is a valid DNA base.
func IsValidDNABase(c rune) bool {
	return ValidDNABases[c]
}
