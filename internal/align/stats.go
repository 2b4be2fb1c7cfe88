package align

// Statistics summarizes a completed alignment: per-position match,
// mismatch and gap counts plus match/gap percentages over the total
// alignment length.
type Statistics struct {
	Matches         int
	Mismatches      int
	Gaps            int
	MatchPercentage float64
	GapPercentage   float64
}

// Stats classifies each position of an aligned pair.
//
// A position counts as a match when the two characters are equal, as a
// mismatch when they differ and neither is the gap marker, and as a gap
// when either character is the gap marker. The three conditions are
// evaluated independently, so under the aligner's no-(gap,gap)
// guarantee every position contributes to exactly one counter.
//
// Both inputs must have equal length (the aligner's contract); the
// degenerate empty alignment yields zero counts and 0% rather than a
// division fault.
func Stats(alignedSeq1, alignedSeq2 string) Statistics {
	var st Statistics
	for i := 0; i < len(alignedSeq1); i++ {
		a, b := alignedSeq1[i], alignedSeq2[i]
		if a == b {
			st.Matches++
		}
		if a != b && a != GapMarker && b != GapMarker {
			st.Mismatches++
		}
		if a == GapMarker || b == GapMarker {
			st.Gaps++
		}
	}

	total := len(alignedSeq1)
	if total > 0 {
		st.MatchPercentage = float64(st.Matches) / float64(total) * 100
		st.GapPercentage = float64(st.Gaps) / float64(total) * 100
	}
	return st
}
