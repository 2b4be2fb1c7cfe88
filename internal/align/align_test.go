package align

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScoring(t *testing.T) {
	sc := DefaultScoring()
	assert.Equal(t, 1, sc.Match)
	assert.Equal(t, -1, sc.Mismatch)
	assert.Equal(t, -2, sc.Gap)

	assert.Equal(t, 1, sc.Score('A', 'A'))
	assert.Equal(t, -1, sc.Score('A', 'T'))
}

func TestAlignProperties(t *testing.T) {
	tests := []struct {
		name string
		seq1 string
		seq2 string
	}{
		{"identical", "ACGT", "ACGT"},
		{"different lengths", "ACGTACGT", "ACGT"},
		{"completely different", "AAAA", "TTTT"},
		{"single vs long", "G", "GATTACA"},
		{"classic pair", "GATTACA", "GCATGCU"},
	}

	sc := DefaultScoring()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Align(tt.seq1, tt.seq2, sc)

			assert.Equal(t, len(res.AlignedSeq1), len(res.AlignedSeq2))
			assert.GreaterOrEqual(t, res.Length(), max(len(tt.seq1), len(tt.seq2)))

			// No column may hold a gap on both sides.
			for k := 0; k < res.Length(); k++ {
				if res.AlignedSeq1[k] == GapMarker {
					assert.NotEqual(t, byte(GapMarker), res.AlignedSeq2[k],
						"gap paired with gap at position %d", k)
				}
			}

			// Stripping gaps recovers the inputs.
			assert.Equal(t, tt.seq1, strings.ReplaceAll(res.AlignedSeq1, "-", ""))
			assert.Equal(t, tt.seq2, strings.ReplaceAll(res.AlignedSeq2, "-", ""))

			// Score is the bottom-right cell, also reachable via the
			// two-row variant.
			n, m := len(tt.seq1), len(tt.seq2)
			assert.Equal(t, res.Matrix.At(n, m), res.Score)
			assert.Equal(t, res.Score, Score(tt.seq1, tt.seq2, sc))

			// Path runs forward, ends at (n,m), excludes the origin,
			// and has one entry per alignment column.
			require.Len(t, res.Path, res.Length())
			assert.Equal(t, [2]int{n, m}, res.Path[len(res.Path)-1])
			assert.NotContains(t, res.Path, [2]int{0, 0})

			for _, p := range res.Path {
				assert.Less(t, p[0], n+1)
				assert.Less(t, p[1], m+1)
			}

			diagSteps := 0
			for k := 0; k < res.Length(); k++ {
				if res.AlignedSeq1[k] != GapMarker && res.AlignedSeq2[k] != GapMarker {
					diagSteps++
				}
			}
			assert.Equal(t, n+m-diagSteps, len(res.Path))
		})
	}
}

func TestAlignSelf(t *testing.T) {
	// Aligning a sequence against itself yields one match per symbol
	// and no gaps under the default scoring.
	for _, seq := range []string{"A", "ACGT", "GATTACAGATTACA"} {
		res := Align(seq, seq, DefaultScoring())
		assert.Equal(t, len(seq), res.Score)
		assert.Equal(t, seq, res.AlignedSeq1)
		assert.Equal(t, seq, res.AlignedSeq2)

		st := res.Statistics()
		assert.Equal(t, len(seq), st.Matches)
		assert.Zero(t, st.Mismatches)
		assert.Zero(t, st.Gaps)
	}
}

func TestAlignEmpty(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		res := Align("", "", DefaultScoring())
		assert.Empty(t, res.AlignedSeq1)
		assert.Empty(t, res.AlignedSeq2)
		assert.Zero(t, res.Score)
		assert.Empty(t, res.Path)
		assert.Equal(t, 1, res.Matrix.Rows())
		assert.Equal(t, 1, res.Matrix.Cols())
		assert.Zero(t, res.Matrix.At(0, 0))
	})

	t.Run("second empty", func(t *testing.T) {
		res := Align("ACGT", "", DefaultScoring())
		assert.Equal(t, "ACGT", res.AlignedSeq1)
		assert.Equal(t, "----", res.AlignedSeq2)
		assert.Equal(t, -8, res.Score)
		assert.Equal(t, [][2]int{{1, 0}, {2, 0}, {3, 0}, {4, 0}}, res.Path)
	})

	t.Run("first empty", func(t *testing.T) {
		res := Align("", "ACGT", DefaultScoring())
		assert.Equal(t, "----", res.AlignedSeq1)
		assert.Equal(t, "ACGT", res.AlignedSeq2)
		assert.Equal(t, -8, res.Score)
	})
}

// TestAlignRegression pins the exact output for GATTACA vs GCATGCU
// under the default scoring. With gap -2 the optimal alignment is
// gap-free and the traceback is all-diagonal.
func TestAlignRegression(t *testing.T) {
	res := Align("GATTACA", "GCATGCU", DefaultScoring())

	assert.Equal(t, "GATTACA", res.AlignedSeq1)
	assert.Equal(t, "GCATGCU", res.AlignedSeq2)
	assert.Equal(t, -1, res.Score)
	assert.Equal(t, [][2]int{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7},
	}, res.Path)

	assert.Equal(t, 0, res.Matrix.At(0, 0))
	assert.Equal(t, -14, res.Matrix.At(7, 0))
	assert.Equal(t, -14, res.Matrix.At(0, 7))
	assert.Equal(t, -1, res.Matrix.At(7, 7))

	st := res.Statistics()
	assert.Equal(t, 3, st.Matches)
	assert.Equal(t, 4, st.Mismatches)
	assert.Zero(t, st.Gaps)
}

// TestAlignTieBreak exercises a cell where the diagonal and up
// candidates tie: Diagonal must win, pushing the gap to the front of
// the shorter sequence.
func TestAlignTieBreak(t *testing.T) {
	res := Align("AA", "A", DefaultScoring())
	assert.Equal(t, "AA", res.AlignedSeq1)
	assert.Equal(t, "-A", res.AlignedSeq2)
	assert.Equal(t, -1, res.Score)
	assert.Equal(t, [][2]int{{1, 0}, {2, 1}}, res.Path)
}

func TestAlignDeterminism(t *testing.T) {
	sc := DefaultScoring()
	first := Align("GATTACA", "GCATGCU", sc)
	second := Align("GATTACA", "GCATGCU", sc)

	require.Equal(t, first.AlignedSeq1, second.AlignedSeq1)
	require.Equal(t, first.AlignedSeq2, second.AlignedSeq2)
	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Matrix.Grid(), second.Matrix.Grid())
}

func TestAlignCustomScoring(t *testing.T) {
	// The algorithm imposes no sign convention; an all-positive
	// scoring still aligns.
	res := Align("AC", "AC", Scoring{Match: 5, Mismatch: 2, Gap: 1})
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, "AC", res.AlignedSeq1)
}

func TestAlignContext(t *testing.T) {
	t.Run("background", func(t *testing.T) {
		res, err := AlignContext(context.Background(), "GATTACA", "GCATGCU", DefaultScoring())
		require.NoError(t, err)
		assert.Equal(t, -1, res.Score)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := AlignContext(ctx, "GATTACA", "GCATGCU", DefaultScoring())
		require.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestScoreOnly(t *testing.T) {
	tests := []struct {
		seq1, seq2 string
		want       int
	}{
		{"", "", 0},
		{"ACGT", "", -8},
		{"ACGT", "ACGT", 4},
		{"GATTACA", "GCATGCU", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.seq1, tt.seq2, DefaultScoring()),
			"Score(%q, %q)", tt.seq1, tt.seq2)
	}
}

func TestMatrixGrid(t *testing.T) {
	res := Align("GA", "G", DefaultScoring())

	grid := res.Matrix.Grid()
	require.Len(t, grid, 3)
	require.Len(t, grid[0], 2)
	assert.Equal(t, res.Matrix.Row(0), grid[0])

	// Grid is a copy: mutating it leaves the matrix untouched.
	grid[0][0] = 99
	assert.Zero(t, res.Matrix.At(0, 0))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
