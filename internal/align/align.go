package align

import "context"

// Result is the outcome of one global alignment run. It is created
// once per run and not mutated afterwards.
type Result struct {
	// AlignedSeq1 and AlignedSeq2 have equal length; each position
	// holds either an original symbol or GapMarker, never a gap on
	// both sides.
	AlignedSeq1 string
	AlignedSeq2 string

	// Score is the optimal global alignment score, equal to the
	// bottom-right cell of the scoring matrix.
	Score int

	// Path is the traceback path in forward (start-to-end) order.
	// It excludes the origin (0,0); its last element is (n,m). Each
	// entry is an (i,j) matrix index pair.
	Path [][2]int

	// Matrix is the full scoring matrix.
	Matrix *Matrix
}

// Length returns the length of the alignment.
func (r *Result) Length() int {
	return len(r.AlignedSeq1)
}

// Statistics derives summary statistics from the alignment.
func (r *Result) Statistics() Statistics {
	return Stats(r.AlignedSeq1, r.AlignedSeq2)
}

// Align performs global alignment of seq1 and seq2 using the
// Needleman-Wunsch algorithm.
//
// The function is total: any input is valid, including one or both
// sequences empty. Aligning two empty sequences yields an empty
// alignment with score 0, an empty path and a 1x1 matrix.
func Align(seq1, seq2 string, sc Scoring) *Result {
	res, _ := run(nil, seq1, seq2, sc)
	return res
}

// AlignContext is Align with cancellation. The context is checked once
// per matrix row, so cancellation latency is bounded by one row of the
// fill loop.
func AlignContext(ctx context.Context, seq1, seq2 string, sc Scoring) (*Result, error) {
	return run(ctx, seq1, seq2, sc)
}

func run(ctx context.Context, seq1, seq2 string, sc Scoring) (*Result, error) {
	n, m := len(seq1), len(seq2)

	scores := newMatrix(n+1, m+1)
	dirs := make([]Direction, (n+1)*(m+1))

	// First row and column hold cumulative gap penalties.
	for i := 1; i <= n; i++ {
		scores.set(i, 0, i*sc.Gap)
		dirs[i*(m+1)] = Up
	}
	for j := 1; j <= m; j++ {
		scores.set(0, j, j*sc.Gap)
		dirs[j] = Left
	}

	for i := 1; i <= n; i++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for j := 1; j <= m; j++ {
			diag := scores.At(i-1, j-1) + sc.Score(seq1[i-1], seq2[j-1])
			up := scores.At(i-1, j) + sc.Gap
			left := scores.At(i, j-1) + sc.Gap

			// Fixed tie priority: Diagonal beats Up beats Left.
			best := diag
			dir := Diagonal
			if up > best {
				best = up
				dir = Up
			}
			if left > best {
				best = left
				dir = Left
			}

			scores.set(i, j, best)
			dirs[i*(m+1)+j] = dir
		}
	}

	aligned1, aligned2, path := traceback(seq1, seq2, dirs, n, m)

	return &Result{
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Score:       scores.At(n, m),
		Path:        path,
		Matrix:      scores,
	}, nil
}

// traceback walks the direction tags from (n,m) back to (0,0) and
// reconstructs the alignment in forward order.
func traceback(seq1, seq2 string, dirs []Direction, n, m int) (string, string, [][2]int) {
	aligned1 := make([]byte, 0, n+m)
	aligned2 := make([]byte, 0, n+m)
	path := make([][2]int, 0, n+m)

	i, j := n, m
	for i > 0 || j > 0 {
		path = append(path, [2]int{i, j})

		switch dirs[i*(m+1)+j] {
		case Diagonal:
			aligned1 = append(aligned1, seq1[i-1])
			aligned2 = append(aligned2, seq2[j-1])
			i--
			j--
		case Up:
			aligned1 = append(aligned1, seq1[i-1])
			aligned2 = append(aligned2, GapMarker)
			i--
		case Left:
			aligned1 = append(aligned1, GapMarker)
			aligned2 = append(aligned2, seq2[j-1])
			j--
		}
	}

	reverseBytes(aligned1)
	reverseBytes(aligned2)
	reversePath(path)

	return string(aligned1), string(aligned2), path
}

// Score computes the global alignment score without retaining the
// matrix or reconstructing an alignment. It keeps only two rows, so
// memory is O(m) instead of O(n*m). The result always equals
// Align(seq1, seq2, sc).Score.
func Score(seq1, seq2 string, sc Scoring) int {
	n, m := len(seq1), len(seq2)

	prevRow := make([]int, m+1)
	currRow := make([]int, m+1)

	for j := 0; j <= m; j++ {
		prevRow[j] = j * sc.Gap
	}

	for i := 1; i <= n; i++ {
		currRow[0] = i * sc.Gap

		for j := 1; j <= m; j++ {
			diag := prevRow[j-1] + sc.Score(seq1[i-1], seq2[j-1])
			up := prevRow[j] + sc.Gap
			left := currRow[j-1] + sc.Gap

			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			currRow[j] = best
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[m]
}

func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reversePath(p [][2]int) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
