package align

// Matrix is the dense (n+1)x(m+1) grid of prefix alignment scores built
// during a run. Cell (i,j) holds the optimal score of the length-i
// prefix of sequence 1 against the length-j prefix of sequence 2.
//
// The grid is backed by a single row-major buffer. It is immutable once
// returned: callers must not modify slices handed out by Row.
type Matrix struct {
	rows, cols int
	cells      []int
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// Rows returns the number of rows, len(seq1)+1.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns, len(seq2)+1.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the score at row i, column j.
func (m *Matrix) At(i, j int) int {
	return m.cells[i*m.cols+j]
}

func (m *Matrix) set(i, j, v int) {
	m.cells[i*m.cols+j] = v
}

// Row returns row i of the matrix. The returned slice shares the
// matrix's backing buffer.
func (m *Matrix) Row(i int) []int {
	return m.cells[i*m.cols : (i+1)*m.cols]
}

// Grid returns a copy of the matrix as a slice of rows.
func (m *Matrix) Grid() [][]int {
	grid := make([][]int, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]int, m.cols)
		copy(row, m.Row(i))
		grid[i] = row
	}
	return grid
}
