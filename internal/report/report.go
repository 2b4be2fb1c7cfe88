// Package report renders alignment results as text: the aligned pair
// with a match line, the score, statistics, the traceback path and the
// scoring matrix. The layout is fixed so output can be compared
// byte-for-byte across runs.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alignflow/alignflow-go/internal/align"
)

// MatchLine returns a line marking '|' at positions where the two
// aligned sequences hold the same character and a space elsewhere.
func MatchLine(aligned1, aligned2 string) string {
	var sb strings.Builder
	for i := 0; i < len(aligned1); i++ {
		if aligned1[i] == aligned2[i] {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Render produces the full text report for an alignment.
func Render(res *align.Result, st align.Statistics) string {
	var sb strings.Builder

	sb.WriteString("Alignment:\n")
	sb.WriteString(res.AlignedSeq1)
	sb.WriteByte('\n')
	sb.WriteString(MatchLine(res.AlignedSeq1, res.AlignedSeq2))
	sb.WriteByte('\n')
	sb.WriteString(res.AlignedSeq2)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Score: %d\n", res.Score)

	sb.WriteString("\nAlignment Statistics:\n")
	fmt.Fprintf(&sb, "Matches: %d\n", st.Matches)
	fmt.Fprintf(&sb, "Mismatches: %d\n", st.Mismatches)
	fmt.Fprintf(&sb, "Gaps: %d\n", st.Gaps)
	fmt.Fprintf(&sb, "Match percentage: %.2f%%\n", st.MatchPercentage)
	fmt.Fprintf(&sb, "Gap percentage: %.2f%%\n", st.GapPercentage)

	sb.WriteString("\nTraceback Path:\n")
	sb.WriteString(FormatPath(res.Path))
	sb.WriteByte('\n')

	sb.WriteString("\nScoring Matrix:\n")
	for i := 0; i < res.Matrix.Rows(); i++ {
		sb.WriteString(formatRow(res.Matrix.Row(i)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatPath renders a traceback path as an ordered list of coordinate
// pairs, e.g. "[(1, 1), (2, 2)]".
func FormatPath(path [][2]int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, p := range path {
		if k > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d, %d)", p[0], p[1])
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatRow(row []int) string {
	fields := make([]string, len(row))
	for j, v := range row {
		fields[j] = strconv.Itoa(v)
	}
	return strings.Join(fields, "\t")
}

// Write renders the report to w.
func Write(w io.Writer, res *align.Result, st align.Statistics) error {
	_, err := io.WriteString(w, Render(res, st))
	return err
}

// Export writes the report to a file.
func Export(path string, res *align.Result, st align.Statistics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := Write(f, res, st); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
