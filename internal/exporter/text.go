package exporter

import (
	"fmt"
	"io"
	"strings"

	"sortstat/internal/types"
)

// WriteText renders a report in the tool's plain text format.
//
// Natural mode prints the total line followed by every token in ascending
// order on a single "Sorted data:" line, each token followed by one space.
// ByCount mode prints the total line, one "token: N time(s), P%" line per
// group and a final blank line.
func WriteText(w io.Writer, report types.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total %s: %d.\n", report.Kind.Noun(), report.Total)

	switch report.Mode {
	case types.SortByCount:
		for _, group := range report.Groups {
			fmt.Fprintf(&b, "%s: %d time(s), %d%%\n", group.Token, group.Count, group.Percent)
		}
		b.WriteString("\n")
	default:
		b.WriteString("Sorted data: ")
		for _, token := range report.Sorted {
			b.WriteString(token)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	return nil
}
