package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"sortstat/internal/types"
)

// WriteJSON renders a report as indented JSON, for piping into other tools.
func WriteJSON(w io.Writer, report types.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	return nil
}
