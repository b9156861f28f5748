package batch

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteReport encodes the report as indented JSON.
func WriteReport(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}
