package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteFile writes the result as indented JSON to path, creating or
// truncating the file.
func WriteFile(result *AnalysisResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}

	if err := Write(result, f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close results file: %w", err)
	}
	return nil
}

// Write encodes the result as indented JSON to w.
func Write(result *AnalysisResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
