package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// ReportPaths names the three artifacts written for one analysis run.
type ReportPaths struct {
	JSON     string
	CSV      string
	Markdown string
}

// WriteReports persists the JSON, CSV, and Markdown artifacts for the state
// under dir, named <base>.json, <base>.csv, and <base>.md.
func WriteReports(state *models.AnalysisState, dir, base string, pretty bool) (ReportPaths, error) {
	var paths ReportPaths

	if err := os.MkdirAll(dir, 0755); err != nil {
		return paths, fmt.Errorf("failed to create report directory: %w", err)
	}

	jsonData, err := ToJSON(state, pretty)
	if err != nil {
		return paths, fmt.Errorf("failed to serialize JSON report: %w", err)
	}
	csvData, err := ToCSV(state)
	if err != nil {
		return paths, fmt.Errorf("failed to serialize CSV report: %w", err)
	}
	mdData := ToMarkdown(state)

	paths.JSON = filepath.Join(dir, base+".json")
	paths.CSV = filepath.Join(dir, base+".csv")
	paths.Markdown = filepath.Join(dir, base+".md")

	var written []string
	for _, artifact := range []struct {
		path string
		data []byte
	}{
		{paths.JSON, jsonData},
		{paths.CSV, csvData},
		{paths.Markdown, mdData},
	} {
		if err := os.WriteFile(artifact.path, artifact.data, 0644); err != nil {
			// A failed run must not leave a partial report set behind.
			for _, path := range written {
				os.Remove(path)
			}
			return ReportPaths{}, fmt.Errorf("failed to write %s: %w", artifact.path, err)
		}
		written = append(written, artifact.path)
	}

	return paths, nil
}
