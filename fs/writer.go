// Package fs provides file output for review reports.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/govlens"
)

// Writer writes review reports to a directory, one timestamped file per
// review.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport renders the review in the given format and writes it to
// the base directory, creating the directory if needed. The filename is
// derived from the review timestamp. Returns the path of the written
// file.
func (w *Writer) WriteReport(review *govlens.Review, format govlens.ReportFormat) (string, error) {
	if review == nil || review.Proposal == nil || review.Analysis == nil {
		return "", govlens.Errorf(govlens.EINVALID, "complete review required")
	}

	var content string
	switch format {
	case govlens.ReportJSON:
		s, err := govlens.AnalysisJSON(review.Analysis)
		if err != nil {
			return "", err
		}
		content = s
	default:
		content = govlens.FormatReport(review)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", govlens.Errorf(govlens.EINTERNAL, "creating %s: %v", w.baseDir, err)
	}

	path := filepath.Join(w.baseDir, govlens.ReportFilename(review.CreatedAt, format))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", govlens.Errorf(govlens.EINTERNAL, "writing %s: %v", path, err)
	}

	return path, nil
}
