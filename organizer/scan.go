// Package organizer implements the classification and reconciliation engine.
package organizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Private variables (alphabetical)

// videoExtensions is the fixed set of recognized video container extensions
// (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".mpg":  true,
	".mpeg": true,
}

// Public functions (alphabetical)

// ListVideoFiles enumerates the immediate files of dir whose extension
// matches a recognized video container format (case-insensitive). The scan
// is non-recursive and the returned base names are sorted lexicographically
// for deterministic processing order.
func ListVideoFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read source directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if videoExtensions[ext] {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Public methods (alphabetical)

// Scan probes and classifies every video file directly under sourceDir and
// returns the resulting report. It never mutates the scanned files; its only
// side effect is writing the report artifact into sourceDir. Per-file probe
// failures are recorded and never abort the batch; only an inaccessible
// source directory fails the operation as a whole.
func (e *Engine) Scan(ctx context.Context, sourceDir string) (*ScanReport, error) {
	files, err := ListVideoFiles(sourceDir)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator()
	records := make([]ScanRecord, 0, len(files))

	for i, name := range files {
		result := e.Prober.ProbeFile(ctx, filepath.Join(sourceDir, name))
		record := ScanRecord{FileName: name, Probe: result}
		if result.Valid() {
			record.Bucket = Classify(result.Height)
			agg.RecordSuccess(result.Codec, BucketKey(result))
		} else {
			record.Failed = true
			agg.RecordFailure()
		}
		records = append(records, record)

		if e.Progress != nil {
			e.Progress(i+1, len(files), name)
		}
	}

	report := &ScanReport{
		ReportID:     uuid.NewString(),
		GeneratedAt:  time.Now(),
		SourceDir:    sourceDir,
		Records:      records,
		Total:        agg.Total(),
		Success:      agg.Success(),
		Failed:       agg.Failed(),
		CodecCounts:  agg.CodecCounts(),
		BucketCounts: agg.BucketCounts(),
	}

	if err := WriteScanReport(report, filepath.Join(sourceDir, ScanReportFileName)); err != nil {
		return nil, fmt.Errorf("error writing scan report: %w", err)
	}

	return report, nil
}
