// Package organizer implements the classification and reconciliation engine.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Public variables (alphabetical)

// Move operation errors.
var (
	// ErrDestinationExists is returned when a same-named file already exists
	// at the destination. The source file is never overwritten.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrNotConfirmed is returned when Organize is invoked without
	// confirmation; no filesystem mutation happens in that case.
	ErrNotConfirmed = errors.New("organization not confirmed")
)

// Private functions (alphabetical)

// listTree returns a sorted recursive listing of root, with paths relative
// to root. Directories carry a trailing separator to keep the snapshot
// readable.
func listTree(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			rel += string(filepath.Separator)
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// moveFile relocates src into destDir keeping its base name. The destination
// directory is created on demand; a same-named destination file is surfaced
// as ErrDestinationExists rather than overwritten. On any failure the source
// file is left untouched.
func moveFile(src, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("error creating destination directory: %w", err)
	}

	dest := filepath.Join(destDir, filepath.Base(src))
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error checking destination: %w", err)
	}

	if err := os.Rename(src, dest); err != nil {
		return "", fmt.Errorf("error moving file: %w", err)
	}
	return dest, nil
}

// Public methods (alphabetical)

// Organize probes and classifies every video file directly under sourceDir
// and relocates each valid file to outputDir/<codec>/<bucket>_<WxH>/,
// preserving its name. Files that fail to probe or fail to move are left in
// place and recorded; a per-file failure never aborts the batch. The
// confirmation gate lives outside the core: when confirmed is false,
// ErrNotConfirmed is returned before any mutation. The report artifact,
// including a recursive snapshot of the resulting tree, is written into
// outputDir.
func (e *Engine) Organize(ctx context.Context, sourceDir, outputDir string, confirmed bool) (*OrganizationReport, error) {
	if !confirmed {
		return nil, ErrNotConfirmed
	}

	files, err := ListVideoFiles(sourceDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	report := &OrganizationReport{
		ReportID:     uuid.NewString(),
		GeneratedAt:  time.Now(),
		SourceDir:    sourceDir,
		OutputDir:    outputDir,
		Total:        len(files),
		MovedByCodec: make(map[string][]string),
	}

	for i, name := range files {
		srcPath := filepath.Join(sourceDir, name)
		result := e.Prober.ProbeFile(ctx, srcPath)
		outcome := MoveOutcome{FileName: name, SourcePath: srcPath, Probe: result}

		if !result.Valid() {
			outcome.Status = StatusFailedProbe
			report.Failed++
		} else {
			outcome.Bucket = Classify(result.Height)
			destDir := filepath.Join(outputDir, result.Codec, BucketDirName(result))
			dest, err := moveFile(srcPath, destDir)
			if err != nil {
				outcome.Status = StatusFailedMove
				outcome.Reason = err.Error()
				report.Failed++
			} else {
				outcome.Status = StatusMoved
				outcome.DestPath = dest
				report.Moved++
				report.MovedByCodec[result.Codec] = append(report.MovedByCodec[result.Codec], name)
			}
		}
		report.Outcomes = append(report.Outcomes, outcome)

		if e.Progress != nil {
			e.Progress(i+1, len(files), name)
		}
	}

	tree, err := listTree(outputDir)
	if err != nil {
		return nil, fmt.Errorf("error listing output directory: %w", err)
	}
	report.Tree = tree

	if err := WriteOrganizationReport(report, filepath.Join(outputDir, OrganizationReportFileName)); err != nil {
		return nil, fmt.Errorf("error writing organization report: %w", err)
	}

	return report, nil
}
