// Package organizer implements the classification and reconciliation engine.
package organizer

import (
	"context"
	"time"

	"github.com/nmartins0611/videosort/ffmpeg"
)

// Public constants (alphabetical)
const (
	// OrganizationReportFileName is the report artifact written into the
	// output directory by Organize.
	OrganizationReportFileName = "video_organization_report.txt"

	// ScanReportFileName is the report artifact written into the source
	// directory by Scan.
	ScanReportFileName = "video_scan_report.txt"
)

// MoveStatus values (alphabetical)
const (
	// StatusFailedMove marks a file whose relocation failed; the source file
	// is left untouched.
	StatusFailedMove MoveStatus = "failed-move"

	// StatusFailedProbe marks a file whose metadata could not be extracted;
	// it is never moved.
	StatusFailedProbe MoveStatus = "failed-probe"

	// StatusMoved marks a file that was successfully relocated.
	StatusMoved MoveStatus = "moved"
)

// Public types (alphabetical)

// Engine orchestrates probing, classification, and relocation over one
// directory of video files. Each invocation of Scan or Organize owns a fresh
// aggregator and report; no state is shared across invocations except the
// filesystem itself.
type Engine struct {
	// Prober extracts codec and dimension metadata per file.
	Prober Prober

	// Progress, when non-nil, is called after each file is processed.
	// It keeps terminal feedback out of the core logic.
	Progress ProgressFunc
}

// MoveOutcome records the terminal status of one file's processing within a
// single organize invocation.
type MoveOutcome struct {
	// FileName is the base name of the processed file.
	FileName string

	// SourcePath is the original path of the file.
	SourcePath string

	// DestPath is the destination path; empty unless the file was moved.
	DestPath string

	// Probe is the metadata extracted for the file; invalid for
	// failed-probe outcomes.
	Probe ffmpeg.ProbeResult

	// Bucket is the resolution bucket; empty for failed-probe outcomes.
	Bucket ResolutionBucket

	// Status is the terminal status of the file.
	Status MoveStatus

	// Reason holds the failure detail for failed-move outcomes.
	Reason string
}

// MoveStatus is the terminal status of one file in organize mode.
type MoveStatus string

// OrganizationReport aggregates all move outcomes for one organize
// invocation, including a snapshot of the resulting directory tree.
type OrganizationReport struct {
	// ReportID uniquely identifies this invocation.
	ReportID string

	// GeneratedAt is the time the report was built.
	GeneratedAt time.Time

	// SourceDir is the scanned directory.
	SourceDir string

	// OutputDir is the root of the organized hierarchy.
	OutputDir string

	// Outcomes lists the per-file outcomes in processing order.
	Outcomes []MoveOutcome

	// Total is the number of candidate files considered.
	Total int

	// Moved is the number of files successfully relocated.
	Moved int

	// Failed counts failed-probe and failed-move outcomes together.
	Failed int

	// MovedByCodec maps a codec name to the file names moved under it.
	MovedByCodec map[string][]string

	// Tree is a sorted recursive listing of OutputDir after the run,
	// with paths relative to OutputDir.
	Tree []string
}

// Prober extracts codec and dimension metadata for a single file. This
// interface allows the engine to be tested without a real FFprobe binary.
type Prober interface {
	// ProbeFile returns the metadata for the file at path. Failures are
	// reported through an invalid ProbeResult, never an error.
	ProbeFile(ctx context.Context, path string) ffmpeg.ProbeResult
}

// ProgressFunc receives per-file progress: the 1-based index of the file
// just processed, the total candidate count, and the file's base name.
type ProgressFunc func(current, total int, fileName string)

// ScanRecord records the result of probing and classifying one file during
// a scan invocation.
type ScanRecord struct {
	// FileName is the base name of the scanned file.
	FileName string

	// Probe is the metadata extracted for the file; invalid when Failed.
	Probe ffmpeg.ProbeResult

	// Bucket is the resolution bucket; empty when Failed.
	Bucket ResolutionBucket

	// Failed is true when the probe produced no usable metadata.
	Failed bool
}

// ScanReport aggregates all scan records for one scan invocation.
type ScanReport struct {
	// ReportID uniquely identifies this invocation.
	ReportID string

	// GeneratedAt is the time the report was built.
	GeneratedAt time.Time

	// SourceDir is the scanned directory.
	SourceDir string

	// Records lists the per-file results in processing order.
	Records []ScanRecord

	// Total is the number of candidate files considered.
	Total int

	// Success is the number of files with valid metadata.
	Success int

	// Failed is the number of files whose probe failed.
	Failed int

	// CodecCounts maps a codec name to the number of files using it.
	CodecCounts map[string]int

	// BucketCounts maps a bucket key (bucket plus exact dimensions) to the
	// number of files classified under it.
	BucketCounts map[string]int
}
