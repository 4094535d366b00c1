// Package organizer implements the classification and reconciliation engine.
package organizer

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"
)

// Private constants (alphabetical)
const (
	// reportBanner separates the sections of a report artifact.
	reportBanner = "==========================================="
)

// Private functions (alphabetical)

// sortedKeys returns the keys of counts in lexical order so report sections
// are deterministic across runs.
func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// writeCountSection writes a banner-titled section listing each key with its
// count. An empty mapping still renders the section header, so a scan with
// zero observations produces a complete report.
func writeCountSection(w *tabwriter.Writer, title string, counts map[string]int) {
	fmt.Fprintln(w, reportBanner)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, reportBanner)
	for _, key := range sortedKeys(counts) {
		fmt.Fprintf(w, "%s:\t%d\n", key, counts[key])
	}
	fmt.Fprintln(w)
}

// writeReportFooter writes the footer with metadata about when the report
// was generated.
func writeReportFooter(w *tabwriter.Writer, generatedAt time.Time) {
	fmt.Fprintln(w, reportBanner)
	fmt.Fprintf(w, "Report Generated: %s\n", generatedAt.Format(time.RFC1123))
	fmt.Fprintln(w, reportBanner)
}

// writeReportHeader writes the banner-titled header block shared by both
// report artifacts.
func writeReportHeader(w *tabwriter.Writer, title, reportID string, generatedAt time.Time) {
	fmt.Fprintln(w, reportBanner)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, reportBanner)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Report ID:\t%s\n", reportID)
	fmt.Fprintf(w, "Generated:\t%s\n", generatedAt.Format(time.RFC1123))
}

// writeToFile creates path and hands a tabwriter over it to write, flushing
// and closing when write returns.
func writeToFile(path string, write func(w *tabwriter.Writer)) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer file.Close()

	w := tabwriter.NewWriter(file, 0, 0, 2, ' ', 0)
	write(w)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error flushing report: %w", err)
	}
	return nil
}

// Public functions (alphabetical)

// WriteOrganizationReport serializes an organization report to a UTF-8 text
// artifact at path: header block, per-file outcomes, summary counts,
// per-codec moved file lists, and the recursive directory tree snapshot.
func WriteOrganizationReport(report *OrganizationReport, path string) error {
	return writeToFile(path, func(w *tabwriter.Writer) {
		writeReportHeader(w, "VIDEO ORGANIZATION REPORT", report.ReportID, report.GeneratedAt)
		fmt.Fprintf(w, "Source Directory:\t%s\n", report.SourceDir)
		fmt.Fprintf(w, "Output Directory:\t%s\n", report.OutputDir)
		fmt.Fprintln(w)

		fmt.Fprintln(w, reportBanner)
		fmt.Fprintln(w, "FILE OUTCOMES")
		fmt.Fprintln(w, reportBanner)
		for _, outcome := range report.Outcomes {
			switch outcome.Status {
			case StatusMoved:
				fmt.Fprintf(w, "%s:\t%s [%s %dx%d] -> %s\n",
					outcome.Status, outcome.FileName, outcome.Probe.Codec,
					outcome.Probe.Width, outcome.Probe.Height, outcome.DestPath)
			case StatusFailedMove:
				fmt.Fprintf(w, "%s:\t%s (%s)\n", outcome.Status, outcome.FileName, outcome.Reason)
			default:
				fmt.Fprintf(w, "%s:\t%s\n", outcome.Status, outcome.FileName)
			}
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, reportBanner)
		fmt.Fprintln(w, "SUMMARY")
		fmt.Fprintln(w, reportBanner)
		fmt.Fprintf(w, "Total Files:\t%d\n", report.Total)
		fmt.Fprintf(w, "Moved:\t%d\n", report.Moved)
		fmt.Fprintf(w, "Failed:\t%d\n", report.Failed)
		fmt.Fprintln(w)

		fmt.Fprintln(w, reportBanner)
		fmt.Fprintln(w, "MOVED FILES BY CODEC")
		fmt.Fprintln(w, reportBanner)
		codecs := make([]string, 0, len(report.MovedByCodec))
		for codec := range report.MovedByCodec {
			codecs = append(codecs, codec)
		}
		sort.Strings(codecs)
		for _, codec := range codecs {
			fmt.Fprintf(w, "%s:\n", codec)
			for _, name := range report.MovedByCodec[codec] {
				fmt.Fprintf(w, "  %s\n", name)
			}
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, reportBanner)
		fmt.Fprintln(w, "OUTPUT DIRECTORY TREE")
		fmt.Fprintln(w, reportBanner)
		for _, entry := range report.Tree {
			fmt.Fprintf(w, "%s\n", entry)
		}
		fmt.Fprintln(w)

		writeReportFooter(w, report.GeneratedAt)
	})
}

// WriteScanReport serializes a scan report to a UTF-8 text artifact at path:
// header block, per-file entries, summary counts, and the per-codec and
// per-bucket breakdowns.
func WriteScanReport(report *ScanReport, path string) error {
	return writeToFile(path, func(w *tabwriter.Writer) {
		writeReportHeader(w, "VIDEO SCAN REPORT", report.ReportID, report.GeneratedAt)
		fmt.Fprintf(w, "Source Directory:\t%s\n", report.SourceDir)
		fmt.Fprintln(w)

		fmt.Fprintln(w, reportBanner)
		fmt.Fprintln(w, "SCANNED FILES")
		fmt.Fprintln(w, reportBanner)
		for _, record := range report.Records {
			if record.Failed {
				fmt.Fprintf(w, "failed:\t%s\n", record.FileName)
				continue
			}
			fmt.Fprintf(w, "ok:\t%s [%s %s]\n",
				record.FileName, record.Probe.Codec, BucketKey(record.Probe))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, reportBanner)
		fmt.Fprintln(w, "SUMMARY")
		fmt.Fprintln(w, reportBanner)
		fmt.Fprintf(w, "Total Files:\t%d\n", report.Total)
		fmt.Fprintf(w, "Successful:\t%d\n", report.Success)
		fmt.Fprintf(w, "Failed:\t%d\n", report.Failed)
		fmt.Fprintln(w)

		writeCountSection(w, "FILES BY CODEC", report.CodecCounts)
		writeCountSection(w, "FILES BY RESOLUTION", report.BucketCounts)

		writeReportFooter(w, report.GeneratedAt)
	})
}
