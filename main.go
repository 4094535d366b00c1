// Package main provides the entry point for the videosort application.
// It scans directories of video files, classifies each file by codec and
// resolution, and can reorganize files into a codec/resolution hierarchy.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/nmartins0611/videosort/ffmpeg"
	"github.com/nmartins0611/videosort/organizer"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
)

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'github.com/nmartins0611/videosort.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// confirmOrganize asks the user to confirm the reorganization on the
// terminal. Only an explicit "y" or "yes" answer counts as consent.
func confirmOrganize(sourceDir, outputDir string) bool {
	warnStyle := color.New(color.FgYellow, color.Bold)
	regularStyle := color.New(color.Reset)

	warnStyle.Println("⚠️ This will move files out of the source directory.")
	regularStyle.Printf("   Source: %s\n", sourceDir)
	regularStyle.Printf("   Output: %s\n", outputDir)
	regularStyle.Printf("Proceed? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// newEngine verifies the FFmpeg installation and builds the processing
// engine with a progress bar attached. A missing or broken FFmpeg halts the
// run here, before any file is touched.
func newEngine(description string) (*organizer.Engine, error) {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	ffmpegInfo, err := ffmpeg.FindFFmpeg()
	if err != nil {
		return nil, fmt.Errorf("error finding FFmpeg: %w", err)
	}

	regularStyle.Printf("🔧 Using FFmpeg at ")
	valueStyle.Printf("%s\n", ffmpegInfo.Path)
	regularStyle.Printf("🔖 FFmpeg version: ")
	valueStyle.Printf("%s\n\n", ffmpegInfo.Version)

	prober, err := ffmpeg.NewProber(ffmpegInfo)
	if err != nil {
		return nil, fmt.Errorf("error creating prober: %w", err)
	}

	var bar *progressbar.ProgressBar
	return &organizer.Engine{
		Prober: prober,
		Progress: func(current, total int, fileName string) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription(description),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Add(1)
		},
	}, nil
}

// organizeCommand implements the organize command. It enumerates the video
// files in the source directory, asks for confirmation unless --yes was
// given, relocates each classified file into the codec/resolution hierarchy,
// and prints the outcome summary.
func organizeCommand(c *cli.Context) error {
	errorStyle := color.New(color.FgRed)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)

	sourceDir, err := sourceDirArg(c)
	if err != nil {
		return err
	}

	outputDir := c.String("output")
	if outputDir == "" {
		outputDir = filepath.Join(sourceDir, "organized")
	}
	if outputDir, err = filepath.Abs(outputDir); err != nil {
		return fmt.Errorf("error resolving output path: %w", err)
	}

	engine, err := newEngine("Organizing")
	if err != nil {
		return err
	}

	confirmed := c.Bool("yes")
	if !confirmed {
		confirmed = confirmOrganize(sourceDir, outputDir)
	}
	if !confirmed {
		regularStyle.Println("Nothing was moved.")
		return nil
	}

	report, err := engine.Organize(context.Background(), sourceDir, outputDir, confirmed)
	if err != nil {
		errorStyle.Printf("❌ Organization failed: %v\n", err)
		return err
	}

	printOrganizationSummary(report)
	successStyle.Printf("\n✅ Organization report saved to %s\n",
		filepath.Join(outputDir, organizer.OrganizationReportFileName))
	return nil
}

// printOrganizationSummary prints the outcome counts and the per-codec moved
// file lists with proper styling and pluralization.
func printOrganizationSummary(report *organizer.OrganizationReport) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	pluralizeClient := pluralize.NewClient()

	summaryStyle.Println("\n📦 ORGANIZATION SUMMARY")
	regularStyle.Println("----------------")
	regularStyle.Printf("🎞️ %d ", report.Total)
	valueStyle.Println(pluralizeClient.Pluralize("video file", report.Total, false))
	regularStyle.Printf("✅ %d moved\n", report.Moved)
	regularStyle.Printf("❌ %d failed\n", report.Failed)

	for _, outcome := range report.Outcomes {
		if outcome.Status == organizer.StatusMoved {
			continue
		}
		regularStyle.Printf("   ⚠️ %s: %s\n", outcome.Status, outcome.FileName)
	}
}

// printScanSummary prints the scan counts and the per-codec and per-bucket
// breakdowns with proper styling and pluralization.
func printScanSummary(report *organizer.ScanReport) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	pluralizeClient := pluralize.NewClient()

	summaryStyle.Println("\n📊 SCAN SUMMARY")
	regularStyle.Println("----------------")
	regularStyle.Printf("🎞️ %d ", report.Total)
	valueStyle.Println(pluralizeClient.Pluralize("video file", report.Total, false))
	regularStyle.Printf("✅ %d classified\n", report.Success)
	regularStyle.Printf("❌ %d failed\n", report.Failed)
	for _, record := range report.Records {
		if record.Failed {
			regularStyle.Printf("   ⚠️ failed: %s\n", record.FileName)
		}
	}

	summaryStyle.Println("\nℹ️ BY CODEC")
	regularStyle.Println("----------------")
	for _, codec := range sortedCountKeys(report.CodecCounts) {
		regularStyle.Printf("   %s: ", codec)
		valueStyle.Printf("%d\n", report.CodecCounts[codec])
	}

	summaryStyle.Println("\nℹ️ BY RESOLUTION")
	regularStyle.Println("----------------")
	for _, bucket := range sortedCountKeys(report.BucketCounts) {
		regularStyle.Printf("   %s: ", bucket)
		valueStyle.Printf("%d\n", report.BucketCounts[bucket])
	}
}

// scanCommand implements the scan command. It probes and classifies every
// video file in the source directory without moving anything, writes the
// report artifact, and prints the summary.
func scanCommand(c *cli.Context) error {
	errorStyle := color.New(color.FgRed)
	successStyle := color.New(color.FgGreen)

	sourceDir, err := sourceDirArg(c)
	if err != nil {
		return err
	}

	engine, err := newEngine("Scanning")
	if err != nil {
		return err
	}

	report, err := engine.Scan(context.Background(), sourceDir)
	if err != nil {
		errorStyle.Printf("❌ Scan failed: %v\n", err)
		return err
	}

	printScanSummary(report)
	successStyle.Printf("\n✅ Scan report saved to %s\n",
		filepath.Join(sourceDir, organizer.ScanReportFileName))
	return nil
}

// sortedCountKeys returns the keys of counts in lexical order.
func sortedCountKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// sourceDirArg extracts and validates the SOURCE_DIR argument.
func sourceDirArg(c *cli.Context) (string, error) {
	errorStyle := color.New(color.FgRed)
	regularStyle := color.New(color.Reset)

	if c.NArg() < 1 {
		errorStyle.Printf("❌ Error: missing required argument: SOURCE_DIR\n\n")
		regularStyle.Printf("Usage: %s %s SOURCE_DIR\n", c.App.Name, c.Command.Name)
		regularStyle.Printf("Run '%s --help' for more information.\n", c.App.Name)
		return "", fmt.Errorf("missing required argument: SOURCE_DIR")
	}

	absPath, err := filepath.Abs(c.Args().Get(0))
	if err != nil {
		return "", fmt.Errorf("error resolving path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("directory not found: %s", absPath)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}
	return absPath, nil
}

func versionPrinter(c *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🎬 videosort %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// main is the entry point of the application.
// It parses command-line arguments, validates input, and dispatches to the
// scan or organize command.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	app := &cli.App{
		Name:  "videosort",
		Usage: "A tool for classifying and organizing video files by codec and resolution",
		Description: "videosort probes video files with FFprobe, classifies each file into a " +
			"resolution bucket, and either reports the classification or reorganizes the " +
			"files into a codec/resolution directory hierarchy.",
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "Probe and classify video files without moving anything",
				ArgsUsage: "SOURCE_DIR",
				Action:    scanCommand,
			},
			{
				Name:      "organize",
				Usage:     "Relocate video files into a codec/resolution hierarchy",
				ArgsUsage: "SOURCE_DIR",
				Action:    organizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory where organized files are placed",
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
