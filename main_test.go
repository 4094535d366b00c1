package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/nmartins0611/videosort/organizer"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli/v2"
)

// MainTestSuite defines a test suite for the main package functionality.
type MainTestSuite struct {
	suite.Suite
	tempDir string // Temporary directory for test files
}

// SetupSuite prepares the test environment by creating a temporary directory.
func (s *MainTestSuite) SetupSuite() {
	// Save original color setting and disable color for tests
	originalNoColor := color.NoColor
	color.NoColor = true

	tempDir, err := os.MkdirTemp("", "videosort-test")
	require.NoError(s.T(), err)
	s.tempDir = tempDir

	s.T().Cleanup(func() {
		color.NoColor = originalNoColor
	})
}

// TearDownSuite cleans up the test environment by removing the temporary directory.
func (s *MainTestSuite) TearDownSuite() {
	os.RemoveAll(s.tempDir)
}

// newTestContext builds a cli.Context carrying the given positional
// arguments, mirroring how the commands receive them.
func (s *MainTestSuite) newTestContext(args ...string) *cli.Context {
	app := &cli.App{Name: "videosort"}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(s.T(), set.Parse(args))
	return cli.NewContext(app, set, nil)
}

// TestPrintSummaries tests that the summary printers handle populated and
// empty reports without panicking while color output is disabled.
func (s *MainTestSuite) TestPrintSummaries() {
	scanReport := &organizer.ScanReport{
		Total:        3,
		Success:      2,
		Failed:       1,
		CodecCounts:  map[string]int{"h264": 1, "hevc": 1},
		BucketCounts: map[string]int{"4K (3840x2160)": 1, "1080p (1920x1080)": 1},
	}
	printScanSummary(scanReport)
	printScanSummary(&organizer.ScanReport{})

	orgReport := &organizer.OrganizationReport{
		Total:  2,
		Moved:  1,
		Failed: 1,
		Outcomes: []organizer.MoveOutcome{
			{FileName: "ok.mp4", Status: organizer.StatusMoved},
			{FileName: "bad.avi", Status: organizer.StatusFailedProbe},
		},
		MovedByCodec: map[string][]string{"h264": {"ok.mp4"}},
	}
	printOrganizationSummary(orgReport)
	printOrganizationSummary(&organizer.OrganizationReport{})
}

// TestSortedCountKeys tests that breakdown keys are rendered in a stable
// lexical order.
func (s *MainTestSuite) TestSortedCountKeys() {
	keys := sortedCountKeys(map[string]int{"hevc": 2, "av1": 1, "h264": 3})
	s.Equal([]string{"av1", "h264", "hevc"}, keys)

	s.Empty(sortedCountKeys(nil))
}

// TestSourceDirArg tests validation of the SOURCE_DIR argument: missing
// arguments, missing directories, and plain files are all rejected.
func (s *MainTestSuite) TestSourceDirArg() {
	// Valid directory resolves to an absolute path
	dir, err := sourceDirArg(s.newTestContext(s.tempDir))
	s.NoError(err)
	s.True(filepath.IsAbs(dir))

	// Missing argument
	_, err = sourceDirArg(s.newTestContext())
	s.Error(err)

	// Nonexistent directory
	_, err = sourceDirArg(s.newTestContext(filepath.Join(s.tempDir, "missing")))
	s.Error(err)

	// A plain file is not a directory
	filePath := filepath.Join(s.tempDir, "file.mp4")
	require.NoError(s.T(), os.WriteFile(filePath, []byte("x"), 0644))
	_, err = sourceDirArg(s.newTestContext(filePath))
	s.Error(err)
}

// TestMainTestSuite runs the main package test suite.
func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}
