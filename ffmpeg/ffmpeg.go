// Package ffmpeg provides functionality for detecting and working with FFmpeg.
// It offers capabilities for locating the FFmpeg installation on the host
// system and probing video files for container-level metadata such as codec
// names and pixel dimensions.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"time"
)

// Private constants (alphabetical)
const (
	// defaultTimeout is the standard timeout for FFprobe invocations.
	// Probes that exceed this timeout are terminated and reported as failed.
	defaultTimeout = 30 * time.Second
)

// Private variables (alphabetical)

// ffmpegVersionRegex is used to detect FFmpeg version from version string.
// It extracts the numeric version (e.g., 4.4.1) from FFmpeg's version output.
var ffmpegVersionRegex = regexp.MustCompile(`version\s+(?:n)?(\d+\.\d+(?:\.\d+)?)`)

// Private functions (alphabetical)

// checkFFmpegExistence confirms if FFmpeg is installed on the system by
// searching for the executable. It first looks in the user's PATH and falls
// back to common installation directories for the current operating system.
func checkFFmpegExistence() (string, bool) {
	// Try to find FFmpeg in PATH
	pathCmd, err := exec.LookPath("ffmpeg")
	if err == nil {
		return pathCmd, true
	}

	// Get common paths and check each one
	for _, path := range getCommonInstallPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// getCommonInstallPaths returns typical FFmpeg installation locations for
// the current operating system.
func getCommonInstallPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			"C:\\Program Files\\FFmpeg\\bin\\ffmpeg.exe",
			"C:\\Program Files (x86)\\FFmpeg\\bin\\ffmpeg.exe",
		}
	case "darwin":
		return []string{
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/opt/local/bin/ffmpeg",
		}
	default: // Linux and others
		return []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/ffmpeg/bin/ffmpeg",
		}
	}
}

// Public functions (alphabetical)

// FindFFmpeg locates the FFmpeg installation and returns a populated
// FFmpegInfo struct. It returns an error when FFmpeg cannot be found or
// cannot be executed; the tool check at startup relies on this so that a
// missing installation halts the run before any files are processed.
func FindFFmpeg() (*FFmpegInfo, error) {
	ffmpegPath, found := checkFFmpegExistence()
	if !found {
		return &FFmpegInfo{Installed: false}, fmt.Errorf("ffmpeg not found in PATH or common install locations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Execute FFmpeg to get version
	cmd := exec.CommandContext(ctx, ffmpegPath, "-version")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return &FFmpegInfo{Path: ffmpegPath, Installed: false}, fmt.Errorf("failed to execute FFmpeg: %w", err)
	}

	// Extract version number
	version := ""
	matches := ffmpegVersionRegex.FindStringSubmatch(out.String())
	if len(matches) >= 2 {
		version = matches[1]
	}

	return &FFmpegInfo{
		Path:      ffmpegPath,
		Version:   version,
		Installed: true,
	}, nil
}

// GetDefaultTimeout returns the standard timeout duration for FFprobe
// operations. Applications can use this when creating contexts or setting
// command timeouts.
func GetDefaultTimeout() time.Duration {
	return defaultTimeout
}

// NewProber creates a new Prober instance from the given FFmpegInfo.
// It assumes FFprobe is located in the same directory as FFmpeg and returns
// an error when the FFmpeg installation is missing or incomplete.
func NewProber(ffmpegInfo *FFmpegInfo) (*Prober, error) {
	if ffmpegInfo == nil || !ffmpegInfo.Installed {
		return nil, fmt.Errorf("ffmpeg is not installed or not available")
	}

	ffprobePath := filepath.Join(filepath.Dir(ffmpegInfo.Path), "ffprobe")
	if runtime.GOOS == "windows" {
		ffprobePath += ".exe"
	}

	return &Prober{FFprobePath: ffprobePath}, nil
}
