// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
)

// Public methods (alphabetical)

// ProbeFile runs FFprobe against the given file and returns the codec name
// and pixel dimensions of its first video stream. A single JSON query covers
// all three fields. Every failure mode collapses to the zero ProbeResult:
// a non-zero exit, a timeout, unparseable output, or a container without a
// video stream all yield an invalid result rather than an error, so a broken
// tool installation or a corrupt file can never abort a batch.
func (p *Prober) ProbeFile(ctx context.Context, filePath string) ProbeResult {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return ProbeResult{}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Run ffprobe with JSON output format, restricted to video streams
	cmd := exec.CommandContext(ctx, p.FFprobePath,
		"-v", "quiet",
		"-select_streams", "v:0",
		"-print_format", "json",
		"-show_streams",
		absPath)

	output, err := cmd.Output()
	if err != nil {
		return ProbeResult{}
	}

	return ParseProbeOutput(output)
}

// Public functions (alphabetical)

// ParseProbeOutput converts raw FFprobe JSON output into a ProbeResult.
// It picks the first stream with codec type "video" (or the first stream
// outright when type information is absent, as with -select_streams).
// Exported so parsing can be tested without a real FFprobe binary.
func ParseProbeOutput(data []byte) ProbeResult {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return ProbeResult{}
	}

	for _, stream := range raw.Streams {
		if stream.CodecType != "" && stream.CodecType != "video" {
			continue
		}
		return ProbeResult{
			Codec:  stream.CodecName,
			Width:  stream.Width,
			Height: stream.Height,
		}
	}

	return ProbeResult{}
}
