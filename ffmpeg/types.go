// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

// Private types (alphabetical)

// ffprobeOutput represents the top-level JSON structure returned by FFprobe
// when invoked with -show_streams. Only the fields needed to identify the
// first video stream are mapped.
type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

// ffprobeStream represents a single stream entry in FFprobe's JSON output.
type ffprobeStream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Public types (alphabetical)

// FFmpegInfo contains information about the FFmpeg installation
type FFmpegInfo struct {
	// Installed is true if FFmpeg is found in the system
	Installed bool
	// Path is the full path to the FFmpeg executable
	Path string
	// Version is the version of FFmpeg
	Version string
}

// ProbeResult holds the container-level metadata extracted for one video
// file: the codec name and pixel dimensions of its first video stream.
// The zero ProbeResult is the sentinel for a failed probe; callers must
// check Valid before using the fields.
type ProbeResult struct {
	// Codec is the codec name of the first video stream (e.g. "h264").
	Codec string

	// Width is the pixel width of the first video stream.
	Width int

	// Height is the pixel height of the first video stream.
	Height int
}

// Prober provides methods to probe video files for information
type Prober struct {
	// FFprobePath is the path to the FFprobe executable
	FFprobePath string
}

// Public methods (alphabetical)

// Valid reports whether the probe produced usable metadata. A result is
// valid only when the codec name is present and both dimensions are
// positive; anything less classifies the file as failed.
func (r ProbeResult) Valid() bool {
	return r.Codec != "" && r.Width > 0 && r.Height > 0
}
