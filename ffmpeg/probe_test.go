// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ProberTestSuite is a test suite for the Prober type.
// It tests the functionality for probing video files and parsing metadata.
type ProberTestSuite struct {
	suite.Suite
	ffmpegInfo *FFmpegInfo // FFmpeg information for the test environment
	prober     *Prober     // Prober instance under test
}

// SetupTest sets up the test environment before each test.
// It initializes a mock FFmpegInfo and a Prober instance.
func (suite *ProberTestSuite) SetupTest() {
	suite.ffmpegInfo = &FFmpegInfo{
		Installed: true,
		Path:      "/usr/bin/ffmpeg",
		Version:   "4.2.2",
	}
	var err error
	suite.prober, err = NewProber(suite.ffmpegInfo)
	suite.NoError(err)
}

// TestGetDefaultTimeout tests that the package exposes a sane probe timeout.
func (suite *ProberTestSuite) TestGetDefaultTimeout() {
	suite.Equal(30*time.Second, GetDefaultTimeout())
}

// TestNewProber tests the NewProber constructor function.
// It verifies that the constructor properly handles various input conditions
// and correctly initializes the Prober.
func (suite *ProberTestSuite) TestNewProber() {
	// Test with valid FFmpegInfo
	prober, err := NewProber(suite.ffmpegInfo)
	suite.NoError(err)
	suite.NotNil(prober)
	suite.Equal("/usr/bin/ffprobe", prober.FFprobePath)

	// Test with nil FFmpegInfo
	prober, err = NewProber(nil)
	suite.Error(err)
	suite.Nil(prober)

	// Test with FFmpegInfo where Installed is false
	prober, err = NewProber(&FFmpegInfo{Installed: false})
	suite.Error(err)
	suite.Nil(prober)
}

// TestParseProbeOutput tests that FFprobe JSON output is converted into the
// expected ProbeResult for both healthy and degenerate inputs.
func (suite *ProberTestSuite) TestParseProbeOutput() {
	// Full stream entry with explicit codec type
	result := ParseProbeOutput([]byte(`{
		"streams": [
			{"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080}
		]
	}`))
	suite.True(result.Valid())
	suite.Equal("h264", result.Codec)
	suite.Equal(1920, result.Width)
	suite.Equal(1080, result.Height)

	// Audio streams before the video stream are skipped
	result = ParseProbeOutput([]byte(`{
		"streams": [
			{"index": 0, "codec_name": "aac", "codec_type": "audio"},
			{"index": 1, "codec_name": "hevc", "codec_type": "video", "width": 3840, "height": 2160}
		]
	}`))
	suite.True(result.Valid())
	suite.Equal("hevc", result.Codec)
	suite.Equal(2160, result.Height)

	// -select_streams output omits nothing but carries only the video stream
	result = ParseProbeOutput([]byte(`{
		"streams": [
			{"index": 0, "codec_name": "vp9", "codec_type": "video", "width": 1280, "height": 720}
		]
	}`))
	suite.True(result.Valid())
	suite.Equal("vp9", result.Codec)

	// No streams at all
	result = ParseProbeOutput([]byte(`{"streams": []}`))
	suite.False(result.Valid())

	// Audio-only container
	result = ParseProbeOutput([]byte(`{
		"streams": [{"index": 0, "codec_name": "mp3", "codec_type": "audio"}]
	}`))
	suite.False(result.Valid())

	// Malformed JSON
	result = ParseProbeOutput([]byte(`not json`))
	suite.False(result.Valid())

	// Empty output
	result = ParseProbeOutput(nil)
	suite.False(result.Valid())
}

// TestProbeResultValid tests the validity rules for probe results: codec,
// width, and height must all be present.
func (suite *ProberTestSuite) TestProbeResultValid() {
	suite.True(ProbeResult{Codec: "h264", Width: 1920, Height: 1080}.Valid())
	suite.False(ProbeResult{}.Valid())
	suite.False(ProbeResult{Codec: "h264", Width: 1920}.Valid())
	suite.False(ProbeResult{Codec: "h264", Height: 1080}.Valid())
	suite.False(ProbeResult{Width: 1920, Height: 1080}.Valid())
	suite.False(ProbeResult{Codec: "h264", Width: -1, Height: 1080}.Valid())
}

// TestProberTestSuite runs the Prober test suite.
func TestProberTestSuite(t *testing.T) {
	suite.Run(t, new(ProberTestSuite))
}
