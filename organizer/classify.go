// Package organizer implements the classification and reconciliation engine:
// it turns raw probe output into stable resolution buckets, aggregates
// per-codec and per-bucket statistics across a scan, and drives idempotent
// file relocation into a codec/resolution directory hierarchy with a full
// audit trail.
package organizer

import (
	"fmt"

	"github.com/nmartins0611/videosort/ffmpeg"
)

// Public types (alphabetical)

// ResolutionBucket is one of the six ordered resolution categories derived
// from pixel height.
type ResolutionBucket string

// Public constants (alphabetical)
const (
	// Bucket1080p covers heights from 1080 up to (but excluding) 1440 pixels.
	Bucket1080p ResolutionBucket = "1080p"

	// Bucket2K covers heights from 1440 up to (but excluding) 2160 pixels.
	Bucket2K ResolutionBucket = "2K"

	// Bucket480p covers heights from 480 up to (but excluding) 720 pixels.
	Bucket480p ResolutionBucket = "480p"

	// Bucket4K covers heights of 2160 pixels and above.
	Bucket4K ResolutionBucket = "4K"

	// Bucket720p covers heights from 720 up to (but excluding) 1080 pixels.
	Bucket720p ResolutionBucket = "720p"

	// BucketSD covers heights below 480 pixels.
	BucketSD ResolutionBucket = "SD"
)

// Public functions (alphabetical)

// BucketDirName returns the directory name used for a probe result inside
// the organized hierarchy, e.g. "1080p_1920x1080".
func BucketDirName(r ffmpeg.ProbeResult) string {
	return fmt.Sprintf("%s_%dx%d", Classify(r.Height), r.Width, r.Height)
}

// BucketKey returns the statistics key for a probe result, e.g.
// "1080p (1920x1080)". Exact dimensions are part of the key, so two files in
// the same bucket at different dimensions are tracked separately.
func BucketKey(r ffmpeg.ProbeResult) string {
	return fmt.Sprintf("%s (%dx%d)", Classify(r.Height), r.Width, r.Height)
}

// Classify maps a pixel height to its resolution bucket. The thresholds are
// evaluated highest first; the ordering matters because each test is a
// greater-or-equal comparison. Classify is total over positive heights and
// fully deterministic.
func Classify(height int) ResolutionBucket {
	switch {
	case height >= 2160:
		return Bucket4K
	case height >= 1440:
		return Bucket2K
	case height >= 1080:
		return Bucket1080p
	case height >= 720:
		return Bucket720p
	case height >= 480:
		return Bucket480p
	default:
		return BucketSD
	}
}
