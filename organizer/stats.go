// Package organizer implements the classification and reconciliation engine.
package organizer

// Public types (alphabetical)

// Aggregator accumulates per-codec and per-bucket counts across one scan or
// organize invocation. Increment is the only mutation; each invocation
// constructs its own fresh Aggregator, so no merge or reset is needed.
// An Aggregator with zero observations renders empty sections rather than
// erroring.
type Aggregator struct {
	codecCounts  map[string]int
	bucketCounts map[string]int
	total        int
	failed       int
}

// Public functions (alphabetical)

// NewAggregator creates a ready-to-use Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		codecCounts:  make(map[string]int),
		bucketCounts: make(map[string]int),
	}
}

// Public methods (alphabetical)

// BucketCounts returns the bucket-key to count mapping.
func (a *Aggregator) BucketCounts() map[string]int {
	return a.bucketCounts
}

// CodecCounts returns the codec to count mapping.
func (a *Aggregator) CodecCounts() map[string]int {
	return a.codecCounts
}

// Failed returns the number of recorded failures.
func (a *Aggregator) Failed() int {
	return a.failed
}

// RecordFailure counts a file whose probe produced no usable metadata.
func (a *Aggregator) RecordFailure() {
	a.total++
	a.failed++
}

// RecordSuccess counts a file under its codec and bucket key.
func (a *Aggregator) RecordSuccess(codec, bucketKey string) {
	a.total++
	a.codecCounts[codec]++
	a.bucketCounts[bucketKey]++
}

// Success returns the number of successfully classified files. The counts
// always reconcile: Total() == Success() + Failed().
func (a *Aggregator) Success() int {
	return a.total - a.failed
}

// Total returns the number of recorded observations.
func (a *Aggregator) Total() int {
	return a.total
}
