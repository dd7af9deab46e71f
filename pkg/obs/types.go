package obs

import "fmt"

// SampleKey identifies one observation sample: the set of records captured
// for every active agent at a single (episode, step) pair.
type SampleKey struct {
	// Episode is the simulation run number.
	Episode int64

	// Step is the time index within the episode.
	Step int64
}

// String returns the key in "episode/step" form for logs and messages.
func (k SampleKey) String() string {
	return fmt.Sprintf("%d/%d", k.Episode, k.Step)
}

// Record is one agent's stored observation, carrying the raw blobs exactly
// as they sit in the store.
//
// Shape is a JSON-encoded list of positive dimension sizes (e.g. "[2,3,4]").
// Obs is a zlib-compressed buffer of little-endian IEEE-754 float64 values
// in row-major order; its decompressed element count must equal the product
// of the shape dimensions.
type Record struct {
	Episode int64
	Step    int64
	Agent   string
	Shape   []byte
	Obs     []byte
}

// Key returns the sample key this record belongs to.
func (r *Record) Key() SampleKey {
	return SampleKey{Episode: r.Episode, Step: r.Step}
}
