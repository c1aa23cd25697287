package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label. Intended use
// is deferring it at the top of an operation:
//
//	defer prof.Track(time.Now(), "Sign")
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// TotalFor sums the recorded durations carrying the given label without
// clearing the record.
func TotalFor(label string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for _, e := range record {
		if e.Label == label {
			total += e.Dur
		}
	}
	return total
}
