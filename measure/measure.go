// Package measure is an env-gated size and event counter. Set
// MEASURE_SIZES=1 to enable it; when disabled every call is a no-op, so
// the hot paths stay free of accounting cost.
package measure

import (
	"fmt"
	"os"
	"sync"
)

var Enabled bool
var Global Counter

func init() {
	Enabled = os.Getenv("MEASURE_SIZES") == "1"
	Global = Counter{m: make(map[string]int64)}
}

// CoeffBytes is the in-memory footprint of one canonical coefficient.
const CoeffBytes = 4

// BytesPolyVector returns the coefficient footprint of a vector of count
// degree-n polynomials.
func BytesPolyVector(count, n int) int64 {
	return int64(count) * int64(n) * CoeffBytes
}

// Human renders a byte count with a binary-prefix unit.
func Human(n int64) string {
	const (
		KiB = 1024
		MiB = 1024 * KiB
	)
	switch {
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Counter accumulates labelled tallies. The zero value is not usable;
// go through Global.
type Counter struct {
	mu sync.Mutex
	m  map[string]int64
}

// Add accumulates n under key. No-op unless Enabled.
func (c *Counter) Add(key string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	c.m[key] += n
	c.mu.Unlock()
}

// SnapshotAndReset returns the accumulated tallies and clears them.
func (c *Counter) SnapshotAndReset() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.m))
	for k, v := range c.m {
		out[k] = v
	}
	c.m = make(map[string]int64)
	return out
}

// Dump prints the current tallies to stdout. No-op unless Enabled.
func (c *Counter) Dump() {
	if !Enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Println("[measure] Size report:")
	for k, v := range c.m {
		fmt.Printf("[measure] %s = %s\n", k, Human(v))
	}
}
