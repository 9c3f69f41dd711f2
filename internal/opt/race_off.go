//go:build !race

package opt

// Race_ reports whether the race detector is enabled.
// Stress tests scale their iteration counts by it.
const Race_ = false
