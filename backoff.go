package spinx

import (
	"runtime"
)

const (
	// SpinLimit caps the exponent of a single busy-wait: Spin never issues
	// more than 1<<SpinLimit processor spin hints per call. Once the step
	// passes SpinLimit, Snooze yields the processor instead of spinning.
	SpinLimit = 6
	// YieldLimit is the last step Snooze advances to. Past it the backoff
	// is Completed.
	YieldLimit = 10
)

// Backoff performs exponential backoff in spin loops.
//
// Each call to Spin or Snooze waits roughly twice as long as the previous
// one, up to 1<<SpinLimit spin hints. Snooze additionally escalates to
// runtime.Gosched once spinning stops paying off, which lets the holder of
// a contended resource run when it shares a P with the waiter.
//
// The zero value is ready to use. A Backoff belongs to a single retry loop
// and must not be shared between goroutines.
//
// Usage:
//
//	var b spinx.Backoff
//	for !tryAcquire() {
//		b.Snooze()
//	}
type Backoff struct {
	step uint32
}

// NewBackoff returns a Backoff in its initial state.
func NewBackoff() Backoff {
	return Backoff{}
}

// Reset returns the backoff to its initial state.
func (b *Backoff) Reset() {
	b.step = 0
}

// Spin busy-waits for 1<<min(step, SpinLimit) spin hints and advances the
// step. It never yields, which makes it suitable for retrying a lost CAS
// race where progress by another goroutine is already guaranteed.
func (b *Backoff) Spin() {
	procyield(b.spins())
	if b.step <= SpinLimit {
		b.step++
	}
}

// Snooze backs off while waiting for another goroutine to make progress.
// It spins like Spin up to SpinLimit, then yields the processor once per
// call.
func (b *Backoff) Snooze() {
	if b.step <= SpinLimit {
		procyield(b.spins())
	} else {
		runtime.Gosched()
	}
	if b.step <= YieldLimit {
		b.step++
	}
}

// Completed reports whether backoff has escalated past YieldLimit. Callers
// that can block should switch to a blocking primitive at this point.
func (b *Backoff) Completed() bool {
	return b.step > YieldLimit
}

//go:nosplit
func (b *Backoff) spins() uint32 {
	return 1 << min(b.step, SpinLimit)
}
