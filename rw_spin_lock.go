package spinx

import (
	"sync"
	"sync/atomic"

	"github.com/llxisdsh/spinx/internal/opt"
)

// RWSpinLock is a spin-based Reader-Writer lock packed into a single uint32.
//
// It is meant for critical sections that last about as long as a few cache
// misses. Waiters never park in the runtime; they spin with exponential
// backoff and, once that stops paying off, yield the processor.
//
// State word:
//   - 0: unlocked
//   - rwSpinWriter: held by one writer
//   - 1..rwSpinWriter-1: number of readers holding it
//
// Every acquisition is a single CAS on the state word, so a failed attempt
// leaves nothing to undo. A successful acquire happens-before the critical
// section and each release happens-before the next successful acquire.
//
// The lock is not fair. A writer can only get in when the reader count drops
// to zero, so a steady stream of overlapping readers can starve it.
//
// The zero value is an unlocked lock. Size: 4 bytes.
type RWSpinLock struct {
	_     noCopy
	state atomic.Uint32
}

const (
	rwSpinWriter     = 1 << 31
	rwSpinMaxReaders = rwSpinWriter - 1
)

// TryRLock tries to acquire a read lock without spinning and reports
// whether it succeeded. It fails if a writer holds the lock or if another
// goroutine changed the state word between the load and the CAS.
func (l *RWSpinLock) TryRLock() bool {
	s := l.state.Load()
	if s&rwSpinWriter != 0 {
		return false
	}
	if opt.Debug_ && s == rwSpinMaxReaders {
		panic("spinx: RWSpinLock reader count overflow")
	}
	return l.state.CompareAndSwap(s, s+1)
}

// RLock acquires a read lock, spinning until no writer holds the lock.
func (l *RWSpinLock) RLock() {
	if l.TryRLock() {
		return
	}
	l.rlockSlow()
}

func (l *RWSpinLock) rlockSlow() {
	var b Backoff
	for {
		// Wait with plain loads so the line stays shared while a writer holds it.
		for l.state.Load()&rwSpinWriter != 0 {
			b.Snooze()
		}
		if l.TryRLock() {
			return
		}
		// Lost a CAS race to another reader, which is progress: retry soon.
		b.Spin()
	}
}

// RUnlock releases a read lock.
//
// Calling RUnlock without holding a read lock is a programming error. It
// corrupts the lock unless built with the spinx_debug tag, which panics.
func (l *RWSpinLock) RUnlock() {
	s := l.state.Add(^uint32(0))
	if opt.Debug_ {
		if prev := s + 1; prev == 0 {
			panic("spinx: RUnlock of unlocked RWSpinLock")
		} else if prev&rwSpinWriter != 0 {
			panic("spinx: RUnlock of write-locked RWSpinLock")
		}
	}
}

// TryLock tries to acquire the write lock without spinning and reports
// whether it succeeded. It fails while any reader or writer holds the lock.
func (l *RWSpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, rwSpinWriter)
}

// Lock acquires the write lock, spinning until the lock is free.
func (l *RWSpinLock) Lock() {
	if l.TryLock() {
		return
	}
	l.lockSlow()
}

func (l *RWSpinLock) lockSlow() {
	var b Backoff
	for {
		for l.state.Load() != 0 {
			b.Snooze()
		}
		if l.TryLock() {
			return
		}
	}
}

// Unlock releases the write lock.
//
// Calling Unlock without holding the write lock is a programming error. It
// corrupts the lock unless built with the spinx_debug tag, which panics.
func (l *RWSpinLock) Unlock() {
	if !opt.Debug_ {
		l.state.Store(0)
		return
	}
	if l.state.CompareAndSwap(rwSpinWriter, 0) {
		return
	}
	if l.state.Load() == 0 {
		panic("spinx: Unlock of unlocked RWSpinLock")
	}
	panic("spinx: Unlock of read-locked RWSpinLock")
}

// RLocker returns a sync.Locker that implements Lock and Unlock by calling
// l.RLock and l.RUnlock.
func (l *RWSpinLock) RLocker() sync.Locker {
	return (*rSpinLocker)(l)
}

type rSpinLocker RWSpinLock

func (r *rSpinLocker) Lock()   { (*RWSpinLock)(r).RLock() }
func (r *rSpinLocker) Unlock() { (*RWSpinLock)(r).RUnlock() }
