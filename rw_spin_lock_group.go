package spinx

import (
	"github.com/llxisdsh/pb"

	"github.com/llxisdsh/spinx/internal/opt"
)

// RWSpinLockGroup allows shared Reader-Writer spin locking on arbitrary keys.
//
// Features:
//   - RLock/RUnlock for shared read access.
//   - Lock/Unlock for exclusive write access.
//   - TryRLock/TryLock that never spin.
//   - Infinite Keys & Auto-Cleanup: an entry lives only while some goroutine
//     holds or waits for its key.
//
// Usage:
//
//	var group RWSpinLockGroup[string]
//
//	// Readers
//	group.RLock("config")
//	read(config)
//	group.RUnlock("config")
//
//	// Writer
//	group.Lock("config")
//	write(config)
//	group.Unlock("config")
//
// Implementation Note:
// Entries are reference counted inside pb.MapOf.ProcessEntry, which
// serializes updates per key, so an entry is never deleted while another
// goroutine still holds or waits on its lock.
type RWSpinLockGroup[K comparable] struct {
	_ noCopy
	m pb.MapOf[K, *rwSpinGroupEntry]
}

type rwSpinGroupEntry struct {
	_    opt.EntryPad_
	lock RWSpinLock
	ref  int32
}

// Lock acquires the write lock for k.
func (g *RWSpinLockGroup[K]) Lock(k K) {
	g.acquire(k).lock.Lock()
}

// TryLock tries to acquire the write lock for k without spinning.
func (g *RWSpinLockGroup[K]) TryLock(k K) bool {
	e := g.acquire(k)
	if e.lock.TryLock() {
		return true
	}
	g.release(k, e)
	return false
}

// Unlock releases the write lock for k.
func (g *RWSpinLockGroup[K]) Unlock(k K) {
	e, ok := g.m.Load(k)
	if !ok {
		if opt.Debug_ {
			panic("spinx: Unlock of unlocked RWSpinLockGroup key")
		}
		return
	}
	e.lock.Unlock()
	g.release(k, e)
}

// RLock acquires a read lock for k.
func (g *RWSpinLockGroup[K]) RLock(k K) {
	g.acquire(k).lock.RLock()
}

// TryRLock tries to acquire a read lock for k without spinning.
func (g *RWSpinLockGroup[K]) TryRLock(k K) bool {
	e := g.acquire(k)
	if e.lock.TryRLock() {
		return true
	}
	g.release(k, e)
	return false
}

// RUnlock releases a read lock for k.
func (g *RWSpinLockGroup[K]) RUnlock(k K) {
	e, ok := g.m.Load(k)
	if !ok {
		if opt.Debug_ {
			panic("spinx: RUnlock of unlocked RWSpinLockGroup key")
		}
		return
	}
	e.lock.RUnlock()
	g.release(k, e)
}

// acquire returns the entry for k, creating it if needed, and takes a
// reference on it.
func (g *RWSpinLockGroup[K]) acquire(k K) *rwSpinGroupEntry {
	e, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *rwSpinGroupEntry]) (*pb.EntryOf[K, *rwSpinGroupEntry], *rwSpinGroupEntry, bool) {
			if l != nil {
				l.Value.ref++
				return l, l.Value, true
			}
			e := &rwSpinGroupEntry{ref: 1}
			return &pb.EntryOf[K, *rwSpinGroupEntry]{Value: e}, e, false
		},
	)
	return e
}

// release drops a reference taken by acquire and deletes the entry once
// nobody holds or waits for it.
func (g *RWSpinLockGroup[K]) release(k K, e *rwSpinGroupEntry) {
	_, _ = g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *rwSpinGroupEntry]) (*pb.EntryOf[K, *rwSpinGroupEntry], *rwSpinGroupEntry, bool) {
			if l == nil || l.Value != e {
				return l, nil, false
			}
			l.Value.ref--
			if l.Value.ref <= 0 {
				return nil, nil, true
			}
			return l, nil, true
		},
	)
}
