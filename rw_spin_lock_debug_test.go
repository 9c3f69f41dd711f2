//go:build spinx_debug

package spinx

import (
	"testing"
)

func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		if got, _ := r.(string); got != want {
			t.Fatalf("panic=%v want %q", r, want)
		}
	}()
	f()
}

func TestRWSpinLockDebug_Misuse(t *testing.T) {
	var rw RWSpinLock
	mustPanic(t, "spinx: Unlock of unlocked RWSpinLock", rw.Unlock)

	rw.RLock()
	mustPanic(t, "spinx: Unlock of read-locked RWSpinLock", rw.Unlock)
	if s := rw.state.Load(); s != 1 {
		t.Fatalf("state=%#x, misuse check must not touch readers", s)
	}
	rw.RUnlock()

	mustPanic(t, "spinx: RUnlock of unlocked RWSpinLock", rw.RUnlock)

	var w RWSpinLock
	w.Lock()
	mustPanic(t, "spinx: RUnlock of write-locked RWSpinLock", w.RUnlock)
}

func TestRWSpinLockDebug_ReaderOverflow(t *testing.T) {
	var rw RWSpinLock
	rw.state.Store(rwSpinMaxReaders)
	mustPanic(t, "spinx: RWSpinLock reader count overflow", func() { rw.TryRLock() })
}

func TestRWSpinLockGroupDebug_UnknownKey(t *testing.T) {
	var g RWSpinLockGroup[string]
	mustPanic(t, "spinx: Unlock of unlocked RWSpinLockGroup key", func() { g.Unlock("x") })
	mustPanic(t, "spinx: RUnlock of unlocked RWSpinLockGroup key", func() { g.RUnlock("x") })
}
