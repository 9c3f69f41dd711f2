package spinx

// Guarded couples a value with the RWSpinLock that protects it, so the value
// can only be reached while the lock is held.
//
// Callbacks run with the lock held and must be short; they must not call
// back into the same Guarded. The lock is released with defer, so a panic
// inside a callback propagates with the lock already released.
//
// Usage:
//
//	g := spinx.NewGuarded(map[string]int{})
//	g.Update(func(m *map[string]int) { (*m)["hits"]++ })
//	g.Read(func(m *map[string]int) { fmt.Println((*m)["hits"]) })
type Guarded[T any] struct {
	_     noCopy
	lock  RWSpinLock
	value T
}

// NewGuarded returns a Guarded holding v.
func NewGuarded[T any](v T) *Guarded[T] {
	return &Guarded[T]{value: v}
}

// Read calls f with a pointer to the value under the read lock.
// f must not modify the value; other readers may be looking at it.
func (g *Guarded[T]) Read(f func(v *T)) {
	g.lock.RLock()
	defer g.lock.RUnlock()
	f(&g.value)
}

// TryRead calls f like Read if the read lock is immediately available and
// reports whether f was called.
func (g *Guarded[T]) TryRead(f func(v *T)) bool {
	if !g.lock.TryRLock() {
		return false
	}
	defer g.lock.RUnlock()
	f(&g.value)
	return true
}

// Update calls f with a pointer to the value under the write lock.
func (g *Guarded[T]) Update(f func(v *T)) {
	g.lock.Lock()
	defer g.lock.Unlock()
	f(&g.value)
}

// TryUpdate calls f like Update if the write lock is immediately available
// and reports whether f was called.
func (g *Guarded[T]) TryUpdate(f func(v *T)) bool {
	if !g.lock.TryLock() {
		return false
	}
	defer g.lock.Unlock()
	f(&g.value)
	return true
}

// Load returns a copy of the value taken under the read lock.
func (g *Guarded[T]) Load() T {
	g.lock.RLock()
	v := g.value
	g.lock.RUnlock()
	return v
}

// Store replaces the value under the write lock.
func (g *Guarded[T]) Store(v T) {
	g.lock.Lock()
	g.value = v
	g.lock.Unlock()
}
