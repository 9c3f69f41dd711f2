package spinx

import (
	"slices"
	"sync"
	"testing"
)

func TestGuarded_Basic(t *testing.T) {
	g := NewGuarded([3]int{1, 2, 3})
	g.Update(func(v *[3]int) {
		v[0] = 4
		v[2] = 5
	})
	if got := g.Load(); got != [3]int{4, 2, 5} {
		t.Fatalf("Load=%v want [4 2 5]", got)
	}
	g.Store([3]int{7, 8, 9})
	var seen [3]int
	g.Read(func(v *[3]int) { seen = *v })
	if seen != [3]int{7, 8, 9} {
		t.Fatalf("Read saw %v", seen)
	}
}

func TestGuarded_Try(t *testing.T) {
	g := NewGuarded(0)
	g.lock.Lock()
	if g.TryRead(func(*int) { t.Fatal("TryRead ran under write lock") }) {
		t.Fatal("TryRead reported success under write lock")
	}
	if g.TryUpdate(func(*int) { t.Fatal("TryUpdate ran under write lock") }) {
		t.Fatal("TryUpdate reported success under write lock")
	}
	g.lock.Unlock()

	g.lock.RLock()
	if !g.TryRead(func(*int) {}) {
		t.Fatal("TryRead failed alongside another reader")
	}
	if g.TryUpdate(func(*int) {}) {
		t.Fatal("TryUpdate succeeded while a reader holds the lock")
	}
	g.lock.RUnlock()

	if !g.TryUpdate(func(v *int) { *v = 42 }) {
		t.Fatal("TryUpdate failed on free lock")
	}
	if v := g.Load(); v != 42 {
		t.Fatalf("value=%d want 42", v)
	}
}

func TestGuarded_PanicReleasesLock(t *testing.T) {
	g := NewGuarded(1)
	func() {
		defer func() { _ = recover() }()
		g.Update(func(v *int) {
			*v++
			panic("boom")
		})
	}()
	func() {
		defer func() { _ = recover() }()
		g.Read(func(*int) { panic("boom") })
	}()
	if s := g.lock.state.Load(); s != 0 {
		t.Fatalf("state=%#x after panicking callbacks", s)
	}
	g.Update(func(v *int) { *v++ })
	if v := g.Load(); v != 3 {
		t.Fatalf("value=%d want 3", v)
	}
}

func TestGuarded_Concurrent(t *testing.T) {
	g := NewGuarded([]int(nil))
	const writers = 8
	const perWriter = 100
	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for w := range writers {
		go func() {
			defer wg.Done()
			for i := range perWriter {
				g.Update(func(v *[]int) { *v = append(*v, w*perWriter+i) })
			}
		}()
		go func() {
			defer wg.Done()
			last := 0
			for range perWriter {
				g.Read(func(v *[]int) {
					if len(*v) < last {
						t.Errorf("reader saw length shrink from %d to %d", last, len(*v))
					}
					last = len(*v)
				})
			}
		}()
	}
	wg.Wait()
	got := sortedCopy(g.Load())
	if len(got) != writers*perWriter {
		t.Fatalf("len=%d want %d", len(got), writers*perWriter)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d]=%d", i, v)
		}
	}
}

func sortedCopy(s []int) []int {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
