package handles

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	called := false
	cb := func() { called = true }
	handle := Register(cb)

	if handle == 0 {
		t.Error("Register should never return the native null handle")
	}

	got := Lookup(handle)
	if got == nil {
		t.Fatal("Lookup should return non-nil value")
	}

	gotCb, ok := got.(func())
	if !ok {
		t.Fatalf("Lookup returned wrong type: %T", got)
	}
	gotCb()
	if !called {
		t.Error("resolved callback did not run")
	}

	Unregister(handle)
}

func TestTake(t *testing.T) {
	handle := Register("one-shot")

	if got := Take(handle); got != "one-shot" {
		t.Errorf("Take returned %v, want the registered value", got)
	}
	if got := Take(handle); got != nil {
		t.Errorf("second Take should return nil, got %v", got)
	}
	if got := Lookup(handle); got != nil {
		t.Errorf("Lookup after Take should return nil, got %v", got)
	}
}

func TestUnregister(t *testing.T) {
	handle := Register("test value")

	if Lookup(handle) == nil {
		t.Error("expected value before Unregister")
	}

	Unregister(handle)

	if Lookup(handle) != nil {
		t.Error("expected nil after Unregister")
	}
}

func TestLookupNonExistent(t *testing.T) {
	if got := Lookup(999999); got != nil {
		t.Error("Lookup of non-existent handle should return nil")
	}
	if got := Lookup(^uintptr(0)); got != nil {
		t.Error("Lookup of all-one-bits handle should return nil")
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				want := id*numOps + j
				handle := Register(want)
				got := Lookup(handle)
				if got != want {
					t.Errorf("Lookup returned %v for handle %d, want %v", got, handle, want)
				}
				Unregister(handle)
			}
		}(i)
	}

	wg.Wait()
}

func TestConcurrentTake_ExactlyOnce(t *testing.T) {
	const numTakers = 32

	handle := Register("contested")

	var won atomic.Int32
	var wg sync.WaitGroup
	wg.Add(numTakers)
	for i := 0; i < numTakers; i++ {
		go func() {
			defer wg.Done()
			if Take(handle) != nil {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	if won.Load() != 1 {
		t.Errorf("Take succeeded %d times for one handle, want exactly 1", won.Load())
	}
}

func TestHandlesAreUnique(t *testing.T) {
	seen := make(map[uintptr]bool)

	for i := 0; i < 1000; i++ {
		h := Register(i)
		if seen[h] {
			t.Errorf("handle %d was returned twice", h)
		}
		seen[h] = true
	}

	for h := range seen {
		Unregister(h)
	}
}
