package mutation

import (
	"sync"
	"testing"
)

func TestTempIDAllocatorSequence(t *testing.T) {
	alloc := NewTempIDAllocator()
	for want := int64(-1); want >= -3; want-- {
		if got := alloc.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestTempIDAllocatorAssetResourceName(t *testing.T) {
	alloc := NewTempIDAllocator()
	if got, want := alloc.AssetResourceName("123"), "customers/123/assets/-1"; got != want {
		t.Fatalf("AssetResourceName() = %q, want %q", got, want)
	}
	if got, want := alloc.AssetResourceName("123"), "customers/123/assets/-2"; got != want {
		t.Fatalf("AssetResourceName() = %q, want %q", got, want)
	}
}

func TestTempIDAllocatorConcurrentUniqueness(t *testing.T) {
	alloc := NewTempIDAllocator()

	const workers = 8
	const perWorker = 50

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := alloc.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("unique ids = %d, want %d", len(seen), workers*perWorker)
	}
	for id := range seen {
		if id >= 0 {
			t.Fatalf("allocated non-negative temporary id %d", id)
		}
	}
}
