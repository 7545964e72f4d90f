package pathscore

import (
	"fmt"
	"testing"
)

func TestMaskCacheBasic(t *testing.T) {
	cache := NewMaskCache(10)

	cache.Set("main.c", ComputeBitmask("main.c"))

	mask, ok := cache.Get("main.c")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if want := ComputeBitmask("main.c"); mask != want {
		t.Errorf("cached mask = %b, want %b", mask, want)
	}

	if _, ok := cache.Get("other.c"); ok {
		t.Error("expected a cache miss")
	}
}

func TestMaskCacheLRU(t *testing.T) {
	cache := NewMaskCache(3)

	cache.Set("a", ComputeBitmask("a"))
	cache.Set("b", ComputeBitmask("b"))
	cache.Set("c", ComputeBitmask("c"))

	// Touch "a" so "b" becomes the eviction candidate.
	cache.Get("a")

	cache.Set("d", ComputeBitmask("d"))

	if _, ok := cache.Get("b"); ok {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := cache.Get(key); !ok {
			t.Errorf("expected %q to still be cached", key)
		}
	}
}

func TestMaskCacheUpdate(t *testing.T) {
	cache := NewMaskCache(10)

	cache.Set("file", ComputeBitmask("old"))
	cache.Set("file", ComputeBitmask("new"))

	mask, ok := cache.Get("file")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if want := ComputeBitmask("new"); mask != want {
		t.Errorf("mask = %b, want %b after update", mask, want)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestMaskCacheDelete(t *testing.T) {
	cache := NewMaskCache(10)

	cache.Set("file", ComputeBitmask("file"))
	cache.Delete("file")

	if _, ok := cache.Get("file"); ok {
		t.Error("expected entry to be gone after Delete")
	}

	// Deleting a missing key is a no-op.
	cache.Delete("absent")
}

func TestMaskCacheClear(t *testing.T) {
	cache := NewMaskCache(10)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", cache.Len())
	}
	if _, ok := cache.Get("a"); ok {
		t.Error("expected miss after Clear")
	}
}

func TestMaskCacheDefaultCapacity(t *testing.T) {
	cache := NewMaskCache(0)
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("path%d", i), Bitmask(i+1))
	}
	if cache.Len() != 100 {
		t.Errorf("Len() = %d, want 100 under the default capacity", cache.Len())
	}
}

func BenchmarkMaskCache(b *testing.B) {
	cache := NewMaskCache(1000)
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("path%d", i), Bitmask(i+1))
	}

	b.Run("Get", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			cache.Get(fmt.Sprintf("path%d", i%100))
		}
	})

	b.Run("Set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			cache.Set(fmt.Sprintf("path%d", i%200), Bitmask(i+1))
		}
	})
}
