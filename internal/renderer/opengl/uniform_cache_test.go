package opengl

import (
	"testing"
)

func newCountingCache(program uint32) (*UniformCache, *int) {
	calls := 0
	cache := NewUniformCache(program)
	cache.lookup = func(p uint32, name string) int32 {
		calls++
		if name == "missing" {
			return -1
		}
		return int32(len(name))
	}
	return cache, &calls
}

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(3)

	if cache == nil {
		t.Fatal("NewUniformCache returned nil")
	}
	if cache.locations == nil {
		t.Error("locations map should be initialized")
	}
	if cache.program != 3 {
		t.Errorf("Expected program 3, got %d", cache.program)
	}
}

func TestUniformCacheLooksUpOnce(t *testing.T) {
	cache, calls := newCountingCache(1)

	first := cache.GetLocation("viewProjection")
	second := cache.GetLocation("viewProjection")

	if first != second || first != int32(len("viewProjection")) {
		t.Errorf("Unexpected locations %d and %d", first, second)
	}
	if *calls != 1 {
		t.Errorf("Expected 1 lookup, got %d", *calls)
	}
}

func TestUniformCacheRemembersMissing(t *testing.T) {
	cache, calls := newCountingCache(1)

	for i := 0; i < 3; i++ {
		if loc := cache.GetLocation("missing"); loc != -1 {
			t.Fatalf("Expected -1, got %d", loc)
		}
	}
	if *calls != 1 {
		t.Errorf("Expected a missing uniform to be looked up once, got %d", *calls)
	}
}

func TestUniformCacheClear(t *testing.T) {
	cache, calls := newCountingCache(1)
	cache.GetLocation("model")

	cache.Clear()
	cache.GetLocation("model")

	if *calls != 2 {
		t.Errorf("Expected a fresh lookup after Clear, got %d lookups", *calls)
	}
}
