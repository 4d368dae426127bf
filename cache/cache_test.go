package cache

import (
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", "value")

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("Expected a cache hit")
	}
	if got.(string) != "value" {
		t.Errorf("Expected value, got %v", got)
	}
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("Expected a cache miss")
	}
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)

	c.SetWithTTL("short", 1, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("Expected the entry to have expired")
	}
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", 1)
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("Expected the entry to be gone after Delete")
	}
}

func TestFlush(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()

	if _, ok := c.Get("a"); ok {
		t.Error("Expected a to be gone after Flush")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Expected b to be gone after Flush")
	}
}
