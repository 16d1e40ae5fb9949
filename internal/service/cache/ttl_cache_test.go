package cache

import (
	"testing"
	"time"
)

func TestGetBeforePut(t *testing.T) {
	c := NewTTLValue[int]()
	if _, ok := c.Get(); ok {
		t.Fatalf("expected miss")
	}
}

func TestPutGet(t *testing.T) {
	c := NewTTLValue[int]()
	c.Put(42, time.Minute)
	v, ok := c.Get()
	if !ok || v != 42 {
		t.Fatalf("expected 42, got %v ok=%v", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := NewTTLValue[string]()
	c.Put("v", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get(); ok {
		t.Fatalf("expected expired entry")
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := NewTTLValue[string]()
	c.Put("v", 0)
	if _, ok := c.Get(); !ok {
		t.Fatalf("expected hit")
	}
}

func TestPutResetsExpiry(t *testing.T) {
	c := NewTTLValue[string]()
	c.Put("old", time.Nanosecond)
	c.Put("new", time.Minute)
	v, ok := c.Get()
	if !ok || v != "new" {
		t.Fatalf("expected refreshed value, got %q ok=%v", v, ok)
	}
}
