package pool

import "testing"

func TestSlicesAcquireRelease(t *testing.T) {
	p := NewSlices[int](8)

	s := p.Acquire()
	if len(*s) != 0 {
		t.Fatalf("Acquire() returned slice with len %d, want 0", len(*s))
	}
	*s = append(*s, 1, 2, 3)
	p.Release(s)

	s2 := p.Acquire()
	if len(*s2) != 0 {
		t.Fatalf("reused slice has len %d, want 0", len(*s2))
	}
}

func TestSlicesReleaseNil(t *testing.T) {
	p := NewSlices[string](4)
	p.Release(nil) // must not panic
}

func TestSlicesOversizedDropped(t *testing.T) {
	p := NewSlices[byte](1)
	s := p.Acquire()
	*s = append(*s, make([]byte, 1024)...)
	p.Release(s) // silently dropped; pool must still work
	s2 := p.Acquire()
	if len(*s2) != 0 {
		t.Fatalf("Acquire() after oversized release: len %d, want 0", len(*s2))
	}
}
