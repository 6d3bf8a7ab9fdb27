package arena

import (
	"errors"
	"testing"
)

var errProviderDown = errors.New("provider down")

type failingProvider struct{}

func (failingProvider) Acquire(int) ([]byte, error) { return nil, errProviderDown }
func (failingProvider) Release([]byte)              {}

// countingProvider records acquire/release pairs so tests can prove regions
// are handed back exactly once.
type countingProvider struct {
	acquired int
	released int
}

func (p *countingProvider) Acquire(n int) ([]byte, error) {
	p.acquired++
	return make([]byte, n), nil
}

func (p *countingProvider) Release(region []byte) {
	if region != nil {
		p.released++
	}
}

type shortProvider struct{}

func (shortProvider) Acquire(n int) ([]byte, error) { return make([]byte, n/2), nil }
func (shortProvider) Release([]byte)                {}

func TestNewArenaProviderFailure(t *testing.T) {
	a, err := NewArena(64, WithProvider(failingProvider{}))
	if a != nil {
		t.Error("NewArena returned an arena despite provider failure")
	}
	if !errors.Is(err, errProviderDown) {
		t.Errorf("error = %v, want wrapped provider error", err)
	}
}

func TestNewArenaShortProvider(t *testing.T) {
	a, err := NewArena(64, WithProvider(shortProvider{}))
	if a != nil || err == nil {
		t.Errorf("NewArena with short region: arena=%v err=%v, want nil arena and error", a, err)
	}
}

func TestProviderReleaseOnDestroy(t *testing.T) {
	p := &countingProvider{}
	a, err := NewArena(64, WithProvider(p))
	if err != nil {
		t.Fatal(err)
	}
	a.Alloc(10)
	a.Destroy()
	a.Destroy()

	if p.acquired != 1 {
		t.Errorf("acquired = %d, want 1", p.acquired)
	}
	if p.released != 1 {
		t.Errorf("released = %d, want exactly 1 even after double Destroy", p.released)
	}
}

func TestWithCopyFunc(t *testing.T) {
	calls := 0
	fn := func(dst, src []byte) int {
		calls++
		return copy(dst, src)
	}

	src, err := NewArena(32)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Destroy()
	dst, err := NewArena(32, WithCopyFunc(fn))
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Destroy()

	copy(src.Alloc(4), "data")
	if n := Copy(dst, src); n != 4 {
		t.Errorf("Copy = %d, want 4", n)
	}
	if calls != 1 {
		t.Errorf("copy func calls = %d, want 1", calls)
	}
}

func TestCopyFuncReturnClamped(t *testing.T) {
	src, err := NewArena(32)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Destroy()
	copy(src.Alloc(4), "data")

	over, err := NewArena(32, WithCopyFunc(func(dst, src []byte) int {
		copy(dst, src)
		return 1 << 20
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer over.Destroy()
	if n := Copy(over, src); n != 4 {
		t.Errorf("Copy with overreporting copy func = %d, want 4", n)
	}
	if over.Offset() != 4 {
		t.Errorf("dst.Offset() = %d, want 4: cursor must stay within the copy bound", over.Offset())
	}

	under, err := NewArena(32, WithCopyFunc(func(dst, src []byte) int {
		return -5
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer under.Destroy()
	if n := Copy(under, src); n != 0 {
		t.Errorf("Copy with negative copy func = %d, want 0", n)
	}
	if under.Offset() != 0 {
		t.Errorf("dst.Offset() = %d, want 0", under.Offset())
	}
}

func TestArenaBufferIgnoresProvider(t *testing.T) {
	p := &countingProvider{}
	a, err := NewArenaBuffer(make([]byte, 32), WithProvider(p))
	if err != nil {
		t.Fatal(err)
	}
	a.Alloc(8)
	a.Destroy()

	if p.acquired != 0 || p.released != 0 {
		t.Errorf("provider touched by buffer-backed arena: acquired=%d released=%d, want 0/0",
			p.acquired, p.released)
	}
}

func TestWithDefaultAlignment(t *testing.T) {
	a, err := NewArenaBuffer(alignedRegion(64, 8), WithDefaultAlignment(8))
	if err != nil {
		t.Fatal(err)
	}

	a.Alloc(3)
	if a.Offset() != 3 {
		t.Fatalf("Offset() = %d, want 3", a.Offset())
	}
	a.Alloc(3) // padded up to the next 8-byte boundary
	if a.Offset() != 11 {
		t.Errorf("Offset() = %d, want 11", a.Offset())
	}
}

func TestBadDefaultAlignment(t *testing.T) {
	for _, align := range []int{0, -8, 3, 12} {
		if _, err := NewArena(64, WithDefaultAlignment(align)); !errors.Is(err, ErrBadAlignment) {
			t.Errorf("WithDefaultAlignment(%d) error = %v, want ErrBadAlignment", align, err)
		}
	}
}
