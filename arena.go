// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per request or frame, allocate many
// temporary buffers from it, then Clear() at the end for O(1) cleanup.
package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrBadCapacity is returned when an arena is created with a capacity
	// of zero or less.
	ErrBadCapacity = errors.New("arena: capacity must be positive")

	// ErrBadAlignment is returned when a configured default alignment is
	// not a positive power of two.
	ErrBadAlignment = errors.New("arena: alignment must be a power of two")
)

// Arena is a fixed-capacity bump allocator over a single contiguous region.
// The region is acquired once at creation and never grows. Not
// goroutine-safe; callers needing concurrent access must synchronize
// externally.
type Arena struct {
	region   []byte
	offset   int
	provider Provider
	copyFn   CopyFunc
	defAlign int
}

// NewArena creates an Arena backed by a region of capacity bytes acquired
// from the configured memory provider (the heap by default). Capacity must
// be positive; a zero-byte arena is a usage error, not an empty arena.
func NewArena(capacity int, opts ...Option) (*Arena, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	region, err := cfg.provider.Acquire(capacity)
	if err != nil {
		return nil, fmt.Errorf("arena: acquire %d byte region: %w", capacity, err)
	}
	if len(region) != capacity {
		cfg.provider.Release(region)
		return nil, fmt.Errorf("arena: provider returned %d bytes, want %d", len(region), capacity)
	}
	return &Arena{
		region:   region,
		provider: cfg.provider,
		copyFn:   cfg.copyFn,
		defAlign: cfg.defAlign,
	}, nil
}

// NewArenaBuffer creates an Arena over a caller-provided buffer. The buffer
// must be non-empty and must not be written to by the caller while the arena
// is live. The arena has no memory provider: a WithProvider option is
// ignored, and Destroy does not release the buffer; its lifetime stays with
// the caller.
func NewArenaBuffer(buf []byte, opts ...Option) (*Arena, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrBadCapacity
	}
	return &Arena{
		region:   buf,
		copyFn:   cfg.copyFn,
		defAlign: cfg.defAlign,
	}, nil
}

// valid reports whether the arena can serve operations. A nil or destroyed
// arena is invalid.
func (a *Arena) valid() bool {
	return a != nil && a.region != nil
}

// bump reserves size bytes at the current cursor. Caller has validated the
// arena and size.
func (a *Arena) bump(size int) []byte {
	if size > len(a.region)-a.offset {
		return nil
	}
	start := a.offset
	a.offset += size
	return a.region[start:a.offset:a.offset]
}

// Alloc returns a size-byte slice from the arena, or nil when size is not
// positive, the arena is invalid, or the remaining space is insufficient.
// The slice contents are NOT zeroed. A failed allocation leaves the cursor
// untouched.
//
// Alloc applies the arena's default alignment, which is 1 (no padding)
// unless WithDefaultAlignment was given.
func (a *Arena) Alloc(size int) []byte {
	if !a.valid() || size <= 0 {
		return nil
	}
	if a.defAlign > 1 {
		return a.AllocAligned(size, a.defAlign)
	}
	return a.bump(size)
}

// AllocAligned returns a size-byte slice whose base address is a multiple
// of alignment. Alignment must be 0, 1 (both meaning no padding) or a
// positive power of two; it is measured against the absolute address of the
// backing region, not the arena's logical offset, so the result is usable
// as storage for typed values of that alignment.
//
// Returns nil, without moving the cursor, when the arguments are invalid or
// when padding plus size exceeds the remaining space.
func (a *Arena) AllocAligned(size, alignment int) []byte {
	if !a.valid() || size <= 0 || alignment < 0 {
		return nil
	}
	if alignment&(alignment-1) != 0 {
		return nil
	}
	if alignment <= 1 {
		return a.bump(size)
	}

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(a.region))) + uintptr(a.offset)
	mask := uintptr(alignment) - 1
	pad := int(((addr + mask) &^ mask) - addr)

	rem := len(a.region) - a.offset
	if pad > rem || size > rem-pad {
		return nil
	}
	start := a.offset + pad
	a.offset = start + size
	return a.region[start:a.offset:a.offset]
}

// Clear resets the cursor to zero so the region can be reused. The region
// contents are left as-is; slices handed out before the Clear must no
// longer be used, since future allocations will overlap them. No-op on an
// invalid arena, and calling it twice is the same as once.
func (a *Arena) Clear() {
	if !a.valid() {
		return
	}
	a.offset = 0
}

// Destroy releases the region back to its provider and invalidates the
// arena. Every subsequent operation fails softly (nil results, no-op
// clears); there is no panic path. No-op on an invalid arena, so a double
// Destroy is harmless.
func (a *Arena) Destroy() {
	if !a.valid() {
		return
	}
	if a.provider != nil {
		a.provider.Release(a.region)
	}
	a.region = nil
	a.offset = 0
}

// Copy copies min(src.Offset(), dst.Capacity()) bytes from the start of
// src's region into the start of dst's region, sets dst's cursor to the
// number of bytes copied, and returns that count. Dst's prior cursor is
// ignored. Returns 0 and copies nothing when either arena is invalid.
func Copy(dst, src *Arena) int {
	if !dst.valid() || !src.valid() {
		return 0
	}
	n := min(src.offset, len(dst.region))
	// Clamp so a misbehaving injected copy function cannot push the cursor
	// past the copy bound or below zero.
	copied := max(0, min(dst.copyFn(dst.region[:n], src.region[:n]), n))
	dst.offset = copied
	return copied
}

// Offset returns the cursor position: the number of bytes consumed so far,
// padding included. Zero for an invalid arena.
func (a *Arena) Offset() int {
	if !a.valid() {
		return 0
	}
	return a.offset
}

// Capacity returns the total byte length of the backing region. Zero for
// an invalid arena.
func (a *Arena) Capacity() int {
	if !a.valid() {
		return 0
	}
	return len(a.region)
}

// Remaining returns the number of bytes still available, ignoring any
// padding a future aligned allocation might need.
func (a *Arena) Remaining() int {
	if !a.valid() {
		return 0
	}
	return len(a.region) - a.offset
}
