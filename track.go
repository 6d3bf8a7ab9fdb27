package arena

import "unsafe"

// Allocation describes one successful allocation made through a
// TrackedArena.
type Allocation struct {
	Offset int            // region offset of the returned slice, padding applied
	Size   int            // requested byte length
	Base   unsafe.Pointer // absolute base address, cached for reverse lookup
}

// TrackedArena layers an ordered allocation log over an Arena for
// introspection and debugging. Cursor arithmetic and success/failure
// outcomes are exactly those of the plain Arena; tracking only appends a
// record after each success. Plain arenas pay nothing for this: the hot
// path has no tracking branch at all.
type TrackedArena struct {
	arena   *Arena
	records []Allocation
}

// NewTrackedArena creates a TrackedArena with an empty allocation log.
// Options are those of NewArena.
func NewTrackedArena(capacity int, opts ...Option) (*TrackedArena, error) {
	a, err := NewArena(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &TrackedArena{arena: a}, nil
}

// NewTrackedArenaBuffer creates a TrackedArena over a caller-provided
// buffer, like NewArenaBuffer.
func NewTrackedArenaBuffer(buf []byte, opts ...Option) (*TrackedArena, error) {
	a, err := NewArenaBuffer(buf, opts...)
	if err != nil {
		return nil, err
	}
	return &TrackedArena{arena: a}, nil
}

func (t *TrackedArena) valid() bool {
	return t != nil && t.arena.valid()
}

// record appends the log entry for a successful allocation. The offset is
// recomputed from the slice base so padded allocations record where their
// bytes actually start.
func (t *TrackedArena) record(b []byte, size int) {
	base := unsafe.Pointer(unsafe.SliceData(b))
	off := int(uintptr(base) - uintptr(unsafe.Pointer(unsafe.SliceData(t.arena.region))))
	t.records = append(t.records, Allocation{Offset: off, Size: size, Base: base})
}

// Alloc behaves like Arena.Alloc and logs the allocation on success.
func (t *TrackedArena) Alloc(size int) []byte {
	if !t.valid() {
		return nil
	}
	b := t.arena.Alloc(size)
	if b == nil {
		return nil
	}
	t.record(b, size)
	return b
}

// AllocAligned behaves like Arena.AllocAligned and logs the allocation on
// success.
func (t *TrackedArena) AllocAligned(size, alignment int) []byte {
	if !t.valid() {
		return nil
	}
	b := t.arena.AllocAligned(size, alignment)
	if b == nil {
		return nil
	}
	t.record(b, size)
	return b
}

// FindAllocation returns the record whose base address equals p. At most
// one record can match, since allocations never overlap. Returns false for
// a nil pointer, an address the arena never handed out, or an invalid
// arena.
func (t *TrackedArena) FindAllocation(p unsafe.Pointer) (Allocation, bool) {
	if !t.valid() || p == nil {
		return Allocation{}, false
	}
	for _, rec := range t.records {
		if rec.Base == p {
			return rec, true
		}
	}
	return Allocation{}, false
}

// Allocations returns the log in allocation order. The slice is only valid
// until the next Clear or Destroy.
func (t *TrackedArena) Allocations() []Allocation {
	if t == nil {
		return nil
	}
	return t.records
}

// AllocationCount returns the number of successful allocations since
// creation or the last Clear.
func (t *TrackedArena) AllocationCount() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Clear resets the cursor and empties the allocation log in one bulk
// operation. No-op on an invalid arena.
func (t *TrackedArena) Clear() {
	if !t.valid() {
		return
	}
	t.arena.Clear()
	t.records = t.records[:0]
}

// Destroy drops the allocation log and releases the underlying arena.
func (t *TrackedArena) Destroy() {
	if t == nil {
		return
	}
	t.records = nil
	t.arena.Destroy()
}

// CopyFrom copies src's live contents into this arena's region, exactly as
// Copy does for plain arenas, and clears the allocation log: the old
// records describe memory the copy just overwrote, so an empty log is the
// only state consistent with "records mirror the allocations since the
// last clear". Returns the number of bytes copied. When either side is
// invalid the copy fails, returns 0, and the log is left untouched.
func (t *TrackedArena) CopyFrom(src *Arena) int {
	if !t.valid() || !src.valid() {
		// Nothing was copied; the log still mirrors the region.
		return 0
	}
	n := Copy(t.arena, src)
	t.records = t.records[:0]
	return n
}

// Offset returns the underlying cursor position.
func (t *TrackedArena) Offset() int {
	if t == nil {
		return 0
	}
	return t.arena.Offset()
}

// Capacity returns the underlying region length.
func (t *TrackedArena) Capacity() int {
	if t == nil {
		return 0
	}
	return t.arena.Capacity()
}

// Remaining returns the bytes still available in the underlying arena.
func (t *TrackedArena) Remaining() int {
	if t == nil {
		return 0
	}
	return t.arena.Remaining()
}

// Generic allocation entry points for TrackedArena.

// TrackedNew returns a pointer to a zeroed T stored in the arena and logs
// the allocation.
func TrackedNew[T any](t *TrackedArena) *T {
	p := TrackedNewUninitialized[T](t)
	if p != nil {
		var zero T
		*p = zero
	}
	return p
}

// TrackedNewUninitialized returns a *T from the arena without zeroing, and
// logs the allocation.
func TrackedNewUninitialized[T any](t *TrackedArena) *T {
	var zero T
	b := t.AllocAligned(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// TrackedMakeSlice allocates a slice of n elements of type T and logs the
// allocation.
func TrackedMakeSlice[T any](t *TrackedArena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := t.AllocAligned(int(unsafe.Sizeof(zero))*n, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// TrackedMakeSliceZeroed is TrackedMakeSlice with the elements cleared.
func TrackedMakeSliceZeroed[T any](t *TrackedArena, n int) []T {
	s := TrackedMakeSlice[T](t, n)
	if s != nil {
		clear(s)
	}
	return s
}
