package arena

import "unsafe"

// New returns a pointer to a zeroed T stored in the arena, aligned to T's
// natural alignment. Returns nil when the arena cannot satisfy the request.
// The pointer is valid until the arena is cleared or destroyed.
func New[T any](a *Arena) *T {
	p := NewUninitialized[T](a)
	if p != nil {
		var zero T
		*p = zero
	}
	return p
}

// NewUninitialized returns a *T located in the arena without zeroing the
// memory. Faster than New, but the contents are whatever the region held
// before.
func NewUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.AllocAligned(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice allocates a slice of n elements of type T in the arena, aligned
// for T. The elements are not initialized. Returns nil if n <= 0 or the
// arena cannot satisfy the request.
func MakeSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocAligned(int(unsafe.Sizeof(zero))*n, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// MakeSliceZeroed is MakeSlice with the elements cleared.
func MakeSliceZeroed[T any](a *Arena, n int) []T {
	s := MakeSlice[T](a, n)
	if s != nil {
		clear(s)
	}
	return s
}
