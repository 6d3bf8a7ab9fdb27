// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena reserves one contiguous region of memory up front and hands out
// sub-slices of it by advancing a cursor. There is no per-allocation free:
// the whole region is reclaimed at once with Clear (for reuse) or Destroy
// (for release). This is useful for:
//
//   - Per-request or per-frame scratch memory with group lifetime
//   - Fast, predictable, fragmentation-free allocation
//   - Keeping many short-lived buffers off the garbage collector's books
//
// # Basic Usage
//
//	a, err := arena.NewArena(64 * 1024)
//	if err != nil {
//		// zero capacity, or the memory provider failed
//	}
//	defer a.Destroy()
//
//	buf := a.Alloc(1024)          // raw bytes, contents NOT zeroed
//	hdr := a.AllocAligned(128, 8) // 8-byte aligned block
//	ptr := arena.New[MyStruct](a) // typed, zeroed, naturally aligned
//
//	a.Clear() // cursor back to zero, region reused
//
// Every allocation entry point returns nil when the request cannot be
// satisfied: zero or negative size, an invalid alignment, a destroyed
// arena, or not enough remaining space. A failed allocation never moves
// the cursor.
//
// # Lifetime Discipline
//
// Slices and pointers handed out by an arena are views into its region.
// They stay valid only until the next Clear or Destroy of that arena;
// after that, future allocations reuse the same bytes. The package does
// not police this at runtime. It is the caller's contract.
//
// # Memory Providers
//
// The region comes from a pluggable Provider. The default is the Go heap;
// MmapProvider maps regions directly from the kernel on unix platforms:
//
//	a, err := arena.NewArena(1<<20, arena.WithProvider(arena.MmapProvider{}))
//
// NewArenaBuffer builds an arena over a buffer the caller already owns.
//
// # Debug Tracking
//
// TrackedArena records every successful allocation (offset, size, base
// address) in order, and can look a record back up from an address:
//
//	t, _ := arena.NewTrackedArena(4096)
//	b := t.Alloc(32)
//	rec, ok := t.FindAllocation(unsafe.Pointer(unsafe.SliceData(b)))
//
// Tracking never changes cursor arithmetic or success/failure outcomes,
// and the plain Arena carries no tracking cost at all.
//
// # Concurrency
//
// Arenas are single-threaded by design; no locks, no atomics. Callers
// sharing an arena across goroutines must bring their own synchronization.
//
// # Performance Characteristics
//
//   - Alloc / AllocAligned: O(1)
//   - Clear: O(1)
//   - Copy: O(bytes copied)
//   - FindAllocation: O(records)
package arena
