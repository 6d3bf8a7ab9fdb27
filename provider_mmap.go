//go:build unix

package arena

import "golang.org/x/sys/unix"

// MmapProvider acquires regions as anonymous private mappings, keeping
// large arenas off the Go heap entirely. The mapping length is rounded up
// to the page size by the kernel; the slice handed to the arena still has
// exactly the requested length.
type MmapProvider struct{}

func (MmapProvider) Acquire(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (MmapProvider) Release(region []byte) {
	if region == nil {
		return
	}
	// Nothing useful to do with the error here; the region is gone from the
	// arena's perspective either way.
	_ = unix.Munmap(region)
}
