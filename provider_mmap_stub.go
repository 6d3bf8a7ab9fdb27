//go:build !unix

package arena

// MmapProvider degrades to heap-backed regions on platforms without mmap.
type MmapProvider struct{ HeapProvider }
