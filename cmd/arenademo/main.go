// Command arenademo walks the allocator through its whole surface: create,
// raw and aligned allocation, clear, inter-arena copy, debug tracking, and
// destroy.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	arena "github.com/ccgargantua/arena-allocator"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
)

var (
	Capacity = pflag.IntP("capacity", "c", 1024, "arena capacity in bytes")
	Mmap     = pflag.Bool("mmap", false, "back the arena with an anonymous mapping")
	LogJSON  = pflag.Bool("log-json", false, "use json logs")
	Help     = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	if *LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, nil)))
	}

	if err := run(); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var opts []arena.Option
	if *Mmap {
		opts = append(opts, arena.WithProvider(arena.MmapProvider{}))
	}

	a, err := arena.NewArena(*Capacity, opts...)
	if err != nil {
		return err
	}
	defer a.Destroy()
	slog.Info("arena created", "capacity", a.Capacity(), "mmap", *Mmap)

	// Raw bump allocations share the region back to back.
	first := a.Alloc(7)
	copy(first, "Hello, ")
	second := a.Alloc(7)
	copy(second, "world!\n")
	slog.Info("raw allocations", "text", string(first)+string(second[:6]), "offset", a.Offset())

	// Aligned allocations pad to the requested boundary.
	for _, align := range []int{4, 8, 16} {
		b := a.AllocAligned(10, align)
		if b == nil {
			return fmt.Errorf("aligned allocation of 10 bytes at %d failed", align)
		}
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
		slog.Info("aligned allocation", "alignment", align, "addr", fmt.Sprintf("%#x", addr), "offset", a.Offset())
	}

	// Typed values ride on the same cursor.
	n := arena.New[int64](a)
	*n = 42
	slog.Info("typed allocation", "value", *n, "offset", a.Offset())

	s := a.Stats()
	slog.Info("usage", "in_use", s.InUse, "remaining", s.Remaining, "utilization", fmt.Sprintf("%.1f%%", s.Utilization*100))

	// One Clear releases everything at once and the region is reusable.
	a.Clear()
	slog.Info("cleared", "offset", a.Offset())

	// Copy duplicates live contents into a second arena.
	copy(a.Alloc(3), "abc")
	dst, err := arena.NewArena(*Capacity)
	if err != nil {
		return err
	}
	defer dst.Destroy()
	copied := arena.Copy(dst, a)
	slog.Info("copied", "bytes", copied, "dst_offset", dst.Offset())

	// The tracked variant records every allocation for introspection.
	ta, err := arena.NewTrackedArena(*Capacity)
	if err != nil {
		return err
	}
	defer ta.Destroy()

	x := ta.Alloc(5)
	ta.Alloc(25)
	rec, ok := ta.FindAllocation(unsafe.Pointer(unsafe.SliceData(x)))
	if !ok {
		return fmt.Errorf("tracked allocation not found")
	}
	slog.Info("tracked", "records", ta.AllocationCount(), "first_offset", rec.Offset, "first_size", rec.Size)

	return nil
}
