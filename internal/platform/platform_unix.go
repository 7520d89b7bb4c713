//go:build unix

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Default returns the unix Platform implementation: reserve via anonymous
// private mmap with no access, commit via mprotect to read/write, decommit
// via mprotect back to no access plus an madvise(DONTNEED) hint, release
// via munmap.
func Default() Platform { return unixPlatform{} }

type unixPlatform struct{}

func (unixPlatform) PageSize() uintptr {
	return uintptr(unix.Getpagesize())
}

func (unixPlatform) Reserve(size uintptr) (unsafe.Pointer, error) {
	n := size
	if n == 0 {
		n = 1
	}
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("platform: mmap reserve %d bytes: %w", size, err)
	}
	return unsafe.Pointer(unsafe.SliceData(b)), nil
}

func (unixPlatform) Release(base unsafe.Pointer, size uintptr) error {
	n := size
	if n == 0 {
		n = 1
	}
	b := unsafe.Slice((*byte)(base), int(n))
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("platform: munmap release %d bytes: %w", size, err)
	}
	return nil
}

func (unixPlatform) Commit(base unsafe.Pointer, size uintptr) error {
	if size == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(base), int(size))
	if err := unix.Mprotect(b, unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return fmt.Errorf("platform: mprotect commit %d bytes: %w", size, err)
	}
	return nil
}

func (unixPlatform) Decommit(base unsafe.Pointer, offset, size uintptr) error {
	if size == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Add(base, offset)), int(size))
	if err := unix.Mprotect(b, unix.PROT_NONE); err != nil {
		return fmt.Errorf("platform: mprotect decommit %d bytes: %w", size, err)
	}
	// Best-effort: ask the kernel to drop the physical pages now rather
	// than on next reclaim. Mprotect(PROT_NONE) already makes the range
	// inaccessible, so a madvise failure here isn't fatal to correctness.
	_ = unix.Madvise(b, unix.MADV_DONTNEED)
	return nil
}
