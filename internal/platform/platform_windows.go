//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Default returns the windows Platform implementation: reserve/commit/
// decommit/release via VirtualAlloc and VirtualFree with MEM_RESERVE,
// MEM_COMMIT, MEM_DECOMMIT, and MEM_RELEASE.
func Default() Platform { return windowsPlatform{} }

type windowsPlatform struct{}

func (windowsPlatform) PageSize() uintptr {
	var si windows.SystemInfo
	windows.GetSystemInfo(&si)
	return uintptr(si.PageSize)
}

func (windowsPlatform) Reserve(size uintptr) (unsafe.Pointer, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, fmt.Errorf("platform: VirtualAlloc reserve %d bytes: %w", size, err)
	}
	return unsafe.Pointer(addr), nil
}

func (windowsPlatform) Release(base unsafe.Pointer, size uintptr) error {
	if err := windows.VirtualFree(uintptr(base), 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("platform: VirtualFree release %d bytes: %w", size, err)
	}
	return nil
}

func (windowsPlatform) Commit(base unsafe.Pointer, size uintptr) error {
	if size == 0 {
		return nil
	}
	if _, err := windows.VirtualAlloc(uintptr(base), size, windows.MEM_COMMIT, windows.PAGE_READWRITE); err != nil {
		return fmt.Errorf("platform: VirtualAlloc commit %d bytes: %w", size, err)
	}
	return nil
}

func (windowsPlatform) Decommit(base unsafe.Pointer, offset, size uintptr) error {
	if size == 0 {
		return nil
	}
	addr := uintptr(unsafe.Add(base, offset))
	if err := windows.VirtualFree(addr, size, windows.MEM_DECOMMIT); err != nil {
		return fmt.Errorf("platform: VirtualFree decommit %d bytes: %w", size, err)
	}
	return nil
}
