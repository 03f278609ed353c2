//go:build windows

package loader

import (
	"golang.org/x/sys/windows"
)

// processSentinel marks the whole-process scope. Windows has no native
// search-all-modules handle, so resolveSymbol routes this value to the
// module scanner instead of GetProcAddress. A null module handle is never
// returned by LoadLibrary, so the sentinel cannot collide with a real
// library handle.
const processSentinel uintptr = 0

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func openExecutable() (uintptr, error) {
	h, err := windows.GetModuleHandle(nil)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func processHandle() uintptr {
	return processSentinel
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	if handle == processSentinel {
		return scanProcess(name)
	}
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	if handle == processSentinel {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
