//go:build windows

package loader

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/wippyai/dynlink/errors"
)

var (
	modole32       = windows.NewLazySystemDLL("ole32.dll")
	coTaskMemAlloc = modole32.NewProc("CoTaskMemAlloc")
	coTaskMemFree  = modole32.NewProc("CoTaskMemFree")

	allocatorOnce sync.Once
)

// warmAllocator forces ole32.dll into the process before the first module
// snapshot. The COM allocator must be resident for symbol lookups that land
// in COM-backed modules. Safe to call redundantly; never torn down.
func warmAllocator() {
	allocatorOnce.Do(func() {
		mem, _, _ := coTaskMemAlloc.Call(unsafe.Sizeof(uintptr(0)))
		if mem != 0 {
			coTaskMemFree.Call(mem)
		}
	})
}

// scanProcess searches every module in a bounded snapshot of the process
// for symbol, in enumeration order, and returns the first hit.
func scanProcess(symbol string) (uintptr, error) {
	warmAllocator()

	proc, err := windows.OpenProcess(
		windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ,
		false, windows.GetCurrentProcessId())
	if err != nil {
		return 0, errors.EnumerationFailed("failed to open current process", err)
	}
	defer windows.CloseHandle(proc)

	const handleSize = uint32(unsafe.Sizeof(windows.Handle(0)))
	modules := make([]windows.Handle, ScanLimit())
	var needed uint32
	err = windows.EnumProcessModules(proc, &modules[0], uint32(len(modules))*handleSize, &needed)
	if err != nil {
		return 0, errors.EnumerationFailed("failed to enumerate process modules", err)
	}

	count := int(needed / handleSize)
	if count > len(modules) {
		// Snapshot truncated at the scan limit; the excess is not searched.
		Logger().Warn("module snapshot truncated",
			zap.Int("loaded", count),
			zap.Int("limit", len(modules)))
		count = len(modules)
	}

	for _, m := range modules[:count] {
		if addr, err := windows.GetProcAddress(m, symbol); err == nil && addr != 0 {
			return addr, nil
		}
	}

	return 0, errors.New(errors.PhaseScan, errors.KindSymbolNotFound).
		Symbol(symbol).
		Detail("none of the %d loaded modules exports the symbol", count).
		Build()
}
