//go:build !darwin && !linux && !freebsd && !windows

package loader

import (
	"github.com/wippyai/dynlink/errors"
)

// Dynamic loading is not available on this platform.

func openLibrary(path string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseOpen, "dynamic loading not available on this platform")
}

func openExecutable() (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseOpen, "dynamic loading not available on this platform")
}

func processHandle() uintptr {
	return 0
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseResolve, "dynamic loading not available on this platform")
}

func closeLibrary(handle uintptr) error {
	return nil
}
