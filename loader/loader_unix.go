//go:build darwin || linux || freebsd

package loader

import (
	"github.com/ebitengine/purego"
)

// The unix loader has a native search-everything pseudo-handle
// (RTLD_DEFAULT), so no manual module scan is needed on this platform.

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func openExecutable() (uintptr, error) {
	// Symbols exported by the executable image are reachable through the
	// loader's global scope, the dlopen(NULL) equivalence.
	return purego.RTLD_DEFAULT, nil
}

func processHandle() uintptr {
	return purego.RTLD_DEFAULT
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
