package loader

import (
	"go.uber.org/zap"

	"github.com/wippyai/dynlink/errors"
)

// Library is an open dynamic library, the whole process, or the main
// executable image. The zero value is not usable; obtain a Library from
// Open, Executable, or Process.
//
// Two Library values refer to the same underlying object exactly when
// their Handle values are equal.
type Library struct {
	handle uintptr
	name   string
	pseudo bool // process or executable scope, not owned, never closed
}

// Open loads the dynamic library at path.
// The returned Library is owned by the caller.
func Open(path string) (*Library, error) {
	if path == "" {
		return nil, errors.InvalidInput(errors.PhaseOpen, "library path cannot be empty")
	}
	h, err := openLibrary(path)
	if err != nil {
		return nil, errors.LoadFailed(path, err)
	}
	Logger().Debug("opened library",
		zap.String("path", path),
		zap.Uintptr("handle", h))
	return &Library{handle: h, name: path}, nil
}

// Executable returns a Library for the main executable image.
func Executable() (*Library, error) {
	h, err := openExecutable()
	if err != nil {
		return nil, errors.LoadFailed("<executable>", err)
	}
	return &Library{handle: h, name: "<executable>", pseudo: true}, nil
}

// Process returns the Library representing every module loaded into the
// process. Resolving through it searches all loaded modules.
func Process() *Library {
	return &Library{handle: processHandle(), name: "<process>", pseudo: true}
}

// Handle returns the platform handle value. Handles compare equal exactly
// when they refer to the same underlying library object.
func (l *Library) Handle() uintptr { return l.handle }

// Name returns the path or scope name the Library was opened with.
func (l *Library) Name() string { return l.name }

// Resolve looks up symbol and returns its address.
// A failed lookup returns a zero address and an error naming the symbol.
func (l *Library) Resolve(symbol string) (uintptr, error) {
	if symbol == "" {
		return 0, errors.InvalidInput(errors.PhaseResolve, "symbol name cannot be empty")
	}
	addr, err := resolveSymbol(l.handle, symbol)
	if err != nil {
		return 0, errors.SymbolNotFound(errors.PhaseResolve, symbol, l.name, err)
	}
	Logger().Debug("resolved symbol",
		zap.String("symbol", symbol),
		zap.String("library", l.name),
		zap.Uintptr("addr", addr))
	return addr, nil
}

// Exists reports whether symbol can be resolved through this Library.
// Any lookup failure is discarded; only presence is reported.
func (l *Library) Exists(symbol string) bool {
	if symbol == "" {
		return false
	}
	addr, err := resolveSymbol(l.handle, symbol)
	return err == nil && addr != 0
}

// Close unloads the library. Symbols resolved through the Library must not
// be used after Close. Closing the process or executable scope is a no-op.
func (l *Library) Close() error {
	if l == nil || l.pseudo || l.handle == 0 {
		return nil
	}
	if err := closeLibrary(l.handle); err != nil {
		return errors.Wrap(errors.PhaseOpen, errors.KindLoadFailed, err, "failed to close library "+l.name)
	}
	l.handle = 0
	return nil
}
