package resolver

import (
	"go.uber.org/zap"

	"github.com/wippyai/dynlink/errors"
	"github.com/wippyai/dynlink/loader"
)

// Resolver turns (asset, symbol) pairs into native function pointers.
// It is the function pointer a calling-convention bridge installs as
// "the" FFI resolver.
//
// Resolver is safe for concurrent use; resolutions are independent.
type Resolver struct {
	registry *Registry
	process  *loader.Library
}

// New creates a Resolver backed by registry. A nil registry behaves like an
// empty one: every resolution goes through process-wide search.
func New(registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{
		registry: registry,
		process:  loader.Process(),
	}
}

// Registry returns the registry consulted before OS-level resolution.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// ResolveNative resolves symbol for asset and returns its address.
// argCount is the declared argument count of the foreign function, passed
// through to a registered resolver.
//
// A registered resolver is authoritative for its asset: when it returns no
// pointer the resolution fails even if a symbol of the same name exists
// process-wide. The returned error names both the symbol and the asset.
func (r *Resolver) ResolveNative(asset, symbol string, argCount int) (uintptr, error) {
	if symbol == "" {
		return 0, errors.InvalidInput(errors.PhaseResolve, "symbol name cannot be empty")
	}

	if fn, ok := r.registry.Lookup(asset); ok {
		addr := fn(symbol, argCount)
		if addr == 0 {
			return 0, errors.ResolverMiss(symbol, asset)
		}
		Logger().Debug("resolved via asset resolver",
			zap.String("asset", asset),
			zap.String("symbol", symbol),
			zap.Uintptr("addr", addr))
		return addr, nil
	}

	addr, err := r.process.Resolve(symbol)
	if err != nil {
		return 0, errors.New(errors.PhaseResolve, errors.KindSymbolNotFound).
			Symbol(symbol).
			Library(asset).
			Detail("could not resolve native function").
			Cause(err).
			Build()
	}
	Logger().Debug("resolved process-wide",
		zap.String("asset", asset),
		zap.String("symbol", symbol),
		zap.Uintptr("addr", addr))
	return addr, nil
}
