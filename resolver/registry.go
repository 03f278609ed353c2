package resolver

import (
	"sync"

	"github.com/wippyai/dynlink/errors"
)

// ResolverFunc resolves a symbol on behalf of one asset. argCount is the
// declared argument count of the foreign function, available for resolvers
// that encode arity in their symbol tables. A zero return means the
// resolver does not provide the symbol.
type ResolverFunc func(symbol string, argCount int) uintptr

// Registry holds per-asset resolver callbacks.
// Asset owners install resolvers; the Resolver only reads them.
// Registry is thread-safe.
type Registry struct {
	resolvers map[string]ResolverFunc
	mu        sync.RWMutex
}

// NewRegistry creates an empty resolver registry.
func NewRegistry() *Registry {
	return &Registry{
		resolvers: make(map[string]ResolverFunc),
	}
}

// Register installs fn as the resolver for asset, replacing any previous
// registration for the same asset.
func (r *Registry) Register(asset string, fn ResolverFunc) error {
	if asset == "" {
		return errors.InvalidInput(errors.PhaseRegistry, "asset identifier cannot be empty")
	}
	if fn == nil {
		return errors.InvalidInput(errors.PhaseRegistry, "resolver callback cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[asset] = fn
	return nil
}

// Unregister removes the resolver for asset, if one is installed.
func (r *Registry) Unregister(asset string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resolvers, asset)
}

// Lookup returns the resolver registered for asset. Absence of a
// registration is not an error; it signals OS-level resolution applies.
func (r *Registry) Lookup(asset string) (ResolverFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.resolvers[asset]
	return fn, ok
}
