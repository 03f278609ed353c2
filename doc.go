// Package dynlink resolves symbolic function names to callable native
// function pointers for a foreign-function interface.
//
// It reconciles three resolution strategies: explicit dynamic-library
// lookup, whole-process lookup, and pluggable per-asset resolver callbacks.
// The resolved address is an opaque callable pointer; argument marshalling
// and the native call trampoline are the consumer's concern.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	dynlink/         Root package re-exporting the main entry points
//	├── loader/      Platform loader, symbol resolver, process module scanner
//	├── resolver/    Per-asset resolver registry and fallback orchestrator
//	├── probe/       Dry-run symbol availability checks from TOML plans
//	└── errors/      Structured error types for diagnostics
//
// # Quick Start
//
// Resolve a symbol from a specific library:
//
//	lib, err := dynlink.Open("libfoo.so")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	addr, err := lib.Resolve("add_ints")
//
// Resolve process-wide, or through per-asset resolvers:
//
//	registry := resolver.NewRegistry()
//	registry.Register("my_asset", myResolver)
//
//	r := resolver.New(registry)
//	addr, err := r.ResolveNative("my_asset", "add_ints", 2)
//
// # Platform Strategy
//
// On unix platforms the native loader exposes a search-everything
// pseudo-handle, and process-wide resolution maps directly onto it.
// Windows has no equivalent primitive; process-wide resolution walks a
// bounded snapshot of every module loaded into the process. The strategy
// is fixed per target platform at build time.
//
// # Thread Safety
//
// All entry points are safe for concurrent use. Each resolution is an
// independent, stateless request.
package dynlink
