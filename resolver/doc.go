// Package resolver maps (asset, symbol) pairs to native function pointers.
//
// # Main Types
//
//   - Registry: per-asset resolver callbacks, installed by asset owners
//   - Resolver: the orchestrator handed to a calling-convention bridge
//
// # Resolution Order
//
//  1. A resolver registered for the asset, if any. A registered resolver
//     is authoritative: when it returns no pointer the resolution fails,
//     it never falls through to OS-level search.
//  2. Process-wide symbol resolution through the loader package.
//
// An asset with no registration is not an error; it simply means OS-level
// resolution applies.
//
// # Thread Safety
//
// Registry and Resolver are safe for concurrent use. Each resolution is an
// independent, stateless request.
package resolver
