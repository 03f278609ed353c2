// Package loader opens dynamic libraries and resolves symbols in them.
//
// # Main Types
//
//   - Library: an open dynamic library, the whole process, or the main
//     executable image
//
// # Resolution Scopes
//
// Three scopes are supported:
//
//	Open(path)   - a specific library loaded from a path
//	Executable() - the main executable image
//	Process()    - every module currently loaded into the process
//
// On unix platforms the process scope maps onto the loader's native
// search-everything pseudo-handle. Windows has no such primitive, so the
// process scope is a distinguished sentinel handle and Resolve walks a
// snapshot of all loaded modules instead.
//
// # Thread Safety
//
// Library is safe for concurrent symbol resolution. Close must not race
// with in-flight Resolve calls on the same Library.
package loader
