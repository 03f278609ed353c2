// Package errors provides structured error types for the dynlink library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the symbol name, the
// library or asset it was looked up in, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindSymbolNotFound).
//		Symbol("subtract_ints").
//		Library("libfoo.so").
//		Detail("symbol lookup failed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LoadFailed("libfoo.so", cause)
//	err := errors.SymbolNotFound(errors.PhaseResolve, "add_ints", "libfoo.so", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
