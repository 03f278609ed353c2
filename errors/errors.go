package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in symbol resolution the error occurred
type Phase string

const (
	PhaseOpen     Phase = "open"     // loading a dynamic library
	PhaseResolve  Phase = "resolve"  // per-handle symbol lookup
	PhaseScan     Phase = "scan"     // process-wide module scan
	PhaseRegistry Phase = "registry" // asset resolver registration
	PhaseProbe    Phase = "probe"    // probe plan execution
)

// Kind categorizes the error
type Kind string

const (
	KindLoadFailed        Kind = "load_failed"
	KindSymbolNotFound    Kind = "symbol_not_found"
	KindEnumerationFailed Kind = "enumeration_failed"
	KindResolverMiss      Kind = "resolver_miss"
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupported       Kind = "unsupported"
)

// Error is the structured error type used throughout dynlink
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Symbol  string
	Library string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" || e.Library != "" {
		b.WriteString(": ")
		if e.Symbol != "" && e.Library != "" {
			fmt.Fprintf(&b, "symbol %q in %q", e.Symbol, e.Library)
		} else if e.Symbol != "" {
			fmt.Fprintf(&b, "symbol %q", e.Symbol)
		} else {
			fmt.Fprintf(&b, "library %q", e.Library)
		}
	}

	if e.Detail != "" {
		if e.Symbol != "" || e.Library != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Symbol sets the symbol name the error refers to
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Library sets the library path or asset identifier
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LoadFailed creates a library load error. The library name appears in the
// final message so the call site needs no extra context.
func LoadFailed(library string, cause error) *Error {
	return &Error{
		Phase:   PhaseOpen,
		Kind:    KindLoadFailed,
		Library: library,
		Detail:  "failed to load dynamic library",
		Cause:   cause,
	}
}

// SymbolNotFound creates a symbol lookup failure error
func SymbolNotFound(phase Phase, symbol, library string, cause error) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindSymbolNotFound,
		Symbol:  symbol,
		Library: library,
		Cause:   cause,
	}
}

// EnumerationFailed creates a process module snapshot failure error
func EnumerationFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindEnumerationFailed,
		Detail: detail,
		Cause:  cause,
	}
}

// ResolverMiss creates an error for a registered asset resolver that
// returned no pointer for a symbol
func ResolverMiss(symbol, asset string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindResolverMiss,
		Symbol:  symbol,
		Library: asset,
		Detail:  "registered resolver could not resolve function",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported platform error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
