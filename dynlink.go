package dynlink

import (
	"github.com/wippyai/dynlink/loader"
	"github.com/wippyai/dynlink/resolver"
)

// Library is an open dynamic library, the whole process, or the main
// executable image. See the loader package.
type Library = loader.Library

// Open loads the dynamic library at path.
func Open(path string) (*Library, error) {
	return loader.Open(path)
}

// Executable returns a Library for the main executable image.
func Executable() (*Library, error) {
	return loader.Executable()
}

// Process returns the Library representing every module loaded into the
// process.
func Process() *Library {
	return loader.Process()
}

// NewResolver creates a resolution orchestrator backed by registry.
// See the resolver package.
func NewResolver(registry *resolver.Registry) *resolver.Resolver {
	return resolver.New(registry)
}
