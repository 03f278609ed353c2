package resolver

import (
	stderrors "errors"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/wippyai/dynlink/errors"
	"github.com/wippyai/dynlink/loader"
)

// processSymbol returns a symbol known to exist in the process-wide symbol
// space on the test host.
func processSymbol(t *testing.T) string {
	t.Helper()

	var symbol string
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
		symbol = "malloc"
	case "windows":
		symbol = "GetCurrentProcessId"
	default:
		t.Skipf("no process-wide symbol space on %s", runtime.GOOS)
	}
	if !loader.Process().Exists(symbol) {
		t.Skipf("symbol %q not present process-wide", symbol)
	}
	return symbol
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("", func(string, int) uintptr { return 1 }); err == nil {
		t.Error("expected error for empty asset identifier")
	}
	if err := reg.Register("asset", nil); err == nil {
		t.Error("expected error for nil resolver callback")
	}

	if err := reg.Register("asset", func(string, int) uintptr { return 1 }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := reg.Lookup("asset"); !ok {
		t.Error("registered resolver not found")
	}
	if _, ok := reg.Lookup("other"); ok {
		t.Error("lookup of unregistered asset should report absence")
	}

	reg.Unregister("asset")
	if _, ok := reg.Lookup("asset"); ok {
		t.Error("resolver still present after Unregister")
	}
}

func TestResolveNative_RegisteredHit(t *testing.T) {
	const want = uintptr(0xdeadbeef)
	reg := NewRegistry()
	var gotSymbol string
	var gotArgc int
	reg.Register("my_asset", func(symbol string, argCount int) uintptr {
		gotSymbol, gotArgc = symbol, argCount
		return want
	})

	r := New(reg)
	addr, err := r.ResolveNative("my_asset", "add_ints", 2)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if addr != want {
		t.Errorf("addr = %#x, want %#x", addr, want)
	}
	if gotSymbol != "add_ints" || gotArgc != 2 {
		t.Errorf("resolver invoked with (%q, %d), want (add_ints, 2)", gotSymbol, gotArgc)
	}
}

func TestResolveNative_RegisteredMissDoesNotFallThrough(t *testing.T) {
	symbol := processSymbol(t)

	// The resolver owns resolution for its asset: a miss must fail even
	// though the same symbol is resolvable process-wide.
	reg := NewRegistry()
	reg.Register("my_asset", func(string, int) uintptr { return 0 })

	r := New(reg)
	addr, err := r.ResolveNative("my_asset", symbol, 1)
	if err == nil {
		t.Fatalf("expected error, got address %#x", addr)
	}
	if addr != 0 {
		t.Error("failed resolution should return a zero address")
	}
	msg := err.Error()
	if !strings.Contains(msg, symbol) || !strings.Contains(msg, "my_asset") {
		t.Errorf("error %q should name both the symbol and the asset", msg)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindResolverMiss}) {
		t.Errorf("expected resolver_miss error, got %v", err)
	}
}

func TestResolveNative_UnregisteredUsesProcess(t *testing.T) {
	symbol := processSymbol(t)

	want, err := loader.Process().Resolve(symbol)
	if err != nil {
		t.Fatalf("process-wide resolve %q: %v", symbol, err)
	}

	r := New(NewRegistry())
	got, err := r.ResolveNative("my_asset", symbol, 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != want {
		t.Errorf("ResolveNative = %#x, want the process-wide address %#x", got, want)
	}
}

func TestResolveNative_UnresolvedNamesAssetAndSymbol(t *testing.T) {
	processSymbol(t) // ensure OS resolution works on this host

	r := New(NewRegistry())
	_, err := r.ResolveNative("my_asset", "definitely_not_a_symbol_xyz", 0)
	if err == nil {
		t.Fatal("expected error for unresolvable symbol")
	}
	msg := err.Error()
	if !strings.Contains(msg, "definitely_not_a_symbol_xyz") || !strings.Contains(msg, "my_asset") {
		t.Errorf("error %q should name both the symbol and the asset", msg)
	}
}

func TestResolveNative_EmptySymbol(t *testing.T) {
	r := New(nil)
	if _, err := r.ResolveNative("asset", "", 0); err == nil {
		t.Error("expected error for empty symbol name")
	}
}

func TestResolveNative_NilRegistry(t *testing.T) {
	r := New(nil)
	if r.Registry() == nil {
		t.Fatal("nil registry should be replaced with an empty one")
	}
}

func TestResolveNative_Concurrent(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", func(symbol string, _ int) uintptr {
		if symbol == "hit" {
			return 0x1000
		}
		return 0
	})
	reg.Register("b", func(string, int) uintptr { return 0x2000 })

	r := New(reg)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if addr, err := r.ResolveNative("a", "hit", 0); err != nil || addr != 0x1000 {
					t.Errorf("asset a: addr=%#x err=%v", addr, err)
					return
				}
				if addr, err := r.ResolveNative("b", "anything", 0); err != nil || addr != 0x2000 {
					t.Errorf("asset b: addr=%#x err=%v", addr, err)
					return
				}
				if _, err := r.ResolveNative("a", "miss", 0); err == nil {
					t.Error("asset a miss: expected error")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
