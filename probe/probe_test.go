package probe

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/wippyai/dynlink/loader"
)

const samplePlan = `
[[libraries]]
path = "libfoo.so"
symbols = ["add_ints", "subtract_ints"]

[[libraries]]
path = "<process>"
symbols = ["puts"]
`

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan([]byte(samplePlan))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(plan.Libraries) != 2 {
		t.Fatalf("got %d libraries, want 2", len(plan.Libraries))
	}
	if plan.Libraries[0].Path != "libfoo.so" {
		t.Errorf("unexpected path %q", plan.Libraries[0].Path)
	}
	if len(plan.Libraries[0].Symbols) != 2 {
		t.Errorf("got %d symbols, want 2", len(plan.Libraries[0].Symbols))
	}
	if plan.Libraries[1].Path != ProcessPath {
		t.Errorf("unexpected path %q, want %q", plan.Libraries[1].Path, ProcessPath)
	}
}

func TestParsePlan_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed toml", `[[libraries]`},
		{"no libraries", ``},
		{"empty path", "[[libraries]]\npath = \"\"\nsymbols = [\"x\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePlan([]byte(tt.data)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(samplePlan), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(plan.Libraries) != 2 {
		t.Errorf("got %d libraries, want 2", len(plan.Libraries))
	}

	if _, err := LoadPlan(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing plan file")
	}
}

func TestRun_BadLibraryIsRecordedNotFatal(t *testing.T) {
	plan := &Plan{Libraries: []LibraryPlan{
		{Path: "/definitely/not/here/libnope.so", Symbols: []string{"foo"}},
	}}

	report := Run(plan)
	if len(report.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(report.Results))
	}
	if report.Results[0].Err == nil {
		t.Error("open failure should be recorded in the result")
	}
	if len(report.Missing()) != 0 {
		t.Error("unopened libraries should not contribute missing symbols")
	}
}

func TestRun_ProcessScope(t *testing.T) {
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

	plan := &Plan{Libraries: []LibraryPlan{
		{Path: ProcessPath, Symbols: []string{symbol, "definitely_not_a_symbol_xyz"}},
	}}

	report := Run(plan)
	res := report.Results[0]
	if res.Err != nil {
		t.Fatalf("process scope probe: %v", res.Err)
	}
	if !res.Symbols[symbol] {
		t.Errorf("%q should be present process-wide", symbol)
	}
	if res.Symbols["definitely_not_a_symbol_xyz"] {
		t.Error("nonexistent symbol reported as present")
	}

	missing := report.Missing()
	if len(missing) != 1 || len(missing[0].Symbols) != 1 || missing[0].Symbols[0] != "definitely_not_a_symbol_xyz" {
		t.Errorf("unexpected missing set %+v", missing)
	}
}
