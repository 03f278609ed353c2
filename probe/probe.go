package probe

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/wippyai/dynlink/errors"
	"github.com/wippyai/dynlink/loader"
)

// ProcessPath is the reserved plan path that probes the whole-process
// symbol space instead of opening a library.
const ProcessPath = "<process>"

// Plan describes the libraries and symbols to probe.
type Plan struct {
	Libraries []LibraryPlan `toml:"libraries"`
}

// LibraryPlan names one library and the symbols it is expected to export.
type LibraryPlan struct {
	Path    string   `toml:"path"`
	Symbols []string `toml:"symbols"`
}

// Result holds the outcome of probing one library.
type Result struct {
	Path    string
	Err     error           // set when the library could not be opened
	Symbols map[string]bool // symbol presence, populated when Err is nil
}

// Report aggregates the results of a plan run.
type Report struct {
	Results []Result
}

// Missing returns the symbols that were absent from libraries that opened.
func (r *Report) Missing() []LibraryPlan {
	var missing []LibraryPlan
	for _, res := range r.Results {
		if res.Err != nil {
			continue
		}
		var syms []string
		for sym, present := range res.Symbols {
			if !present {
				syms = append(syms, sym)
			}
		}
		if len(syms) > 0 {
			missing = append(missing, LibraryPlan{Path: res.Path, Symbols: syms})
		}
	}
	return missing
}

// LoadPlan reads and parses a TOML probe plan from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseProbe, errors.KindInvalidInput, err, "failed to read probe plan "+path)
	}
	return ParsePlan(data)
}

// ParsePlan parses a TOML probe plan.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := toml.Unmarshal(data, &plan); err != nil {
		return nil, errors.Wrap(errors.PhaseProbe, errors.KindInvalidInput, err, "failed to parse probe plan")
	}
	if len(plan.Libraries) == 0 {
		return nil, errors.InvalidInput(errors.PhaseProbe, "probe plan lists no libraries")
	}
	for _, lib := range plan.Libraries {
		if lib.Path == "" {
			return nil, errors.InvalidInput(errors.PhaseProbe, "probe plan entry has an empty path")
		}
	}
	return &plan, nil
}

// Run executes the plan. A library that fails to open is recorded in its
// Result and does not abort the rest of the run.
func Run(plan *Plan) *Report {
	report := &Report{Results: make([]Result, 0, len(plan.Libraries))}

	for _, entry := range plan.Libraries {
		report.Results = append(report.Results, probeLibrary(entry))
	}

	return report
}

func probeLibrary(entry LibraryPlan) Result {
	res := Result{Path: entry.Path}

	lib := loader.Process()
	if entry.Path != ProcessPath {
		opened, err := loader.Open(entry.Path)
		if err != nil {
			res.Err = err
			return res
		}
		defer opened.Close()
		lib = opened
	}

	res.Symbols = make(map[string]bool, len(entry.Symbols))
	for _, sym := range entry.Symbols {
		res.Symbols[sym] = lib.Exists(sym)
	}
	return res
}
