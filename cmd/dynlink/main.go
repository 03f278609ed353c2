package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/dynlink/loader"
	"github.com/wippyai/dynlink/probe"
	"github.com/wippyai/dynlink/resolver"
)

func main() {
	var (
		libPath     = flag.String("lib", "", "Path to a dynamic library (default: whole process)")
		symbol      = flag.String("sym", "", "Symbol to resolve")
		check       = flag.Bool("check", false, "Only report whether the symbol exists")
		planPath    = flag.String("probe", "", "Run a TOML probe plan and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			loader.SetLogger(logger)
			resolver.SetLogger(logger)
		}
	}

	switch {
	case *planPath != "":
		if err := runProbe(*planPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *interactive:
		if err := runInteractive(*libPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *symbol != "":
		if err := runResolve(*libPath, *symbol, *check); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: dynlink -sym <name> [-lib <path>] [-check]")
		fmt.Fprintln(os.Stderr, "       dynlink -probe <plan.toml>")
		fmt.Fprintln(os.Stderr, "       dynlink -i [-lib <path>]  (interactive mode)")
		os.Exit(1)
	}
}

// styled reports whether output should use terminal styling.
func styled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func render(style lipgloss.Style, s string) string {
	if styled() {
		return style.Render(s)
	}
	return s
}

// openScope opens the requested resolution scope: a library path, or the
// whole process when path is empty.
func openScope(path string) (*loader.Library, error) {
	if path == "" {
		return loader.Process(), nil
	}
	return loader.Open(path)
}

func runResolve(libPath, symbol string, checkOnly bool) error {
	lib, err := openScope(libPath)
	if err != nil {
		return err
	}
	defer lib.Close()

	if checkOnly {
		if lib.Exists(symbol) {
			fmt.Printf("%s %s\n", render(okStyle, "present"), symbol)
			return nil
		}
		fmt.Printf("%s %s\n", render(missStyle, "absent "), symbol)
		lib.Close()
		os.Exit(1)
		return nil
	}

	addr, err := lib.Resolve(symbol)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", render(okStyle, fmt.Sprintf("%#x", addr)), symbol, render(dimStyle, lib.Name()))
	return nil
}

func runProbe(planPath string) error {
	plan, err := probe.LoadPlan(planPath)
	if err != nil {
		return err
	}

	report := probe.Run(plan)
	for _, res := range report.Results {
		fmt.Printf("%s\n", res.Path)
		if res.Err != nil {
			fmt.Printf("  %s %v\n", render(missStyle, "error"), res.Err)
			continue
		}
		for sym, present := range res.Symbols {
			if present {
				fmt.Printf("  %s %s\n", render(okStyle, "present"), sym)
			} else {
				fmt.Printf("  %s %s\n", render(missStyle, "absent "), sym)
			}
		}
	}

	if missing := report.Missing(); len(missing) > 0 {
		fmt.Printf("\n%d librar%s with missing symbols\n", len(missing), plural(len(missing), "y", "ies"))
		os.Exit(1)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
