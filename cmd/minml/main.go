package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/minml-lang/minml/internal/analyzer"
	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/config"
	"github.com/minml-lang/minml/internal/evaluator"
	"github.com/minml-lang/minml/internal/prettyprinter"
	"github.com/minml-lang/minml/internal/programs"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

func main() {
	configPath := flag.String("config", "", "path to a minml.yaml run manifest")
	list := flag.Bool("list", false, "list built-in programs and exit")
	trace := flag.Bool("trace", false, "print each program before running it")
	flag.Parse()

	if *list {
		for _, p := range programs.All() {
			fmt.Printf("%-14s %s\n", p.Name, prettyprinter.Print(p.Expr))
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "minml:", err)
		os.Exit(1)
	}
	if *trace {
		cfg.Trace = true
	}

	selected, err := selectPrograms(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "minml:", err)
		os.Exit(1)
	}

	useColor := colorEnabled(cfg)
	failed := 0
	for _, p := range selected {
		if !run(p, cfg.Trace, useColor) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "minml: %d of %d programs failed\n", failed, len(selected))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.RunConfig, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultConfigFile); err == nil {
		return config.Load(config.DefaultConfigFile)
	}
	return config.Default(), nil
}

func selectPrograms(cfg *config.RunConfig) ([]programs.Program, error) {
	if len(cfg.Programs) == 0 {
		return programs.All(), nil
	}
	var out []programs.Program
	for _, name := range cfg.Programs {
		p, ok := programs.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown program %q", name)
		}
		out = append(out, p)
	}
	return out, nil
}

func colorEnabled(cfg *config.RunConfig) bool {
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func run(p programs.Program, trace, useColor bool) bool {
	if trace {
		fmt.Printf("%s:\n  %s\n", p.Name, prettyprinter.Print(p.Expr))
	}

	typ, err := analyzer.Infer(analyzer.Empty, p.Expr)
	if err != nil {
		report(p.Name, false, useColor, fmt.Sprintf("type error: %v", err))
		return false
	}
	if !typ.Equal(p.Type) {
		report(p.Name, false, useColor, fmt.Sprintf("inferred %s, want %s", typ, p.Type))
		return false
	}

	val, err := evaluator.Eval(p.Expr)
	if err != nil {
		report(p.Name, false, useColor, fmt.Sprintf("runtime error: %v", err))
		return false
	}
	if !ast.Equal(val, p.Want) {
		report(p.Name, false, useColor,
			fmt.Sprintf("evaluated to %s, want %s", prettyprinter.Print(val), prettyprinter.Print(p.Want)))
		return false
	}

	report(p.Name, true, useColor, fmt.Sprintf("%s : %s", prettyprinter.Print(val), typ))
	return true
}

func report(name string, ok bool, useColor bool, detail string) {
	status := "PASS"
	color := ansiGreen
	if !ok {
		status = "FAIL"
		color = ansiRed
	}
	if useColor {
		fmt.Printf("%s%s%s %-14s %s\n", color, status, ansiReset, name, detail)
		return
	}
	fmt.Printf("%s %-14s %s\n", status, name, detail)
}
