// Package render generates DEF export lists and C stub sources from
// parsed spec entries.
package render

import (
	"errors"
	"fmt"
	"strings"

	"winespec/internal/spec"
)

var ErrNoFunctionName = errors.New("render: export entry has no function name")

// DefOptions controls DEF generation.
type DefOptions struct {
	SpecPath        string // source path recorded in the header comment
	Library         string // library base name, without .dll
	Arch            string // canonical target architecture
	ImportsOnly     bool   // importlib-compatible output, no internal aliases
	NoStdcallSuffix bool   // suppress the stdcall @size decoration
}

// Def renders a module-definition export list. Ordinals are assigned
// sequentially from 1 over the architecture-filtered subset, preserving
// entry order.
func Def(entries []*spec.Entry, opts DefOptions) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "; File generated automatically from %s; do not edit!\n\n", opts.SpecPath)
	fmt.Fprintf(&b, "LIBRARY %s.dll\n\n", opts.Library)
	b.WriteString("EXPORTS\n")

	ordinal := 0
	for _, e := range entries {
		if !selected(e, opts.Arch) {
			continue
		}
		ordinal++
		line, err := exportLine(e, ordinal, opts)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// selected implements the shared DEF/stub filter: a recognized export
// with a function name that applies to the target architecture.
func selected(e *spec.Entry, target string) bool {
	return e.IsExport() && e.FunctionName != "" && e.MatchesArch(target)
}

func exportLine(e *spec.Entry, ordinal int, opts DefOptions) (string, error) {
	if e.FunctionName == "" {
		return "", fmt.Errorf("%w (%s)", ErrNoFunctionName, e.Location())
	}

	internal := e.InternalName
	if internal == "" {
		internal = e.FunctionName
	}
	if e.Type == "stub" {
		internal = spec.CIdentifier(internal)
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(e.FunctionName)
	if e.Type == "stdcall" && !opts.NoStdcallSuffix {
		size, err := e.ArgumentsSize(opts.Arch)
		if err != nil {
			return "", fmt.Errorf("render: %s: %w", e.Location(), err)
		}
		fmt.Fprintf(&b, "@%d", size)
	}
	if !opts.ImportsOnly && internal != e.FunctionName {
		b.WriteByte('=')
		b.WriteString(internal)
	}
	fmt.Fprintf(&b, " @%d", ordinal)
	if e.Type == "extern" {
		b.WriteString(" DATA")
	}
	if e.IsPrivate() {
		b.WriteString(" PRIVATE")
	}
	return b.String(), nil
}
