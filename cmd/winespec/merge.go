package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"winespec/internal/merge"
	"winespec/internal/spec"
)

func cmdMerge(args []string) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	out := fs.String("out", "", "output .spec file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("--out is required")
	}

	paths, err := expandInputs(fs.Args())
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	inputs := make([]merge.Input, 0, len(paths))
	for _, path := range paths {
		entries, err := spec.ReadFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, merge.Input{Name: specBaseName(path), Entries: entries})
	}

	res := merge.Merge(inputs)
	for _, c := range res.Conflicts {
		fmt.Fprintf(os.Stderr, "warning: %s\n", c)
	}

	if err := spec.WriteFile(*out, res.Entries); err != nil {
		return err
	}

	for _, fc := range res.PerFile {
		fmt.Fprintf(os.Stderr, "Merged %s.spec: %d / %d\n", fc.Name, fc.Added, fc.Total)
	}
	fmt.Fprintf(os.Stderr, "Total entries: %d\n", len(res.Entries))
	return nil
}

// expandInputs resolves glob patterns among the input arguments so
// 'msvcr*.spec' works even when the shell did not expand it. Literal
// paths pass through unchanged; matches are sorted for determinism.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, a := range args {
		if !strings.ContainsAny(a, "*?[{") {
			paths = append(paths, a)
			continue
		}
		matches, err := doublestar.FilepathGlob(a)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", a, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", a)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// specBaseName strips the directory and .spec extension for banner and
// summary lines.
func specBaseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".spec")
}
