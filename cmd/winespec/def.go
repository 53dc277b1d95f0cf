package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"winespec/internal/render"
	"winespec/internal/spec"
)

func cmdDef(args []string) error {
	fs := flag.NewFlagSet("def", flag.ExitOnError)
	specPath := fs.String("spec", "", "input .spec file")
	out := fs.String("out", "", "output .def file")
	archName := fs.String("arch", "", "target architecture")
	importsOnly := fs.Bool("imports-only", false, "generate an importlib compatible .def file")
	noStdcallSuffix := fs.Bool("no-stdcall-suffix", false, "disable the stdcall @size suffix")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *specPath == "" || *out == "" || *archName == "" {
		return fmt.Errorf("--spec, --out and --arch are required")
	}
	target, err := resolveArch(*archName)
	if err != nil {
		return err
	}

	entries, err := spec.ReadFile(*specPath)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(*specPath)
	if err != nil {
		return fmt.Errorf("abs %s: %w", *specPath, err)
	}

	opts := render.DefOptions{
		SpecPath:        absPath,
		Library:         libraryName(*specPath),
		Arch:            target,
		ImportsOnly:     *importsOnly,
		NoStdcallSuffix: *noStdcallSuffix,
	}
	if err := render.WriteDef(*out, entries, opts); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *out)
	return nil
}

// libraryName derives the LIBRARY base name from the spec path.
func libraryName(specPath string) string {
	base := filepath.Base(specPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		return "library"
	}
	return base
}
