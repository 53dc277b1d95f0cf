package main

import (
	"flag"
	"fmt"
	"os"

	"winespec/internal/render"
	"winespec/internal/spec"
)

func cmdStubs(args []string) error {
	fs := flag.NewFlagSet("stubs", flag.ExitOnError)
	specPath := fs.String("spec", "", "input .spec file")
	out := fs.String("out", "", "output .c file")
	archName := fs.String("arch", "", "target architecture")

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

	count, err := render.WriteStubs(*out, entries, target)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d stubs)\n", *out, count)
	return nil
}
