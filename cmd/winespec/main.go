package main

import (
	"fmt"
	"os"

	"winespec/internal/arch"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "def":
		err = cmdDef(os.Args[2:])
	case "stubs":
		err = cmdStubs(os.Args[2:])
	case "merge":
		err = cmdMerge(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// resolveArch normalizes a --arch value through the alias table and
// validates it against the canonical universe before any file is read.
func resolveArch(name string) (string, error) {
	normalized := arch.Normalize(name)
	if !arch.All().Contains(normalized) {
		return "", fmt.Errorf("unsupported architecture: %s", name)
	}
	return normalized, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `winespec — Wine .spec file tooling

Usage:
  winespec def   --spec <file> --out <file> --arch <arch>   Generate a Windows .def export list
  winespec stubs --spec <file> --out <file> --arch <arch>   Generate C stubs for unimplemented exports
  winespec merge --out <file> <input.spec>...               Merge spec files, resolving duplicates

Flags:
  --spec <file>         Input .spec file
  --out <file>          Output path
  --arch <arch>         Target architecture (i386, x86_64, arm, arm64, arm64ec; aliases accepted)
  --imports-only        def: generate an importlib compatible .def file
  --no-stdcall-suffix   def: disable the stdcall @size suffix

Merge inputs may be glob patterns (e.g. 'msvcr*.spec').
`)
}
