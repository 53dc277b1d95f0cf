package render

import (
	"fmt"
	"os"
	"path/filepath"

	"winespec/internal/spec"
)

// WriteDef renders a DEF file and writes it, creating the output
// directory if needed.
func WriteDef(path string, entries []*spec.Entry, opts DefOptions) error {
	text, err := Def(entries, opts)
	if err != nil {
		return err
	}
	return writeText(path, text)
}

// WriteStubs renders a stub C source and writes it. Returns the stub
// count for the caller's summary.
func WriteStubs(path string, entries []*spec.Entry, target string) (int, error) {
	text, count, err := Stubs(entries, target)
	if err != nil {
		return 0, err
	}
	if err := writeText(path, text); err != nil {
		return 0, err
	}
	return count, nil
}

func writeText(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("render: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}
