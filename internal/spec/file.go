package spec

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile parses every line of a spec file, 1-based line numbering.
func ReadFile(path string) ([]*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spec: open: %w", err)
	}
	defer f.Close()

	var entries []*Entry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		entries = append(entries, Parse(sc.Text(), lineNum, path))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spec: read %s: %w", path, err)
	}
	return entries, nil
}

// WriteFile writes entries back out as spec text. Each entry contributes
// its original source line, preserving round-trip fidelity.
func WriteFile(path string, entries []*Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("spec: write %s: %w", path, err)
	}
	return nil
}
