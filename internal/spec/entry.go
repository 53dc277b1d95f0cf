// Package spec parses Wine-style .spec files into immutable entry values
// and reconstructs them for output.
package spec

import (
	"fmt"
	"sort"
	"strings"

	"winespec/internal/arch"
)

// Entry is one physical line of a spec file: either a parsed export
// declaration or a passthrough line (comment, blank, or anything the
// parser could not recognize). Entries are never mutated after parse.
type Entry struct {
	Line       string // source text, trailing whitespace stripped
	LineNum    int    // 1-based, 0 for synthetic entries
	SourceFile string

	// Export fields, set only when Type is non-empty.
	Type         string   // cdecl, stdcall, thiscall, varargs, stub, extern, equate, ...
	Modifiers    []string // ordered flag tokens: -private, -norelay, -arch=..., ...
	FunctionName string   // exported symbol
	Args         string   // parenthesized argument text, "" when absent
	InternalName string   // implementation symbol, defaults to FunctionName
	Comment      string   // trailing # comment text
}

// IsExport reports whether the entry is a parsed export declaration.
func (e *Entry) IsExport() bool { return e.Type != "" }

// ExportKey returns the deduplication key used by merging.
func (e *Entry) ExportKey() string { return e.FunctionName }

// Location renders the source position for diagnostics.
func (e *Entry) Location() string {
	return fmt.Sprintf("%s:%d", e.SourceFile, e.LineNum)
}

// CanonicalLine reconstructs the entry without its trailing comment.
// Passthrough lines return their source text unchanged.
func (e *Entry) CanonicalLine() string {
	if !e.IsExport() {
		return e.Line
	}
	parts := make([]string, 0, len(e.Modifiers)+4)
	parts = append(parts, "@", e.Type)
	parts = append(parts, e.Modifiers...)
	parts = append(parts, e.FunctionName+e.Args)
	if e.InternalName != "" && e.InternalName != e.FunctionName {
		parts = append(parts, e.InternalName)
	}
	return strings.Join(parts, " ")
}

// MatchesSignature reports whether two entries declare the same export:
// same type, same non-architecture modifiers, same name, argument text,
// and internal name. Architecture modifiers are compared separately via
// coverage.
func (e *Entry) MatchesSignature(o *Entry) bool {
	if e.Type != o.Type ||
		e.FunctionName != o.FunctionName ||
		e.Args != o.Args ||
		e.InternalName != o.InternalName {
		return false
	}
	a, b := e.nonArchModifiers(), o.nonArchModifiers()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (e *Entry) nonArchModifiers() []string {
	mods := make([]string, 0, len(e.Modifiers))
	for _, m := range e.Modifiers {
		if !strings.HasPrefix(m, "-arch=") {
			mods = append(mods, m)
		}
	}
	sort.Strings(mods)
	return mods
}

// HasArchModifier reports whether any -arch= modifier is present.
func (e *Entry) HasArchModifier() bool {
	for _, m := range e.Modifiers {
		if strings.HasPrefix(m, "-arch=") {
			return true
		}
	}
	return false
}

// ArchTargets returns the sorted, normalized expansion of every
// architecture named in the entry's -arch= modifiers. Negated names keep
// their '!' prefix.
func (e *Entry) ArchTargets() []string {
	seen := make(map[string]struct{})
	for _, m := range e.Modifiers {
		list, ok := strings.CutPrefix(m, "-arch=")
		if !ok {
			continue
		}
		for _, part := range strings.Split(list, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			for _, target := range arch.Expand(name) {
				seen[target] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for target := range seen {
		out = append(out, target)
	}
	sort.Strings(out)
	return out
}

// Coverage returns the concrete architecture set the entry applies to.
// When only exclusions were named, the positive set defaults to the full
// universe before the excluded base names are subtracted.
func (e *Entry) Coverage() arch.Set {
	include := arch.NewSet()
	var exclude []string
	for _, target := range e.ArchTargets() {
		if base, negated := strings.CutPrefix(target, "!"); negated {
			exclude = append(exclude, base)
		} else {
			include.Add(target)
		}
	}
	if len(include) == 0 {
		include = arch.All()
	}
	for _, base := range exclude {
		include.Remove(base)
	}
	return include
}

// MatchesArch reports whether the entry applies to the target
// architecture. Entries without -arch= modifiers match unconditionally.
func (e *Entry) MatchesArch(target string) bool {
	if !e.HasArchModifier() {
		return true
	}
	return e.Coverage().Contains(target)
}

// ArgumentTypes returns the argument type tokens, without parentheses.
// A trailing "..." variadic marker is returned as a token.
func (e *Entry) ArgumentTypes() []string {
	if len(e.Args) < 2 {
		return nil
	}
	inner := strings.TrimSpace(e.Args[1 : len(e.Args)-1])
	if inner == "" {
		return nil
	}
	return strings.Fields(inner)
}

// ArgumentsSize returns the stack bytes consumed by the argument list on
// the given architecture. Feeds the stdcall name-decoration suffix.
func (e *Entry) ArgumentsSize(target string) (int, error) {
	pointerSize, err := arch.PointerSize(target)
	if err != nil {
		return 0, err
	}
	size := 0
	for _, t := range e.ArgumentTypes() {
		switch t {
		case "int64", "double":
			size += 8
		case "int128":
			if target == "x86_64" {
				// Passed by pointer on x86_64.
				size += pointerSize
			} else {
				size += 16
			}
		default:
			size += pointerSize
		}
	}
	return size, nil
}

// IsPrivate reports whether the entry carries a -private modifier.
func (e *Entry) IsPrivate() bool {
	for _, m := range e.Modifiers {
		if m == "-private" {
			return true
		}
	}
	return false
}
