// Package arch models Windows target architectures for spec entries:
// canonical names, spelling aliases, the win32/win64 groups, and the
// coverage-set algebra used to decide which architectures an export
// applies to.
package arch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknown = errors.New("arch: unknown architecture")

// aliases maps variant spellings to canonical names. Lookup keys are
// lowercase; Normalize lowercases before consulting the table.
var aliases = map[string]string{
	"i486":    "i386",
	"i586":    "i386",
	"i686":    "i386",
	"i786":    "i386",
	"amd64":   "x86_64",
	"aarch64": "arm64",
}

// Group membership, sorted so expansions are deterministic.
var (
	win32Members = []string{"arm", "i386"}
	win64Members = []string{"arm64", "arm64ec", "x86_64"}
)

var groups = map[string][]string{
	"win32": win32Members,
	"win64": win64Members,
}

var win32 = setOf(win32Members)
var win64 = setOf(win64Members)

// Normalize lowercases an architecture name and resolves aliases,
// preserving a leading '!' negation marker. Empty input stays empty.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	base, negated := strings.CutPrefix(name, "!")
	lowered := strings.ToLower(base)
	if canonical, ok := aliases[lowered]; ok {
		lowered = canonical
	}
	if negated {
		return "!" + lowered
	}
	return lowered
}

// Expand normalizes a name and expands group membership. Negation
// distributes over every member of the expansion. The result is sorted.
func Expand(name string) []string {
	normalized := Normalize(name)
	if normalized == "" {
		return nil
	}
	base, negated := strings.CutPrefix(normalized, "!")
	members, ok := groups[base]
	if !ok {
		members = []string{base}
	}
	out := make([]string, len(members))
	for i, m := range members {
		if negated {
			out[i] = "!" + m
		} else {
			out[i] = m
		}
	}
	return out
}

// PointerSize returns the pointer width in bytes for a concrete
// architecture: 4 for win32-class, 8 for win64-class.
func PointerSize(name string) (int, error) {
	switch {
	case win32.Contains(name):
		return 4, nil
	case win64.Contains(name):
		return 8, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknown, name)
}

// Set is a coverage set of concrete architecture names.
type Set map[string]struct{}

// NewSet builds a set from the given names.
func NewSet(names ...string) Set {
	return setOf(names)
}

// All returns a fresh set holding the full architecture universe.
func All() Set {
	s := make(Set, len(win32Members)+len(win64Members))
	for _, m := range win32Members {
		s[m] = struct{}{}
	}
	for _, m := range win64Members {
		s[m] = struct{}{}
	}
	return s
}

func setOf(names []string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes name from the set.
func (s Set) Remove(name string) {
	delete(s, name)
}

// Equal reports whether both sets hold exactly the same names.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	return s.SubsetOf(o)
}

// SubsetOf reports whether every name in s is also in o.
func (s Set) SubsetOf(o Set) bool {
	if len(s) > len(o) {
		return false
	}
	for n := range s {
		if !o.Contains(n) {
			return false
		}
	}
	return true
}

// DisjointFrom reports whether the two sets share no names.
func (s Set) DisjointFrom(o Set) bool {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	for n := range small {
		if large.Contains(n) {
			return false
		}
	}
	return true
}

// Names returns the set members in sorted order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
