// Package merge combines parsed spec files into one deduplicated,
// order-preserving entry sequence.
package merge

import (
	"fmt"

	"winespec/internal/spec"
)

// Input is one spec file's parsed entries. Name is the file's base name
// without the .spec extension, used for the banner comment.
type Input struct {
	Name    string
	Entries []*spec.Entry
}

// FileCount reports how many entries a source file contributed.
type FileCount struct {
	Name  string
	Added int
	Total int
}

// Conflict records an unresolved collision between two definitions of
// the same export. The existing definition is kept.
type Conflict struct {
	Key      string
	Existing *spec.Entry
	New      *spec.Entry
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflicting definitions for %s:\n  existing: %s (%s)\n  new:      %s (%s)\n  keeping existing definition",
		c.Key,
		c.Existing.CanonicalLine(), c.Existing.Location(),
		c.New.CanonicalLine(), c.New.Location())
}

// Result is the outcome of one merge invocation.
type Result struct {
	Entries    []*spec.Entry // merged sequence, input order preserved
	Duplicates int           // entries discarded as duplicates or conflicts
	Replaced   int           // entries superseded by a later definition
	Conflicts  []Conflict
	PerFile    []FileCount // per input file, in input order
}

// merger owns the working state of one Merge call. Output slots are
// identity handles: replacement assigns into a slot index and removal
// nils one out, so two structurally identical entries are never
// confused and no value-equality scan ever runs.
type merger struct {
	slots []*spec.Entry // output sequence; nil marks a removed slot
	byKey map[string][]int
	res   *Result
}

// Merge processes files strictly in input order and entries strictly in
// line order. Passthrough lines are appended verbatim behind a
// "# Entries from <name>.spec" banner inserted once per input file.
// Given identical input, the output is byte-identical; merging a merge
// result reproduces it.
func Merge(inputs []Input) *Result {
	m := &merger{
		byKey: make(map[string][]int),
		res:   &Result{},
	}

	for _, in := range inputs {
		m.appendRaw(synthetic(""))
		m.appendRaw(synthetic("# Entries from " + in.Name + ".spec"))
		m.appendRaw(synthetic(""))

		added := 0
		for _, e := range in.Entries {
			if e.IsExport() {
				if m.addExport(e) {
					added++
				}
			} else {
				m.appendRaw(e)
			}
		}
		m.res.PerFile = append(m.res.PerFile, FileCount{
			Name:  in.Name,
			Added: added,
			Total: len(in.Entries),
		})
	}

	m.res.Entries = make([]*spec.Entry, 0, len(m.slots))
	for _, e := range m.slots {
		if e != nil {
			m.res.Entries = append(m.res.Entries, e)
		}
	}
	return m.res
}

func synthetic(text string) *spec.Entry {
	return spec.Parse(text, 0, "generated")
}

func (m *merger) appendRaw(e *spec.Entry) {
	m.slots = append(m.slots, e)
}

// addExport applies the per-pair decision sequence against every
// existing entry sharing the export key, in insertion order. Returns
// true if the entry entered the output (appended or substituted).
func (m *merger) addExport(e *spec.Entry) bool {
	key := e.ExportKey()
	if key == "" {
		return false
	}

	coverage := e.Coverage()
	indices := m.byKey[key]

	var pending []int
	for _, idx := range indices {
		existing := m.slots[idx]
		existingCoverage := existing.Coverage()

		if coverage.DisjointFrom(existingCoverage) {
			// No overlap; both may coexist.
			continue
		}

		sameSig := e.MatchesSignature(existing)
		if coverage.Equal(existingCoverage) {
			if sameSig {
				m.res.Duplicates++
				return false
			}
			if existing.Type == "stub" && e.Type != "stub" {
				// Implementation supersedes the stub.
				pending = append(pending, idx)
				continue
			}
			if e.Type == "stub" && existing.Type != "stub" {
				// A stub never displaces an implementation.
				m.res.Duplicates++
				return false
			}
		}

		if existingCoverage.SubsetOf(coverage) && sameSig {
			// New entry covers the existing one.
			pending = append(pending, idx)
			continue
		}
		if coverage.SubsetOf(existingCoverage) && sameSig {
			// Existing entry already covers the new one.
			m.res.Duplicates++
			return false
		}

		m.res.Conflicts = append(m.res.Conflicts, Conflict{Key: key, Existing: existing, New: e})
		m.res.Duplicates++
		return false
	}

	if len(pending) > 0 {
		m.replace(key, pending, e)
		return true
	}

	m.slots = append(m.slots, e)
	m.byKey[key] = append(indices, len(m.slots)-1)
	return true
}

// replace substitutes e into the first pending slot, keeping its
// earliest supersession point, and removes the remaining slots.
func (m *merger) replace(key string, pending []int, e *spec.Entry) {
	m.slots[pending[0]] = e
	m.res.Replaced++

	if len(pending) == 1 {
		return
	}
	removed := make(map[int]bool, len(pending)-1)
	for _, idx := range pending[1:] {
		m.slots[idx] = nil
		removed[idx] = true
		m.res.Replaced++
	}
	kept := m.byKey[key][:0]
	for _, idx := range m.byKey[key] {
		if !removed[idx] {
			kept = append(kept, idx)
		}
	}
	m.byKey[key] = kept
}
