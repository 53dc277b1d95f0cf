package spec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"winespec/internal/arch"
)

func parseLine(t *testing.T, line string) *Entry {
	t.Helper()
	e := Parse(line, 1, "test.spec")
	if !e.IsExport() {
		t.Fatalf("Parse(%q) did not produce an export entry", line)
	}
	return e
}

func TestCoverageNoArchModifier(t *testing.T) {
	e := parseLine(t, "@ cdecl Foo(long)")
	if !e.Coverage().Equal(arch.All()) {
		t.Errorf("Coverage() = %v, want full universe", e.Coverage().Names())
	}
	for _, a := range arch.All().Names() {
		if !e.MatchesArch(a) {
			t.Errorf("MatchesArch(%q) = false, want true", a)
		}
	}
}

func TestCoverageGroupMinusExclusion(t *testing.T) {
	e := parseLine(t, "@ cdecl -arch=win32,!i386 Foo(long)")
	if diff := cmp.Diff([]string{"arm"}, e.Coverage().Names()); diff != "" {
		t.Errorf("Coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestCoveragePureExclusion(t *testing.T) {
	e := parseLine(t, "@ cdecl -arch=!i386 Foo(long)")
	want := arch.All()
	want.Remove("i386")
	if !e.Coverage().Equal(want) {
		t.Errorf("Coverage() = %v, want %v", e.Coverage().Names(), want.Names())
	}
	if e.MatchesArch("i386") {
		t.Error("MatchesArch(i386) = true, want false")
	}
	if !e.MatchesArch("arm64") {
		t.Error("MatchesArch(arm64) = false, want true")
	}
}

func TestCoverageMultipleModifiers(t *testing.T) {
	e := parseLine(t, "@ cdecl -arch=i386 -arch=arm64 Foo(long)")
	if diff := cmp.Diff([]string{"arm64", "i386"}, e.Coverage().Names()); diff != "" {
		t.Errorf("Coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageAliasTargets(t *testing.T) {
	e := parseLine(t, "@ cdecl -arch=amd64,aarch64 Foo(long)")
	if diff := cmp.Diff([]string{"arm64", "x86_64"}, e.Coverage().Names()); diff != "" {
		t.Errorf("Coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestArchTargets(t *testing.T) {
	e := parseLine(t, "@ cdecl -arch=win32,!amd64 Foo(long)")
	if diff := cmp.Diff([]string{"!x86_64", "arm", "i386"}, e.ArchTargets()); diff != "" {
		t.Errorf("ArchTargets mismatch (-want +got):\n%s", diff)
	}
}

func TestArgumentsSize(t *testing.T) {
	tests := []struct {
		line string
		arch string
		want int
	}{
		{"@ stdcall Foo(long ptr)", "i386", 8},
		{"@ stdcall Foo(long ptr)", "x86_64", 16},
		{"@ stdcall Foo(int64 double)", "i386", 16},
		{"@ stdcall Foo(int64 double)", "arm64", 16},
		{"@ stdcall Foo(int128)", "i386", 16},
		{"@ stdcall Foo(int128)", "arm64", 16},
		{"@ stdcall Foo(int128)", "x86_64", 8}, // passed by pointer
		{"@ stdcall Foo()", "i386", 0},
		{"@ stdcall Foo(word s_word str wstr)", "i386", 16},
	}
	for _, tc := range tests {
		e := parseLine(t, tc.line)
		got, err := e.ArgumentsSize(tc.arch)
		if err != nil {
			t.Fatalf("%s on %s: %v", tc.line, tc.arch, err)
		}
		if got != tc.want {
			t.Errorf("%s on %s: size = %d, want %d", tc.line, tc.arch, got, tc.want)
		}
	}

	e := parseLine(t, "@ stdcall Foo(long)")
	if _, err := e.ArgumentsSize("mips"); err == nil {
		t.Error("ArgumentsSize(mips) should fail")
	}
}

func TestMatchesSignature(t *testing.T) {
	base := parseLine(t, "@ cdecl -norelay -private Foo(long) Bar")

	tests := []struct {
		line string
		want bool
	}{
		{"@ cdecl -private -norelay Foo(long) Bar", true}, // modifier order irrelevant
		{"@ cdecl -norelay -private -arch=i386 Foo(long) Bar", true}, // arch modifiers excluded
		{"@ stdcall -norelay -private Foo(long) Bar", false},
		{"@ cdecl -norelay Foo(long) Bar", false},
		{"@ cdecl -norelay -private Foo(ptr) Bar", false},
		{"@ cdecl -norelay -private Foo(long) Baz", false},
	}
	for _, tc := range tests {
		other := parseLine(t, tc.line)
		if got := base.MatchesSignature(other); got != tc.want {
			t.Errorf("MatchesSignature(%q) = %v, want %v", tc.line, got, tc.want)
		}
		if got := other.MatchesSignature(base); got != tc.want {
			t.Errorf("MatchesSignature is not symmetric for %q", tc.line)
		}
	}
}

func TestIsPrivate(t *testing.T) {
	if !parseLine(t, "@ cdecl -private Foo(long)").IsPrivate() {
		t.Error("expected private")
	}
	if parseLine(t, "@ cdecl Foo(long)").IsPrivate() {
		t.Error("expected not private")
	}
}
