package render

import (
	"strings"
	"testing"
)

func TestStubsHeader(t *testing.T) {
	text, count, err := Stubs(nil, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	for _, want := range []string{
		`#include "wine/debug.h"`,
		"WINE_DEFAULT_DEBUG_CHANNEL(msvcrt);",
		"#define MSVCRT_UNIMPLEMENTED(name)",
		`FIXME("%s: stub\n", name);`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestStubsBody(t *testing.T) {
	entries := parseLines(t, "@ stub Foo(long ptr)")
	text, count, err := Stubs(entries, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	want := "// @ stub Foo(long ptr)\n" +
		"void Foo(long arg0, void * arg1) {\n" +
		"    MSVCRT_UNIMPLEMENTED(\"Foo\");\n" +
		"}\n"
	if !strings.Contains(text, want) {
		t.Errorf("stub body missing:\n%s\ngot:\n%s", want, text)
	}
}

func TestStubsNoArgsRendersVoid(t *testing.T) {
	entries := parseLines(t, "@ stub Bar()")
	text, _, err := Stubs(entries, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "void Bar(void) {") {
		t.Errorf("missing void parameter list:\n%s", text)
	}
}

func TestStubsVariadic(t *testing.T) {
	entries := parseLines(t, "@ stub _fancy(str ...)")
	text, _, err := Stubs(entries, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "void _fancy(const char * arg0, ...) {") {
		t.Errorf("variadic parameter list wrong:\n%s", text)
	}
}

func TestStubsUnmappedTypePassesThrough(t *testing.T) {
	entries := parseLines(t, "@ stub Odd(mystery)")
	text, _, err := Stubs(entries, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "void Odd(mystery arg0) {") {
		t.Errorf("unmapped type should pass through verbatim:\n%s", text)
	}
}

func TestStubsSelection(t *testing.T) {
	entries := parseLines(t,
		"@ cdecl malloc(long)",
		"@ stub -arch=x86_64 OnlyWin64()",
		"@ stub Everywhere()",
		"# comment",
	)
	text, count, err := Stubs(entries, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if strings.Contains(text, "OnlyWin64") || strings.Contains(text, "malloc") {
		t.Errorf("selection leaked non-matching entries:\n%s", text)
	}
	if !strings.Contains(text, "void Everywhere(void) {") {
		t.Errorf("missing selected stub:\n%s", text)
	}
}

func TestStubsSanitizedIdentifierKeepsExportName(t *testing.T) {
	entries := parseLines(t, "@ stub ??0exception@@QAE@XZ()")
	text, _, err := Stubs(entries, "i386")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "void __0exception__QAE_XZ(void) {") {
		t.Errorf("identifier not sanitized:\n%s", text)
	}
	if !strings.Contains(text, `MSVCRT_UNIMPLEMENTED("??0exception@@QAE@XZ");`) {
		t.Errorf("diagnostic should use the export name:\n%s", text)
	}
}
