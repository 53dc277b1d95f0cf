package spec

import "strings"

// TypeMap maps spec argument types to the C parameter types used in
// generated stub bodies. Unmapped tokens pass through verbatim.
var TypeMap = map[string]string{
	"word":   "unsigned short",
	"s_word": "short",
	"segptr": "void *",
	"segstr": "const char *",
	"long":   "long",
	"ptr":    "void *",
	"str":    "const char *",
	"wstr":   "const wchar_t *",
	"int64":  "__int64",
	"int128": "__int128",
	"float":  "float",
	"double": "double",
}

// CIdentifier returns a valid C identifier for the given symbol.
// Exported names such as C++ decorated symbols contain characters that
// cannot appear in a C function definition.
func CIdentifier(symbol string) string {
	var b strings.Builder
	b.Grow(len(symbol))
	for _, r := range symbol {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "_stub"
	}
	if out[0] >= '0' && out[0] <= '9' {
		return "_" + out
	}
	return out
}
