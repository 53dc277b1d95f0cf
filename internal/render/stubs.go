package render

import (
	"fmt"
	"strings"

	"winespec/internal/spec"
)

const stubHeader = `/*
 * msvcrt stub implementations
 *
 * Auto-generated file - DO NOT EDIT
 * Generated from spec file stub entries
 */

#include "wine/debug.h"

WINE_DEFAULT_DEBUG_CHANNEL(msvcrt);

/* Helper macro for unimplemented functions */
#define MSVCRT_UNIMPLEMENTED(name) \
    do { \
        static int once = 0; \
        if (!once++) { \
            FIXME("%s: stub\n", name); \
        } \
    } while(0)

`

// Stubs renders placeholder C bodies for every stub entry that applies
// to the target architecture. Returns the generated text and the number
// of stubs it contains.
func Stubs(entries []*spec.Entry, target string) (string, int, error) {
	var b strings.Builder
	b.WriteString(stubHeader)

	count := 0
	for _, e := range entries {
		if e.Type != "stub" || !e.MatchesArch(target) {
			continue
		}
		body, err := stubBody(e)
		if err != nil {
			return "", 0, err
		}
		b.WriteString(body)
		b.WriteByte('\n')
		count++
	}
	return b.String(), count, nil
}

func stubBody(e *spec.Entry) (string, error) {
	if e.InternalName == "" {
		return "", fmt.Errorf("%w (%s)", ErrNoFunctionName, e.Location())
	}
	cident := spec.CIdentifier(e.InternalName)

	var params []string
	for i, arg := range e.ArgumentTypes() {
		if arg == "..." {
			params = append(params, "...")
			break
		}
		ctype, ok := spec.TypeMap[arg]
		if !ok {
			ctype = arg
		}
		params = append(params, fmt.Sprintf("%s arg%d", ctype, i))
	}
	paramList := "void"
	if len(params) > 0 {
		paramList = strings.Join(params, ", ")
	}

	return fmt.Sprintf("// %s\nvoid %s(%s) {\n    MSVCRT_UNIMPLEMENTED(%q);\n}\n",
		e.CanonicalLine(), cident, paramList, e.FunctionName), nil
}
