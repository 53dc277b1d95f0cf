package spec

import "strings"

// Parse turns one raw line into an Entry. It is total: export-looking
// lines that cannot be parsed (no function name) degrade to passthrough
// entries with the source text retained, never an error.
func Parse(line string, lineNum int, sourceFile string) *Entry {
	e := &Entry{
		Line:       strings.TrimRight(line, " \t\r\n"),
		LineNum:    lineNum,
		SourceFile: sourceFile,
	}
	trimmed := strings.TrimSpace(e.Line)
	if strings.HasPrefix(trimmed, "@") {
		e.parseExport(trimmed)
	}
	return e
}

func (e *Entry) parseExport(line string) {
	content, comment := splitComment(strings.TrimLeft(line[1:], " \t"))

	tokens := tokenize(content)
	if len(tokens) == 0 {
		return
	}

	entryType := tokens[0]
	var modifiers []string
	idx := 1
	for idx < len(tokens) && strings.HasPrefix(tokens[idx], "-") {
		modifiers = append(modifiers, tokens[idx])
		idx++
	}

	var name, args string
	if idx < len(tokens) {
		declarator := tokens[idx]
		idx++
		if paren := strings.IndexByte(declarator, '('); paren >= 0 {
			name = declarator[:paren]
			args = declarator[paren:]
		} else {
			name = declarator
		}
	}
	// A bare name may be followed by a standalone parenthesized list.
	if name != "" && args == "" && idx < len(tokens) && strings.HasPrefix(tokens[idx], "(") {
		args = tokens[idx]
		idx++
	}

	if name == "" {
		// Export marker without a symbol: keep the line as passthrough
		// text so unknown or future syntax survives a round trip.
		return
	}

	internal := ""
	if idx < len(tokens) {
		internal = tokens[idx]
	}
	if internal == "" {
		internal = name
	}

	e.Type = entryType
	e.Modifiers = modifiers
	e.FunctionName = name
	e.Args = args
	e.InternalName = internal
	e.Comment = comment
}

// splitComment splits off a trailing # comment. The delimiter counts
// only at parenthesis-nesting depth 0.
func splitComment(text string) (string, string) {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '#':
			if depth == 0 {
				return strings.TrimRight(text[:i], " \t"), strings.TrimSpace(text[i+1:])
			}
		}
	}
	return strings.TrimSpace(text), ""
}

// tokenize splits on whitespace at parenthesis-nesting depth 0, so an
// argument list with internal spaces stays one token.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '(':
			depth++
			current.WriteByte(c)
		case c == ')':
			current.WriteByte(c)
			if depth > 0 {
				depth--
			}
		case (c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f') && depth == 0:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()
	return tokens
}
