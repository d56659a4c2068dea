package jsonmend

import (
	"strings"

	"github.com/pkg/errors"
)

// maxUnwrapDepth bounds stringified-string unwrapping (spec §4.E); spec
// requires a bound of at least 4, and recommends 8 as the default to
// comfortably cover multiply-JSON-encoded payloads without risking
// unbounded recursion on adversarial input.
const maxUnwrapDepth = 8

// ToString is the to_string entrypoint (spec §6): it recovers s into
// canonical JSON text, or returns a *ScanError (wrapped with a stack trace
// via github.com/pkg/errors so callers at the CLI boundary can log a
// useful trace) describing the first malformation encountered.
func ToString(s string) (string, error) {
	current := s
	for i := 0; i < maxUnwrapDepth; i++ {
		next, ok := unwrapStringified(current)
		if !ok {
			break
		}
		current = next
	}

	c := newCursor(current)
	out, err := scanTopLevelValue(c)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return out, nil
}

// unwrapStringified implements spec §4.E's stringified-string unwrapping:
// if the trimmed input opens with a DQ or EscDQ string literal whose
// decoded content itself starts (after trimming) with '{' or '[', the
// decoded content is returned as the next candidate to scan.
func unwrapStringified(input string) (string, bool) {
	trimmed := strings.TrimFunc(input, isWhitespace)
	if trimmed == "" {
		return "", false
	}

	c := newCursor(trimmed)
	conv, ok := classifyQuote(c)
	if !ok || (conv != convDQ && conv != convEscDQ) {
		return "", false
	}

	content, err := decodeStringLiteral(c)
	if err != nil {
		return "", false
	}

	inner := strings.TrimFunc(string(content), isWhitespace)
	if !strings.HasPrefix(inner, "{") && !strings.HasPrefix(inner, "[") {
		return "", false
	}
	return string(content), true
}
