package jsonmend

import "strings"

// scanKeyword recognizes a maximal run of ASCII letters matching,
// case-insensitively, true/false/null/none (spec §4.D.1) and maps it to
// the canonical lowercase JSON keyword. It consumes input only on a match;
// on no match the cursor is left untouched so the caller can try the next
// scalar production.
func scanKeyword(c *cursor) (string, bool) {
	start := c.save()
	var sb strings.Builder
	for {
		r, ok := c.peek(0)
		if !ok || !isASCIILetter(r) {
			break
		}
		sb.WriteRune(r)
		c.advance()
	}
	switch strings.ToLower(sb.String()) {
	case "true":
		return "true", true
	case "false":
		return "false", true
	case "null", "none":
		return "null", true
	}
	c.restore(start)
	return "", false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanNumber recognizes the JSON number grammar plus two tolerances (spec
// §4.D.2): a leading '+' is accepted and dropped, and a trailing '.' with
// no following digits is accepted and completed as ".0". It reports
// ok=false without consuming anything if no digit appears where required.
func scanNumber(c *cursor) (string, bool) {
	start := c.save()
	var b strings.Builder

	if r, ok := c.peek(0); ok && (r == '+' || r == '-') {
		if r == '-' {
			b.WriteRune('-')
		}
		c.advance()
	}

	digitsStart := c.pos
	for {
		r, ok := c.peek(0)
		if !ok || !isDigit(r) {
			break
		}
		b.WriteRune(r)
		c.advance()
	}
	if c.pos == digitsStart {
		c.restore(start)
		return "", false
	}

	if r, ok := c.peek(0); ok && r == '.' {
		c.advance()
		b.WriteRune('.')
		fracStart := c.pos
		for {
			r2, ok2 := c.peek(0)
			if !ok2 || !isDigit(r2) {
				break
			}
			b.WriteRune(r2)
			c.advance()
		}
		if c.pos == fracStart {
			b.WriteRune('0') // tolerate trailing '.', emit "X.0"
		}
	}

	if r, ok := c.peek(0); ok && (r == 'e' || r == 'E') {
		mExp := c.save()
		var eb strings.Builder
		eb.WriteRune(r)
		c.advance()
		if r2, ok2 := c.peek(0); ok2 && (r2 == '+' || r2 == '-') {
			eb.WriteRune(r2)
			c.advance()
		}
		expDigitsStart := c.pos
		for {
			r3, ok3 := c.peek(0)
			if !ok3 || !isDigit(r3) {
				break
			}
			eb.WriteRune(r3)
			c.advance()
		}
		if c.pos == expDigitsStart {
			c.restore(mExp) // "e" wasn't actually an exponent; leave it for the caller
		} else {
			b.WriteString(eb.String())
		}
	}

	return b.String(), true
}

// isIdentifierRune matches the bare-identifier-key alphabet (spec §4.D.3):
// [A-Za-z0-9_$].
func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// scanBareIdentifier reads a maximal run of identifier runes. It returns
// "" if the cursor isn't positioned at one.
func scanBareIdentifier(c *cursor) string {
	var b strings.Builder
	for {
		r, ok := c.peek(0)
		if !ok || !isIdentifierRune(r) {
			break
		}
		b.WriteRune(r)
		c.advance()
	}
	return b.String()
}
