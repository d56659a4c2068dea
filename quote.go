package jsonmend

// quoteConvention is the "active quote" chosen by the classifier for one
// string literal (spec §4.B).
type quoteConvention int

const (
	convDQ quoteConvention = iota
	convSQ
	convBT
	convSlopeDQ
	convEscDQ
	convEscEscDQ
)

// opener returns the literal rune sequence that opens a string under c.
// EscDQ/EscEscDQ openers are backslash-prefixed double quotes; the
// classifier picks the longest one that matches at the cursor (spec §4.B
// selection rule), so order here matters: callers must try longer openers
// before shorter ones.
func (c quoteConvention) opener() []rune {
	switch c {
	case convDQ:
		return []rune{'"'}
	case convSQ:
		return []rune{'\''}
	case convBT:
		return []rune{'`'}
	case convSlopeDQ:
		return []rune{'“'}
	case convEscDQ:
		return []rune{'\\', '"'}
	case convEscEscDQ:
		return []rune{'\\', '\\', '"'}
	}
	return nil
}

// closer returns the literal rune sequence that closes a string under c.
// Every convention but SlopeDQ closes with the same runes it opens with.
func (c quoteConvention) closer() []rune {
	if c == convSlopeDQ {
		return []rune{'”'}
	}
	return c.opener()
}

// backslashDepth is the number of backslashes in c's closer, used by the
// string scanner to derive the "further escaped" interior-quote marker for
// EscDQ/EscEscDQ (spec §4.C "escape-level awareness").
func (c quoteConvention) backslashDepth() int {
	switch c {
	case convEscDQ:
		return 1
	case convEscEscDQ:
		return 2
	default:
		return 0
	}
}

// quoteConventionsByLength lists every convention whose opener could match
// at a given position, longest opener first, so classifyQuote can commit to
// the longest match per spec §4.B.
var quoteConventionsByLength = []quoteConvention{
	convEscEscDQ, // `\\"` - 3 runes
	convEscDQ,    // `\"`  - 2 runes
	convDQ, convSQ, convBT, convSlopeDQ, // 1 rune each
}

// classifyQuote examines the cursor's current position and commits to the
// longest matching opener convention. It reports false if no string opener
// matches at all.
func classifyQuote(c *cursor) (quoteConvention, bool) {
	for _, conv := range quoteConventionsByLength {
		if c.peekString(string(conv.opener())) {
			return conv, true
		}
	}
	return 0, false
}

// isStringStart reports whether a string literal under some convention
// begins at the cursor's current position, without committing to one.
func isStringStart(c *cursor) bool {
	_, ok := classifyQuote(c)
	return ok
}
