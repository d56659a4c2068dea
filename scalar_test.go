package jsonmend

import "testing"

func TestScanKeyword(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"true", "true"},
		{"True", "true"},
		{"FALSE", "false"},
		{"null", "null"},
		{"None", "null"},
		{"noNe", "null"},
	}
	for _, tt := range cases {
		c := newCursor(tt.in)
		got, ok := scanKeyword(c)
		if !ok {
			t.Fatalf("scanKeyword(%q) reported no match", tt.in)
		}
		if got != tt.want {
			t.Fatalf("scanKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScanKeywordRejectsUnknownWord(t *testing.T) {
	c := newCursor("maybe")
	if _, ok := scanKeyword(c); ok {
		t.Fatalf("scanKeyword should reject a word that isn't true/false/null/none")
	}
	if c.pos != 0 {
		t.Fatalf("scanKeyword should not consume on failure, pos = %d", c.pos)
	}
}

func TestScanNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"-123", "-123"},
		{"+123", "123"},
		{"1.5", "1.5"},
		{"1.", "1.0"},
		{"1e10", "1e10"},
		{"1.5e-10", "1.5e-10"},
	}
	for _, tt := range cases {
		c := newCursor(tt.in)
		got, ok := scanNumber(c)
		if !ok {
			t.Fatalf("scanNumber(%q) reported no match", tt.in)
		}
		if got != tt.want {
			t.Fatalf("scanNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScanNumberLeavesTrailingNonExponent(t *testing.T) {
	c := newCursor("1ex")
	got, ok := scanNumber(c)
	if !ok || got != "1" {
		t.Fatalf("scanNumber(%q) = %q, %v, want \"1\", true", "1ex", got, ok)
	}
	if r, _ := c.peek(0); r != 'e' {
		t.Fatalf("cursor should be rewound to the unconsumed 'e'")
	}
}

func TestScanBareIdentifier(t *testing.T) {
	c := newCursor("toString }")
	got := scanBareIdentifier(c)
	if got != "toString" {
		t.Fatalf("scanBareIdentifier = %q, want %q", got, "toString")
	}
}
