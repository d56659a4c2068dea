package jsonmend

import "regexp"

// FirstJSON returns the canonical JSON text of the first recovered JSON
// segment in s, or "" if none was found (spec §6, first_json: never
// throws).
func FirstJSON(s string) string {
	for _, seg := range ToSegments(s) {
		if seg.Kind == JSON {
			return seg.Text
		}
	}
	return ""
}

// LastJSON returns the canonical JSON text of the last recovered JSON
// segment in s, or "" if none was found (spec §6, last_json).
func LastJSON(s string) string {
	segments := ToSegments(s)
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i].Kind == JSON {
			return segments[i].Text
		}
	}
	return ""
}

// LargestJSON returns the canonical JSON text of the longest (by rune
// count of its canonical text) recovered JSON segment in s, or "" if none
// was found. Ties are broken by input order, first wins (spec §6,
// largest_json).
func LargestJSON(s string) string {
	best := ""
	bestLen := -1
	for _, seg := range ToSegments(s) {
		if seg.Kind != JSON {
			continue
		}
		if n := len([]rune(seg.Text)); n > bestLen {
			best, bestLen = seg.Text, n
		}
	}
	return best
}

// JSONMatching returns the canonical JSON text of the first recovered JSON
// segment in s whose canonical text matches pattern, or "" if none
// matched (spec §6, json_matching). A nil pattern matches nothing.
func JSONMatching(s string, pattern *regexp.Regexp) string {
	if pattern == nil {
		return ""
	}
	for _, seg := range ToSegments(s) {
		if seg.Kind == JSON && pattern.MatchString(seg.Text) {
			return seg.Text
		}
	}
	return ""
}
