package engine

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule pairs a pattern with the function that turns its submatches into a
// value. Rule lists are evaluated in order and the first match wins.
type rule struct {
	pattern *regexp.Regexp
	handle  func(m []string) string
}

// lastGroup returns the last capture group, trimmed.
func lastGroup(m []string) string {
	return strings.TrimSpace(m[len(m)-1])
}

func firstMatch(rules []rule, text string) (string, bool) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := r.handle(m); v != "" {
			return v, true
		}
	}
	return "", false
}

// stripLeading removes the first match of each anchored pattern, in order.
func stripLeading(text string, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if loc := p.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = text[loc[1]:]
		}
	}
	return text
}

// capitalizeFirst upper-cases the first rune and leaves the rest alone.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func containsAny(text string, words ...string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// splitTrimmed splits text on sep, trims every piece and drops empties.
func splitTrimmed(sep *regexp.Regexp, text string) []string {
	var out []string
	for _, part := range sep.Split(text, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// appendFresh returns base followed by extra in a newly allocated slice so
// the caller's backing array is never written to.
func appendFresh[T any](base []T, extra ...T) []T {
	out := make([]T, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// numbered renders items as "1. a\n2. b" starting at start.
func numbered(items []string, start int) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = strconv.Itoa(start+i) + ". " + it
	}
	return strings.Join(lines, "\n")
}
