package domain

import (
	"strings"
	"unicode"
)

// NormalizeLastName derives the join key used to recognize the same official
// across differently shaped provider records. Lower-cases, strips punctuation,
// and picks the surname token: the token before a comma for "Last, First"
// shapes, otherwise the final whitespace-delimited token.
func NormalizeLastName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	if i := strings.Index(s, ","); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	s = fields[len(fields)-1]

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NameMatches reports whether a recorded name (a sponsor or roll-call voter)
// plausibly refers to an official with the given normalized last name. The test
// is case-insensitive substring containment in either direction, so "Warren"
// matches "Elizabeth Warren" and vice versa. Heuristic, not an identity join:
// common surnames can false-positive.
func NameMatches(recorded, lastName string) bool {
	a := strings.ToLower(strings.TrimSpace(recorded))
	b := strings.ToLower(strings.TrimSpace(lastName))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// NormalizeBillID canonicalizes a bill identifier for override matching,
// so "S. 2202", "s 2202" and "S2202" compare equal.
func NormalizeBillID(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
