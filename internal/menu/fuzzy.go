package menu

import (
	"strings"
	"unicode/utf8"
)

// DefaultRatio keeps only substring hits and labels where every query
// character is present.
const DefaultRatio = 1.0

// FuzzyMatch reports whether query selects label.
//
// An empty query matches everything and a case-insensitive substring always
// matches. Otherwise each query rune scores +1 when it occurs anywhere in the
// label and -1 when it does not; the label matches when score divided by the
// label's rune length reaches ratio. Order and multiplicity are not checked,
// so "bab" selects "bar".
func FuzzyMatch(label, query string, ratio float64) bool {
	if query == "" {
		return true
	}
	l := strings.ToLower(label)
	q := strings.ToLower(query)
	if strings.Contains(l, q) {
		return true
	}
	n := utf8.RuneCountInString(label)
	if n == 0 {
		return false
	}
	score := 0
	for _, r := range q {
		if strings.ContainsRune(l, r) {
			score++
		} else {
			score--
		}
	}
	return float64(score)/float64(n) >= ratio
}
