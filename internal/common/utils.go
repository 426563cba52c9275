package common

import "strings"

// HasAny reports whether s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// CountOccurrences sums the occurrences of every substring in s.
// Empty substrings are ignored.
func CountOccurrences(s string, subs ...string) int {
	var n int
	for _, sub := range subs {
		if sub == "" {
			continue
		}
		n += strings.Count(s, sub)
	}
	return n
}
