// Package anagram matches words against candidate lists by letter
// permutation, ignoring case.
package anagram

import (
	"slices"
	"strings"
)

// Detect returns the candidates that are anagrams of word: same
// letters in a different arrangement, compared case-insensitively. A
// candidate that is word itself up to casing does not count. Matches
// keep their original casing, duplicates are collapsed, and order is
// unspecified.
func Detect(word string, candidates []string) []string {
	var (
		lower   = strings.ToLower(word)
		key     = sortedRunes(lower)
		seen    = make(map[string]struct{}, len(candidates))
		matches = []string{}
	)
	for _, candidate := range candidates {
		if len(candidate) != len(word) {
			continue
		}
		lc := strings.ToLower(candidate)
		if lc == lower || sortedRunes(lc) != key {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		matches = append(matches, candidate)
	}
	return matches
}

func sortedRunes(s string) string {
	rs := []rune(s)
	slices.Sort(rs)
	return string(rs)
}
