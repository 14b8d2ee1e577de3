// Package input collects and gates free-text answers from the user. The
// noise filter is a last-resort heuristic against key-mashing and pure-digit
// input, not a language model; occasional misclassification is acceptable.
package input

import (
	"strings"
	"unicode"
)

const vowels = "aeiou"

// IsNoise reports whether text is too low-information to use verbatim.
func IsNoise(text string) bool {
	runes := []rune(text)
	if len(runes) < 3 {
		return true
	}

	var letters []rune
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return true
	}
	minLetters := len(runes) / 3
	if minLetters < 3 {
		minLetters = 3
	}
	if len(letters) < minLetters {
		return true
	}

	if countDistinctVowels(strings.ToLower(string(runes))) == 0 {
		return true
	}
	if countDistinct(letters) <= 2 {
		return true
	}

	normalized := []rune(strings.ToLower(string(letters)))
	if !strings.ContainsRune(text, ' ') && len(normalized) >= 6 {
		if countDistinctVowels(string(normalized)) < 2 {
			return true
		}
		// A doubled token like "okapiokapi" carries no extra signal.
		half := len(normalized) / 2
		if string(normalized[:half]) == string(normalized[half:]) {
			return true
		}
	}
	return false
}

func countDistinct(runes []rune) int {
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func countDistinctVowels(lowered string) int {
	seen := make(map[rune]struct{}, len(vowels))
	for _, r := range lowered {
		if strings.ContainsRune(vowels, r) {
			seen[r] = struct{}{}
		}
	}
	return len(seen)
}
