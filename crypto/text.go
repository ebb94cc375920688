// Package crypto contains the classical cipher engine: Caesar, Vigenère,
// columnar transposition and Atbash, plus the text helpers they share.
package crypto

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	Alphabet        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ReverseAlphabet = "ZYXWVUTSRQPONMLKJIHGFEDCBA"
	AlphabetSize    = len(Alphabet)
)

// Every nonspacing mark (category Mn) is dropped, not only the combining
// diacritics block U+0300-U+036F.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize removes diacritics and uppercases text with full case mapping,
// so ß becomes SS. Anything that is not a letter is kept as is.
func Normalize(text string) string {
	stripped, _, _ := transform.String(stripMarks, text)
	// a Caser keeps state between calls and cannot be shared
	return cases.Upper(language.Und).String(stripped)
}

// LettersOnly normalizes text and drops everything outside A-Z.
func LettersOnly(text string) string {
	normalized := Normalize(text)

	var builder strings.Builder
	builder.Grow(len(normalized))
	for _, r := range normalized {
		if isLetter(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Mod returns n mod m in the range [0, m). m must be positive.
func Mod(n, m int) int {
	if m <= 0 {
		panic("crypto: modulus must be positive")
	}
	return ((n % m) + m) % m
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// position returns the alphabet index of r, or -1 when r is not in A-Z.
func position(r rune) int {
	if !isLetter(r) {
		return -1
	}
	return int(r - 'A')
}
