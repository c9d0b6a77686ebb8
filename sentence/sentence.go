package sentence

import (
	"strings"
	"unicode"
)

// Fragment is the display unit of an example sentence: a word run or a
// single non-word character, with Match set when it is an occurrence of the
// target word.
type Fragment struct {
	// The unmodified text, a slice of the original sentence
	Text string `json:"text"`

	// Match is true if the fragment shares its lemma with the target word
	Match bool `json:"match"`
}

// Fragments is an ordered, lossless partition of a sentence.
type Fragments []Fragment

// String returns the original sentence.
func (fs Fragments) String() string {
	var b strings.Builder
	for _, f := range fs {
		b.WriteString(f.Text)
	}

	return b.String()
}

// NumMatches returns the number of fragments flagged as target occurrences.
func (fs Fragments) NumMatches() int {
	n := 0
	for _, f := range fs {
		if f.Match {
			n++
		}
	}

	return n
}

// HasMatch reports whether at least one fragment is a target occurrence.
func (fs Fragments) HasMatch() bool {
	return fs.NumMatches() > 0
}

// Segment splits text into fragments in a single left to right fold.
//
// An alphabetic character or a hyphen extends the last fragment when that
// fragment is an open word run (it starts with an alphabetic character).
// Every other character, including a hyphen that can not extend a run,
// starts a new one-character fragment:
//
//	"state-of-the-art!!" -> ["state-of-the-art", "!", "!"]
//	"-x"                 -> ["-", "x"]
//
// Fragments are slices of text, so joining them gives back text byte by
// byte, also for invalid UTF-8.
func Segment(text string) []string {
	var fragments []string

	start := -1
	open := false
	for i, r := range text {
		if open && isWordRune(r) {
			continue
		}

		if start >= 0 {
			fragments = append(fragments, text[start:i])
		}

		start = i
		open = IsAlphabetic(r)
	}

	if start >= 0 {
		fragments = append(fragments, text[start:])
	}

	return fragments
}

// IsWord reports whether the fragment is eligible for lemma comparison:
// non-empty and made only of alphabetic characters and hyphens.
func IsWord(fragment string) bool {
	if fragment == "" {
		return false
	}

	for _, r := range fragment {
		if !isWordRune(r) {
			return false
		}
	}

	return true
}

// IsAlphabetic reports whether r has the Unicode Alphabetic property
// (letters, letter numbers and the other alphabetic marks).
func IsAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

func isWordRune(r rune) bool {
	return r == '-' || IsAlphabetic(r)
}
