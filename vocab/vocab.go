package vocab

import (
	"errors"
	"strings"
)

// Word is an entry of the vocabulary list.
type Word struct {

	// the English word to learn
	English string `json:"english"`

	// an example sentence using the word, maybe conjugated or declined
	Example string `json:"example"`

	// the Japanese translation of the word
	Japanese string `json:"japanese"`

	// Skip is true once the word has been memorized. Skipped words are not
	// asked until the list is reset.
	Skip bool `json:"skip"`
}

// List is the vocabulary list, in file order.
type List []Word

// Pending returns the indices of the words that are not skipped.
func (l List) Pending() []int {
	indices := []int{}
	for i, w := range l {
		if !w.Skip {
			indices = append(indices, i)
		}
	}

	return indices
}

// Reset clears the skip flag of every word.
func (l List) Reset() {
	for i := range l {
		l[i].Skip = false
	}
}

// Index returns the index of the first word with the given English text, or
// -1.
func (l List) Index(english string) int {
	for i, w := range l {
		if w.English == english {
			return i
		}
	}

	return -1
}

// Englishes returns the English word of every entry.
func (l List) Englishes() []string {
	var words []string
	for _, w := range l {
		words = append(words, w.English)
	}
	return words
}

// Remove returns a new List without the entry at index i.
func (l List) Remove(i int) List {
	out := make(List, 0, len(l))
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Parse parses an entry given as
//
//	english | example | japanese
//
// The Japanese part is optional.
func Parse(in string) (Word, error) {
	parts := strings.Split(in, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return Word{}, errors.New("expected: english | example [| japanese]")
	}

	w := Word{
		English: strings.TrimSpace(parts[0]),
		Example: strings.TrimSpace(parts[1]),
	}

	if len(parts) == 3 {
		w.Japanese = strings.TrimSpace(parts[2])
	}

	if w.English == "" {
		return Word{}, errors.New("the english word can not be empty")
	}

	if w.Example == "" {
		return Word{}, errors.New("the example can not be empty")
	}

	return w, nil
}
