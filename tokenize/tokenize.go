// Package tokenize splits text into sentences and sentences into word
// tokens for the lemmatizers.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter splits text into sentences with the punkt English model.
type Splitter struct {
	punkt *sentences.DefaultSentenceTokenizer
}

// NewSplitter loads the English punkt model.
func NewSplitter() (*Splitter, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english sentence model: %w", err)
	}

	return &Splitter{punkt: punkt}, nil
}

// Sentences returns the non blank sentences of text, trimmed.
func (s *Splitter) Sentences(text string) []string {
	var out []string
	for _, st := range s.punkt.Tokenize(text) {
		t := strings.TrimSpace(st.Text)
		if t == "" {
			continue
		}

		out = append(out, t)
	}

	return out
}

// Words splits a sentence into tokens. Letters, marks, digits, hyphens and
// apostrophes stay together, whitespace separates tokens and every other
// character is a token on its own:
//
//	"The co-founder's car, ok?" -> [The co-founder's car , ok ?]
func Words(sentence string) []string {
	var words []string

	start := -1
	for i, r := range sentence {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 {
			words = append(words, sentence[start:i])
			start = -1
		}

		if !unicode.IsSpace(r) {
			words = append(words, string(r))
		}
	}

	if start >= 0 {
		words = append(words, sentence[start:])
	}

	return words
}

func isWordRune(r rune) bool {
	switch r {
	case '-', '\'', '’':
		return true
	}

	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}
