// Package lemma resolves the dictionary base form of a single word through
// a Lemmatizer, accepting lemma level ambiguity only in its simplest shape:
// a word that is either itself or one other base form.
package lemma

import (
	"fmt"
	"sort"
	"strings"
)

// Tag is one interpretation of a token proposed by the lemmatizer.
type Tag struct {
	// The base form for this interpretation
	Lemma string `json:"lemma"`

	// A part of speech label (f.ex. NNS, VBG). Informative only.
	Pos string `json:"pos,omitempty"`
}

// Token is a word or punctuation of a sentence with all its interpretations.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	Tags []Tag `json:"tags"`
}

// Sentence is the lemmatizer breakdown of one sentence.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Lemmatizer splits text into sentences of tagged tokens.
//
// Implementations must be safe for concurrent read-only use.
type Lemmatizer interface {
	Sentencize(text string) []Sentence
}

// ConsistencyError is the panic value of Resolver.BaseForm when the
// lemmatizer does not see a bare word as exactly one sentence.
type ConsistencyError struct {
	Word      string
	Sentences int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("lemmatizer returned %d sentences for word %q, expected 1", e.Sentences, e.Word)
}

// Resolver computes base forms. It keeps no state besides the lemmatizer.
type Resolver struct {
	lemmatizer Lemmatizer
}

func NewResolver(l Lemmatizer) *Resolver {
	return &Resolver{lemmatizer: l}
}

// BaseForm returns the lemma of word.
//
// All the lemmas the lemmatizer proposes for the word are collected into a
// set:
//
//   - one lemma: the word is already a base form, or all interpretations
//     agree. That lemma is returned.
//   - two lemmas: the word is ambiguous between itself and its base form.
//     The lemma that is not the word is returned.
//   - none, or three or more: not found.
//
// An empty or blank word is not found and the lemmatizer is not called.
func (r *Resolver) BaseForm(word string) (string, bool) {
	if strings.TrimSpace(word) == "" {
		return "", false
	}

	sentences := r.lemmatizer.Sentencize(word)
	if len(sentences) != 1 {
		panic(&ConsistencyError{Word: word, Sentences: len(sentences)})
	}

	candidates := Candidates(sentences[0])
	switch len(candidates) {
	case 1:
		return candidates[0], true
	case 2:
		// candidates are sorted: if neither is the word, the first wins.
		for _, c := range candidates {
			if c != word {
				return c, true
			}
		}
	}

	return "", false
}

// Candidates returns the sorted set of non-empty lemmas of all tags of all
// tokens of s.
func Candidates(s Sentence) []string {
	seen := map[string]bool{}
	candidates := []string{}
	for _, token := range s.Tokens {
		for _, tag := range token.Tags {
			if tag.Lemma == "" || seen[tag.Lemma] {
				continue
			}

			seen[tag.Lemma] = true
			candidates = append(candidates, tag.Lemma)
		}
	}

	sort.Strings(candidates)
	return candidates
}
