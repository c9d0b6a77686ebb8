package search

import (
	sent "github.com/revelaction/wordbook/sentence"
	"github.com/revelaction/wordbook/vocab"
)

// Annotator marks the occurrences of a target word in a sentence.
type Annotator interface {
	Annotate(sentence, target string) sent.Fragments
}

// Hit is a vocabulary entry whose example contains the searched word.
type Hit struct {
	Index     int            `json:"index"`
	Word      vocab.Word     `json:"word"`
	Fragments sent.Fragments `json:"fragments"`
}

// Examples returns, in list order, every entry whose example contains a
// morphological occurrence of target.
func Examples(a Annotator, l vocab.List, target string) []Hit {
	hits := []Hit{}
	if target == "" {
		return hits
	}

	for i, w := range l {
		fragments := a.Annotate(w.Example, target)
		if !fragments.HasMatch() {
			continue
		}

		hits = append(hits, Hit{Index: i, Word: w, Fragments: fragments})
	}

	return hits
}
