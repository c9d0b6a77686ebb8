package match

import (
	sent "github.com/revelaction/wordbook/sentence"
)

// BaseFormer resolves the lemma of a single word. *lemma.Resolver is the
// production implementation.
type BaseFormer interface {
	BaseForm(word string) (string, bool)
}

// Annotator marks the occurrences of a target word in example sentences.
// Occurrences are found by lemma, not by spelling: for the target "eat",
// "ate" and "eating" are occurrences.
//
// An Annotator has no mutable state and can be shared between goroutines
// if its BaseFormer can.
type Annotator struct {
	resolver BaseFormer
}

func NewAnnotator(r BaseFormer) *Annotator {
	return &Annotator{resolver: r}
}

// Annotate segments sentence (see sentence.Segment) and flags each word
// fragment whose lemma is the lemma of target. Fragments with digits or
// punctuation are never flagged, and neither are words when either lemma
// can not be resolved.
//
//	Annotate("I ate a student.", "eat") -> I, " ", ate*, " ", a, " ", student, "."
func (a *Annotator) Annotate(sentence, target string) sent.Fragments {
	texts := sent.Segment(sentence)
	fragments := make(sent.Fragments, 0, len(texts))

	// the target lemma is resolved once, at the first word fragment
	var targetLemma string
	var targetFound, targetResolved bool

	for _, text := range texts {
		f := sent.Fragment{Text: text}
		if !sent.IsWord(text) {
			fragments = append(fragments, f)
			continue
		}

		if !targetResolved {
			targetLemma, targetFound = a.resolver.BaseForm(target)
			targetResolved = true
		}

		if targetFound {
			lm, found := a.resolver.BaseForm(text)
			f.Match = found && lm == targetLemma
		}

		fragments = append(fragments, f)
	}

	return fragments
}
