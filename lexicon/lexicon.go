// Package lexicon provides lemmatizers backed by tag dictionaries: a table
// of word forms with the lemma and part of speech of each interpretation.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/tokenize"
)

//go:embed data/en.tsv
var english string

// Lexicon is a lemmatizer over an in-memory tag dictionary. It is never
// modified after loading, so it can be shared by concurrent callers.
type Lexicon struct {
	splitter *tokenize.Splitter

	// forms maps a word form to all its interpretations.
	forms map[string][]lemma.Tag

	// fallback tags the forms missing from the table, when set.
	fallback func(string) []lemma.Tag
}

var _ lemma.Lemmatizer = (*Lexicon)(nil)

// New loads the built-in English dictionary. Forms missing from it are
// looked up in the golem dictionary.
func New() (*Lexicon, error) {
	l, err := Load(strings.NewReader(english))
	if err != nil {
		return nil, err
	}

	dict, err := loadGolem()
	if err != nil {
		return nil, err
	}

	l.fallback = dict.lookup
	return l, nil
}

// Open loads a dictionary file. Forms missing from it are their own lemma.
func Open(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}

	return l, nil
}

// Load parses a dictionary with one interpretation per line:
//
//	form<TAB>lemma[<TAB>pos]
//
// Blank lines and lines starting with '#' are ignored.
func Load(r io.Reader) (*Lexicon, error) {
	splitter, err := tokenize.NewSplitter()
	if err != nil {
		return nil, err
	}

	l := &Lexicon{
		splitter: splitter,
		forms:    make(map[string][]lemma.Tag),
	}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || len(fields) > 3 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("line %d: expected form<TAB>lemma[<TAB>pos], got %q", lineNum, line)
		}

		tag := lemma.Tag{Lemma: fields[1]}
		if len(fields) == 3 {
			tag.Pos = fields[2]
		}

		l.add(fields[0], tag)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	return l, nil
}

func (l *Lexicon) add(form string, tag lemma.Tag) {
	for _, t := range l.forms[form] {
		if t == tag {
			return
		}
	}

	l.forms[form] = append(l.forms[form], tag)
}

// Len returns the number of distinct forms.
func (l *Lexicon) Len() int {
	return len(l.forms)
}

// Tags returns the interpretations of a form as written, nil if unknown.
func (l *Lexicon) Tags(form string) []lemma.Tag {
	return l.forms[form]
}

// Sentencize splits text into sentences and tags every token. A form is
// looked up as written and then lower-cased (sentence-initial capitals), then
// in the fallback dictionary. An unknown token is its own lemma.
func (l *Lexicon) Sentencize(text string) []lemma.Sentence {
	return sentencize(l.splitter, text, l.lookup)
}

func (l *Lexicon) lookup(word string) []lemma.Tag {
	if tags, ok := l.forms[word]; ok {
		return tags
	}

	if lower := strings.ToLower(word); lower != word {
		if tags, ok := l.forms[lower]; ok {
			return tags
		}
	}

	if l.fallback != nil {
		return l.fallback(word)
	}

	return nil
}

// sentencize builds the lemmatizer breakdown of text with lookup providing
// the tags of each token.
func sentencize(s *tokenize.Splitter, text string, lookup func(string) []lemma.Tag) []lemma.Sentence {
	var out []lemma.Sentence
	for _, st := range s.Sentences(text) {
		sentence := lemma.Sentence{Text: st}
		for _, w := range tokenize.Words(st) {
			tags := lookup(w)
			if len(tags) == 0 {
				tags = []lemma.Tag{{Lemma: w}}
			}

			sentence.Tokens = append(sentence.Tokens, lemma.Token{Text: w, Tags: tags})
		}

		out = append(out, sentence)
	}

	return out
}
