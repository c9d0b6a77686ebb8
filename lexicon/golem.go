package lexicon

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/tokenize"
)

// golemDict is the golem English dictionary, decompressed once per process.
type golemDict struct {
	// Lemmas sorts the dictionary entry in place
	mu         sync.Mutex
	lemmatizer *golem.Lemmatizer
}

var loadGolem = sync.OnceValues(func() (*golemDict, error) {
	gl, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load golem english dictionary: %w", err)
	}

	return &golemDict{lemmatizer: gl}, nil
})

// lookup returns the golem lemmas of word, case insensitive. Lemmas that are
// not words (the dictionary maps some ordinals to digits) are dropped.
func (d *golemDict) lookup(word string) []lemma.Tag {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.lemmatizer.InDict(word) {
		return nil
	}

	var tags []lemma.Tag
	for _, lm := range d.lemmatizer.Lemmas(word) {
		if !isWord(lm) {
			continue
		}
		tags = append(tags, lemma.Tag{Lemma: lm})
	}

	return tags
}

func isWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case strings.ContainsRune("-' ", r):
		default:
			return false
		}
	}

	return hasLetter
}

// Golem is a lemmatizer backed by the golem English dictionary. It knows far
// more forms than the built-in lexicon but no parts of speech.
type Golem struct {
	splitter *tokenize.Splitter
	dict     *golemDict
}

var _ lemma.Lemmatizer = (*Golem)(nil)

func NewGolem() (*Golem, error) {
	splitter, err := tokenize.NewSplitter()
	if err != nil {
		return nil, err
	}

	dict, err := loadGolem()
	if err != nil {
		return nil, err
	}

	return &Golem{splitter: splitter, dict: dict}, nil
}

func (g *Golem) Sentencize(text string) []lemma.Sentence {
	return sentencize(g.splitter, text, g.dict.lookup)
}
