package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/lexicon"
	"github.com/revelaction/wordbook/match"
	"github.com/revelaction/wordbook/vocab"
)

func TestExamples(t *testing.T) {
	lex, err := lexicon.New()
	require.NoError(t, err)
	a := match.NewAnnotator(lemma.NewResolver(lex))

	l := vocab.List{
		{English: "eat", Example: "I ate a student."},
		{English: "run", Example: "She runs every day."},
		{English: "be", Example: "be kind."},
		{English: "child", Example: "The children ran home."},
	}

	hits := Examples(a, l, "running")
	require.Len(t, hits, 2)
	assert.Equal(t, 1, hits[0].Index)
	assert.Equal(t, "run", hits[0].Word.English)
	assert.Equal(t, 3, hits[1].Index)
	assert.Equal(t, 1, hits[1].Fragments.NumMatches())

	assert.Empty(t, Examples(a, l, "walk"))
	assert.Empty(t, Examples(a, l, ""))
}
