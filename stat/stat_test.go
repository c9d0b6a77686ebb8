package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/lexicon"
	"github.com/revelaction/wordbook/match"
	"github.com/revelaction/wordbook/vocab"
)

func TestAggregateList(t *testing.T) {
	lex, err := lexicon.New()
	require.NoError(t, err)
	h := NewHandler(match.NewAnnotator(lemma.NewResolver(lex)))

	h.AggregateList(vocab.List{
		{English: "eat", Example: "I ate a student."},
		{English: "be", Example: "I am, you are.", Skip: true},
		{English: "walk", Example: "She runs."},
	})

	s := h.Get()
	assert.Equal(t, 3, s.NumWords)
	assert.Equal(t, 1, s.NumMemorized)
	assert.Equal(t, 2, s.NumPending)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 0: 1}, s.MatchesPerExampleDis)
	assert.Equal(t, []string{"walk"}, s.Unmatched)
}

func TestEmpty(t *testing.T) {
	h := NewHandler(nil)
	s := h.Get()
	assert.Zero(t, s.NumWords)
	assert.Empty(t, s.Unmatched)
}
