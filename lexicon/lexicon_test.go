package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/wordbook/lemma"
)

func TestNew(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 500)
	assert.Equal(t, []lemma.Tag{{Lemma: "cat", Pos: "NNS"}}, l.Tags("cats"))
	assert.Nil(t, l.Tags("state-of-the-art"))
}

func TestBaseForm(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	r := lemma.NewResolver(l)

	tests := []struct {
		word string
		want string
	}{
		{"cats", "cat"},
		{"running", "run"},
		{"ran", "run"},
		{"are", "be"},
		{"was", "be"},
		{"had", "have"},
		{"children", "child"},
		{"word", "word"},
		{"state-of-the-art", "state-of-the-art"},
		{"ate", "eat"},
		{"am", "be"},
		{"found", "find"},
		{"left", "leave"},
		// capitalized forms fall back to the lower-cased entry
		{"Running", "run"},
		{"Cats", "cat"},
		{"I", "I"},
	}

	for _, tt := range tests {
		got, found := r.BaseForm(tt.word)
		assert.True(t, found, tt.word)
		assert.Equal(t, tt.want, got, tt.word)
	}
}

func TestBaseFormAmbiguous(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	r := lemma.NewResolver(l)

	// axe, axis and ax
	_, found := r.BaseForm("axes")
	assert.False(t, found)

	// leaf and leave: neither is the word itself, the first one wins
	got, found := r.BaseForm("leaves")
	assert.True(t, found)
	assert.Equal(t, "leaf", got)
}

func TestBaseFormOutsideTable(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	r := lemma.NewResolver(l)

	tests := []struct {
		word string
		want string
	}{
		{"abandoned", "abandon"},
		{"negotiated", "negotiate"},
		{"hesitating", "hesitate"},
		{"dilemmas", "dilemma"},
		{"Dilemmas", "dilemma"},
		// ordinals map to digits in golem, those lemmas are ignored
		{"first", "first"},
		{"xyzzy", "xyzzy"},
	}

	for _, tt := range tests {
		assert.Nil(t, l.Tags(tt.word), tt.word)

		got, found := r.BaseForm(tt.word)
		assert.True(t, found, tt.word)
		assert.Equal(t, tt.want, got, tt.word)
	}
}

func TestSentencize(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	sentences := l.Sentencize("I ate a student. Cats ran!")
	require.Len(t, sentences, 2)

	first := sentences[0]
	assert.Equal(t, "I ate a student.", first.Text)
	require.Len(t, first.Tokens, 5)
	assert.Equal(t, "ate", first.Tokens[1].Text)
	assert.Equal(t, []lemma.Tag{{Lemma: "eat", Pos: "VBD"}}, first.Tokens[1].Tags)
	assert.Equal(t, []lemma.Tag{{Lemma: "."}}, first.Tokens[4].Tags)

	assert.Equal(t, []string{"cat"}, lemma.Candidates(lemma.Sentence{Tokens: sentences[1].Tokens[:1]}))
	assert.Len(t, l.Sentencize("state-of-the-art"), 1)
	assert.Empty(t, l.Sentencize(""))
}

func TestLoad(t *testing.T) {
	data := `# comment

went	go	VBD
went	go	VBD
goes	go
`
	l, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []lemma.Tag{{Lemma: "go", Pos: "VBD"}}, l.Tags("went"))
	assert.Equal(t, []lemma.Tag{{Lemma: "go"}}, l.Tags("goes"))
}

func TestLoadMalformed(t *testing.T) {
	for _, data := range []string{
		"went\n",
		"went\tgo\tVBD\textra\n",
		"\tgo\n",
		"went\t\tVBD\n",
	} {
		_, err := Load(strings.NewReader(data))
		assert.ErrorContains(t, err, "line 1", data)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tsv")
	require.NoError(t, os.WriteFile(path, []byte("geese\tgoose\tNNS\n"), 0644))

	l, err := Open(path)
	require.NoError(t, err)
	got, found := lemma.NewResolver(l).BaseForm("geese")
	assert.True(t, found)
	assert.Equal(t, "goose", got)

	_, err = Open(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

func TestGolem(t *testing.T) {
	g, err := NewGolem()
	require.NoError(t, err)
	r := lemma.NewResolver(g)

	got, found := r.BaseForm("cats")
	assert.True(t, found)
	assert.Equal(t, "cat", got)

	got, found = r.BaseForm("state-of-the-art")
	assert.True(t, found)
	assert.Equal(t, "state-of-the-art", got)

	got, found = r.BaseForm("third")
	assert.True(t, found)
	assert.Equal(t, "third", got)
}

func TestIsWord(t *testing.T) {
	for _, s := range []string{"cat", "o'clock", "well-known", "ad hoc", "é"} {
		assert.True(t, isWord(s), s)
	}
	for _, s := range []string{"", "1", "\ufeff1", "-", "3rd"} {
		assert.False(t, isWord(s), "%q", s)
	}
}
