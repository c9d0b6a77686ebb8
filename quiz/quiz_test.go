package quiz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/lexicon"
	"github.com/revelaction/wordbook/match"
	"github.com/revelaction/wordbook/render"
	"github.com/revelaction/wordbook/vocab"
)

type memRepo struct {
	list   vocab.List
	writes int
}

func (m *memRepo) ReadAll() (vocab.List, error) {
	l := make(vocab.List, len(m.list))
	copy(l, m.list)
	return l, nil
}

func (m *memRepo) WriteAll(l vocab.List) error {
	m.writes++
	m.list = l
	return nil
}

type recordingSpeaker struct {
	spoken []string
}

func (r *recordingSpeaker) Speak(text string) error {
	r.spoken = append(r.spoken, text)
	return nil
}

func script(lines ...string) InputFunc {
	return func(string) string {
		if len(lines) == 0 {
			return "q"
		}
		in := lines[0]
		lines = lines[1:]
		return in
	}
}

func newTestSession(t *testing.T, repo *memRepo, input InputFunc) (*Session, *bytes.Buffer, *recordingSpeaker) {
	t.Helper()
	lex, err := lexicon.New()
	require.NoError(t, err)

	var out bytes.Buffer
	r := render.NewRenderer(&out)
	r.Format = "mark"
	sp := &recordingSpeaker{}

	s := NewSession(repo, match.NewAnnotator(lemma.NewResolver(lex)), r, sp)
	s.Input = input
	s.Shuffle = func([]int) {}
	return s, &out, sp
}

func testList() vocab.List {
	return vocab.List{
		{English: "eat", Example: "I ate a student.", Japanese: "食べる"},
		{English: "be", Example: "be kind.", Japanese: "である", Skip: true},
		{English: "run", Example: "She runs.", Japanese: "走る"},
	}
}

func TestRunRevealAndMark(t *testing.T) {
	repo := &memRepo{list: testList()}
	// reveal eat then next; mark run before the reveal
	s, out, sp := newTestSession(t, repo, script("", "", "m"))

	res, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{Asked: 2, Memorized: 1}, res)

	assert.Equal(t, []string{"eat", "run"}, sp.spoken)
	assert.Equal(t, 1, repo.writes)
	assert.False(t, repo.list[0].Skip)
	assert.True(t, repo.list[2].Skip)

	text := out.String()
	assert.Contains(t, text, "1 / 2\n   eat\n   (I [ate] a student.)\n   食べる\n")
	assert.Contains(t, text, "2 / 2\n   run\n   (She [runs].)\n")
	assert.NotContains(t, text, "走る")
}

func TestRunMarkAfterReveal(t *testing.T) {
	repo := &memRepo{list: testList()}
	s, _, _ := newTestSession(t, repo, script("", "m", "x", "", ""))

	res, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Asked)
	assert.Equal(t, 1, res.Memorized)
	assert.True(t, repo.list[0].Skip)
	assert.False(t, repo.list[2].Skip)
}

func TestRunQuitSaves(t *testing.T) {
	repo := &memRepo{list: testList()}
	s, _, sp := newTestSession(t, repo, script("m", "q"))

	res, err := s.Run()
	require.NoError(t, err)
	assert.True(t, res.Quit)
	assert.Equal(t, 2, res.Asked)
	assert.Equal(t, 1, repo.writes)
	assert.True(t, repo.list[0].Skip)
	assert.Len(t, sp.spoken, 2)
}

func TestRunAllMemorizedReset(t *testing.T) {
	l := testList()
	l[0].Skip = true
	l[2].Skip = true
	repo := &memRepo{list: l}
	s, out, _ := newTestSession(t, repo, script("r", "q"))

	res, err := s.Run()
	require.NoError(t, err)
	assert.True(t, res.Reset)
	assert.True(t, res.Quit)
	assert.Equal(t, 1, res.Asked)
	assert.Contains(t, out.String(), ResetPrompt)
	assert.Equal(t, []int{0, 1, 2}, repo.list.Pending())
}

func TestRunAllMemorizedQuit(t *testing.T) {
	l := testList()
	l[0].Skip = true
	l[2].Skip = true
	repo := &memRepo{list: l}
	s, _, sp := newTestSession(t, repo, script("x", "q"))

	res, err := s.Run()
	require.NoError(t, err)
	assert.True(t, res.Quit)
	assert.Zero(t, res.Asked)
	assert.Zero(t, repo.writes)
	assert.Empty(t, sp.spoken)
}

func TestRunEmptyList(t *testing.T) {
	repo := &memRepo{}
	s, out, _ := newTestSession(t, repo, script())

	res, err := s.Run()
	require.NoError(t, err)
	assert.Zero(t, res.Asked)
	assert.Contains(t, out.String(), "No words to ask.")
}
