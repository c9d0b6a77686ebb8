package vocab

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testList() List {
	return List{
		{English: "eat", Example: "I ate a student.", Japanese: "食べる"},
		{English: "be", Example: "be kind.", Japanese: "である", Skip: true},
		{English: "run", Example: "She runs.", Japanese: "走る"},
	}
}

func TestPendingAndReset(t *testing.T) {
	l := testList()
	assert.Equal(t, []int{0, 2}, l.Pending())

	l[0].Skip = true
	l[2].Skip = true
	assert.Empty(t, l.Pending())

	l.Reset()
	assert.Equal(t, []int{0, 1, 2}, l.Pending())
}

func TestIndexAndRemove(t *testing.T) {
	l := testList()
	assert.Equal(t, 2, l.Index("run"))
	assert.Equal(t, -1, l.Index("walk"))

	removed := l.Remove(1)
	assert.Equal(t, []string{"eat", "run"}, removed.Englishes())
	assert.Equal(t, []string{"eat", "be", "run"}, l.Englishes())
}

func TestParse(t *testing.T) {
	w, err := Parse(" walk | We walked home. | 歩く ")
	require.NoError(t, err)
	assert.Equal(t, Word{English: "walk", Example: "We walked home.", Japanese: "歩く"}, w)

	w, err = Parse("walk|We walked home.")
	require.NoError(t, err)
	assert.Empty(t, w.Japanese)

	for _, in := range []string{"walk", "|We walked.", "walk | ", "a|b|c|d"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestUnmarshalSkipDefault(t *testing.T) {
	var l List
	data := `[{"english":"eat","example":"I ate.","japanese":"食べる"}]`
	require.NoError(t, json.Unmarshal([]byte(data), &l))
	require.Len(t, l, 1)
	assert.False(t, l[0].Skip)
}
