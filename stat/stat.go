package stat

import (
	"github.com/revelaction/wordbook/search"
	"github.com/revelaction/wordbook/vocab"
)

type Handler struct {
	annotator search.Annotator
	stats     Stats
}

type Stats struct {
	NumWords     int
	NumMemorized int
	NumPending   int

	// MatchesPerExampleDis maps a number of occurrences of its own word to
	// the number of examples having it
	MatchesPerExampleDis map[int]int

	// Unmatched holds the words whose example does not contain them
	Unmatched []string
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler(a search.Annotator) *Handler {
	stats := Stats{MatchesPerExampleDis: map[int]int{}, Unmatched: []string{}}
	return &Handler{
		annotator: a,
		stats:     stats,
	}
}

// Aggregate adds one vocabulary entry to the statistics.
func (h *Handler) Aggregate(w vocab.Word) {
	h.stats.NumWords++
	if w.Skip {
		h.stats.NumMemorized++
	} else {
		h.stats.NumPending++
	}

	n := h.annotator.Annotate(w.Example, w.English).NumMatches()
	h.stats.MatchesPerExampleDis[n]++
	if n == 0 {
		h.stats.Unmatched = append(h.stats.Unmatched, w.English)
	}
}

// AggregateList adds every entry of l.
func (h *Handler) AggregateList(l vocab.List) {
	for _, w := range l {
		h.Aggregate(w)
	}
}
