package memory

import (
	"sort"
	"strings"
)

// Rank returns a copy of notes ordered by score descending. The sort is
// stable: ties keep their original relative order.
func Rank(notes []Note) []Note {
	ranked := make([]Note, len(notes))
	copy(ranked, notes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Reinforce bumps score and times_used for every note whose content appears
// as a literal substring of input. The match is case-sensitive with no
// tokenization: an approximate relevance signal, not semantic matching.
// Returns the number of notes reinforced.
func Reinforce(notes []Note, input string) int {
	hits := 0
	for i := range notes {
		if notes[i].Content == "" {
			continue
		}
		if strings.Contains(input, notes[i].Content) {
			notes[i].Score++
			notes[i].TimesUsed++
			hits++
		}
	}
	return hits
}
