package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valet-backend/domain/memory"
)

func TestRank_OrdersByScoreDescending(t *testing.T) {
	notes := []memory.Note{
		memory.NewNote("three", 3),
		memory.NewNote("nine", 9),
		memory.NewNote("one", 1),
	}

	ranked := memory.Rank(notes)

	require.Len(t, ranked, 3)
	assert.Equal(t, "nine", ranked[0].Content)
	assert.Equal(t, "three", ranked[1].Content)
	assert.Equal(t, "one", ranked[2].Content)

	// Input must be untouched.
	assert.Equal(t, "three", notes[0].Content)
}

func TestRank_TiesKeepInsertionOrder(t *testing.T) {
	notes := []memory.Note{
		memory.NewNote("first", 5),
		memory.NewNote("second", 5),
		memory.NewNote("third", 7),
	}

	ranked := memory.Rank(notes)

	assert.Equal(t, "third", ranked[0].Content)
	assert.Equal(t, "first", ranked[1].Content)
	assert.Equal(t, "second", ranked[2].Content)
}

func TestReinforce(t *testing.T) {
	tests := []struct {
		name    string
		content string
		input   string
		wantHit bool
	}{
		{"substring match", "buy milk", "please buy milk today", true},
		{"exact match", "buy milk", "buy milk", true},
		{"no match", "buy milk", "please buy bread today", false},
		{"case sensitive", "Buy Milk", "please buy milk today", false},
		{"empty input", "buy milk", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := []memory.Note{memory.NewNote(tt.content, memory.DefaultScore)}

			hits := memory.Reinforce(notes, tt.input)

			if tt.wantHit {
				assert.Equal(t, 1, hits)
				assert.Equal(t, memory.DefaultScore+1, notes[0].Score)
				assert.Equal(t, 1, notes[0].TimesUsed)
			} else {
				assert.Equal(t, 0, hits)
				assert.Equal(t, memory.DefaultScore, notes[0].Score)
				assert.Equal(t, 0, notes[0].TimesUsed)
			}
		})
	}
}

func TestReinforce_CountsEveryMatchingNote(t *testing.T) {
	notes := []memory.Note{
		memory.NewNote("milk", 5),
		memory.NewNote("buy milk", 5),
		memory.NewNote("coffee", 5),
	}

	hits := memory.Reinforce(notes, "please buy milk today")

	assert.Equal(t, 2, hits)
	assert.Equal(t, 6, notes[0].Score)
	assert.Equal(t, 6, notes[1].Score)
	assert.Equal(t, 5, notes[2].Score)
}
