package prompt_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valet-backend/domain/memory"
	"valet-backend/domain/prompt"
)

func TestCompose_OrderAndRoles(t *testing.T) {
	c := prompt.NewComposer("You are a butler.", 10)
	notes := []memory.Note{
		memory.NewNote("likes tea", 9),
		memory.NewNote("buy milk", 5),
	}

	msgs := c.Compose(notes, "what should I buy?")

	require.Len(t, msgs, 3)
	assert.Equal(t, prompt.RoleSystem, msgs[0].Role)
	assert.Equal(t, "You are a butler.", msgs[0].Content)
	assert.Equal(t, prompt.RoleSystem, msgs[1].Role)
	assert.Equal(t, "Relevant memories:\n- likes tea\n- buy milk", msgs[1].Content)
	assert.Equal(t, prompt.RoleUser, msgs[2].Role)
	assert.Equal(t, "what should I buy?", msgs[2].Content)
}

func TestCompose_NoNotesSkipsMemoryBlock(t *testing.T) {
	c := prompt.NewComposer("persona", 10)

	msgs := c.Compose(nil, "hello")

	require.Len(t, msgs, 2)
	assert.Equal(t, prompt.RoleSystem, msgs[0].Role)
	assert.Equal(t, prompt.RoleUser, msgs[1].Role)
}

func TestCompose_CapsInjectedNotes(t *testing.T) {
	c := prompt.NewComposer("persona", 3)

	var notes []memory.Note
	for i := 0; i < 10; i++ {
		notes = append(notes, memory.NewNote(fmt.Sprintf("note %d", i), 5))
	}

	msgs := c.Compose(notes, "hi")

	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[1].Content, "note 2")
	assert.NotContains(t, msgs[1].Content, "note 3")
}
