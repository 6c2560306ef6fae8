package memory_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valet-backend/domain/memory"
)

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := memory.NewDocument()
	doc.Profile["name"] = memory.Entry{Value: "Bob", Score: 5}
	doc.Preferences["tea"] = memory.Entry{Value: "earl grey", Score: 7}
	doc.Notes = append(doc.Notes, memory.NewNote("buy milk", 5), memory.NewNote("call dentist", 3))
	doc.Extra["errands"] = []memory.Note{memory.NewNote("post office", 5)}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var loaded memory.Document
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, doc.Profile, loaded.Profile)
	assert.Equal(t, doc.Preferences, loaded.Preferences)
	require.Len(t, loaded.Notes, 2)
	assert.Equal(t, "buy milk", loaded.Notes[0].Content)
	assert.Equal(t, "call dentist", loaded.Notes[1].Content)
	require.Contains(t, loaded.Extra, "errands")
	assert.Equal(t, "post office", loaded.Extra["errands"][0].Content)
}

func TestDocument_DynamicCategorySerializesAtTopLevel(t *testing.T) {
	doc := memory.NewDocument()
	doc.Extra["errands"] = []memory.Note{memory.NewNote("post office", 5)}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "profile")
	assert.Contains(t, raw, "preferences")
	assert.Contains(t, raw, "notes")
	assert.Contains(t, raw, "errands")
}

func TestDocument_UnmarshalNormalizesMissingCategories(t *testing.T) {
	var doc memory.Document
	require.NoError(t, json.Unmarshal([]byte(`{"notes": []}`), &doc))

	assert.NotNil(t, doc.Profile)
	assert.NotNil(t, doc.Preferences)
	assert.NotNil(t, doc.Notes)
	assert.NotNil(t, doc.Extra)
}

func TestNewNote_TrimsContent(t *testing.T) {
	n := memory.NewNote("  buy milk \n", 5)

	assert.Equal(t, "buy milk", n.Content)
	assert.Equal(t, 5, n.Score)
	assert.Equal(t, 0, n.TimesUsed)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.SavedAt.IsZero())
}
