// Package memory defines the persisted memory model: a single document
// holding profile facts, preferences, and scored freeform notes, plus any
// ad hoc note categories a caller has created.
package memory

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Categories with fixed semantics. Any other category name is treated as an
// ad hoc note list created on first write.
const (
	CategoryProfile     = "profile"
	CategoryPreferences = "preferences"
	CategoryNotes       = "notes"
)

// DefaultScore is the relevance score assigned when the caller omits one.
const DefaultScore = 5

// Note is a freeform remembered statement with a mutable relevance score.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Score     int       `json:"score"`
	TimesUsed int       `json:"times_used"`
	SavedAt   time.Time `json:"saved_at"`
}

// NewNote creates a note with trimmed content and a fresh ID.
// SavedAt is immutable after creation.
func NewNote(content string, score int) Note {
	return Note{
		ID:      uuid.New().String(),
		Content: strings.TrimSpace(content),
		Score:   score,
		SavedAt: time.Now().UTC(),
	}
}

// Entry is a keyed profile or preference value.
type Entry struct {
	Value     string    `json:"value"`
	Score     int       `json:"score"`
	TimesUsed int       `json:"times_used"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is the root persisted entity. Profile, preferences and notes are
// always present; Extra holds dynamically created note categories, which
// serialize as additional top-level keys alongside the fixed three.
type Document struct {
	Profile     map[string]Entry
	Preferences map[string]Entry
	Notes       []Note
	Extra       map[string][]Note
}

// NewDocument returns an empty document with all fixed categories present.
func NewDocument() *Document {
	return &Document{
		Profile:     make(map[string]Entry),
		Preferences: make(map[string]Entry),
		Notes:       []Note{},
		Extra:       make(map[string][]Note),
	}
}

// Normalize ensures the fixed categories are non-nil. Documents loaded from
// older files may be missing keys entirely.
func (d *Document) Normalize() {
	if d.Profile == nil {
		d.Profile = make(map[string]Entry)
	}
	if d.Preferences == nil {
		d.Preferences = make(map[string]Entry)
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.Extra == nil {
		d.Extra = make(map[string][]Note)
	}
}

// NoteList returns the note sequence for a category, checking the fixed
// notes list first and dynamic categories second.
func (d *Document) NoteList(category string) ([]Note, bool) {
	if category == CategoryNotes {
		return d.Notes, true
	}
	notes, ok := d.Extra[category]
	return notes, ok
}

// SetNoteList replaces the note sequence for a category.
func (d *Document) SetNoteList(category string, notes []Note) {
	if category == CategoryNotes {
		d.Notes = notes
		return
	}
	d.Extra[category] = notes
}

// MarshalJSON flattens dynamic categories into top-level keys so the on-disk
// document keeps the shape {"profile": ..., "preferences": ..., "notes": ...,
// "<extra>": ...}.
func (d *Document) MarshalJSON() ([]byte, error) {
	d.Normalize()

	out := make(map[string]interface{}, 3+len(d.Extra))
	out[CategoryProfile] = d.Profile
	out[CategoryPreferences] = d.Preferences
	out[CategoryNotes] = d.Notes
	for name, notes := range d.Extra {
		out[name] = notes
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts any top-level keys: the fixed three plus dynamic
// note categories. Unknown keys that fail to parse as note lists are
// rejected rather than silently dropped.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Profile = make(map[string]Entry)
	d.Preferences = make(map[string]Entry)
	d.Notes = []Note{}
	d.Extra = make(map[string][]Note)

	for name, msg := range raw {
		switch name {
		case CategoryProfile:
			if err := json.Unmarshal(msg, &d.Profile); err != nil {
				return err
			}
		case CategoryPreferences:
			if err := json.Unmarshal(msg, &d.Preferences); err != nil {
				return err
			}
		case CategoryNotes:
			if err := json.Unmarshal(msg, &d.Notes); err != nil {
				return err
			}
		default:
			var notes []Note
			if err := json.Unmarshal(msg, &notes); err != nil {
				return err
			}
			d.Extra[name] = notes
		}
	}

	d.Normalize()
	return nil
}
