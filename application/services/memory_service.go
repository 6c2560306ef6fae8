package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"valet-backend/application/ports"
	"valet-backend/domain/memory"
)

// Status identifies the outcome of a memory operation. Validation outcomes
// are statuses, not errors: callers inspect the status field instead of
// matching message text.
type Status string

const (
	StatusStored            Status = "stored"
	StatusNothingToRemember Status = "nothing_to_remember"
	StatusMissingKey        Status = "missing_key"
	StatusForgotten         Status = "forgotten"
	StatusNotFound          Status = "not_found"
	StatusUnknownCategory   Status = "unknown_category"
)

// Result is the outcome of a remember or forget operation.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Stats summarizes the current memory document.
type Stats struct {
	NoteCount       int        `json:"note_count"`
	ProfileCount    int        `json:"profile_count"`
	PreferenceCount int        `json:"preference_count"`
	ExtraCategories []string   `json:"extra_categories,omitempty"`
	TotalScore      int        `json:"total_score"`
	AverageScore    float64    `json:"average_score"`
	TopScore        int        `json:"top_score"`
	OldestNote      *time.Time `json:"oldest_note,omitempty"`
	NewestNote      *time.Time `json:"newest_note,omitempty"`
}

// MemoryService implements remember, forget and read operations over the
// single memory document. Each call loads the full document and writes it
// back; there is no partial update.
type MemoryService struct {
	store  ports.MemoryStore
	logger *zap.Logger
}

// NewMemoryService creates a memory service.
func NewMemoryService(store ports.MemoryStore, logger *zap.Logger) *MemoryService {
	return &MemoryService{store: store, logger: logger}
}

// Remember stores content in the given category. Profile and preference
// entries are keyed upserts; every other category (including brand-new names)
// appends a note. Empty content is acknowledged without storing anything.
func (s *MemoryService) Remember(ctx context.Context, category, key, content string, score int) (Result, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Result{
			Status:  StatusNothingToRemember,
			Message: "Nothing to remember, master.",
		}, nil
	}

	if category == "" {
		category = memory.CategoryNotes
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	switch category {
	case memory.CategoryProfile, memory.CategoryPreferences:
		if key == "" {
			return Result{
				Status:  StatusMissingKey,
				Message: "A key is required for profile and preference entries, master.",
			}, nil
		}
		entry := memory.Entry{
			Value:     content,
			Score:     score,
			UpdatedAt: time.Now().UTC(),
		}
		if category == memory.CategoryProfile {
			doc.Profile[key] = entry
		} else {
			doc.Preferences[key] = entry
		}
	default:
		notes, _ := doc.NoteList(category)
		doc.SetNoteList(category, append(notes, memory.NewNote(content, score)))
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return Result{}, err
	}

	s.logger.Info("Memory stored",
		zap.String("category", category),
		zap.Int("score", score),
	)

	return Result{
		Status:  StatusStored,
		Message: "I have stored this information securely and privately, master.",
	}, nil
}

// Forget removes a keyed entry (profile/preferences) or a note by index.
// Absent keys and out-of-range indexes are silent no-ops; a category outside
// the recognized set leaves storage untouched.
func (s *MemoryService) Forget(ctx context.Context, category, key string, index *int) (Result, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	switch category {
	case memory.CategoryProfile, memory.CategoryPreferences:
		entries := doc.Profile
		if category == memory.CategoryPreferences {
			entries = doc.Preferences
		}
		if _, ok := entries[key]; !ok {
			return Result{
				Status:  StatusNotFound,
				Message: "I found nothing by that key to forget, master.",
			}, nil
		}
		delete(entries, key)

	default:
		notes, ok := doc.NoteList(category)
		if !ok {
			return Result{
				Status:  StatusUnknownCategory,
				Message: "I do not keep a category by that name, master.",
			}, nil
		}
		if index == nil || *index < 0 || *index >= len(notes) {
			return Result{
				Status:  StatusNotFound,
				Message: "I found nothing at that position to forget, master.",
			}, nil
		}
		doc.SetNoteList(category, append(notes[:*index], notes[*index+1:]...))
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return Result{}, err
	}

	s.logger.Info("Memory forgotten", zap.String("category", category))

	return Result{
		Status:  StatusForgotten,
		Message: "Consider it forgotten, master.",
	}, nil
}

// Snapshot returns the full document with every note list ranked by score
// descending.
func (s *MemoryService) Snapshot(ctx context.Context) (*memory.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc.Notes = memory.Rank(doc.Notes)
	for name, notes := range doc.Extra {
		doc.Extra[name] = memory.Rank(notes)
	}
	return doc, nil
}

// Stats computes summary statistics over the stored notes.
func (s *MemoryService) Stats(ctx context.Context) (*Stats, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		NoteCount:       len(doc.Notes),
		ProfileCount:    len(doc.Profile),
		PreferenceCount: len(doc.Preferences),
	}
	for name := range doc.Extra {
		stats.ExtraCategories = append(stats.ExtraCategories, name)
	}
	sort.Strings(stats.ExtraCategories)

	if len(doc.Notes) == 0 {
		return stats, nil
	}

	oldest := doc.Notes[0].SavedAt
	newest := doc.Notes[0].SavedAt
	for _, n := range doc.Notes {
		stats.TotalScore += n.Score
		if n.Score > stats.TopScore {
			stats.TopScore = n.Score
		}
		if n.SavedAt.Before(oldest) {
			oldest = n.SavedAt
		}
		if n.SavedAt.After(newest) {
			newest = n.SavedAt
		}
	}
	stats.AverageScore = float64(stats.TotalScore) / float64(len(doc.Notes))
	stats.OldestNote = &oldest
	stats.NewestNote = &newest

	return stats, nil
}
