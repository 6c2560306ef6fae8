// Package ports defines the interfaces the application layer depends on.
// Infrastructure provides the implementations.
package ports

import (
	"context"

	"valet-backend/domain/memory"
	"valet-backend/domain/prompt"
)

// MemoryStore persists the single memory document. Every operation works on
// the whole document: load it, mutate it, save it back. There is no
// cross-request locking; concurrent writers are last-save-wins, which is
// acceptable for a single-tenant tool.
type MemoryStore interface {
	// Load reads the persisted document. A missing or unreadable file
	// yields a fresh empty document, never an error ("no memory yet").
	Load(ctx context.Context) (*memory.Document, error)

	// Save overwrites the persisted document atomically with respect to
	// a single writer.
	Save(ctx context.Context, doc *memory.Document) error
}

// CompletionClient produces a reply for a composed prompt bundle.
type CompletionClient interface {
	Complete(ctx context.Context, msgs []prompt.Message) (string, error)
}
