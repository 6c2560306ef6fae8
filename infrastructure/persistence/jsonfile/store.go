// Package jsonfile persists the memory document as a single JSON file.
// Reads and writes always cover the whole document; there is no append log
// and no incremental format.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"valet-backend/domain/memory"
	pkgerrors "valet-backend/pkg/errors"
)

// Store reads and writes the memory document at a fixed path.
//
// Concurrency: the mutex only keeps one temp-write/rename pair from
// interleaving with another. Requests that load, mutate and save around it
// still race each other; the last save wins. That is the documented scope of
// this single-tenant tool.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewStore creates a store for the given file path.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the persisted document. A missing file means "no memory yet"
// and yields a fresh document. A file that no longer parses is treated the
// same way, with a warning: silent data loss is preferred over refusing to
// serve (fail-soft policy).
func (s *Store) Load(ctx context.Context) (*memory.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return memory.NewDocument(), nil
		}
		return nil, pkgerrors.NewStorageError("read memory file", err)
	}

	var doc memory.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("Memory file is corrupt, starting with empty memory",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return memory.NewDocument(), nil
	}

	doc.Normalize()
	return &doc, nil
}

// Save serializes the full document and replaces the file via a temp file
// and rename, so a crash mid-write never leaves a half-written document.
func (s *Store) Save(ctx context.Context, doc *memory.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return pkgerrors.NewStorageError("marshal memory document", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.NewStorageError("create memory directory", err)
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%s-*", filepath.Base(s.path)))
	if err != nil {
		return pkgerrors.NewStorageError("create temp memory file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return pkgerrors.NewStorageError("write temp memory file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return pkgerrors.NewStorageError("close temp memory file", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return pkgerrors.NewStorageError("replace memory file", err)
	}

	return nil
}
