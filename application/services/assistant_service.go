package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"valet-backend/application/ports"
	"valet-backend/domain/memory"
	"valet-backend/domain/prompt"
	pkgerrors "valet-backend/pkg/errors"
)

// DefaultRefusal is returned for empty input without touching storage.
const DefaultRefusal = "I need something to work with, master."

// ChatResult is the outcome of one chat turn. Upstream is non-nil when the
// completion call failed; Reply then carries the rendered error text, so the
// HTTP contract is preserved while callers can still tell failure from
// success without string-matching.
type ChatResult struct {
	Reply      string
	Reinforced int
	Upstream   *pkgerrors.AppError
}

// AssistantService runs the chat pipeline: load memory, rank notes, compose
// the prompt, call the completion service, reinforce the notes that matched
// the input, persist.
type AssistantService struct {
	store     ports.MemoryStore
	completer ports.CompletionClient
	composer  *prompt.Composer
	logger    *zap.Logger
}

// NewAssistantService creates an assistant service.
func NewAssistantService(
	store ports.MemoryStore,
	completer ports.CompletionClient,
	composer *prompt.Composer,
	logger *zap.Logger,
) *AssistantService {
	return &AssistantService{
		store:     store,
		completer: completer,
		composer:  composer,
		logger:    logger,
	}
}

// Answer handles one chat or ask turn. Empty input short-circuits to the
// fixed refusal and never touches persisted storage. Reinforcement happens
// only after a successful completion.
func (s *AssistantService) Answer(ctx context.Context, input string) (ChatResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return ChatResult{Reply: DefaultRefusal}, nil
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return ChatResult{}, err
	}

	ranked := memory.Rank(doc.Notes)
	msgs := s.composer.Compose(ranked, input)

	reply, err := s.completer.Complete(ctx, msgs)
	if err != nil {
		upstream := pkgerrors.NewUpstreamError("completion service failed", err)
		s.logger.Error("Completion failed", zap.Error(upstream))
		return ChatResult{
			Reply:    "Error: " + err.Error(),
			Upstream: upstream,
		}, nil
	}

	hits := memory.Reinforce(doc.Notes, input)
	if err := s.store.Save(ctx, doc); err != nil {
		return ChatResult{}, err
	}

	s.logger.Info("Chat turn completed",
		zap.Int("rankedNotes", len(ranked)),
		zap.Int("reinforced", hits),
	)

	return ChatResult{Reply: reply, Reinforced: hits}, nil
}
