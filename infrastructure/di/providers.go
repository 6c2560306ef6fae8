package di

import (
	"go.uber.org/zap"

	"valet-backend/application/ports"
	"valet-backend/application/services"
	"valet-backend/domain/prompt"
	"valet-backend/infrastructure/completion"
	"valet-backend/infrastructure/config"
	"valet-backend/infrastructure/persistence/jsonfile"
)

// Container holds all application dependencies.
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	MemoryStore      ports.MemoryStore
	CompletionClient ports.CompletionClient
	MemoryService    *services.MemoryService
	AssistantService *services.AssistantService
}

// ProvideLogger creates a new logger instance.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// ProvideMemoryStore creates the JSON file store.
func ProvideMemoryStore(cfg *config.Config, logger *zap.Logger) ports.MemoryStore {
	return jsonfile.NewStore(cfg.MemoryFile, logger)
}

// ProvideCompletionClient selects the completion client for the configured
// mode. Mock mode never touches the network.
func ProvideCompletionClient(cfg *config.Config, logger *zap.Logger) ports.CompletionClient {
	if cfg.AssistantMode == config.ModeLive {
		return completion.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AssistantModel, cfg.MaxTokens, logger)
	}
	return completion.NewMockClient()
}

// ProvideComposer builds the prompt composer from the configured persona.
func ProvideComposer(cfg *config.Config) (*prompt.Composer, error) {
	persona, err := config.LoadPersona(cfg.PersonaFile, cfg.MaxPromptNotes)
	if err != nil {
		return nil, err
	}
	return prompt.NewComposer(persona.System, persona.MaxPromptNotes), nil
}

// ProvideMemoryService creates the memory service.
func ProvideMemoryService(store ports.MemoryStore, logger *zap.Logger) *services.MemoryService {
	return services.NewMemoryService(store, logger)
}

// ProvideAssistantService creates the assistant service.
func ProvideAssistantService(
	store ports.MemoryStore,
	completer ports.CompletionClient,
	composer *prompt.Composer,
	logger *zap.Logger,
) *services.AssistantService {
	return services.NewAssistantService(store, completer, composer, logger)
}
