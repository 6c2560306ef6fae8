package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valet-backend/infrastructure/config"
)

func TestValidate_LiveModeRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{
		AssistantMode:  config.ModeLive,
		MemoryFile:     "data/memory.json",
		MaxPromptNotes: 10,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	cfg.AnthropicAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MockModeNeedsNoCredential(t *testing.T) {
	cfg := &config.Config{
		AssistantMode:  config.ModeMock,
		MemoryFile:     "data/memory.json",
		MaxPromptNotes: 10,
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := &config.Config{
		AssistantMode:  "hybrid",
		MemoryFile:     "data/memory.json",
		MaxPromptNotes: 10,
	}

	assert.Error(t, cfg.Validate())
}

func TestLoadPersona_DefaultsWithoutFile(t *testing.T) {
	persona, err := config.LoadPersona("", 10)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPersona, persona.System)
	assert.Equal(t, 10, persona.MaxPromptNotes)
}

func TestLoadPersona_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system: Be terse.\nmax_prompt_notes: 3\n"), 0o644))

	persona, err := config.LoadPersona(path, 10)
	require.NoError(t, err)
	assert.Equal(t, "Be terse.", persona.System)
	assert.Equal(t, 3, persona.MaxPromptNotes)
}

func TestLoadPersona_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system: Be terse.\n"), 0o644))

	persona, err := config.LoadPersona(path, 10)
	require.NoError(t, err)
	assert.Equal(t, "Be terse.", persona.System)
	assert.Equal(t, 10, persona.MaxPromptNotes)
}

func TestLoadPersona_MissingFileIsAnError(t *testing.T) {
	_, err := config.LoadPersona("/nonexistent/persona.yaml", 10)
	assert.Error(t, err)
}
