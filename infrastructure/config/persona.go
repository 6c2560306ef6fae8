package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Persona holds the assistant's fixed instruction set. It ships with a
// compiled-in default and can be overridden from a YAML file.
type Persona struct {
	System         string `yaml:"system"`
	MaxPromptNotes int    `yaml:"max_prompt_notes"`
}

// DefaultPersona is used when no persona file is configured.
const DefaultPersona = "You are a discreet personal valet. Address the user as " +
	"\"master\". Answer briefly and politely, and use the relevant memories " +
	"provided to you when they help. Never invent memories."

// LoadPersona reads the persona file when path is set, falling back to the
// compiled-in default otherwise. Fields left empty in the file keep their
// defaults.
func LoadPersona(path string, defaultMaxNotes int) (*Persona, error) {
	persona := &Persona{
		System:         DefaultPersona,
		MaxPromptNotes: defaultMaxNotes,
	}

	if path == "" {
		return persona, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona file: %w", err)
	}

	var file Persona
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse persona file: %w", err)
	}

	if file.System != "" {
		persona.System = file.System
	}
	if file.MaxPromptNotes > 0 {
		persona.MaxPromptNotes = file.MaxPromptNotes
	}

	return persona, nil
}
