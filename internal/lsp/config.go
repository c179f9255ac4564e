package lsp

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/grindlemire/rmcxml/internal/lsp/provider"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
	"github.com/grindlemire/rmcxml/internal/xmlcheck"
)

// Config controls which checks run and how diagnostics are labelled.
type Config struct {
	Schema             *schema.Registry
	Structure          bool
	RequireDeclaration bool
	// UniqueKeys adds the duplicate entry key check for documents that parse.
	UniqueKeys         bool
	Source             string
}

// DefaultConfig returns the configuration used when the client sends none.
func DefaultConfig() Config {
	return Config{
		Schema:    schema.RMC,
		Structure: true,
		Source:    provider.DefaultSource,
	}
}

// initOptions mirrors the initializationOptions a client may send.
type initOptions struct {
	RequireXMLDeclaration *bool `json:"requireXmlDeclaration,omitempty"`
	StructuralDiagnostics *bool `json:"structuralDiagnostics,omitempty"`
	UniqueEntryKeys       *bool `json:"uniqueEntryKeys,omitempty"`
}

// WithInitOptions returns cfg with the client's initializationOptions
// applied. Absent fields keep their current values.
func (cfg Config) WithInitOptions(raw json.RawMessage) (Config, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return cfg, nil
	}
	var opts initOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return cfg, errors.Wrap(err, "decoding initializationOptions")
	}
	if opts.RequireXMLDeclaration != nil {
		cfg.RequireDeclaration = *opts.RequireXMLDeclaration
	}
	if opts.StructuralDiagnostics != nil {
		cfg.Structure = *opts.StructuralDiagnostics
	}
	if opts.UniqueEntryKeys != nil {
		cfg.UniqueKeys = *opts.UniqueEntryKeys
	}
	return cfg, nil
}

func (cfg Config) validator() provider.Checker {
	reg := cfg.Schema
	if reg == nil {
		reg = schema.RMC
	}
	v := validate.New(reg, validate.Options{
		Structure:          cfg.Structure,
		RequireDeclaration: cfg.RequireDeclaration,
	})
	if cfg.UniqueKeys {
		return xmlcheck.New(v)
	}
	return v
}
