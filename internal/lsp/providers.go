package lsp

import (
	"github.com/grindlemire/rmcxml/internal/lsp/provider"
)

// HoverProvider, CompletionProvider, DocumentSymbolProvider and
// DiagnosticsProvider are aliases for the provider package interfaces.
type HoverProvider = provider.HoverProvider
type CompletionProvider = provider.CompletionProvider
type DocumentSymbolProvider = provider.DocumentSymbolProvider
type DiagnosticsProvider = provider.DiagnosticsProvider

// Registry holds all registered LSP providers.
// The router dispatches to these providers when handling requests.
type Registry struct {
	Hover          HoverProvider
	Completion     CompletionProvider
	DocumentSymbol DocumentSymbolProvider
	Diagnostics    DiagnosticsProvider
}

// NewRegistry builds the default providers for cfg.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		Hover:          provider.NewHoverProvider(cfg.Schema),
		Completion:     provider.NewCompletionProvider(cfg.Schema),
		DocumentSymbol: provider.NewDocumentSymbolProvider(cfg.Schema),
		Diagnostics:    provider.NewDiagnosticsProvider(cfg.Source),
	}
}
