package lsp

import (
	"github.com/grindlemire/rmcxml/internal/lsp/provider"
)

// DocumentSymbolParams represents textDocument/documentSymbol parameters.
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentSymbol and SymbolKind are type aliases for the canonical
// definitions in the provider package.
type DocumentSymbol = provider.DocumentSymbol
type SymbolKind = provider.SymbolKind
