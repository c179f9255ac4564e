package lsp

import (
	"github.com/grindlemire/rmcxml/internal/lsp/provider"
)

// CompletionParams represents textDocument/completion parameters.
type CompletionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
	Context      *CompletionContext     `json:"context,omitempty"`
}

// CompletionContext, CompletionList, CompletionItem and CompletionItemKind
// are type aliases for the canonical definitions in the provider package.
type CompletionContext = provider.CompletionContext
type CompletionList = provider.CompletionList
type CompletionItem = provider.CompletionItem
type CompletionItemKind = provider.CompletionItemKind

const (
	CompletionItemKindClass      = provider.CompletionItemKindClass
	CompletionItemKindProperty   = provider.CompletionItemKindProperty
	CompletionItemKindEnumMember = provider.CompletionItemKindEnumMember
)

// completionTriggers are the characters after which the editor asks for
// completions without an explicit request.
var completionTriggers = []string{"<", "/", " ", "=", `"`}
