// Package provider implements LSP feature providers that the router dispatches to.
// Each provider handles a specific LSP capability (completion, hover, diagnostics,
// document symbols) using the CursorContext for position resolution and the schema
// registry for language knowledge.
//
// The protocol and document types are defined here and aliased by the parent lsp
// package, so providers never import lsp.
package provider

import (
	"strings"

	"github.com/grindlemire/rmcxml/internal/lsp/scan"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
)

// ContextKind classifies the lexical position of the cursor.
type ContextKind int

const (
	ContextNone ContextKind = iota
	ContextElementName
	ContextAttributeName
	ContextAttributeValue
	ContextClosingTag
)

// String returns a human-readable name for the ContextKind.
func (k ContextKind) String() string {
	switch k {
	case ContextElementName:
		return "ElementName"
	case ContextAttributeName:
		return "AttributeName"
	case ContextAttributeValue:
		return "AttributeValue"
	case ContextClosingTag:
		return "ClosingTag"
	default:
		return "None"
	}
}

// CursorContext is the resolved lexical context at a cursor position. It is
// computed on demand from the text before the cursor and never cached.
type CursorContext struct {
	Document *Document
	Position Position
	Offset   int

	Kind ContextKind
	Line string // full text of the cursor line

	// Tag is the unterminated tag text from its '<' to the cursor, empty
	// when the cursor is not inside a tag.
	Tag string

	Enclosing     string   // innermost open element, schema.RootKey when none
	Element       string   // name of the tag being edited
	Attribute     string   // attribute whose value is being edited
	ExistingAttrs []string // attributes already written on the tag
	OpenTags      []string // open elements before the cursor, innermost first
}

// Document is an open document in the editor.
type Document struct {
	URI     string
	Content string
	Version int
	Errors  []validate.Error
}

// --- LSP protocol types ---

// Position is a 0-indexed line and UTF-16 character offset in a document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a span in a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location is a position in a specific document.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// Hover is the result of a hover request.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// MarkupContent represents markup content.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// --- Provider interfaces ---

// HoverProvider produces hover documentation.
type HoverProvider interface {
	Hover(ctx *CursorContext) (*Hover, error)
}

// CompletionProvider produces completion suggestions.
type CompletionProvider interface {
	Complete(ctx *CursorContext) (*CompletionList, error)
}

// DocumentSymbolProvider returns the element outline for a document.
type DocumentSymbolProvider interface {
	DocumentSymbols(doc *Document) ([]DocumentSymbol, error)
}

// DiagnosticsProvider produces diagnostics for a document.
type DiagnosticsProvider interface {
	Diagnose(doc *Document) ([]Diagnostic, error)
}

// --- Symbol types ---

// DocumentSymbol represents a symbol found in a document.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail,omitempty"`
	Kind           SymbolKind       `json:"kind"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// SymbolKind represents the kind of symbol.
type SymbolKind int

const (
	SymbolKindFile      SymbolKind = 1
	SymbolKindModule    SymbolKind = 2
	SymbolKindNamespace SymbolKind = 3
	SymbolKindClass     SymbolKind = 5
	SymbolKindProperty  SymbolKind = 7
	SymbolKindField     SymbolKind = 8
	SymbolKindKey       SymbolKind = 20
	SymbolKindStruct    SymbolKind = 23
)

// --- Helper functions ---

// PositionToOffset converts a 0-indexed line and UTF-16 character to a byte
// offset in content. A line past the end maps to len(content); a character
// past the end of its line maps to the end of that line.
func PositionToOffset(content string, pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	start := 0
	for line := 0; line < pos.Line; line++ {
		nl := strings.IndexByte(content[start:], '\n')
		if nl < 0 {
			return len(content)
		}
		start += nl + 1
	}
	end := len(content)
	if nl := strings.IndexByte(content[start:], '\n'); nl >= 0 {
		end = start + nl
	}
	if pos.Character <= 0 {
		return start
	}
	return start + scan.ByteOffset(content[start:end], pos.Character)
}

// OffsetToPosition converts a byte offset in content to a 0-indexed line and
// UTF-16 character.
func OffsetToPosition(content string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Line:      strings.Count(before, "\n"),
		Character: scan.UTF16Len(before[lineStart:]),
	}
}

// LineText returns the text of the 0-indexed line, without its newline.
func LineText(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}
