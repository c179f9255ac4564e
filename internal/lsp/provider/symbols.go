package provider

import (
	"strings"

	xmldom "github.com/agentflare-ai/go-xmldom"

	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

// documentSymbolProvider implements DocumentSymbolProvider.
type documentSymbolProvider struct {
	reg *schema.Registry
}

// NewDocumentSymbolProvider creates a document symbol provider backed by reg.
func NewDocumentSymbolProvider(reg *schema.Registry) DocumentSymbolProvider {
	return &documentSymbolProvider{reg: reg}
}

// DocumentSymbols returns the element outline. A document that does not
// decode yields an empty outline, since the editor keeps the last good one.
func (s *documentSymbolProvider) DocumentSymbols(doc *Document) ([]DocumentSymbol, error) {
	log.Provider("symbols", "outline for %s", doc.URI)

	dom, err := xmldom.Decode(strings.NewReader(doc.Content))
	if err != nil {
		log.Provider("symbols", "decode %s: %v", doc.URI, err)
		return []DocumentSymbol{}, nil
	}
	root := dom.DocumentElement()
	if root == nil {
		return []DocumentSymbol{}, nil
	}
	return []DocumentSymbol{s.elementToSymbol(root, doc.Content)}, nil
}

func (s *documentSymbolProvider) elementToSymbol(elem xmldom.Element, content string) DocumentSymbol {
	name := string(elem.LocalName())
	start := elementStart(elem, content)
	nameEnd := Position{Line: start.Line, Character: start.Character + 1 + len(name)}

	symbol := DocumentSymbol{
		Name:           name,
		Detail:         s.detail(elem, name),
		Kind:           s.kind(name),
		Range:          Range{Start: start, End: nameEnd},
		SelectionRange: Range{Start: start, End: nameEnd},
	}

	children := elem.Children()
	for i := uint(0); i < children.Length(); i++ {
		child := children.Item(i)
		if child == nil {
			continue
		}
		c := s.elementToSymbol(child, content)
		if c.Range.End.Line > symbol.Range.End.Line ||
			(c.Range.End.Line == symbol.Range.End.Line && c.Range.End.Character > symbol.Range.End.Character) {
			symbol.Range.End = c.Range.End
		}
		symbol.Children = append(symbol.Children, c)
	}
	return symbol
}

// detail shows the first required attribute value, which is the element's
// key for entries and links.
func (s *documentSymbolProvider) detail(elem xmldom.Element, name string) string {
	for _, attr := range s.reg.RequiredAttributesOf(name) {
		if v := string(elem.GetAttribute(xmldom.DOMString(attr))); v != "" {
			return attr + "=" + v
		}
	}
	return ""
}

func (s *documentSymbolProvider) kind(name string) SymbolKind {
	switch {
	case name == s.reg.Root():
		return SymbolKindModule
	case !s.reg.IsKnownElement(name):
		return SymbolKindField
	case len(s.reg.RequiredAttributesOf(name)) > 0 && len(s.reg.ChildrenOf(name)) > 0:
		return SymbolKindKey
	case len(s.reg.ChildrenOf(name)) > 0:
		return SymbolKindStruct
	default:
		return SymbolKindProperty
	}
}

// elementStart converts the decoder's 1-based position to an LSP position,
// falling back to a byte offset when no line was recorded.
func elementStart(elem xmldom.Element, content string) Position {
	line, col, offset := elem.Position()
	if line > 0 {
		character := col - 1
		if character < 0 {
			character = 0
		}
		return Position{Line: line - 1, Character: character}
	}
	return OffsetToPosition(content, int(offset))
}
