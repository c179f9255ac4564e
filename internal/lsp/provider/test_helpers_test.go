package provider

import (
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

// --- Shared test helpers ---

func newTestDoc(src string) *Document {
	return &Document{
		URI:     "file:///test.rmc.xml",
		Content: src,
		Version: 1,
	}
}

func makeCtx(doc *Document, kind ContextKind) *CursorContext {
	return &CursorContext{
		Document:  doc,
		Kind:      kind,
		Enclosing: schema.RootKey,
	}
}

// hoverCtx builds a context for hovering at line/character of src.
func hoverCtx(src string, line, character int) *CursorContext {
	doc := newTestDoc(src)
	ctx := makeCtx(doc, ContextNone)
	ctx.Position = Position{Line: line, Character: character}
	ctx.Offset = PositionToOffset(src, ctx.Position)
	ctx.Line = LineText(src, line)
	return ctx
}

func labels(items []CompletionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}
