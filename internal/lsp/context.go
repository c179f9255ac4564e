package lsp

import (
	"regexp"
	"strings"

	"github.com/grindlemire/rmcxml/internal/lsp/provider"
	"github.com/grindlemire/rmcxml/internal/lsp/scan"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

// CursorContext and ContextKind are type aliases for the canonical
// definitions in the provider package.
type CursorContext = provider.CursorContext
type ContextKind = provider.ContextKind

const (
	ContextNone           = provider.ContextNone
	ContextElementName    = provider.ContextElementName
	ContextAttributeName  = provider.ContextAttributeName
	ContextAttributeValue = provider.ContextAttributeValue
	ContextClosingTag     = provider.ContextClosingTag
)

var (
	existingAttrRe = regexp.MustCompile(`(\w+)=`)
	valuedAttrRe   = regexp.MustCompile(`(\w+)=["'][^"']*$`)
)

// ResolveCursorContext resolves the cursor context for a document position.
// Only the text before the cursor is consulted.
func ResolveCursorContext(doc *Document, pos Position) *CursorContext {
	offset := PositionToOffset(doc.Content, pos)
	ctx := &CursorContext{
		Document: doc,
		Position: pos,
		Offset:   offset,
		Line:     provider.LineText(doc.Content, pos.Line),
	}
	classify(ctx, doc.Content[:offset])
	return ctx
}

// ResolvePrefix classifies the cursor at the end of prefix.
func ResolvePrefix(prefix string) *CursorContext {
	ctx := &CursorContext{
		Document: &Document{Content: prefix},
		Position: OffsetToPosition(prefix, len(prefix)),
		Offset:   len(prefix),
	}
	ctx.Line = provider.LineText(prefix, ctx.Position.Line)
	classify(ctx, prefix)
	return ctx
}

// classify fills the kind and the element fields of ctx. The checks overlap,
// so their order is significant.
func classify(ctx *CursorContext, prefix string) {
	ctx.OpenTags = scan.Innermost(prefix)
	ctx.Enclosing = schema.RootKey
	if len(ctx.OpenTags) > 0 {
		ctx.Enclosing = ctx.OpenTags[0]
	}

	tag := unterminatedTag(prefix)
	ctx.Tag = tag
	inTag := tag != ""
	closing := strings.HasPrefix(tag, "</")
	hasSpace := strings.Contains(tag, " ")

	switch {
	case inTag && inQuotes(tag):
		ctx.Kind = ContextAttributeValue
		ctx.Element = tagName(tag)
		if m := valuedAttrRe.FindStringSubmatch(tag); m != nil {
			ctx.Attribute = m[1]
		}
	case strings.HasSuffix(prefix, "</"):
		ctx.Kind = ContextClosingTag
	case inTag && !closing && hasSpace && !strings.HasSuffix(tag, "="):
		ctx.Kind = ContextAttributeName
		ctx.Element = tagName(tag)
		ctx.ExistingAttrs = existingAttrs(tag)
	case inTag && !closing && !hasSpace:
		ctx.Kind = ContextElementName
		ctx.Element = tagName(tag)
	default:
		ctx.Kind = ContextNone
	}
}

// unterminatedTag returns the text from the last '<' to the end of prefix
// when no '>' follows that '<'.
func unterminatedTag(prefix string) string {
	lt := strings.LastIndexByte(prefix, '<')
	gt := strings.LastIndexByte(prefix, '>')
	if lt <= gt {
		return ""
	}
	return prefix[lt:]
}

// inQuotes reports whether tag ends inside a quoted value. Double and single
// quotes are counted independently.
func inQuotes(tag string) bool {
	return strings.Count(tag, `"`)%2 == 1 || strings.Count(tag, "'")%2 == 1
}

// tagName returns the element name right after '<' in tag, or "".
func tagName(tag string) string {
	i := 1
	for i < len(tag) && scan.IsNameChar(tag[i]) {
		i++
	}
	return tag[1:i]
}

func existingAttrs(tag string) []string {
	var names []string
	for _, m := range existingAttrRe.FindAllStringSubmatch(tag, -1) {
		names = append(names, m[1])
	}
	return names
}
