package provider

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/scan"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

// attrWordRe matches a word optionally followed by a quoted value so that
// words inside values are skipped.
var attrWordRe = regexp.MustCompile(`(\w+)(?:\s*=\s*["'][^"']*["'])?`)

// hoverProvider implements HoverProvider.
type hoverProvider struct {
	reg *schema.Registry
}

// NewHoverProvider creates a hover provider backed by reg.
func NewHoverProvider(reg *schema.Registry) HoverProvider {
	return &hoverProvider{reg: reg}
}

func (h *hoverProvider) Hover(ctx *CursorContext) (*Hover, error) {
	line := ctx.Line
	col := scan.ByteOffset(line, ctx.Position.Character)
	log.Provider("hover", "at %d:%d line=%q", ctx.Position.Line, ctx.Position.Character, line)

	if hover := h.elementHover(line, col, ctx.Position.Line); hover != nil {
		return hover, nil
	}
	return h.attributeHover(line, col, ctx.Position.Line), nil
}

// elementHover matches the element name covering col, inclusive of the
// position just past the name. Elements without documentation fall through.
func (h *hoverProvider) elementHover(line string, col, lineIdx int) *Hover {
	for _, ref := range scan.NameRefs(line) {
		if col < ref.Start || col > ref.End() {
			continue
		}
		def := h.reg.Element(ref.Name)
		if def == nil || def.Description == "" {
			return nil
		}
		return &Hover{
			Contents: MarkupContent{Kind: "markdown", Value: formatElement(def)},
			Range:    lineRange(line, lineIdx, ref.Start, ref.End()),
		}
	}
	return nil
}

// attributeHover looks up the word under col as an attribute of the nearest
// element opened before col on the same line.
func (h *hoverProvider) attributeHover(line string, col, lineIdx int) *Hover {
	element := ""
	for _, ref := range scan.NameRefs(line) {
		if ref.Lt >= col {
			break
		}
		if !ref.Closing {
			element = ref.Name
		}
	}
	if element == "" {
		return nil
	}

	for _, m := range attrWordRe.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[2], m[3]
		if col < start || col > end {
			continue
		}
		name := line[start:end]
		attr := h.reg.Attribute(element, name)
		if attr == nil || attr.Description == "" {
			return nil
		}
		return &Hover{
			Contents: MarkupContent{
				Kind:  "markdown",
				Value: fmt.Sprintf("**%s** (%s)\n\n%s", name, element, attrDescription(attr)),
			},
			Range: lineRange(line, lineIdx, start, end),
		}
	}
	return nil
}

func formatElement(def *schema.ElementDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", def.Name, def.Description)
	if def.Details != "" {
		fmt.Fprintf(&b, "%s\n\n", def.Details)
	}
	if len(def.Attributes) > 0 {
		b.WriteString("| Attribute | Required | Description |\n")
		b.WriteString("|---|---|---|\n")
		for _, a := range def.Attributes {
			required := "no"
			if a.Required {
				required = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Name, required, a.Description)
		}
	}
	return b.String()
}

func attrDescription(a *schema.AttributeDef) string {
	if a.Required {
		return a.Description + " (required)"
	}
	return a.Description
}

func lineRange(line string, lineIdx, start, end int) *Range {
	return &Range{
		Start: Position{Line: lineIdx, Character: scan.UTF16Len(line[:start])},
		End:   Position{Line: lineIdx, Character: scan.UTF16Len(line[:end])},
	}
}
