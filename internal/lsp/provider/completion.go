package provider

import (
	"fmt"
	"strings"

	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

// --- Completion types ---

// CompletionList represents a list of completion items.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// CompletionItem represents a completion suggestion.
type CompletionItem struct {
	Label            string             `json:"label"`
	Kind             CompletionItemKind `json:"kind,omitempty"`
	Detail           string             `json:"detail,omitempty"`
	Documentation    *MarkupContent     `json:"documentation,omitempty"`
	InsertText       string             `json:"insertText,omitempty"`
	InsertTextFormat InsertTextFormat   `json:"insertTextFormat,omitempty"`
}

// InsertTextFormat tells the editor how to interpret InsertText.
type InsertTextFormat int

const (
	InsertTextFormatPlainText InsertTextFormat = 1
	InsertTextFormatSnippet   InsertTextFormat = 2
)

// CompletionItemKind represents the kind of completion item.
type CompletionItemKind int

const (
	CompletionItemKindText       CompletionItemKind = 1
	CompletionItemKindClass      CompletionItemKind = 7
	CompletionItemKindProperty   CompletionItemKind = 10
	CompletionItemKindValue      CompletionItemKind = 12
	CompletionItemKindKeyword    CompletionItemKind = 14
	CompletionItemKindSnippet    CompletionItemKind = 15
	CompletionItemKindEnumMember CompletionItemKind = 20
)

// CompletionContext contains additional completion context from the editor.
type CompletionContext struct {
	TriggerKind      int    `json:"triggerKind"`
	TriggerCharacter string `json:"triggerCharacter,omitempty"`
}

// completionProvider implements CompletionProvider.
type completionProvider struct {
	reg *schema.Registry
}

// NewCompletionProvider creates a completion provider backed by reg.
func NewCompletionProvider(reg *schema.Registry) CompletionProvider {
	return &completionProvider{reg: reg}
}

func (c *completionProvider) Complete(ctx *CursorContext) (*CompletionList, error) {
	log.Provider("completion", "%s context at %d:%d (enclosing=%s element=%s attr=%s)",
		ctx.Kind, ctx.Position.Line, ctx.Position.Character, ctx.Enclosing, ctx.Element, ctx.Attribute)

	var items []CompletionItem
	switch ctx.Kind {
	case ContextElementName:
		items = c.elementItems(ctx.Enclosing)
	case ContextAttributeName:
		items = c.attributeItems(ctx.Element, ctx.ExistingAttrs)
	case ContextAttributeValue:
		items = c.valueItems(ctx.Attribute)
	case ContextClosingTag:
		items = closingItems(ctx.OpenTags)
	}

	return &CompletionList{
		IsIncomplete: false,
		Items:        dedupe(items),
	}, nil
}

// elementItems offers the children of parent as snippets that already carry
// every required attribute and the closing tag.
func (c *completionProvider) elementItems(parent string) []CompletionItem {
	if parent == "" {
		parent = schema.RootKey
	}
	var items []CompletionItem
	for _, name := range c.reg.ChildrenOf(parent) {
		item := CompletionItem{
			Label:            name,
			Kind:             CompletionItemKindClass,
			Detail:           name + " element",
			InsertText:       c.elementSnippet(name),
			InsertTextFormat: InsertTextFormatSnippet,
		}
		if def := c.reg.Element(name); def != nil && def.Description != "" {
			item.Documentation = &MarkupContent{Kind: "markdown", Value: def.Description}
		}
		items = append(items, item)
	}
	return items
}

func (c *completionProvider) elementSnippet(name string) string {
	required := c.reg.RequiredAttributesOf(name)
	if len(required) == 0 {
		return name + ">$1</" + name + ">"
	}
	var b strings.Builder
	b.WriteString(name)
	for i, attr := range required {
		fmt.Fprintf(&b, ` %s="$%d"`, attr, i+1)
	}
	fmt.Fprintf(&b, ">$%d</%s>", len(required)+1, name)
	return b.String()
}

func (c *completionProvider) attributeItems(element string, existing []string) []CompletionItem {
	if element == "" {
		return nil
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a] = true
	}

	var items []CompletionItem
	for _, name := range c.reg.AttributesOf(element) {
		if seen[name] {
			continue
		}
		attr := c.reg.Attribute(element, name)
		detail := attr.Name + " attribute"
		if attr.Required {
			detail += " (required)"
		}
		item := CompletionItem{
			Label:            attr.Name,
			Kind:             CompletionItemKindProperty,
			Detail:           detail,
			InsertText:       attr.Name + `="$1"`,
			InsertTextFormat: InsertTextFormatSnippet,
		}
		if attr.Description != "" {
			item.Documentation = &MarkupContent{Kind: "markdown", Value: attr.Description}
		}
		items = append(items, item)
	}
	return items
}

// valueItems returns nothing for free-form attributes.
func (c *completionProvider) valueItems(attr string) []CompletionItem {
	values, ok := c.reg.EnumDomainOf(attr)
	if !ok {
		return nil
	}
	items := make([]CompletionItem, 0, len(values))
	for _, v := range values {
		items = append(items, CompletionItem{
			Label:      v,
			Kind:       CompletionItemKindEnumMember,
			Detail:     "Valid value for " + attr,
			InsertText: v,
		})
	}
	return items
}

func closingItems(open []string) []CompletionItem {
	items := make([]CompletionItem, 0, len(open))
	for _, name := range open {
		items = append(items, CompletionItem{
			Label:      name,
			Kind:       CompletionItemKindClass,
			Detail:     "Close " + name + " element",
			InsertText: name + ">",
		})
	}
	return items
}

// dedupe keeps the first item for each label.
func dedupe(items []CompletionItem) []CompletionItem {
	seen := make(map[string]bool, len(items))
	out := make([]CompletionItem, 0, len(items))
	for _, item := range items {
		if seen[item.Label] {
			continue
		}
		seen[item.Label] = true
		out = append(out, item)
	}
	return out
}
