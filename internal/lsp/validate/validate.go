// Package validate scans a whole RMC XML buffer and reports schema and
// structural problems. It works line by line and token by token on the raw
// text; it never parses the document into a tree, so it keeps producing
// useful diagnostics while the document is half-typed.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grindlemire/rmcxml/internal/lsp/scan"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

// Severity mirrors the LSP diagnostic severity scale.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
)

// Error is a single validation finding. Lines are 0-indexed and columns are
// counted in UTF-16 code units.
type Error struct {
	Line     int
	Col      int
	EndLine  int
	EndCol   int
	Message  string
	Severity Severity
}

func (e Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Col+1, e.Message)
}

var (
	attrValueRe  = regexp.MustCompile(`(\w+)="([^"]+)"`)
	identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Options toggles the optional checks.
type Options struct {
	// Structure adds the tag balance pass to Validate.
	Structure bool
	// RequireDeclaration warns when the document does not start with <?xml.
	RequireDeclaration bool
}

// Validator checks documents against a registry.
type Validator struct {
	reg  *schema.Registry
	opts Options
}

// New creates a validator for reg.
func New(reg *schema.Registry, opts Options) *Validator {
	return &Validator{reg: reg, opts: opts}
}

// Validate runs every enabled pass over text and returns all findings
// together. Passes never short-circuit each other.
func (v *Validator) Validate(text string) []Error {
	errs := v.Simple(text)
	if v.opts.Structure {
		errs = append(errs, v.Structure(text)...)
	}
	if v.opts.RequireDeclaration {
		errs = append(errs, Declaration(text)...)
	}
	return errs
}

// Simple runs the root check and the per-line lexical checks.
func (v *Validator) Simple(text string) []Error {
	var errs []Error

	root := v.reg.Root()
	if !strings.Contains(text, "<"+root) {
		errs = append(errs, Error{
			EndCol:   10,
			Message:  fmt.Sprintf("Root element must be %q", root),
			Severity: SeverityError,
		})
	}

	for i, line := range strings.Split(text, "\n") {
		errs = append(errs, v.unknownElements(line, i)...)
		errs = append(errs, v.requiredAttributes(line, i)...)
		errs = append(errs, v.attributeValues(line, i)...)
	}

	return errs
}

func (v *Validator) unknownElements(line string, lineIdx int) []Error {
	var errs []Error
	for _, ref := range scan.NameRefs(line) {
		if ref.Closing || v.reg.IsKnownElement(ref.Name) {
			continue
		}
		errs = append(errs, span(line, lineIdx, ref.Lt, ref.End(),
			"Unknown element: "+ref.Name))
	}
	return errs
}

// requiredAttributes is deliberately line-scoped: an attribute written on a
// continuation line of a multi-line tag is not seen.
func (v *Validator) requiredAttributes(line string, lineIdx int) []Error {
	var errs []Error
	for _, elem := range v.reg.ElementsWithRequired() {
		if !strings.Contains(line, "<"+elem) {
			continue
		}
		for _, attr := range v.reg.RequiredAttributesOf(elem) {
			if strings.Contains(line, attr+"=") {
				continue
			}
			errs = append(errs, span(line, lineIdx, 0, len(line),
				fmt.Sprintf("%s element requires %s attribute", elem, attr)))
		}
	}
	return errs
}

func (v *Validator) attributeValues(line string, lineIdx int) []Error {
	var errs []Error
	for _, m := range attrValueRe.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[0], m[1]
		name, value := line[m[2]:m[3]], line[m[4]:m[5]]

		if domain, ok := v.reg.EnumDomainOf(name); ok && !contains(domain, value) {
			errs = append(errs, span(line, lineIdx, start, end,
				fmt.Sprintf("Invalid value %q for attribute %s. Valid values: %s",
					value, name, strings.Join(domain, ", "))))
		}
		if v.reg.IsIdentifierAttribute(name) && !identifierRe.MatchString(value) {
			errs = append(errs, span(line, lineIdx, start, end,
				fmt.Sprintf("Invalid %s format. Must match pattern: [a-zA-Z_][a-zA-Z0-9_]*", name)))
		}
		if v.reg.IsBooleanAttribute(name) {
			if lower := strings.ToLower(value); lower != "true" && lower != "false" {
				errs = append(errs, span(line, lineIdx, start, end,
					fmt.Sprintf(`Invalid boolean value %q for attribute %s. Must be "true" or "false"`, value, name)))
			}
		}
	}
	return errs
}

// Structure replays the tag-stack rule over the whole document. A closing
// tag that matches nothing open is reported where it appears; names still
// open at the end are reported at the document start because no better
// location is tracked for them.
func (v *Validator) Structure(text string) []Error {
	open, strays := scan.Replay(text)

	var errs []Error
	for _, tok := range strays {
		startLine, startCol := lineCol(text, tok.Start)
		endLine, endCol := lineCol(text, tok.End)
		errs = append(errs, Error{
			Line:     startLine,
			Col:      startCol,
			EndLine:  endLine,
			EndCol:   endCol,
			Message:  fmt.Sprintf("Closing tag </%s> has no matching opening tag", tok.Name),
			Severity: SeverityError,
		})
	}
	for _, name := range open {
		errs = append(errs, Error{
			EndCol:   10,
			Message:  "Unclosed tag: " + name,
			Severity: SeverityError,
		})
	}
	return errs
}

// Declaration warns unless the trimmed document starts with an XML declaration.
func Declaration(text string) []Error {
	if strings.HasPrefix(strings.TrimSpace(text), "<?xml") {
		return nil
	}
	return []Error{{
		EndCol:   5,
		Message:  "XML document should start with XML declaration",
		Severity: SeverityWarning,
	}}
}

// span builds a single-line error between byte offsets start and end of line.
func span(line string, lineIdx, start, end int, msg string) Error {
	return Error{
		Line:     lineIdx,
		Col:      scan.UTF16Len(line[:start]),
		EndLine:  lineIdx,
		EndCol:   scan.UTF16Len(line[:end]),
		Message:  msg,
		Severity: SeverityError,
	}
}

// lineCol converts a byte offset in text to a 0-indexed line and UTF-16 column.
func lineCol(text string, offset int) (int, int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return line, scan.UTF16Len(before[lineStart:])
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
