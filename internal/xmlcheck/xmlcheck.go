// Package xmlcheck runs the whole-document checks that need a parsed tree:
// well-formedness and catalog-wide uniqueness of entry keys. Unlike the
// lexical validator these only apply to documents that parse.
package xmlcheck

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/grindlemire/rmcxml/internal/lsp/scan"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
)

const (
	entryElement = "BetaEntry"
	keyAttribute = "PsiKey"
)

var xpEntryKeys = xpath.MustCompile(`//` + entryElement + `[@` + keyAttribute + `]`)

// ErrNoRoot is returned for input that contains no element at all.
var ErrNoRoot = errors.New("document has no root element")

// Parse parses text into an xmlquery tree.
func Parse(text string) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrap(err, "parsing document")
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return doc, nil
		}
	}
	return nil, ErrNoRoot
}

// WellFormed reports the first parse failure of text as a diagnostic, or
// nil when the document parses.
func WellFormed(text string) *validate.Error {
	_, err := Parse(text)
	if err == nil {
		return nil
	}
	diag := &validate.Error{
		EndCol:   10,
		Message:  "XML Parse Error: " + errors.Cause(err).Error(),
		Severity: validate.SeverityError,
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) && syntax.Line > 0 {
		diag.Line = syntax.Line - 1
		diag.EndLine = syntax.Line - 1
		diag.Message = "XML Parse Error: " + syntax.Msg
	}
	return diag
}

// DuplicateKeys reports every entry whose key repeats an earlier entry's.
// The finding is placed on the repeated attribute.
func DuplicateKeys(text string) ([]validate.Error, error) {
	doc, err := Parse(text)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	firstLine := make(map[string]int)
	var errs []validate.Error
	for _, node := range xmlquery.QuerySelectorAll(doc, xpEntryKeys) {
		key := node.SelectAttr(keyAttribute)
		n := seen[key]
		seen[key] = n + 1

		start, end := locate(text, key, n)
		line, col := lineCol(text, start)
		if n == 0 {
			firstLine[key] = line
			continue
		}
		endLine, endCol := lineCol(text, end)
		errs = append(errs, validate.Error{
			Line:     line,
			Col:      col,
			EndLine:  endLine,
			EndCol:   endCol,
			Message:  fmt.Sprintf("Duplicate %s %q (first defined on line %d)", keyAttribute, key, firstLine[key]+1),
			Severity: validate.SeverityError,
		})
	}
	return errs, nil
}

// Checker layers the key uniqueness check over a lexical validator.
// Documents that do not parse get only the lexical findings.
type Checker struct {
	base *validate.Validator
}

// New wraps base.
func New(base *validate.Validator) *Checker {
	return &Checker{base: base}
}

// Validate returns the lexical findings followed by any duplicate keys.
func (c *Checker) Validate(text string) []validate.Error {
	errs := c.base.Validate(text)
	dups, err := DuplicateKeys(text)
	if err != nil {
		return errs
	}
	return append(errs, dups...)
}

// locate finds the byte span of the nth (0-based) key attribute carrying
// value. It falls back to the document start when the attribute text cannot
// be matched, e.g. when the value uses entity references.
func locate(text, value string, nth int) (int, int) {
	re := regexp.MustCompile(keyAttribute + `\s*=\s*(?:"` + regexp.QuoteMeta(value) + `"|'` + regexp.QuoteMeta(value) + `')`)
	matches := re.FindAllStringIndex(text, nth+1)
	if len(matches) <= nth {
		return 0, 0
	}
	return matches[nth][0], matches[nth][1]
}

func lineCol(text string, offset int) (int, int) {
	before := text[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return line, scan.UTF16Len(before[lineStart:])
}
