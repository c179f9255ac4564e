package provider

import (
	"github.com/pkg/errors"

	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
)

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticSeverityError       DiagnosticSeverity = 1
	DiagnosticSeverityWarning     DiagnosticSeverity = 2
	DiagnosticSeverityInformation DiagnosticSeverity = 3
	DiagnosticSeverityHint        DiagnosticSeverity = 4
)

// DefaultSource is the diagnostic source reported to the editor.
const DefaultSource = "rmc-xml-lsp"

// Diagnostic represents a diagnostic, such as a schema violation.
type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Code     string             `json:"code,omitempty"`
	Source   string             `json:"source,omitempty"`
	Message  string             `json:"message"`
}

// Checker validates a whole document text.
type Checker interface {
	Validate(text string) []validate.Error
}

// RunChecker runs c over text and always returns a list. A panic inside the
// checker is reported as a single generic parse error at the document start.
func RunChecker(c Checker, text string) (errs []validate.Error) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("%v", r)
			log.Warn(err, "validation fault")
			errs = []validate.Error{{
				EndCol:   10,
				Message:  "XML Parse Error: " + err.Error(),
				Severity: validate.SeverityError,
			}}
		}
	}()
	errs = c.Validate(text)
	if errs == nil {
		errs = []validate.Error{}
	}
	return errs
}

// diagnosticsProvider implements DiagnosticsProvider.
type diagnosticsProvider struct {
	source string
}

// NewDiagnosticsProvider creates a diagnostics provider that labels its
// output with source, or DefaultSource when source is empty.
func NewDiagnosticsProvider(source string) DiagnosticsProvider {
	if source == "" {
		source = DefaultSource
	}
	return &diagnosticsProvider{source: source}
}

// Diagnose converts the validation findings stored on doc.
func (d *diagnosticsProvider) Diagnose(doc *Document) ([]Diagnostic, error) {
	log.Provider("diagnostics", "%s: %d findings", doc.URI, len(doc.Errors))

	diagnostics := make([]Diagnostic, 0, len(doc.Errors))
	for _, e := range doc.Errors {
		severity := DiagnosticSeverityError
		if e.Severity == validate.SeverityWarning {
			severity = DiagnosticSeverityWarning
		}
		diagnostics = append(diagnostics, Diagnostic{
			Range: Range{
				Start: Position{Line: e.Line, Character: e.Col},
				End:   Position{Line: e.EndLine, Character: e.EndCol},
			},
			Severity: severity,
			Source:   d.source,
			Message:  e.Message,
		})
	}
	return diagnostics, nil
}
