package lsp

import (
	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/provider"
)

// Diagnostic and DiagnosticSeverity are type aliases for the canonical definitions
// in the provider package.
type Diagnostic = provider.Diagnostic
type DiagnosticSeverity = provider.DiagnosticSeverity

const (
	DiagnosticSeverityError   = provider.DiagnosticSeverityError
	DiagnosticSeverityWarning = provider.DiagnosticSeverityWarning
)

// PublishDiagnosticsParams represents the parameters for publishDiagnostics.
type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Version     *int         `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// publishDiagnostics sends the full diagnostic set for a document. Each
// publish replaces the previous one.
func (s *Server) publishDiagnostics(doc *Document) {
	if doc == nil {
		return
	}

	diagnostics, err := s.session.Providers().Diagnostics.Diagnose(doc)
	if err != nil {
		log.Server("Diagnostics provider error: %v", err)
		diagnostics = []Diagnostic{}
	}

	version := doc.Version
	params := PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     &version,
		Diagnostics: diagnostics,
	}

	if err := s.sendNotification("textDocument/publishDiagnostics", params); err != nil {
		log.Server("Error publishing diagnostics: %v", err)
	}
}

// clearDiagnostics sends an empty diagnostic set for a closed document.
func (s *Server) clearDiagnostics(uri string) {
	params := PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []Diagnostic{},
	}
	if err := s.sendNotification("textDocument/publishDiagnostics", params); err != nil {
		log.Server("Error clearing diagnostics: %v", err)
	}
}
