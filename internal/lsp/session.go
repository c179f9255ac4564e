package lsp

import (
	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/provider"
	"github.com/grindlemire/rmcxml/internal/lsp/schema"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
	"github.com/grindlemire/rmcxml/internal/xmlcheck"
)

// Session is the editor-facing core. The host pushes text snapshots and
// cursor positions in and gets completion lists, hover payloads and
// validation findings back. Every query is computed from the current
// snapshot; nothing is cached between requests.
type Session struct {
	cfg       Config
	docs      *DocumentManager
	providers *Registry
}

// NewSession creates a session for cfg.
func NewSession(cfg Config) *Session {
	if cfg.Schema == nil {
		cfg.Schema = schema.RMC
	}
	return &Session{
		cfg:       cfg,
		docs:      NewDocumentManager(cfg.validator()),
		providers: NewRegistry(cfg),
	}
}

// Config returns the active configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Configure applies cfg and revalidates every open document.
func (s *Session) Configure(cfg Config) {
	if cfg.Schema == nil {
		cfg.Schema = schema.RMC
	}
	s.cfg = cfg
	s.providers = NewRegistry(cfg)
	s.docs.SetChecker(cfg.validator())
}

// Documents returns the session's document manager.
func (s *Session) Documents() *DocumentManager {
	return s.docs
}

// Providers returns the feature providers backing the session.
func (s *Session) Providers() *Registry {
	return s.providers
}

// OpenDocument creates the buffer for uri.
func (s *Session) OpenDocument(uri, text string, version int) *Document {
	return s.docs.Open(uri, text, version)
}

// ApplyEdit applies changes to an open buffer. It returns ErrDocumentNotOpen
// (wrapped) for an unknown uri.
func (s *Session) ApplyEdit(uri string, changes []TextDocumentContentChangeEvent, version int) (*Document, error) {
	return s.docs.Apply(uri, changes, version)
}

// CloseDocument discards the buffer for uri.
func (s *Session) CloseDocument(uri string) {
	s.docs.Close(uri)
}

// Complete returns the suggestions at pos. Unknown documents and positions
// outside any tag yield an empty list.
func (s *Session) Complete(uri string, pos Position) []CompletionItem {
	doc := s.docs.Get(uri)
	if doc == nil {
		return []CompletionItem{}
	}
	list, err := s.providers.Completion.Complete(ResolveCursorContext(doc, pos))
	if err != nil || list == nil {
		if err != nil {
			log.Warn(err, "completion for %s", uri)
		}
		return []CompletionItem{}
	}
	return list.Items
}

// Hover returns documentation for the token at pos, or nil.
func (s *Session) Hover(uri string, pos Position) *Hover {
	doc := s.docs.Get(uri)
	if doc == nil {
		return nil
	}
	hover, err := s.providers.Hover.Hover(ResolveCursorContext(doc, pos))
	if err != nil {
		log.Warn(err, "hover for %s", uri)
		return nil
	}
	return hover
}

// Validate returns the findings for the current snapshot of uri.
func (s *Session) Validate(uri string) []validate.Error {
	doc := s.docs.Get(uri)
	if doc == nil {
		return []validate.Error{}
	}
	return doc.Errors
}

// Diagnostics returns the findings for uri converted to LSP diagnostics.
func (s *Session) Diagnostics(uri string) []Diagnostic {
	doc := s.docs.Get(uri)
	if doc == nil {
		return []Diagnostic{}
	}
	diags, err := s.providers.Diagnostics.Diagnose(doc)
	if err != nil {
		log.Warn(err, "diagnostics for %s", uri)
		return []Diagnostic{}
	}
	return diags
}

var (
	_ provider.Checker = (*validate.Validator)(nil)
	_ provider.Checker = (*xmlcheck.Checker)(nil)
)
