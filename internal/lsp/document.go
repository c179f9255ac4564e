package lsp

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/grindlemire/rmcxml/internal/lsp/log"
	"github.com/grindlemire/rmcxml/internal/lsp/provider"
)

// ErrDocumentNotOpen is returned when an edit targets a URI that is not open.
var ErrDocumentNotOpen = errors.New("document not open")

// Document, Position, Range and Location are type aliases for the canonical
// definitions in the provider package.
type Document = provider.Document
type Position = provider.Position
type Range = provider.Range
type Location = provider.Location

// TextDocumentContentChangeEvent is one edit. A nil Range replaces the whole
// text.
type TextDocumentContentChangeEvent struct {
	Range       *Range `json:"range,omitempty"`
	RangeLength *int   `json:"rangeLength,omitempty"`
	Text        string `json:"text"`
}

// DocumentManager tracks all open documents. Every accepted edit replaces the
// stored *Document, so a pointer handed out earlier stays a stable snapshot.
type DocumentManager struct {
	mu      sync.RWMutex
	docs    map[string]*Document
	checker provider.Checker
}

// NewDocumentManager creates a document manager that validates every
// snapshot with checker.
func NewDocumentManager(checker provider.Checker) *DocumentManager {
	return &DocumentManager{
		docs:    make(map[string]*Document),
		checker: checker,
	}
}

// SetChecker swaps the validator and revalidates every open document.
func (dm *DocumentManager) SetChecker(checker provider.Checker) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	dm.checker = checker
	for uri, doc := range dm.docs {
		dm.docs[uri] = dm.snapshot(doc.URI, doc.Content, doc.Version)
	}
}

// Open opens a new document and validates it. Reopening a URI replaces it.
func (dm *DocumentManager) Open(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := dm.snapshot(uri, content, version)
	dm.docs[uri] = doc
	return doc
}

// Update replaces the content of a document, opening it if needed.
func (dm *DocumentManager) Update(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if old, ok := dm.docs[uri]; ok {
		version = nextVersion(old.Version, version)
	}
	doc := dm.snapshot(uri, content, version)
	dm.docs[uri] = doc
	return doc
}

// Apply applies changes in order to an open document.
func (dm *DocumentManager) Apply(uri string, changes []TextDocumentContentChangeEvent, version int) (*Document, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	old, ok := dm.docs[uri]
	if !ok {
		return nil, errors.Wrap(ErrDocumentNotOpen, uri)
	}

	content := old.Content
	for _, change := range changes {
		content = applyChange(content, change)
	}

	doc := dm.snapshot(uri, content, nextVersion(old.Version, version))
	dm.docs[uri] = doc
	return doc, nil
}

// Close closes a document.
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.docs, uri)
}

// Get retrieves a document by URI.
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.docs[uri]
}

// All returns all open documents.
func (dm *DocumentManager) All() []*Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()

	docs := make([]*Document, 0, len(dm.docs))
	for _, doc := range dm.docs {
		docs = append(docs, doc)
	}
	return docs
}

// snapshot builds a validated document. Called with mu held.
func (dm *DocumentManager) snapshot(uri, content string, version int) *Document {
	doc := &Document{
		URI:     uri,
		Content: content,
		Version: version,
	}
	if dm.checker != nil {
		doc.Errors = provider.RunChecker(dm.checker, content)
	}
	log.Session(uri, "v%d: %d bytes, %d findings", version, len(content), len(doc.Errors))
	return doc
}

// nextVersion keeps versions strictly increasing when the host repeats or
// omits one.
func nextVersion(current, requested int) int {
	if requested > current {
		return requested
	}
	return current + 1
}

// applyChange splices one change into content.
func applyChange(content string, change TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := PositionToOffset(content, change.Range.Start)
	end := PositionToOffset(content, change.Range.End)
	if end < start {
		start, end = end, start
	}
	return content[:start] + change.Text + content[end:]
}

// PositionToOffset converts a Position to a byte offset in the content.
func PositionToOffset(content string, pos Position) int {
	return provider.PositionToOffset(content, pos)
}

// OffsetToPosition converts a byte offset to a Position.
func OffsetToPosition(content string, offset int) Position {
	return provider.OffsetToPosition(content, offset)
}
