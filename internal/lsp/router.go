package lsp

import (
	"encoding/json"

	"github.com/grindlemire/rmcxml/internal/lsp/log"
)

// Router dispatches LSP method requests to the appropriate handler.
// Language feature methods are dispatched through the session's providers.
// Lifecycle and document sync methods are handled directly by the Server.
type Router struct {
	server *Server
}

// NewRouter creates a new Router for server.
func NewRouter(server *Server) *Router {
	return &Router{server: server}
}

// Route dispatches a request to the appropriate handler.
func (r *Router) Route(req Request) (any, *Error) {
	switch req.Method {
	// Lifecycle
	case "initialize":
		return r.server.handleInitialize(req.Params)
	case "initialized":
		return r.server.handleInitialized()
	case "shutdown":
		return r.server.handleShutdown()
	case "exit":
		r.server.handleExit()
		return nil, nil

	// Document synchronization
	case "textDocument/didOpen":
		return r.server.handleDidOpen(req.Params)
	case "textDocument/didChange":
		return r.server.handleDidChange(req.Params)
	case "textDocument/didClose":
		return r.server.handleDidClose(req.Params)
	case "textDocument/didSave":
		return r.server.handleDidSave(req.Params)

	// Language features
	case "textDocument/hover":
		return r.handleHover(req.Params)
	case "textDocument/completion":
		return r.handleCompletion(req.Params)
	case "textDocument/documentSymbol":
		return r.handleDocumentSymbol(req.Params)

	default:
		log.Server("Unknown method: %s", req.Method)
		return nil, &Error{Code: CodeMethodNotFound, Message: "Method not found: " + req.Method}
	}
}

func (r *Router) registry() *Registry {
	return r.server.session.Providers()
}

func (r *Router) handleHover(params json.RawMessage) (any, *Error) {
	return r.dispatchPositional(params, func(ctx *CursorContext) (any, error) {
		return r.registry().Hover.Hover(ctx)
	})
}

func (r *Router) handleCompletion(params json.RawMessage) (any, *Error) {
	return r.dispatchPositional(params, func(ctx *CursorContext) (any, error) {
		return r.registry().Completion.Complete(ctx)
	})
}

func (r *Router) handleDocumentSymbol(params json.RawMessage) (any, *Error) {
	var p DocumentSymbolParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	doc := r.server.session.Documents().Get(p.TextDocument.URI)
	if doc == nil {
		return []DocumentSymbol{}, nil
	}

	result, err := r.registry().DocumentSymbol.DocumentSymbols(doc)
	if err != nil {
		return nil, &Error{Code: CodeInternalError, Message: err.Error()}
	}
	return result, nil
}

// dispatchPositional decodes a textDocument/position request, resolves the
// cursor context and hands it to fn. Unknown documents yield a null result.
func (r *Router) dispatchPositional(params json.RawMessage, fn func(*CursorContext) (any, error)) (any, *Error) {
	var p struct {
		TextDocument TextDocumentIdentifier `json:"textDocument"`
		Position     Position               `json:"position"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	doc := r.server.session.Documents().Get(p.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	ctx := ResolveCursorContext(doc, p.Position)
	log.Server("Resolved %s context at %d:%d", ctx.Kind, p.Position.Line, p.Position.Character)

	result, err := fn(ctx)
	if err != nil {
		return nil, &Error{Code: CodeInternalError, Message: err.Error()}
	}
	return result, nil
}
