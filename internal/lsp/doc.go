// Package lsp implements a Language Server Protocol server for RMC XML
// resource catalogs.
//
// It provides completion, hover, diagnostics and a document outline. The
// core, Session, resolves the cursor context with lexical scanning only and
// never builds a DOM, so it keeps working on half-typed documents. The
// Server wraps a Session with JSON-RPC 2.0 over stdio.
package lsp
