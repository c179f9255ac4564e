// Package main provides the CLI for the RMC XML authoring tools.
//
// Usage:
//
//	rmcxml lsp [--log path]     Start the language server on stdio
//	rmcxml check [path...]      Validate catalog files
//	rmcxml help                 Show help
//
// Examples:
//
//	rmcxml check ./...                Recursively validate every catalog
//	rmcxml check --unique-keys a.xml  Also reject repeated entry keys
//	rmcxml lsp --log /tmp/rmc.log     Start the server with debug logging
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `rmcxml - authoring tools for RMC XML resource catalogs

Usage:
  rmcxml <command> [options] [path...]

Commands:
  check       Validate catalog files against the RMC schema
  lsp         Start the language server (for editor integration)
  version     Print version information
  help        Show this help message

Check options:
  -v                  Verbose output
  --structure         Report unbalanced tags (default true)
  --declaration       Warn when the XML declaration is missing
  --unique-keys       Parse each file and report repeated PsiKey values

LSP options:
  --log <path>        Write logs to path (default $RMCXML_LOG)
  --log-level <lvl>   Minimum log level (debug, info, warn, error)

Examples:
  rmcxml check ./...                    Recursively check all catalogs
  rmcxml check catalogs/main.rmc.xml    Check a specific file
  rmcxml check --unique-keys ./...      Also check entry key uniqueness
  rmcxml lsp                            Start LSP server on stdio
  rmcxml lsp --log /tmp/rmcxml-lsp.log  Start with debug logging
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		if err := runCheck(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "lsp":
		if err := runLSP(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("rmcxml version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
