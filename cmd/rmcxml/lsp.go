package main

import (
	"context"
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/grindlemire/rmcxml/internal/lsp"
	"github.com/grindlemire/rmcxml/internal/lsp/log"
)

const logEnv = "RMCXML_LOG"

func runLSP(args []string) error {
	fs := flag.NewFlagSet("lsp", flag.ExitOnError)
	logPath := fs.String("log", "", "Path to log file for debugging")
	logLevel := fs.String("log-level", "debug", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// RMCXML_LOG stands in for --log when an editor launches the server
	// without arguments.
	if *logPath == "" {
		*logPath = os.Getenv(logEnv)
	}

	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		defer log.SetOutput(nil)
	}
	if err := log.SetLevel(*logLevel); err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", *logLevel)
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.DefaultConfig())
	return server.Run(context.Background())
}
