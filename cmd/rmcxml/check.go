package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/rmcxml/internal/lsp/schema"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
	"github.com/grindlemire/rmcxml/internal/xmlcheck"
)

type checkOptions struct {
	verbose     bool
	validate    validate.Options
	uniqueKeys  bool
	concurrency int
}

// fileResult holds everything found in one file.
type fileResult struct {
	path     string
	findings []validate.Error
}

func (r fileResult) errorCount() int {
	n := 0
	for _, f := range r.findings {
		if f.Severity == validate.SeverityError {
			n++
		}
	}
	return n
}

// runCheck implements the check subcommand. Files are validated
// concurrently; findings are printed in the order the files were collected.
func runCheck(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stdout)
	verbose := fs.Bool("v", false, "Verbose output")
	structure := fs.Bool("structure", true, "Report unbalanced tags")
	declaration := fs.Bool("declaration", false, "Warn when the XML declaration is missing")
	uniqueKeys := fs.Bool("unique-keys", false, "Report repeated PsiKey values")

	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectCatalogFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no catalog files found")
	}

	opts := checkOptions{
		verbose: *verbose,
		validate: validate.Options{
			Structure:          *structure,
			RequireDeclaration: *declaration,
		},
		uniqueKeys:  *uniqueKeys,
		concurrency: runtime.GOMAXPROCS(0),
	}

	if opts.verbose {
		fmt.Fprintf(stdout, "Checking %d catalog file(s)\n", len(files))
	}

	results, err := checkFiles(files, opts)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		for _, f := range r.findings {
			fmt.Fprintln(stdout, formatFinding(r.path, f))
		}
		if r.errorCount() > 0 {
			failed++
		}
	}

	if failed > 0 {
		return errors.Errorf("%d file(s) had errors", failed)
	}

	if opts.verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(files))
	}

	return nil
}

// checkFiles validates every file and returns the results in input order.
// A read failure aborts the whole run.
func checkFiles(files []string, opts checkOptions) ([]fileResult, error) {
	v := validate.New(schema.RMC, opts.validate)
	results := make([]fileResult, len(files))

	var g errgroup.Group
	if opts.concurrency > 0 {
		g.SetLimit(opts.concurrency)
	}
	for i, path := range files {
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			results[i] = fileResult{path: path, findings: checkText(v, string(source), opts.uniqueKeys)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkText(v *validate.Validator, text string, uniqueKeys bool) []validate.Error {
	findings := v.Validate(text)
	if !uniqueKeys {
		return findings
	}
	if diag := xmlcheck.WellFormed(text); diag != nil {
		return append(findings, *diag)
	}
	dups, err := xmlcheck.DuplicateKeys(text)
	if err != nil {
		return findings
	}
	return append(findings, dups...)
}

func formatFinding(path string, f validate.Error) string {
	severity := "error"
	if f.Severity == validate.SeverityWarning {
		severity = "warning"
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", path, f.Line+1, f.Col+1, severity, f.Message)
}
