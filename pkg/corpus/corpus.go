// Package corpus embeds a YAML conformance corpus: small documents
// paired with either the outline they parse to or the error kind they
// fail with. The test suite runs every embedded case; the loader is
// exported so other packages can replay the corpus too.
package corpus

import "github.com/treelang/treelang/pkg/parser"

// Case is one runnable conformance case.
type Case struct {
	// Name identifies the case in test output.
	Name string

	// Indent is the indentation unit the case parses under.
	Indent parser.Indent

	// Input is the document text, verbatim.
	Input string

	// Outline is the expected tree outline when the case parses.
	Outline string

	// Error is the expected failure kind; zero when Outline applies.
	Error parser.ErrorKind

	// Line is the expected error line. Zero skips the line check.
	Line int
}
