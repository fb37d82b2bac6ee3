package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/treelang/treelang"
	"github.com/treelang/treelang/pkg/parser"
	"github.com/treelang/treelang/pkg/source"
)

var (
	checkIndentWidth int
	checkTabs        bool
	checkColor       string
)

// styles holds color formatters for check output.
type styles struct {
	location *color.Color
	message  *color.Color
	excerpt  *color.Color
	ok       *color.Color
}

// newStyles creates color formatters for check output.
// enabled=false respects --color never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		location: color.New(color.Bold, color.FgHiWhite),
		message:  color.New(color.Bold, color.FgHiRed),
		excerpt:  color.New(color.FgHiBlue),
		ok:       color.New(color.FgHiGreen),
	}

	if !enabled {
		// Disable colors on all formatters
		s.location.DisableColor()
		s.message.DisableColor()
		s.excerpt.DisableColor()
		s.ok.DisableColor()
	}

	return s
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check files for parse errors",
	Long:  "Parse each file and report diagnostics with source excerpts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkIndentWidth, "indent", 2, "Spaces per indentation level")
	checkCmd.Flags().BoolVar(&checkTabs, "tabs", false, "Indent with one tab per level")
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
}

func runCheck(cmd *cobra.Command, args []string) error {
	indent, err := indentUnit(cmd, checkIndentWidth, checkTabs)
	if err != nil {
		return err
	}

	// Determine if colors should be enabled based on --color flag
	switch checkColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		// Check if stdout is a TTY and NO_COLOR is not set
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	st := newStyles(!color.NoColor)

	p, err := treelang.New(treelang.WithIndent(indent))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		if _, err := p.ParseFile(path); err != nil {
			failed++
			renderDiagnostic(out, st, p.SourceMap(), err)
			continue
		}
		if verbose {
			fmt.Fprintf(out, "%s %s\n", st.ok.Sprint("ok"), path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// renderDiagnostic writes "origin:line:col: message" and a caret
// excerpt when the error carries a resolvable span. Errors without one,
// such as unreadable files, print their message alone.
func renderDiagnostic(out io.Writer, st *styles, m *source.SourceMap, err error) {
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintln(out, st.message.Sprint(err.Error()))
		return
	}

	origin, originErr := m.Origin(perr.Span.Start.Source)
	point, pointErr := m.Position(perr.Span.Start)
	if originErr == nil && pointErr == nil {
		fmt.Fprintf(out, "%s %s\n",
			st.location.Sprintf("%s:%d:%d:", origin, point.Line, point.Column),
			st.message.Sprint(perr.Error()))
	} else {
		fmt.Fprintln(out, st.message.Sprint(perr.Error()))
	}

	if section, serr := m.Section(perr.Span); serr == nil {
		fmt.Fprint(out, st.excerpt.Sprint(section.String()))
	}
}
