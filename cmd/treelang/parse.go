package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/treelang/treelang"
	"github.com/treelang/treelang/pkg/parser"
	"github.com/treelang/treelang/pkg/source"
	"github.com/treelang/treelang/pkg/tree"
)

var (
	parseIndentWidth int
	parseTabs        bool
	parseFormat      string
	parseNormalize   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and dump its tree",
	Long:  "Parse an indentation-structured file and print the resulting tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().IntVar(&parseIndentWidth, "indent", 2, "Spaces per indentation level")
	parseCmd.Flags().BoolVar(&parseTabs, "tabs", false, "Indent with one tab per level")
	parseCmd.Flags().StringVar(&parseFormat, "format", "human", "Output format: human, json, yaml")
	parseCmd.Flags().BoolVar(&parseNormalize, "normalize", false, "Strip | margin markers before parsing")
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	indent, err := indentUnit(cmd, parseIndentWidth, parseTabs)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	text := string(content)
	if parseNormalize {
		text, err = source.Normalize(text)
		if err != nil {
			return fmt.Errorf("normalizing %s: %w", target, err)
		}
	}

	p, err := treelang.New(treelang.WithIndent(indent))
	if err != nil {
		return err
	}

	t, err := p.Parse(source.File(target), text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", target, err)
	}

	switch parseFormat {
	case "json":
		return outputJSON(cmd, t)
	case "yaml":
		return outputYAML(cmd, t)
	case "human":
		return outputHuman(cmd, p.SourceMap(), t)
	default:
		return fmt.Errorf("unknown output format: %s", parseFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// indentUnit resolves the indentation flags shared by parse and check.
func indentUnit(cmd *cobra.Command, width int, tabs bool) (parser.Indent, error) {
	if tabs {
		if cmd.Flags().Changed("indent") {
			return parser.Indent{}, fmt.Errorf("--tabs cannot be combined with --indent")
		}
		return parser.Tabs(), nil
	}
	return parser.Spaces(width)
}

func outputJSON(cmd *cobra.Command, t *treelang.Tree) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func outputYAML(cmd *cobra.Command, t *treelang.Tree) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(t); err != nil {
		return err
	}
	return encoder.Close()
}

// outputHuman prints the tree as an indented outline with a trailing
// line:column position per node.
func outputHuman(cmd *cobra.Command, m *source.SourceMap, t *treelang.Tree) error {
	out := cmd.OutOrStdout()

	var walkErr error
	t.Walk(func(n tree.Node, depth int) bool {
		point, err := m.Position(n.Pos())
		if err != nil {
			walkErr = err
			return false
		}
		fmt.Fprintf(out, "%s%s  (%d:%d)\n",
			strings.Repeat("  ", depth), tree.Describe(n), point.Line, point.Column)
		return true
	})
	return walkErr
}
