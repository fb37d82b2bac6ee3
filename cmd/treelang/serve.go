package main

import (
	"github.com/spf13/cobra"

	"github.com/treelang/treelang/pkg/serve"
)

var (
	serveIndentWidth int
	serveTabs        bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer parse requests over stdin/stdout",
	Long: `Run a streaming parse server speaking NDJSON on stdin/stdout.
The server announces itself with a ready line, then answers parse and
parse_batch requests until stdin closes or a close request arrives.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveIndentWidth, "indent", 2, "Spaces per indentation level")
	serveCmd.Flags().BoolVar(&serveTabs, "tabs", false, "Indent with one tab per level")
}

func runServe(cmd *cobra.Command, args []string) error {
	indent, err := indentUnit(cmd, serveIndentWidth, serveTabs)
	if err != nil {
		return err
	}

	srv := serve.NewServer(indent, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(cmd.Context())
}
