// gen-docs is a standalone binary for generating CLI documentation.
// It renders the promptgit command tree as Markdown pages or man pages
// without shipping documentation machinery in the main binary.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"

	"github.com/schmitthub/promptgit/internal/cmd/factory"
	"github.com/schmitthub/promptgit/internal/cmd/root"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)

	var (
		flagDocPath  string
		flagMarkdown bool
		flagManPage  bool
	)

	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}
	if !flagMarkdown && !flagManPage {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page)")
	}

	if err := os.MkdirAll(flagDocPath, 0755); err != nil {
		return fmt.Errorf("failed to create doc directory: %w", err)
	}

	f := factory.New("dev", "none")
	rootCmd := root.NewCmdRoot(f, "dev", "")
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultCompletionCmd()
	rootCmd.DisableAutoGenTag = true

	if flagMarkdown {
		if err := doc.GenMarkdownTree(rootCmd, flagDocPath); err != nil {
			return fmt.Errorf("failed to generate markdown docs: %w", err)
		}
	}
	if flagManPage {
		header := &doc.GenManHeader{Title: "PROMPTGIT", Section: "1"}
		if err := doc.GenManTree(rootCmd, header, flagDocPath); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
	}

	return nil
}
