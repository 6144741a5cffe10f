// Command htmlsift queries HTML with CSS selectors and extracts embedded
// JSON from script tags. It reads HTML from stdin or --file and writes
// results to stdout, exiting 1 when nothing matched.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/leofalp/htmlsift/core/extract"
	"github.com/leofalp/htmlsift/core/htmlquery"
)

var (
	filePath         string
	textOnly         bool
	compact          bool
	ignoreWhitespace bool
	attributes       []string
	removeNodes      []string
	asMarkdown       bool
	varPattern       string
	verbose          bool
)

func main() {
	root := &cobra.Command{
		Use:   "htmlsift [selector]",
		Short: "Query HTML and extract embedded JSON",
		Long: `htmlsift reads HTML from stdin (or --file) and prints the parts
matching a CSS selector: markup, text content, attribute values or
Markdown. With --var it instead searches script content for an embedded
JSON value: a JavaScript variable assignment, a JSON.parse call, or
"@nextjs_rsc:<key>" for React Server Components payloads.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&filePath, "file", "f", "", "read HTML from a file instead of stdin")
	root.Flags().BoolVarP(&textOnly, "text", "t", false, "print text content instead of markup")
	root.Flags().BoolVarP(&compact, "compact", "c", false, "re-serialise JSON output compactly")
	root.Flags().BoolVarP(&ignoreWhitespace, "ignore-whitespace", "w", false, "skip whitespace-only text nodes")
	root.Flags().StringArrayVarP(&attributes, "attribute", "a", nil, "print this attribute's value (repeatable)")
	root.Flags().StringArrayVarP(&removeNodes, "remove-nodes", "r", nil, "detach matches of this selector before output (repeatable)")
	root.Flags().BoolVar(&asMarkdown, "markdown", false, "convert matches to Markdown")
	root.Flags().StringVar(&varPattern, "var", "", "extract a JS variable or @nextjs_rsc:<key> payloads as JSON")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	setupLogging()

	selector := htmlquery.DefaultSelector
	if len(args) == 1 {
		selector = args[0]
	}

	input, err := readInput()
	if err != nil {
		return err
	}
	slog.Debug("input read", "bytes", len(input), "selector", selector)

	switch {
	case varPattern != "":
		out, ok := extract.JSON(input, selector, varPattern)
		if !ok {
			return fmt.Errorf("no value found for pattern %q", varPattern)
		}
		fmt.Println(out)
		return nil

	case asMarkdown:
		results, err := htmlquery.Markdown(input, selector)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return errors.New("no elements matched")
		}
		for _, md := range results {
			fmt.Println(strings.TrimSpace(md))
		}
		return nil

	default:
		out, err := htmlquery.Process(input, htmlquery.Config{
			Selector:         selector,
			TextOnly:         textOnly,
			IgnoreWhitespace: ignoreWhitespace,
			Compact:          compact,
			RemoveNodes:      removeNodes,
			Attributes:       attributes,
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(out) == "" {
			return errors.New("no elements matched")
		}
		fmt.Print(out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Println()
		}
		return nil
	}
}

// setupLogging routes slog to stderr so stdout stays parseable; --verbose
// lowers the level to debug.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func readInput() (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filePath, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
