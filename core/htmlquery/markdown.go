package htmlquery

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Markdown converts every element matching selector to Markdown, in
// document order. It is the readable output mode of the CLI, useful when
// the target of a selector is prose rather than data.
func Markdown(rawHTML, selector string) ([]string, error) {
	fragments, err := Select(rawHTML, selector)
	if err != nil {
		return nil, err
	}

	results := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		md, err := htmltomarkdown.ConvertString(fragment)
		if err != nil {
			return nil, fmt.Errorf("htmlsift: convert to markdown: %w", err)
		}
		results = append(results, md)
	}
	return results, nil
}
