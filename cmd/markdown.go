package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word wrap of rendered markdown.
const markdownWidth = 100

// printMarkdown renders md to the standard output.
func printMarkdown(md string) {
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("warning, %v", err)
	}
	markdownPrinter(cfg.Raw)(os.Stdout, md)
}

// markdownPrinter returns a function printing markdown, styled for a
// terminal unless raw is set.
func markdownPrinter(raw bool) func(io.Writer, string) {
	if raw {
		return func(w io.Writer, md string) { fmt.Fprint(w, md) }
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		log.Printf("warning, cannot style markdown: %v", err)
		return markdownPrinter(true)
	}
	return func(w io.Writer, md string) {
		out, err := r.Render(md)
		if err != nil {
			log.Printf("warning, cannot style markdown: %v", err)
			out = md
		}
		fmt.Fprint(w, out)
	}
}
