package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/fbitda/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list     bool
	overlays bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `fbitda topic [-list|-overlays] [<topic>...]

  Show documentation for the given topics, '*' shows all of them.
  Without topic, show the readme.

  -list lists the topics with their titles, overlay topics are marked.
  -overlays shows the text and video overlays of the game.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the topics instead of showing them")
	f.BoolVar(&c.overlays, "overlays", false, "show the overlay topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.document(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// document returns the markdown the command prints for topics.
func (c *topicCmd) document(topics []string) (string, error) {
	if c.overlays {
		topics = append(topics, docs.Overlays()...)
	}
	if c.list {
		return topicList()
	}
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	return docs.GetTopics(topics...)
}

// topicList lists every topic with its title.
func topicList() (string, error) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Topics\n\n")
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "* `%s`: %s", topic, title)
		if slices.Contains(docs.Overlays(), topic) {
			b.WriteString(" (overlay)")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
