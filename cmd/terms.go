package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fbitda"
	"github.com/etnz/fbitda/renderer"
	"github.com/google/subcommands"
)

type termsCmd struct{}

func (*termsCmd) Name() string     { return "terms" }
func (*termsCmd) Synopsis() string { return "describe the valuation terms" }
func (*termsCmd) Usage() string {
	return `fbitda terms

  Describes every valuation term with its range and business classes.
`
}

func (c *termsCmd) SetFlags(f *flag.FlagSet) {}

func (c *termsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderTerms(renderer.NewCatalog(fbitda.Terms())))
	return subcommands.ExitSuccess
}
