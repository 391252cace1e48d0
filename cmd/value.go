package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/etnz/fbitda"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	ebitda   string
	multiple string
	factor   string
	asJSON   bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute a valuation without playing" }
func (*valueCmd) Usage() string {
	return `fbitda value [-ebitda <amount>] [-multiple <x>] [-factor <1-5>] [-json]

  Computes ebitda x multiple x factor and its share of the one billion ceiling.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	in := fbitda.DefaultInputs()
	f.StringVar(&c.ebitda, "ebitda", in.EBITDA.String(), "EBITDA in dollars.")
	f.StringVar(&c.multiple, "multiple", in.Multiple.String(), "Valuation multiple.")
	f.StringVar(&c.factor, "factor", in.FactorScore.String(), "Factor score, between 1 and 5.")
	f.BoolVar(&c.asJSON, "json", false, "Print the valuation as JSON.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.inputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	v := fbitda.Calculate(in)

	if c.asJSON {
		b, err := json.Marshal(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s (%s of %s)\n", v, v.Percentage, fbitda.FormatAmount(v.Ceiling))
	return subcommands.ExitSuccess
}

// inputs parses the flags into inputs, refusing what a game would refuse.
func (c *valueCmd) inputs() (fbitda.SimulationInputs, error) {
	in := fbitda.DefaultInputs()
	for _, p := range []struct {
		field fbitda.Field
		raw   string
		dst   *decimal.Decimal
	}{
		{fbitda.FieldEBITDA, c.ebitda, &in.EBITDA},
		{fbitda.FieldMultiple, c.multiple, &in.Multiple},
		{fbitda.FieldFactorScore, c.factor, &in.FactorScore},
	} {
		d, err := decimal.NewFromString(p.raw)
		if err != nil {
			return in, fmt.Errorf("invalid %s %q: %w", p.field, p.raw, err)
		}
		if term, ok := fbitda.Terms().Lookup(p.field); ok && !term.Accepts(d) {
			return in, fmt.Errorf("%s %s is out of range %s", p.field, p.raw, term.Range())
		}
		*p.dst = d
	}
	return in, nil
}
