package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/etnz/fbitda"
	"github.com/google/subcommands"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	role string
	name string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "choose your team and name" }
func (*loginCmd) Usage() string {
	return `fbitda login -role team1|team2 [-name <name>]

  Saves the team and the name used by the next games.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.role, "role", "", "Team, 'team1' enters the terms, 'team2' reviews them.")
	f.StringVar(&c.name, "name", "", "Player name.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	role, err := fbitda.ParseRole(c.role)
	if err != nil || role == fbitda.RoleNone {
		fmt.Fprintf(os.Stderr, "Error: -role must be %q or %q\n", fbitda.RoleInput, fbitda.RoleApprove)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	store.SetRole(role)
	if c.name != "" {
		store.SetDisplayName(c.name)
	}
	user := store.Snapshot().User
	fmt.Printf("Logged in as %q in %s\n", user.Name, user.Role.Title())
	return subcommands.ExitSuccess
}

// whoamiCmd holds the flags for the 'whoami' subcommand.
type whoamiCmd struct {
	query string
}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "print the saved player settings" }
func (*whoamiCmd) Usage() string {
	return `fbitda whoami [-q <jsonpath>]

  Prints the saved player settings as JSON, or the result of a JSONPath query
  on a fresh game state, for instance -q '$.user.role'.
`
}

func (c *whoamiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query on the game state.")
}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	snap := store.Snapshot()
	var v any = snap.Persisted()
	if c.query != "" {
		if v, err = fbitda.Query(snap, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}

// guideCmd holds the flags for the 'guide' subcommand.
type guideCmd struct{}

func (*guideCmd) Name() string     { return "guide" }
func (*guideCmd) Synopsis() string { return "open or close the first-time guidance" }
func (*guideCmd) Usage() string {
	return `fbitda guide on|off

  Opens or closes the guidance shown on the game board.
`
}

func (c *guideCmd) SetFlags(f *flag.FlagSet) {}

func (c *guideCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || (f.Arg(0) != "on" && f.Arg(0) != "off") {
		fmt.Fprintln(os.Stderr, "Error: expecting 'on' or 'off'")
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	store.SetVisibility(fbitda.FlagGuidance, f.Arg(0) == "on")
	fmt.Printf("Guidance %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
