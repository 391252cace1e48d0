package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fbitda"
	"github.com/etnz/fbitda/timer"
	"github.com/google/subcommands"
)

// playCmd holds the flags for the 'play' subcommand.
type playCmd struct {
	role string
	name string

	in  io.Reader // defaults to os.Stdin
	out io.Writer // defaults to os.Stdout
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "play the valuation game interactively" }
func (*playCmd) Usage() string {
	return `fbitda play [-role team1|team2] [-name <name>]

  Opens the game board of your team and reads commands from the standard input.
  Type 'help' to list the commands. The session clock runs until you quit.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.role, "role", "", "Team to play, 'team1' enters the terms, 'team2' reviews them. Defaults to the logged in team.")
	f.StringVar(&c.name, "name", "", "Player name. Defaults to the logged in name.")
}

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	role, err := fbitda.ParseRole(c.role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	in, out := c.in, c.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if role != fbitda.RoleNone {
		store.SetRole(role)
	}
	if c.name != "" {
		store.SetDisplayName(c.name)
	}

	if err := play(ctx, cfg, store, in, out, markdownPrinter(cfg.Raw)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// play runs a game on store until the input ends or the player quits.
// The session clock ticks for the whole game.
func play(ctx context.Context, cfg Config, store *fbitda.Store, in io.Reader, out io.Writer, printMD func(io.Writer, string)) error {
	s := &session{store: store, out: out, print: printMD}

	clock := timer.Start(ctx, store, cfg.Tick)
	defer clock.Stop()

	cancel := store.Subscribe(s.notifier(store.Snapshot()))
	defer cancel()

	s.show()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "fbitda> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		err := s.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}
