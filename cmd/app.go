// Package cmd implements the fbitda command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/fbitda"
	"github.com/etnz/fbitda/storage"
	"github.com/google/subcommands"
)

// commands are the subcommands of fbitda, by group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"game", &playCmd{}},
	{"player", &loginCmd{}},
	{"player", &whoamiCmd{}},
	{"player", &guideCmd{}},
	{"tools", &valueCmd{}},
	{"tools", &termsCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// IsBuiltin reports whether name is a subcommand of fbitda, or of the commander itself.
func IsBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, e := range commands {
		if e.cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", "", "Path to the settings store, a .db, .sqlite or .sqlite3 path is a SQLite database. Overrides $FBITDA_STORE.")
var rawMarkdown = flag.Bool("raw", false, "Print markdown without terminal styling. Overrides $FBITDA_RAW.")

// Config is the configuration read from the environment.
type Config struct {
	Store       string        `env:"FBITDA_STORE" envDefault:".fbitda.json"`
	Tick        time.Duration `env:"FBITDA_TICK" envDefault:"1s"`
	SaveTimeout time.Duration `env:"FBITDA_SAVE_TIMEOUT" envDefault:"2s"`
	Raw         bool          `env:"FBITDA_RAW" envDefault:"false"`
}

// LoadConfig reads the Config from the environment, command line flags take precedence.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if *storePath != "" {
		cfg.Store = *storePath
	}
	if *rawMarkdown {
		cfg.Raw = true
	}
	if cfg.Tick <= 0 {
		return cfg, fmt.Errorf("parse env: FBITDA_TICK must be positive, got %v", cfg.Tick)
	}
	return cfg, nil
}

// OpenStore opens the game Store with the settings persisted in the configured storage.
// The returned function closes both, saving the settings one last time.
func OpenStore(ctx context.Context, cfg Config) (*fbitda.Store, func(), error) {
	db, err := storage.Open(cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("open store %q: %w", cfg.Store, err)
	}
	s := fbitda.NewStore(ctx,
		fbitda.WithGateway(fbitda.NewGateway(db)),
		fbitda.WithSaveTimeout(cfg.SaveTimeout),
	)
	closer := func() {
		if err := s.Close(); err != nil {
			log.Printf("warning, cannot save settings to %q: %v", cfg.Store, err)
		}
		if err := db.Close(); err != nil {
			log.Printf("warning, cannot close %q: %v", cfg.Store, err)
		}
	}
	return s, closer, nil
}
