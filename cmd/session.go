package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/etnz/fbitda"
	"github.com/etnz/fbitda/docs"
	"github.com/etnz/fbitda/renderer"
)

// errQuit is returned by session.exec when the player leaves the game.
var errQuit = errors.New("quit")

// session interprets the commands typed during a game.
type session struct {
	store *fbitda.Store
	out   io.Writer
	print func(io.Writer, string) // prints markdown
}

// exec runs one command line. Errors are for the player to read, errQuit ends the game.
func (s *session) exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	name, args := strings.ToLower(args[0]), args[1:]

	switch name {
	case "quit", "exit":
		return errQuit
	case "help":
		doc, err := docs.GetTopic("play")
		if err != nil {
			return err
		}
		s.print(s.out, doc)
	case "show":
		s.show()
	case "set":
		_, rest := cutWord(line)
		return s.set(rest)
	case "approve":
		return s.review(args, func(f fbitda.Field) { s.store.UpdateFieldStatus(f, fbitda.Approved) })
	case "tbd":
		return s.review(args, func(f fbitda.Field) { s.store.UpdateFieldStatus(f, fbitda.ToBeDetermined) })
	case "toggle":
		return s.review(args, s.store.ToggleFieldStatus)
	case "reset":
		s.store.ResetSession()
		fmt.Fprintln(s.out, "New session started.")
		s.show()
	case "get":
		return s.get(args)
	case "advice":
		var b strings.Builder
		if !renderer.RenderAdvice(&b, s.store.Advisories()) {
			fmt.Fprintln(s.out, "No advice on the current terms.")
			return nil
		}
		s.print(s.out, b.String())
	case "time":
		fmt.Fprintln(s.out, s.store.Snapshot().Elapsed)
	case "guide":
		return s.toggle(fbitda.FlagGuidance, args)
	case "text":
		return s.toggle(fbitda.FlagText, args)
	case "video":
		return s.toggle(fbitda.FlagVideo, args)
	default:
		return fmt.Errorf("unknown command %q, type 'help' to list the commands", name)
	}
	return nil
}

func (s *session) show() {
	d := renderer.NewDashboard(s.store.Snapshot(), fbitda.Terms())
	s.print(s.out, renderer.RenderDashboard(d, renderer.DashboardOptions{}))
}

// cutWord splits line after its first word. Only one blank after the word is
// consumed, the rest of the line is kept as typed.
func cutWord(line string) (word, rest string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i+1:]
}

// set updates a term, the value is the rest of the line and text terms store
// it verbatim.
func (s *session) set(line string) error {
	name, value := cutWord(line)
	if name == "" {
		return fmt.Errorf("usage: set <field> <value>")
	}
	f, err := fbitda.ParseField(name)
	if err != nil {
		return err
	}
	if f.IsNumeric() {
		value = strings.TrimSpace(value)
	}
	if f.IsNumeric() && value == "" {
		return fmt.Errorf("usage: set <field> <value>")
	}
	if snap := s.store.Snapshot(); !snap.CanEdit() {
		return fmt.Errorf("%s cannot edit the terms", snap.User.Role.Title())
	}
	s.store.UpdateInput(f, value)

	if !f.IsNumeric() {
		return nil
	}
	got, _ := s.store.Snapshot().Inputs.Number(f)
	if want, err := decimal.NewFromString(value); err != nil || !got.Equal(want) {
		term, _ := fbitda.Terms().Lookup(f)
		return fmt.Errorf("%q refused, %s stays %s (range %s)", value, term.Display, term.Format(got), term.Range())
	}
	return nil
}

// review applies a review operation to the field named in args.
func (s *session) review(args []string, op func(fbitda.Field)) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: approve|tbd|toggle <field>")
	}
	f, err := fbitda.ParseField(args[0])
	if err != nil {
		return err
	}
	if snap := s.store.Snapshot(); !snap.CanReview() {
		return fmt.Errorf("%s cannot review the terms", snap.User.Role.Title())
	}
	op(f)
	fmt.Fprintf(s.out, "%s: %s\n", f, s.store.Snapshot().Reviews.Status(f).Label())
	return nil
}

func (s *session) get(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <jsonpath>")
	}
	v, err := fbitda.Query(s.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(b))
	return nil
}

// toggle opens or closes a panel, printing its content when it opens.
func (s *session) toggle(flag fbitda.Flag, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("usage: %s on|off", flag)
	}
	open := args[0] == "on"
	s.store.SetVisibility(flag, open)
	if !open {
		return nil
	}

	topic := map[fbitda.Flag]string{
		fbitda.FlagGuidance: "guidance",
		fbitda.FlagText:     docs.TextOverlay,
		fbitda.FlagVideo:    docs.VideoOverlay,
	}[flag]
	doc, err := docs.GetTopic(topic)
	if err != nil {
		return err
	}
	s.print(s.out, doc)
	return nil
}

// notifier reports the changes a player must not miss: the valuation and the end of the deal.
// It is a fbitda.Store subscriber.
func (s *session) notifier(initial fbitda.Snapshot) func(fbitda.Snapshot) {
	last := initial
	return func(snap fbitda.Snapshot) {
		if !snap.Valuation.Equal(last.Valuation) {
			fmt.Fprintf(s.out, "Valuation: %s (%s of %s)\n", snap.Valuation, snap.Valuation.Percentage, fbitda.FormatAmount(snap.Valuation.Ceiling))
		}
		if snap.Complete() && !last.Complete() {
			fmt.Fprintf(s.out, "Every term is approved, deal closed in %s.\n", snap.Elapsed)
		}
		last = snap
	}
}
