// Package console wires the text translation, placeholder dispatch and plugin registry together behind a set of
// named modes, usable both one-shot from the command line and from an interactive console
package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"awesome-dragon.science/go/chattext/internal/command"
	"awesome-dragon.science/go/chattext/internal/registry"
	"awesome-dragon.science/go/chattext/pkg/log"
	"awesome-dragon.science/go/chattext/pkg/placeholder"
	"awesome-dragon.science/go/chattext/pkg/text"
	"awesome-dragon.science/go/chattext/pkg/text/component"
	"awesome-dragon.science/go/chattext/pkg/text/irc"
)

// ErrUnknownMode is returned by Convert for modes that do not exist
var ErrUnknownMode = errors.New("unknown mode")

// ModeFunc converts the given text on behalf of the given actor
type ModeFunc func(actor placeholder.Actor, in string) (string, error)

// Console holds everything needed to convert text
type Console struct {
	registry     *registry.Registry
	dispatcher   *placeholder.Dispatcher
	providerName string
	players      map[string]*placeholder.OfflinePlayer
	actor        placeholder.Actor
	modes        map[string]modeEntry
	Commands     *command.Manager
	log          *log.Logger
}

type modeEntry struct {
	fn   ModeFunc
	help string
}

// New creates a Console. players are the players that can be selected with the "as" command, providerName is the
// name of the plugin the dispatcher's provider was resolved from
func New(
	reg *registry.Registry, dispatcher *placeholder.Dispatcher, providerName string,
	players map[string]*placeholder.OfflinePlayer, out io.Writer, logger *log.Logger,
) *Console {
	c := &Console{
		registry:     reg,
		dispatcher:   dispatcher,
		providerName: providerName,
		players:      players,
		actor:        placeholder.OtherActor{Kind: "console", Name: "CONSOLE"},
		log:          logger,
	}

	c.modes = make(map[string]modeEntry)
	c.Commands = command.NewManager(logger.Clone().SetPrefix("CMD"), out)
	c.setupCommands()

	return c
}

// pure adapts a function that does not care about the actor to a ModeFunc
func pure(f func(string) string) ModeFunc {
	return func(_ placeholder.Actor, in string) (string, error) { return f(in), nil }
}

func pureErr(f func(string) (string, error)) ModeFunc {
	return func(_ placeholder.Actor, in string) (string, error) { return f(in) }
}

func stripAll(in string) string {
	return text.StripCodes(text.Trigger, text.StripCodes(text.Native, in))
}

func toIRC(in string) string {
	return irc.Render(text.Colourise(in))
}

func toJSON(in string) (string, error) {
	return component.FromLegacy(text.Colourise(in), text.Native, component.WithLinks()).JSON()
}

// Modes returns the names of every mode Convert accepts, sorted
func (c *Console) Modes() []string {
	out := make([]string, 0, len(c.modes))
	for name := range c.modes {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Actor returns the actor used for placeholder lookups
func (c *Console) Actor() placeholder.Actor { return c.actor }

// SetActor changes the actor used for placeholder lookups
func (c *Console) SetActor(a placeholder.Actor) { c.actor = a }

// SelectPlayer sets the actor to the named player. "-" selects the console itself
func (c *Console) SelectPlayer(name string) error {
	if name == "-" {
		c.actor = placeholder.OtherActor{Kind: "console", Name: "CONSOLE"}
		return nil
	}

	p, ok := c.players[name]
	if !ok {
		return fmt.Errorf("unknown player %q", name)
	}

	c.actor = p

	return nil
}

// Convert runs the named mode over the given text using the current actor
func (c *Console) Convert(mode, in string) (string, error) {
	m, ok := c.modes[strings.ToLower(mode)]
	if !ok {
		return "", fmt.Errorf("%w %q, valid modes are %s", ErrUnknownMode, mode, strings.Join(c.Modes(), ", "))
	}

	return m.fn(c.actor, in)
}

// AddMode adds a conversion mode usable with Convert, along with a console command of the same name. Failures are
// logged as well as returned
func (c *Console) AddMode(name string, fn ModeFunc, help string) error {
	name = strings.ToLower(name)

	err := c.addMode(name, fn, help)
	if err != nil {
		c.log.Warnf("could not add mode %q: %s", name, err)
	}

	return err
}

func (c *Console) addMode(name string, fn ModeFunc, help string) error {
	if _, exists := c.modes[name]; exists {
		return fmt.Errorf("mode %q already exists", name)
	}

	err := c.Commands.AddCommand(name, func(data *command.Data) {
		res, err := c.Convert(name, data.String())
		if err != nil {
			data.Reply("error: " + err.Error())
			return
		}

		data.Reply(res)
	}, help)
	if err != nil {
		return err
	}

	c.modes[name] = modeEntry{fn: fn, help: help}

	return nil
}

func (c *Console) setupCommands() {
	modes := []struct {
		name string
		fn   ModeFunc
		help string
	}{
		{"colourise", pure(text.Colourise), "translates & codes to § codes"},
		{"decolourise", pure(text.Decolourise), "translates § codes to & codes"},
		{"strip", pure(stripAll), "removes all & and § codes"},
		{"papi", c.dispatcher.SetPlaceholdersFor, "resolves %placeholders%, or colourises without a provider"},
		{"bracket", c.dispatcher.SetBracketPlaceholdersFor, "resolves [placeholders], or colourises without a provider"},
		{"json", pureErr(toJSON), "renders & and § codes as raw JSON text"},
		{"irc", pure(toIRC), "renders & and § codes as IRC formatting"},
	}

	var errs []error

	for _, m := range modes {
		// AddMode logs its own failures
		_ = c.AddMode(m.name, m.fn, m.help)
	}

	errs = append(errs, c.Commands.AddCommand("as", func(data *command.Data) {
		if len(data.Args) != 1 {
			data.Reply("usage: as <player|->")
			return
		}

		if err := c.SelectPlayer(data.Args[0]); err != nil {
			data.Reply("error: " + err.Error())
			return
		}

		data.Reply("resolving placeholders as " + c.actor.String())
	}, "sets the player placeholders are resolved for, - for the console"))

	errs = append(errs, c.Commands.AddSubCommand("provider", "enable", func(data *command.Data) {
		c.setProvider(data, true)
	}, "enables the placeholder provider"))
	errs = append(errs, c.Commands.AddSubCommand("provider", "disable", func(data *command.Data) {
		c.setProvider(data, false)
	}, "disables the placeholder provider"))
	errs = append(errs, c.Commands.AddSubCommand("provider", "status", func(data *command.Data) {
		data.Reply(c.status())
	}, "shows whether or not placeholders will be resolved"))

	if err := errors.Join(errs...); err != nil {
		c.log.Warnf("could not add console commands: %s", err)
	}
}

func (c *Console) setProvider(data *command.Data, enabled bool) {
	var err error
	if enabled {
		err = c.registry.Enable(c.providerName)
	} else {
		err = c.registry.Disable(c.providerName)
	}

	if err != nil {
		data.Reply("error: " + err.Error())
		return
	}

	data.Reply(c.status())
}

func (c *Console) status() string {
	p := c.dispatcher.Provider()
	switch {
	case p == nil:
		return fmt.Sprintf("provider %q is not installed, text will only be colourised", c.providerName)
	case p.Available():
		return fmt.Sprintf("provider %q is enabled", c.providerName)
	default:
		return fmt.Sprintf("provider %q is disabled, text will only be colourised", c.providerName)
	}
}
