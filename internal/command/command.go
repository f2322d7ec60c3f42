package command

import (
	"fmt"
	"sort"
	"strings"
)

// Callback is the function called when a command is fired
type Callback func(data *Data)

// Command is a single named command
type Command interface {
	Fire(data *Data)
	Help() string
	Name() string
}

// SingleCommand is a Command that simply calls its callback
type SingleCommand struct {
	callback Callback
	help     string
	name     string
}

// Fire implements Command
func (c *SingleCommand) Fire(data *Data) { c.callback(data) }

// Help implements Command
func (c *SingleCommand) Help() string { return c.help }

// Name implements Command
func (c *SingleCommand) Name() string { return c.name }

// SubCommandList is a Command that dispatches to one of its subcommands based on its first argument
type SubCommandList struct {
	SingleCommand
	subCommands map[string]Command
}

// Help implements Command. It lists the available subcommands
func (s *SubCommandList) Help() string {
	subCmds := make([]string, 0, len(s.subCommands))
	for _, c := range s.subCommands {
		subCmds = append(subCmds, c.Name())
	}

	sort.Strings(subCmds)

	return "Available subcommands are: " + strings.Join(subCmds, ", ")
}

func (s *SubCommandList) findSubcommand(name string) Command {
	return s.subCommands[strings.ToLower(name)]
}

func (s *SubCommandList) addSubcommand(command Command) error {
	if s.findSubcommand(command.Name()) != nil {
		return fmt.Errorf("command %s already exists on command %s", command.Name(), s.Name())
	}

	s.subCommands[strings.ToLower(command.Name())] = command

	return nil
}

// Fire implements Command
func (s *SubCommandList) Fire(data *Data) {
	if len(data.Args) < 1 {
		data.Reply("Not enough arguments")
		data.Reply(s.Help())

		return
	}

	c := s.findSubcommand(data.Args[0])
	if c == nil {
		data.Reply(fmt.Sprintf("unknown subcommand %q", data.Args[0]))
		data.Reply(s.Help())

		return
	}

	c.Fire(&Data{
		Args:         data.Args[1:],
		OriginalArgs: data.OriginalArgs,
		Manager:      data.Manager,
	})
}
