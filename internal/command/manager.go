// Package command implements a simple named command system for line based consoles
package command

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/anmitsu/go-shlex"

	"awesome-dragon.science/go/chattext/pkg/log"
)

// ErrUnknownCommand is returned by ParseLine when no command with the given name exists
var ErrUnknownCommand = errors.New("unknown command")

// Manager holds a set of commands and fires them based on lines of input
type Manager struct {
	cmdMutex sync.RWMutex
	commands map[string]Command
	outMutex sync.Mutex
	output   io.Writer
	Logger   *log.Logger
}

// NewManager creates a Manager that writes command output to the given writer. A help command is added automatically
func NewManager(logger *log.Logger, output io.Writer) *Manager {
	m := &Manager{Logger: logger, output: output, commands: make(map[string]Command)}
	_ = m.AddCommand("help", func(data *Data) {
		if len(data.Args) == 0 {
			data.Reply("Available commands are " + strings.Join(m.CommandNames(), ", "))
			return
		}

		cmd := m.getCommandByName(data.Args[0])
		if cmd == nil {
			data.Reply(fmt.Sprintf("unknown command %q", data.Args[0]))
			return
		}

		if realCmd, ok := cmd.(*SubCommandList); ok && len(data.Args) > 1 && realCmd.findSubcommand(data.Args[1]) != nil {
			data.Reply(fmt.Sprintf("%s: %s", strings.Join(data.Args[:2], " "), realCmd.findSubcommand(data.Args[1]).Help()))
			return
		}

		data.Reply(fmt.Sprintf("%s: %s", data.Args[0], cmd.Help()))
	}, "prints command help")

	return m
}

func (m *Manager) reply(msg string) {
	m.outMutex.Lock()
	defer m.outMutex.Unlock()
	_, _ = io.WriteString(m.output, strings.TrimRight(msg, "\r\n")+"\n")
}

// AddCommand adds a command to the Manager. Command names are case insensitive and cannot contain spaces
func (m *Manager) AddCommand(name string, callback Callback, help string) error {
	return m.addCommand(&SingleCommand{callback: callback, help: help, name: strings.ToLower(name)})
}

func (m *Manager) addCommand(cmd Command) error {
	if strings.Contains(cmd.Name(), " ") {
		return errors.New("commands cannot contain spaces")
	}

	m.cmdMutex.Lock()
	defer m.cmdMutex.Unlock()

	if _, exists := m.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %q already exists", cmd.Name())
	}

	m.Logger.Debugf("adding command %s", cmd.Name())
	m.commands[cmd.Name()] = cmd

	return nil
}

// RemoveCommand removes the named command
func (m *Manager) RemoveCommand(name string) error {
	m.cmdMutex.Lock()
	defer m.cmdMutex.Unlock()

	name = strings.ToLower(name)
	if _, exists := m.commands[name]; !exists {
		return fmt.Errorf("command %q does not exist", name)
	}

	m.Logger.Debugf("removing command %s", name)
	delete(m.commands, name)

	return nil
}

// AddSubCommand adds a subcommand to the command rootName, creating rootName if needed
func (m *Manager) AddSubCommand(rootName, name string, callback Callback, help string) error {
	if m.getCommandByName(rootName) == nil {
		err := m.addCommand(&SubCommandList{
			SingleCommand: SingleCommand{name: strings.ToLower(rootName)},
			subCommands:   make(map[string]Command),
		})
		if err != nil {
			return err
		}
	}

	cmd, ok := m.getCommandByName(rootName).(*SubCommandList)
	if !ok {
		return fmt.Errorf("command %s is not a command that can have subcommands", rootName)
	}

	return cmd.addSubcommand(&SingleCommand{name: strings.ToLower(name), callback: callback, help: help})
}

func (m *Manager) getCommandByName(name string) Command {
	m.cmdMutex.RLock()
	defer m.cmdMutex.RUnlock()

	return m.commands[strings.ToLower(name)]
}

// CommandNames returns the names of all commands on the Manager, sorted
func (m *Manager) CommandNames() []string {
	m.cmdMutex.RLock()
	out := make([]string, 0, len(m.commands))

	for name := range m.commands {
		out = append(out, name)
	}
	m.cmdMutex.RUnlock()

	sort.Strings(out)

	return out
}

// ParseLine splits the given line shell style and fires the command it names. Empty lines are ignored
func (m *Manager) ParseLine(line string) error {
	args, err := shlex.Split(line, true)
	if err != nil {
		return fmt.Errorf("could not split %q: %w", line, err)
	}

	if len(args) == 0 {
		return nil
	}

	cmd := m.getCommandByName(args[0])
	if cmd == nil {
		return fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
	}

	m.Logger.Tracef("firing command %q (original line %q)", args[0], line)
	cmd.Fire(&Data{Args: args[1:], OriginalArgs: line, Manager: m})

	return nil
}
