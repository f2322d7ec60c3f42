package command

import (
	"strings"
)

// Data is passed to every command callback
type Data struct {
	Args         []string // The arguments to the command, not including the command itself
	OriginalArgs string   // The line the command was parsed from
	Manager      *Manager
}

// Reply writes a line of output for the user that fired the command
func (d *Data) Reply(msg string) {
	d.Manager.reply(msg)
}

// String returns the arguments joined with spaces
func (d *Data) String() string {
	return strings.Join(d.Args, " ")
}
