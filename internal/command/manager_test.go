package command

import (
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"awesome-dragon.science/go/chattext/pkg/log"
)

func newTestManager() (*Manager, *strings.Builder) {
	out := &strings.Builder{}
	return NewManager(log.New(0, ioutil.Discard, "CMD", log.TRACE), out), out
}

func TestManager_ParseLine(t *testing.T) {
	m, out := newTestManager()

	var got [][]string

	if err := m.AddCommand("Echo", func(data *Data) {
		got = append(got, data.Args)
		data.Reply(data.String())
	}, "echoes"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		line     string
		wantArgs []string
		wantErr  error
	}{
		{"simple", "echo a b", []string{"a", "b"}, nil},
		{"case insensitive", "ECHO x", []string{"x"}, nil},
		{"quoted", `echo "&aHello %player_name%" [hp]`, []string{"&aHello %player_name%", "[hp]"}, nil},
		{"no args", "echo", []string{}, nil},
		{"unknown", "nope", nil, ErrUnknownCommand},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			err := m.ParseLine(tt.line)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseLine() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				return
			}

			if len(got) != 1 {
				t.Fatalf("command fired %d times, want 1", len(got))
			}

			if diff := cmp.Diff(tt.wantArgs, got[0]); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if !strings.Contains(out.String(), "&aHello %player_name% [hp]\n") {
		t.Errorf("output %q is missing the echoed line", out.String())
	}

	if err := m.ParseLine("   "); err != nil {
		t.Errorf("ParseLine() on a blank line errored: %s", err)
	}

	if err := m.ParseLine(`echo "unterminated`); err == nil {
		t.Error("ParseLine() on an unterminated quote did not error")
	}
}

func TestManager_AddCommand(t *testing.T) {
	m, _ := newTestManager()
	noop := func(*Data) {}

	if err := m.AddCommand("test", noop, ""); err != nil {
		t.Fatal(err)
	}

	if err := m.AddCommand("TEST", noop, ""); err == nil {
		t.Error("AddCommand() allowed a duplicate command")
	}

	if err := m.AddCommand("has space", noop, ""); err == nil {
		t.Error("AddCommand() allowed a command with a space")
	}

	if diff := cmp.Diff([]string{"help", "test"}, m.CommandNames()); diff != "" {
		t.Errorf("CommandNames() mismatch (-want +got):\n%s", diff)
	}

	if err := m.RemoveCommand("Test"); err != nil {
		t.Errorf("RemoveCommand() errored: %s", err)
	}

	if err := m.RemoveCommand("test"); err == nil {
		t.Error("RemoveCommand() on a missing command did not error")
	}
}

func TestManager_SubCommands(t *testing.T) {
	m, out := newTestManager()

	var fired []string

	for _, name := range []string{"enable", "disable"} {
		name := name
		if err := m.AddSubCommand("provider", name, func(data *Data) {
			fired = append(fired, name+":"+data.String())
		}, name+"s the provider"); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.AddSubCommand("help", "x", func(*Data) {}, ""); err == nil {
		t.Error("AddSubCommand() on a plain command did not error")
	}

	_ = m.ParseLine("provider enable now")
	_ = m.ParseLine("PROVIDER Disable")
	_ = m.ParseLine("provider")
	_ = m.ParseLine("provider explode")

	if diff := cmp.Diff([]string{"enable:now", "disable:"}, fired); diff != "" {
		t.Errorf("fired mismatch (-want +got):\n%s", diff)
	}

	want := "Not enough arguments\n" +
		"Available subcommands are: disable, enable\n" +
		"unknown subcommand \"explode\"\n" +
		"Available subcommands are: disable, enable\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestManager_Help(t *testing.T) {
	m, out := newTestManager()
	_ = m.AddCommand("colourise", func(*Data) {}, "translates & codes")
	_ = m.AddSubCommand("provider", "enable", func(*Data) {}, "enables the provider")

	for _, line := range []string{"help", "help colourise", "help provider enable", "help provider", "help nope"} {
		if err := m.ParseLine(line); err != nil {
			t.Fatal(err)
		}
	}

	want := "Available commands are colourise, help, provider\n" +
		"colourise: translates & codes\n" +
		"provider enable: enables the provider\n" +
		"provider: Available subcommands are: enable\n" +
		"unknown command \"nope\"\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
