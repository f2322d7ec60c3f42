package console

import (
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/google/uuid"

	"awesome-dragon.science/go/chattext/internal/provider"
	"awesome-dragon.science/go/chattext/internal/registry"
	"awesome-dragon.science/go/chattext/pkg/log"
	"awesome-dragon.science/go/chattext/pkg/placeholder"
)

var testLogger = log.New(0, ioutil.Discard, "TEST", log.TRACE)

func newTestConsole(t *testing.T, install, enable bool) (*Console, *strings.Builder) {
	t.Helper()

	reg := registry.New(testLogger)

	if install {
		if _, err := reg.Register("PlaceholderAPI", provider.New(map[string]string{"hp": "20"}, nil, testLogger)); err != nil {
			t.Fatal(err)
		}
	}

	if enable {
		if err := reg.Enable("PlaceholderAPI"); err != nil {
			t.Fatal(err)
		}
	}

	players := map[string]*placeholder.OfflinePlayer{
		"Notch": {ID: uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5"), Name: "Notch"},
	}

	out := &strings.Builder{}
	d := placeholder.NewDispatcher(reg.Provider("PlaceholderAPI"))

	return New(reg, d, "PlaceholderAPI", players, out, testLogger), out
}

func TestConsole_Convert(t *testing.T) {
	c, _ := newTestConsole(t, true, true)

	tests := []struct {
		mode string
		in   string
		want string
	}{
		{"colourise", "&aHi", "§aHi"},
		{"COLOURISE", "&aHi", "§aHi"},
		{"decolourise", "§aHi", "&aHi"},
		{"strip", "&aHi §bthere &z", "Hi there &z"},
		{"papi", "&aHi %player_name% %hp%", "§aHi %player_name% 20"},
		{"bracket", "&4&lDanger&r: [hp]", "§4§lDanger§r: 20"},
		{"json", "&6Gold", `{"text":"Gold","color":"gold"}`}, //nolint:misspell // not my format
		{"irc", "plain", "plain"},
	}

	for _, tt := range tests {
		got, err := c.Convert(tt.mode, tt.in)
		if err != nil {
			t.Errorf("Convert(%q) returned an error: %s", tt.mode, err)
			continue
		}

		if got != tt.want {
			t.Errorf("Convert(%q, %q) = %q, want %q", tt.mode, tt.in, got, tt.want)
		}
	}

	if _, err := c.Convert("shout", "x"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Convert(shout) error = %v, want %v", err, ErrUnknownMode)
	}
}

func TestConsole_SelectPlayer(t *testing.T) {
	c, _ := newTestConsole(t, true, true)

	if err := c.SelectPlayer("Notch"); err != nil {
		t.Fatal(err)
	}

	if got, _ := c.Convert("papi", "%player_name%"); got != "Notch" {
		t.Errorf("Convert() as Notch = %q, want %q", got, "Notch")
	}

	if err := c.SelectPlayer("jeb_"); err == nil {
		t.Error("SelectPlayer() with an unknown player did not error")
	}

	if err := c.SelectPlayer("-"); err != nil {
		t.Fatal(err)
	}

	if got, _ := c.Convert("papi", "%player_name%"); got != "%player_name%" {
		t.Errorf("Convert() as console = %q, want the placeholder untouched", got)
	}
}

func TestConsole_Commands(t *testing.T) {
	c, out := newTestConsole(t, true, false)

	lines := []string{
		"provider status",
		"papi &aHi %player_name%",
		"provider enable",
		"as Notch",
		`papi "&aHi %player_name%"`,
		"provider disable",
		"bracket &4&lDanger&r: [hp]",
		"as",
	}

	for _, line := range lines {
		if err := c.Commands.ParseLine(line); err != nil {
			t.Fatalf("ParseLine(%q) returned an error: %s", line, err)
		}
	}

	want := []string{
		`provider "PlaceholderAPI" is disabled, text will only be colourised`,
		"§aHi %player_name%",
		`provider "PlaceholderAPI" is enabled`,
		"resolving placeholders as Notch (069a79f4-44e9-4726-a5be-fca90e38aaf5)",
		"§aHi Notch",
		`provider "PlaceholderAPI" is disabled, text will only be colourised`,
		"§4§lDanger§r: [hp]",
		"usage: as <player|->",
	}

	if got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestConsole_NoProvider(t *testing.T) {
	c, out := newTestConsole(t, false, false)

	if got, _ := c.Convert("papi", "&cHello %name%"); got != "§cHello %name%" {
		t.Errorf("Convert() = %q, want %q", got, "§cHello %name%")
	}

	_ = c.Commands.ParseLine("provider status")
	_ = c.Commands.ParseLine("provider enable")

	want := `provider "PlaceholderAPI" is not installed, text will only be colourised` + "\n" +
		`error: cannot change state of "PlaceholderAPI": plugin not registered` + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestConsole_AddMode(t *testing.T) {
	logOut := &strings.Builder{}
	out := &strings.Builder{}
	c := New(
		registry.New(testLogger), placeholder.NewDispatcher(nil), "PlaceholderAPI", nil, out,
		log.New(0, logOut, "TEST", log.WARN),
	)

	if logOut.Len() != 0 {
		t.Fatalf("setting up the built in commands logged %q", logOut.String())
	}

	shout := func(_ placeholder.Actor, in string) (string, error) { return strings.ToUpper(in), nil }

	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"new mode", "Shout", false},
		{"existing mode", "colourise", true},
		{"clashes with help", "help", true},
		{"clashes with as", "as", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			logOut.Reset()

			err := c.AddMode(tt.mode, shout, "shouts")
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddMode() error = %v, wantErr %t", err, tt.wantErr)
			}

			if tt.wantErr && !strings.Contains(logOut.String(), "could not add mode") {
				t.Errorf("AddMode() failure was not logged, log = %q", logOut.String())
			}
		})
	}

	if got, err := c.Convert("shout", "hi"); err != nil || got != "HI" {
		t.Errorf("Convert(shout) = %q, %v, want %q", got, err, "HI")
	}

	if _, err := c.Convert("help", "hi"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Convert(help) error = %v, want %v", err, ErrUnknownMode)
	}

	out.Reset()

	if err := c.Commands.ParseLine("help colourise"); err != nil {
		t.Fatal(err)
	}

	if want := "colourise: translates & codes to § codes\n"; out.String() != want {
		t.Errorf("help output = %q, want %q", out.String(), want)
	}
}
