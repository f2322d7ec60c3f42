package irc

import (
	"strings"
	"testing"

	"awesome-dragon.science/go/chattext/pkg/text"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain message",
			in:   "plain message",
			want: "plain message",
		},
		{
			name: "dollars are escaped",
			in:   "this i$ a te$t",
			want: "this i$$ a te$$t",
		},
		{
			name: "danger",
			in:   "§4§lDanger§r: [hp]",
			want: "$c[brown]$bDanger$r: [hp]",
		},
		{
			name: "additive formats",
			in:   "§aa§lb§oc",
			want: "$c[light green]a$bb$ic",
		},
		{
			name: "removing a format resets",
			in:   "§la§r§ob",
			want: "$ba$r$ib",
		},
		{
			name: "colour change",
			in:   "§fwhite§0black",
			want: "$c[white]white$r$c[black]black",
		},
		{
			name: "dropped formats",
			in:   "§k§mhidden§nunder",
			want: "hidden$uunder",
		},
		{
			name: "trigger codes are not native",
			in:   "&ahi",
			want: "&ahi",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []string{
		"plain message",
		"§4§lDanger§r: [hp]",
		"§6Gold §eyellow §oitalic",
		"§la§r§ob",
	}

	for _, in := range tests {
		in := in
		t.Run(in, func(t *testing.T) {
			got := Render(in)
			if strings.ContainsRune(got, text.Native) {
				t.Errorf("Render() left native markers in %q", got)
			}

			if stripped, want := Strip(got), text.StripCodes(text.Native, in); stripped != want {
				t.Errorf("Strip(Render()) = %q, want %q", stripped, want)
			}
		})
	}

	if got := Render("§lbold"); !strings.HasPrefix(got, "\x02") {
		t.Errorf("Render() = %q, want a leading bold code", got)
	}
}

func TestColourName(t *testing.T) {
	tests := []struct {
		code rune
		want string
	}{
		{'0', "black"},
		{'1', "blue"},
		{'2', "green"},
		{'4', "brown"},
		{'5', "magenta"},
		{'6', "orange"},
		{'7', "light grey"},
		{'8', "grey"},
		{'a', "light green"},
		{'B', "light cyan"},
		{'e', "yellow"},
		{'f', "white"},
	}

	for _, tt := range tests {
		if got, ok := ColourName(tt.code); !ok || got != tt.want {
			t.Errorf("ColourName(%q) = %q, %t, want %q", tt.code, got, ok, tt.want)
		}
	}

	if _, ok := ColourName('l'); ok {
		t.Error("ColourName('l') found a colour")
	}
}
