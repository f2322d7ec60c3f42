// Package irc renders native legacy coded text with IRC formatting codes, for relaying chat to IRC.
// The conversion is one way, IRC formatting is never turned back into legacy codes
package irc

import (
	"image/color" //nolint:misspell // I dont control others' package names
	"strings"

	"github.com/goshuirc/irc-go/ircfmt"

	"awesome-dragon.science/go/chattext/pkg/text"
	"awesome-dragon.science/go/chattext/pkg/text/component"
)

var (
	white      = color.RGBA{A: 255, R: 255, G: 255, B: 255}
	black      = color.RGBA{A: 255, R: 0, G: 0, B: 0}
	blue       = color.RGBA{A: 255, R: 0, G: 0, B: 127}
	green      = color.RGBA{A: 255, R: 0, G: 147, B: 0}
	red        = color.RGBA{A: 255, R: 255, G: 0, B: 0}
	brown      = color.RGBA{A: 255, R: 127, G: 0, B: 0}
	magenta    = color.RGBA{A: 255, R: 156, G: 0, B: 156}
	orange     = color.RGBA{A: 255, R: 252, G: 127, B: 0}
	yellow     = color.RGBA{A: 255, R: 255, G: 255, B: 0}
	lightGreen = color.RGBA{A: 255, R: 0, G: 252, B: 0}
	cyan       = color.RGBA{A: 255, R: 0, G: 147, B: 147}
	lightCyan  = color.RGBA{A: 255, R: 0, G: 255, B: 255}
	lightBlue  = color.RGBA{A: 255, R: 0, G: 0, B: 252}
	pink       = color.RGBA{A: 255, R: 255, G: 0, B: 255}
	grey       = color.RGBA{A: 255, R: 127, G: 127, B: 127}
	lightGrey  = color.RGBA{A: 255, R: 210, G: 210, B: 210}
)

// ircPalette is ordered by IRC colour number
var ircPalette = color.Palette{
	white, black, blue, green, red, brown, magenta, orange, yellow,
	lightGreen, cyan, lightCyan, lightBlue, pink, grey, lightGrey,
}

// ircColourNames are the names ircfmt uses for each colour number
var ircColourNames = [...]string{
	"white", "black", "blue", "green", "red", "brown", "magenta", "orange", "yellow",
	"light green", "cyan", "light cyan", "light blue", "pink", "grey", "light grey",
}

// colourNames maps a legacy colour's JSON name to its closest IRC colour name
var colourNames = func() map[string]string {
	out := make(map[string]string, len(component.Colours))
	for _, c := range component.Colours {
		out[c.Name] = ircColourNames[ircPalette.Index(c.RGBA)]
	}

	return out
}()

// ColourName returns the name of the IRC colour closest to the given legacy colour code
func ColourName(code rune) (string, bool) {
	c, ok := component.ColourByCode(code)
	if !ok {
		return "", false
	}

	return colourNames[c.Name], true
}

type ircStyle struct {
	colour                  string
	bold, italic, underline bool
}

func styleOf(c *component.Component) ircStyle {
	return ircStyle{colour: colourNames[c.Colour], bold: c.Bold, italic: c.Italic, underline: c.Underlined}
}

// Escape converts native legacy coded text to ircfmt's escaped format ($b, $c[red], etc). IRC has no obfuscated
// text and strikethrough support is patchy, so both are dropped.
func Escape(native string) string {
	out := strings.Builder{}
	last := ircStyle{}

	root := component.FromLegacy(native, text.Native)
	for i := range root.Extra {
		cur := styleOf(&root.Extra[i])
		if cur != last {
			base := last
			// IRC formats are toggles, anything that needs removing is done with a reset
			if cur.colour != last.colour || (last.bold && !cur.bold) || (last.italic && !cur.italic) ||
				(last.underline && !cur.underline) {
				if last != (ircStyle{}) {
					out.WriteString("$r")
				}

				base = ircStyle{}
				if cur.colour != "" {
					out.WriteString("$c[" + cur.colour + "]")
					base.colour = cur.colour
				}
			}

			if cur.bold && !base.bold {
				out.WriteString("$b")
			}

			if cur.italic && !base.italic {
				out.WriteString("$i")
			}

			if cur.underline && !base.underline {
				out.WriteString("$u")
			}

			last = cur
		}

		out.WriteString(strings.ReplaceAll(root.Extra[i].Text, "$", "$$"))
	}

	return out.String()
}

// Render converts native legacy coded text to text with IRC formatting codes
func Render(native string) string {
	return ircfmt.Unescape(Escape(native))
}

// Strip removes IRC formatting codes from the given string
func Strip(in string) string {
	return ircfmt.Strip(in)
}
