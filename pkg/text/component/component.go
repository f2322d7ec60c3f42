// Package component converts legacy coded chat text to and from a tree of styled components, and renders that tree as
// Minecraft raw JSON text. See https://minecraft.gamepedia.com/Raw_JSON_text_format for the format itself
package component

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"awesome-dragon.science/go/chattext/pkg/text"
)

// Formatting codes other than colours
const (
	Obfuscated    = 'k'
	Bold          = 'l'
	Strikethrough = 'm'
	Underline     = 'n'
	Italic        = 'o'
	Reset         = 'r'
)

// ClickEvent is an action the client performs when a component is clicked
type ClickEvent struct {
	Action string `json:"action"` // if we're a URL, this is open_url
	Value  string `json:"value"`
}

// Component is a single run of styled text, with optional children that inherit its style
type Component struct {
	Text          string      `json:"text"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Colour        string      `json:"color,omitempty"` //nolint:misspell // not my format
	ClickEvent    *ClickEvent `json:"clickEvent,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

func (c *Component) hasFormatting() bool {
	return c.Bold || c.Italic || c.Underlined || c.Strikethrough || c.Obfuscated || c.Colour != "" || c.ClickEvent != nil
}

// style is the part of a component that is inherited by its children
type style struct {
	bold, italic, underlined, strikethrough, obfuscated bool
	colour                                              string
}

func (s style) apply(str string) Component {
	return Component{
		Text:          str,
		Bold:          s.bold,
		Italic:        s.italic,
		Underlined:    s.underlined,
		Strikethrough: s.strikethrough,
		Obfuscated:    s.obfuscated,
		Colour:        s.colour,
	}
}

// inherit returns the style of c when placed under a parent with the given style
func (s style) inherit(c *Component) style {
	out := style{
		bold:          s.bold || c.Bold,
		italic:        s.italic || c.Italic,
		underlined:    s.underlined || c.Underlined,
		strikethrough: s.strikethrough || c.Strikethrough,
		obfuscated:    s.obfuscated || c.Obfuscated,
		colour:        s.colour,
	}

	if c.Colour != "" {
		out.colour = c.Colour
	}

	return out
}

// Option changes the way FromLegacy builds components
type Option func(*options)

type options struct {
	links bool
}

// WithLinks makes FromLegacy turn URLs into clickable, blue, underlined components
func WithLinks() Option { return func(o *options) { o.links = true } }

var urlRe = regexp.MustCompile(`https?://\S+\.\S+`)

// FromLegacy parses text containing legacy codes using the given marker into a Component. The returned Component is
// an empty, unstyled root holding every styled run as a child.
//
// A colour code clears any formatting before it, a formatting code adds to the current style, and a reset clears
// everything. Markers that are not followed by a valid code are kept as text.
func FromLegacy(in string, marker rune, opts ...Option) Component {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	root := Component{}
	cur := style{}
	buf := strings.Builder{}

	flush := func() {
		if buf.Len() == 0 {
			return
		}

		if o.links {
			root.Extra = append(root.Extra, splitOnURLs(buf.String(), cur)...)
		} else {
			root.Extra = append(root.Extra, cur.apply(buf.String()))
		}

		buf.Reset()
	}

	for i := 0; i < len(in); {
		r, size := utf8.DecodeRuneInString(in[i:])
		code, codeSize := utf8.DecodeRuneInString(in[i+size:])

		// an invalid byte is never a marker, even if the marker is utf8.RuneError
		if r != marker || (r == utf8.RuneError && size == 1) || !text.IsCode(code) {
			buf.WriteString(in[i : i+size])
			i += size

			continue
		}

		flush()
		i += size + codeSize

		code = unicode.ToLower(code)
		if col, ok := ColourByCode(code); ok {
			cur = style{colour: col.Name}
			continue
		}

		switch code {
		case Obfuscated:
			cur.obfuscated = true
		case Bold:
			cur.bold = true
		case Strikethrough:
			cur.strikethrough = true
		case Underline:
			cur.underlined = true
		case Italic:
			cur.italic = true
		case Reset:
			cur = style{}
		}
	}

	flush()

	return root
}

func urlStyle(s style) style {
	s.colour = "blue"
	s.underlined = true

	return s
}

func splitOnURLs(in string, s style) []Component {
	locations := urlRe.FindAllStringIndex(in, -1)
	if len(locations) == 0 {
		return []Component{s.apply(in)}
	}

	var (
		out    []Component
		curIdx = 0
	)

	for _, idxPair := range locations {
		if prefix := in[curIdx:idxPair[0]]; prefix != "" {
			out = append(out, s.apply(prefix))
		}

		url := in[idxPair[0]:idxPair[1]]
		link := urlStyle(s).apply(url)
		link.ClickEvent = &ClickEvent{Action: "open_url", Value: url}
		out = append(out, link)
		curIdx = idxPair[1]
	}

	if curIdx < len(in) {
		out = append(out, s.apply(in[curIdx:]))
	}

	return out
}

// ToLegacy renders the given Component as legacy coded text using the given marker. Click events cannot be expressed
// and are dropped. For components created by FromLegacy, ToLegacy produces the shortest equivalent text
func ToLegacy(c Component, marker rune) string {
	out := strings.Builder{}
	last := style{}
	writeLegacy(&out, &c, style{}, &last, marker)

	return out.String()
}

func writeCode(out *strings.Builder, marker, code rune) {
	out.WriteRune(marker)
	out.WriteRune(code)
}

func (s style) flags() [5]bool {
	return [5]bool{s.obfuscated, s.bold, s.strikethrough, s.underlined, s.italic}
}

var flagCodes = [5]rune{Obfuscated, Bold, Strikethrough, Underline, Italic}

// covers returns whether or not s can be reached from other by only adding formatting codes
func (s style) covers(other style) bool {
	if s.colour != other.colour {
		return false
	}

	have := s.flags()
	for i, set := range other.flags() {
		if set && !have[i] {
			return false
		}
	}

	return true
}

func writeLegacy(out *strings.Builder, c *Component, parent style, last *style, marker rune) {
	s := parent.inherit(c)
	if c.Text != "" && s != *last {
		base := *last
		if !s.covers(*last) {
			base = style{colour: s.colour}

			if col, ok := ColourByName(s.colour); ok {
				writeCode(out, marker, col.Code)
			} else {
				base.colour = ""
				writeCode(out, marker, Reset)
			}
		}

		had := base.flags()
		for i, set := range s.flags() {
			if set && !had[i] {
				writeCode(out, marker, flagCodes[i])
			}
		}

		*last = s
	}

	out.WriteString(c.Text)

	for i := range c.Extra {
		writeLegacy(out, &c.Extra[i], s, last, marker)
	}
}

// JSON renders the Component as Minecraft raw JSON text. A root with no formatting and only one child is collapsed
// into that child
func (c Component) JSON() (string, error) {
	toMarshal := c
	if c.Text == "" && !c.hasFormatting() && len(c.Extra) == 1 {
		toMarshal = c.Extra[0]
	}

	res, err := json.Marshal(toMarshal)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

// Plain returns the text of the component and all of its children with no styling
func (c Component) Plain() string {
	out := strings.Builder{}
	c.writePlain(&out)

	return out.String()
}

func (c *Component) writePlain(out *strings.Builder) {
	out.WriteString(c.Text)

	for i := range c.Extra {
		c.Extra[i].writePlain(out)
	}
}
