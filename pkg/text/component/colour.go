package component

import (
	"image/color" //nolint:misspell // I dont control others' package names
)

// Colour is one of the sixteen legacy chat colours
type Colour struct {
	Code rune       // The legacy code for this colour, 0-9 a-f
	Name string     // The name used in JSON text
	RGBA color.RGBA // What the client renders this colour as
}

// Colours holds every legacy colour, indexed by its code's value
var Colours = [...]Colour{
	{'0', "black", color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}},
	{'1', "dark_blue", color.RGBA{R: 0x00, G: 0x00, B: 0xAA, A: 0xFF}},
	{'2', "dark_green", color.RGBA{R: 0x00, G: 0xAA, B: 0x00, A: 0xFF}},
	{'3', "dark_aqua", color.RGBA{R: 0x00, G: 0xAA, B: 0xAA, A: 0xFF}},
	{'4', "dark_red", color.RGBA{R: 0xAA, G: 0x00, B: 0x00, A: 0xFF}},
	{'5', "dark_purple", color.RGBA{R: 0xAA, G: 0x00, B: 0xAA, A: 0xFF}},
	{'6', "gold", color.RGBA{R: 0xFF, G: 0xAA, B: 0x00, A: 0xFF}},
	{'7', "gray", color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}}, //nolint:misspell // the client spells it this way
	{'8', "dark_gray", color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}},
	{'9', "blue", color.RGBA{R: 0x55, G: 0x55, B: 0xFF, A: 0xFF}},
	{'a', "green", color.RGBA{R: 0x55, G: 0xFF, B: 0x55, A: 0xFF}},
	{'b', "aqua", color.RGBA{R: 0x55, G: 0xFF, B: 0xFF, A: 0xFF}},
	{'c', "red", color.RGBA{R: 0xFF, G: 0x55, B: 0x55, A: 0xFF}},
	{'d', "light_purple", color.RGBA{R: 0xFF, G: 0x55, B: 0xFF, A: 0xFF}},
	{'e', "yellow", color.RGBA{R: 0xFF, G: 0xFF, B: 0x55, A: 0xFF}},
	{'f', "white", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
}

// ColourByCode returns the colour with the given legacy code. The code is case insensitive
func ColourByCode(code rune) (Colour, bool) {
	switch {
	case code >= '0' && code <= '9':
		return Colours[code-'0'], true
	case code >= 'a' && code <= 'f':
		return Colours[code-'a'+10], true
	case code >= 'A' && code <= 'F':
		return Colours[code-'A'+10], true
	}

	return Colour{}, false
}

// ColourByName returns the colour with the given JSON name
func ColourByName(name string) (Colour, bool) {
	for _, c := range Colours {
		if c.Name == name {
			return c, true
		}
	}

	return Colour{}, false
}
