package render

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Shade picks the outline tint of a platform.
type Shade uint8

const (
	ShadeMedium Shade = iota
	ShadeLight
	ShadeDark
)

var (
	// DefaultColor is used for unknown colour tokens.
	DefaultColor = colornames.Gray

	shadeOutlines = map[Shade]color.RGBA{
		ShadeLight:  colornames.Tan,
		ShadeMedium: colornames.Sienna,
		ShadeDark:   colornames.Saddlebrown,
	}
)

// ParseShade maps a shade key to a Shade. Unknown keys fall back to medium.
func ParseShade(key string) Shade {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "light", "tan":
		return ShadeLight
	case "dark", "darkbrown":
		return ShadeDark
	default:
		return ShadeMedium
	}
}

func (s Shade) Outline() color.RGBA {
	return shadeOutlines[s]
}

// Appearance is a parsed appearance token of the form "colour" or
// "colour:shade".
type Appearance struct {
	Fill  color.RGBA
	Shade Shade
	Known bool
}

// ParseAppearance resolves a token against the CSS colour names. Unknown
// colours use DefaultColor; a missing shade is derived from the colour name
// when it is itself a shade key.
func ParseAppearance(token string) Appearance {
	name, shade, hasShade := strings.Cut(strings.TrimSpace(token), ":")
	name = strings.ToLower(strings.TrimSpace(name))

	a := Appearance{Fill: DefaultColor}
	if c, ok := colornames.Map[name]; ok {
		a.Fill = c
		a.Known = true
	}
	if hasShade {
		a.Shade = ParseShade(shade)
	} else {
		a.Shade = ParseShade(name)
	}
	return a
}

// Palette caches parsed tokens for the draw pass.
type Palette struct {
	cache map[string]Appearance
}

func NewPalette() *Palette {
	return &Palette{cache: make(map[string]Appearance)}
}

func (p *Palette) Lookup(token string) Appearance {
	if p == nil {
		return ParseAppearance(token)
	}
	if a, ok := p.cache[token]; ok {
		return a
	}
	a := ParseAppearance(token)
	p.cache[token] = a
	return a
}
