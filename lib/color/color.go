package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	Empty = ""
	None  = "none"

	// DefaultFill is the fill of rendered shapes when none is given.
	DefaultFill = "#7FA7E0"
)

// Darken returns colorString with its lightness lowered by 10%.
// Gradients are darkened through their first stop.
func Darken(colorString string) (string, error) {
	if IsGradient(colorString) {
		g, err := ParseGradient(colorString)
		if err != nil {
			return "", err
		}
		colorString = g.FirstColor()
	}
	return darkenCSS(colorString)
}

func darkenCSS(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

// Parse returns the RGBA components of a CSS color, each in [0, 1].
func Parse(colorString string) (r, g, b, a float64, err error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return c.R, c.G, c.B, c.A, nil
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// Palette returns n hex colors spread evenly around the hue circle at a
// fixed chroma and lightness, so neighbouring entries stay distinguishable.
func Palette(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		h := 360 * float64(i) / float64(n)
		out = append(out, colorful.Hcl(h, 0.45, 0.72).Clamped().Hex())
	}
	return out
}
