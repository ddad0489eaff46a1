package grid

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LIGHTNESS_THRESHOLD is the CIE L* value above which dark text is more readable than light text
const LIGHTNESS_THRESHOLD = 0.6

type Color struct {
	R, G, B uint8
}

func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func (c Color) Hex() string {
	return c.Colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// Light reports whether the color is light enough that labels on it should be drawn dark
func (c Color) Light() bool {
	l, _, _ := c.Colorful().Lab()
	return l > LIGHTNESS_THRESHOLD
}

// ParseColor accepts "#rgb", "#rrggbb" and the "rgb(r, g, b)" form that browsers report for inline styles
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		var r, g, b int
		inner := strings.ReplaceAll(s[len("rgb("):len(s)-1], " ", "")
		if _, err := fmt.Sscanf(inner, "%d,%d,%d", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("Invalid color '%s': %w", s, err)
		}
		for _, v := range []int{r, g, b} {
			if v < 0 || v > 255 {
				return Color{}, fmt.Errorf("Invalid color '%s': component out of range", s)
			}
		}
		return Color{uint8(r), uint8(g), uint8(b)}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("Invalid color '%s': %w", s, err)
	}
	return FromColorful(c), nil
}
