package boxes

import (
	"math/rand"

	"github.com/Zaphoood/boxgrid/src/grid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Palette int

const (
	// PaletteUniform draws every RGB value with equal probability
	PaletteUniform Palette = iota
	// PaletteHappy draws a random hue with moderate saturation and brightness
	PaletteHappy
)

// Factory creates boxes. It does not place them; that is up to the caller.
// Colors are not unique, only labels are
type Factory struct {
	labeler Labeler
	palette Palette
	rand    *rand.Rand
	// id of the last box created
	lastID grid.BoxID
}

func NewFactory(labeler Labeler, palette Palette, r *rand.Rand) *Factory {
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	return &Factory{labeler: labeler, palette: palette, rand: r}
}

// NewBox creates a box with a fresh id, a label chosen by the labeler and a random color
func (f *Factory) NewBox(present []string) grid.Box {
	return f.Mint(grid.Content{
		Label: f.labeler.NextLabel(present),
		Color: f.RandomColor(),
	})
}

// NewBoxes creates n boxes whose labels are distinct from present and from each other
func (f *Factory) NewBoxes(n int, present []string) []grid.Box {
	labels := append([]string{}, present...)
	boxes := make([]grid.Box, 0, n)
	for i := 0; i < n; i++ {
		box := f.NewBox(labels)
		labels = append(labels, box.Label)
		boxes = append(boxes, box)
	}
	return boxes
}

// Mint creates a box with a fresh id for given content
func (f *Factory) Mint(content grid.Content) grid.Box {
	f.lastID++
	return grid.Box{ID: f.lastID, Label: content.Label, Color: content.Color}
}

func (f *Factory) RandomColor() grid.Color {
	switch f.palette {
	case PaletteHappy:
		h := f.rand.Float64() * 360.0
		s := 0.5 + f.rand.Float64()*0.3
		v := 0.6 + f.rand.Float64()*0.3
		return grid.FromColorful(colorful.Hsv(h, s, v))
	default:
		return grid.Color{
			R: uint8(f.rand.Intn(256)),
			G: uint8(f.rand.Intn(256)),
			B: uint8(f.rand.Intn(256)),
		}
	}
}
