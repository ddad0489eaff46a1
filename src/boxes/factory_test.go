package boxes

import (
	"math/rand"
	"testing"

	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/Zaphoood/boxgrid/src/util/set"
	"github.com/stretchr/testify/assert"
)

func TestCounterLabeler(t *testing.T) {
	assert := assert.New(t)
	l := NewCounterLabeler(DEFAULT_COUNTER_BASE)

	assert.Equal("1000", l.NextLabel(nil))
	// Present labels are ignored, even colliding ones
	assert.Equal("1001", l.NextLabel([]string{"1001", "5000"}))
	assert.Equal("1002", l.NextLabel(nil))
}

func TestCounterLabelerSkip(t *testing.T) {
	assert := assert.New(t)
	l := NewCounterLabeler(DEFAULT_COUNTER_BASE)

	l.Skip([]string{"1000", "A", "1002", "1001"})
	assert.Equal("1003", l.NextLabel(nil))
	// Labels below the counter do not move it back
	l.Skip([]string{"5", "1001"})
	assert.Equal("1004", l.NextLabel(nil))
	l.Skip([]string{"foo"})
	assert.Equal("1005", l.NextLabel(nil))
}

func TestScanLabeler(t *testing.T) {
	assert := assert.New(t)
	l := NewScanLabeler(DEFAULT_SCAN_BASE, DEFAULT_SCAN_STEP)

	assert.Equal("200", l.NextLabel(nil))
	assert.Equal("200", l.NextLabel([]string{"50", "foo"}))
	assert.Equal("450", l.NextLabel([]string{"200", " 350 ", "box1000", "300"}))

	// A non-positive step falls back to the default
	assert.Equal("200", NewScanLabeler(100, 0).NextLabel(nil))
}

func TestNewBoxesAreUnique(t *testing.T) {
	assert := assert.New(t)
	for _, labeler := range []Labeler{NewCounterLabeler(1000), NewScanLabeler(100, 100)} {
		f := NewFactory(labeler, PaletteUniform, rand.New(rand.NewSource(7)))
		created := f.NewBoxes(3, []string{"300"})

		labels := set.New("300")
		ids := set.New[grid.BoxID]()
		for _, box := range created {
			assert.False(labels.Contains(box.Label), "Label %s handed out twice", box.Label)
			assert.False(ids.Contains(box.ID))
			labels.Insert(box.Label)
			ids.Insert(box.ID)
		}
	}
}

func TestScanLabelsInRow(t *testing.T) {
	f := NewFactory(NewScanLabeler(100, 100), PaletteUniform, nil)
	created := f.NewBoxes(3, []string{"200", "300", "400"})
	labels := []string{}
	for _, b := range created {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"500", "600", "700"}, labels)
}

func TestMintIssuesMonotonicIDs(t *testing.T) {
	assert := assert.New(t)
	f := NewFactory(NewCounterLabeler(0), PaletteUniform, nil)

	a := f.NewBox(nil)
	b := f.Mint(grid.Content{Label: "x"})
	c := f.NewBox(nil)
	assert.Equal(grid.BoxID(1), a.ID)
	assert.True(a.ID < b.ID && b.ID < c.ID)
	assert.Equal("x", b.Label)
}

func TestRandomColorIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	for _, palette := range []Palette{PaletteUniform, PaletteHappy} {
		f1 := NewFactory(NewCounterLabeler(0), palette, rand.New(rand.NewSource(42)))
		f2 := NewFactory(NewCounterLabeler(0), palette, rand.New(rand.NewSource(42)))
		for i := 0; i < 10; i++ {
			assert.Equal(f1.RandomColor(), f2.RandomColor())
		}
	}
}
