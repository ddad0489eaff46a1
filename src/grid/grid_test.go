package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(id BoxID, label string) *Box {
	return &Box{ID: id, Label: label, Color: Color{10, 20, 30}}
}

func TestInsertAndRemoveRow(t *testing.T) {
	assert := assert.New(t)
	g := New()

	assert.Equal(0, g.RowCount())
	assert.Equal(0, g.ColumnCount())

	index, err := g.InsertRow([]*Box{box(1, "a"), box(2, "b"), nil})
	require.Nil(t, err)
	assert.Equal(0, index)
	assert.Equal(3, g.ColumnCount())

	_, err = g.InsertRow([]*Box{box(3, "c")})
	_, ok := err.(InvariantViolation)
	assert.True(ok, "Inserting a short row must violate the rectangular invariant")
	assert.Equal(1, g.RowCount())

	_, err = g.InsertRow(nil)
	assert.NotNil(err)

	index, err = g.InsertRow([]*Box{box(3, "c"), box(4, "d"), box(5, "e")})
	require.Nil(t, err)
	assert.Equal(1, index)

	assert.Nil(g.RemoveRow(0))
	assert.Equal(1, g.RowCount())
	cell, err := g.GetCell(0, 0)
	require.Nil(t, err)
	assert.Equal("c", cell.Occupant.Label)

	assert.NotNil(g.RemoveRow(5))
	assert.Nil(g.RemoveRow(0))
	assert.Equal(0, g.ColumnCount())
}

func TestGetCellReturnsCopy(t *testing.T) {
	assert := assert.New(t)
	g := New()
	original := box(1, "a")
	_, err := g.InsertRow([]*Box{original})
	require.Nil(t, err)

	original.Label = "changed"
	cell, _ := g.GetCell(0, 0)
	assert.Equal("a", cell.Occupant.Label)

	cell.Occupant.Label = "changed"
	cell, _ = g.GetCell(0, 0)
	assert.Equal("a", cell.Occupant.Label)
}

func TestSetCellOccupant(t *testing.T) {
	assert := assert.New(t)
	g := New()
	_, err := g.InsertRow([]*Box{box(1, "a"), nil})
	require.Nil(t, err)

	assert.Nil(g.SetCellOccupant(0, 1, box(2, "b")))
	assert.Nil(g.SetCellOccupant(0, 0, nil))
	cell, _ := g.GetCell(0, 0)
	assert.True(cell.Empty())
	cell, _ = g.GetCell(0, 1)
	assert.Equal(BoxID(2), cell.Occupant.ID)
	assert.Equal(Position{0, 1}, cell.Position)

	assert.Equal(OutOfRange{0, 2}, g.SetCellOccupant(0, 2, nil))
	_, err = g.GetCell(-1, 0)
	assert.NotNil(err)
}

func TestFindAndLabels(t *testing.T) {
	assert := assert.New(t)
	g := New()
	g.InsertRow([]*Box{box(1, "a"), nil})
	g.InsertRow([]*Box{box(2, "b"), box(3, "c")})

	cell, ok := Find(g, 3)
	assert.True(ok)
	assert.Equal(Position{1, 1}, cell.Position)

	_, ok = Find(g, 7)
	assert.False(ok)
	_, ok = Find(g, NoBox)
	assert.False(ok)

	assert.Equal([]string{"a", "b", "c"}, Labels(g))
}

func TestCheck(t *testing.T) {
	assert := assert.New(t)
	g := New()
	g.InsertRow([]*Box{box(1, "a"), box(2, "b")})
	assert.Nil(Check(g))

	g.SetCellOccupant(0, 1, box(1, "dup"))
	err := Check(g)
	_, ok := err.(InvariantViolation)
	assert.True(ok)
}

func TestCaptureAndValidate(t *testing.T) {
	assert := assert.New(t)
	g := New()
	g.InsertRow([]*Box{box(1, "a"), nil})

	snapshot := Capture(g)
	assert.Equal(1, snapshot.RowCount())
	assert.Equal(2, snapshot.ColumnCount())
	assert.Equal("a", snapshot.Get(0, 0).Label)
	assert.Nil(snapshot.Get(0, 1))
	assert.Nil(snapshot.Get(3, 3))
	assert.Nil(snapshot.Validate())

	// Changing the grid must not change the snapshot
	g.SetCellOccupant(0, 0, box(1, "z"))
	assert.Equal("a", snapshot.Get(0, 0).Label)

	ragged := Snapshot{{nil, nil}, {nil}}
	assert.NotNil(ragged.Validate())
	assert.NotNil(Snapshot{{}}.Validate())
}

func TestColor(t *testing.T) {
	assert := assert.New(t)

	c, err := ParseColor("#ff8800")
	if assert.Nil(err) {
		assert.Equal(Color{255, 136, 0}, c)
		assert.Equal("#ff8800", c.Hex())
	}

	c, err = ParseColor("#fff")
	if assert.Nil(err) {
		assert.Equal(Color{255, 255, 255}, c)
	}

	c, err = ParseColor(" rgb(1, 2, 3) ")
	if assert.Nil(err) {
		assert.Equal(Color{1, 2, 3}, c)
	}

	_, err = ParseColor("rgb(1, 2, 300)")
	assert.NotNil(err)
	_, err = ParseColor("red")
	assert.NotNil(err)

	assert.True(Color{255, 255, 255}.Light())
	assert.False(Color{0, 0, 0}.Light())

	// Every 8-bit color survives the trip through go-colorful
	for _, v := range []uint8{0, 1, 127, 128, 254, 255} {
		c := Color{v, 255 - v, v / 2}
		assert.Equal(c, FromColorful(c.Colorful()))
	}
}

func TestBoxContent(t *testing.T) {
	assert := assert.New(t)
	b := Box{ID: 4, Label: "x", Color: Color{1, 1, 1}}
	moved := b.WithContent(Content{"y", Color{2, 2, 2}})
	assert.Equal(BoxID(4), moved.ID)
	assert.Equal("y", moved.Label)
	assert.Equal("box4", moved.ID.String())
	assert.Equal(Content{"x", Color{1, 1, 1}}, b.Content())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(1, 3)", Position{Row: 0, Col: 2}.String())
}
