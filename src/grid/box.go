package grid

import "fmt"

// BoxID identifies a box for the lifetime of a grid. The zero value means "no box"
type BoxID uint64

const NoBox BoxID = 0

func (id BoxID) String() string {
	return fmt.Sprintf("box%d", id)
}

type Box struct {
	ID    BoxID
	Label string
	Color Color
}

// Content is the part of a box that is visible to the user. Swaps exchange
// content, never ids
func (b Box) Content() Content {
	return Content{Label: b.Label, Color: b.Color}
}

func (b Box) WithContent(c Content) Box {
	b.Label = c.Label
	b.Color = c.Color
	return b
}

type Content struct {
	Label string
	Color Color
}

type Position struct {
	Row int
	Col int
}

// String formats the position 1-based, the way it is shown to users
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row+1, p.Col+1)
}

// Cell is a grid position together with its occupant. A nil occupant means the cell is empty
type Cell struct {
	Position
	Occupant *Box
}

func (c Cell) Empty() bool {
	return c.Occupant == nil
}
