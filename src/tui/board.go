package tui

import (
	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/Zaphoood/boxgrid/src/util"
	"github.com/charmbracelet/lipgloss"
)

/* The board draws the grid and translates terminal coordinates back into cells */

const (
	CELL_WIDTH  = 8
	CELL_HEIGHT = 3
	// Every cell has a border of width one on each side
	CELL_OUTER_WIDTH  = CELL_WIDTH + 2
	CELL_OUTER_HEIGHT = CELL_HEIGHT + 2
	HEADER_HEIGHT     = 1

	EMPTY_GRID_PLACEHOLDER = "(No rows. Press 'a' to add one)"
)

var (
	borderColor      = lipgloss.Color("#585858")
	cursorColor      = lipgloss.Color("#9dcbf4")
	dropTargetColor  = lipgloss.Color("#f4c89d")
	darkLabelColor   = lipgloss.Color("#1c1c1c")
	lightLabelColor  = lipgloss.Color("#f5f5f5")
	headerStyle      = lipgloss.NewStyle().Bold(true)
	placeholderStyle = lipgloss.NewStyle().Faint(true)

	cellStyle = lipgloss.NewStyle().
			Width(CELL_WIDTH).
			Height(CELL_HEIGHT).
			AlignHorizontal(lipgloss.Center).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)
)

type Board struct {
	cursor grid.Position
	// Board position in the terminal, used for mouse hit tests
	offsetX int
	offsetY int
}

func NewBoard() Board {
	return Board{offsetY: HEADER_HEIGHT}
}

func (b *Board) MoveCursor(s grid.Surface, dRow, dCol int) {
	b.cursor.Row += dRow
	b.cursor.Col += dCol
	b.ClampCursor(s)
}

func (b *Board) SetCursor(s grid.Surface, pos grid.Position) {
	b.cursor = pos
	b.ClampCursor(s)
}

// ClampCursor keeps the cursor inside the grid, e.g. after a row was removed
func (b *Board) ClampCursor(s grid.Surface) {
	b.cursor.Row = util.Clamp(b.cursor.Row, 0, s.RowCount()-1)
	b.cursor.Col = util.Clamp(b.cursor.Col, 0, s.ColumnCount()-1)
}

func (b Board) Cursor() grid.Position {
	return b.cursor
}

// CellAt returns the cell under the terminal coordinates x and y
func (b Board) CellAt(s grid.Surface, x, y int) (grid.Position, bool) {
	x -= b.offsetX
	y -= b.offsetY
	if x < 0 || y < 0 {
		return grid.Position{}, false
	}
	pos := grid.Position{Row: y / CELL_OUTER_HEIGHT, Col: x / CELL_OUTER_WIDTH}
	if pos.Row >= s.RowCount() || pos.Col >= s.ColumnCount() {
		return grid.Position{}, false
	}
	return pos, true
}

// View renders the grid. dragged is the box being dragged, or grid.NoBox
func (b Board) View(s grid.Surface, dragged grid.BoxID) string {
	if s.RowCount() == 0 {
		return placeholderStyle.Render(EMPTY_GRID_PLACEHOLDER)
	}
	rows := make([]string, 0, s.RowCount())
	for row := 0; row < s.RowCount(); row++ {
		cells := make([]string, 0, s.ColumnCount())
		for col := 0; col < s.ColumnCount(); col++ {
			cell, err := s.GetCell(row, col)
			if err != nil {
				cells = append(cells, cellStyle.Render(""))
				continue
			}
			cells = append(cells, b.renderCell(cell, dragged))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b Board) renderCell(cell grid.Cell, dragged grid.BoxID) string {
	style := cellStyle.Copy()
	if cell.Position == b.cursor {
		if dragged != grid.NoBox {
			style = style.BorderForeground(dropTargetColor)
		} else {
			style = style.BorderForeground(cursorColor)
		}
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	if cell.Empty() {
		return style.Render("")
	}

	box := cell.Occupant
	labelColor := lightLabelColor
	if box.Color.Light() {
		labelColor = darkLabelColor
	}
	style = style.
		Background(lipgloss.Color(box.Color.Hex())).
		Foreground(labelColor)
	if box.ID == dragged {
		style = style.Faint(true)
	}
	return style.Render("\n" + truncate(box.Label, CELL_WIDTH))
}
