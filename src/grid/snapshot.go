package grid

import "fmt"

// Snapshot is the full visible state of a grid: rows of optional content.
// Box ids are not part of a snapshot
type Snapshot [][]*Content

func Capture(s Surface) Snapshot {
	snapshot := make(Snapshot, s.RowCount())
	for row := range snapshot {
		snapshot[row] = make([]*Content, s.ColumnCount())
		for col := range snapshot[row] {
			cell, err := s.GetCell(row, col)
			if err != nil || cell.Occupant == nil {
				continue
			}
			content := cell.Occupant.Content()
			snapshot[row][col] = &content
		}
	}
	return snapshot
}

func (s Snapshot) RowCount() int {
	return len(s)
}

func (s Snapshot) ColumnCount() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Validate checks that the snapshot is rectangular and has no empty rows
func (s Snapshot) Validate() error {
	for i, row := range s {
		if len(row) == 0 {
			return InvariantViolation{fmt.Sprintf("Row %d of snapshot is empty", i)}
		}
		if len(row) != len(s[0]) {
			return InvariantViolation{fmt.Sprintf("Row %d of snapshot has %d cells, expected %d", i, len(row), len(s[0]))}
		}
	}
	return nil
}

// Get returns the content at a position, nil for empty or out of range cells
func (s Snapshot) Get(row, col int) *Content {
	if row < 0 || row >= len(s) || col < 0 || col >= len(s[row]) {
		return nil
	}
	return s[row][col]
}
