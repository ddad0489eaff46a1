package grid

import "fmt"

// StaleReference is returned when a box id no longer refers to a box in the grid.
// The mutation that ran into it must leave grid and history untouched
type StaleReference struct {
	ID BoxID
}

func (e StaleReference) Error() string {
	return fmt.Sprintf("Box '%s' no longer exists", e.ID)
}

// InvariantViolation means the grid got into a state that correct usage never produces,
// e.g. rows of different length
type InvariantViolation struct {
	Reason string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("Invariant violated: %s", e.Reason)
}

type OutOfRange struct {
	Row int
	Col int
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf("Cell (%d, %d) is out of range", e.Row, e.Col)
}
