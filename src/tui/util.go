package tui

import (
	"errors"
	"fmt"

	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/charmbracelet/lipgloss"
)

// Modulo that works properly with negative numbers
func mod(a, b int) int {
	return ((a % b) + b) % b
}

func centerInWindow(text string, windowWidth, windowHeight int) string {
	return lipgloss.Place(windowWidth, windowHeight, lipgloss.Center, lipgloss.Center, text)
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// errorMessage turns an error from the editor into a status line message
func errorMessage(err error) string {
	var stale grid.StaleReference
	if errors.As(err, &stale) {
		return fmt.Sprintf("%s. Nothing changed.", err)
	}
	return fmt.Sprintf("Error: %s", err)
}
