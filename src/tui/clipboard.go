package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

func initClipboard() error {
	return clipboard.Init()
}

func copyToClipboard(value string) tea.Cmd {
	clipboard.Write(clipboard.FmtText, []byte(value))
	return setMessageCmd(fmt.Sprintf("Copied '%s' to clipboard.", value))
}
