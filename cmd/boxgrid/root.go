package main

import (
	"io"
	"log"
	"strings"

	"github.com/Zaphoood/boxgrid/src/config"
	"github.com/Zaphoood/boxgrid/src/editor"
	"github.com/Zaphoood/boxgrid/src/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath   string
	columns      int
	rows         int
	history      string
	historyLimit int
	labels       string
	labelBase    int
	labelStep    int
	palette      string
	logFile      string
	clipboard    bool
	strict       bool
	seed         int64
}

func newRootCmd() (*cobra.Command, *flags) {
	f := &flags{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "boxgrid [LAYOUT]",
		Short:         "Rearrange a grid of colored boxes by dragging them around",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start with three rows of random boxes
  boxgrid

  # Start from a table in an XHTML file and record snapshots instead of commands
  boxgrid --history snapshot layout.xhtml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f, args)
			if err != nil {
				return err
			}
			if len(c.LogFile) > 0 {
				logFile, err := tea.LogToFile(c.LogFile, "boxgrid")
				if err != nil {
					return err
				}
				defer logFile.Close()
			} else {
				log.SetOutput(io.Discard)
			}
			session, err := editor.FromConfig(c)
			if err != nil {
				return err
			}
			return tui.Run(session, c.Clipboard)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default: boxgrid/config.yaml in the user config directory)")
	cmd.Flags().IntVar(&f.columns, "columns", defaults.Columns, "Number of columns when the grid is empty")
	cmd.Flags().IntVar(&f.rows, "rows", defaults.Rows, "Number of rows created at startup")
	cmd.Flags().StringVar(&f.history, "history", defaults.History, "History design: log or snapshot")
	cmd.Flags().IntVar(&f.historyLimit, "history-limit", defaults.HistoryLimit, "Maximum number of undo steps, 0 for no limit")
	cmd.Flags().StringVar(&f.labels, "labels", defaults.Labels, "Label policy: counter or scan")
	cmd.Flags().IntVar(&f.labelBase, "label-base", defaults.LabelBase, "Lowest label number")
	cmd.Flags().IntVar(&f.labelStep, "label-step", defaults.LabelStep, "Distance between labels of the scan policy")
	cmd.Flags().StringVar(&f.palette, "palette", defaults.Palette, "Box colors: uniform or happy")
	cmd.Flags().StringVar(&f.logFile, "log", defaults.LogFile, "Write log messages to this file")
	cmd.Flags().BoolVar(&f.clipboard, "clipboard", defaults.Clipboard, "Use the system clipboard")
	cmd.Flags().BoolVar(&f.strict, "strict", defaults.Strict, "Panic when the grid becomes inconsistent")
	cmd.Flags().Int64Var(&f.seed, "seed", defaults.Seed, "Seed for box colors, 0 to seed from the clock")

	return cmd, f
}

// loadConfig reads the config file and applies the flags that were given on the command line
func loadConfig(cmd *cobra.Command, f *flags, args []string) (config.Config, error) {
	path := f.configPath
	required := true
	if len(path) == 0 {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.Printf("ERROR: Failed to find config directory: %s\n", err)
		}
		required = false
	}
	c := config.Default()
	if len(path) > 0 {
		var err error
		if c, err = config.Load(path, required); err != nil {
			return c, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("columns") {
		c.Columns = f.columns
	}
	if changed("rows") {
		c.Rows = f.rows
	}
	if changed("history") {
		c.History = f.history
	}
	if changed("history-limit") {
		c.HistoryLimit = f.historyLimit
	}
	if changed("labels") {
		// Switching the policy on the command line also switches its defaults
		if f.labels == config.LABELS_SCAN && c.Labels != config.LABELS_SCAN {
			c.LabelBase = 100
			c.LabelStep = 100
		}
		c.Labels = f.labels
	}
	if changed("label-base") {
		c.LabelBase = f.labelBase
	}
	if changed("label-step") {
		c.LabelStep = f.labelStep
	}
	if changed("palette") {
		c.Palette = f.palette
	}
	if changed("log") {
		c.LogFile = f.logFile
	}
	if changed("clipboard") {
		c.Clipboard = f.clipboard
	}
	if changed("strict") {
		c.Strict = f.strict
	}
	if changed("seed") {
		c.Seed = f.seed
	}
	if len(args) > 0 {
		c.Layout = args[0]
	}
	return c, c.Validate()
}
