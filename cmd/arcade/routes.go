package main

import (
	"fmt"

	"arcade/internal/router"
	"arcade/internal/screens"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newRoutesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the navigation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(opts, st.BaseDir())
			if err != nil {
				return err
			}
			table, err := screens.New(st).Table()
			if err != nil {
				return err
			}
			h := router.NewHistory(cfg.HistoryMode(), cfg.History.Base)

			out := newRoutesTable()
			for _, r := range table.Routes() {
				out.Row(r.Path, h.Format(r.Path), screens.Name(r.View))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Render())
			return err
		},
	}
}

// newRoutesTable is a borderless table so the listing stays greppable.
func newRoutesTable() *ltable.Table {
	return ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(1)
			if row == ltable.HeaderRow {
				return style.Bold(true)
			}
			return style
		}).
		Headers("PATH", "ADDRESS", "PAGE")
}
