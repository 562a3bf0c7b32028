package main

import (
	"fmt"

	"arcade/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// options holds the command-line flags shared by every command.
type options struct {
	ConfigFile string
	Verbose    bool
	History    string
	Path       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "arcade",
		Short: "Guess-the-number arcade for the terminal",
		Long: "arcade is a small terminal game. Pages are bound to paths; the top line\n" +
			"works like a browser address bar with back and forward history.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to config.toml (default <data dir>/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "History mode override: web or hash")
	cmd.Flags().StringVarP(&opts.Path, "path", "p", "", "Start location, as typed into the address bar")

	cmd.AddCommand(newRoutesCmd(opts))
	return cmd
}

func runApp(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	a, err := boot(ctx, opts)
	if err != nil {
		return err
	}
	defer a.shutdown(ctx)

	if err := a.start(ctx, opts.Path); err != nil {
		return err
	}

	model := ui.NewAppModel(a.router, a.links, a.log).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
