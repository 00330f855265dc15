package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ndarilek/tma/internal/config"
	"github.com/ndarilek/tma/internal/tmux"
	"github.com/ndarilek/tma/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Browse running sessions, attach or kill them",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		runners, err := allRunners(settings)
		if err != nil {
			return err
		}

		for {
			m := tui.NewModel(runners)
			p := tea.NewProgram(m, tea.WithAltScreen())

			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}

			final := finalModel.(tui.Model)
			if final.AttachTarget == "" {
				break
			}

			// Attach as child process; returns when user detaches,
			// then the picker restarts
			r := runnerFor(runners, final.AttachHost)
			_ = r.Interactive(tmux.Attach(final.AttachTarget)...)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
