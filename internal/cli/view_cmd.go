package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/render"
)

var errNotInteractive = errors.New("the viewer needs an interactive terminal; use 'gantt render --format text' instead")

func newViewCmd(app *App) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Explore a chart interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errNotInteractive
			}
			c, err := app.openChart(args[0], &render.Recorder{}, app.Options)
			if err != nil {
				return err
			}
			defer c.Destroy()

			if view != "" {
				mode, err := domain.ParseViewMode(view)
				if err != nil {
					return err
				}
				if err := c.SetViewMode(mode); err != nil {
					return err
				}
			}

			m := newViewModel(c, app.Logger)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running viewer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "initial view mode: hour, day, week or month")
	return cmd
}
