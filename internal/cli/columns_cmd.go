package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/render"
)

func newColumnsCmd(app *App) *cobra.Command {
	var (
		view  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "columns FILE",
		Short: "Print the time axis columns of a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, formatter.Dim("range: "+formatter.FormatRange(c.DateRange()))); err != nil {
				return err
			}
			_, err = fmt.Fprint(out, formatter.FormatColumns(c.Axis(), limit))
			return err
		},
	}
	cmd.Flags().StringVar(&view, "view", "", "view mode override: hour, day, week or month")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many columns")
	return cmd
}
