package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/render"
)

func newRowsCmd(app *App) *cobra.Command {
	var collapseAll bool

	cmd := &cobra.Command{
		Use:   "rows FILE",
		Short: "Print the visible rows as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.openChart(args[0], &render.Recorder{}, app.Options)
			if err != nil {
				return err
			}
			defer c.Destroy()

			if collapseAll {
				c.CollapseAll()
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRows(c.VisibleRows(), c.IsCollapsed))
			return err
		},
	}
	cmd.Flags().BoolVar(&collapseAll, "collapse-all", false, "collapse every group first")
	return cmd
}
