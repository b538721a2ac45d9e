package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gantt/internal/gantt"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chart component version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "gantt "+gantt.Version)
			return err
		},
	}
}
