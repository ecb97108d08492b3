package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <kind>",
		Short: "Follow an output kind of a running case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args[0], optionsFromFlags(cmd))
		},
	}
	addSeriesFlags(cmd)
	return cmd
}
