package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields <kind>",
		Short: "List the data columns available for an output kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Fields(cmd.Context(), args[0], optionsFromFlags(cmd))
		},
	}
	addSeriesFlags(cmd)
	return cmd
}
