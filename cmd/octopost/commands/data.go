package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data [kinds...]",
		Short: "Print the merged time series of one or more output kinds",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Query(cmd.Context(), args, optionsFromFlags(cmd))
		},
	}
	addSeriesFlags(cmd)
	cmd.Flags().Bool("csv", false, "Emit comma-separated values instead of an aligned table")
	return cmd
}
