// Package commands implements the CLI commands for octopost.
package commands

import (
	"context"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/kaufmann-jan/octopost/internal/app"
)

// CLI represents the command line interface for octopost.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Query(ctx context.Context, kindNames []string, opts app.RunOptions) error
	Fields(ctx context.Context, kindName string, opts app.RunOptions) error
	Watch(ctx context.Context, kindName string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "octopost",
		Short:         "Read OpenFOAM post-processing time series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("case", "c", "", "Case directory (defaults to the working directory)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newDataCmd())
	rootCmd.AddCommand(c.newFieldsCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addSeriesFlags registers the flags shared by every series-reading
// command.
func addSeriesFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("tmin", math.Inf(-1), "Lower inclusive time bound")
	cmd.Flags().Float64("tmax", math.Inf(1), "Upper inclusive time bound")
	cmd.Flags().String("dir", "", "Override the kind's directory under postProcessing")
	cmd.Flags().String("file", "", "Override the data file name inside each time directory")
	cmd.Flags().String("object", "", "Sub-object name (required for rigidBodyState)")
	cmd.Flags().Bool("content-fingerprint", false, "Hash file contents for change detection")
	cmd.Flags().Bool("absolute-cog", false, "Keep rigid-body positions in absolute coordinates")
}

// optionsFromFlags collects the shared flags into RunOptions.
func optionsFromFlags(cmd *cobra.Command) app.RunOptions {
	caseDir, _ := cmd.Flags().GetString("case")
	tmin, _ := cmd.Flags().GetFloat64("tmin")
	tmax, _ := cmd.Flags().GetFloat64("tmax")
	dir, _ := cmd.Flags().GetString("dir")
	file, _ := cmd.Flags().GetString("file")
	object, _ := cmd.Flags().GetString("object")
	csv, _ := cmd.Flags().GetBool("csv")
	contentSum, _ := cmd.Flags().GetBool("content-fingerprint")
	absoluteCoG, _ := cmd.Flags().GetBool("absolute-cog")

	return app.RunOptions{
		CaseDir:     caseDir,
		Dir:         dir,
		File:        file,
		Object:      object,
		TMin:        tmin,
		TMax:        tmax,
		CSV:         csv,
		ContentSum:  contentSum,
		AbsoluteCoG: absoluteCoG,
	}
}
