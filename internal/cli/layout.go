package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/pipeline"
)

// layoutCommand creates the layout command: day file → layout JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  dayFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [day-file|url]",
		Short: "Compute the grid layout of a day as JSON",
		Long: `Compute the grid layout of a day as JSON.

The output lists every hour label, divider and visible event with its
pixel rectangle and column span, plus the grid metrics that produced them.
It is the same document as 'render -f json' and the API's /api/layout.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := c.dayOptions(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatJSON}
			if err := c.runRender(cmd.Context(), cmd.OutOrStdout(), cfg.Cache, opts, output, flags.noCache, "Layout"); err != nil {
				return err
			}
			if output != stdoutPath {
				printNewline()
				printNextStep("Inspect columns", appName+" pack "+args[0])
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json); - for stdout")

	return cmd
}
