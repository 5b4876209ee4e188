package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	var eo expandOptions

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Render declarations and report diagnostics only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, bag, err := opts.expand(cmd.Context(), args[0], eo)
			if err != nil {
				return err
			}
			if err := opts.writeDiagnostics(bag); err != nil {
				return err
			}
			if !opts.jsonOutput {
				fmt.Fprintf(opts.stdout, "%d declarations checked, no errors\n", len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&eo.templatesDir, "templates", "t", "", "directory holding template files (defaults to the manifest directory)")
	cmd.Flags().StringSliceVar(&eo.only, "only", nil, "check only the named declarations")
	cmd.Flags().IntVar(&eo.concurrency, "concurrency", 4, "number of declarations rendered in parallel")

	return cmd
}
