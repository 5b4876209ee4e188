package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-enumerator/pkg/values"
)

type labelEntry struct {
	Label      string   `json:"label"`
	Transforms []string `json:"transforms"`
	KeyLookup  bool     `json:"keyLookup"`
}

func newLabelsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the attributes each template value answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := values.Catalog()
			if opts.jsonOutput {
				entries := make([]labelEntry, len(catalog))
				for i, entry := range catalog {
					entries[i] = labelEntry(entry)
				}
				enc := json.NewEncoder(opts.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(opts.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tATTRIBUTES\tKEY LOOKUP")
			for _, entry := range catalog {
				keys := "-"
				if entry.KeyLookup {
					keys = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Label, strings.Join(entry.Transforms, ", "), keys)
			}
			return tw.Flush()
		},
	}
}
