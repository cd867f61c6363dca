package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quellint/quellint/pkg/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List registered rule sources and their rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, name := range rules.SourceNames() {
				src := rules.LookupSource(name)
				if src == nil {
					continue
				}

				fmt.Fprintf(out, "%s (%d rules)\n", name, src.Len())
				for _, desc := range src.Descriptors() {
					if desc.RawName != "" {
						fmt.Fprintf(out, "  %s (raw name: %s)\n", desc.ID, desc.RawName)
					} else {
						fmt.Fprintf(out, "  %s\n", desc.ID)
					}
				}
			}
			return nil
		},
	}
}
