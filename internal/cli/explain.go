package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/quellint/quellint/pkg/config"
	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/plugins"
	"github.com/quellint/quellint/pkg/rules"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <rule>",
		Short: "Show a rule's documentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			settings, err := config.Load(".")
			if err != nil {
				return err
			}

			desc, ok := plugins.Resolve(name, rules.RoleSuffix, rules.SearchPath(settings.SearchPath()...))
			if !ok {
				return errors.Newf(errors.ErrRuleNotFound, "rule '%s' not found", name)
			}

			// Construct with an empty configuration just to reach the docs
			rule := desc.Make(name, nil, []enablement.DisabledInterval{})

			documented, ok := rule.(lint.Documented)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "no documentation for rule '%s'\n", name)
				return nil
			}

			rendered, err := glamour.Render(documented.Doc(), "auto")
			if err != nil {
				// Fall back to the raw markdown
				fmt.Fprintln(cmd.OutOrStdout(), documented.Doc())
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
