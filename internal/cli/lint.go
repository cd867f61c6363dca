package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quellint/quellint/pkg/config"
	"github.com/quellint/quellint/pkg/directives"
	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/formatters"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/logging"
	"github.com/quellint/quellint/pkg/reporters"
	"github.com/quellint/quellint/pkg/rules"
)

func newLintCmd() *cobra.Command {
	var (
		formatterName string
		reporterName  string
	)

	cmd := &cobra.Command{
		Use:   "lint <files...>",
		Short: "Lint files with the configured rules",
		Long: `Lint runs every configured rule over the given files. Findings in
ranges suppressed by inline quellint:disable comments are dropped.
The command fails when any configured rule cannot be resolved, listing
every missing rule at once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.lint")

			settings, err := config.Load(".")
			if err != nil {
				return err
			}
			if formatterName != "" {
				settings.Formatter = formatterName
			}
			if reporterName != "" {
				settings.Reporter = reporterName
			}

			searchPath := settings.SearchPath()

			formatter, err := formatters.Resolve(settings.Formatter, searchPath...)
			if err != nil {
				return err
			}
			reporter, err := reporters.Resolve(settings.Reporter, searchPath...)
			if err != nil {
				return err
			}

			summary := lint.Summary{}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrSourceRead, "failed to read %s", path)
				}

				src := lint.NewSource(path, string(data))
				toggles := directives.Parse(src.Text)

				loaded, err := rules.LoadFromSources(settings.Rules, toggles, searchPath...)
				if err != nil {
					return err
				}

				failures := lint.New(loaded).Run(src)
				logger.Debug().Str("file", path).Int("failures", len(failures)).Msg("File linted")

				summary.Files++
				summary.Failures = append(summary.Failures, failures...)
			}

			out, err := formatter.Format(summary.Failures)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			if err := reporter.Report(cmd.OutOrStdout(), summary); err != nil {
				return err
			}

			if len(summary.Failures) > 0 {
				return fmt.Errorf("found %d problems", len(summary.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatterName, "formatter", "", "Formatter to render findings with (overrides configuration)")
	cmd.Flags().StringVar(&reporterName, "reporter", "", "Reporter to summarize the run with (overrides configuration)")

	return cmd
}
