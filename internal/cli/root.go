package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/attendance-recap/internal/app"
	"github.com/cmlabs-hris/attendance-recap/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Opener builds the services a command runs against
type Opener func(ctx context.Context) (*app.Services, error)

// DefaultOpener loads the configuration from the environment and connects to the source of record
func DefaultOpener(logger *slog.Logger) Opener {
	return func(ctx context.Context) (*app.Services, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return app.Open(ctx, cfg, logger)
	}
}

type options struct {
	output  string
	noColor bool
}

// NewRootCmd returns the recap command tree
func NewRootCmd(version string, open Opener) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "recap",
		Short:         "Inspect reconciled attendance summaries from the command line.",
		Long:          `Recap reads attendance from the configured source of record and prints normalized, headcount-consistent summaries.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != OutputTable && opts.output != OutputJSON {
				return fmt.Errorf("--output must be %q or %q", OutputTable, OutputJSON)
			}
			if opts.noColor {
				color.NoColor = true
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", OutputTable, "output format: table or json")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newWindowCmd(opts, open),
		newDayCmd(opts, open),
		newEmployeeCmd(opts, open),
	)
	return root
}

// withServices opens the services for the duration of fn
func withServices(cmd *cobra.Command, open Opener, fn func(svc *app.Services, out io.Writer) error) error {
	svc, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(svc, cmd.OutOrStdout())
}
