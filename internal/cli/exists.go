package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ExistsOptions holds flags for the exists command.
type ExistsOptions struct {
	*RootOptions
	Database string
	Keys     []string
}

// ExistsResult reports the outcome of an existence check.
type ExistsResult struct {
	Table  string `json:"table"`
	Exists bool   `json:"exists"`
}

// NewExistsCommand creates the exists command.
func NewExistsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExistsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exists <table>",
		Short: "Check whether the row identified by --key is present",
		Long: `Probe for a single row by primary key. Absence is a result, not an
error.

Examples:
  recordctl exists countries --db ./app.db --key isoCode=FR
  recordctl exists countries --db ./app.db --key isoCode=FR --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringArrayVar(&opts.Keys, "key", nil, "key column as col=value (repeatable)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func runExists(opts *ExistsOptions, table string, cmd *cobra.Command) error {
	ctx := context.Background()

	cm, err := parseKeyFlags(opts.Keys)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid key", err)
	}

	d, gateway, err := openGateway(opts.RootOptions, opts.Database)
	if err != nil {
		return err
	}
	defer d.Close()

	found, err := gateway.Exists(ctx, &keyedRecord{table: table, mapping: cm})
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("check %s", table), err)
	}

	result := ExistsResult{Table: table, Exists: found}
	return writeResult(cmd.OutOrStdout(), opts.Format, result, func(w io.Writer) {
		if result.Exists {
			fmt.Fprintf(w, "row exists in %s\n", result.Table)
		} else {
			fmt.Fprintf(w, "no matching row in %s\n", result.Table)
		}
	})
}
