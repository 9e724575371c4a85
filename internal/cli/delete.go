package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	Database string
	Keys     []string
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	Table   string `json:"table"`
	Deleted bool   `json:"deleted"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <table>",
		Short: "Delete the row identified by --key",
		Long: `Delete a single row by primary key. Deleting an absent row is not
an error; the result reports whether a row actually went away.

Examples:
  recordctl delete countries --db ./app.db --key isoCode=FR
  recordctl delete memberships --db ./app.db --key tenant=acme --key isoCode=FR`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringArrayVar(&opts.Keys, "key", nil, "key column as col=value (repeatable)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func runDelete(opts *DeleteOptions, table string, cmd *cobra.Command) error {
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

	deleted, err := gateway.Delete(ctx, &keyedRecord{table: table, mapping: cm})
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("delete from %s", table), err)
	}

	result := DeleteResult{Table: table, Deleted: deleted}
	return writeResult(cmd.OutOrStdout(), opts.Format, result, func(w io.Writer) {
		if result.Deleted {
			fmt.Fprintf(w, "deleted row from %s\n", result.Table)
		} else {
			fmt.Fprintf(w, "no matching row in %s\n", result.Table)
		}
	})
}
