package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/recordkit/store"
)

// TablesOptions holds flags for the tables command.
type TablesOptions struct {
	*RootOptions
	Database string
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TablesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List user tables in the database",
		Long: `List the user tables of a SQLite database.

Examples:
  recordctl tables --db ./app.db
  recordctl tables --db ./app.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTables(opts *TablesOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	d, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer d.Close()

	tables, err := listTables(ctx, d)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list tables", err)
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, tables, func(w io.Writer) {
		if len(tables) == 0 {
			fmt.Fprintln(w, "no user tables")
			return
		}
		for _, table := range tables {
			fmt.Fprintln(w, table)
		}
	})
}

// listTables reads user table names from the catalog, excluding
// SQLite's own bookkeeping tables.
func listTables(ctx context.Context, d *store.DB) ([]string, error) {
	rows, err := d.Query(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
