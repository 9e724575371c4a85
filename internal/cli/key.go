package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/recordkit/schema"
	"github.com/roach88/recordkit/store"
)

// KeyOptions holds flags for the key command.
type KeyOptions struct {
	*RootOptions
	Database string
}

// KeyInfo describes a table's primary key.
type KeyInfo struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
	Auto    bool     `json:"auto"` // storage-assigned rowid-style key
}

// NewKeyCommand creates the key command.
func NewKeyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &KeyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "key <table>",
		Short: "Show a table's primary-key columns",
		Long: `Show the primary-key columns of a table, in declaration order,
and whether the key is auto-assigned by the storage engine
(single-column INTEGER PRIMARY KEY).

Examples:
  recordctl key countries --db ./app.db
  recordctl key notes --db ./app.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKey(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runKey(opts *KeyOptions, table string, cmd *cobra.Command) error {
	ctx := context.Background()

	d, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer d.Close()

	resolver := schema.NewResolver(d)
	cols, err := resolver.KeyColumns(ctx, table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to inspect table", err)
	}
	_, auto, err := resolver.AutoKeyColumn(ctx, table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to inspect table", err)
	}

	info := KeyInfo{Table: table, Columns: cols, Auto: auto}

	return writeResult(cmd.OutOrStdout(), opts.Format, info, func(w io.Writer) {
		if len(info.Columns) == 0 {
			fmt.Fprintf(w, "%s: no primary key\n", info.Table)
			return
		}
		suffix := ""
		if info.Auto {
			suffix = " (auto-assigned)"
		}
		fmt.Fprintf(w, "%s: %s%s\n", info.Table, strings.Join(info.Columns, ", "), suffix)
	})
}
