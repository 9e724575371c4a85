package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/roach88/recordkit/persist"
	"github.com/roach88/recordkit/record"
	"github.com/roach88/recordkit/store"
)

// openGateway opens the database and wires a gateway over it. The
// caller closes the returned DB.
func openGateway(opts *RootOptions, path string) (*store.DB, *persist.Gateway, error) {
	d, err := store.Open(path)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	var gopts []persist.Option
	if opts.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		gopts = append(gopts, persist.WithLogger(logger))
	}

	return d, persist.New(d, d, gopts...), nil
}

// keyedRecord adapts --key flags to the record capability so the
// gateway can target a row without a concrete record type.
type keyedRecord struct {
	table   string
	mapping *record.ColumnMap
}

func (r *keyedRecord) TableName() string { return r.table }

func (r *keyedRecord) ColumnMapping() *record.ColumnMap { return r.mapping }

// parseKeyFlags turns repeated "col=value" flags into a column
// mapping. Values stay strings; SQLite column affinity converts them
// when the key column is numeric.
func parseKeyFlags(pairs []string) (*record.ColumnMap, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("at least one --key col=value is required")
	}
	cm := record.NewColumnMap()
	for _, pair := range pairs {
		col, val, ok := strings.Cut(pair, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid --key %q: expected col=value", pair)
		}
		cm.Set(col, val)
	}
	return cm, nil
}
