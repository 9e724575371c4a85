package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/recordkit/record"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
}

// Fixtures is the root of a fixture file.
type Fixtures struct {
	Records []FixtureRecord `yaml:"records"`
}

// FixtureRecord is one record to save. Columns are a list, not a map,
// so the column mapping's insertion order is explicit in the file.
type FixtureRecord struct {
	// Table the record maps to.
	Table string `yaml:"table"`

	// GenerateKey names a key column to fill with a fresh UUID when
	// the fixture leaves it unset. Meant for text keys; rowid-style
	// integer keys are assigned by the storage engine instead.
	GenerateKey string `yaml:"generateKey,omitempty"`

	// Columns in mapping order.
	Columns []FixtureColumn `yaml:"columns"`
}

// FixtureColumn is one column-to-value binding.
type FixtureColumn struct {
	Column string `yaml:"column"`
	Value  any    `yaml:"value"`
}

// LoadResult summarizes a load run.
type LoadResult struct {
	Saved         int      `json:"saved"`
	GeneratedKeys []string `json:"generated_keys,omitempty"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <fixtures.yaml>",
		Short: "Save fixture records through the gateway",
		Long: `Load a YAML fixture file and save every record through the
persistence gateway. Save upserts: records whose key already exists
are updated, the rest are inserted.

String values are normalized to Unicode NFC before binding, so key
equality over accented text is byte-stable.

Examples:
  recordctl load fixtures.yaml --db ./app.db
  recordctl load fixtures.yaml --db ./app.db --format json -v`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, path string, cmd *cobra.Command) error {
	ctx := context.Background()

	fixtures, err := readFixtures(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read fixtures", err)
	}

	d, gateway, err := openGateway(opts.RootOptions, opts.Database)
	if err != nil {
		return err
	}
	defer d.Close()

	result := LoadResult{}
	for i, fx := range fixtures.Records {
		rec, generated, err := fixtureToRecord(fx)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("fixture %d", i), err)
		}
		if err := gateway.Save(ctx, rec); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("save fixture %d into %s", i, fx.Table), err)
		}
		result.Saved++
		if generated != "" {
			result.GeneratedKeys = append(result.GeneratedKeys, generated)
		}
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, result, func(w io.Writer) {
		fmt.Fprintf(w, "saved %d records\n", result.Saved)
		for _, key := range result.GeneratedKeys {
			fmt.Fprintf(w, "generated key %s\n", key)
		}
	})
}

// readFixtures parses a fixture file.
func readFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, fx := range fixtures.Records {
		if fx.Table == "" {
			return nil, fmt.Errorf("fixture %d: missing table", i)
		}
		if len(fx.Columns) == 0 {
			return nil, fmt.Errorf("fixture %d: no columns", i)
		}
	}
	return &fixtures, nil
}

// fixtureToRecord builds the record for one fixture entry. Returns the
// generated key value, if one was produced.
func fixtureToRecord(fx FixtureRecord) (record.Record, string, error) {
	cm := record.NewColumnMap()
	for _, col := range fx.Columns {
		if col.Column == "" {
			return nil, "", fmt.Errorf("column with empty name")
		}
		cm.Set(col.Column, normalizeValue(col.Value))
	}

	var generated string
	if fx.GenerateKey != "" && !cm.Has(fx.GenerateKey) {
		generated = uuid.NewString()
		cm.Set(fx.GenerateKey, generated)
	}

	return &keyedRecord{table: fx.Table, mapping: cm}, generated, nil
}

// normalizeValue canonicalizes string values to NFC so that visually
// identical accented text always maps to the same key bytes.
func normalizeValue(v any) any {
	if s, ok := v.(string); ok {
		return norm.NFC.String(s)
	}
	return v
}
