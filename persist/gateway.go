package persist

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/recordkit/record"
	"github.com/roach88/recordkit/schema"
	"github.com/roach88/recordkit/sqlgen"
)

// Executor is the execution engine contract this package consumes.
// store.DB satisfies it; tests may substitute anything that speaks
// database/sql. The executor is expected to serialize writes to a
// given storage handle (single-writer discipline).
type Executor interface {
	// Exec runs a write statement. The result's affected-row count
	// drives update-miss detection; LastInsertId feeds auto-assigned
	// keys back to records.
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)

	// Query runs a read statement. Callers close the returned rows.
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Gateway orchestrates record persistence. Stateless between calls;
// safe for concurrent use as long as the Executor is.
type Gateway struct {
	exec   Executor
	schema *schema.Resolver
	logger *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the gateway's logger. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// New creates a Gateway over an execution engine and a schema
// introspector. Key metadata is cached per table for the life of the
// gateway.
func New(exec Executor, intro schema.Introspector, opts ...Option) *Gateway {
	g := &Gateway{
		exec:   exec,
		schema: schema.NewResolver(intro),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Insert persists r as a new row. Dispatches to the record's Inserter
// override if present; otherwise runs the insert hooks around
// PerformInsert.
func (g *Gateway) Insert(ctx context.Context, r record.Record) error {
	if o, ok := r.(Inserter); ok {
		return o.Insert(ctx, g)
	}
	if h, ok := r.(BeforeInserter); ok {
		if err := h.BeforeInsert(ctx); err != nil {
			return err
		}
	}
	if err := g.PerformInsert(ctx, r); err != nil {
		return err
	}
	if h, ok := r.(AfterInserter); ok {
		return h.AfterInsert(ctx)
	}
	return nil
}

// Update rewrites the row identified by r's primary key. Dispatches to
// the record's Updater override if present; otherwise runs the update
// hooks around PerformUpdate.
func (g *Gateway) Update(ctx context.Context, r record.Record) error {
	if o, ok := r.(Updater); ok {
		return o.Update(ctx, g)
	}
	if h, ok := r.(BeforeUpdater); ok {
		if err := h.BeforeUpdate(ctx); err != nil {
			return err
		}
	}
	if err := g.PerformUpdate(ctx, r); err != nil {
		return err
	}
	if h, ok := r.(AfterUpdater); ok {
		return h.AfterUpdate(ctx)
	}
	return nil
}

// Save upserts r: update if the row exists, insert otherwise.
// Dispatches to the record's Saver override if present; otherwise runs
// the save hooks around PerformSave.
func (g *Gateway) Save(ctx context.Context, r record.Record) error {
	if o, ok := r.(Saver); ok {
		return o.Save(ctx, g)
	}
	if h, ok := r.(BeforeSaver); ok {
		if err := h.BeforeSave(ctx); err != nil {
			return err
		}
	}
	if err := g.PerformSave(ctx, r); err != nil {
		return err
	}
	if h, ok := r.(AfterSaver); ok {
		return h.AfterSave(ctx)
	}
	return nil
}

// Delete removes the row identified by r's primary key and reports
// whether a row was actually deleted. Absence is a false result, never
// an error. Dispatches to the record's Deleter override if present.
func (g *Gateway) Delete(ctx context.Context, r record.Record) (bool, error) {
	if o, ok := r.(Deleter); ok {
		return o.Delete(ctx, g)
	}
	if h, ok := r.(BeforeDeleter); ok {
		if err := h.BeforeDelete(ctx); err != nil {
			return false, err
		}
	}
	deleted, err := g.PerformDelete(ctx, r)
	if err != nil {
		return false, err
	}
	if h, ok := r.(AfterDeleter); ok {
		if err := h.AfterDelete(ctx); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

// Exists reports whether a row with r's primary key is present.
// Dispatches to the record's ExistsChecker override if present.
func (g *Gateway) Exists(ctx context.Context, r record.Record) (bool, error) {
	if o, ok := r.(ExistsChecker); ok {
		return o.Exists(ctx, g)
	}
	if h, ok := r.(BeforeExistsChecker); ok {
		if err := h.BeforeExists(ctx); err != nil {
			return false, err
		}
	}
	return g.PerformExists(ctx, r)
}

// PerformInsert is the default insert body: build the INSERT from the
// record's column mapping and execute it. Storage errors, uniqueness
// violations included, propagate unchanged.
//
// If the table's key is a single rowid-style integer column that the
// mapping left unset (absent or nil), the storage-assigned value is
// read back and offered to the record through its KeyAssigner
// capability. Insert is the only operation that does this.
func (g *Gateway) PerformInsert(ctx context.Context, r record.Record) error {
	table := r.TableName()
	cm := r.ColumnMapping()

	query, args, err := sqlgen.Insert(table, cm)
	if err != nil {
		return err
	}

	// Decide before executing whether a generated key is expected.
	wantAssignedKey := false
	autoCol, hasAuto, err := g.schema.AutoKeyColumn(ctx, table)
	if err != nil {
		return err
	}
	if hasAuto {
		if v, ok := cm.Get(autoCol); !ok || v == nil {
			wantAssignedKey = true
		}
	}

	res, err := g.exec.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	g.logger.Debug("insert", "table", table, "columns", cm.Len())

	if wantAssignedKey {
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read assigned key for %s: %w", table, err)
		}
		if ka, ok := r.(record.KeyAssigner); ok {
			ka.AssignKey(id)
			g.logger.Debug("assigned key", "table", table, "column", autoCol, "value", id)
		}
	}
	return nil
}

// PerformUpdate is the default update body: resolve the primary key,
// execute the UPDATE, and translate the affected-row count. Zero rows
// means the row does not exist (RECORD_NOT_FOUND); more than one row
// means the key predicate is not actually identifying (AMBIGUOUS_KEY).
func (g *Gateway) PerformUpdate(ctx context.Context, r record.Record) error {
	table := r.TableName()

	key, err := g.schema.Key(ctx, table, r.ColumnMapping())
	if err != nil {
		return err
	}

	query, args, err := sqlgen.Update(table, r.ColumnMapping(), key)
	if err != nil {
		return err
	}

	res, err := g.exec.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("affected rows for %s: %w", table, err)
	}
	g.logger.Debug("update", "table", table, "key", key.String(), "rows", rows)

	switch {
	case rows == 0:
		return record.NewNotFoundError(table, key)
	case rows > 1:
		return record.NewAmbiguousKeyError(table, key, rows)
	}
	return nil
}

// PerformSave is the default save body: attempt the record's Update,
// and exactly when that fails with RECORD_NOT_FOUND, fall back to the
// record's Insert. Any other update failure, and any insert failure,
// propagates unchanged - a broader catch would swallow constraint
// violations and connection errors as if they meant "row absent".
//
// Written against the composites, not the primitives, so a record's
// Update/Insert overrides and hooks fire inside a default save.
func (g *Gateway) PerformSave(ctx context.Context, r record.Record) error {
	err := g.Update(ctx, r)
	if record.IsNotFound(err) {
		g.logger.Debug("save: row absent, inserting", "table", r.TableName())
		return g.Insert(ctx, r)
	}
	return err
}

// PerformDelete is the default delete body: resolve the primary key,
// execute the DELETE, and report whether any row went away.
func (g *Gateway) PerformDelete(ctx context.Context, r record.Record) (bool, error) {
	table := r.TableName()

	key, err := g.schema.Key(ctx, table, r.ColumnMapping())
	if err != nil {
		return false, err
	}

	query, args, err := sqlgen.Delete(table, key)
	if err != nil {
		return false, err
	}

	res, err := g.exec.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("affected rows for %s: %w", table, err)
	}
	g.logger.Debug("delete", "table", table, "key", key.String(), "rows", rows)

	return rows > 0, nil
}

// PerformExists is the default exists body: resolve the primary key
// and probe for a single row.
func (g *Gateway) PerformExists(ctx context.Context, r record.Record) (bool, error) {
	table := r.TableName()

	key, err := g.schema.Key(ctx, table, r.ColumnMapping())
	if err != nil {
		return false, err
	}

	query, args, err := sqlgen.Exists(table, key)
	if err != nil {
		return false, err
	}

	rows, err := g.exec.Query(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	g.logger.Debug("exists", "table", table, "key", key.String(), "found", found)

	return found, nil
}
