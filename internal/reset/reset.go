// Package reset empties every user table of a proompt database and rebuilds
// its full-text search indexes, as one transaction.
package reset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dikkadev/proompt-dbtools/internal/sqlite"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// Options configures a reset.
type Options struct {
	// FTSIndexes are rebuilt in addition to every FTS virtual table found in
	// the schema. Nil means types.KnownFTSIndexes.
	FTSIndexes []string

	Logger *zap.Logger
}

// Result reports what a reset did.
type Result struct {
	// Tables were emptied, in the order they were cleared.
	Tables []string
	// Rebuilt indexes accepted the rebuild command.
	Rebuilt []string
	// Skipped indexes failed to rebuild, typically because they do not exist.
	Skipped []string
}

// Run deletes all rows from every user table in db. FTS shadow tables are
// never written directly. An FTS index over an external content table is
// rebuilt rather than deleted from; an FTS table holding its own rows is
// emptied like any other table and then rebuilt. A failed rebuild is recorded
// in Result.Skipped rather than returned. Foreign key enforcement is off for the
// duration of the run and restored afterwards. Any other error rolls the
// whole reset back.
func Run(ctx context.Context, db *sqlite.DB, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	// PRAGMA foreign_keys is a no-op inside a transaction, so it is toggled
	// on the pinned connection around it.
	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return Result{}, fmt.Errorf("disabling foreign keys: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), "PRAGMA foreign_keys = ON"); err != nil {
			log.Warn("restoring foreign keys failed", zap.Error(err))
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("beginning reset transaction: %w", err)
	}
	defer tx.Rollback()

	tables, err := sqlite.ListTables(ctx, tx)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, t := range clearOrder(tables) {
		if _, err := tx.ExecContext(ctx, clearStatement(t)); err != nil {
			return Result{}, fmt.Errorf("clearing table %s: %w", t.Name, err)
		}
		log.Debug("cleared table", zap.String("table", t.Name))
		res.Tables = append(res.Tables, t.Name)
	}

	known := opts.FTSIndexes
	if known == nil {
		known = types.KnownFTSIndexes
	}
	for _, idx := range rebuildSet(known, sqlite.FTSIndexes(tables)) {
		if err := rebuild(ctx, tx, idx); err != nil {
			log.Debug("skipped fts rebuild", zap.String("index", idx), zap.Error(err))
			res.Skipped = append(res.Skipped, idx)
			continue
		}
		log.Debug("rebuilt fts index", zap.String("index", idx))
		res.Rebuilt = append(res.Rebuilt, idx)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("committing reset: %w", err)
	}

	log.Info("reset complete",
		zap.Int("tables", len(res.Tables)),
		zap.Int("rebuilt", len(res.Rebuilt)),
		zap.Int("skipped", len(res.Skipped)))
	return res, nil
}

// clearOrder returns the tables to empty: every user table except FTS
// shadows and external content FTS indexes, ordinary tables before virtual
// tables.
func clearOrder(tables []sqlite.Table) []sqlite.Table {
	var ordinary, virtual []sqlite.Table
	for _, t := range sqlite.UserTables(tables) {
		switch {
		case t.ExternalContent:
			// rebuilt from its content table
		case t.Virtual:
			virtual = append(virtual, t)
		default:
			ordinary = append(ordinary, t)
		}
	}
	return append(ordinary, virtual...)
}

// clearStatement empties t. Contentless FTS5 tables reject DELETE and are
// emptied with the delete-all command instead.
func clearStatement(t sqlite.Table) string {
	quoted := sqlite.QuoteIdent(t.Name)
	if t.Contentless {
		return fmt.Sprintf("INSERT INTO %s(%s) VALUES('delete-all')", quoted, quoted)
	}
	return "DELETE FROM " + quoted
}

// rebuildSet merges the configured index names with the discovered ones,
// keeping first-seen order and dropping duplicates.
func rebuildSet(known, discovered []string) []string {
	seen := make(map[string]bool, len(known)+len(discovered))
	var out []string
	for _, names := range [][]string{known, discovered} {
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// rebuild issues the FTS rebuild command for idx inside a savepoint, so a
// failure leaves the surrounding transaction untouched.
func rebuild(ctx context.Context, q sqlite.Querier, idx string) error {
	if _, err := q.ExecContext(ctx, "SAVEPOINT fts_rebuild"); err != nil {
		return err
	}

	quoted := sqlite.QuoteIdent(idx)
	_, err := q.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s(%s) VALUES('rebuild')", quoted, quoted))
	if err != nil {
		if _, rbErr := q.ExecContext(ctx, "ROLLBACK TO fts_rebuild"); rbErr != nil {
			return fmt.Errorf("%w (rollback to savepoint: %v)", err, rbErr)
		}
	}
	if _, relErr := q.ExecContext(ctx, "RELEASE fts_rebuild"); relErr != nil && err == nil {
		return relErr
	}
	return err
}
