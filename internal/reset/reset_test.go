package reset

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikkadev/proompt-dbtools/internal/logging"
	"github.com/dikkadev/proompt-dbtools/internal/sqlite"
	"github.com/dikkadev/proompt-dbtools/internal/sqlite/sqlitetest"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// populate inserts two prompts, a snippet, a note, tags and a link.
func populate(t *testing.T, raw *sql.DB) {
	t.Helper()

	sqlitetest.InsertPrompt(t, raw, "p1", "Code Review Assistant")
	sqlitetest.InsertPrompt(t, raw, "p2", "API Design Consultant")

	stmts := []string{
		`INSERT INTO snippets (id, title, content, description, created_at, updated_at)
			VALUES ('s1', 'error_handling_pattern', 'try { {{op}} }', 'errors', '2025-01-15T10:30:00Z', '2025-01-15T10:30:00Z')`,
		`INSERT INTO notes (id, prompt_id, title, body, created_at, updated_at)
			VALUES ('n1', 'p1', 'Review tip', 'Ask for tests', '2025-01-15T10:30:00Z', '2025-01-15T10:30:00Z')`,
		`INSERT INTO prompt_tags (prompt_id, tag_name) VALUES ('p1', 'review'), ('p2', 'api')`,
		`INSERT INTO snippet_tags (snippet_id, tag_name) VALUES ('s1', 'backend')`,
		`INSERT INTO prompt_links (from_prompt_id, to_prompt_id, link_type, created_at)
			VALUES ('p1', 'p2', 'related', '2025-01-15T10:30:00Z')`,
	}
	for _, stmt := range stmts {
		_, err := raw.Exec(stmt)
		require.NoError(t, err)
	}
}

func openDB(t *testing.T, path string) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func assertEmpty(t *testing.T, raw *sql.DB) {
	t.Helper()
	for _, table := range types.CoreTableNames {
		assert.Equal(t, 0, sqlitetest.Count(t, raw, table), "table %s should be empty", table)
	}
}

func assertFTSHealthy(t *testing.T, raw *sql.DB) {
	t.Helper()
	for _, idx := range types.KnownFTSIndexes {
		_, err := raw.Exec("INSERT INTO " + idx + "(" + idx + ") VALUES('integrity-check')")
		assert.NoError(t, err, "integrity check for %s", idx)
	}

	var hits int
	err := raw.QueryRow("SELECT COUNT(*) FROM prompts_fts WHERE prompts_fts MATCH 'review'").Scan(&hits)
	require.NoError(t, err)
	assert.Equal(t, 0, hits)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	path := sqlitetest.NewDatabase(t)
	raw := sqlitetest.OpenRaw(t, path)
	populate(t, raw)

	res, err := Run(ctx, openDB(t, path), Options{})
	require.NoError(t, err)

	assertEmpty(t, raw)
	assertFTSHealthy(t, raw)

	assert.ElementsMatch(t, types.CoreTableNames, res.Tables)
	assert.ElementsMatch(t, types.KnownFTSIndexes, res.Rebuilt)
	assert.Empty(t, res.Skipped)
	for _, name := range res.Tables {
		assert.NotContains(t, name, "_fts", "external content indexes are rebuilt, not deleted from")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := sqlitetest.NewDatabase(t)
	raw := sqlitetest.OpenRaw(t, path)
	populate(t, raw)

	db := openDB(t, path)
	first, err := Run(ctx, db, Options{})
	require.NoError(t, err)
	second, err := Run(ctx, db, Options{})
	require.NoError(t, err)

	assertEmpty(t, raw)
	assertFTSHealthy(t, raw)
	assert.Equal(t, first, second)
}

func TestRunRestoresForeignKeys(t *testing.T) {
	ctx := context.Background()
	path := sqlitetest.NewDatabase(t)
	db := openDB(t, path)

	_, err := Run(ctx, db, Options{})
	require.NoError(t, err)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestRunWithoutSearchIndexes(t *testing.T) {
	ctx := context.Background()
	path := sqlitetest.NewDatabase(t, sqlitetest.CoreSchemaDDL...)
	raw := sqlitetest.OpenRaw(t, path)
	populate(t, raw)

	res, err := Run(ctx, openDB(t, path), Options{})
	require.NoError(t, err, "a missing fts index is not fatal")

	assertEmpty(t, raw)
	assert.Empty(t, res.Rebuilt)
	assert.ElementsMatch(t, types.KnownFTSIndexes, res.Skipped)
}

func TestRunRebuildsDiscoveredIndexes(t *testing.T) {
	ctx := context.Background()
	ddl := append(append([]string{}, sqlitetest.SchemaDDL...),
		`CREATE TABLE collections (id TEXT PRIMARY KEY, name TEXT NOT NULL)`,
		`CREATE VIRTUAL TABLE collections_fts USING fts5(name, content='collections', content_rowid='rowid')`,
	)
	path := sqlitetest.NewDatabase(t, ddl...)
	raw := sqlitetest.OpenRaw(t, path)
	_, err := raw.Exec(`INSERT INTO collections (id, name) VALUES ('c1', 'favourites')`)
	require.NoError(t, err)

	res, err := Run(ctx, openDB(t, path), Options{})
	require.NoError(t, err)

	assert.Contains(t, res.Tables, "collections")
	assert.NotContains(t, res.Tables, "collections_fts")
	assert.Contains(t, res.Rebuilt, "collections_fts")
	assert.Equal(t, 0, sqlitetest.Count(t, raw, "collections"))
}

func TestRunClearsSearchTablesWithOwnContent(t *testing.T) {
	ctx := context.Background()
	ddl := append(append([]string{}, sqlitetest.SchemaDDL...),
		`CREATE VIRTUAL TABLE search_log USING fts5(term)`,
		`CREATE VIRTUAL TABLE search_terms USING fts5(term, content='')`,
	)
	path := sqlitetest.NewDatabase(t, ddl...)
	raw := sqlitetest.OpenRaw(t, path)
	populate(t, raw)
	for _, stmt := range []string{
		`INSERT INTO search_log (term) VALUES ('review'), ('security')`,
		`INSERT INTO search_terms (rowid, term) VALUES (1, 'review'), (2, 'api')`,
	} {
		_, err := raw.Exec(stmt)
		require.NoError(t, err)
	}

	res, err := Run(ctx, openDB(t, path), Options{})
	require.NoError(t, err)

	assertEmpty(t, raw)
	assertFTSHealthy(t, raw)
	assert.Equal(t, 0, sqlitetest.Count(t, raw, "search_log"))
	assert.Equal(t, 0, sqlitetest.Count(t, raw, "search_terms"))
	assert.Contains(t, res.Tables, "search_log")
	assert.Contains(t, res.Tables, "search_terms")
	assert.Contains(t, res.Rebuilt, "search_log")

	var hits int
	require.NoError(t, raw.QueryRow(`SELECT COUNT(*) FROM search_log WHERE search_log MATCH 'review'`).Scan(&hits))
	assert.Equal(t, 0, hits)
}

func TestRunCustomIndexList(t *testing.T) {
	ctx := context.Background()
	path := sqlitetest.NewDatabase(t)

	res, err := Run(ctx, openDB(t, path), Options{FTSIndexes: []string{"tags_fts"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"tags_fts"}, res.Skipped)
	assert.ElementsMatch(t, types.KnownFTSIndexes, res.Rebuilt, "discovered indexes are rebuilt regardless")
}

func TestRunRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	ddl := append(append([]string{}, sqlitetest.SchemaDDL...),
		`CREATE TRIGGER snippets_locked BEFORE DELETE ON snippets BEGIN SELECT RAISE(ABORT, 'snippets are locked'); END;`,
	)
	path := sqlitetest.NewDatabase(t, ddl...)
	raw := sqlitetest.OpenRaw(t, path)
	populate(t, raw)

	_, err := Run(ctx, openDB(t, path), Options{})
	require.ErrorContains(t, err, "snippets are locked")

	assert.Equal(t, 2, sqlitetest.Count(t, raw, types.PromptsTable), "prompts cleared before the failure are restored")
	assert.Equal(t, 1, sqlitetest.Count(t, raw, types.SnippetsTable))
	assert.Equal(t, 1, sqlitetest.Count(t, raw, types.NotesTable))
}

func TestRunLogs(t *testing.T) {
	ctx := context.Background()
	path := sqlitetest.NewDatabase(t, sqlitetest.CoreSchemaDDL...)

	var buf bytes.Buffer
	logger, err := logging.NewWriter(&buf, "debug")
	require.NoError(t, err)

	_, err = Run(ctx, openDB(t, path), Options{Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "cleared table")
	assert.Contains(t, out, "skipped fts rebuild")
	assert.Contains(t, out, "reset complete")
}

func TestRebuildSet(t *testing.T) {
	got := rebuildSet(
		[]string{"prompts_fts", "snippets_fts", "notes_fts"},
		[]string{"notes_fts", "collections_fts", "prompts_fts"},
	)
	assert.Equal(t, []string{"prompts_fts", "snippets_fts", "notes_fts", "collections_fts"}, got)
}

func TestClearOrder(t *testing.T) {
	tables := []sqlite.Table{
		{Name: "prompts"},
		{Name: "geo", Virtual: true},
		{Name: "prompts_fts", Virtual: true, FTS: true, ExternalContent: true},
		{Name: "prompts_fts_data"},
		{Name: "search_log", Virtual: true, FTS: true},
		{Name: "search_log_data"},
		{Name: "notes"},
	}

	var names []string
	for _, tbl := range clearOrder(tables) {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"prompts", "notes", "geo", "search_log"}, names)
}

func TestClearStatement(t *testing.T) {
	assert.Equal(t, `DELETE FROM "search_log"`,
		clearStatement(sqlite.Table{Name: "search_log", Virtual: true, FTS: true}))
	assert.Equal(t, `INSERT INTO "search_terms"("search_terms") VALUES('delete-all')`,
		clearStatement(sqlite.Table{Name: "search_terms", Virtual: true, FTS: true, Contentless: true}))
}
