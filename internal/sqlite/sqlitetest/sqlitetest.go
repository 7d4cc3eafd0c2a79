package sqlitetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// NewDatabase creates data/proompt.db under a temp directory, applies ddl
// (SchemaDDL when none is given) and returns the file path. The setup
// connection is closed before returning.
func NewDatabase(t *testing.T, ddl ...string) string {
	t.Helper()

	if len(ddl) == 0 {
		ddl = SchemaDDL
	}

	path := filepath.Join(t.TempDir(), "proompt.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range ddl {
		_, err := db.Exec(stmt)
		require.NoError(t, err, "applying schema statement: %s", stmt)
	}
	return path
}

// OpenRaw opens path without going through the tools' connection setup so
// tests can inspect or corrupt state directly.
func OpenRaw(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	require.NoError(t, err)
	return n
}

// InsertPrompt inserts a minimal prompt row.
func InsertPrompt(t *testing.T, db *sql.DB, id, title string) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO prompts (id, title, content, type, use_case, model_compatibility_tags,
			temperature_suggestion, other_parameters, created_at, updated_at)
		VALUES (?, ?, ?, 'system', 'testing', '["gpt-4"]', 0.3, '{"max_tokens": 2000}',
			'2025-01-15T10:30:00Z', '2025-01-15T10:30:00Z')`,
		id, title, "Content for "+title+" with {{variable}} and @snippet",
	)
	require.NoError(t, err)
}
