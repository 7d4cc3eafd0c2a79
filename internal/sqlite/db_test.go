package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikkadev/proompt-dbtools/internal/sqlite/sqlitetest"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is reported without creating it", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "proompt.db")
		_, err := Open(ctx, path)
		require.ErrorIs(t, err, types.ErrDatabaseNotFound)
		assert.NoFileExists(t, path)
	})

	t.Run("existing database opens with foreign keys on", func(t *testing.T) {
		path := sqlitetest.NewDatabase(t)
		db, err := Open(ctx, path)
		require.NoError(t, err)
		defer db.Close()

		var fk int
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
		assert.Equal(t, 1, fk)
		assert.Equal(t, path, db.Path)
	})
}

func TestOpenReadOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is reported without creating it", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "proompt.db")
		_, err := OpenReadOnly(ctx, path)
		require.ErrorIs(t, err, types.ErrDatabaseNotFound)
		assert.NoFileExists(t, path)
	})

	t.Run("reads succeed and writes fail", func(t *testing.T) {
		path := sqlitetest.NewDatabase(t)
		raw := sqlitetest.OpenRaw(t, path)
		sqlitetest.InsertPrompt(t, raw, "p1", "Code Review Assistant")

		db, err := OpenReadOnly(ctx, path)
		require.NoError(t, err)
		defer db.Close()

		n, err := CountRows(ctx, db, types.PromptsTable)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		_, err = db.ExecContext(ctx, "DELETE FROM prompts")
		require.Error(t, err)
		assert.Equal(t, 1, sqlitetest.Count(t, raw, types.PromptsTable))
	})
}

func TestDSN(t *testing.T) {
	got := dsn("/srv/data/proompt.db", false)
	assert.Contains(t, got, "file:")
	assert.Contains(t, got, "/srv/data/proompt.db")
	assert.Contains(t, got, "_pragma=foreign_keys")
	assert.NotContains(t, got, "mode=ro")

	assert.Contains(t, dsn("/srv/data/proompt.db", true), "mode=ro")
}
