package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// Table describes one entry of sqlite_master with type 'table'.
type Table struct {
	Name    string
	Virtual bool // created with CREATE VIRTUAL TABLE
	FTS     bool // virtual table using the fts5 (or fts4/fts3) module

	// ExternalContent is set for FTS indexes declared with content='table'.
	// Their rows live in that table and a rebuild re-reads them.
	ExternalContent bool
	// Contentless is set for FTS indexes declared with content=''.
	Contentless bool
}

// contentOption matches the content= option of an FTS declaration. It does
// not match content_rowid= or a column named content.
var contentOption = regexp.MustCompile(`(?i)\bcontent\s*=\s*(?:'([^']*)'|"([^"]*)"|([A-Za-z_][A-Za-z0-9_]*))`)

// Column is one row of PRAGMA table_info.
type Column struct {
	CID     int
	Name    string
	Type    string
	NotNull bool
	PK      bool
}

// ListTables returns every table in the schema except SQLite's internal
// sqlite_* tables, in creation order.
func ListTables(ctx context.Context, q Querier) ([]Table, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT name, COALESCE(sql, '')
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var name, ddl string
		if err := rows.Scan(&name, &ddl); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, classify(name, ddl))
	}
	return tables, rows.Err()
}

func classify(name, ddl string) Table {
	upper := strings.ToUpper(strings.Join(strings.Fields(ddl), " "))
	t := Table{Name: name}
	if strings.HasPrefix(upper, "CREATE VIRTUAL TABLE") {
		t.Virtual = true
		t.FTS = strings.Contains(upper, "USING FTS5") ||
			strings.Contains(upper, "USING FTS4") ||
			strings.Contains(upper, "USING FTS3")
	}
	if !t.FTS {
		return t
	}
	if m := contentOption.FindStringSubmatch(ddl); m != nil {
		if m[1]+m[2]+m[3] == "" {
			t.Contentless = true
		} else {
			t.ExternalContent = true
		}
	}
	return t
}

// IsShadow reports whether name is a shadow table backing one of the FTS
// virtual tables in tables.
func IsShadow(name string, tables []Table) bool {
	for _, t := range tables {
		if !t.FTS {
			continue
		}
		for _, suffix := range types.FTSShadowSuffixes {
			if name == t.Name+suffix {
				return true
			}
		}
		// fts3/fts4 shadow tables.
		for _, suffix := range []string{"_segments", "_segdir", "_stat", "_docsize"} {
			if name == t.Name+suffix {
				return true
			}
		}
	}
	return false
}

// UserTables filters out FTS shadow tables. FTS virtual tables themselves are
// kept; callers decide how to treat them.
func UserTables(tables []Table) []Table {
	var out []Table
	for _, t := range tables {
		if IsShadow(t.Name, tables) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FTSIndexes returns the names of the FTS virtual tables in tables.
func FTSIndexes(tables []Table) []string {
	var out []string
	for _, t := range tables {
		if t.FTS {
			out = append(out, t.Name)
		}
	}
	return out
}

// Columns returns the column list of table.
func Columns(ctx context.Context, q Querier, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, "PRAGMA table_info("+QuoteIdent(table)+")")
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			c       Column
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&c.CID, &c.Name, &c.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning table info %s: %w", table, err)
		}
		c.NotNull = notNull != 0
		c.PK = pk != 0
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, q Querier, table string) (int64, error) {
	var n int64
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+QuoteIdent(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// QuoteIdent quotes a table or column name for direct inclusion in SQL.
// Table names come from sqlite_master, not user input, but may still
// contain characters that need quoting.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
