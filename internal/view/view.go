// Package view renders the contents of a proompt database as a read-only
// report: an overview of every table, detail views of the known entities and
// a generic dump of anything else.
package view

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/dikkadev/proompt-dbtools/internal/config"
	"github.com/dikkadev/proompt-dbtools/internal/sqlite"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// Truncation limits for fields whose width is fixed by the layout.
const (
	promptPreviewLength = 150
	noteTitleLength     = 28
	noteBodyLength      = 48
	promptTitleLength   = 23
	dumpTextLength      = 50
	dumpCellLength      = 30
	dumpHeaderLength    = 15

	// panelWidth is the text width inside prompt and snippet panels.
	panelWidth = 76
)

// Viewer writes a report of db to an io.Writer. It only reads.
type Viewer struct {
	db  *sqlite.DB
	cfg config.Display
	out io.Writer
	log *zap.Logger
	st  styles
}

// New returns a Viewer that renders to out using the display settings in
// cfg. A nil logger discards diagnostics.
func New(db *sqlite.DB, cfg config.Display, out io.Writer, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{
		db:  db,
		cfg: cfg,
		out: out,
		log: log,
		st:  newStyles(newRenderer(out, cfg.ColorScheme)),
	}
}

// tableInfo is what the overview reports for one table.
type tableInfo struct {
	sqlite.Table
	Rows    int64
	Columns []sqlite.Column
}

// Render writes the whole report. Data problems such as dangling references
// or malformed JSON are rendered as placeholders; only database errors are
// returned.
func (v *Viewer) Render(ctx context.Context) error {
	v.printf("%s\n", v.st.title.Render("📊 Proompt Database Viewer"))
	v.printf("%s\n", v.st.muted.Render("Database: "+v.db.Path))

	tables, err := sqlite.ListTables(ctx, v.db)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		v.printf("\n%s\n", v.st.warn.Render("No tables found in database."))
		return nil
	}

	infos, err := v.describe(ctx, tables)
	if err != nil {
		return err
	}
	present := func(name string) bool {
		return slices.ContainsFunc(tables, func(t sqlite.Table) bool { return t.Name == name })
	}

	if v.cfg.ShowMetadata {
		v.overview(infos)
	}

	sections := []struct {
		tables []string
		fn     func(context.Context) error
	}{
		{[]string{types.PromptsTable}, v.prompts},
		{[]string{types.SnippetsTable}, v.snippets},
		{[]string{types.NotesTable}, v.notes},
		{[]string{types.PromptTagsTable, types.SnippetTagsTable}, v.tags},
		{[]string{types.PromptLinksTable}, v.links},
	}
	for _, s := range sections {
		if !slices.ContainsFunc(s.tables, present) {
			v.log.Debug("table missing, section skipped", zap.Strings("tables", s.tables))
			continue
		}
		if err := s.fn(ctx); err != nil {
			return err
		}
	}

	for _, info := range infos {
		if !dumpable(info.Table, tables) {
			continue
		}
		if err := v.dump(ctx, info); err != nil {
			return err
		}
	}

	v.printf("\n%s\n", v.st.muted.Render(fmt.Sprintf("Total tables: %d", len(tables))))
	return nil
}

// describe collects row and column counts for every table.
func (v *Viewer) describe(ctx context.Context, tables []sqlite.Table) ([]tableInfo, error) {
	infos := make([]tableInfo, 0, len(tables))
	for _, t := range tables {
		n, err := sqlite.CountRows(ctx, v.db, t.Name)
		if err != nil {
			return nil, err
		}
		cols, err := sqlite.Columns(ctx, v.db, t.Name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, tableInfo{Table: t, Rows: n, Columns: cols})
	}
	return infos, nil
}

// dumpable reports whether t gets the generic dump: it is not one of the
// core tables, not a full-text index and not an index's shadow table.
func dumpable(t sqlite.Table, all []sqlite.Table) bool {
	if slices.Contains(types.CoreTableNames, t.Name) {
		return false
	}
	return !t.FTS && !sqlite.IsShadow(t.Name, all)
}

// heading prints a section title with the number of rows shown. It returns
// false when the section is empty and empty sections are hidden.
func (v *Viewer) heading(title string, shown int) bool {
	if shown == 0 && !v.cfg.ShowEmptyTables {
		return false
	}
	v.printf("\n%s %s\n", v.st.section.Render(title), v.st.muted.Render(fmt.Sprintf("(%d shown)", shown)))
	return true
}

func (v *Viewer) placeholder(msg string) {
	v.printf("  %s\n", v.st.muted.Render(msg))
}

func (v *Viewer) table(headers []string, rows [][]string, align map[int]lipgloss.Position) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(v.st.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := v.st.cell
			if row == table.HeaderRow {
				s = v.st.header
			}
			if pos, ok := align[col]; ok {
				s = s.Align(pos)
			}
			return s
		}).
		Render()
}

func (v *Viewer) printf(format string, args ...any) {
	fmt.Fprintf(v.out, format, args...)
}

// newRenderer binds lipgloss to out. The "none" scheme strips all color and
// "light"/"dark" skip background detection.
func newRenderer(out io.Writer, scheme string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	switch scheme {
	case config.ColorNone:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorLight:
		r.SetHasDarkBackground(false)
	case config.ColorDark:
		r.SetHasDarkBackground(true)
	}
	return r
}
