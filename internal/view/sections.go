package view

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dikkadev/proompt-dbtools/internal/format"
	"github.com/dikkadev/proompt-dbtools/internal/sqlite"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

func (v *Viewer) overview(infos []tableInfo) {
	v.printf("\n%s\n", v.st.section.Render("📊 Database Overview"))

	var (
		rows  [][]string
		total int64
	)
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			strconv.FormatInt(info.Rows, 10),
			strconv.Itoa(len(info.Columns)),
		})
		total += info.Rows
	}
	rows = append(rows, []string{"", "", ""}, []string{"Total", strconv.FormatInt(total, 10), ""})

	v.printf("%s\n", v.table(
		[]string{"Table", "Records", "Columns"},
		rows,
		map[int]lipgloss.Position{1: lipgloss.Right, 2: lipgloss.Right},
	))
}

func (v *Viewer) prompts(ctx context.Context) error {
	rows, err := v.db.QueryContext(ctx, `
		SELECT id, title, content, type, use_case, model_compatibility_tags,
		       temperature_suggestion, updated_at
		FROM prompts
		ORDER BY updated_at DESC
		LIMIT ?`, v.cfg.MaxRowsPerTable)
	if err != nil {
		return fmt.Errorf("querying prompts: %w", err)
	}
	defer rows.Close()

	var panels []string
	for rows.Next() {
		var (
			id, title, content, typ, useCase, models, updated sql.NullString
			temperature                                      sql.NullFloat64
		)
		if err := rows.Scan(&id, &title, &content, &typ, &useCase, &models, &temperature, &updated); err != nil {
			return fmt.Errorf("scanning prompt: %w", err)
		}

		temp := "N/A"
		if temperature.Valid {
			temp = strconv.FormatFloat(temperature.Float64, 'f', -1, 64)
		}
		body := strings.Join([]string{
			v.st.bold.Render(title.String),
			v.label("ID") + format.ShortID(id.String),
			v.label("Type") + typ.String + " | " + v.label("Use Case") + format.OrNA(useCase.String),
			v.label("Models") + format.DecodeStructured(models.String).String(),
			v.label("Temperature") + temp + " | " + v.label("Updated") + format.Timestamp(updated.String),
			"",
			wrap(format.Truncate(content.String, promptPreviewLength)),
		}, "\n")
		panels = append(panels, v.st.prompt.Render(body))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading prompts: %w", err)
	}

	if !v.heading("🎯 Prompts", len(panels)) {
		return nil
	}
	if len(panels) == 0 {
		v.placeholder("No prompts found")
		return nil
	}
	for _, p := range panels {
		v.printf("%s\n", p)
	}
	return nil
}

func (v *Viewer) snippets(ctx context.Context) error {
	rows, err := v.db.QueryContext(ctx, `
		SELECT id, title, content, description, updated_at
		FROM snippets
		ORDER BY updated_at DESC
		LIMIT ?`, v.cfg.MaxRowsPerTable)
	if err != nil {
		return fmt.Errorf("querying snippets: %w", err)
	}
	defer rows.Close()

	var panels []string
	for rows.Next() {
		var id, title, content, description, updated sql.NullString
		if err := rows.Scan(&id, &title, &content, &description, &updated); err != nil {
			return fmt.Errorf("scanning snippet: %w", err)
		}

		body := strings.Join([]string{
			v.st.bold.Render(title.String),
			v.label("ID") + format.ShortID(id.String) + " | " + v.label("Updated") + format.Timestamp(updated.String),
			v.label("Description") + format.OrNA(description.String),
			"",
			v.st.code.Render(wrap(format.Truncate(content.String, v.cfg.MaxContentLength))),
		}, "\n")
		panels = append(panels, v.st.snippet.Render(body))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading snippets: %w", err)
	}

	if !v.heading("📝 Snippets", len(panels)) {
		return nil
	}
	if len(panels) == 0 {
		v.placeholder("No snippets found")
		return nil
	}
	for _, p := range panels {
		v.printf("%s\n", p)
	}
	return nil
}

// notes lists notes with the title of their prompt. A note whose prompt no
// longer exists is still listed, with an empty prompt title.
func (v *Viewer) notes(ctx context.Context) error {
	rows, err := v.db.QueryContext(ctx, `
		SELECT n.title, n.body, n.created_at, p.title
		FROM notes n
		LEFT JOIN prompts p ON n.prompt_id = p.id
		ORDER BY n.created_at DESC
		LIMIT ?`, v.cfg.MaxRowsPerTable)
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var title, body, created, promptTitle sql.NullString
		if err := rows.Scan(&title, &body, &created, &promptTitle); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		out = append(out, []string{
			format.Truncate(title.String, noteTitleLength),
			format.Truncate(promptTitle.String, promptTitleLength),
			format.Truncate(oneLine(body.String), noteBodyLength),
			format.Timestamp(created.String),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading notes: %w", err)
	}

	if !v.heading("📋 Notes", len(out)) {
		return nil
	}
	if len(out) == 0 {
		v.placeholder("No notes found")
		return nil
	}
	v.printf("%s\n", v.table([]string{"Note", "Prompt", "Content", "Created"}, out, nil))
	return nil
}

// tagCount is one row of a tag usage table.
type tagCount struct {
	name  string
	count int
}

func (v *Viewer) tagCounts(ctx context.Context, table string) ([]tagCount, error) {
	rows, err := v.db.QueryContext(ctx, `
		SELECT tag_name, COUNT(*) AS n
		FROM `+sqlite.QuoteIdent(table)+`
		GROUP BY tag_name
		ORDER BY n DESC, tag_name
		LIMIT ?`, v.cfg.MaxRowsPerTable)
	if err != nil {
		// Only one of the two tag tables may exist.
		if strings.Contains(err.Error(), "no such table") {
			return nil, nil
		}
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var counts []tagCount
	for rows.Next() {
		var tc tagCount
		if err := rows.Scan(&tc.name, &tc.count); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

func (v *Viewer) tags(ctx context.Context) error {
	promptTags, err := v.tagCounts(ctx, types.PromptTagsTable)
	if err != nil {
		return err
	}
	snippetTags, err := v.tagCounts(ctx, types.SnippetTagsTable)
	if err != nil {
		return err
	}

	if len(promptTags) == 0 && len(snippetTags) == 0 {
		if v.cfg.ShowEmptyTables {
			v.printf("\n%s\n", v.st.section.Render("🏷️  Tags"))
			v.placeholder("No tags found")
		}
		return nil
	}

	v.printf("\n%s\n", v.st.section.Render("🏷️  Tags"))
	var blocks []string
	for _, group := range []struct {
		title  string
		counts []tagCount
	}{
		{"Prompt Tags", promptTags},
		{"Snippet Tags", snippetTags},
	} {
		if len(group.counts) == 0 {
			continue
		}
		rows := make([][]string, 0, len(group.counts))
		for _, tc := range group.counts {
			rows = append(rows, []string{tc.name, strconv.Itoa(tc.count)})
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			v.st.bold.Render(group.title),
			v.table([]string{"Tag", "Count"}, rows, map[int]lipgloss.Position{1: lipgloss.Right}),
		), "  ")
	}
	v.printf("%s\n", lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	return nil
}

// links lists prompt links with both endpoint titles. Either endpoint may
// be missing, in which case its title is empty.
func (v *Viewer) links(ctx context.Context) error {
	if !v.cfg.ShowRelationships {
		return nil
	}

	rows, err := v.db.QueryContext(ctx, `
		SELECT pl.link_type, p1.title, p2.title
		FROM prompt_links pl
		LEFT JOIN prompts p1 ON pl.from_prompt_id = p1.id
		LEFT JOIN prompts p2 ON pl.to_prompt_id = p2.id
		ORDER BY pl.created_at DESC
		LIMIT ?`, v.cfg.MaxRowsPerTable)
	if err != nil {
		return fmt.Errorf("querying prompt links: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var linkType, from, to sql.NullString
		if err := rows.Scan(&linkType, &from, &to); err != nil {
			return fmt.Errorf("scanning prompt link: %w", err)
		}
		out = append(out, []string{
			format.Truncate(from.String, promptTitleLength),
			linkType.String,
			format.Truncate(to.String, promptTitleLength),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading prompt links: %w", err)
	}

	if !v.heading("🔗 Prompt Relationships", len(out)) {
		return nil
	}
	if len(out) == 0 {
		v.placeholder("No relationships found")
		return nil
	}
	v.printf("%s\n", v.table([]string{"From", "Type", "To"}, out, nil))
	return nil
}

// dump prints any table without a dedicated view. Text columns are cut
// short, JSON columns decoded and timestamp columns reformatted.
func (v *Viewer) dump(ctx context.Context, info tableInfo) error {
	rows, err := v.db.QueryContext(ctx, "SELECT * FROM "+sqlite.QuoteIdent(info.Name)+" LIMIT ?", v.cfg.MaxRowsPerTable)
	if err != nil {
		return fmt.Errorf("querying %s: %w", info.Name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("reading columns of %s: %w", info.Name, err)
	}

	var out [][]string
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scanning %s: %w", info.Name, err)
		}

		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = dumpCell(col, values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", info.Name, err)
	}

	if !v.heading("📄 "+displayName(info.Name), len(out)) {
		return nil
	}
	if len(out) == 0 {
		v.placeholder("No data found")
		return nil
	}

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = format.Truncate(col, dumpHeaderLength)
	}
	v.printf("%s\n", v.table(headers, out, nil))
	return nil
}

func dumpCell(column string, value any) string {
	s := format.Cell(value)
	switch {
	case column == "content" || column == "body":
		return format.Truncate(oneLine(s), dumpTextLength)
	case format.LooksStructured(column):
		if d := format.DecodeStructured(s); d.Decoded() {
			return format.Truncate(d.String(), dumpCellLength)
		}
		return format.Truncate(oneLine(s), dumpCellLength)
	case format.LooksLikeTimestamp(column):
		return format.Timestamp(s)
	default:
		return format.Truncate(oneLine(s), dumpCellLength)
	}
}

func (v *Viewer) label(name string) string {
	return v.st.muted.Render(name+":") + " "
}

// displayName turns snake_case table names into title case.
func displayName(table string) string {
	words := strings.FieldsFunc(table, func(r rune) bool { return r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// oneLine collapses whitespace so multi-line text fits in a table cell.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wrap breaks a panel preview on word boundaries at panelWidth columns.
func wrap(s string) string {
	return wordwrap.String(s, panelWidth)
}
