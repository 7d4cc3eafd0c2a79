package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dikkadev/proompt-dbtools/internal/sqlite"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// Insert writes ds to db in one transaction, parents before children:
// prompts, snippets, notes, prompt tags, snippet tags, prompt links. Any
// failure rolls back everything written by the call.
func Insert(ctx context.Context, db *sqlite.DB, ds Dataset, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		table string
		fn    func(context.Context, *sql.Tx, Dataset) error
	}{
		{types.PromptsTable, insertPrompts},
		{types.SnippetsTable, insertSnippets},
		{types.NotesTable, insertNotes},
		{types.PromptTagsTable, insertPromptTags},
		{types.SnippetTagsTable, insertSnippetTags},
		{types.PromptLinksTable, insertPromptLinks},
	}
	for _, step := range steps {
		if err := step.fn(ctx, tx, ds); err != nil {
			return fmt.Errorf("inserting %s: %w", step.table, err)
		}
		log.Debug("inserted rows", zap.String("table", step.table))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	log.Info("seed complete",
		zap.Int("prompts", len(ds.Prompts)),
		zap.Int("snippets", len(ds.Snippets)),
		zap.Int("notes", len(ds.Notes)))
	return nil
}

func insertPrompts(ctx context.Context, tx *sql.Tx, ds Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO prompts
		(id, title, content, type, use_case, model_compatibility_tags,
		 temperature_suggestion, other_parameters, created_at, updated_at, git_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range ds.Prompts {
		models, err := json.Marshal(p.ModelCompatibilityTags)
		if err != nil {
			return fmt.Errorf("encoding models of %s: %w", p.ID, err)
		}
		params, err := json.Marshal(p.OtherParameters)
		if err != nil {
			return fmt.Errorf("encoding parameters of %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Title, p.Content, string(p.Type), nullString(p.UseCase),
			string(models), p.TemperatureSuggestion, string(params),
			timestamp(p.CreatedAt), timestamp(p.UpdatedAt), p.GitRef,
		); err != nil {
			return fmt.Errorf("prompt %s: %w", p.ID, err)
		}
	}
	return nil
}

func insertSnippets(ctx context.Context, tx *sql.Tx, ds Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snippets
		(id, title, content, description, created_at, updated_at, git_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range ds.Snippets {
		if _, err := stmt.ExecContext(ctx,
			s.ID, s.Title, s.Content, nullString(s.Description),
			timestamp(s.CreatedAt), timestamp(s.UpdatedAt), s.GitRef,
		); err != nil {
			return fmt.Errorf("snippet %s: %w", s.ID, err)
		}
	}
	return nil
}

func insertNotes(ctx context.Context, tx *sql.Tx, ds Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO notes
		(id, prompt_id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, n := range ds.Notes {
		if _, err := stmt.ExecContext(ctx,
			n.ID, n.PromptID, n.Title, n.Body,
			timestamp(n.CreatedAt), timestamp(n.UpdatedAt),
		); err != nil {
			return fmt.Errorf("note %s: %w", n.ID, err)
		}
	}
	return nil
}

func insertPromptTags(ctx context.Context, tx *sql.Tx, ds Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO prompt_tags (prompt_id, tag_name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range ds.PromptTags {
		if _, err := stmt.ExecContext(ctx, t.PromptID, t.TagName); err != nil {
			return fmt.Errorf("tag %q on prompt %s: %w", t.TagName, t.PromptID, err)
		}
	}
	return nil
}

func insertSnippetTags(ctx context.Context, tx *sql.Tx, ds Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snippet_tags (snippet_id, tag_name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range ds.SnippetTags {
		if _, err := stmt.ExecContext(ctx, t.SnippetID, t.TagName); err != nil {
			return fmt.Errorf("tag %q on snippet %s: %w", t.TagName, t.SnippetID, err)
		}
	}
	return nil
}

func insertPromptLinks(ctx context.Context, tx *sql.Tx, ds Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO prompt_links
		(from_prompt_id, to_prompt_id, link_type, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range ds.PromptLinks {
		if _, err := stmt.ExecContext(ctx,
			l.FromPromptID, l.ToPromptID, string(l.LinkType), timestamp(l.CreatedAt),
		); err != nil {
			return fmt.Errorf("link %s -> %s: %w", l.FromPromptID, l.ToPromptID, err)
		}
	}
	return nil
}

// timestamp renders t the way the server stores it.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
