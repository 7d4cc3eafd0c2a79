// Package sqlitetest builds throwaway proompt databases for tests. The schema
// mirrors the one the proompt server migrations create, including the FTS5
// external-content indexes and the triggers that keep them in sync.
package sqlitetest

// Schema DDL for the core tables.
const (
	createPrompts = `CREATE TABLE prompts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('system', 'user', 'image', 'video')),
    use_case TEXT,
    model_compatibility_tags TEXT,
    temperature_suggestion REAL,
    other_parameters TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    git_ref TEXT
);`

	createSnippets = `CREATE TABLE snippets (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    description TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    git_ref TEXT
);`

	createNotes = `CREATE TABLE notes (
    id TEXT PRIMARY KEY,
    prompt_id TEXT NOT NULL,
    title TEXT NOT NULL,
    body TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
);`

	createPromptTags = `CREATE TABLE prompt_tags (
    prompt_id TEXT NOT NULL,
    tag_name TEXT NOT NULL,
    PRIMARY KEY (prompt_id, tag_name),
    FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
);`

	createSnippetTags = `CREATE TABLE snippet_tags (
    snippet_id TEXT NOT NULL,
    tag_name TEXT NOT NULL,
    PRIMARY KEY (snippet_id, tag_name),
    FOREIGN KEY (snippet_id) REFERENCES snippets(id) ON DELETE CASCADE
);`

	createPromptLinks = `CREATE TABLE prompt_links (
    from_prompt_id TEXT NOT NULL,
    to_prompt_id TEXT NOT NULL,
    link_type TEXT NOT NULL CHECK (link_type IN ('followup', 'related', 'prerequisite', 'alternative')),
    created_at DATETIME NOT NULL,
    PRIMARY KEY (from_prompt_id, to_prompt_id, link_type),
    FOREIGN KEY (from_prompt_id) REFERENCES prompts(id) ON DELETE CASCADE,
    FOREIGN KEY (to_prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
);`
)

// FTS5 external-content indexes keyed on the source table rowid.
const (
	createPromptsFTS  = `CREATE VIRTUAL TABLE prompts_fts USING fts5(title, content, use_case, content='prompts', content_rowid='rowid');`
	createSnippetsFTS = `CREATE VIRTUAL TABLE snippets_fts USING fts5(title, content, description, content='snippets', content_rowid='rowid');`
	createNotesFTS    = `CREATE VIRTUAL TABLE notes_fts USING fts5(title, body, content='notes', content_rowid='rowid');`
)

// Triggers keeping the FTS indexes in sync with their source tables.
const (
	triggerPromptsInsert = `CREATE TRIGGER prompts_fts_insert AFTER INSERT ON prompts BEGIN
    INSERT INTO prompts_fts(rowid, title, content, use_case) VALUES (new.rowid, new.title, new.content, new.use_case);
END;`
	triggerPromptsDelete = `CREATE TRIGGER prompts_fts_delete AFTER DELETE ON prompts BEGIN
    INSERT INTO prompts_fts(prompts_fts, rowid, title, content, use_case) VALUES ('delete', old.rowid, old.title, old.content, old.use_case);
END;`
	triggerSnippetsInsert = `CREATE TRIGGER snippets_fts_insert AFTER INSERT ON snippets BEGIN
    INSERT INTO snippets_fts(rowid, title, content, description) VALUES (new.rowid, new.title, new.content, new.description);
END;`
	triggerSnippetsDelete = `CREATE TRIGGER snippets_fts_delete AFTER DELETE ON snippets BEGIN
    INSERT INTO snippets_fts(snippets_fts, rowid, title, content, description) VALUES ('delete', old.rowid, old.title, old.content, old.description);
END;`
	triggerNotesInsert = `CREATE TRIGGER notes_fts_insert AFTER INSERT ON notes BEGIN
    INSERT INTO notes_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
END;`
	triggerNotesDelete = `CREATE TRIGGER notes_fts_delete AFTER DELETE ON notes BEGIN
    INSERT INTO notes_fts(notes_fts, rowid, title, body) VALUES ('delete', old.rowid, old.title, old.body);
END;`
)

// SchemaDDL lists every statement in dependency order.
var SchemaDDL = []string{
	createPrompts,
	createSnippets,
	createNotes,
	createPromptTags,
	createSnippetTags,
	createPromptLinks,
	createPromptsFTS,
	createSnippetsFTS,
	createNotesFTS,
	triggerPromptsInsert,
	triggerPromptsDelete,
	triggerSnippetsInsert,
	triggerSnippetsDelete,
	triggerNotesInsert,
	triggerNotesDelete,
}

// CoreSchemaDDL is SchemaDDL without any FTS index, for databases created
// before search was added.
var CoreSchemaDDL = []string{
	createPrompts,
	createSnippets,
	createNotes,
	createPromptTags,
	createSnippetTags,
	createPromptLinks,
}
