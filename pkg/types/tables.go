package types

// Core table names owned by the proompt server schema.
const (
	PromptsTable     = "prompts"
	SnippetsTable    = "snippets"
	NotesTable       = "notes"
	PromptTagsTable  = "prompt_tags"
	SnippetTagsTable = "snippet_tags"
	PromptLinksTable = "prompt_links"
)

// CoreTableNames lists the core tables in insert dependency order.
var CoreTableNames = []string{
	PromptsTable,
	SnippetsTable,
	NotesTable,
	PromptTagsTable,
	SnippetTagsTable,
	PromptLinksTable,
}

// Full-text search indexes maintained over prompts, snippets and notes.
const (
	PromptsFTS  = "prompts_fts"
	SnippetsFTS = "snippets_fts"
	NotesFTS    = "notes_fts"
)

// KnownFTSIndexes lists the FTS indexes the server schema is known to create.
var KnownFTSIndexes = []string{
	PromptsFTS,
	SnippetsFTS,
	NotesFTS,
}

// FTSShadowSuffixes are the suffixes SQLite FTS5 appends to a virtual table
// name for its backing shadow tables.
var FTSShadowSuffixes = []string{
	"_data",
	"_idx",
	"_docsize",
	"_config",
	"_content",
}
