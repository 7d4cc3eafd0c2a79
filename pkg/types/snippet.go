package types

import "time"

// Snippet is a reusable block of content. Prompts refer to it as @Title.
type Snippet struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	GitRef      *string   `json:"git_ref"`
}

// SnippetTag associates a tag name with a snippet.
type SnippetTag struct {
	SnippetID string `json:"snippet_id"`
	TagName   string `json:"tag_name"`
}
