package types

import "time"

// Note is free text attached to a prompt. Notes do not outlive their prompt.
type Note struct {
	ID        string    `json:"id"`
	PromptID  string    `json:"prompt_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
