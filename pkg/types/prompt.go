package types

import "time"

// PromptType classifies what a prompt is written for.
type PromptType string

// Prompt types accepted by the server.
const (
	PromptTypeSystem PromptType = "system"
	PromptTypeUser   PromptType = "user"
	PromptTypeImage  PromptType = "image"
	PromptTypeVideo  PromptType = "video"
)

// PromptTypes lists every valid PromptType.
var PromptTypes = []PromptType{
	PromptTypeSystem,
	PromptTypeUser,
	PromptTypeImage,
	PromptTypeVideo,
}

// Valid reports whether pt is one of the known prompt types.
func (pt PromptType) Valid() bool {
	switch pt {
	case PromptTypeSystem, PromptTypeUser, PromptTypeImage, PromptTypeVideo:
		return true
	}
	return false
}

// Prompt is a stored instruction template. Content may contain {{name}} and
// {{name:default}} placeholders and @snippet_title references.
type Prompt struct {
	ID                     string         `json:"id"`
	Title                  string         `json:"title"`
	Content                string         `json:"content"`
	Type                   PromptType     `json:"type"`
	UseCase                string         `json:"use_case"`
	ModelCompatibilityTags []string       `json:"model_compatibility_tags"`
	TemperatureSuggestion  *float64       `json:"temperature_suggestion"`
	OtherParameters        map[string]any `json:"other_parameters"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	GitRef                 *string        `json:"git_ref"`
}

// PromptTag associates a tag name with a prompt.
type PromptTag struct {
	PromptID string `json:"prompt_id"`
	TagName  string `json:"tag_name"`
}
