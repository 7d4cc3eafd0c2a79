package types

import "time"

// LinkType names the relationship a prompt link expresses.
type LinkType string

// Link types accepted by the server.
const (
	LinkTypeFollowup     LinkType = "followup"
	LinkTypeRelated      LinkType = "related"
	LinkTypePrerequisite LinkType = "prerequisite"
	LinkTypeAlternative  LinkType = "alternative"
)

// LinkTypes lists every valid LinkType.
var LinkTypes = []LinkType{
	LinkTypeFollowup,
	LinkTypeRelated,
	LinkTypePrerequisite,
	LinkTypeAlternative,
}

// Valid reports whether lt is one of the known link types.
func (lt LinkType) Valid() bool {
	switch lt {
	case LinkTypeFollowup, LinkTypeRelated, LinkTypePrerequisite, LinkTypeAlternative:
		return true
	}
	return false
}

// PromptLink is a directed edge between two prompts.
type PromptLink struct {
	FromPromptID string    `json:"from_prompt_id"`
	ToPromptID   string    `json:"to_prompt_id"`
	LinkType     LinkType  `json:"link_type"`
	CreatedAt    time.Time `json:"created_at"`
}
