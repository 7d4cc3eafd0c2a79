package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptTypeValid(t *testing.T) {
	tests := []struct {
		name string
		pt   PromptType
		want bool
	}{
		{name: "system", pt: PromptTypeSystem, want: true},
		{name: "user", pt: PromptTypeUser, want: true},
		{name: "image", pt: PromptTypeImage, want: true},
		{name: "video", pt: PromptTypeVideo, want: true},
		{name: "empty", pt: "", want: false},
		{name: "unknown", pt: "audio", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pt.Valid())
		})
	}
}

func TestLinkTypeValid(t *testing.T) {
	for _, lt := range LinkTypes {
		assert.True(t, lt.Valid(), "expected %q to be valid", lt)
	}
	assert.False(t, LinkType("duplicate").Valid())
	assert.False(t, LinkType("").Valid())
}

func TestCoreTableNames(t *testing.T) {
	assert.Len(t, CoreTableNames, 6)
	assert.Equal(t, PromptsTable, CoreTableNames[0], "prompts must be inserted first")
}
