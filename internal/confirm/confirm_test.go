package confirm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlways(t *testing.T) {
	ok, err := Always(true).Confirm("Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Always(false).Confirm("Proceed?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "uppercase YES", input: "YES\n", want: true},
		{name: "padded", input: "  y  \n", want: true},
		{name: "yes without newline", input: "yes", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
		{name: "other word", input: "yeah\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := Prompt{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.Confirm("Are you sure?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Are you sure? (yes/no): ")
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("terminal gone") }

func TestPromptReadError(t *testing.T) {
	p := Prompt{In: failingReader{}, Out: &bytes.Buffer{}}
	_, err := p.Confirm("Proceed?")
	assert.ErrorContains(t, err, "terminal gone")
}
