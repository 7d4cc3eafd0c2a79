package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proompt-tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /srv/proompt/data/proompt.db
display:
  max_content_length: 60
  show_relationships: false
seed:
  prompts: 20
  seed: 42
log:
  level: debug
  file: /var/log/proompt-tools.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/proompt/data/proompt.db", cfg.Database.Path)
	assert.Equal(t, 60, cfg.Display.MaxContentLength)
	assert.False(t, cfg.Display.ShowRelationships)
	assert.True(t, cfg.Display.ShowEmptyTables, "unset keys keep their defaults")
	assert.Equal(t, 50, cfg.Display.MaxRowsPerTable)
	assert.Equal(t, 20, cfg.Seed.Prompts)
	assert.Equal(t, 8, cfg.Seed.Snippets)
	assert.EqualValues(t, 42, cfg.Seed.RandomSeed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/proompt-tools.log", cfg.Log.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "display:\n  max_rows_per_table: 10\n")
	t.Setenv("PROOMPT_DISPLAY_MAX_ROWS_PER_TABLE", "25")
	t.Setenv("PROOMPT_SEED_PROMPT_LINKS", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Display.MaxRowsPerTable)
	assert.Equal(t, 9, cfg.Seed.PromptLinks)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "row limit must be positive",
			body:    "display:\n  max_rows_per_table: 0\n",
			wantErr: ErrInvalidDisplay,
		},
		{
			name:    "content length too small",
			body:    "display:\n  max_content_length: 2\n",
			wantErr: ErrInvalidDisplay,
		},
		{
			name:    "unknown color scheme",
			body:    "display:\n  color_scheme: neon\n",
			wantErr: ErrUnknownColorScheme,
		},
		{
			name:    "negative prompt count",
			body:    "seed:\n  prompts: -1\n",
			wantErr: ErrInvalidSeedCounts,
		},
		{
			name:    "zero tag maximum",
			body:    "seed:\n  max_prompt_tags: 0\n",
			wantErr: ErrInvalidSeedCounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "display: [unclosed\n"))
	assert.Error(t, err)
}

func TestYAMLRoundTripsThroughLoad(t *testing.T) {
	want := Default()
	want.Seed.Prompts = 30

	body, err := want.YAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(body), &decoded))
	assert.Contains(t, decoded, "display")
	assert.Contains(t, decoded, "seed")

	got, err := Load(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
