// Package config loads the tools' settings with Viper. Values come from, in
// increasing precedence: built-in defaults, an optional YAML file and
// PROOMPT_* environment variables. The result is a plain Config value that
// callers pass explicitly to each operation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "PROOMPT"
	configFileType = "yaml"
)

// Config keys.
const (
	KeyDatabasePath = "database.path"

	KeyMaxContentLength  = "display.max_content_length"
	KeyMaxRowsPerTable   = "display.max_rows_per_table"
	KeyShowEmptyTables   = "display.show_empty_tables"
	KeyShowRelationships = "display.show_relationships"
	KeyShowMetadata      = "display.show_metadata"
	KeyColorScheme       = "display.color_scheme"

	KeySeedPrompts           = "seed.prompts"
	KeySeedSnippets          = "seed.snippets"
	KeySeedMaxNotesPerPrompt = "seed.max_notes_per_prompt"
	KeySeedMaxPromptTags     = "seed.max_prompt_tags"
	KeySeedMaxSnippetTags    = "seed.max_snippet_tags"
	KeySeedPromptLinks       = "seed.prompt_links"
	KeySeedRandomSeed        = "seed.seed"

	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"
)

// Color schemes accepted by display.color_scheme.
const (
	ColorAuto  = "auto"
	ColorLight = "light"
	ColorDark  = "dark"
	ColorNone  = "none"
)

// Config is the full tool configuration.
type Config struct {
	Database Database `mapstructure:"database" yaml:"database"`
	Display  Display  `mapstructure:"display" yaml:"display"`
	Seed     Seed     `mapstructure:"seed" yaml:"seed"`
	Log      Log      `mapstructure:"log" yaml:"log"`
}

// Database locates the proompt database file. An empty path defers to the
// PROOMPT_DB_PATH variable and then ./data/proompt.db.
type Database struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

// Display controls what the viewer prints.
type Display struct {
	MaxContentLength  int    `mapstructure:"max_content_length" yaml:"max_content_length"`
	MaxRowsPerTable   int    `mapstructure:"max_rows_per_table" yaml:"max_rows_per_table"`
	ShowEmptyTables   bool   `mapstructure:"show_empty_tables" yaml:"show_empty_tables"`
	ShowRelationships bool   `mapstructure:"show_relationships" yaml:"show_relationships"`
	ShowMetadata      bool   `mapstructure:"show_metadata" yaml:"show_metadata"`
	ColorScheme       string `mapstructure:"color_scheme" yaml:"color_scheme"`
}

// Seed controls how much sample data the seeder generates. Prompts and
// Snippets are totals including the hand-authored entries.
type Seed struct {
	Prompts           int    `mapstructure:"prompts" yaml:"prompts"`
	Snippets          int    `mapstructure:"snippets" yaml:"snippets"`
	MaxNotesPerPrompt int    `mapstructure:"max_notes_per_prompt" yaml:"max_notes_per_prompt"`
	MaxPromptTags     int    `mapstructure:"max_prompt_tags" yaml:"max_prompt_tags"`
	MaxSnippetTags    int    `mapstructure:"max_snippet_tags" yaml:"max_snippet_tags"`
	PromptLinks       int    `mapstructure:"prompt_links" yaml:"prompt_links"`
	RandomSeed        uint64 `mapstructure:"seed" yaml:"seed"`
}

// Log controls diagnostic logging on stderr. File, when set, also receives
// every entry.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

// Validation errors.
var (
	ErrInvalidDisplay     = errors.New("invalid display settings")
	ErrInvalidSeedCounts  = errors.New("invalid seed counts")
	ErrUnknownColorScheme = errors.New("unknown color scheme")
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{
			MaxContentLength:  100,
			MaxRowsPerTable:   50,
			ShowEmptyTables:   true,
			ShowRelationships: true,
			ShowMetadata:      true,
			ColorScheme:       ColorAuto,
		},
		Seed: Seed{
			Prompts:           15,
			Snippets:          8,
			MaxNotesPerPrompt: 4,
			MaxPromptTags:     5,
			MaxSnippetTags:    4,
			PromptLinks:       5,
		},
		Log: Log{Level: "warn"},
	}
}

// Load reads configFile (optional; "" skips the file) and the environment on
// top of Default. It validates the result.
func Load(configFile string) (Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(configFileType)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newViper registers every default so environment variables bind to keys
// that never appear in a config file.
func newViper() *viper.Viper {
	d := Default()
	v := viper.New()

	v.SetDefault(KeyDatabasePath, d.Database.Path)

	v.SetDefault(KeyMaxContentLength, d.Display.MaxContentLength)
	v.SetDefault(KeyMaxRowsPerTable, d.Display.MaxRowsPerTable)
	v.SetDefault(KeyShowEmptyTables, d.Display.ShowEmptyTables)
	v.SetDefault(KeyShowRelationships, d.Display.ShowRelationships)
	v.SetDefault(KeyShowMetadata, d.Display.ShowMetadata)
	v.SetDefault(KeyColorScheme, d.Display.ColorScheme)

	v.SetDefault(KeySeedPrompts, d.Seed.Prompts)
	v.SetDefault(KeySeedSnippets, d.Seed.Snippets)
	v.SetDefault(KeySeedMaxNotesPerPrompt, d.Seed.MaxNotesPerPrompt)
	v.SetDefault(KeySeedMaxPromptTags, d.Seed.MaxPromptTags)
	v.SetDefault(KeySeedMaxSnippetTags, d.Seed.MaxSnippetTags)
	v.SetDefault(KeySeedPromptLinks, d.Seed.PromptLinks)
	v.SetDefault(KeySeedRandomSeed, d.Seed.RandomSeed)

	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate checks the settings that would otherwise make an operation
// misbehave rather than fail.
func (c Config) Validate() error {
	if c.Display.MaxContentLength < 4 {
		return fmt.Errorf("%w: max_content_length must be at least 4, got %d", ErrInvalidDisplay, c.Display.MaxContentLength)
	}
	if c.Display.MaxRowsPerTable < 1 {
		return fmt.Errorf("%w: max_rows_per_table must be positive, got %d", ErrInvalidDisplay, c.Display.MaxRowsPerTable)
	}
	switch c.Display.ColorScheme {
	case ColorAuto, ColorLight, ColorDark, ColorNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColorScheme, c.Display.ColorScheme)
	}

	s := c.Seed
	if s.Prompts < 0 || s.Snippets < 0 || s.MaxNotesPerPrompt < 0 || s.PromptLinks < 0 {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidSeedCounts)
	}
	if s.MaxPromptTags < 1 || s.MaxSnippetTags < 1 {
		return fmt.Errorf("%w: tag maximums must be at least 1", ErrInvalidSeedCounts)
	}
	return nil
}

// YAML renders c as a config file body.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}
