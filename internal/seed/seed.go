// Package seed generates a synthetic proompt dataset and writes it to an
// existing database in a single transaction.
package seed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/dikkadev/proompt-dbtools/internal/config"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// createdWindow bounds how far back generated creation timestamps reach.
const createdWindow = 30 * 24 * time.Hour

// Dataset is everything one seeding run inserts, in insertion order.
type Dataset struct {
	Prompts     []types.Prompt
	Snippets    []types.Snippet
	Notes       []types.Note
	PromptTags  []types.PromptTag
	SnippetTags []types.SnippetTag
	PromptLinks []types.PromptLink
}

// TableCount is the number of rows a dataset holds for one table.
type TableCount struct {
	Table string
	Label string
	Count int
}

// Summary reports per-table row counts in insertion order.
func (d Dataset) Summary() []TableCount {
	return []TableCount{
		{types.PromptsTable, "Prompts", len(d.Prompts)},
		{types.SnippetsTable, "Snippets", len(d.Snippets)},
		{types.NotesTable, "Notes", len(d.Notes)},
		{types.PromptTagsTable, "Prompt tags", len(d.PromptTags)},
		{types.SnippetTagsTable, "Snippet tags", len(d.SnippetTags)},
		{types.PromptLinksTable, "Prompt links", len(d.PromptLinks)},
	}
}

// NewFaker returns the random source for a run. A zero seed gives a
// different dataset on every run.
func NewFaker(seed uint64) *gofakeit.Faker {
	return gofakeit.New(seed)
}

// generator carries the state shared by one Generate call.
type generator struct {
	cfg  config.Seed
	f    *gofakeit.Faker
	now  time.Time
	used map[string]struct{}
}

// Generate builds a dataset from cfg. Hand-authored prompts and snippets
// come first; cfg.Prompts and cfg.Snippets are totals, so values below the
// hand-authored counts produce only the hand-authored entries. Every ID is
// unique within the dataset and every note, tag and link refers to an
// entity in it.
func Generate(cfg config.Seed, f *gofakeit.Faker, now time.Time) Dataset {
	g := &generator{cfg: cfg, f: f, now: now.UTC(), used: make(map[string]struct{})}

	var ds Dataset
	ds.Prompts = g.prompts()
	ds.Snippets = g.snippets()
	for _, p := range ds.Prompts {
		ds.Notes = append(ds.Notes, g.notes(p.ID)...)
	}
	for _, p := range ds.Prompts {
		for _, tag := range g.tags(cfg.MaxPromptTags) {
			ds.PromptTags = append(ds.PromptTags, types.PromptTag{PromptID: p.ID, TagName: tag})
		}
	}
	for _, s := range ds.Snippets {
		for _, tag := range g.tags(cfg.MaxSnippetTags) {
			ds.SnippetTags = append(ds.SnippetTags, types.SnippetTag{SnippetID: s.ID, TagName: tag})
		}
	}
	ds.PromptLinks = g.links(ds.Prompts)
	return ds
}

func (g *generator) prompts() []types.Prompt {
	prompts := make([]types.Prompt, 0, max(g.cfg.Prompts, len(predefinedPrompts)))
	for _, sp := range predefinedPrompts {
		created := g.createdAt()
		prompts = append(prompts, types.Prompt{
			ID:                     g.newID(),
			Title:                  sp.title,
			Content:                sp.content,
			Type:                   sp.promptType,
			UseCase:                sp.useCase,
			ModelCompatibilityTags: append([]string(nil), sp.models...),
			TemperatureSuggestion:  ptr(sp.temperature),
			OtherParameters:        map[string]any{"max_tokens": 2000},
			CreatedAt:              created,
			UpdatedAt:              g.now,
		})
	}

	for i := len(predefinedPrompts); i < g.cfg.Prompts; i++ {
		prompts = append(prompts, types.Prompt{
			ID:                     g.newID(),
			Title:                  g.title(),
			Content:                g.f.RandomString(promptTemplates),
			Type:                   types.PromptTypes[g.f.IntN(len(types.PromptTypes))],
			UseCase:                g.f.RandomString(generatedUseCases),
			ModelCompatibilityTags: g.pick(generatedModels, 2),
			TemperatureSuggestion:  ptr(math.Round(g.f.Float64Range(0.1, 1.0)*10) / 10),
			OtherParameters:        map[string]any{"max_tokens": g.f.IntRange(500, 4000)},
			CreatedAt:              g.createdAt(),
			UpdatedAt:              g.now,
		})
	}
	return prompts
}

// snippets returns the hand-authored snippets followed by snippets drawn
// from the template pool. Once the pool is exhausted titles get a round
// suffix so they stay distinct.
func (g *generator) snippets() []types.Snippet {
	snippets := make([]types.Snippet, 0, max(g.cfg.Snippets, len(predefinedSnippets)))
	for _, ss := range predefinedSnippets {
		snippets = append(snippets, g.snippet(ss.title, ss))
	}

	for i := 0; len(predefinedSnippets)+i < g.cfg.Snippets; i++ {
		ss := snippetTemplates[i%len(snippetTemplates)]
		title := ss.title
		if round := i / len(snippetTemplates); round > 0 {
			title = fmt.Sprintf("%s_%d", ss.title, round+1)
		}
		snippets = append(snippets, g.snippet(title, ss))
	}
	return snippets
}

func (g *generator) snippet(title string, ss sampleSnippet) types.Snippet {
	return types.Snippet{
		ID:          g.newID(),
		Title:       title,
		Content:     ss.content,
		Description: ss.description,
		CreatedAt:   g.createdAt(),
		UpdatedAt:   g.now,
	}
}

func (g *generator) notes(promptID string) []types.Note {
	n := g.f.IntRange(0, max(g.cfg.MaxNotesPerPrompt, 0))
	notes := make([]types.Note, 0, n)
	for range n {
		notes = append(notes, types.Note{
			ID:        g.newID(),
			PromptID:  promptID,
			Title:     strings.TrimSuffix(g.f.LoremIpsumSentence(4), "."),
			Body:      noteBody(g.f.LoremIpsumParagraph(1, 3, 12, " ")),
			CreatedAt: g.createdAt(),
			UpdatedAt: g.now,
		})
	}
	return notes
}

// tags returns between 1 and limit distinct names from the vocabulary.
func (g *generator) tags(limit int) []string {
	limit = min(limit, len(tagVocabulary))
	if limit < 1 {
		return nil
	}
	return g.pick(tagVocabulary, g.f.IntRange(1, limit))
}

// links connects distinct prompts. Each (from, to) pair appears at most
// once, and the count is capped by the number of such pairs.
func (g *generator) links(prompts []types.Prompt) []types.PromptLink {
	n := len(prompts)
	want := min(g.cfg.PromptLinks, n*(n-1))
	if want <= 0 {
		return nil
	}

	type pair struct{ from, to int }
	var pairs []pair
	if want*2 < n*(n-1) {
		seen := make(map[pair]struct{}, want)
		for len(pairs) < want {
			p := pair{g.f.IntN(n), g.f.IntN(n)}
			if p.from == p.to {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	} else {
		for from := range n {
			for to := range n {
				if from != to {
					pairs = append(pairs, pair{from, to})
				}
			}
		}
		g.f.ShuffleAnySlice(pairs)
		pairs = pairs[:want]
	}

	links := make([]types.PromptLink, 0, want)
	for _, p := range pairs {
		links = append(links, types.PromptLink{
			FromPromptID: prompts[p.from].ID,
			ToPromptID:   prompts[p.to].ID,
			LinkType:     types.LinkTypes[g.f.IntN(len(types.LinkTypes))],
			CreatedAt:    g.createdAt(),
		})
	}
	return links
}

// newID returns a UUID not yet issued in this run.
func (g *generator) newID() string {
	for {
		id := generateUUID()
		if _, dup := g.used[id]; !dup {
			g.used[id] = struct{}{}
			return id
		}
	}
}

func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

func (g *generator) createdAt() time.Time {
	return g.f.DateRange(g.now.Add(-createdWindow), g.now).UTC().Truncate(time.Second)
}

func (g *generator) title() string {
	words := strings.Fields(g.f.BuzzWord() + " " + g.f.BS())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// pick returns n distinct elements of from in random order.
func (g *generator) pick(from []string, n int) []string {
	out := append([]string(nil), from...)
	g.f.ShuffleStrings(out)
	return out[:min(n, len(out))]
}

// noteBody caps a generated paragraph at 200 characters on a word boundary.
func noteBody(s string) string {
	const limit = 200
	if len(s) <= limit {
		return s
	}
	cut := strings.LastIndexByte(s[:limit], ' ')
	if cut <= 0 {
		cut = limit
	}
	return strings.TrimRight(s[:cut], " ,") + "."
}

func ptr[T any](v T) *T { return &v }
