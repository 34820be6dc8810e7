package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/vibe-analyzer/pkg/model"
	"github.com/helmcode/vibe-analyzer/pkg/normalizer"
)

func suggestion(c model.Category, name string, cons ...string) model.TechnologySuggestion {
	return model.TechnologySuggestion{
		Category: c,
		Primary:  model.PrimaryChoice{Name: name, Cons: cons},
	}
}

func ids(ms []Milestone) []string {
	var out []string
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func byID(ms []Milestone, id string) Milestone {
	for _, m := range ms {
		if m.ID == id {
			return m
		}
	}
	return Milestone{}
}

func TestGenerate_FullStack(t *testing.T) {
	stack := normalizer.EnsureAllCategories([]model.TechnologySuggestion{
		suggestion(model.CategoryFrontend, "React", "Bundle pesante"),
		suggestion(model.CategoryStyling, "Tailwind CSS"),
		suggestion(model.CategoryBackend, "Edge Functions"),
		suggestion(model.CategoryDatabase, "PostgreSQL", "Scaling verticale"),
		suggestion(model.CategoryAuthentication, "Supabase Auth"),
		suggestion(model.CategoryHosting, "Vercel"),
	})

	ms := Generate(stack)

	assert.Equal(t, []string{"setup", "database", "auth", "backend", "frontend-core", "features", "testing", "deploy"}, ids(ms))
	for i, m := range ms {
		assert.Equal(t, i, m.Phase)
	}
	assert.Equal(t, []string{"database"}, byID(ms, "auth").Dependencies)
	assert.Equal(t, []string{"frontend-core"}, byID(ms, "features").Dependencies)
	assert.Equal(t, "React + Tailwind CSS", byID(ms, "frontend-core").Technology)
	assert.Contains(t, byID(ms, "database").Risks, "Scaling verticale")
	assert.Contains(t, byID(ms, "setup").Tasks, "Configurare Vercel per il deployment")
	assert.Equal(t, "Deployment su Vercel e go-live", byID(ms, "deploy").Description)
	assert.Equal(t, 2+3+4+5+7+10+4+2, TotalDays(ms))
	assert.Equal(t, "2-3 giorni", byID(ms, "database").Duration())
}

func TestGenerate_PlaceholdersSkipPhases(t *testing.T) {
	stack := normalizer.EnsureAllCategories([]model.TechnologySuggestion{
		suggestion(model.CategoryBackend, "Express"),
	})

	ms := Generate(stack)

	assert.Equal(t, []string{"setup", "backend", "features", "testing", "deploy"}, ids(ms))
	assert.Equal(t, []string{"setup"}, byID(ms, "backend").Dependencies)
	assert.Equal(t, []string{"backend"}, byID(ms, "features").Dependencies)
	assert.Contains(t, byID(ms, "setup").Tasks, "Scegliere la piattaforma di hosting")
	assert.Equal(t, "Deployment su produzione e go-live", byID(ms, "deploy").Description)
	assert.Empty(t, byID(ms, "deploy").Technology)
}

func TestGenerate_FrontendWithoutStyling(t *testing.T) {
	ms := Generate([]model.TechnologySuggestion{suggestion(model.CategoryFrontend, "Svelte")})

	fe := byID(ms, "frontend-core")
	assert.Equal(t, "Svelte + CSS", fe.Technology)
	assert.Contains(t, fe.Tasks, "Configurare il sistema CSS")
}

func TestTracker(t *testing.T) {
	ms := Generate(nil)
	require.Equal(t, []string{"setup", "features", "testing", "deploy"}, ids(ms))
	tr := NewTracker(ms)

	assert.True(t, tr.CanStart("setup"))
	assert.False(t, tr.CanStart("features"))
	assert.False(t, tr.Toggle("features"))
	assert.False(t, tr.CanStart("unknown"))

	assert.True(t, tr.Toggle("setup"))
	assert.True(t, tr.IsCompleted("setup"))
	assert.True(t, tr.CanStart("features"))

	rejected := tr.Complete("features", "deploy", "testing")
	assert.Equal(t, []string{"deploy"}, rejected)

	done, total := tr.Progress()
	assert.Equal(t, 3, done)
	assert.Equal(t, 4, total)

	assert.True(t, tr.Toggle("setup"))
	assert.False(t, tr.IsCompleted("setup"))
}
