package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/vibe-analyzer/pkg/model"
)

func TestParsePayload_FencedJSON(t *testing.T) {
	raw := "```json\n" + `{
  "overallScore": 78,
  "optimizedPrompt": "Crea una app di prenotazioni",
  "dimensions": [{"id": "clarity", "name": "Chiarezza", "score": 70, "description": "ok"}],
  "technologies": [
    {"category": "Frontend", "primary": {"name": "React", "reason": "r", "pros": ["a"], "cons": ["b"]},
     "alternative": {"name": "Vue", "reason": "r", "whenToUse": "w"}}
  ]
}` + "\n```"

	p, err := ParsePayload(raw)
	require.NoError(t, err)

	require.NotNil(t, p.OverallScore)
	assert.Equal(t, 78, *p.OverallScore)
	require.NotNil(t, p.OptimizedPrompt)
	assert.Equal(t, "Crea una app di prenotazioni", *p.OptimizedPrompt)
	require.Len(t, p.Dimensions, 1)
	assert.Equal(t, "Chiarezza", p.Dimensions[0].Name)
	require.Len(t, p.Technologies, 1)
	assert.Equal(t, model.CategoryFrontend, p.Technologies[0].Category)
	assert.Equal(t, "Vue", p.Technologies[0].Alternative.Name)
	assert.Nil(t, p.StrengthsWeaknesses)
}

func TestParsePayload_EmptyObject(t *testing.T) {
	p, err := ParsePayload("{}")
	require.NoError(t, err)

	assert.Nil(t, p.OverallScore)
	assert.Nil(t, p.OptimizedPrompt)
	assert.Nil(t, p.Technologies)
	assert.Empty(t, p.Error)
}

func TestParsePayload_MalformedFieldsAreAbsent(t *testing.T) {
	p, err := ParsePayload(`{
  "overallScore": "not a number",
  "dimensions": "none",
  "optimizedPrompt": 12,
  "strengthsWeaknesses": null,
  "technologies": [
    "React",
    null,
    {"category": "Database", "primary": {"name": "PostgreSQL"}},
    {"category": "Hosting", "primary": {"name": "Vercel", "pros": "fast"}}
  ]
}`)
	require.NoError(t, err)

	assert.Nil(t, p.OverallScore)
	assert.Nil(t, p.Dimensions)
	assert.Nil(t, p.OptimizedPrompt)
	assert.Nil(t, p.StrengthsWeaknesses)
	require.Len(t, p.Technologies, 1)
	assert.Equal(t, model.CategoryDatabase, p.Technologies[0].Category)
}

func TestParsePayload_Scores(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: `{"overallScore": 64}`, want: 64},
		{raw: `{"overallScore": 64.6}`, want: 65},
		{raw: `{"overallScore": "81"}`, want: 81},
	}
	for _, tt := range tests {
		p, err := ParsePayload(tt.raw)
		require.NoError(t, err)
		require.NotNil(t, p.OverallScore, tt.raw)
		assert.Equal(t, tt.want, *p.OverallScore, tt.raw)
	}
}

func TestParsePayload_RemoteError(t *testing.T) {
	p, err := ParsePayload(`{"error": "Rate limit exceeded"}`)
	require.NoError(t, err)

	assert.Equal(t, "Rate limit exceeded", p.Error)
}

func TestParsePayload_UnwrapsRenderedReport(t *testing.T) {
	p, err := ParsePayload(`{"result": {"overallScore": 90, "optimizedPrompt": "x"}, "isSynced": true, "corrections": []}`)
	require.NoError(t, err)

	require.NotNil(t, p.OverallScore)
	assert.Equal(t, 90, *p.OverallScore)
}

func TestParsePayload_HardFailures(t *testing.T) {
	_, err := ParsePayload("   ")
	assert.True(t, errors.Is(err, ErrEmptyResponse))

	_, err = ParsePayload("I cannot help with that.")
	assert.True(t, errors.Is(err, ErrMalformedResponse))

	_, err = ParsePayload(`[1, 2, 3]`)
	assert.True(t, errors.Is(err, ErrMalformedResponse))

	_, err = ParsePayload(`null`)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParsePayload_KeepsFencesInsideStrings(t *testing.T) {
	body := `{"optimizedPrompt": "Usa questo schema:\n` + "```sql" + `\nCREATE TABLE x;\n` + "```" + `"}`
	want := "Usa questo schema:\n```sql\nCREATE TABLE x;\n```"

	for name, raw := range map[string]string{
		"bare":   body,
		"fenced": "```json\n" + body + "\n```",
	} {
		t.Run(name, func(t *testing.T) {
			p, err := ParsePayload(raw)
			require.NoError(t, err)

			require.NotNil(t, p.OptimizedPrompt)
			assert.Equal(t, want, *p.OptimizedPrompt)
		})
	}
}
