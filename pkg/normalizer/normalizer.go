// Package normalizer turns a partial analysis payload into a complete AnalysisResult.
//
// Nothing here fails or logs: missing data is replaced by neutral defaults and every
// repair is returned as a model.Correction for the caller to report.
package normalizer

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/helmcode/vibe-analyzer/pkg/model"
)

// ValidateAndSync normalizes raw and reports whether any correction was needed.
func ValidateAndSync(raw *model.Payload) *model.Report {
	result, corrections := Normalize(raw)
	return &model.Report{
		Result:      result,
		IsSynced:    len(corrections) == 0,
		Corrections: corrections,
	}
}

// Normalize builds a fully populated result from raw. A nil payload is treated as empty.
func Normalize(raw *model.Payload) (model.AnalysisResult, []model.Correction) {
	if raw == nil {
		raw = &model.Payload{}
	}
	corrections := []model.Correction{}

	score := model.DefaultOverallScore
	if raw.OverallScore != nil {
		score = *raw.OverallScore
		if score < 0 || score > 100 {
			corrections = append(corrections, model.Correction{
				Field:  "overallScore",
				Kind:   model.KindScoreOutOfRange,
				Detail: strconv.Itoa(score),
			})
			score = min(max(score, 0), 100)
		}
	}

	result := model.AnalysisResult{
		OverallScore:          score,
		Dimensions:            orEmpty(raw.Dimensions, "dimensions", &corrections),
		StrengthsWeaknesses:   orEmpty(raw.StrengthsWeaknesses, "strengthsWeaknesses", &corrections),
		OptimizedPrompt:       model.PlaceholderOptimizedPrompt,
		VibeCodingPractices:   orEmpty(raw.VibeCodingPractices, "vibeCodingPractices", &corrections),
		ArchitecturePractices: orEmpty(raw.ArchitecturePractices, "architecturePractices", &corrections),
	}
	if raw.OptimizedPrompt != nil && *raw.OptimizedPrompt != "" {
		result.OptimizedPrompt = *raw.OptimizedPrompt
	}

	if n := len(raw.Technologies); n < model.CategoryCount {
		corrections = append(corrections, model.Correction{
			Field:  "technologies",
			Kind:   model.KindIncompleteCategories,
			Detail: fmt.Sprintf("%d/%d", n, model.CategoryCount),
		})
	}
	result.Technologies = EnsureAllCategories(raw.Technologies)

	return result, corrections
}

// EnsureAllCategories returns exactly one suggestion per fixed category in canonical
// order. Gaps are filled with placeholders, duplicates keep the last entry and unknown
// categories are dropped.
func EnsureAllCategories(technologies []model.TechnologySuggestion) []model.TechnologySuggestion {
	byCategory := make(map[model.Category]model.TechnologySuggestion, len(technologies))
	for _, t := range technologies {
		if !t.Category.Valid() {
			continue
		}
		byCategory[t.Category] = t
	}

	out := make([]model.TechnologySuggestion, 0, model.CategoryCount)
	for _, c := range model.Categories() {
		t, ok := byCategory[c]
		if !ok {
			out = append(out, Placeholder(c))
			continue
		}
		out = append(out, withLists(t))
	}
	return out
}

// Placeholder synthesizes the suggestion used for a category the analysis did not cover.
func Placeholder(c model.Category) model.TechnologySuggestion {
	return model.TechnologySuggestion{
		Category: c,
		Primary: model.PrimaryChoice{
			Name:   model.PlaceholderPrimaryName,
			Reason: "L'AI non ha fornito un suggerimento per questa categoria",
			Pros:   []string{"Flessibilità nella scelta"},
			Cons:   []string{"Richiede valutazione manuale"},
		},
		Alternative: model.AlternativeChoice{
			Name:      model.PlaceholderAlternativeName,
			Reason:    "Consulta la documentazione del settore",
			WhenToUse: "Quando hai requisiti specifici",
		},
	}
}

func withLists(t model.TechnologySuggestion) model.TechnologySuggestion {
	if t.Primary.Pros == nil {
		t.Primary.Pros = []string{}
	}
	if t.Primary.Cons == nil {
		t.Primary.Cons = []string{}
	}
	return t
}

func orEmpty[T any](items []T, field string, corrections *[]model.Correction) []T {
	if len(items) > 0 {
		return slices.Clone(items)
	}
	*corrections = append(*corrections, model.Correction{Field: field, Kind: model.KindMissingField})
	return []T{}
}
