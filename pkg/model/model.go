package model

import "strings"

// Category is one of the fixed technology-stack categories.
type Category string

const (
	CategoryFrontend       Category = "Frontend"
	CategoryStyling        Category = "Styling"
	CategoryBackend        Category = "Backend"
	CategoryDatabase       Category = "Database"
	CategoryAuthentication Category = "Autenticazione"
	CategoryHosting        Category = "Hosting"
)

// fixedCategories is the canonical presentation and validation order.
// It must never be reordered or extended.
var fixedCategories = [6]Category{
	CategoryFrontend,
	CategoryStyling,
	CategoryBackend,
	CategoryDatabase,
	CategoryAuthentication,
	CategoryHosting,
}

// CategoryCount is the number of fixed categories.
const CategoryCount = len(fixedCategories)

// Categories returns the fixed categories in canonical order.
func Categories() []Category {
	out := make([]Category, CategoryCount)
	copy(out, fixedCategories[:])
	return out
}

// Valid reports whether c exactly matches one of the fixed categories.
func (c Category) Valid() bool {
	for _, fc := range fixedCategories {
		if c == fc {
			return true
		}
	}
	return false
}

// Placeholder sentinels used when the analysis left something unspecified.
const (
	PlaceholderPrimaryName     = "Da definire"
	PlaceholderAlternativeName = "Vedi best practices"
	PlaceholderOptimizedPrompt = "Prompt ottimizzato non disponibile"
	DefaultOverallScore        = 50
)

type AnalysisResult struct {
	OverallScore          int                    `json:"overallScore" yaml:"overallScore"`
	Dimensions            []Dimension            `json:"dimensions" yaml:"dimensions"`
	StrengthsWeaknesses   []StrengthWeakness     `json:"strengthsWeaknesses" yaml:"strengthsWeaknesses"`
	OptimizedPrompt       string                 `json:"optimizedPrompt" yaml:"optimizedPrompt"`
	Technologies          []TechnologySuggestion `json:"technologies" yaml:"technologies"`
	VibeCodingPractices   []BestPractice         `json:"vibeCodingPractices" yaml:"vibeCodingPractices"`
	ArchitecturePractices []BestPractice         `json:"architecturePractices" yaml:"architecturePractices"`
}

// Technology returns the suggestion for the given category, if present.
func (r *AnalysisResult) Technology(c Category) (TechnologySuggestion, bool) {
	for _, t := range r.Technologies {
		if t.Category == c {
			return t, true
		}
	}
	return TechnologySuggestion{}, false
}

type Dimension struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Score       int      `json:"score" yaml:"score"`
	Description string   `json:"description" yaml:"description"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

type StrengthWeakness struct {
	Type        string `json:"type" yaml:"type"` // strength, weakness, opportunity, threat
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type BestPractice struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
	Priority    string `json:"priority,omitempty" yaml:"priority,omitempty"` // high, medium, low
}

// TechnologySuggestion is the recommendation for one fixed category.
type TechnologySuggestion struct {
	Category    Category          `json:"category" yaml:"category"`
	Primary     PrimaryChoice     `json:"primary" yaml:"primary"`
	Alternative AlternativeChoice `json:"alternative" yaml:"alternative"`
}

type PrimaryChoice struct {
	Name   string   `json:"name" yaml:"name"`
	Reason string   `json:"reason" yaml:"reason"`
	Pros   []string `json:"pros" yaml:"pros"`
	Cons   []string `json:"cons" yaml:"cons"`
}

type AlternativeChoice struct {
	Name      string `json:"name" yaml:"name"`
	Reason    string `json:"reason" yaml:"reason"`
	WhenToUse string `json:"whenToUse" yaml:"whenToUse"`
}

// IsPlaceholder reports whether the suggestion was synthesized to fill a gap.
func (t TechnologySuggestion) IsPlaceholder() bool {
	return strings.TrimSpace(t.Primary.Name) == PlaceholderPrimaryName
}

// Payload is the raw, untrusted answer of the analysis backend. Any field may be missing.
type Payload struct {
	OverallScore          *int
	Dimensions            []Dimension
	StrengthsWeaknesses   []StrengthWeakness
	OptimizedPrompt       *string
	Technologies          []TechnologySuggestion
	VibeCodingPractices   []BestPractice
	ArchitecturePractices []BestPractice

	// Error is set when the backend reported a failure in the body.
	Error string
}
