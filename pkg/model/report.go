package model

import "fmt"

// CorrectionKind classifies what the normalizer had to repair.
type CorrectionKind string

const (
	KindMissingField         CorrectionKind = "missing_field"
	KindIncompleteCategories CorrectionKind = "incomplete_categories"
	KindScoreOutOfRange      CorrectionKind = "score_out_of_range"
)

// Correction records one defaulted or repaired field.
type Correction struct {
	Field  string         `json:"field" yaml:"field"`
	Kind   CorrectionKind `json:"kind" yaml:"kind"`
	Detail string         `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func (c Correction) String() string {
	switch c.Kind {
	case KindMissingField:
		return fmt.Sprintf("%s missing or empty, defaulted to an empty list", c.Field)
	case KindIncompleteCategories:
		return fmt.Sprintf("%s: %s categories provided, placeholders added", c.Field, c.Detail)
	case KindScoreOutOfRange:
		return fmt.Sprintf("%s out of range (%s), clamped to 0-100", c.Field, c.Detail)
	default:
		return fmt.Sprintf("%s: %s", c.Field, c.Detail)
	}
}

// Report is a normalized analysis plus what had to be patched to build it.
type Report struct {
	Result      AnalysisResult `json:"result" yaml:"result"`
	IsSynced    bool           `json:"isSynced" yaml:"isSynced"`
	Corrections []Correction   `json:"corrections" yaml:"corrections"`
}

// Messages returns the human-readable correction lines in order.
func (r *Report) Messages() []string {
	out := make([]string, 0, len(r.Corrections))
	for _, c := range r.Corrections {
		out = append(out, c.String())
	}
	return out
}
