package prompts

import (
	"fmt"
	"strings"

	"github.com/helmcode/vibe-analyzer/pkg/model"
)

// BuildAnalysisPrompt wraps the user's app description in the instructions that ask the
// model for an analysis payload.
func BuildAnalysisPrompt(userPrompt string) string {
	categories := make([]string, 0, model.CategoryCount)
	for _, c := range model.Categories() {
		categories = append(categories, fmt.Sprintf("%q", string(c)))
	}

	return fmt.Sprintf(`You are a senior web architect reviewing a "vibe coding" prompt: a free-text
description of a web application that someone wants an AI assistant to build.

User's Prompt:
"""
%s
"""

Evaluate the prompt and recommend a technology stack. Provide:
1. An overall quality score for the prompt (0-100)
2. Scores for individual dimensions (clarity, completeness, technical detail, scope, constraints)
3. A SWOT of the prompt: strengths, weaknesses, opportunities and threats
4. An optimized rewrite of the prompt
5. Exactly one technology suggestion for each of these categories, in this order: %s
6. Best practices for vibe coding and for web architecture

Respond in JSON format with this structure:
{
  "overallScore": 0,
  "dimensions": [
    {"id": "clarity", "name": "...", "score": 0, "description": "...", "suggestions": ["..."]}
  ],
  "strengthsWeaknesses": [
    {"type": "strength|weakness|opportunity|threat", "title": "...", "description": "..."}
  ],
  "optimizedPrompt": "...",
  "technologies": [
    {
      "category": "Frontend",
      "primary": {"name": "...", "reason": "...", "pros": ["..."], "cons": ["..."]},
      "alternative": {"name": "...", "reason": "...", "whenToUse": "..."}
    }
  ],
  "vibeCodingPractices": [
    {"title": "...", "description": "...", "example": "...", "priority": "high|medium|low"}
  ],
  "architecturePractices": [
    {"title": "...", "description": "...", "example": "...", "priority": "high|medium|low"}
  ]
}

Use the category names exactly as written. Answer in Italian. Return only the JSON object.`,
		strings.TrimSpace(userPrompt), strings.Join(categories, ", "))
}
