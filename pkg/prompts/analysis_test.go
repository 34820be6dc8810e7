package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	p := BuildAnalysisPrompt("  a marketplace for used bikes \n")

	assert.Contains(t, p, "\"\"\"\na marketplace for used bikes\n\"\"\"")
	assert.Contains(t, p, `"Frontend", "Styling", "Backend", "Database", "Autenticazione", "Hosting"`)
	assert.Contains(t, p, `"vibeCodingPractices"`)
}
