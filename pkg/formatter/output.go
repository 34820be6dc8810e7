package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/vibe-analyzer/pkg/architecture"
	"github.com/helmcode/vibe-analyzer/pkg/model"
	"github.com/helmcode/vibe-analyzer/pkg/roadmap"
)

// Section names a block of the human output.
type Section string

const (
	SectionOverview     Section = "overview"
	SectionSWOT         Section = "swot"
	SectionPrompt       Section = "prompt"
	SectionStack        Section = "stack"
	SectionArchitecture Section = "architecture"
	SectionRoadmap      Section = "roadmap"
	SectionPractices    Section = "practices"
)

// AllSections lists every section in display order.
func AllSections() []Section {
	return []Section{
		SectionOverview, SectionSWOT, SectionPrompt, SectionStack,
		SectionArchitecture, SectionRoadmap, SectionPractices,
	}
}

// ParseSections validates section names. An empty list selects all sections.
func ParseSections(names []string) ([]Section, error) {
	if len(names) == 0 {
		return AllSections(), nil
	}
	valid := make(map[Section]bool)
	for _, s := range AllSections() {
		valid[s] = true
	}
	out := make([]Section, 0, len(names))
	for _, n := range names {
		s := Section(strings.ToLower(strings.TrimSpace(n)))
		if !valid[s] {
			return nil, fmt.Errorf("unknown section %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}

type Options struct {
	Format   string // human, json, yaml
	Sections []Section
	// OriginalPrompt is shown next to the optimized one when set.
	OriginalPrompt string
	// Completed lists roadmap milestone ids already done.
	Completed []string
}

// DisplayReport formats and writes the report
func DisplayReport(w io.Writer, report *model.Report, opts Options) error {
	switch opts.Format {
	case "json":
		return displayJSON(w, report)
	case "yaml":
		return displayYAML(w, report)
	case "human", "":
		sections := opts.Sections
		if len(sections) == 0 {
			sections = AllSections()
		}
		displayHuman(w, report, sections, opts)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml)", opts.Format)
	}
}

func displayJSON(w io.Writer, report *model.Report) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, report *model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func displayHuman(w io.Writer, report *model.Report, sections []Section, opts Options) {
	r := report.Result
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Fprintln(w)
	if !report.IsSynced {
		yellow.Fprintln(w, "⚠️  NEEDS REVIEW: the analysis was incomplete and has been patched")
		for _, m := range report.Messages() {
			fmt.Fprintf(w, "   • %s\n", m)
		}
		fmt.Fprintln(w)
	}

	for _, s := range sections {
		switch s {
		case SectionOverview:
			displayOverview(w, r)
		case SectionSWOT:
			displaySWOT(w, r.StrengthsWeaknesses)
		case SectionPrompt:
			displayPrompt(w, r.OptimizedPrompt, opts.OriginalPrompt)
		case SectionStack:
			displayStack(w, r.Technologies)
		case SectionArchitecture:
			displayArchitecture(w, r.Technologies)
		case SectionRoadmap:
			displayRoadmap(w, r.Technologies, opts.Completed)
		case SectionPractices:
			displayPractices(w, "🤖 VIBE CODING BEST PRACTICES:", r.VibeCodingPractices)
			displayPractices(w, "🏛️  ARCHITECTURE BEST PRACTICES:", r.ArchitecturePractices)
		}
	}

	// Footer
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func displayOverview(w io.Writer, r model.AnalysisResult) {
	cyan := color.New(color.FgCyan, color.Bold)

	getScoreColor(r.OverallScore).Fprintf(w, "📊 OVERALL SCORE: %d/100\n\n", r.OverallScore)

	if len(r.Dimensions) == 0 {
		return
	}
	cyan.Fprintln(w, "📐 DIMENSIONS:")
	for i, d := range r.Dimensions {
		fmt.Fprintf(w, "   %d. %s %s\n", i+1, d.Name, getScoreColor(d.Score).Sprintf("%d/100", d.Score))
		if d.Description != "" {
			fmt.Fprintln(w, wrapText(d.Description, 80, "      "))
		}
		for _, s := range d.Suggestions {
			fmt.Fprintf(w, "      → %s\n", s)
		}
		fmt.Fprintln(w)
	}
}

func displaySWOT(w io.Writer, items []model.StrengthWeakness) {
	if len(items) == 0 {
		return
	}
	white := color.New(color.FgWhite, color.Bold)
	white.Fprintln(w, "🧭 SWOT:")
	for _, kind := range []string{"strength", "weakness", "opportunity", "threat"} {
		for _, it := range items {
			if strings.ToLower(it.Type) != kind {
				continue
			}
			fmt.Fprintf(w, "   %s %s\n", getSWOTIcon(kind), it.Title)
			if it.Description != "" {
				fmt.Fprintln(w, wrapText(it.Description, 80, "      "))
			}
		}
	}
	fmt.Fprintln(w)
}

func displayPrompt(w io.Writer, optimized, original string) {
	green := color.New(color.FgGreen, color.Bold)
	if original != "" {
		color.New(color.FgWhite, color.Bold).Fprintln(w, "📝 ORIGINAL PROMPT:")
		fmt.Fprintln(w, wrapText(original, 80, "   "))
		fmt.Fprintln(w)
	}
	green.Fprintln(w, "✨ OPTIMIZED PROMPT:")
	fmt.Fprintln(w, wrapText(optimized, 80, "   "))
	fmt.Fprintln(w)
}

func displayStack(w io.Writer, techs []model.TechnologySuggestion) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintln(w, "🧱 TECH STACK:")
	for _, t := range techs {
		name := t.Primary.Name
		if t.IsPlaceholder() {
			name = color.YellowString("%s (needs review)", name)
		}
		fmt.Fprintf(w, "   %-16s %s\n", string(t.Category), name)
		if t.Primary.Reason != "" {
			fmt.Fprintln(w, wrapText(t.Primary.Reason, 80, "      "))
		}
		for _, p := range t.Primary.Pros {
			fmt.Fprintf(w, "      %s %s\n", color.GreenString("+"), p)
		}
		for _, c := range t.Primary.Cons {
			fmt.Fprintf(w, "      %s %s\n", color.RedString("-"), c)
		}
		if t.Alternative.Name != "" {
			fmt.Fprintf(w, "      Alternative: %s", t.Alternative.Name)
			if t.Alternative.WhenToUse != "" {
				fmt.Fprintf(w, " (%s)", t.Alternative.WhenToUse)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

func displayArchitecture(w io.Writer, techs []model.TechnologySuggestion) {
	color.New(color.FgMagenta, color.Bold).Fprintln(w, "🏗️  ARCHITECTURE:")
	first := true
	for _, l := range architecture.Layers(techs) {
		if len(l.Technologies) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w, "      ↓")
		}
		first = false
		names := make([]string, 0, len(l.Technologies))
		for _, t := range l.Technologies {
			names = append(names, fmt.Sprintf("%s: %s", t.Category, t.Primary.Name))
		}
		fmt.Fprintf(w, "   %s %s  %s\n", l.Icon, l.Name, color.HiBlackString(l.Description))
		fmt.Fprintf(w, "      [ %s ]\n", strings.Join(names, " | "))
	}
	fmt.Fprintln(w)
}

func displayRoadmap(w io.Writer, techs []model.TechnologySuggestion, completed []string) {
	ms := roadmap.Generate(techs)
	tracker := roadmap.NewTracker(ms)
	rejected := tracker.Complete(completed...)
	done, total := tracker.Progress()

	color.New(color.FgBlue, color.Bold).Fprintln(w, "🚀 IMPLEMENTATION ROADMAP:")
	fmt.Fprintf(w, "   %d/%d phases completed, about %d days in total\n", done, total, roadmap.TotalDays(ms))
	if len(rejected) > 0 {
		fmt.Fprintf(w, "   %s\n", color.YellowString("Not marked completed (unknown phase or dependencies pending): %s", strings.Join(rejected, ", ")))
	}
	fmt.Fprintln(w)
	for _, m := range ms {
		status := "○"
		switch {
		case tracker.IsCompleted(m.ID):
			status = color.GreenString("✓")
		case !tracker.CanStart(m.ID):
			status = color.HiBlackString("·")
		}
		fmt.Fprintf(w, "   %s Phase %d: %s (%s)\n", status, m.Phase, m.Title, m.Duration())
		if m.Technology != "" {
			fmt.Fprintf(w, "      Technology: %s\n", color.CyanString(m.Technology))
		}
		for _, task := range m.Tasks {
			fmt.Fprintf(w, "      - %s\n", task)
		}
		fmt.Fprintln(w)
	}
}

func displayPractices(w io.Writer, title string, practices []model.BestPractice) {
	if len(practices) == 0 {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintln(w, title)
	for i, p := range practices {
		fmt.Fprintf(w, "   %d. %s %s\n", i+1, getPriorityIcon(p.Priority), p.Title)
		if p.Description != "" {
			fmt.Fprintln(w, wrapText(p.Description, 80, "      "))
		}
		if p.Example != "" {
			fmt.Fprintf(w, "      Example: %s\n", color.CyanString(p.Example))
		}
	}
	fmt.Fprintln(w)
}

func getScoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen, color.Bold)
	case score >= 60:
		return color.New(color.FgYellow)
	case score >= 40:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func getSWOTIcon(kind string) string {
	switch kind {
	case "strength":
		return "💪"
	case "weakness":
		return "⚠️ "
	case "opportunity":
		return "🌱"
	case "threat":
		return "🔥"
	default:
		return "•"
	}
}

func getPriorityIcon(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return "⚡"
	case "medium":
		return "🔹"
	case "low":
		return "▫️"
	default:
		return "•"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if currentLine == indent {
				currentLine += word
			} else if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
