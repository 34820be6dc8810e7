package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/vibe-analyzer/pkg/formatter"
)

type analyzeOptions struct {
	backendFlags
	outputFlags
	file string
}

func NewAnalyzeCmd() *cobra.Command {
	o := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [PROMPT]",
		Short: "Analyze an app prompt with AI and suggest a stack",
		Long: `Send a description of the web application you want to build to the analysis
backend and show the scores, SWOT, optimized prompt, tech stack, architecture,
roadmap and best practices.

Examples:
  # Analyze a prompt using the configured backend
  vibe-analyzer analyze "Un marketplace per biciclette usate con chat tra utenti"

  # Read the prompt from a file and use the hosted analysis function
  vibe-analyzer analyze --file prompt.txt --endpoint https://myproject.supabase.co

  # Use OpenAI directly and show only the stack and roadmap
  vibe-analyzer analyze "a CRM for gyms" --provider openai --section stack --section roadmap

  # Machine-readable output
  vibe-analyzer analyze "a recipe blog" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, o, args)
		},
	}

	o.backendFlags.register(cmd)
	o.outputFlags.register(cmd)
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Read the prompt from a file (- for stdin)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, o *analyzeOptions, args []string) error {
	prompt, err := promptFrom(cmd.InOrStdin(), o.file, args)
	if err != nil {
		return err
	}

	cfg, err := o.backendFlags.load()
	if err != nil {
		return err
	}
	opts, err := o.outputFlags.options(cfg.Output, prompt)
	if err != nil {
		return err
	}

	// Status lines go to stderr unless the output is for humans anyway.
	status := cmd.ErrOrStderr()
	human := opts.Format == "human"
	if human {
		status = cmd.OutOrStdout()
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	if human {
		printHeader(status, prompt, a.Backend())
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " Analyzing with AI..."
	s.Start()

	report, err := a.AnalyzePrompt(cmd.Context(), prompt)
	s.Stop()
	if err != nil {
		printError(status, "Analysis failed")
		return fmt.Errorf("AI analysis failed: %w", err)
	}
	printSuccess(status, "Analysis complete")
	logCorrections(report)

	return formatter.DisplayReport(cmd.OutOrStdout(), report, opts)
}

// promptFrom takes the prompt from --file or the single argument.
func promptFrom(in io.Reader, file string, args []string) (string, error) {
	var prompt string
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("pass the prompt as an argument or with --file, not both")
	case file != "":
		p, err := readInput(in, file)
		if err != nil {
			return "", err
		}
		prompt = p
	case len(args) == 1:
		prompt = args[0]
	default:
		return "", fmt.Errorf("a prompt is required: pass it as an argument or with --file")
	}
	return strings.TrimSpace(prompt), nil
}

func printHeader(w io.Writer, prompt, backend string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintln(w, "🔍 Vibe Coding Prompt Analyzer")
	fmt.Fprintf(w, "📝 Prompt: %s\n", truncate(prompt, 120))
	fmt.Fprintf(w, "🤖 Backend: %s\n", backend)
	fmt.Fprintln(w)
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
