package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/helmcode/vibe-analyzer/pkg/analyzer"
	"github.com/helmcode/vibe-analyzer/pkg/config"
	"github.com/helmcode/vibe-analyzer/pkg/formatter"
	"github.com/helmcode/vibe-analyzer/pkg/function"
	"github.com/helmcode/vibe-analyzer/pkg/llm"
	"github.com/helmcode/vibe-analyzer/pkg/model"
)

// backendFlags are shared by the commands that talk to an analysis backend.
type backendFlags struct {
	configPath string
	provider   string
	model      string
	endpoint   string
	timeout    string
}

func (f *backendFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultPath(), "Path to config file")
	cmd.Flags().StringVar(&f.provider, "provider", "", fmt.Sprintf("Analysis backend (%s). Defaults to auto-detect", strings.Join(providerNames(), ", ")))
	cmd.Flags().StringVar(&f.model, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "Base URL of the analysis function (e.g. https://<project>.supabase.co)")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "Request timeout (e.g. 90s)")
}

// load reads the config file and environment, then applies command line overrides.
func (f *backendFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.endpoint != "" {
		cfg.Function.URL = f.endpoint
		if f.provider == "" {
			cfg.Provider = config.ProviderFunction
		}
	}
	if f.provider != "" {
		cfg.Provider = strings.ToLower(f.provider)
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if l := cfg.LLM(); l != nil && f.model != "" {
		l.Model = f.model
	}
	return cfg, nil
}

// providerNames lists the hosted function followed by every LLM provider.
func providerNames() []string {
	names := []string{config.ProviderFunction}
	for _, p := range llm.NewFactory().GetAvailableProviders() {
		names = append(names, string(p))
	}
	return names
}

func newAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	if cfg.Provider == config.ProviderFunction {
		client := function.NewClient(cfg.Function.URL, cfg.Function.Name, cfg.Function.APIKey, timeout)
		return analyzer.NewWithFunction(client, analyzer.WithLogger(logger)), nil
	}

	settings := cfg.LLM()
	llmClient, err := llm.NewFactory().CreateLLM(llm.Provider(cfg.Provider), map[string]string{
		"api_key":  settings.APIKey,
		"model":    settings.Model,
		"base_url": settings.BaseURL,
		"timeout":  timeout.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return analyzer.NewWithLLM(llmClient, analyzer.WithLogger(logger)), nil
}

// outputFlags control how a report is rendered.
type outputFlags struct {
	format    string
	sections  []string
	completed []string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "output", "o", "", "Output format (human, json, yaml)")
	cmd.Flags().StringSliceVar(&f.sections, "section", []string{}, "Sections to show in human output (overview, swot, prompt, stack, architecture, roadmap, practices)")
	cmd.Flags().StringSliceVar(&f.completed, "completed", []string{}, "Roadmap phases already completed (e.g. setup,database)")
}

func (f *outputFlags) options(defaultFormat, originalPrompt string) (formatter.Options, error) {
	sections, err := formatter.ParseSections(f.sections)
	if err != nil {
		return formatter.Options{}, err
	}
	format := f.format
	if format == "" {
		format = defaultFormat
	}
	return formatter.Options{
		Format:         format,
		Sections:       sections,
		OriginalPrompt: originalPrompt,
		Completed:      f.completed,
	}, nil
}

// readInput returns the named file's content, or stdin for "-".
func readInput(in io.Reader, name string) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

func logCorrections(report *model.Report) {
	if report.IsSynced {
		return
	}
	logger.Warn("Analysis needed corrections", zap.Strings("corrections", report.Messages()))
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "✗ %s\n", msg)
}
