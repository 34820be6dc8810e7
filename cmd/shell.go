package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/helmcode/vibe-analyzer/pkg/analyzer"
	"github.com/helmcode/vibe-analyzer/pkg/formatter"
)

type shellOptions struct {
	backendFlags
	outputFlags
}

func NewShellCmd() *cobra.Command {
	o := &shellOptions{}
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Analyze prompts interactively, one per line",
		Long: `Read prompts from stdin, one per line, and print each analysis as soon as it is
ready. Entering a new prompt while an analysis is running abandons the old one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, o)
		},
	}
	o.backendFlags.register(cmd)
	o.outputFlags.register(cmd)
	return cmd
}

func runShell(cmd *cobra.Command, o *shellOptions) error {
	cfg, err := o.backendFlags.load()
	if err != nil {
		return err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	session := analyzer.NewSession(a)
	out := cmd.OutOrStdout()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	fmt.Fprintf(out, "%s (backend: %s, Ctrl-D to quit)\n", color.CyanString("Enter a prompt"), a.Backend())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		opts, err := o.outputFlags.options(cfg.Output, prompt)
		if err != nil {
			return err
		}

		// Reserve the slot here so prompts keep their input order.
		req := session.Begin(cmd.Context())
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := req.Run(prompt)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, analyzer.ErrSuperseded):
				logger.Debug("Dropped superseded analysis", zap.String("prompt", truncate(prompt, 40)))
			case err != nil:
				printError(out, fmt.Sprintf("Analysis failed: %v", err))
			default:
				logCorrections(report)
				if err := formatter.DisplayReport(out, report, opts); err != nil {
					printError(out, err.Error())
				}
			}
		}()
	}
	wg.Wait()

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read prompts: %w", err)
	}
	return nil
}
