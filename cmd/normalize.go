package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmcode/vibe-analyzer/pkg/analyzer"
	"github.com/helmcode/vibe-analyzer/pkg/formatter"
	"github.com/helmcode/vibe-analyzer/pkg/normalizer"
	"github.com/helmcode/vibe-analyzer/pkg/parser"
)

func NewNormalizeCmd() *cobra.Command {
	o := &outputFlags{}
	cmd := &cobra.Command{
		Use:   "normalize [FILE]",
		Short: "Normalize and display a saved analysis payload",
		Long: `Read a raw analysis payload (or a report saved with -o json) and render it
without calling any backend. Missing fields are filled in the same way as for a
live analysis.

Examples:
  # Render a saved payload
  vibe-analyzer normalize payload.json

  # Read from stdin and mark roadmap phases as done
  cat payload.json | vibe-analyzer normalize - --completed setup,database --section roadmap`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return runNormalize(cmd, o, name)
		},
	}
	o.register(cmd)
	return cmd
}

func runNormalize(cmd *cobra.Command, o *outputFlags, name string) error {
	raw, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	opts, err := o.options("human", "")
	if err != nil {
		return err
	}

	payload, err := parser.ParsePayload(raw)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if payload.Error != "" {
		return &analyzer.RemoteError{Message: payload.Error}
	}

	report := normalizer.ValidateAndSync(payload)
	logCorrections(report)

	return formatter.DisplayReport(cmd.OutOrStdout(), report, opts)
}
