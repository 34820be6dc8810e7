package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helmcode/vibe-analyzer/pkg/function"
	"github.com/helmcode/vibe-analyzer/pkg/llm"
	"github.com/helmcode/vibe-analyzer/pkg/model"
	"github.com/helmcode/vibe-analyzer/pkg/normalizer"
	"github.com/helmcode/vibe-analyzer/pkg/parser"
	"github.com/helmcode/vibe-analyzer/pkg/prompts"
)

// RemoteError carries the failure message reported by the analysis backend.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Backend performs the single request/response call for a prompt.
type Backend interface {
	Request(ctx context.Context, prompt string) (string, error)
	Name() string
}

type llmBackend struct {
	llm llm.LLM
}

func (b llmBackend) Request(ctx context.Context, prompt string) (string, error) {
	return b.llm.Chat(ctx, prompts.BuildAnalysisPrompt(prompt))
}

func (b llmBackend) Name() string {
	return "llm/" + b.llm.Model()
}

type functionBackend struct {
	client *function.Client
}

func (b functionBackend) Request(ctx context.Context, prompt string) (string, error) {
	return b.client.Invoke(ctx, prompt)
}

func (b functionBackend) Name() string {
	return "function/" + b.client.URL()
}

type Analyzer struct {
	backend Backend
	logger  *zap.Logger
}

type Option func(*Analyzer)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

func New(b Backend, opts ...Option) *Analyzer {
	a := &Analyzer{backend: b, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewWithLLM(l llm.LLM, opts ...Option) *Analyzer {
	return New(llmBackend{llm: l}, opts...)
}

func NewWithFunction(c *function.Client, opts ...Option) *Analyzer {
	return New(functionBackend{client: c}, opts...)
}

// Backend returns a short description of where prompts are sent.
func (a *Analyzer) Backend() string {
	return a.backend.Name()
}

// AnalyzePrompt sends prompt to the backend and normalizes the answer. It returns
// either a complete report or an error, never a partial result.
func (a *Analyzer) AnalyzePrompt(ctx context.Context, prompt string) (*model.Report, error) {
	requestID := uuid.NewString()
	logger := a.logger.With(zap.String("request_id", requestID))
	start := time.Now()

	logger.Debug("Sending analysis request", zap.String("backend", a.backend.Name()), zap.Int("prompt_len", len(prompt)))

	raw, err := a.backend.Request(ctx, prompt)
	if err != nil {
		var fe *function.Error
		if errors.As(err, &fe) {
			return nil, &RemoteError{Message: fe.Message}
		}
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	payload, err := parser.ParsePayload(raw)
	if err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, &RemoteError{Message: payload.Error}
	}

	report := normalizer.ValidateAndSync(payload)
	logger.Debug("Analysis normalized",
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("synced", report.IsSynced),
		zap.Int("corrections", len(report.Corrections)))

	return report, nil
}
