package analyzer

import (
	"context"
	"errors"
	"sync"

	"github.com/helmcode/vibe-analyzer/pkg/model"
)

// ErrSuperseded is returned for a request that finished after a newer one started.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

// Session keeps only the most recent analysis. Starting a new request cancels the
// in-flight one and any late result of an older request is discarded.
type Session struct {
	analyzer *Analyzer

	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
}

func NewSession(a *Analyzer) *Session {
	return &Session{analyzer: a}
}

// Request is an analysis slot reserved by Begin. Its place in the session order is
// fixed when it is created, not when it runs.
type Request struct {
	session *Session
	gen     uint64
	ctx     context.Context
	cancel  context.CancelFunc
}

// Begin cancels the in-flight request and reserves the next one. Call it in the
// order prompts arrive; Run may then happen on any goroutine.
func (s *Session) Begin(ctx context.Context) *Request {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.latest++
	s.cancel = cancel
	return &Request{session: s, gen: s.latest, ctx: ctx, cancel: cancel}
}

// Run analyzes prompt. It returns ErrSuperseded when a newer request was begun
// before this one finished.
func (r *Request) Run(prompt string) (*model.Report, error) {
	defer r.cancel()
	s := r.session

	s.mu.Lock()
	stale := r.gen != s.latest
	s.mu.Unlock()
	if stale {
		return nil, ErrSuperseded
	}

	report, err := s.analyzer.AnalyzePrompt(r.ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if r.gen != s.latest {
		return nil, ErrSuperseded
	}
	s.cancel = nil
	return report, err
}

// Submit begins and runs a request in one step.
func (s *Session) Submit(ctx context.Context, prompt string) (*model.Report, error) {
	return s.Begin(ctx).Run(prompt)
}
