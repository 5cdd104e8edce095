// Package consensus asks external text-generation backends to refine an
// algorithmic match and reconciles their answers. The algorithmic result
// stays authoritative: backends can move scores only within bounds set by the
// transferability band, and their weight in the final blend is fixed.
package consensus

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/cv-scorer/internal/ai"
	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/logger"
	"github.com/spigell/cv-scorer/internal/match"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/utils"
)

const (
	defaultTimeout      = 20 * time.Second
	defaultBlendRatio   = 0.7
	defaultMaxLogLength = 200
)

var (
	// ErrNoBackends is returned when the layer has nothing to call.
	ErrNoBackends = errors.New("no backends configured")
	// ErrNoResponses is returned when every backend failed.
	ErrNoResponses = errors.New("no backend produced a usable response")
)

//go:embed prompt.md
var promptTemplate string

// Options tune the layer.
type Options struct {
	// Timeout bounds each backend call independently.
	Timeout time.Duration
	// BlendRatio is the weight of the algorithmic score in the final blend.
	BlendRatio   float64
	MaxLogLength int
}

// Input is what the backends are asked to assess.
type Input struct {
	Candidate *profile.CandidateProfile
	Job       *jobreq.Profile
	Result    match.Result
}

// Outcome is the reconciled view of all successful backend answers.
type Outcome struct {
	// Result carries the blended scores; every other field is the
	// algorithmic original.
	Result          match.Result
	ConsensusScore  int
	Confidence      int
	Strengths       []string
	Recommendations []string
	MissingKeywords []string
	Backends        []string
	Failed          []string
}

// Layer fans a prompt out to every backend.
type Layer struct {
	backends []ai.Backend
	opts     Options
	logger   *zap.Logger
}

// New returns a layer over backends.
func New(backends []ai.Backend, opts Options, logger *zap.Logger) *Layer {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.BlendRatio <= 0 || opts.BlendRatio > 1 {
		opts.BlendRatio = defaultBlendRatio
	}
	if opts.MaxLogLength <= 0 {
		opts.MaxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Layer{backends: backends, opts: opts, logger: logger}
}

// Enabled reports whether any backend is configured.
func (l *Layer) Enabled() bool {
	return l != nil && len(l.backends) > 0
}

type reply struct {
	backend    string
	assessment *Assessment
	err        error
}

// Enhance queries every backend concurrently and reconciles the answers that
// parsed. It fails only when no backend produced a usable answer; when any of
// those failures was an unusable reply, the returned error also wraps the
// last *ParseError.
func (l *Layer) Enhance(ctx context.Context, in Input) (*Outcome, error) {
	if !l.Enabled() {
		return nil, ErrNoBackends
	}

	prompt, err := buildPrompt(in)
	if err != nil {
		return nil, err
	}

	// Goroutines never return an error: one failing backend must not cancel
	// the others. gctx still carries the caller's cancellation.
	replies := make([]reply, len(l.backends))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range l.backends {
		g.Go(func() error {
			replies[i] = l.ask(gctx, b, prompt)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		assessments []*Assessment
		names       []string
		failed      []string
		parseErr    *ParseError
	)
	for _, r := range replies {
		if r.err != nil {
			failed = append(failed, r.backend)
			var perr *ParseError
			if errors.As(r.err, &perr) {
				parseErr = perr
			}
			l.logger.Warn("backend failed", logger.Backend(r.backend), zap.Error(r.err))
			continue
		}
		assessments = append(assessments, r.assessment)
		names = append(names, r.backend)
	}
	if len(assessments) == 0 {
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoResponses, parseErr)
		}
		return nil, ErrNoResponses
	}

	out := reconcile(in.Result, assessments, l.opts.BlendRatio)
	out.Backends = names
	out.Failed = failed

	l.logger.Debug("consensus reconciled",
		zap.Strings("backends", names),
		zap.Int("consensus_score", out.ConsensusScore),
		zap.Int("confidence", out.Confidence),
		zap.Int("final_score", out.Result.OverallCompatibility),
	)
	return out, nil
}

type completion struct {
	raw string
	err error
}

// ask calls one backend under its own deadline. A backend that ignores its
// context is abandoned once the deadline passes; its late reply is dropped.
func (l *Layer) ask(ctx context.Context, b ai.Backend, prompt string) (r reply) {
	defer func() {
		if p := recover(); p != nil {
			r.assessment = nil
			r.err = fmt.Errorf("backend %s panicked: %v", r.backend, p)
		}
	}()
	r.backend = b.Name()
	name := r.backend

	callCtx, cancel := context.WithTimeout(ctx, l.opts.Timeout)
	defer cancel()

	started := time.Now()
	done := make(chan completion, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- completion{err: fmt.Errorf("backend %s panicked: %v", name, p)}
			}
		}()
		raw, err := b.Complete(callCtx, prompt)
		done <- completion{raw: raw, err: err}
	}()

	var c completion
	select {
	case c = <-done:
	case <-callCtx.Done():
		r.err = fmt.Errorf("backend %s: %w", name, callCtx.Err())
		return r
	}
	if c.err != nil {
		r.err = c.err
		return r
	}

	l.logger.Debug("backend response",
		logger.Backend(r.backend),
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("response_length", utf8.RuneCountInString(c.raw)),
		zap.String("response_preview", utils.TruncateForLog(c.raw, l.opts.MaxLogLength)),
	)

	r.assessment, r.err = parseAssessment(r.backend, c.raw)
	return r
}

func buildPrompt(in Input) (string, error) {
	candidate, err := json.MarshalIndent(in.Candidate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate: %w", err)
	}
	job, err := json.MarshalIndent(in.Job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}
	result, err := json.MarshalIndent(in.Result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{CANDIDATE_JSON}}", string(candidate))
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", string(job))
	prompt = strings.ReplaceAll(prompt, "{{ALGORITHMIC_JSON}}", string(result))
	return prompt, nil
}
