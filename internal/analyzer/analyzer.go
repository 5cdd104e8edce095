// Package analyzer runs the full CV analysis pipeline: profile, job
// requirements, match, optional consensus and the final report.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/cache"
	"github.com/spigell/cv-scorer/internal/consensus"
	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/logger"
	"github.com/spigell/cv-scorer/internal/match"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/reference"
	"github.com/spigell/cv-scorer/internal/textextract"
)

// Matcher scores a candidate against a job.
type Matcher interface {
	Match(cand *profile.CandidateProfile, job *jobreq.Profile) match.Result
}

// Enhancer refines a match with external assessments.
type Enhancer interface {
	Enabled() bool
	Enhance(ctx context.Context, in consensus.Input) (*consensus.Outcome, error)
}

// Recorder persists finished analyses.
type Recorder interface {
	Record(ctx context.Context, req Request, report *Report) error
}

// Deps aggregates the collaborators of an Analyzer. Reference and Logger are
// required; the rest have working defaults or are optional.
type Deps struct {
	Reference *reference.Data
	Builder   *profile.Builder
	Parser    *jobreq.Parser
	Matcher   Matcher
	Enhancer  Enhancer
	Recorder  Recorder
	Cache     *cache.Cache[*Report]
	Logger    *zap.Logger
}

// Analyzer is safe for concurrent use.
type Analyzer struct {
	builder  *profile.Builder
	parser   *jobreq.Parser
	matcher  Matcher
	enhancer Enhancer
	recorder Recorder
	cache    *cache.Cache[*Report]
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

// New wires an Analyzer from deps.
func New(deps Deps) *Analyzer {
	ref := deps.Reference
	if ref == nil {
		ref = reference.Default()
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	a := &Analyzer{
		builder:  deps.Builder,
		parser:   deps.Parser,
		matcher:  deps.Matcher,
		enhancer: deps.Enhancer,
		recorder: deps.Recorder,
		cache:    deps.Cache,
		logger:   log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if a.builder == nil {
		a.builder = profile.NewBuilder(ref, profile.DefaultOptions())
	}
	if a.parser == nil {
		a.parser = jobreq.NewParser(ref, jobreq.DefaultOptions())
	}
	if a.matcher == nil {
		a.matcher = match.NewEngine(ref, log)
	}
	if a.cache == nil {
		a.cache = cache.New[*Report](0)
	}
	return a
}

// AnalyzeCV is the positional form of Analyze.
func (a *Analyzer) AnalyzeCV(ctx context.Context, cvText, industry, role string, generic bool, jobDescription string) *Report {
	return a.Analyze(ctx, Request{
		CVText:         cvText,
		Industry:       industry,
		Role:           role,
		Generic:        generic,
		JobDescription: jobDescription,
	})
}

// Analyze never fails: internal errors produce a fallback report flagged in
// its metadata. Identical requests within the cache TTL return the stored
// report marked as cached.
func (a *Analyzer) Analyze(ctx context.Context, req Request) *Report {
	started := a.now()
	key := cache.Key(req.CVText, req.Industry, req.Role, req.Generic, req.JobDescription)

	if cached, age, ok := a.cache.Get(key); ok {
		out := cached.clone()
		out.Metadata.FromCache = true
		out.Metadata.CacheAgeMinutes = int(age / time.Minute)
		a.logger.Debug("cache hit",
			logger.AnalysisID(out.Metadata.AnalysisID),
			zap.Int("cache_age_minutes", out.Metadata.CacheAgeMinutes),
		)
		return out
	}

	id := a.newID()
	log := logger.WithAnalysis(a.logger, id)

	log.Info("analysis started",
		zap.Int("cv_length", len(req.CVText)),
		zap.Bool("generic", req.Generic),
		zap.Bool("has_job_description", strings.TrimSpace(req.JobDescription) != ""),
	)

	report, err := a.run(ctx, log, req)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return a.fallback(id, started)
	}
	report.Metadata.AnalysisID = id
	report.Metadata.ProcessingTimeMs = a.now().Sub(started).Milliseconds()

	log.Info("analysis finished",
		zap.Int("score", report.Score),
		zap.String("match_type", report.Metadata.MatchType),
		zap.Bool("ai_enhanced", report.Metadata.AIEnhanced),
		zap.Int64("processing_time_ms", report.Metadata.ProcessingTimeMs),
	)

	if ctx.Err() != nil {
		return report
	}
	a.cache.Put(key, report.clone())
	if a.recorder != nil {
		if err := a.recorder.Record(ctx, req, report.clone()); err != nil {
			log.Warn("failed to record analysis", zap.Error(err))
		}
	}
	return report
}

type stage struct {
	name string
	run  func() error
}

// run executes the stages in order and stops at the first failure.
func (a *Analyzer) run(ctx context.Context, log *zap.Logger, req Request) (*Report, error) {
	var (
		cand    *profile.CandidateProfile
		job     *jobreq.Profile
		result  match.Result
		outcome *consensus.Outcome
		report  *Report
	)

	stages := []stage{
		{StageProfile, func() error {
			cand = a.builder.Build(req.CVText)
			if cand == nil {
				return errors.New("no candidate profile built")
			}
			return nil
		}},
		{StageRequirements, func() error {
			job = a.requirements(req, cand)
			if job == nil {
				return errors.New("no job profile built")
			}
			return nil
		}},
		{StageMatch, func() error {
			result = a.matcher.Match(cand, job)
			return nil
		}},
		{StageConsensus, func() error {
			outcome = a.enhance(ctx, log, cand, job, result)
			return nil
		}},
		{StageReport, func() error {
			report = a.buildReport(req, cand, job, result, outcome)
			return nil
		}},
	}

	for _, s := range stages {
		if err := runStage(s); err != nil {
			return nil, err
		}
		log.Debug("stage done", logger.Stage(s.name))
	}
	return report, nil
}

// runStage converts both returned errors and panics into a *StageError.
func runStage(s stage) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &StageError{Stage: s.name, Kind: KindInternal, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	if err := s.run(); err != nil {
		var se *StageError
		if errors.As(err, &se) {
			return err
		}
		return &StageError{Stage: s.name, Kind: KindInternal, Err: err}
	}
	return nil
}

// requirements prefers the job description, then the industry and role
// hints, then the candidate's own field.
func (a *Analyzer) requirements(req Request, cand *profile.CandidateProfile) *jobreq.Profile {
	if strings.TrimSpace(req.JobDescription) != "" {
		return a.parser.Parse(req.JobDescription, jobreq.Hints{Industry: req.Industry, Role: req.Role})
	}
	if strings.TrimSpace(req.Industry) != "" {
		return a.parser.FromIndustryRole(req.Industry, req.Role)
	}
	job := a.parser.FromIndustryRole(cand.CurrentField, req.Role)
	job.Source = jobreq.SourceInferred
	return job
}

func (a *Analyzer) enhance(ctx context.Context, log *zap.Logger, cand *profile.CandidateProfile, job *jobreq.Profile, result match.Result) *consensus.Outcome {
	if a.enhancer == nil || !a.enhancer.Enabled() {
		return nil
	}

	outcome, err := a.enhancer.Enhance(ctx, consensus.Input{Candidate: cand, Job: job, Result: result})
	if err != nil {
		kind := KindBackend
		var perr *consensus.ParseError
		if errors.As(err, &perr) {
			kind = KindParse
		}
		log.Warn("consensus unavailable, keeping algorithmic result",
			zap.Error(&StageError{Stage: StageConsensus, Kind: kind, Err: err}))
		return nil
	}
	return outcome
}

func (a *Analyzer) buildReport(req Request, cand *profile.CandidateProfile, job *jobreq.Profile, result match.Result, outcome *consensus.Outcome) *Report {
	normalized := textextract.Normalize(req.CVText)

	var (
		consensusStrengths, consensusRecs, consensusKeywords []string
		backends                                             = []string{}
		confidence                                           = algorithmicConfidence(cand)
	)
	if outcome != nil {
		result = outcome.Result
		consensusStrengths = outcome.Strengths
		consensusRecs = outcome.Recommendations
		consensusKeywords = outcome.MissingKeywords
		backends = append(backends, outcome.Backends...)
		confidence = outcome.Confidence
	}

	format := formatScore(normalized)
	content := contentScore(cand)
	ats := atsCompliance(req.CVText, normalized, job)
	jobFit := result.OverallCompatibility

	score := overallScore(req.Generic, jobFit, content, format, ats)

	strengths := mergeText(maxStrengths, consensusStrengths, result.StrengthAreas)
	if len(strengths) == 0 {
		strengths = append(strengths, defaultStrengths...)
	}
	recommendations := mergeText(maxRecommendations, consensusRecs, result.DevelopmentPath)
	if len(recommendations) == 0 {
		recommendations = append(recommendations, defaultRecommendations...)
	}

	m := match.NewResult(result)
	return &Report{
		Score:                  score,
		FormatScore:            format,
		ContentScore:           content,
		JobFitScore:            jobFit,
		ATSCompliance:          ats,
		Strengths:              strengths,
		Recommendations:        recommendations,
		MissingKeywords:        mergeText(maxKeywords, consensusKeywords, missingKeywords(normalized, job, cand)),
		Improvements:           mergeText(maxImprovements, improvements(normalized, cand)),
		ExperienceLevel:        experienceLevel(result, cand.ExperienceYears),
		CareerStage:            string(result.CareerStage),
		FieldCompatibility:     result.TransferabilityBand(),
		TimeToCompetitive:      timeToCompetitive(score),
		CareerTransitionAdvice: transitionAdvice(result, cand.CurrentField, job.Industry),
		Match:                  &m,
		Metadata: Metadata{
			ConfidenceScore: confidence,
			MatchType:       string(result.MatchType),
			AIEnhanced:      outcome != nil,
			Backends:        backends,
		},
	}
}

func (a *Analyzer) fallback(id string, started time.Time) *Report {
	return &Report{
		Score:                  fallbackScore,
		FormatScore:            fallbackScore,
		ContentScore:           fallbackScore,
		JobFitScore:            fallbackScore,
		ATSCompliance:          fallbackScore,
		Strengths:              append([]string{}, defaultStrengths...),
		Recommendations:        append([]string{}, defaultRecommendations...),
		MissingKeywords:        []string{},
		Improvements:           []string{},
		ExperienceLevel:        "unknown",
		CareerStage:            "unknown",
		FieldCompatibility:     match.BandMedium,
		TimeToCompetitive:      timeToCompetitive(fallbackScore),
		CareerTransitionAdvice: "Analysis could not be completed; review the CV structure and try again.",
		Metadata: Metadata{
			ConfidenceScore:  fallbackConfidence,
			MatchType:        "unknown",
			ProcessingTimeMs: a.now().Sub(started).Milliseconds(),
			AnalysisID:       id,
			Fallback:         true,
			Backends:         []string{},
		},
	}
}
