package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/cv-scorer/internal/ai"
	"github.com/spigell/cv-scorer/internal/cache"
	"github.com/spigell/cv-scorer/internal/consensus"
	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/match"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/reference"
)

const (
	fireCV  = "Fire Safety Officer, 8 years, NEBOSH certified, fire risk assessment, incident command"
	fireJob = "Head of Building Safety, 5+ years, NEBOSH required"

	structuredCV = `Jane Doe
jane@example.com
Summary
Data analyst.
Skills
- SQL
- Python
- Excel
Experience
Analyst at Acme
Education
BSc Mathematics`
)

func newTestAnalyzer(t *testing.T, deps Deps) (*Analyzer, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	deps.Logger = zap.New(core)
	if deps.Reference == nil {
		deps.Reference = reference.Default()
	}
	if deps.Builder == nil {
		now := func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }
		deps.Builder = profile.NewBuilder(deps.Reference, profile.Options{Now: now})
	}

	a := New(deps)
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	var (
		mu sync.Mutex
		n  int
	)
	a.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return a, logs
}

func assertReportBounded(t *testing.T, r *Report) {
	t.Helper()
	for name, v := range map[string]int{
		"score":   r.Score,
		"format":  r.FormatScore,
		"content": r.ContentScore,
		"jobFit":  r.JobFitScore,
		"ats":     r.ATSCompliance,
	} {
		assert.GreaterOrEqual(t, v, 0, name)
		assert.LessOrEqual(t, v, 100, name)
	}
	assert.NotEmpty(t, r.Strengths)
	assert.NotEmpty(t, r.Recommendations)
	assert.NotNil(t, r.MissingKeywords)
	assert.NotNil(t, r.Metadata.Backends)
}

type panicMatcher struct {
	mu    sync.Mutex
	calls int
}

func (m *panicMatcher) Match(*profile.CandidateProfile, *jobreq.Profile) match.Result {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	panic("boom")
}

type fakeEnhancer struct {
	outcome func(in consensus.Input) *consensus.Outcome
	err     error
}

func (f *fakeEnhancer) Enabled() bool { return true }

func (f *fakeEnhancer) Enhance(_ context.Context, in consensus.Input) (*consensus.Outcome, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome(in), nil
}

type memoryRecorder struct {
	mu      sync.Mutex
	reports []*Report
}

func (m *memoryRecorder) Record(_ context.Context, _ Request, r *Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, r)
	return nil
}

func TestAnalyzeFireSafetyOfficer(t *testing.T) {
	t.Parallel()

	a, logs := newTestAnalyzer(t, Deps{})
	r := a.AnalyzeCV(context.Background(), fireCV, "", "", false, fireJob)

	require.NotNil(t, r.Match)
	assert.Contains(t, []match.MatchType{match.Direct, match.Transferable}, r.Match.MatchType)
	assert.GreaterOrEqual(t, r.JobFitScore, 70)
	assert.Equal(t, r.Match.OverallCompatibility, r.JobFitScore)
	assert.Contains(t, r.Match.MatchedSkills, "nebosh")
	assert.Equal(t, "id-1", r.Metadata.AnalysisID)
	assert.False(t, r.Metadata.Fallback)
	assert.False(t, r.Metadata.AIEnhanced)
	assert.False(t, r.Metadata.FromCache)
	assert.GreaterOrEqual(t, r.Metadata.ConfidenceScore, 40)
	assert.LessOrEqual(t, r.Metadata.ConfidenceScore, 90)
	assertReportBounded(t, r)

	assert.Equal(t, 1, logs.FilterMessage("analysis started").Len())
	assert.Equal(t, 1, logs.FilterMessage("analysis finished").Len())
}

func TestAnalyzeEmptyInputProducesDefaults(t *testing.T) {
	t.Parallel()

	a, _ := newTestAnalyzer(t, Deps{})
	r := a.Analyze(context.Background(), Request{})

	assert.False(t, r.Metadata.Fallback)
	assert.Empty(t, r.Match.MatchedSkills)
	assertReportBounded(t, r)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	t.Parallel()

	req := Request{CVText: fireCV, JobDescription: fireJob}
	a1, _ := newTestAnalyzer(t, Deps{})
	a2, _ := newTestAnalyzer(t, Deps{})

	r1 := a1.Analyze(context.Background(), req)
	r2 := a2.Analyze(context.Background(), req)

	assert.Equal(t, r1, r2)
}

func TestAnalyzeCacheHitMatchesOriginal(t *testing.T) {
	t.Parallel()

	a, logs := newTestAnalyzer(t, Deps{})
	req := Request{CVText: structuredCV, Industry: "technology", Role: "data analyst"}

	first := a.Analyze(context.Background(), req)
	second := a.Analyze(context.Background(), req)

	assert.False(t, first.Metadata.FromCache)
	assert.True(t, second.Metadata.FromCache)
	assert.Equal(t, 0, second.Metadata.CacheAgeMinutes)
	assert.Equal(t, 1, logs.FilterMessage("cache hit").Len())

	second.Metadata.FromCache = false
	assert.Equal(t, first, second)

	// Callers own returned reports.
	first.Strengths[0] = "mutated"
	third := a.Analyze(context.Background(), req)
	assert.NotEqual(t, "mutated", third.Strengths[0])
}

func TestAnalyzeCacheKeyIncludesGenericFlag(t *testing.T) {
	t.Parallel()

	a, _ := newTestAnalyzer(t, Deps{})

	targeted := a.Analyze(context.Background(), Request{CVText: structuredCV})
	generic := a.Analyze(context.Background(), Request{CVText: structuredCV, Generic: true})

	assert.False(t, generic.Metadata.FromCache)
	assert.NotEqual(t, targeted.Metadata.AnalysisID, generic.Metadata.AnalysisID)
}

func TestAnalyzePanicFallsBack(t *testing.T) {
	t.Parallel()

	m := &panicMatcher{}
	a, logs := newTestAnalyzer(t, Deps{Matcher: m})

	r := a.Analyze(context.Background(), Request{CVText: fireCV})
	assert.True(t, r.Metadata.Fallback)
	assert.Equal(t, fallbackScore, r.Score)
	assert.Equal(t, fallbackConfidence, r.Metadata.ConfidenceScore)
	assert.Nil(t, r.Match)
	assertReportBounded(t, r)

	failed := logs.FilterMessage("analysis failed").All()
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].ContextMap()["error"], "match stage (internal)")

	// Fallback reports are not cached.
	_ = a.Analyze(context.Background(), Request{CVText: fireCV})
	assert.Equal(t, 2, m.calls)
}

func TestAnalyzeWithConsensus(t *testing.T) {
	t.Parallel()

	enhancer := &fakeEnhancer{outcome: func(in consensus.Input) *consensus.Outcome {
		res := in.Result
		res.OverallCompatibility = 90
		return &consensus.Outcome{
			Result:          res,
			ConsensusScore:  95,
			Confidence:      85,
			Strengths:       []string{"Strong safety leadership"},
			Recommendations: []string{"Highlight building regulations knowledge"},
			MissingKeywords: []string{"building regulations"},
			Backends:        []string{"fake"},
		}
	}}
	a, _ := newTestAnalyzer(t, Deps{Enhancer: enhancer})

	r := a.Analyze(context.Background(), Request{CVText: fireCV, JobDescription: fireJob})

	assert.True(t, r.Metadata.AIEnhanced)
	assert.Equal(t, 85, r.Metadata.ConfidenceScore)
	assert.Equal(t, []string{"fake"}, r.Metadata.Backends)
	assert.Equal(t, 90, r.JobFitScore)
	assert.Equal(t, "Strong safety leadership", r.Strengths[0])
	assert.Equal(t, "Highlight building regulations knowledge", r.Recommendations[0])
	assert.Equal(t, "building regulations", r.MissingKeywords[0])
	assertReportBounded(t, r)
}

func TestAnalyzeConsensusFailureKeepsAlgorithmicResult(t *testing.T) {
	t.Parallel()

	a, logs := newTestAnalyzer(t, Deps{Enhancer: &fakeEnhancer{err: consensus.ErrNoResponses}})
	plain, _ := newTestAnalyzer(t, Deps{})

	req := Request{CVText: fireCV, JobDescription: fireJob}
	r := a.Analyze(context.Background(), req)
	want := plain.Analyze(context.Background(), req)

	assert.False(t, r.Metadata.AIEnhanced)
	assert.False(t, r.Metadata.Fallback)
	assert.Equal(t, want.Score, r.Score)
	assert.Equal(t, 1, logs.FilterMessage("consensus unavailable, keeping algorithmic result").Len())
}

type proseBackend struct{}

func (proseBackend) Name() string { return "prose" }

func (proseBackend) Complete(context.Context, string) (string, error) {
	return "The candidate looks like a strong fit.", nil
}

func TestAnalyzeConsensusFailureKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enhancer Enhancer
		want     string
	}{
		{
			name:     "unparseable reply",
			enhancer: consensus.New([]ai.Backend{proseBackend{}}, consensus.Options{}, nil),
			want:     "consensus stage (parse)",
		},
		{
			name:     "backends down",
			enhancer: &fakeEnhancer{err: consensus.ErrNoResponses},
			want:     "consensus stage (backend)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, logs := newTestAnalyzer(t, Deps{Enhancer: tt.enhancer})
			r := a.AnalyzeCV(context.Background(), fireCV, "", "", false, fireJob)
			assert.False(t, r.Metadata.AIEnhanced)
			assert.False(t, r.Metadata.Fallback)

			entries := logs.FilterMessage("consensus unavailable, keeping algorithmic result").All()
			require.Len(t, entries, 1)
			assert.Contains(t, entries[0].ContextMap()["error"], tt.want)
		})
	}
}

func TestAnalyzeCancelledContextSkipsCacheAndRecorder(t *testing.T) {
	t.Parallel()

	c := cache.New[*Report](time.Hour)
	rec := &memoryRecorder{}
	a, _ := newTestAnalyzer(t, Deps{Cache: c, Recorder: rec})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := a.Analyze(ctx, Request{CVText: fireCV})
	assert.False(t, r.Metadata.Fallback)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, rec.reports)
}

func TestAnalyzeRecordsOnlyFreshReports(t *testing.T) {
	t.Parallel()

	rec := &memoryRecorder{}
	a, _ := newTestAnalyzer(t, Deps{Recorder: rec})

	req := Request{CVText: fireCV, JobDescription: fireJob}
	r := a.Analyze(context.Background(), req)
	_ = a.Analyze(context.Background(), req)

	require.Len(t, rec.reports, 1)
	assert.Equal(t, r.Metadata.AnalysisID, rec.reports[0].Metadata.AnalysisID)
}

func TestRequirementsSource(t *testing.T) {
	t.Parallel()

	a, _ := newTestAnalyzer(t, Deps{})
	cand := a.builder.Build(fireCV)

	tests := []struct {
		name string
		req  Request
		want jobreq.Source
	}{
		{"description wins", Request{Industry: "technology", JobDescription: fireJob}, jobreq.SourceDescription},
		{"industry and role", Request{Industry: "technology", Role: "software developer"}, jobreq.SourceIndustryRole},
		{"inferred from cv", Request{}, jobreq.SourceInferred},
		{"blank description", Request{JobDescription: "   "}, jobreq.SourceInferred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.requirements(tt.req, cand).Source)
		})
	}
}

func TestOverallScoreWeights(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 63, overallScore(false, 80, 60, 40, 20))
	assert.Equal(t, 64, overallScore(true, 0, 80, 60, 40))
	assert.Equal(t, 100, overallScore(false, 100, 100, 100, 100))
	assert.Equal(t, 0, overallScore(true, 100, 0, 0, 0))
}

func TestFormatScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30, formatScore(""))
	// 4 headings, 3 bullets, contact details.
	assert.Equal(t, 77, formatScore(structuredCV))
}

func TestATSCompliance(t *testing.T) {
	t.Parallel()

	empty := jobreq.Empty()
	assert.Equal(t, 85, atsCompliance(structuredCV, structuredCV, empty))

	job := jobreq.Empty()
	job.RequiredSkills = []string{"sql", "tableau", "java", "scala"}
	job.Keywords = []string{"SQL"}
	assert.Equal(t, 77, atsCompliance(structuredCV, structuredCV, job))

	table := "a | b | c\nd | e | f\ng | h | i"
	assert.Equal(t, 55, atsCompliance(table, table, empty))
}

func TestContentScore(t *testing.T) {
	t.Parallel()

	skills := make([]string, 20)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill %d", i)
	}
	cand := &profile.CandidateProfile{
		Skills:         skills,
		Achievements:   []string{"cut costs by 20%", "grew revenue 10%"},
		ActionVerbs:    []string{"led", "built", "improved", "managed", "designed", "delivered"},
		SectionQuality: map[string]int{"skills": 50},
	}
	assert.Equal(t, 80, contentScore(cand))
	assert.Equal(t, 35, contentScore(&profile.CandidateProfile{}))
}

func TestMissingKeywords(t *testing.T) {
	t.Parallel()

	job := jobreq.Empty()
	job.RequiredSkills = []string{"sql", "tableau"}
	job.Keywords = []string{"python", "stakeholder"}

	got := missingKeywords(structuredCV, job, &profile.CandidateProfile{})
	assert.Equal(t, []string{"tableau", "stakeholder"}, got)
}

func TestMergeText(t *testing.T) {
	t.Parallel()

	got := mergeText(3, []string{"A", " ", "b"}, []string{"a", "C", "d"})
	assert.Equal(t, []string{"A", "b", "C"}, got)
	assert.Equal(t, []string{}, mergeText(3))
}

func TestTimeToCompetitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ready to apply now", timeToCompetitive(85))
	assert.Equal(t, "1-3 months", timeToCompetitive(65))
	assert.Equal(t, "3-6 months", timeToCompetitive(50))
	assert.Equal(t, "6-12 months", timeToCompetitive(10))
}

func TestRunStageWrapsFailures(t *testing.T) {
	t.Parallel()

	err := runStage(stage{StageRequirements, func() error { return errors.New("bad input") }})
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageRequirements, se.Stage)
	assert.Equal(t, KindInternal, se.Kind)
	assert.EqualError(t, err, "requirements stage (internal): bad input")

	parseErr := &StageError{Stage: StageConsensus, Kind: KindParse, Err: errors.New("not json")}
	err = runStage(stage{StageConsensus, func() error { return parseErr }})
	assert.Same(t, parseErr, err)

	err = runStage(stage{StageReport, func() error { panic("boom") }})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "report stage (internal): panic: boom", err.Error())

	assert.NoError(t, runStage(stage{StageMatch, func() error { return nil }}))
}
