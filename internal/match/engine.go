package match

import (
	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/reference"
	"github.com/spigell/cv-scorer/internal/textextract"
)

type weights struct {
	experience, skills, education, transferability float64
}

var weightTable = map[MatchType]weights{
	Direct:       {0.40, 0.40, 0.15, 0.05},
	Transferable: {0.25, 0.35, 0.20, 0.20},
	EntryLevel:   {0.10, 0.35, 0.45, 0.10},
	CareerChange: {0.15, 0.35, 0.25, 0.25},
}

const (
	seniorBonus   = 3
	educatedBonus = 3
)

// Engine computes match results from reference tables. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	ref    *reference.Data
	logger *zap.Logger
}

// NewEngine returns an engine over ref.
func NewEngine(ref *reference.Data, logger *zap.Logger) *Engine {
	if ref == nil {
		ref = reference.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{ref: ref, logger: logger}
}

// Match scores the candidate against the job.
func (e *Engine) Match(cand *profile.CandidateProfile, job *jobreq.Profile) Result {
	if cand == nil {
		cand = &profile.CandidateProfile{CurrentField: profile.UnknownField}
	}
	if job == nil {
		job = jobreq.Empty()
	}

	matchType := e.classify(cand, job)
	stage := e.careerStage(cand)
	transfer := e.transferability(cand, job)
	experience := experienceScore(cand, job)
	skills := e.skillsScore(cand, job, matchType, transfer)
	education := e.educationScore(cand, job)

	w := weightTable[matchType]
	overall := w.experience*float64(experience) +
		w.skills*float64(skills.score) +
		w.education*float64(education) +
		w.transferability*float64(transfer)
	if stage == StageSenior && experience >= 85 {
		overall += seniorBonus
	}
	if (matchType == EntryLevel || stage == StageGraduate || stage == StageEntry) && education >= 75 {
		overall += educatedBonus
	}

	r := Result{
		OverallCompatibility: clampFloat(overall),
		ExperienceMatch:      experience,
		SkillsMatch:          skills.score,
		EducationMatch:       education,
		TransferabilityScore: transfer,
		MatchType:            matchType,
		CareerStage:          stage,
		MatchedSkills:        skills.matched,
		MissingSkills:        skills.missing,
	}
	r.StrengthAreas = strengths(r, cand, job)
	r.GapAreas = e.gaps(r, cand, job)
	r.DevelopmentPath = developmentPath(matchType, skills.missing)

	e.logger.Debug("match computed",
		zap.String("candidate_field", cand.CurrentField),
		zap.String("job_industry", job.Industry),
		zap.String("match_type", string(matchType)),
		zap.Int("overall", r.OverallCompatibility),
		zap.Int("experience", experience),
		zap.Int("skills", skills.score),
		zap.Int("education", education),
		zap.Int("transferability", transfer),
	)

	return NewResult(r)
}

// classify picks the match type. Same field wins, then the curated
// transferability pairs, then the job's own transferable-from list. It agrees
// with transferability: anything scored below the medium band is a career
// change, whatever the job's industry.
func (e *Engine) classify(cand *profile.CandidateProfile, job *jobreq.Profile) MatchType {
	field := cand.CurrentField
	known := field != "" && field != profile.UnknownField && field != reference.General

	switch {
	case known && field == job.Industry:
		return Direct
	case known && e.ref.HighlyTransferable(field, job.Industry):
		return Transferable
	case known && contains(job.TransferableFrom, field):
		return Transferable
	case cand.ExperienceYears <= 1:
		return EntryLevel
	default:
		return CareerChange
	}
}

func (e *Engine) careerStage(cand *profile.CandidateProfile) CareerStage {
	years := cand.ExperienceYears
	idx := 0
	switch {
	case years <= 0:
		idx = 0
	case years < 2:
		idx = 1
	case years < 5:
		idx = 2
	case years < 10:
		idx = 3
	default:
		idx = 4
	}

	if years > 0 && idx < len(stageOrder)-1 && e.hasLeadership(cand) {
		idx++
	}
	return stageOrder[idx]
}

func (e *Engine) hasLeadership(cand *profile.CandidateProfile) bool {
	texts := []string{reference.Key(cand.Headline)}
	for _, w := range cand.WorkHistory {
		texts = append(texts, reference.Key(w.Title))
	}
	texts = append(texts, cand.Skills...)

	for _, t := range texts {
		for _, kw := range e.ref.LeadershipKeywords {
			if textextract.ContainsPhrase(t, reference.Key(kw)) {
				return true
			}
		}
	}
	return false
}

// transferability scores how well the candidate's field carries over. An
// incompatible field is checked before generic transferable skills so that
// soft skills cannot lift a known mismatch.
func (e *Engine) transferability(cand *profile.CandidateProfile, job *jobreq.Profile) int {
	field := cand.CurrentField
	known := field != "" && field != profile.UnknownField && field != reference.General

	switch {
	case known && field == job.Industry:
		return 100
	case known && e.ref.HighlyTransferable(field, job.Industry):
		return 95
	case known && contains(job.TransferableFrom, field):
		return 85
	case known && contains(job.IncompatibleFields, field):
		return 25
	case e.transferableSkillCount(cand) >= 2:
		return 65
	default:
		return 45
	}
}

func (e *Engine) transferableSkillCount(cand *profile.CandidateProfile) int {
	n := 0
	for _, s := range cand.Skills {
		if e.ref.IsTransferableSkill(s) {
			n++
		}
	}
	return n
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
