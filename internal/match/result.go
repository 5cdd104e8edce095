// Package match scores a candidate profile against a job requirement profile.
package match

import "math"

// MatchType is the relationship between the candidate's field and the job's.
type MatchType string

const (
	Direct       MatchType = "direct"
	Transferable MatchType = "transferable"
	EntryLevel   MatchType = "entry-level"
	CareerChange MatchType = "career-change"
)

// CareerStage is the candidate's position on the career ladder.
type CareerStage string

const (
	StageGraduate CareerStage = "graduate"
	StageEntry    CareerStage = "entry"
	StageJunior   CareerStage = "junior"
	StageMid      CareerStage = "mid"
	StageSenior   CareerStage = "senior"
)

var stageOrder = []CareerStage{StageGraduate, StageEntry, StageJunior, StageMid, StageSenior}

// Transferability bands used to bound refinements of a result.
const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"
)

// Result is the outcome of a match. Build it with NewResult and treat it as
// read-only afterwards.
type Result struct {
	OverallCompatibility int         `json:"overallCompatibility"`
	ExperienceMatch      int         `json:"experienceMatch"`
	SkillsMatch          int         `json:"skillsMatch"`
	EducationMatch       int         `json:"educationMatch"`
	TransferabilityScore int         `json:"transferabilityScore"`
	MatchType            MatchType   `json:"matchType"`
	CareerStage          CareerStage `json:"careerStage"`
	StrengthAreas        []string    `json:"strengthAreas"`
	GapAreas             []string    `json:"gapAreas"`
	DevelopmentPath      []string    `json:"developmentPath"`
	MatchedSkills        []string    `json:"matchedSkills"`
	MissingSkills        []string    `json:"missingSkills"`
}

// NewResult returns a copy of r with every score clamped to [0,100] and every
// list non-nil and detached from the caller's slices.
func NewResult(r Result) Result {
	r.OverallCompatibility = Clamp(r.OverallCompatibility)
	r.ExperienceMatch = Clamp(r.ExperienceMatch)
	r.SkillsMatch = Clamp(r.SkillsMatch)
	r.EducationMatch = Clamp(r.EducationMatch)
	r.TransferabilityScore = Clamp(r.TransferabilityScore)
	r.StrengthAreas = cloneList(r.StrengthAreas)
	r.GapAreas = cloneList(r.GapAreas)
	r.DevelopmentPath = cloneList(r.DevelopmentPath)
	r.MatchedSkills = cloneList(r.MatchedSkills)
	r.MissingSkills = cloneList(r.MissingSkills)
	return r
}

// TransferabilityBand groups the transferability score: high from 85, medium
// from 60, low below.
func (r Result) TransferabilityBand() string {
	switch {
	case r.TransferabilityScore >= 85:
		return BandHigh
	case r.TransferabilityScore >= 60:
		return BandMedium
	default:
		return BandLow
	}
}

// Clamp bounds a score to [0,100].
func Clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func clampFloat(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(int(math.Round(v)))
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
