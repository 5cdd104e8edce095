// Package profile turns raw CV text into a structured CandidateProfile using
// layered heuristics. Building a profile never fails: malformed input yields a
// sparse but well-formed profile.
package profile

import (
	"time"

	"github.com/spigell/cv-scorer/internal/reference"
)

// UnknownField is the current field when no industry matches well enough.
const UnknownField = "unknown"

// Education levels, ordered from lowest to highest.
const (
	LevelSecondary = "secondary"
	LevelDiploma   = "diploma"
	LevelBachelor  = "bachelor"
	LevelMaster    = "master"
	LevelPhD       = "phd"
)

var levelRank = map[string]int{
	LevelSecondary: 1,
	LevelDiploma:   2,
	LevelBachelor:  3,
	LevelMaster:    4,
	LevelPhD:       5,
}

// LevelRank orders education levels; unknown levels rank 0.
func LevelRank(level string) int {
	return levelRank[level]
}

// Education is a single qualification.
type Education struct {
	Level string `json:"level"`
	Field string `json:"field,omitempty"`
}

// WorkEntry is one position found next to a date range.
type WorkEntry struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	Period  string `json:"period"`
}

// CandidateProfile is the structured view of a CV. It is built once per
// analysis and not modified afterwards.
type CandidateProfile struct {
	Headline        string         `json:"headline,omitempty"`
	Skills          []string       `json:"skills"`
	TechnicalSkills []string       `json:"technicalSkills"`
	SoftSkills      []string       `json:"softSkills"`
	ExperienceYears int            `json:"experienceYears"`
	WorkHistory     []WorkEntry    `json:"workHistory"`
	Education       []Education    `json:"education"`
	Certifications  []string       `json:"certifications"`
	Achievements    []string       `json:"achievements"`
	ActionVerbs     []string       `json:"actionVerbs"`
	CurrentField    string         `json:"currentField"`
	SectionQuality  map[string]int `json:"sectionQuality"`
}

// HighestEducation returns the best qualification level, or "" when none.
func (p *CandidateProfile) HighestEducation() string {
	best := ""
	for _, e := range p.Education {
		if LevelRank(e.Level) > LevelRank(best) {
			best = e.Level
		}
	}
	return best
}

// AverageQuality is the mean section-quality score across tracked sections.
func (p *CandidateProfile) AverageQuality() float64 {
	if len(p.SectionQuality) == 0 {
		return 0
	}
	total := 0
	for _, q := range p.SectionQuality {
		total += q
	}
	return float64(total) / float64(len(p.SectionQuality))
}

// HasSkill reports whether the candidate lists skill or holds it as a certification.
func (p *CandidateProfile) HasSkill(skill string) bool {
	skill = reference.Key(skill)
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	for _, c := range p.Certifications {
		if c == skill {
			return true
		}
	}
	return false
}

// Options tune the builder heuristics.
type Options struct {
	// FieldThreshold is the minimum share of an industry's keywords that must
	// appear in the CV for it to become the current field.
	FieldThreshold float64
	// MaxSkills caps the merged skill list.
	MaxSkills int
	// Now resolves open-ended date ranges such as "2019 - present".
	Now func() time.Time
}

// DefaultOptions returns the stock heuristics configuration.
func DefaultOptions() Options {
	return Options{
		FieldThreshold: 0.2,
		MaxSkills:      25,
		Now:            time.Now,
	}
}
