// Package jobreq turns a free-text job description, or an industry and role
// pairing, into a weighted requirement profile.
package jobreq

import (
	"sort"

	"github.com/spigell/cv-scorer/internal/reference"
)

// Seniority is the experience band a job targets.
type Seniority string

const (
	SeniorityEntry     Seniority = "entry"
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityExecutive Seniority = "executive"
)

// Source records where a profile came from.
type Source string

const (
	SourceDescription  Source = "description"
	SourceIndustryRole Source = "industry-role"
	SourceInferred     Source = "inferred"
	SourceEmpty        Source = "empty"
)

// Category classifies a fragment of a job description.
type Category string

const (
	CategoryQualification  Category = "qualification"
	CategoryResponsibility Category = "responsibility"
	CategoryTechnical      Category = "technical-skill"
	CategorySoft           Category = "soft-skill"
	CategoryOther          Category = "other"
)

// Fragment is one sentence or list item of a description.
type Fragment struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
}

// Profile is the structured requirement view of a job.
type Profile struct {
	RequiredSkills          []string           `json:"requiredSkills"`
	PreferredSkills         []string           `json:"preferredSkills"`
	Qualifications          []string           `json:"qualifications"`
	Responsibilities        []string           `json:"responsibilities"`
	ExperienceYearsRequired []int              `json:"experienceYearsRequired"`
	Seniority               Seniority          `json:"seniority"`
	Industry                string             `json:"industry"`
	Role                    string             `json:"role"`
	Keywords                []string           `json:"keywords"`
	CoreRequirements        []string           `json:"coreRequirements"`
	ImportanceWeight        map[string]float64 `json:"importanceWeight"`
	MinDegree               string             `json:"minDegree,omitempty"`
	TransferableFrom        []string           `json:"transferableFrom"`
	IncompatibleFields      []string           `json:"incompatibleFields"`
	Fragments               []Fragment         `json:"-"`
	Source                  Source             `json:"source"`
}

// Empty returns a well-formed profile with no requirements.
func Empty() *Profile {
	return &Profile{
		RequiredSkills:          []string{},
		PreferredSkills:         []string{},
		Qualifications:          []string{},
		Responsibilities:        []string{},
		ExperienceYearsRequired: []int{},
		Seniority:               SeniorityMid,
		Industry:                reference.General,
		Role:                    reference.General,
		Keywords:                []string{},
		CoreRequirements:        []string{},
		ImportanceWeight:        map[string]float64{},
		TransferableFrom:        []string{},
		IncompatibleFields:      []string{},
		Source:                  SourceEmpty,
	}
}

// MaxExperience is the largest required-years figure, 0 when none was found.
func (p *Profile) MaxExperience() int {
	best := 0
	for _, y := range p.ExperienceYearsRequired {
		if y > best {
			best = y
		}
	}
	return best
}

// Requirements lists the weighted requirements, heaviest first, ties sorted
// alphabetically.
func (p *Profile) Requirements() []string {
	out := make([]string, 0, len(p.ImportanceWeight))
	for r := range p.ImportanceWeight {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := p.ImportanceWeight[out[i]], p.ImportanceWeight[out[j]]
		if wi != wj {
			return wi > wj
		}
		return out[i] < out[j]
	})
	return out
}

// AllSkills returns required then preferred skills.
func (p *Profile) AllSkills() []string {
	out := make([]string, 0, len(p.RequiredSkills)+len(p.PreferredSkills))
	out = append(out, p.RequiredSkills...)
	return append(out, p.PreferredSkills...)
}
