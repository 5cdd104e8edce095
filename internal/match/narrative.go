package match

import (
	"fmt"
	"strings"

	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/profile"
)

const (
	strengthThreshold = 75
	gapThreshold      = 50
	maxListItems      = 5
	maxSkillsInLine   = 5
)

var developmentPaths = map[MatchType][]string{
	Direct: {
		"Quantify recent achievements with measurable outcomes",
		"Highlight the skills the role lists as essential near the top of the CV",
		"Pursue an advanced certification to stand out among experienced applicants",
	},
	Transferable: {
		"Map each past responsibility to the equivalent duty in the target field",
		"Gain a recognised certification in the target industry",
		"Build examples that show your experience applies in the new setting",
		"Network with professionals already working in the target field",
	},
	EntryLevel: {
		"Complete practical projects that demonstrate the required skills",
		"Seek internships, placements or volunteer roles in the field",
		"Put education and coursework first on the CV",
		"Add an entry-level certification relevant to the role",
	},
	CareerChange: {
		"Identify the skills that carry over and lead with them",
		"Complete foundational training in the new field",
		"Consider a bridging role that combines your current and target fields",
		"Build a portfolio of relevant work before applying for senior roles",
	},
}

func strengths(r Result, cand *profile.CandidateProfile, job *jobreq.Profile) []string {
	var out []string
	if r.ExperienceMatch >= strengthThreshold {
		if req := job.MaxExperience(); req > 0 {
			out = append(out, fmt.Sprintf("%d years of experience against %d required", cand.ExperienceYears, req))
		} else if cand.ExperienceYears > 0 {
			out = append(out, fmt.Sprintf("%d years of relevant experience", cand.ExperienceYears))
		}
	}
	if r.SkillsMatch >= strengthThreshold {
		out = append(out, "Strong alignment with the required skills")
	}
	if r.EducationMatch >= strengthThreshold {
		out = append(out, "Education and certifications support the application")
	}
	if r.TransferabilityScore >= strengthThreshold {
		if r.MatchType == Direct {
			out = append(out, fmt.Sprintf("Background in the same field (%s)", job.Industry))
		} else {
			out = append(out, fmt.Sprintf("Experience in %s transfers well to %s", cand.CurrentField, job.Industry))
		}
	}
	if len(r.MatchedSkills) > 0 {
		out = append(out, "Matching skills: "+joinCapped(r.MatchedSkills, maxSkillsInLine))
	}
	return capList(out)
}

func (e *Engine) gaps(r Result, cand *profile.CandidateProfile, job *jobreq.Profile) []string {
	var out []string
	if len(r.MissingSkills) > 0 {
		out = append(out, "Missing required skills: "+joinCapped(r.MissingSkills, maxSkillsInLine))
	}
	for _, q := range job.Qualifications {
		if e.ref.IsCertification(q) && !cand.HasSkill(q) && !contains(r.MissingSkills, q) {
			out = append(out, "Missing qualification: "+q)
		}
	}
	if r.ExperienceMatch < gapThreshold {
		out = append(out, fmt.Sprintf("Experience of %d years is below the %d years required", cand.ExperienceYears, job.MaxExperience()))
	}
	if r.SkillsMatch < gapThreshold {
		out = append(out, "Limited overlap with the required skills")
	}
	if r.EducationMatch < gapThreshold {
		if job.MinDegree != "" {
			out = append(out, fmt.Sprintf("The role asks for a %s degree or higher", job.MinDegree))
		} else {
			out = append(out, "Education and certifications are not evident on the CV")
		}
	}
	if r.TransferabilityScore < gapThreshold {
		out = append(out, fmt.Sprintf("Background in %s is distant from %s", cand.CurrentField, job.Industry))
	}
	return capList(out)
}

func developmentPath(t MatchType, missing []string) []string {
	var out []string
	if len(missing) > 0 {
		out = append(out, "Develop the missing skills: "+joinCapped(missing, 3))
	}
	return append(out, developmentPaths[t]...)
}

func joinCapped(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

func capList(items []string) []string {
	if len(items) > maxListItems {
		return items[:maxListItems]
	}
	return items
}
