package match

import (
	"strings"

	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/textextract"
)

// Confidence of each skill matching tier.
const (
	confExact      = 1.0
	confPartial    = 0.8
	confSemantic   = 0.7
	confKeyword    = 0.6
	confContextual = 0.5

	// a requirement counts as met from the keyword-overlap tier upwards
	matchedFloor = confKeyword
)

const (
	noRequirementExperience = 80
	neutralSkills           = 50

	maxExperienceAdjust = 15
	maxTechnicalBonus   = 15
	maxSoftBonus        = 10
	transferBonus       = 5
)

var experienceSteps = []struct {
	ratio float64
	score int
}{
	{1.5, 95},
	{1.2, 90},
	{1.0, 85},
	{0.8, 75},
	{0.6, 60},
	{0.4, 45},
}

// experienceScore maps candidate years over required years onto a stepped
// scale, then adjusts by work-history depth and experience section quality.
func experienceScore(cand *profile.CandidateProfile, job *jobreq.Profile) int {
	required := job.MaxExperience()
	if required <= 0 {
		return noRequirementExperience
	}

	ratio := float64(cand.ExperienceYears) / float64(required)
	score := 30
	for _, step := range experienceSteps {
		if ratio >= step.ratio {
			score = step.score
			break
		}
	}

	adjust := 0
	switch n := len(cand.WorkHistory); {
	case n == 0:
		adjust -= 3
	case n >= 4:
		adjust += 5
	case n >= 2:
		adjust += 3
	}
	switch q := cand.SectionQuality[string(textextract.SectionExperience)]; {
	case q >= 70:
		adjust += 5
	case q < 40:
		adjust -= 2
	}
	if adjust > maxExperienceAdjust {
		adjust = maxExperienceAdjust
	}
	if adjust < -maxExperienceAdjust {
		adjust = -maxExperienceAdjust
	}
	return Clamp(score + adjust)
}

type skillsOutcome struct {
	score   int
	matched []string
	missing []string
}

// skillsScore weighs every job requirement by the confidence of the best
// candidate match. Unmatched requirements keep their weight in the
// denominator.
func (e *Engine) skillsScore(cand *profile.CandidateProfile, job *jobreq.Profile, matchType MatchType, transfer int) skillsOutcome {
	weightsByReq := job.ImportanceWeight
	reqs := job.Requirements()
	if len(reqs) == 0 {
		reqs = job.AllSkills()
		weightsByReq = make(map[string]float64, len(reqs))
		for _, r := range reqs {
			weightsByReq[r] = 1
		}
	}
	if len(reqs) == 0 {
		return skillsOutcome{score: neutralSkills, matched: []string{}, missing: []string{}}
	}

	pool := candidatePool(cand)
	industryHits := 0
	for _, s := range pool {
		if e.ref.IndustrySkill(job.Industry, s) {
			industryHits++
		}
	}

	out := skillsOutcome{matched: []string{}, missing: []string{}}
	required := make(map[string]struct{}, len(job.RequiredSkills))
	for _, r := range job.RequiredSkills {
		required[r] = struct{}{}
	}

	total, earned := 0.0, 0.0
	technical, soft := 0, 0
	for _, req := range reqs {
		w := weightsByReq[req]
		total += w

		conf := e.confidence(req, pool, job.Industry, industryHits)
		earned += conf * 100 * w

		if conf >= matchedFloor {
			out.matched = append(out.matched, req)
		} else if _, ok := required[req]; ok {
			out.missing = append(out.missing, req)
		}

		switch {
		case conf == confExact && !e.ref.IsSoftSkill(req):
			technical++
		case conf >= confPartial && e.ref.IsSoftSkill(req):
			soft++
		}
	}
	if total == 0 {
		out.score = neutralSkills
		return out
	}

	score := earned / total * qualityMultiplier(cand.AverageQuality())
	score += float64(min(technical*3, maxTechnicalBonus))
	score += float64(min(soft*2, maxSoftBonus))
	if matchType == Transferable && transfer >= 85 {
		score += transferBonus
	}
	out.score = clampFloat(score)
	return out
}

func qualityMultiplier(avg float64) float64 {
	m := 0.85 + avg*0.003
	if m < 0.7 {
		return 0.7
	}
	if m > 1.3 {
		return 1.3
	}
	return m
}

func candidatePool(cand *profile.CandidateProfile) []string {
	pool := make([]string, 0, len(cand.Skills)+len(cand.Certifications))
	seen := make(map[string]struct{})
	for _, list := range [][]string{cand.Skills, cand.Certifications} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			pool = append(pool, s)
		}
	}
	return pool
}

// confidence returns the best tier at which req is met by the pool.
func (e *Engine) confidence(req string, pool []string, industry string, industryHits int) float64 {
	best := 0.0
	reqTokens := e.significantTokens(req)
	for _, have := range pool {
		switch {
		case have == req:
			return confExact
		case partialMatch(have, req):
			best = max(best, confPartial)
		case e.ref.SameConcept(have, req):
			best = max(best, confSemantic)
		case overlaps(reqTokens, e.significantTokens(have)):
			best = max(best, confKeyword)
		}
	}
	if best == 0 && industryHits >= 2 && e.ref.IndustrySkill(industry, req) {
		best = confContextual
	}
	return best
}

func partialMatch(a, b string) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	return textextract.ContainsPhrase(a, b) || textextract.ContainsPhrase(b, a)
}

func (e *Engine) significantTokens(s string) []string {
	stop := e.ref.StopWordSet()
	var out []string
	for _, t := range textextract.Tokens(s) {
		if len(t) < 3 {
			continue
		}
		if _, ok := stop[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// educationScore starts from 50 and adjusts for degree level, certifications
// and how closely the field of study relates to the job.
func (e *Engine) educationScore(cand *profile.CandidateProfile, job *jobreq.Profile) int {
	score := 50
	have := cand.HighestEducation()

	if want := job.MinDegree; want != "" {
		switch {
		case profile.LevelRank(have) > profile.LevelRank(want):
			score += 30
		case profile.LevelRank(have) == profile.LevelRank(want):
			score += 25
		case have != "":
			score -= 15
		default:
			score -= 20
		}
	} else {
		switch have {
		case profile.LevelMaster, profile.LevelPhD:
			score += 20
		case profile.LevelBachelor:
			score += 15
		case profile.LevelDiploma:
			score += 8
		case profile.LevelSecondary:
			score += 3
		}
	}

	relevant, other := 0, 0
	for _, c := range cand.Certifications {
		if e.relevantCertification(c, job) {
			relevant += 15
		} else {
			other += 5
		}
	}
	score += min(relevant, 20) + min(other, 10)

	if e.relevantField(cand, job) {
		score += 15
	}
	return Clamp(score)
}

func (e *Engine) relevantCertification(cert string, job *jobreq.Profile) bool {
	if contains(job.Qualifications, cert) || e.ref.IndustrySkill(job.Industry, cert) {
		return true
	}
	_, ok := job.ImportanceWeight[cert]
	return ok
}

func (e *Engine) relevantField(cand *profile.CandidateProfile, job *jobreq.Profile) bool {
	var fields []string
	for _, ed := range cand.Education {
		if ed.Field != "" {
			fields = append(fields, ed.Field)
		}
	}
	if len(fields) == 0 {
		return false
	}
	text := strings.Join(fields, "\n")

	terms := append([]string{}, job.Keywords...)
	if ind, ok := e.ref.Industry(job.Industry); ok {
		terms = append(terms, ind.Keywords...)
	}
	for _, term := range terms {
		if len(term) >= 3 && textextract.ContainsPhrase(text, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
