package jobreq

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/reference"
	"github.com/spigell/cv-scorer/internal/textextract"
)

const (
	weightEssential  = 1.0
	weightProficient = 0.85
	weightDefault    = 0.7
	weightPreferred  = 0.6
	weightImplied    = 0.5

	maxKeywords         = 20
	maxCoreRequirements = 10
	// below this many parsed skills a recognised role's canned skills are merged in
	minParsedSkills = 3
)

var (
	essentialMarkers  = []string{"essential", "required", "requirement", "must", "minimum", "mandatory", "need to have"}
	proficientMarkers = []string{"proficiency", "proficient", "experience with", "experience in", "knowledge of", "expertise", "strong understanding", "familiarity with"}
	preferredMarkers  = []string{"preferred", "nice to have", "nice-to-have", "desirable", "bonus", "advantage", "ideally", "a plus"}

	qualificationMarkers  = []string{"degree", "certified", "certification", "certificate", "qualification", "qualified", "licence", "license", "accredited", "chartered"}
	responsibilityMarkers = []string{"responsible for", "you will", "duties", "responsibilities", "day to day", "day-to-day"}

	executiveMarkers = []string{"head of", "director", "chief", "vp", "vice president", "executive"}
	seniorMarkers    = []string{"senior", "lead", "principal", "staff engineer", "manager"}
	juniorMarkers    = []string{"junior"}
	entryMarkers     = []string{"entry level", "entry-level", "graduate", "trainee", "intern", "internship", "apprentice", "apprenticeship"}

	experienceRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:\+|plus)?\s*(?:(?:-|to)\s*(\d{1,2})\s*\+?\s*)?(?:years?|yrs?)\b`)
)

// Options tune the parser heuristics.
type Options struct {
	// IndustryThreshold is the minimum share of an industry's keywords that a
	// description must contain for the industry to be detected.
	IndustryThreshold float64
}

// DefaultOptions returns the stock parser configuration.
func DefaultOptions() Options {
	return Options{IndustryThreshold: 0.1}
}

// Hints carry an industry and role chosen by the caller. Known values
// override what the parser would detect.
type Hints struct {
	Industry string
	Role     string
}

// Parser builds requirement profiles.
type Parser struct {
	ref  *reference.Data
	opts Options
}

// NewParser returns a parser reading from the given reference tables.
func NewParser(ref *reference.Data, opts Options) *Parser {
	if opts.IndustryThreshold <= 0 {
		opts.IndustryThreshold = DefaultOptions().IndustryThreshold
	}
	if ref == nil {
		ref = reference.Default()
	}
	return &Parser{ref: ref, opts: opts}
}

type weighted struct {
	required  map[string]float64
	preferred map[string]float64
}

func (w *weighted) add(skill string, weight float64) {
	if weight <= weightPreferred {
		if _, ok := w.required[skill]; ok {
			return
		}
		if weight > w.preferred[skill] {
			w.preferred[skill] = weight
		}
		return
	}
	delete(w.preferred, skill)
	if weight > w.required[skill] {
		w.required[skill] = weight
	}
}

// Parse extracts requirements from a job description. Empty input yields Empty().
func (p *Parser) Parse(description string, hints Hints) *Profile {
	normalized := textextract.Normalize(description)
	if strings.TrimSpace(normalized) == "" {
		return Empty()
	}
	lower := strings.ToLower(normalized)

	out := Empty()
	out.Source = SourceDescription

	w := &weighted{required: map[string]float64{}, preferred: map[string]float64{}}
	quals := newOrdered()
	minDegree := ""

	for _, sentence := range textextract.Sentences(normalized) {
		fl := strings.ToLower(sentence)
		weight := fragmentWeight(fl)
		skills := p.ref.FindSkills(fl)
		certs := textextract.FindPhrases(fl, p.ref.Certifications)
		category := p.classify(fl, skills, certs)

		out.Fragments = append(out.Fragments, Fragment{Text: sentence, Category: category, Weight: weight})

		for _, s := range skills {
			w.add(s, weight)
		}
		for _, c := range certs {
			quals.add(c)
			w.add(c, weight)
		}

		if level := profile.DetectLevel(fl); level != "" && weight > weightPreferred {
			if minDegree == "" || profile.LevelRank(level) < profile.LevelRank(minDegree) {
				minDegree = level
			}
		}

		switch category {
		case CategoryResponsibility:
			out.Responsibilities = append(out.Responsibilities, sentence)
			for _, implied := range p.impliedSkills(fl) {
				w.add(implied, weightImplied)
			}
		case CategoryQualification:
			out.CoreRequirements = appendCapped(out.CoreRequirements, sentence, maxCoreRequirements)
		default:
			if weight >= weightProficient {
				out.CoreRequirements = appendCapped(out.CoreRequirements, sentence, maxCoreRequirements)
			}
		}
	}

	if minDegree != "" {
		out.MinDegree = minDegree
		quals.add(minDegree + " degree")
	}

	industry, role := p.detect(lower)
	if ind := reference.Slug(hints.Industry); ind != "" && ind != industry {
		if _, ok := p.ref.Industry(ind); ok {
			industry = ind
			role = reference.General
		}
	}
	if r := reference.Slug(hints.Role); r != "" {
		if _, ok := p.ref.Role(industry, r); ok {
			role = r
		}
	}
	p.applyIndustry(out, industry, role)

	var canned reference.Role
	hasRole := false
	if role != reference.General {
		canned, hasRole = p.ref.Role(industry, role)
	}

	if hasRole && len(w.required)+len(w.preferred) < minParsedSkills {
		for _, s := range canned.Skills {
			w.add(reference.Key(s), weightDefault)
		}
		for _, s := range canned.PreferredSkills {
			w.add(reference.Key(s), weightPreferred)
		}
		for _, q := range canned.Qualifications {
			q = reference.Key(q)
			quals.add(q)
			if p.ref.IsCertification(q) {
				w.add(q, weightDefault)
			}
		}
	}

	out.ExperienceYearsRequired = experienceRequired(normalized)
	if len(out.ExperienceYearsRequired) == 0 && hasRole {
		out.ExperienceYearsRequired = append([]int{}, canned.ExperienceYears...)
	}

	out.Seniority = detectSeniority(lower)
	if out.Seniority == "" {
		out.Seniority = SeniorityMid
		if hasRole && canned.Seniority != "" {
			out.Seniority = Seniority(canned.Seniority)
		}
	}

	for _, kw := range textextract.RankKeywords(normalized, p.ref.StopWordSet(), maxKeywords) {
		out.Keywords = append(out.Keywords, kw.Word)
	}

	out.RequiredSkills = sortedKeys(w.required)
	out.PreferredSkills = sortedKeys(w.preferred)
	out.Qualifications = quals.items
	out.ImportanceWeight = normalizeWeights(w)
	return out
}

// FromIndustryRole builds a profile from the canned tables. Unknown roles fall
// back to the industry's skills; unknown industries to generic defaults.
func (p *Parser) FromIndustryRole(industry, role string) *Profile {
	out := Empty()
	out.Source = SourceIndustryRole

	industry = reference.Slug(industry)
	role = reference.Slug(role)
	ind, ok := p.ref.Industry(industry)
	if !ok {
		w := &weighted{required: map[string]float64{}, preferred: map[string]float64{}}
		for _, s := range p.ref.GenericSkills {
			w.add(reference.Key(s), weightEssential)
		}
		out.RequiredSkills = sortedKeys(w.required)
		out.ImportanceWeight = normalizeWeights(w)
		return out
	}

	w := &weighted{required: map[string]float64{}, preferred: map[string]float64{}}
	canned, hasRole := p.ref.Role(industry, role)
	if hasRole {
		for _, s := range canned.Skills {
			w.add(reference.Key(s), weightEssential)
		}
		for _, s := range canned.PreferredSkills {
			w.add(reference.Key(s), weightPreferred)
		}
		for _, q := range canned.Qualifications {
			q = reference.Key(q)
			out.Qualifications = append(out.Qualifications, q)
			if p.ref.IsCertification(q) {
				w.add(q, weightEssential)
			}
		}
		out.Keywords = keys(canned.Keywords)
		out.ExperienceYearsRequired = append([]int{}, canned.ExperienceYears...)
		if canned.Seniority != "" {
			out.Seniority = Seniority(canned.Seniority)
		}
		out.CoreRequirements = append(out.CoreRequirements, keys(canned.Skills)...)
	} else {
		role = reference.General
		for i, s := range ind.Skills {
			if i < 6 {
				w.add(reference.Key(s), weightEssential)
			} else if i < 10 {
				w.add(reference.Key(s), weightPreferred)
			}
		}
		out.Keywords = keys(ind.Keywords)
		out.ExperienceYearsRequired = []int{2}
	}

	p.applyIndustry(out, industry, role)
	if len(out.Keywords) > maxKeywords {
		out.Keywords = out.Keywords[:maxKeywords]
	}
	out.RequiredSkills = sortedKeys(w.required)
	out.PreferredSkills = sortedKeys(w.preferred)
	out.ImportanceWeight = normalizeWeights(w)
	return out
}

func (p *Parser) applyIndustry(out *Profile, industry, role string) {
	out.Industry = industry
	out.Role = role
	if ind, ok := p.ref.Industry(industry); ok {
		out.TransferableFrom = keys(ind.TransferableFrom)
		out.IncompatibleFields = keys(ind.IncompatibleFields)
	}
}

// detect picks the industry with the largest keyword share above the
// threshold. Ties, and descriptions whose only signal is a role title, go to
// the industry of the most specific matching role title.
func (p *Parser) detect(lower string) (string, string) {
	roleIndustry, role, titleLen := "", "", 0
	for _, industry := range p.ref.IndustryNames() {
		for _, name := range p.ref.RoleNames(industry) {
			r, _ := p.ref.Role(industry, name)
			for _, title := range r.Titles {
				title = reference.Key(title)
				if len(title) > titleLen && textextract.ContainsPhrase(lower, title) {
					roleIndustry, role, titleLen = industry, name, len(title)
				}
			}
		}
	}

	best, bestShare := "", 0.0
	for _, industry := range p.ref.IndustryNames() {
		ind, _ := p.ref.Industry(industry)
		if len(ind.Keywords) == 0 {
			continue
		}
		share := float64(len(textextract.FindPhrases(lower, keys(ind.Keywords)))) / float64(len(ind.Keywords))
		if share < p.opts.IndustryThreshold {
			continue
		}
		if share > bestShare || (share == bestShare && industry == roleIndustry) {
			best, bestShare = industry, share
		}
	}

	switch {
	case best == "" && roleIndustry != "":
		return roleIndustry, role
	case best == "":
		return reference.General, reference.General
	case best == roleIndustry:
		return best, role
	default:
		return best, reference.General
	}
}

func (p *Parser) classify(lower string, skills, certs []string) Category {
	if len(certs) > 0 || containsAny(lower, qualificationMarkers) || profile.DetectLevel(lower) != "" {
		return CategoryQualification
	}
	if containsAny(lower, responsibilityMarkers) || p.startsWithVerb(lower) {
		return CategoryResponsibility
	}
	soft := 0
	for _, s := range skills {
		if p.ref.IsSoftSkill(s) {
			soft++
		}
	}
	switch {
	case len(skills) > soft:
		return CategoryTechnical
	case soft > 0:
		return CategorySoft
	default:
		return CategoryOther
	}
}

func (p *Parser) startsWithVerb(lower string) bool {
	tokens := textextract.Tokens(lower)
	return len(tokens) > 0 && len(p.ref.VerbSkills(tokens[0])) > 0
}

func (p *Parser) impliedSkills(lower string) []string {
	var out []string
	for _, tok := range textextract.Tokens(lower) {
		out = append(out, p.ref.VerbSkills(tok)...)
	}
	return out
}

func fragmentWeight(lower string) float64 {
	switch {
	case containsAny(lower, preferredMarkers):
		return weightPreferred
	case containsAny(lower, essentialMarkers):
		return weightEssential
	case containsAny(lower, proficientMarkers):
		return weightProficient
	default:
		return weightDefault
	}
}

func detectSeniority(lower string) Seniority {
	switch {
	case containsAny(lower, executiveMarkers):
		return SeniorityExecutive
	case containsAny(lower, seniorMarkers):
		return SenioritySenior
	case containsAny(lower, juniorMarkers):
		return SeniorityJunior
	case containsAny(lower, entryMarkers):
		return SeniorityEntry
	default:
		return ""
	}
}

// experienceRequired collects every years figure, so "3-5 years" yields 3 and 5.
func experienceRequired(text string) []int {
	seen := make(map[int]struct{})
	for _, m := range experienceRe.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if n, err := strconv.Atoi(g); err == nil {
				seen[n] = struct{}{}
			}
		}
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func normalizeWeights(w *weighted) map[string]float64 {
	total := 0.0
	for _, v := range w.required {
		total += v
	}
	for _, v := range w.preferred {
		total += v
	}

	out := make(map[string]float64, len(w.required)+len(w.preferred))
	if total == 0 {
		return out
	}
	for k, v := range w.required {
		out[k] = v / total
	}
	for k, v := range w.preferred {
		out[k] = v / total
	}
	return out
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if textextract.ContainsPhrase(lower, m) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func keys(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, reference.Key(s))
	}
	return out
}

func appendCapped(list []string, item string, limit int) []string {
	if len(list) >= limit {
		return list
	}
	return append(list, item)
}

type ordered struct {
	items []string
	seen  map[string]struct{}
}

func newOrdered() *ordered {
	return &ordered{items: []string{}, seen: map[string]struct{}{}}
}

func (o *ordered) add(s string) {
	if _, ok := o.seen[s]; ok {
		return
	}
	o.seen[s] = struct{}{}
	o.items = append(o.items, s)
}
