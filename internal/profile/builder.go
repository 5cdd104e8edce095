package profile

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spigell/cv-scorer/internal/reference"
	"github.com/spigell/cv-scorer/internal/textextract"
)

const (
	maxAchievements   = 10
	maxHeadlineLength = 120
)

var (
	quantifiedRe  = regexp.MustCompile(`(\d+(\.\d+)?\s*%|[£$€]\s*\d|\b\d+(\.\d+)?\s*(k|m|x|bn)\b|\b\d+\b)`)
	trackedFields = []textextract.Section{
		textextract.SectionSkills,
		textextract.SectionExperience,
		textextract.SectionEducation,
	}
)

// Builder converts CV text into candidate profiles.
type Builder struct {
	ref  *reference.Data
	opts Options
}

// NewBuilder returns a builder reading from the given reference tables. Zero
// option values fall back to DefaultOptions.
func NewBuilder(ref *reference.Data, opts Options) *Builder {
	def := DefaultOptions()
	if opts.FieldThreshold <= 0 {
		opts.FieldThreshold = def.FieldThreshold
	}
	if opts.MaxSkills <= 0 {
		opts.MaxSkills = def.MaxSkills
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	if ref == nil {
		ref = reference.Default()
	}
	return &Builder{ref: ref, opts: opts}
}

// Build extracts a profile from raw CV text.
func (b *Builder) Build(cvText string) *CandidateProfile {
	normalized := textextract.Normalize(cvText)
	lower := strings.ToLower(normalized)
	lines := nonEmptyLines(normalized)
	now := b.opts.Now()

	sections := make(map[textextract.Section]string)
	found := make(map[textextract.Section]bool)
	for _, s := range textextract.Sections() {
		body, ok := textextract.ExtractSection(normalized, textextract.Headings(s))
		sections[s] = body
		found[s] = ok
	}

	p := &CandidateProfile{
		Skills:          []string{},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		WorkHistory:     []WorkEntry{},
		Education:       []Education{},
		Certifications:  []string{},
		Achievements:    []string{},
		ActionVerbs:     []string{},
		CurrentField:    UnknownField,
		SectionQuality:  make(map[string]int, len(trackedFields)),
	}
	if len(lines) > 0 {
		p.Headline = truncate(lines[0], maxHeadlineLength)
	}

	experienceText := normalized
	if found[textextract.SectionExperience] && strings.TrimSpace(sections[textextract.SectionExperience]) != "" {
		experienceText = sections[textextract.SectionExperience]
	}

	p.ExperienceYears = experienceYears(normalized, now)
	if history := workHistory(nonEmptyLines(experienceText)); len(history) > 0 {
		p.WorkHistory = history
	}

	educationLines := textextract.Sentences(normalized)
	if found[textextract.SectionEducation] && strings.TrimSpace(sections[textextract.SectionEducation]) != "" {
		educationLines = nonEmptyLines(sections[textextract.SectionEducation])
	}
	if edu := parseEducation(educationLines); len(edu) > 0 {
		p.Education = edu
	}

	p.Certifications = b.certifications(lower, sections[textextract.SectionCertifications])

	skills := newSkillSet()
	for _, s := range explicitSkills(b.ref, sections[textextract.SectionSkills]) {
		skills.add(s)
	}
	for _, s := range b.ref.FindSkills(lower) {
		skills.add(s)
	}
	responsibility := textextract.Sentences(experienceText + "\n" + sections[textextract.SectionAchievements])
	implied, verbs := contextualSkills(b.ref, responsibility)
	for _, s := range implied {
		skills.add(s)
	}
	p.Skills = skills.list(b.opts.MaxSkills)
	if len(verbs) > 0 {
		p.ActionVerbs = verbs
	}

	for _, s := range p.Skills {
		if b.ref.IsSoftSkill(s) {
			p.SoftSkills = append(p.SoftSkills, s)
		} else {
			p.TechnicalSkills = append(p.TechnicalSkills, s)
		}
	}

	if ach := achievements(responsibility); len(ach) > 0 {
		p.Achievements = ach
	}

	p.CurrentField = b.currentField(lower, p.Headline)

	for _, s := range trackedFields {
		p.SectionQuality[string(s)] = sectionQuality(found[s], sections[s], fallbackSignal(s, p))
	}

	return p
}

// FieldScores returns the share of each industry's keywords present in the
// text. Exposed for callers that need the ranking, not just the winner.
func (b *Builder) FieldScores(cvText string) map[string]float64 {
	lower := textextract.Lower(cvText)
	out := make(map[string]float64)
	for _, name := range b.ref.IndustryNames() {
		ind, _ := b.ref.Industry(name)
		out[name] = keywordShare(lower, ind.Keywords)
	}
	return out
}

func (b *Builder) currentField(lower, headline string) string {
	best, bestShare, bestHeadline := UnknownField, 0.0, 0
	headline = strings.ToLower(headline)

	for _, name := range b.ref.IndustryNames() {
		ind, _ := b.ref.Industry(name)
		share := keywordShare(lower, ind.Keywords)
		if share < b.opts.FieldThreshold {
			continue
		}
		inHeadline := len(textextract.FindPhrases(headline, ind.Keywords))
		if share > bestShare || (share == bestShare && inHeadline > bestHeadline) {
			best, bestShare, bestHeadline = name, share, inHeadline
		}
	}
	return best
}

func (b *Builder) certifications(lower, section string) []string {
	certs := newSkillSet()
	for _, c := range textextract.FindPhrases(lower, b.ref.Certifications) {
		certs.add(c)
	}
	for _, line := range nonEmptyLines(section) {
		item := strings.Trim(reference.Key(strings.TrimPrefix(line, "- ")), ".,;")
		if item != "" && len(strings.Fields(item)) <= 6 {
			certs.add(item)
		}
	}

	out := certs.list(0)
	sort.Strings(out)
	return out
}

func keywordShare(lower string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	return float64(len(textextract.FindPhrases(lower, keywords))) / float64(len(keywords))
}

func achievements(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		stripped := rangeRe.ReplaceAllString(s, "")
		stripped = yearRe.ReplaceAllString(stripped, "")
		if !quantifiedRe.MatchString(strings.ToLower(stripped)) {
			continue
		}
		if len(strings.Fields(s)) < 4 {
			continue
		}
		out = append(out, s)
		if len(out) == maxAchievements {
			break
		}
	}
	return out
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b|\b\d{1,2}\s*\+?\s*(years?|yrs?)\b`)

// sectionQuality scores how confidently a section was isolated.
func sectionQuality(found bool, body string, fallback bool) int {
	lines := len(nonEmptyLines(body))
	switch {
	case found && lines > 0:
		q := 70 + 5*min(lines, 6)
		return min(q, 100)
	case found:
		return 30
	case fallback:
		return 45
	default:
		return 20
	}
}

func fallbackSignal(s textextract.Section, p *CandidateProfile) bool {
	switch s {
	case textextract.SectionSkills:
		return len(p.Skills) >= 3
	case textextract.SectionExperience:
		return p.ExperienceYears > 0 || len(p.WorkHistory) > 0
	case textextract.SectionEducation:
		return len(p.Education) > 0
	}
	return false
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
