// Package textextract normalizes raw CV and job text and isolates labeled
// sections using heading heuristics.
package textextract

import (
	"strings"
	"unicode"
)

// Section names a logical part of a CV.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionAchievements   Section = "achievements"
)

var headings = map[Section][]string{
	SectionSummary: {
		"summary", "profile", "professional summary", "personal statement",
		"personal profile", "objective", "career objective", "about me",
	},
	SectionSkills: {
		"skills", "key skills", "core skills", "technical skills", "skills and competencies",
		"key competencies", "competencies", "core competencies", "areas of expertise",
		"expertise", "technologies", "tools and technologies",
	},
	SectionExperience: {
		"experience", "work experience", "professional experience", "employment history",
		"employment", "work history", "career history", "relevant experience",
	},
	SectionEducation: {
		"education", "qualifications", "academic background", "education and training",
		"academic qualifications", "training",
	},
	SectionCertifications: {
		"certifications", "certificates", "licences", "licenses", "accreditations",
		"professional qualifications", "certifications and licences",
	},
	SectionAchievements: {
		"achievements", "key achievements", "accomplishments", "awards",
	},
}

// Sections lists every section with built-in heading synonyms, in a stable order.
func Sections() []Section {
	return []Section{
		SectionSummary, SectionSkills, SectionExperience,
		SectionEducation, SectionCertifications, SectionAchievements,
	}
}

// Headings returns the heading synonyms recognised for a section.
func Headings(s Section) []string {
	return append([]string(nil), headings[s]...)
}

// ExtractSection returns the text following the first line that matches one of
// the heading synonyms, up to the next heading-like line. The boolean is false
// when no heading matched. An inline form such as "Skills: Go, SQL" is
// supported, in which case the inline remainder starts the span.
func ExtractSection(text string, synonyms []string) (string, bool) {
	if strings.TrimSpace(text) == "" || len(synonyms) == 0 {
		return "", false
	}

	wanted := make(map[string]struct{}, len(synonyms))
	for _, s := range synonyms {
		wanted[headingKey(s)] = struct{}{}
	}

	lines := strings.Split(Normalize(text), "\n")
	for i, line := range lines {
		inline, ok := matchHeading(line, wanted)
		if !ok {
			continue
		}

		var body []string
		if inline != "" {
			body = append(body, inline)
		}
		for _, next := range lines[i+1:] {
			if IsHeadingLine(next) {
				break
			}
			if strings.TrimSpace(next) == "" {
				continue
			}
			body = append(body, strings.TrimSpace(next))
		}

		return strings.Join(body, "\n"), true
	}

	return "", false
}

// IsHeadingLine reports whether a line looks like a section heading: a known
// heading synonym, a short line ending with a colon, or a short all-caps line.
func IsHeadingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return false
	}
	if strings.HasPrefix(trimmed, "- ") {
		return false
	}

	key := headingKey(trimmed)
	if _, ok := known[key]; ok {
		return true
	}

	words := strings.Fields(trimmed)
	if len(words) > 5 {
		return false
	}

	if strings.HasSuffix(trimmed, ":") {
		return true
	}

	letters := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return letters >= 4
}

func matchHeading(line string, wanted map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	if _, ok := wanted[headingKey(trimmed)]; ok && len(trimmed) <= 40 {
		return "", true
	}

	if idx := strings.Index(trimmed, ":"); idx > 0 {
		if _, ok := wanted[headingKey(trimmed[:idx])]; ok {
			return strings.TrimSpace(trimmed[idx+1:]), true
		}
	}

	return "", false
}

func headingKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, ":.-# ")
	s = strings.ReplaceAll(s, "&", "and")
	return strings.Join(strings.Fields(s), " ")
}

var known = func() map[string]struct{} {
	out := make(map[string]struct{})
	for _, list := range headings {
		for _, h := range list {
			out[headingKey(h)] = struct{}{}
		}
	}
	return out
}()
