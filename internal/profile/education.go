package profile

import (
	"regexp"
	"strings"

	"github.com/spigell/cv-scorer/internal/textextract"
)

var levelPatterns = []struct {
	level string
	re    *regexp.Regexp
}{
	{LevelPhD, regexp.MustCompile(`\b(phd|ph\.d|doctorate|dphil)\b`)},
	{LevelMaster, regexp.MustCompile(`\b(masters?|master's|msc|m\.sc|mba|meng|mres|llm|postgraduate)\b`)},
	{LevelBachelor, regexp.MustCompile(`\b(bachelors?|bachelor's|bsc|b\.sc|b\.a|beng|llb|undergraduate|degree|graduate)\b`)},
	{LevelDiploma, regexp.MustCompile(`\b(diploma|hnd|hnc|foundation degree|associate degree|btec|nvq level [3-5])\b`)},
	{LevelSecondary, regexp.MustCompile(`\b(a-levels?|a levels?|gcses?|high school|secondary school)\b`)},
}

var knownFields = []string{
	"computer science", "software engineering", "information technology", "data science",
	"mechanical engineering", "civil engineering", "electrical engineering", "fire engineering",
	"fire safety", "health and safety", "occupational safety", "construction management",
	"building surveying", "engineering", "business administration", "business", "accounting",
	"finance", "economics", "law", "nursing", "medicine", "education", "marketing", "psychology",
	"mathematics", "physics", "chemistry", "biology", "history", "english",
	"hospitality management", "human resources", "logistics",
}

var inFieldRe = regexp.MustCompile(`\b(?:in|of)\s+([a-z][a-z &]{2,40})`)

// DetectLevel returns the highest qualification level mentioned in lower-case
// text, or "" when none is.
func DetectLevel(lower string) string {
	for _, p := range levelPatterns {
		if p.re.MatchString(lower) {
			return p.level
		}
	}
	return ""
}

// parseEducation scans lines for qualification levels and fields of study.
func parseEducation(lines []string) []Education {
	var out []Education
	seen := make(map[Education]struct{})

	for _, line := range lines {
		lower := strings.ToLower(line)
		level := DetectLevel(lower)
		if level == "" {
			continue
		}

		e := Education{Level: level, Field: fieldOfStudy(lower)}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

func fieldOfStudy(lower string) string {
	for _, f := range knownFields {
		if textextract.ContainsPhrase(lower, f) {
			return f
		}
	}
	if m := inFieldRe.FindStringSubmatch(lower); m != nil {
		field := m[1]
		for _, stop := range []string{",", " from ", " at ", " and "} {
			field = strings.SplitN(field, stop, 2)[0]
		}
		return strings.TrimSpace(field)
	}
	return ""
}
