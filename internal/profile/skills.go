package profile

import (
	"strings"

	"github.com/spigell/cv-scorer/internal/reference"
	"github.com/spigell/cv-scorer/internal/textextract"
)

// skillSet keeps insertion order and drops duplicates.
type skillSet struct {
	order []string
	seen  map[string]struct{}
}

func newSkillSet() *skillSet {
	return &skillSet{seen: make(map[string]struct{})}
}

func (s *skillSet) add(skill string) {
	if skill == "" {
		return
	}
	if _, ok := s.seen[skill]; ok {
		return
	}
	s.seen[skill] = struct{}{}
	s.order = append(s.order, skill)
}

func (s *skillSet) list(limit int) []string {
	out := append([]string{}, s.order...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// explicitSkills parses a skills section into individual items.
func explicitSkills(ref *reference.Data, section string) []string {
	if strings.TrimSpace(section) == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}
		for _, item := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == '|' || r == '/'
		}) {
			item = strings.Trim(reference.Key(item), ".-()")
			if item == "" || len(strings.Fields(item)) > 4 {
				continue
			}
			if ref.IsCertification(item) {
				continue
			}
			out = append(out, ref.Canonical(item))
		}
	}
	return out
}

// contextualSkills maps action verbs at the start of responsibility and
// achievement sentences to the skills they imply.
func contextualSkills(ref *reference.Data, sentences []string) ([]string, []string) {
	var skills, verbs []string
	seenVerb := make(map[string]struct{})

	for _, sentence := range sentences {
		tokens := textextract.Tokens(sentence)
		if len(tokens) > 3 {
			tokens = tokens[:3]
		}
		for _, tok := range tokens {
			implied := ref.VerbSkills(tok)
			if len(implied) == 0 {
				continue
			}
			skills = append(skills, implied...)
			if _, ok := seenVerb[tok]; !ok {
				seenVerb[tok] = struct{}{}
				verbs = append(verbs, tok)
			}
			break
		}
	}
	return skills, verbs
}
