// Package reference holds the lookup tables the matching engine reasons with:
// industries and their keywords, canned role requirements, transferability
// pairs, concept synonym groups and the skill lexicon. A Data value is built
// once at startup and shared read-only by every component.
package reference

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/spigell/cv-scorer/internal/textextract"
)

// General is the industry and role used when nothing more specific applies.
const General = "general"

// Industry describes one professional field.
type Industry struct {
	Keywords           []string `mapstructure:"keywords"`
	Skills             []string `mapstructure:"skills"`
	TransferableFrom   []string `mapstructure:"transferable-from"`
	IncompatibleFields []string `mapstructure:"incompatible-fields"`
}

// Role holds canned requirements for an industry/role pairing.
type Role struct {
	Titles          []string `mapstructure:"titles"`
	Skills          []string `mapstructure:"skills"`
	PreferredSkills []string `mapstructure:"preferred-skills"`
	Qualifications  []string `mapstructure:"qualifications"`
	Keywords        []string `mapstructure:"keywords"`
	ExperienceYears []int    `mapstructure:"experience-years"`
	Seniority       string   `mapstructure:"seniority"`
}

// Data is the full set of reference tables.
type Data struct {
	Industries          map[string]Industry        `mapstructure:"industries"`
	Roles               map[string]map[string]Role `mapstructure:"roles"`
	HighTransferability map[string][]string        `mapstructure:"high-transferability"`
	Concepts            [][]string                 `mapstructure:"concepts"`
	ActionVerbs         map[string][]string        `mapstructure:"action-verbs"`
	SoftSkills          []string                   `mapstructure:"soft-skills"`
	TechnicalSkills     []string                   `mapstructure:"technical-skills"`
	SkillAliases        map[string]string          `mapstructure:"skill-aliases"`
	Certifications      []string                   `mapstructure:"certifications"`
	TransferableSkills  []string                   `mapstructure:"transferable-skills"`
	LeadershipKeywords  []string                   `mapstructure:"leadership-keywords"`
	GenericSkills       []string                   `mapstructure:"generic-skills"`
	StopWords           []string                   `mapstructure:"stop-words"`

	once sync.Once
	idx  *index
}

type index struct {
	industries     []string
	soft           map[string]struct{}
	transferable   map[string]struct{}
	certs          map[string]struct{}
	stop           map[string]struct{}
	concepts       map[string][]int
	verbForms      map[string]string
	vocabulary     []string
	scanTerms      []string
	scanTo         map[string]string
	industrySkills map[string]map[string]struct{}
}

func (d *Data) index() *index {
	d.once.Do(func() {
		idx := &index{
			soft:           toSet(d.SoftSkills),
			transferable:   toSet(d.TransferableSkills),
			certs:          toSet(d.Certifications),
			stop:           toSet(d.StopWords),
			concepts:       make(map[string][]int),
			verbForms:      make(map[string]string),
			industrySkills: make(map[string]map[string]struct{}),
		}

		for name, ind := range d.Industries {
			idx.industries = append(idx.industries, name)
			idx.industrySkills[name] = toSet(ind.Skills)
		}
		sort.Strings(idx.industries)

		for i, group := range d.Concepts {
			for _, term := range group {
				term = Key(term)
				idx.concepts[term] = append(idx.concepts[term], i)
			}
		}

		for verb := range d.ActionVerbs {
			for _, form := range verbForms(verb) {
				if _, taken := idx.verbForms[form]; !taken || form == verb {
					idx.verbForms[form] = verb
				}
			}
		}

		vocab := make(map[string]struct{})
		add := func(list []string) {
			for _, s := range list {
				if s = Key(s); s != "" {
					vocab[s] = struct{}{}
				}
			}
		}
		for _, ind := range d.Industries {
			add(ind.Skills)
		}
		for _, roles := range d.Roles {
			for _, r := range roles {
				add(r.Skills)
				add(r.PreferredSkills)
			}
		}
		add(d.SoftSkills)
		add(d.TechnicalSkills)
		add(d.TransferableSkills)
		for c := range idx.certs {
			delete(vocab, c)
		}
		idx.vocabulary = make([]string, 0, len(vocab))
		for s := range vocab {
			idx.vocabulary = append(idx.vocabulary, s)
		}
		sort.Strings(idx.vocabulary)

		idx.scanTo = make(map[string]string)
		for _, term := range idx.vocabulary {
			idx.scanTo[term] = term
		}
		for alias, canonical := range d.SkillAliases {
			if _, ok := idx.scanTo[Key(alias)]; !ok {
				idx.scanTo[Key(alias)] = Key(canonical)
			}
		}
		for term := range idx.scanTo {
			if utf8.RuneCountInString(term) >= 3 {
				idx.scanTerms = append(idx.scanTerms, term)
			}
		}
		sort.Slice(idx.scanTerms, func(i, j int) bool {
			a, b := idx.scanTerms[i], idx.scanTerms[j]
			if len(a) != len(b) {
				return len(a) > len(b)
			}
			return a < b
		})

		d.idx = idx
	})
	return d.idx
}

// IndustryNames returns every known industry in alphabetical order.
func (d *Data) IndustryNames() []string {
	return append([]string(nil), d.index().industries...)
}

// Industry returns the industry entry for name.
func (d *Data) Industry(name string) (Industry, bool) {
	ind, ok := d.Industries[Key(name)]
	return ind, ok
}

// RoleNames returns the role keys known for an industry in alphabetical order.
func (d *Data) RoleNames(industry string) []string {
	roles := d.Roles[Key(industry)]
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Role looks up canned requirements. The role may be given either by key
// ("site-manager") or by display name ("Site Manager").
func (d *Data) Role(industry, role string) (Role, bool) {
	roles, ok := d.Roles[Key(industry)]
	if !ok {
		return Role{}, false
	}
	r, ok := roles[Slug(role)]
	return r, ok
}

// Vocabulary returns every known skill term, sorted.
func (d *Data) Vocabulary() []string {
	return d.index().vocabulary
}

// FindSkills finds known vocabulary and alias terms anywhere in the text.
// Longer terms are matched first and consume their span, so "risk assessment"
// inside "fire risk assessment" is not reported twice. Terms shorter than three
// runes are skipped since they collide with ordinary words outside a skills list.
func (d *Data) FindSkills(lower string) []string {
	idx := d.index()

	var out []string
	work := lower
	for _, term := range idx.scanTerms {
		if !textextract.ContainsPhrase(work, term) {
			continue
		}
		out = append(out, idx.scanTo[term])
		work = textextract.RemovePhrase(work, term)
	}
	return out
}

// IndustrySkill reports whether skill is associated with industry.
func (d *Data) IndustrySkill(industry, skill string) bool {
	_, ok := d.index().industrySkills[Key(industry)][Key(skill)]
	return ok
}

// IsSoftSkill reports whether skill is interpersonal rather than technical.
func (d *Data) IsSoftSkill(skill string) bool {
	_, ok := d.index().soft[Key(skill)]
	return ok
}

// IsTransferableSkill reports whether skill carries over between fields.
func (d *Data) IsTransferableSkill(skill string) bool {
	_, ok := d.index().transferable[Key(skill)]
	return ok
}

// IsCertification reports whether term names a known certification.
func (d *Data) IsCertification(term string) bool {
	_, ok := d.index().certs[Key(term)]
	return ok
}

// StopWordSet returns the stop word lookup used for keyword ranking.
func (d *Data) StopWordSet() map[string]struct{} {
	return d.index().stop
}

// SameConcept reports whether two skills share a concept group.
func (d *Data) SameConcept(a, b string) bool {
	ga := d.index().concepts[Key(a)]
	gb := d.index().concepts[Key(b)]
	for _, x := range ga {
		for _, y := range gb {
			if x == y {
				return true
			}
		}
	}
	return false
}

// HighlyTransferable reports whether the curated table lists from→to.
func (d *Data) HighlyTransferable(from, to string) bool {
	for _, t := range d.HighTransferability[Key(from)] {
		if Key(t) == Key(to) {
			return true
		}
	}
	return false
}

// VerbSkills returns the skills implied by an action verb in any inflection.
func (d *Data) VerbSkills(word string) []string {
	verb, ok := d.index().verbForms[Key(word)]
	if !ok {
		return nil
	}
	return d.ActionVerbs[verb]
}

// Canonical maps a skill through the alias table.
func (d *Data) Canonical(skill string) string {
	skill = Key(skill)
	if alias, ok := d.SkillAliases[skill]; ok {
		return alias
	}
	return skill
}

// Key lowercases and collapses whitespace.
func Key(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Slug turns a display name into a table key: "Site Manager" -> "site-manager".
func Slug(s string) string {
	return strings.ReplaceAll(Key(s), " ", "-")
}

func toSet(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, s := range list {
		out[Key(s)] = struct{}{}
	}
	return out
}

// verbForms produces the common inflections of a base verb.
func verbForms(verb string) []string {
	verb = Key(verb)
	forms := []string{verb, verb + "s", verb + "ed", verb + "ing"}

	if strings.HasSuffix(verb, "e") {
		stem := strings.TrimSuffix(verb, "e")
		forms = append(forms, verb+"d", stem+"ing")
	}
	if strings.HasSuffix(verb, "y") && len(verb) > 2 && !strings.ContainsRune("aeiou", rune(verb[len(verb)-2])) {
		stem := strings.TrimSuffix(verb, "y")
		forms = append(forms, stem+"ies", stem+"ied")
	}
	if n := len(verb); n >= 3 && isCVC(verb[n-3:]) {
		last := verb[n-1:]
		forms = append(forms, verb+last+"ed", verb+last+"ing")
	}
	return forms
}

func isCVC(s string) bool {
	vowel := func(c byte) bool { return strings.IndexByte("aeiou", c) >= 0 }
	return !vowel(s[0]) && vowel(s[1]) && !vowel(s[2]) && strings.IndexByte("wxy", s[2]) < 0
}
