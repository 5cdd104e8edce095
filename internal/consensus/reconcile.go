package consensus

import (
	"math"
	"sort"
	"strings"

	"github.com/spigell/cv-scorer/internal/match"
)

const (
	maxStrengths       = 5
	maxRecommendations = 5
	maxMissingKeywords = 10

	singleResponseConfidence = 75
)

type bounds struct {
	low, high int
}

// The algorithmic transferability band limits how far a backend may push the
// overall score.
var bandBounds = map[string]bounds{
	match.BandHigh:   {55, 100},
	match.BandMedium: {30, 85},
	match.BandLow:    {0, 35},
}

func reconcile(algo match.Result, assessments []*Assessment, blend float64) *Outcome {
	pick := func(get func(*Assessment) *float64, fallback int) []float64 {
		values := make([]float64, 0, len(assessments))
		for _, a := range assessments {
			if v := get(a); v != nil && !math.IsNaN(*v) {
				values = append(values, *v)
			} else {
				values = append(values, float64(fallback))
			}
		}
		return values
	}

	overalls := pick(func(a *Assessment) *float64 { return a.OverallScore }, algo.OverallCompatibility)
	consensus := Bound(algo.TransferabilityBand(), toScore(trimmedMean(overalls)))

	mix := func(algorithmic int, suggested float64) int {
		return toScore(blend*float64(algorithmic) + (1-blend)*float64(toScore(suggested)))
	}

	res := algo
	res.OverallCompatibility = toScore(blend*float64(algo.OverallCompatibility) + (1-blend)*float64(consensus))
	res.ExperienceMatch = mix(algo.ExperienceMatch, trimmedMean(pick(func(a *Assessment) *float64 { return a.ExperienceScore }, algo.ExperienceMatch)))
	res.SkillsMatch = mix(algo.SkillsMatch, trimmedMean(pick(func(a *Assessment) *float64 { return a.SkillsScore }, algo.SkillsMatch)))
	res.EducationMatch = mix(algo.EducationMatch, trimmedMean(pick(func(a *Assessment) *float64 { return a.EducationScore }, algo.EducationMatch)))
	res.TransferabilityScore = mix(algo.TransferabilityScore, trimmedMean(pick(func(a *Assessment) *float64 { return a.TransferabilityScore }, algo.TransferabilityScore)))

	out := &Outcome{
		Result:         match.NewResult(res),
		ConsensusScore: consensus,
		Confidence:     confidence(overalls),
	}

	var strengths, recommendations, keywords [][]string
	for _, a := range assessments {
		strengths = append(strengths, a.Strengths)
		recommendations = append(recommendations, a.Recommendations)
		keywords = append(keywords, a.MissingKeywords)
	}
	out.Strengths = mergeLists(strengths, maxStrengths)
	out.Recommendations = mergeLists(recommendations, maxRecommendations)
	out.MissingKeywords = mergeLists(keywords, maxMissingKeywords)
	return out
}

// Bound clamps a consensus score into the range allowed for a
// transferability band.
func Bound(band string, score int) int {
	b, ok := bandBounds[band]
	if !ok {
		b = bandBounds[match.BandLow]
	}
	if score < b.low {
		return b.low
	}
	if score > b.high {
		return b.high
	}
	return score
}

// trimmedMean drops the lowest and highest value once there are at least
// three, then averages. Input order does not matter.
func trimmedMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if len(sorted) >= 3 {
		sorted = sorted[1 : len(sorted)-1]
	}

	total := 0.0
	for _, v := range sorted {
		total += v
	}
	return total / float64(len(sorted))
}

// confidence maps the spread of overall scores to a confidence value.
func confidence(values []float64) int {
	if len(values) < 2 {
		return singleResponseConfidence
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	switch spread := hi - lo; {
	case spread <= 10:
		return 95
	case spread <= 20:
		return 85
	case spread <= 30:
		return 75
	default:
		return 60
	}
}

// mergeLists deduplicates case-insensitively, keeping first spelling and
// ordering by how many backends mentioned an item.
func mergeLists(lists [][]string, limit int) []string {
	type item struct {
		text  string
		count int
		first int
	}

	byKey := make(map[string]*item)
	order := 0
	for _, list := range lists {
		seen := make(map[string]struct{})
		for _, s := range list {
			s = strings.TrimSpace(s)
			key := strings.ToLower(s)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if it, ok := byKey[key]; ok {
				it.count++
				continue
			}
			byKey[key] = &item{text: s, count: 1, first: order}
			order++
		}
	}

	items := make([]*item, 0, len(byKey))
	for _, it := range byKey {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].first < items[j].first
	})

	out := make([]string, 0, min(len(items), limit))
	for _, it := range items {
		if len(out) == limit {
			break
		}
		out = append(out, it.text)
	}
	return out
}

func toScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return match.Clamp(int(math.Round(v)))
}
