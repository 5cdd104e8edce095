package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/match"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/textextract"
)

// Request is one analysis call.
type Request struct {
	CVText         string `json:"cvText"`
	Industry       string `json:"industry,omitempty"`
	Role           string `json:"role,omitempty"`
	Generic        bool   `json:"generic"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// Metadata describes how a report was produced.
type Metadata struct {
	ConfidenceScore  int      `json:"confidenceScore"`
	MatchType        string   `json:"matchType"`
	ProcessingTimeMs int64    `json:"processingTimeMs"`
	AIEnhanced       bool     `json:"aiEnhanced"`
	FromCache        bool     `json:"fromCache"`
	CacheAgeMinutes  int      `json:"cacheAgeMinutes"`
	AnalysisID       string   `json:"analysisId"`
	Fallback         bool     `json:"fallback"`
	Backends         []string `json:"backends"`
}

// Report is the result of AnalyzeCV.
type Report struct {
	Score                  int           `json:"score"`
	FormatScore            int           `json:"formatScore"`
	ContentScore           int           `json:"contentScore"`
	JobFitScore            int           `json:"jobFitScore"`
	ATSCompliance          int           `json:"atsCompliance"`
	Strengths              []string      `json:"strengths"`
	Recommendations        []string      `json:"recommendations"`
	MissingKeywords        []string      `json:"missingKeywords"`
	Improvements           []string      `json:"improvements"`
	ExperienceLevel        string        `json:"experienceLevel"`
	CareerStage            string        `json:"careerStage"`
	FieldCompatibility     string        `json:"fieldCompatibility"`
	TimeToCompetitive      string        `json:"timeToCompetitive"`
	CareerTransitionAdvice string        `json:"careerTransitionAdvice"`
	Match                  *match.Result `json:"match,omitempty"`
	Metadata               Metadata      `json:"analysisMetadata"`
}

func (r *Report) clone() *Report {
	out := *r
	out.Strengths = append([]string{}, r.Strengths...)
	out.Recommendations = append([]string{}, r.Recommendations...)
	out.MissingKeywords = append([]string{}, r.MissingKeywords...)
	out.Improvements = append([]string{}, r.Improvements...)
	out.Metadata.Backends = append([]string{}, r.Metadata.Backends...)
	if r.Match != nil {
		m := match.NewResult(*r.Match)
		out.Match = &m
	}
	return &out
}

const (
	maxStrengths       = 6
	maxRecommendations = 6
	maxKeywords        = 10
	maxImprovements    = 6

	fallbackScore      = 60
	fallbackConfidence = 25
)

var (
	defaultStrengths = []string{
		"CV submitted for analysis",
		"Transferable experience can be highlighted further",
	}
	defaultRecommendations = []string{
		"Add a skills section listing your key tools and competencies",
		"Describe each role with quantified achievements",
		"Tailor the CV to the keywords of the job you are applying for",
	}

	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s()-]{8,}\d`)
)

// formatScore rates layout signals: headings, bullets, length and contact details.
func formatScore(normalized string) int {
	score := 30

	headings := 0
	for _, s := range textextract.Sections() {
		if _, ok := textextract.ExtractSection(normalized, textextract.Headings(s)); ok {
			headings++
		}
	}
	score += min(headings*8, 40)

	bullets := 0
	for _, line := range strings.Split(normalized, "\n") {
		if strings.HasPrefix(line, "- ") {
			bullets++
		}
	}
	if bullets >= 3 {
		score += 10
	}

	switch words := len(strings.Fields(normalized)); {
	case words >= 250 && words <= 900:
		score += 10
	case words >= 120 && words <= 1500:
		score += 5
	}

	if hasContact(normalized) {
		score += 5
	}
	return match.Clamp(score)
}

// atsCompliance rates how well an applicant tracking system could parse the
// CV and how many of the job's terms it would find.
func atsCompliance(raw, normalized string, job *jobreq.Profile) int {
	score := 50

	standard := 0
	for _, s := range []textextract.Section{
		textextract.SectionSummary, textextract.SectionSkills,
		textextract.SectionExperience, textextract.SectionEducation,
	} {
		if _, ok := textextract.ExtractSection(normalized, textextract.Headings(s)); ok {
			standard++
		}
	}
	score += standard * 5

	terms := jobTerms(job)
	if len(terms) == 0 {
		score += 15
	} else {
		lower := strings.ToLower(normalized)
		found := 0
		for _, t := range terms {
			if textextract.ContainsPhrase(lower, t) {
				found++
			}
		}
		score += found * 30 / len(terms)
	}

	if hasTableLayout(raw) {
		score -= 10
	}
	return match.Clamp(score)
}

// contentScore rates substance: quantified achievements, action verbs,
// breadth of skills and section quality.
func contentScore(cand *profile.CandidateProfile) int {
	score := 35.0
	score += float64(min(len(cand.Achievements)*5, 25))
	score += float64(min(len(cand.ActionVerbs)*3, 15))
	score += float64(min(len(cand.Skills), 15))
	score += cand.AverageQuality() * 0.1
	return match.Clamp(int(score + 0.5))
}

func overallScore(generic bool, jobFit, content, format, ats int) int {
	var v float64
	if generic {
		v = 0.45*float64(content) + 0.30*float64(format) + 0.25*float64(ats)
	} else {
		v = 0.5*float64(jobFit) + 0.25*float64(content) + 0.15*float64(format) + 0.10*float64(ats)
	}
	return match.Clamp(int(v + 0.5))
}

func algorithmicConfidence(cand *profile.CandidateProfile) int {
	c := int(50 + cand.AverageQuality()*0.4 + 0.5)
	return max(40, min(c, 90))
}

func jobTerms(job *jobreq.Profile) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range [][]string{job.RequiredSkills, job.Keywords} {
		for _, t := range list {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

func missingKeywords(normalized string, job *jobreq.Profile, cand *profile.CandidateProfile) []string {
	lower := strings.ToLower(normalized)
	var out []string
	for _, t := range jobTerms(job) {
		if len(out) == maxKeywords {
			break
		}
		if !textextract.ContainsPhrase(lower, t) && !cand.HasSkill(t) {
			out = append(out, t)
		}
	}
	return out
}

func improvements(normalized string, cand *profile.CandidateProfile) []string {
	var out []string
	for _, s := range []textextract.Section{textextract.SectionSkills, textextract.SectionExperience, textextract.SectionEducation} {
		if _, ok := textextract.ExtractSection(normalized, textextract.Headings(s)); !ok {
			out = append(out, fmt.Sprintf("Add a clearly headed %s section", s))
		}
	}
	if len(cand.Achievements) == 0 {
		out = append(out, "Quantify achievements with numbers, percentages or amounts")
	}
	if len(cand.ActionVerbs) < 3 {
		out = append(out, "Start bullet points with strong action verbs such as led, delivered or improved")
	}
	if !hasContact(normalized) {
		out = append(out, "Include an email address or phone number")
	}
	if len(out) > maxImprovements {
		out = out[:maxImprovements]
	}
	return out
}

func hasContact(text string) bool {
	return emailRe.MatchString(text) || phoneRe.MatchString(text)
}

func hasTableLayout(raw string) bool {
	rows := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.Count(line, "|") >= 2 || strings.Count(line, "\t") >= 2 {
			rows++
		}
	}
	return rows >= 3
}

func experienceLevel(r match.Result, years int) string {
	unit := "years"
	if years == 1 {
		unit = "year"
	}
	return fmt.Sprintf("%s (%d %s)", r.CareerStage, years, unit)
}

func timeToCompetitive(score int) string {
	switch {
	case score >= 80:
		return "Ready to apply now"
	case score >= 65:
		return "1-3 months"
	case score >= 50:
		return "3-6 months"
	default:
		return "6-12 months"
	}
}

func transitionAdvice(r match.Result, from, to string) string {
	switch r.MatchType {
	case match.Direct:
		return fmt.Sprintf("You are already working in %s; focus on depth and measurable results.", to)
	case match.Transferable:
		return fmt.Sprintf("Your %s background transfers well to %s; translate your experience into the target field's language.", from, to)
	case match.EntryLevel:
		return fmt.Sprintf("Position yourself for entry-level %s roles and lead with education and projects.", to)
	default:
		return fmt.Sprintf("Moving from %s to %s is a career change; plan for training and a bridging role.", from, to)
	}
}

// mergeText appends lists in order, dropping case-insensitive duplicates and
// blanks, up to limit items.
func mergeText(limit int, lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			key := strings.ToLower(s)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			if len(out) == limit {
				return out
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
