package consensus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaSource string

var responseSchema = mustSchema(schemaSource)

// Assessment is one backend's answer. Missing scores stay nil and are filled
// from the algorithmic result during reconciliation.
type Assessment struct {
	OverallScore         *float64 `mapstructure:"overallScore"`
	ExperienceScore      *float64 `mapstructure:"experienceScore"`
	SkillsScore          *float64 `mapstructure:"skillsScore"`
	EducationScore       *float64 `mapstructure:"educationScore"`
	TransferabilityScore *float64 `mapstructure:"transferabilityScore"`
	Strengths            []string `mapstructure:"strengths"`
	Recommendations      []string `mapstructure:"recommendations"`
	MissingKeywords      []string `mapstructure:"missingKeywords"`
}

// ParseError reports a backend reply that could not be used.
type ParseError struct {
	Backend string
	Reason  string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s response: %s", e.Backend, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("consensus: invalid response schema: %v", err))
	}
	return schema
}

func parseAssessment(backend, raw string) (*Assessment, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return nil, &ParseError{Backend: backend, Reason: "no JSON object in reply"}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ParseError{Backend: backend, Reason: "invalid JSON", Err: err}
	}

	result, err := responseSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &ParseError{Backend: backend, Reason: "schema validation failed", Err: err}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.Field()+": "+e.Description())
		}
		return nil, &ParseError{Backend: backend, Reason: strings.Join(problems, "; ")}
	}

	var out Assessment
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, &ParseError{Backend: backend, Reason: "decode fields", Err: err}
	}
	return &out, nil
}

// extractJSON strips markdown fences and any prose around the outermost
// object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return ""
	}
	return strings.TrimSpace(raw[start : end+1])
}
