package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `Jane Doe
jane@example.com

PROFILE
Fire safety professional.

Key Skills
• Fire risk assessment
• Incident command

Work Experience
Fire Safety Officer, County Fire Service 2015 - 2023
Led inspections of high-rise buildings.

Education:
BSc Fire Engineering`

func TestExtractSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		section Section
		want    string
		found   bool
	}{
		{
			name:    "skills with bullets",
			text:    sampleCV,
			section: SectionSkills,
			want:    "- Fire risk assessment\n- Incident command",
			found:   true,
		},
		{
			name:    "experience stops at next heading",
			text:    sampleCV,
			section: SectionExperience,
			want:    "Fire Safety Officer, County Fire Service 2015 - 2023\nLed inspections of high-rise buildings.",
			found:   true,
		},
		{
			name:    "heading with colon",
			text:    sampleCV,
			section: SectionEducation,
			want:    "BSc Fire Engineering",
			found:   true,
		},
		{
			name:    "inline heading",
			text:    "Skills: Go, SQL, Docker\nExperience\nBackend developer",
			section: SectionSkills,
			want:    "Go, SQL, Docker",
			found:   true,
		},
		{
			name:    "missing heading",
			text:    "Fire Safety Officer, 8 years, NEBOSH certified",
			section: SectionSkills,
			found:   false,
		},
		{
			name:    "empty input",
			text:    "",
			section: SectionSkills,
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractSection(tt.text, Headings(tt.section))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHeadingLine(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHeadingLine("Work Experience"))
	assert.True(t, IsHeadingLine("PROJECTS"))
	assert.True(t, IsHeadingLine("Volunteering:"))
	assert.False(t, IsHeadingLine("Led inspections of high-rise buildings."))
	assert.False(t, IsHeadingLine("- Fire risk assessment"))
	assert.False(t, IsHeadingLine(""))
}

func TestHeadingsReturnsCopy(t *testing.T) {
	t.Parallel()

	list := Headings(SectionSkills)
	require.NotEmpty(t, list)
	list[0] = "changed"
	assert.Equal(t, "skills", Headings(SectionSkills)[0])
}
