package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	in := "Skills\r\n\r\n•  Go\t and  SQL\n* Docker\n   \nEnd – here"
	assert.Equal(t, "Skills\n- Go and SQL\n- Docker\nEnd - here", Normalize(in))
	assert.Equal(t, "", Normalize(""))
}

func TestSentences(t *testing.T) {
	t.Parallel()

	got := Sentences("Built APIs in node.js. Reduced costs by 12.5%; led a team\n- Mentored juniors")
	assert.Equal(t, []string{
		"Built APIs in node.js",
		"Reduced costs by 12.5%",
		"led a team",
		"Mentored juniors",
	}, got)
	assert.Nil(t, Sentences("  "))
}

func TestTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"c++", "c#", "node.js", "and", "react"}, Tokens("C++, C#, Node.js and React."))
}

func TestContainsPhrase(t *testing.T) {
	t.Parallel()

	text := "react/node projects, fire risk assessment. built with node.js"
	assert.True(t, ContainsPhrase(text, "node"))
	assert.True(t, ContainsPhrase(text, "fire risk assessment"))
	assert.True(t, ContainsPhrase(text, "node.js"))
	assert.True(t, ContainsPhrase(text, "risk assessment"))
	assert.False(t, ContainsPhrase(text, "act"))
	assert.False(t, ContainsPhrase(text, "fire risk"+" management"))
	assert.False(t, ContainsPhrase(text, ""))
	assert.False(t, ContainsPhrase("java developer", "java developers"))
	assert.False(t, ContainsPhrase("javascript", "java"))
}

func TestFindPhrases(t *testing.T) {
	t.Parallel()

	got := FindPhrases("nebosh certified, incident command", []string{"incident command", "iosh", "nebosh"})
	assert.Equal(t, []string{"incident command", "nebosh"}, got)
}

func TestRankKeywords(t *testing.T) {
	t.Parallel()

	stop := map[string]struct{}{"the": {}, "and": {}}
	got := RankKeywords("Safety and the building. Building safety, fire. 2024 is ok", stop, 3)
	assert.Equal(t, []KeywordCount{
		{Word: "building", Count: 2},
		{Word: "safety", Count: 2},
		{Word: "fire", Count: 1},
	}, got)
}

func TestRemovePhrase(t *testing.T) {
	t.Parallel()

	got := RemovePhrase("fire risk assessment, risk assessments, risk assessment", "risk assessment")
	assert.Equal(t, "fire                , risk assessments,                ", got)
	assert.Equal(t, "abc", RemovePhrase("abc", ""))
}
