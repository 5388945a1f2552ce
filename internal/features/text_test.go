package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, jaccardSimilarity("senior engineer", "Senior Engineer"))
	assert.Equal(t, 0.0, jaccardSimilarity("frontend designer", "database administrator"))

	// "software engineer" vs "software developer": one shared of three unique.
	assert.InDelta(t, 1.0/3.0, jaccardSimilarity("software engineer", "software developer"), 1e-9)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity("go services go", "go services go"), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity("alpha beta", "gamma delta"))
	assert.Equal(t, 0.0, cosineSimilarity("", "anything"))
}

func TestTopWords_DeterministicOrder(t *testing.T) {
	text := "kafka kafka redis redis postgres"
	words := topWords(text, 2)
	// Equal counts break ties alphabetically.
	assert.Equal(t, []string{"kafka", "redis"}, words)
}

func TestTopWords_SkipsStopwords(t *testing.T) {
	words := topWords("the team will work with the candidate", 10)
	for _, w := range words {
		assert.False(t, stopwords[w], "stopword %q leaked into top words", w)
	}
}

func TestKeywordDensity(t *testing.T) {
	desc := "golang microservices kafka observability"
	assert.Equal(t, 1.0, keywordDensity(desc, "golang microservices kafka observability and more"))
	assert.Equal(t, 0.0, keywordDensity(desc, "painting sculpture"))
}

func TestBuzzwordOverlap(t *testing.T) {
	desc := "We are a fast-paced, data-driven team"
	assert.Equal(t, 1.0, buzzwordOverlap(desc, "thrive in fast-paced data-driven environments"))
	assert.Equal(t, 0.0, buzzwordOverlap(desc, "quiet methodical work"))
	assert.Equal(t, 0.0, buzzwordOverlap("plain posting", "any resume"))
}

func TestContainsSkill_WordBoundaries(t *testing.T) {
	assert.True(t, containsSkill("we use go in production", "go"))
	assert.False(t, containsSkill("we use google cloud", "go"))
	assert.True(t, containsSkill("experience with node.js required", "node.js"))
	assert.True(t, containsSkill("c++ developers welcome", "c++"))
}
