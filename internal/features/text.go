package features

import (
	"math"
	"sort"
	"strings"
)

// tokenize lowercases text and splits it into word tokens, stripping
// punctuation at token edges. Tokens shorter than 2 runes are dropped.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?()[]{}\"'`/\\|<>*#")
		if len(f) < 2 {
			continue
		}
		out = append(out, f)
	}
	return out
}

// tokenSet returns the unique tokens of a text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokenize(text) {
		set[t] = true
	}
	return set
}

// jaccardSimilarity computes |A∩B| / |A∪B| over token sets.
// Two empty texts are considered identical.
func jaccardSimilarity(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}
	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// cosineSimilarity computes term-frequency cosine similarity between texts.
func cosineSimilarity(a, b string) float64 {
	freqA := termFrequencies(a)
	freqB := termFrequencies(b)
	if len(freqA) == 0 || len(freqB) == 0 {
		return 0.0
	}
	var dot, normA, normB float64
	for t, fa := range freqA {
		normA += fa * fa
		if fb, ok := freqB[t]; ok {
			dot += fa * fb
		}
	}
	for _, fb := range freqB {
		normB += fb * fb
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, t := range tokenize(text) {
		freq[t]++
	}
	return freq
}

// topWords returns the n most frequent non-stopword tokens of a text.
// Ties are broken alphabetically so the result is deterministic.
func topWords(text string, n int) []string {
	freq := make(map[string]int)
	for _, t := range tokenize(text) {
		if stopwords[t] {
			continue
		}
		freq[t]++
	}
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}

// keywordDensity is the fraction of the job description's top-50 words that
// appear anywhere in the resume text.
func keywordDensity(description, resumeText string) float64 {
	top := topWords(description, 50)
	if len(top) == 0 {
		return neutral("keyword_density")
	}
	resumeSet := tokenSet(resumeText)
	hits := 0
	for _, w := range top {
		if resumeSet[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(top))
}

// buzzwordOverlap is the fraction of the fixed buzzword list present in both
// the job description and the resume text.
func buzzwordOverlap(description, resumeText string) float64 {
	descLower := strings.ToLower(description)
	resumeLower := strings.ToLower(resumeText)
	inJob := 0
	shared := 0
	for _, b := range buzzwords {
		if strings.Contains(descLower, b) {
			inJob++
			if strings.Contains(resumeLower, b) {
				shared++
			}
		}
	}
	if inJob == 0 {
		return 0.0
	}
	return float64(shared) / float64(inJob)
}
