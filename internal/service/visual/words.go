package visual

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"job-dash/internal/domain"
)

// stopWords are dropped from word frequencies.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again against all am an and any are as at be
		because been before being below between both but by can could did do does doing down during
		each etc few for from further had has have having he her here hers him his how i if in into is
		it its itself just me more most my no nor not of off on once only or other our ours out over
		own same she should so some such than that the their them then there these they this those
		through to too under until up very was we were what when where which while who whom why will
		with would you your`) {
		stopWords[w] = struct{}{}
	}
}

// WordFrequencies splits texts into words and counts them, most frequent
// first with ties in order of first appearance. Words are compared without
// case and reported in the form first seen. Single characters, numbers, and
// stop words are skipped. At most limit words are returned when limit > 0.
func WordFrequencies(texts []string, limit int) []domain.Count {
	lower := cases.Lower(language.Und)
	index := make(map[string]int)
	var counts []domain.Count
	for _, text := range texts {
		for _, word := range splitWords(text) {
			key := lower.String(word)
			if _, stop := stopWords[key]; stop {
				continue
			}
			i, ok := index[key]
			if !ok {
				i = len(counts)
				index[key] = i
				counts = append(counts, domain.Count{Label: word})
			}
			counts[i].Count++
		}
	}

	slices.SortStableFunc(counts, func(a, b domain.Count) int { return cmp.Compare(b.Count, a.Count) })
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '+' && r != '#'
	})
	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		f = strings.TrimSuffix(f, "'s")
		if len([]rune(f)) < 2 || isNumber(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
