package render

import (
	"math"

	"job-dash/internal/domain"
)

// Tag is one word of a tag cloud with its font size in pixels.
type Tag struct {
	Text string
	Size int
}

const (
	minFontSize = 12
	maxFontSize = 56
)

// TagCloud scales word frequencies to font sizes. Size grows with the square
// root of the count relative to the most frequent word.
func TagCloud(words []domain.Count) []Tag {
	if len(words) == 0 {
		return nil
	}
	top := 0
	for _, w := range words {
		top = max(top, w.Count)
	}

	tags := make([]Tag, len(words))
	for i, w := range words {
		scale := 0.0
		if top > 0 {
			scale = math.Sqrt(float64(w.Count) / float64(top))
		}
		tags[i] = Tag{Text: w.Label, Size: minFontSize + int(math.Round(scale*(maxFontSize-minFontSize)))}
	}
	return tags
}
