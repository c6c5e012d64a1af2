package readability

import (
	"math"
	"strings"
)

// Score computes the average sentence length in words: the text is split on
// literal periods, segments are trimmed and empty ones discarded, and the
// whitespace-separated word counts of the remaining segments are averaged.
// It is a crude proxy for text complexity, not a linguistic measure.
//
// A text with zero usable sentences yields NaN; callers must tolerate it.
func Score(text string) float64 {
	totalWords := 0
	sentences := 0
	for _, seg := range strings.Split(text, ".") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		totalWords += len(strings.Fields(seg))
		sentences++
	}
	if sentences == 0 {
		return math.NaN()
	}
	return float64(totalWords) / float64(sentences)
}
