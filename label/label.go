// Package label cleans comment text and derives descriptive labels:
// language, sentiment, and nature-alignment.
package label

import (
	"github.com/jonreiter/govader"
)

// Labeler bundles the labeling collaborators. The sentiment analyzer loads
// its lexicon at construction time, so callers should build one Labeler and
// reuse it; there is no package-level shared instance.
type Labeler struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewLabeler constructs a Labeler with a fresh sentiment analyzer.
func NewLabeler() *Labeler {
	return &Labeler{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// SentimentScore returns the VADER compound polarity in [-1, 1].
func (l *Labeler) SentimentScore(text string) float64 {
	return l.analyzer.PolarityScores(text).Compound
}

// Sentiment label thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// SentimentLabel maps a compound score to Positive, Negative, or Neutral.
func SentimentLabel(score float64) string {
	switch {
	case score >= positiveThreshold:
		return "Positive"
	case score <= negativeThreshold:
		return "Negative"
	default:
		return "Neutral"
	}
}
