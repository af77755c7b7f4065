package analysis

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/asal3ti/charizard/internal/model"
)

// Compound score cutoffs for the positive and negative buckets.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// SentimentAnalyzer scores text with a VADER lexicon. The analyzer only reads
// its lexicon after construction, so one instance is shared by all workers.
type SentimentAnalyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the VADER compound polarity of text in [-1, 1].
func (a *SentimentAnalyzer) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return a.vader.PolarityScores(text).Compound
}

// Classify maps text to positive, negative or neutral. Empty text is neutral.
func (a *SentimentAnalyzer) Classify(text string) model.Sentiment {
	return SentimentFromCompound(a.Compound(text))
}

// SentimentFromCompound buckets a compound score.
func SentimentFromCompound(compound float64) model.Sentiment {
	switch {
	case compound >= PositiveThreshold:
		return model.SentimentPositive
	case compound <= NegativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
