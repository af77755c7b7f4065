package analysis

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"

	"github.com/asal3ti/charizard/internal/model"
)

// Sarcasm signal weights and decision cutoffs.
const (
	weightNegativeContext = 2
	weightIndicator       = 2
	weightEmoji           = 1
	weightCaps            = 1
	weightQuotes          = 1

	sarcasmThreshold        = 3
	sarcasmPositiveCompound = 0.4
)

var capsWordRe = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// SarcasmLexicon holds the keyword and emoji lists the detector matches.
// Matching is case-insensitive substring containment.
type SarcasmLexicon struct {
	NegativeContext []string
	Indicators      []string
	Emojis          []string
}

// DefaultSarcasmLexicon returns the built-in lists.
func DefaultSarcasmLexicon() SarcasmLexicon {
	return SarcasmLexicon{
		NegativeContext: []string{
			"clickbait", "waste of time", "fake", "scam", "slow", "unwatchable",
			"ads", "noise", "laggy", "again", "great job", "thanks a lot",
			"as always", "fell off", "boring", "skip", "trash", "garbage",
		},
		Indicators: []string{
			"sure", "totally", "wow", "thanks a lot", "great job", "genius",
			"lmao", "lol", "yeah right", "can't wait", "so helpful",
			"this aged well", "obviously", "clearly", "of course", "naturally",
		},
		Emojis: []string{"🙄", "😒", "🤡", "😂", "🤣", "😑", "😏", "😤"},
	}
}

// SarcasmSignals records which cues fired for a piece of text.
type SarcasmSignals struct {
	NegativeContext bool    `json:"negative_context"`
	Indicator       bool    `json:"indicator"`
	Emoji           bool    `json:"emoji"`
	Caps            bool    `json:"caps"`
	Quotes          bool    `json:"quotes"`
	Compound        float64 `json:"compound"`
}

// SarcasmResult is the verdict together with its weighted score.
type SarcasmResult struct {
	Label   model.Sarcasm  `json:"label"`
	Score   int            `json:"score"`
	Signals SarcasmSignals `json:"signals"`
}

// SarcasmDetector combines lexical cues with sentiment polarity.
type SarcasmDetector struct {
	lexicon   SarcasmLexicon
	sentiment *SentimentAnalyzer
	emojiSet  map[string]struct{}
}

func NewSarcasmDetector(lexicon SarcasmLexicon, sentiment *SentimentAnalyzer) *SarcasmDetector {
	set := make(map[string]struct{}, len(lexicon.Emojis))
	for _, e := range lexicon.Emojis {
		set[e] = struct{}{}
	}
	return &SarcasmDetector{lexicon: lexicon, sentiment: sentiment, emojiSet: set}
}

// Detect scores text for sarcasm. Positive-sounding text that also carries a
// negative-context or indicator keyword is sarcastic regardless of the total.
func (d *SarcasmDetector) Detect(text string) SarcasmResult {
	if strings.TrimSpace(text) == "" {
		return SarcasmResult{Label: model.NotSarcastic}
	}

	lower := strings.ToLower(text)
	sig := SarcasmSignals{
		NegativeContext: containsAny(lower, d.lexicon.NegativeContext),
		Indicator:       containsAny(lower, d.lexicon.Indicators),
		Emoji:           d.hasSarcasmEmoji(text),
		Caps:            capsWordRe.MatchString(text),
		Quotes:          strings.ContainsAny(text, `"'`),
		Compound:        d.sentiment.Compound(lower),
	}

	score := 0
	if sig.NegativeContext {
		score += weightNegativeContext
	}
	if sig.Indicator {
		score += weightIndicator
	}
	if sig.Emoji {
		score += weightEmoji
	}
	if sig.Caps {
		score += weightCaps
	}
	if sig.Quotes {
		score += weightQuotes
	}

	label := model.NotSarcastic
	if score >= sarcasmThreshold ||
		(sig.Compound > sarcasmPositiveCompound && (sig.NegativeContext || sig.Indicator)) {
		label = model.Sarcastic
	}

	return SarcasmResult{Label: label, Score: score, Signals: sig}
}

func (d *SarcasmDetector) hasSarcasmEmoji(text string) bool {
	for _, e := range gomoji.FindAll(text) {
		if _, ok := d.emojiSet[e.Character]; ok {
			return true
		}
	}
	// gomoji's table can lag behind newer emoji; fall back to literal matching.
	return containsAny(text, d.lexicon.Emojis)
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
