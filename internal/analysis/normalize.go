package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/RadhiFadlillah/whatlanggo"
)

const (
	englishConfidence    = 0.5
	englishASCIIRatio    = 0.7
	undetectedASCIIRatio = 0.8
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Normalize trims surrounding whitespace and lower-cases text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize returns the lower-cased word tokens of text.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// ASCIIRatio returns the fraction of runes in text that are ASCII.
func ASCIIRatio(text string) float64 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	ascii := 0
	for _, r := range text {
		if r < utf8.RuneSelf {
			ascii++
		}
	}
	return float64(ascii) / float64(n)
}

// IsEnglish reports whether text is English: the detector labels it English
// with enough confidence, or most of its runes are ASCII. Short or
// emoji-heavy comments are routinely mislabelled by the detector, and the
// ASCII share catches them. When the detector cannot decide at all, the ASCII
// share alone decides with a stricter cutoff.
func IsEnglish(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return englishVerdict(whatlanggo.Detect(text), ASCIIRatio(text))
}

func englishVerdict(info whatlanggo.Info, ratio float64) bool {
	if info.Confidence == 0 {
		return ratio > undetectedASCIIRatio
	}
	return (info.Lang == whatlanggo.Eng && info.Confidence > englishConfidence) || ratio > englishASCIIRatio
}
