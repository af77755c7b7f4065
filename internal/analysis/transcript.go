package analysis

import (
	"regexp"
	"strings"

	"github.com/asal3ti/charizard/internal/model"
)

// TranscriptPreviewLen is the number of runes kept in a transcript preview.
const TranscriptPreviewLen = 500

// sentenceRe matches a run of text up to and including its terminal
// punctuation. Auto-generated captions often have none, in which case the
// whole transcript is one sentence.
var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

// TranscriptStats computes word and sentence counts and a short preview of a
// transcript. An empty transcript yields the zero value.
func TranscriptStats(transcript string) model.TranscriptAnalysis {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return model.TranscriptAnalysis{}
	}

	words := len(strings.Fields(transcript))
	sentences := 0
	for _, s := range sentenceRe.FindAllString(transcript, -1) {
		if wordRe.MatchString(s) {
			sentences++
		}
	}

	out := model.TranscriptAnalysis{
		WordCount:     words,
		SentenceCount: sentences,
		Preview:       preview(transcript, TranscriptPreviewLen),
	}
	if sentences > 0 {
		out.AvgSentenceLength = Round(float64(words)/float64(sentences), 2)
	}
	return out
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
