package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asal3ti/charizard/pkg/result"
)

const unparsable = "Could not parse AI response"

// SentimentJudgement is an LLM's sentiment verdict for a piece of text.
type SentimentJudgement struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// CategoryJudgement is an LLM's category verdict for a comment.
type CategoryJudgement struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Critique is an LLM's review of a piece of content.
type Critique struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

func DefaultSentiment() SentimentJudgement {
	return SentimentJudgement{Sentiment: "neutral", Confidence: 0.5, Reasoning: unparsable}
}

func DefaultCategory() CategoryJudgement {
	return CategoryJudgement{Category: "other", Confidence: 0.5, Reasoning: unparsable}
}

func DefaultCritique() Critique {
	return Critique{
		Score:       5,
		Strengths:   []string{"Content provided"},
		Weaknesses:  []string{"Could not analyze"},
		Suggestions: []string{"Review content manually"},
	}
}

var sentiments = map[string]bool{"positive": true, "negative": true, "neutral": true}

var categories = map[string]bool{
	"question": true, "feedback": true, "spam": true, "praise": true,
	"criticism": true, "suggestion": true, "other": true,
}

func ParseSentiment(raw string) result.Result[SentimentJudgement] {
	var out SentimentJudgement
	if err := decode(raw, &out); err != nil {
		return result.Default(DefaultSentiment(), err.Error())
	}
	out.Sentiment = strings.ToLower(strings.TrimSpace(out.Sentiment))
	if !sentiments[out.Sentiment] {
		return result.Default(DefaultSentiment(), fmt.Sprintf("unknown sentiment %q", out.Sentiment))
	}
	out.Confidence = clamp01(out.Confidence)
	return result.Ok(out)
}

func ParseCategory(raw string) result.Result[CategoryJudgement] {
	var out CategoryJudgement
	if err := decode(raw, &out); err != nil {
		return result.Default(DefaultCategory(), err.Error())
	}
	out.Category = strings.ToLower(strings.TrimSpace(out.Category))
	if !categories[out.Category] {
		return result.Default(DefaultCategory(), fmt.Sprintf("unknown category %q", out.Category))
	}
	out.Confidence = clamp01(out.Confidence)
	return result.Ok(out)
}

func ParseCritique(raw string) result.Result[Critique] {
	var out Critique
	if err := decode(raw, &out); err != nil {
		return result.Default(DefaultCritique(), err.Error())
	}
	out.Score = min(max(out.Score, 1), 10)
	if out.Strengths == nil {
		out.Strengths = []string{}
	}
	if out.Weaknesses == nil {
		out.Weaknesses = []string{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	return result.Ok(out)
}

func decode(raw string, v any) error {
	content := cleanJSONResponse(raw)
	if !strings.HasPrefix(content, "{") {
		return fmt.Errorf("%s", unparsable)
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
