package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asal3ti/charizard/internal/metrics"
	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/pkg/llm"
	"github.com/asal3ti/charizard/pkg/result"
)

const (
	maxSummaryComments = 30
	reasonNoProvider   = "no AI provider configured"
)

// AIService wraps an optional LLM. Every method degrades to a documented
// default result instead of failing.
type AIService struct {
	client llm.Client
}

// NewAIService returns an AIService. A nil client makes every call return
// its default.
func NewAIService(client llm.Client) *AIService {
	return &AIService{client: client}
}

// Enabled reports whether an LLM provider is configured.
func (s *AIService) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *AIService) generate(ctx context.Context, op, prompt string) (string, error) {
	if !s.Enabled() {
		return "", llm.ErrNoProvider
	}
	out, err := s.client.Generate(ctx, llm.System(), prompt)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("component", "ai-service").Str("operation", op).Msg("llm call failed")
	}
	return out, err
}

func fallback[T any](op string, v T, err error) result.Result[T] {
	metrics.LLMFallbacks.WithLabelValues(op).Inc()
	reason := err.Error()
	if errors.Is(err, llm.ErrNoProvider) {
		reason = reasonNoProvider
	}
	return result.Default(v, reason)
}

func observe[T any](op string, r result.Result[T]) result.Result[T] {
	if r.Defaulted {
		metrics.LLMFallbacks.WithLabelValues(op).Inc()
	}
	return r
}

func (s *AIService) Sentiment(ctx context.Context, text string) result.Result[llm.SentimentJudgement] {
	raw, err := s.generate(ctx, "sentiment", llm.SentimentPrompt(text))
	if err != nil {
		return fallback("sentiment", llm.DefaultSentiment(), err)
	}
	return observe("sentiment", llm.ParseSentiment(raw))
}

func (s *AIService) Category(ctx context.Context, comment string) result.Result[llm.CategoryJudgement] {
	raw, err := s.generate(ctx, "category", llm.CategoryPrompt(comment))
	if err != nil {
		return fallback("category", llm.DefaultCategory(), err)
	}
	return observe("category", llm.ParseCategory(raw))
}

func (s *AIService) Critique(ctx context.Context, content, feedbackType string) result.Result[llm.Critique] {
	raw, err := s.generate(ctx, "critique", llm.CritiquePrompt(content, feedbackType))
	if err != nil {
		return fallback("critique", llm.DefaultCritique(), err)
	}
	return observe("critique", llm.ParseCritique(raw))
}

// text runs a free-text prompt. Failures default to an empty string.
func (s *AIService) text(ctx context.Context, op, prompt string) result.Result[string] {
	raw, err := s.generate(ctx, op, prompt)
	if err != nil {
		return fallback(op, "", err)
	}
	return result.Ok(raw)
}

// Generate produces free-form content of contentType about topic.
func (s *AIService) Generate(ctx context.Context, topic, contentType string) result.Result[string] {
	return s.text(ctx, "generate", llm.GeneratePrompt(topic, contentType))
}

// TranscriptInsights asks for the topics, key points, tone and engagement
// potential of a transcript.
func (s *AIService) TranscriptInsights(ctx context.Context, transcript string) result.Result[string] {
	if strings.TrimSpace(transcript) == "" {
		return result.Default("", "no transcript")
	}
	return s.text(ctx, "transcript", llm.TranscriptPrompt(transcript))
}

// VideoSummary writes a prose summary of a finished video analysis.
func (s *AIService) VideoSummary(ctx context.Context, a model.VideoAnalysis) result.Result[string] {
	return s.text(ctx, "video_summary", llm.GeneratePrompt(analyticsDigest(a), "a comprehensive video analytics summary"))
}

// Content writes contentType from a video analysis, and an image prompt to
// illustrate it. The image prompt is skipped when no content was produced.
func (s *AIService) Content(ctx context.Context, a model.VideoAnalysis, contentType string) (content, image result.Result[string]) {
	digest := analyticsDigest(a)
	content = s.text(ctx, "content", llm.GeneratePrompt(digest, contentType))
	if content.Defaulted {
		return content, result.Default("", "no content generated")
	}
	return content, s.text(ctx, "image_prompt", llm.ImagePrompt(content.Value, digest))
}

// WorkflowSummary sums up what a workflow run produced.
func (s *AIService) WorkflowSummary(ctx context.Context, res WorkflowResult) result.Result[string] {
	var sb strings.Builder
	steps := make([]string, 0, len(res.WorkflowSteps))
	for _, step := range res.WorkflowSteps {
		steps = append(steps, string(step))
	}
	fmt.Fprintf(&sb, "Steps completed: %s\n", strings.Join(steps, ", "))
	if res.Analytics != nil {
		fmt.Fprintf(&sb, "Analytics results: %s\n", orNone(res.Analytics.Summary.Value, "no analytics summary"))
	}
	if res.Content != nil {
		fmt.Fprintf(&sb, "Content generated: %s\n", orNone(res.Content.Content.Value, "no content generated"))
	}
	if res.Critique != nil {
		fmt.Fprintf(&sb, "Critique applied: %s\n", orNone(strings.Join(res.Critique.Value.Suggestions, "; "), "no critique applied"))
	}
	return s.text(ctx, "workflow_summary", llm.GeneratePrompt(sb.String(), "a workflow summary"))
}

func orNone(s, none string) string {
	if strings.TrimSpace(s) == "" {
		return none
	}
	return s
}

// analyticsDigest renders the headline figures of an analysis as prompt
// context.
func analyticsDigest(a model.VideoAnalysis) string {
	var sb strings.Builder
	v := a.Video
	fmt.Fprintf(&sb, "Video: %q by %s\n", v.Title, v.ChannelTitle)
	fmt.Fprintf(&sb, "Views: %d, likes: %d, comments: %d, engagement rate: %.2f%%\n",
		v.ViewCount, v.LikeCount, v.CommentCount, a.Engagement.EngagementRate)

	in := a.CommentInsights
	fmt.Fprintf(&sb, "Comments analyzed: %d (positive %d, negative %d, neutral %d, sarcastic %d)\n",
		in.TotalComments,
		in.SentimentDistribution[model.SentimentPositive],
		in.SentimentDistribution[model.SentimentNegative],
		in.SentimentDistribution[model.SentimentNeutral],
		in.SarcasticCount)
	if len(in.TopKeywords) > 0 {
		words := make([]string, 0, len(in.TopKeywords))
		for _, k := range in.TopKeywords {
			words = append(words, k.Word)
		}
		fmt.Fprintf(&sb, "Top comment keywords: %s\n", strings.Join(words, ", "))
	}
	for _, insight := range in.Insights {
		fmt.Fprintf(&sb, "- %s\n", insight)
	}

	if sp := a.SponsorshipAnalysis; sp.HasSponsorship {
		fmt.Fprintf(&sb, "Sponsorship: %s (%s)\n", sp.Level, strings.Join(sp.DetectedCompanies, ", "))
	} else {
		sb.WriteString("Sponsorship: none detected\n")
	}
	if t := a.TranscriptAnalysis; t != nil {
		fmt.Fprintf(&sb, "Transcript: %d words in %d sentences\n", t.WordCount, t.SentenceCount)
	}
	return sb.String()
}

// CommentSummary summarizes the most liked comments of a video in prose.
func (s *AIService) CommentSummary(ctx context.Context, title string, comments []model.AnalyzedComment) result.Result[string] {
	if len(comments) == 0 {
		return result.Default("", "no comments to summarize")
	}
	texts := make([]string, 0, min(len(comments), maxSummaryComments))
	for _, c := range comments[:min(len(comments), maxSummaryComments)] {
		texts = append(texts, c.Text)
	}
	return s.text(ctx, "comment_summary", llm.CommentSummaryPrompt(title, texts))
}
