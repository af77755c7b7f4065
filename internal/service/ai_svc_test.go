package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/pkg/llm"
)

type stubLLM struct {
	reply   string
	err     error
	prompt  string
	prompts []string
}

func (s *stubLLM) Generate(_ context.Context, _, prompt string) (string, error) {
	s.prompt = prompt
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func (s *stubLLM) Model() string { return "stub" }

func TestAIService_NoProvider(t *testing.T) {
	svc := NewAIService(nil)
	ctx := context.Background()

	if svc.Enabled() {
		t.Fatal("Enabled() = true without a client")
	}

	s := svc.Sentiment(ctx, "great video")
	assert.True(t, s.Defaulted)
	assert.Equal(t, reasonNoProvider, s.Reason)
	assert.Equal(t, llm.DefaultSentiment(), s.Value)

	c := svc.Critique(ctx, "my script", "general")
	assert.True(t, c.Defaulted)
	assert.Equal(t, 5, c.Value.Score)

	g := svc.Generate(ctx, "golang generics", "video title")
	assert.True(t, g.Defaulted)
	assert.Empty(t, g.Value)
}

func TestAIService_Sentiment(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		err         error
		want        string
		wantDefault bool
	}{
		{"fenced json", "```json\n{\"sentiment\":\"Positive\",\"confidence\":0.9,\"reasoning\":\"praise\"}\n```", nil, "positive", false},
		{"unknown label", `{"sentiment":"ecstatic","confidence":0.9}`, nil, "neutral", true},
		{"prose", "I think it is positive", nil, "neutral", true},
		{"provider error", "", errors.New("rate limited"), "neutral", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAIService(&stubLLM{reply: tt.reply, err: tt.err})
			r := svc.Sentiment(context.Background(), "love it")
			assert.Equal(t, tt.want, r.Value.Sentiment)
			assert.Equal(t, tt.wantDefault, r.Defaulted)
		})
	}
}

func TestAIService_Category(t *testing.T) {
	svc := NewAIService(&stubLLM{reply: `{"category":"question","confidence":1.7,"reasoning":"asks"}`})
	r := svc.Category(context.Background(), "how?")
	assert.False(t, r.Defaulted)
	assert.Equal(t, "question", r.Value.Category)
	assert.Equal(t, 1.0, r.Value.Confidence, "confidence clamped")
}

func TestAIService_CommentSummary(t *testing.T) {
	stub := &stubLLM{reply: "Viewers loved the pacing."}
	svc := NewAIService(stub)

	empty := svc.CommentSummary(context.Background(), "Title", nil)
	assert.True(t, empty.Defaulted)

	comments := make([]model.AnalyzedComment, 40)
	for i := range comments {
		comments[i].Text = "comment text"
	}
	r := svc.CommentSummary(context.Background(), "Go tips", comments)
	assert.False(t, r.Defaulted)
	assert.Equal(t, "Viewers loved the pacing.", r.Value)
	assert.Equal(t, maxSummaryComments, strings.Count(stub.prompt, "comment text"))
	assert.Contains(t, stub.prompt, `"Go tips"`)
}

func TestAIService_TranscriptInsights(t *testing.T) {
	stub := &stubLLM{reply: "Covers channels and select."}
	svc := NewAIService(stub)

	empty := svc.TranscriptInsights(context.Background(), "  ")
	assert.True(t, empty.Defaulted)
	assert.Empty(t, stub.prompts, "no model call without a transcript")

	long := strings.Repeat("goroutines ", 400)
	r := svc.TranscriptInsights(context.Background(), long)
	assert.False(t, r.Defaulted)
	assert.Contains(t, stub.prompt, "Main topics discussed")
	assert.Less(t, strings.Count(stub.prompt, "goroutines"), 400, "transcript is truncated")
}

func TestAIService_Content(t *testing.T) {
	a := model.VideoAnalysis{Video: sampleVideo("abcdefghijk", "UCgo", 1000, 50, 10)}

	stub := &stubLLM{reply: "Ship it! #golang"}
	content, image := NewAIService(stub).Content(context.Background(), a, "tweet")
	assert.Equal(t, "Ship it! #golang", content.Value)
	assert.False(t, image.Defaulted)
	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[0], "tweet")
	assert.Contains(t, stub.prompts[0], "Learn Go concurrency in 20 minutes")
	assert.Contains(t, stub.prompts[1], "Ship it! #golang")

	content, image = NewAIService(nil).Content(context.Background(), a, "tweet")
	assert.True(t, content.Defaulted)
	assert.True(t, image.Defaulted)
	assert.Equal(t, "no content generated", image.Reason)
}

func TestAnalyticsDigest(t *testing.T) {
	a := model.VideoAnalysis{
		Video:      sampleVideo("abcdefghijk", "UCgo", 1000, 50, 10),
		Engagement: model.EngagementMetrics{EngagementRate: 6},
		CommentInsights: model.CommentInsights{
			TotalComments:         3,
			SentimentDistribution: map[model.Sentiment]int{model.SentimentPositive: 2, model.SentimentNegative: 1},
			TopKeywords:           []model.KeywordCount{{Word: "channels", Count: 2}},
		},
		TranscriptAnalysis: &model.TranscriptAnalysis{WordCount: 120, SentenceCount: 8},
	}
	got := analyticsDigest(a)
	for _, want := range []string{
		`"Learn Go concurrency in 20 minutes" by Gopher Academy`,
		"engagement rate: 6.00%",
		"positive 2, negative 1, neutral 0",
		"Top comment keywords: channels",
		"Sponsorship: none detected",
		"Transcript: 120 words in 8 sentences",
	} {
		assert.Contains(t, got, want)
	}
}
