package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"sentiment":"positive"}`,
			want:  `{"sentiment":"positive"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"sentiment\":\"positive\"}\n```",
			want:  `{"sentiment":"positive"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"sentiment\":\"positive\"}\n```",
			want:  `{"sentiment":"positive"}`,
		},
		{
			name:  "extracts JSON from prose",
			input: `Sure! Here you go: {"sentiment":"positive"} Hope that helps.`,
			want:  `{"sentiment":"positive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      SentimentJudgement
		defaulted bool
	}{
		{"valid", `{"sentiment":"Positive","confidence":0.9,"reasoning":"upbeat"}`,
			SentimentJudgement{"positive", 0.9, "upbeat"}, false},
		{"confidence clamped", `{"sentiment":"negative","confidence":3}`,
			SentimentJudgement{"negative", 1, ""}, false},
		{"no JSON", "I think it is positive", DefaultSentiment(), true},
		{"bad JSON", `{"sentiment":}`, DefaultSentiment(), true},
		{"unknown label", `{"sentiment":"ecstatic"}`, DefaultSentiment(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSentiment(tt.raw)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.defaulted, got.Defaulted)
			if tt.defaulted {
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	got := ParseCategory("```json\n{\"category\":\"question\",\"confidence\":0.7}\n```")
	assert.False(t, got.Defaulted)
	assert.Equal(t, "question", got.Value.Category)

	bad := ParseCategory(`{"category":"memes"}`)
	assert.True(t, bad.Defaulted)
	assert.Equal(t, DefaultCategory(), bad.Value)
}

func TestParseCritique(t *testing.T) {
	got := ParseCritique(`{"score":14,"strengths":["clear"]}`)
	assert.False(t, got.Defaulted)
	assert.Equal(t, 10, got.Value.Score)
	assert.Equal(t, []string{"clear"}, got.Value.Strengths)
	assert.NotNil(t, got.Value.Weaknesses)

	fallback := ParseCritique("")
	assert.True(t, fallback.Defaulted)
	assert.Equal(t, Critique{
		Score:       5,
		Strengths:   []string{"Content provided"},
		Weaknesses:  []string{"Could not analyze"},
		Suggestions: []string{"Review content manually"},
	}, fallback.Value)
}

func TestNew_NoProvider(t *testing.T) {
	tests := []Config{
		{},
		{Provider: "openai"},
		{Provider: "anthropic", OpenAIKey: "sk-x"},
	}
	for _, cfg := range tests {
		if _, err := New(cfg); err != ErrNoProvider {
			t.Errorf("New(%+v) err = %v, want ErrNoProvider", cfg, err)
		}
	}
	if _, err := New(Config{Provider: "ollama"}); err == nil {
		t.Error("unknown provider should fail")
	}
}
