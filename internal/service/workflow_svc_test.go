package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/llm"
)

func TestParseWorkflowSteps(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []WorkflowStep
		wantErr bool
	}{
		{"default is full workflow", nil, []WorkflowStep{StepAnalytics, StepContent, StepCritique}, false},
		{"analytics only", []string{"analytics"}, []WorkflowStep{StepAnalytics}, false},
		{"content pulls in analytics", []string{"content"}, []WorkflowStep{StepAnalytics, StepContent}, false},
		{"order is fixed", []string{"critique", "analytics"}, []WorkflowStep{StepAnalytics, StepContent, StepCritique}, false},
		{"case and spaces", []string{" Content "}, []WorkflowStep{StepAnalytics, StepContent}, false},
		{"unknown step", []string{"analytics", "publish"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkflowSteps(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func workflowFixture() *fakeYouTube {
	yt := newFakeYouTube()
	yt.videos["abcdefghijk"] = sampleVideo("abcdefghijk", "UCgo", 1000, 50, 10)
	yt.transcripts["abcdefghijk"] = "Today we cover channels. Then we cover select."
	return yt
}

func TestWorkflowService_Run(t *testing.T) {
	yt := workflowFixture()
	reply := `{"score":8,"strengths":["clear"],"weaknesses":[],"suggestions":["shorter intro"]}`
	stub := &stubLLM{reply: reply}
	svc := NewWorkflowService(NewVideoService(yt, analysis.NewEngine(1), nil, Options{}), NewAIService(stub))

	res, err := svc.Run(context.Background(), "abcdefghijk", nil, "")
	require.NoError(t, err)

	assert.Equal(t, []WorkflowStep{StepAnalytics, StepContent, StepCritique}, res.WorkflowSteps)
	require.NotNil(t, res.Analytics)
	assert.Equal(t, "abcdefghijk", res.Analytics.Analysis.Video.VideoID)
	assert.Equal(t, 8, res.Analytics.Analysis.TranscriptAnalysis.WordCount)
	assert.False(t, res.Analytics.TranscriptInsights.Defaulted)
	assert.False(t, res.Analytics.Summary.Defaulted)

	require.NotNil(t, res.Content)
	assert.Equal(t, DefaultContentType, res.Content.ContentType)
	assert.Equal(t, reply, res.Content.Content.Value)
	assert.False(t, res.Content.ImagePrompt.Defaulted)

	require.NotNil(t, res.Critique)
	assert.Equal(t, 8, res.Critique.Value.Score)
	assert.False(t, res.Summary.Defaulted)

	// transcript insights, video summary, content, image prompt, critique, workflow summary
	assert.Len(t, stub.prompts, 6)
	assert.Contains(t, stub.prompts[5], "shorter intro")
	assert.Equal(t, 1, yt.count("transcript"), "transcript fetched once per run")
}

func TestWorkflowService_RunAnalyticsOnly(t *testing.T) {
	stub := &stubLLM{reply: "summary"}
	svc := NewWorkflowService(NewVideoService(workflowFixture(), analysis.NewEngine(1), nil, Options{}), NewAIService(stub))

	res, err := svc.Run(context.Background(), "abcdefghijk", []WorkflowStep{StepAnalytics}, "")
	require.NoError(t, err)
	assert.NotNil(t, res.Analytics)
	assert.Nil(t, res.Content)
	assert.Nil(t, res.Critique)
	assert.Len(t, stub.prompts, 3)
}

func TestWorkflowService_RunWithoutProvider(t *testing.T) {
	svc := NewWorkflowService(NewVideoService(workflowFixture(), analysis.NewEngine(1), nil, Options{}), NewAIService(nil))

	res, err := svc.Run(context.Background(), "abcdefghijk", nil, "tweet")
	require.NoError(t, err)

	assert.True(t, res.Analytics.Summary.Defaulted)
	assert.Equal(t, "tweet", res.Content.ContentType)
	assert.True(t, res.Content.Content.Defaulted)
	assert.True(t, res.Critique.Defaulted)
	assert.Equal(t, "no content to critique", res.Critique.Reason)
	assert.Equal(t, llm.DefaultCritique(), res.Critique.Value)
	assert.True(t, res.Summary.Defaulted)
}

func TestWorkflowService_RunVideoNotFound(t *testing.T) {
	svc := NewWorkflowService(NewVideoService(newFakeYouTube(), analysis.NewEngine(1), nil, Options{}), NewAIService(nil))
	_, err := svc.Run(context.Background(), "missingvid1", nil, "")
	assert.ErrorIs(t, err, youtube.ErrNotFound)
}
