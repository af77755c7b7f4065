package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/pkg/llm"
	"github.com/asal3ti/charizard/pkg/result"
)

// WorkflowStep names one stage of an AI workflow.
type WorkflowStep string

const (
	StepAnalytics WorkflowStep = "analytics"
	StepContent   WorkflowStep = "content"
	StepCritique  WorkflowStep = "critique"
)

// DefaultContentType is generated when a workflow names none.
const DefaultContentType = "social_post"

// workflowOrder is the fixed run order. Each step consumes the previous one.
var workflowOrder = []WorkflowStep{StepAnalytics, StepContent, StepCritique}

// WorkflowAnalytics is the analytics step: the heuristic analysis plus the
// model's reading of the transcript and of the analysis as a whole.
type WorkflowAnalytics struct {
	Analysis           model.VideoAnalysis   `json:"analysis"`
	TranscriptInsights result.Result[string] `json:"transcript_insights"`
	Summary            result.Result[string] `json:"summary"`
}

// GeneratedContent is the content step.
type GeneratedContent struct {
	ContentType string                `json:"content_type"`
	Content     result.Result[string] `json:"content"`
	ImagePrompt result.Result[string] `json:"image_prompt"`
}

// WorkflowResult is the API response for an AI workflow run.
type WorkflowResult struct {
	VideoID       string                       `json:"video_id"`
	WorkflowSteps []WorkflowStep               `json:"workflow_steps"`
	Analytics     *WorkflowAnalytics           `json:"analytics,omitempty"`
	Content       *GeneratedContent            `json:"content,omitempty"`
	Critique      *result.Result[llm.Critique] `json:"critique,omitempty"`
	Summary       result.Result[string]        `json:"summary"`
}

// ParseWorkflowSteps validates requested step names. No names means the
// full workflow.
func ParseWorkflowSteps(raw []string) ([]WorkflowStep, error) {
	steps := make([]WorkflowStep, 0, len(raw))
	for _, r := range raw {
		step := WorkflowStep(strings.ToLower(strings.TrimSpace(r)))
		if !slices.Contains(workflowOrder, step) {
			return nil, fmt.Errorf("%w: unknown step %q", ErrInvalidWorkflow, r)
		}
		steps = append(steps, step)
	}
	return normalizeSteps(steps), nil
}

// normalizeSteps returns steps in run order with their prerequisites added:
// content needs analytics, critique needs content. Empty input means every
// step.
func normalizeSteps(steps []WorkflowStep) []WorkflowStep {
	if len(steps) == 0 {
		return slices.Clone(workflowOrder)
	}
	last := 0
	for _, step := range steps {
		last = max(last, slices.Index(workflowOrder, step))
	}
	return slices.Clone(workflowOrder[:last+1])
}

// WorkflowService chains video analysis, content generation and critique.
type WorkflowService struct {
	video *VideoService
	ai    *AIService
}

func NewWorkflowService(video *VideoService, ai *AIService) *WorkflowService {
	return &WorkflowService{video: video, ai: ai}
}

// Run executes steps for videoID, adding any prerequisite steps. Only the
// video analysis can fail the run; every model-backed part degrades to its
// default result.
func (s *WorkflowService) Run(ctx context.Context, videoID string, steps []WorkflowStep, contentType string) (WorkflowResult, error) {
	if contentType == "" {
		contentType = DefaultContentType
	}
	steps = normalizeSteps(steps)
	res := WorkflowResult{VideoID: videoID, WorkflowSteps: steps}

	for _, step := range steps {
		switch step {
		case StepAnalytics:
			run, err := s.video.run(ctx, videoID)
			if err != nil {
				return WorkflowResult{}, err
			}
			res.Analytics = &WorkflowAnalytics{
				Analysis:           run.analysis,
				TranscriptInsights: s.ai.TranscriptInsights(ctx, run.transcript),
				Summary:            s.ai.VideoSummary(ctx, run.analysis),
			}
		case StepContent:
			content, image := s.ai.Content(ctx, res.Analytics.Analysis, contentType)
			res.Content = &GeneratedContent{ContentType: contentType, Content: content, ImagePrompt: image}
		case StepCritique:
			c := result.Default(llm.DefaultCritique(), "no content to critique")
			if !res.Content.Content.Defaulted {
				c = s.ai.Critique(ctx, res.Content.Content.Value, contentType)
			}
			res.Critique = &c
		}
	}

	res.Summary = s.ai.WorkflowSummary(ctx, res)
	return res, nil
}
