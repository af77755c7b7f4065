package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/service"
)

const defaultFeedbackType = "general"

// AIHandler exposes the LLM collaborator. Every endpoint answers 200 with a
// result whose "defaulted" flag is set when the model could not be used.
type AIHandler struct {
	svc      *service.AIService
	workflow *service.WorkflowService
}

func NewAIHandler(svc *service.AIService, workflow *service.WorkflowService) *AIHandler {
	return &AIHandler{svc: svc, workflow: workflow}
}

// withText binds and validates a {"text": ...} body and answers with run's result.
func withText(c fiber.Ctx, run func(ctx context.Context, text string) any) error {
	var req model.TextRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	text, errMsg := middleware.ValidateText(req.Text)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	return c.JSON(run(c.Context(), text))
}

// Sentiment handles POST /api/ai/sentiment
func (h *AIHandler) Sentiment(c fiber.Ctx) error {
	return withText(c, func(ctx context.Context, text string) any {
		return h.svc.Sentiment(ctx, text)
	})
}

// Category handles POST /api/ai/category
func (h *AIHandler) Category(c fiber.Ctx) error {
	return withText(c, func(ctx context.Context, text string) any {
		return h.svc.Category(ctx, text)
	})
}

// Critique handles POST /api/ai/critique
func (h *AIHandler) Critique(c fiber.Ctx) error {
	var req model.CritiqueRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	content, errMsg := middleware.ValidateText(req.Content)
	if errMsg != "" {
		return invalidParam(c, "content: "+errMsg)
	}
	if req.FeedbackType == "" {
		req.FeedbackType = defaultFeedbackType
	}
	return c.JSON(h.svc.Critique(c.Context(), content, req.FeedbackType))
}

// Generate handles POST /api/ai/generate
func (h *AIHandler) Generate(c fiber.Ctx) error {
	var req model.GenerateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	topic, errMsg := middleware.ValidateText(req.Context)
	if errMsg != "" {
		return invalidParam(c, "context: "+errMsg)
	}
	if req.ContentType == "" {
		req.ContentType = service.DefaultContentType
	}
	return c.JSON(h.svc.Generate(c.Context(), topic, req.ContentType))
}

// Workflow handles POST /api/ai/workflow. It answers 200 whenever the video
// analysis succeeds; model-backed parts carry their own "defaulted" flag.
func (h *AIHandler) Workflow(c fiber.Ctx) error {
	var req model.WorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	steps, err := service.ParseWorkflowSteps(req.WorkflowSteps)
	if err != nil {
		return invalidParam(c, err.Error())
	}

	res, err := h.workflow.Run(c.Context(), videoID, steps, req.ContentType)
	if err != nil {
		return writeError(c, "Video", err)
	}
	return c.JSON(res)
}
