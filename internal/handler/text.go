package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
)

type TextHandler struct {
	engine *analysis.Engine
}

func NewTextHandler(engine *analysis.Engine) *TextHandler {
	return &TextHandler{engine: engine}
}

// Analyze handles POST /api/analyze/text
func (h *TextHandler) Analyze(c fiber.Ctx) error {
	var req model.TextRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	text, errMsg := middleware.ValidateText(req.Text)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	return c.JSON(h.engine.AnalyzeText(text))
}
