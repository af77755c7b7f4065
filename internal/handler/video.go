package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/service"
	"github.com/asal3ti/charizard/internal/youtube"
)

type VideoHandler struct {
	svc     *service.VideoService
	compare *service.CompareService
	ai      *service.AIService
}

func NewVideoHandler(svc *service.VideoService, compare *service.CompareService, ai *service.AIService) *VideoHandler {
	return &VideoHandler{svc: svc, compare: compare, ai: ai}
}

func videoParam(c fiber.Ctx) (string, string) {
	return middleware.ValidateVideoID(c.Params("videoId"))
}

// Analyze handles GET /api/videos/:videoId
func (h *VideoHandler) Analyze(c fiber.Ctx) error {
	videoID, errMsg := videoParam(c)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	a, err := h.svc.Analyze(c.Context(), videoID)
	if err != nil {
		return writeError(c, "Video", err)
	}
	return c.JSON(a)
}

// Comments handles GET /api/videos/:videoId/comments?summary=true
func (h *VideoHandler) Comments(c fiber.Ctx) error {
	videoID, errMsg := videoParam(c)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	resp, err := h.svc.Comments(c.Context(), videoID)
	if err != nil {
		return writeError(c, "Video", err)
	}
	if fiber.Query[bool](c, "summary") {
		r := h.ai.CommentSummary(c.Context(), "", resp.Comments)
		resp.AISummary = &model.AISummary{Summary: r.Value, Defaulted: r.Defaulted, Reason: r.Reason}
	}
	return c.JSON(resp)
}

// Sponsorship handles GET /api/videos/:videoId/sponsorship
func (h *VideoHandler) Sponsorship(c fiber.Ctx) error {
	videoID, errMsg := videoParam(c)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	resp, err := h.svc.Sponsorship(c.Context(), videoID)
	if err != nil {
		return writeError(c, "Video", err)
	}
	return c.JSON(resp)
}

// Similar handles GET /api/videos/:videoId/similar?max=5
func (h *VideoHandler) Similar(c fiber.Ctx) error {
	videoID, errMsg := videoParam(c)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	max, errMsg := middleware.ParseLimit(c.Query("max"), service.DefaultSimilarVideos, service.MaxSimilarVideos)
	if errMsg != "" {
		return invalidParam(c, "max "+errMsg)
	}
	resp, err := h.compare.Similar(c.Context(), videoID, max)
	if err != nil {
		return writeError(c, "Video", err)
	}
	return c.JSON(resp)
}

// TechnicalInsights handles GET /api/videos/:videoId/technical-insights?max=5
func (h *VideoHandler) TechnicalInsights(c fiber.Ctx) error {
	videoID, errMsg := videoParam(c)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	max, errMsg := middleware.ParseLimit(c.Query("max"), service.DefaultSimilarVideos, service.MaxSimilarVideos)
	if errMsg != "" {
		return invalidParam(c, "max "+errMsg)
	}
	resp, err := h.compare.TechnicalInsights(c.Context(), videoID, max)
	if err != nil {
		return writeError(c, "Video", err)
	}
	return c.JSON(resp)
}

// History handles GET /api/videos/:videoId/history?limit=10
func (h *VideoHandler) History(c fiber.Ctx) error {
	videoID, errMsg := videoParam(c)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	limit, errMsg := middleware.ParseLimit(c.Query("limit"), repository.DefaultHistoryLimit, repository.MaxHistoryLimit)
	if errMsg != "" {
		return invalidParam(c, "limit "+errMsg)
	}
	hist, err := h.svc.History(c.Context(), videoID, limit)
	if err != nil {
		return writeError(c, "Video history", err)
	}
	return c.JSON(hist)
}

// ExtractID handles POST /api/videos/extract-id
func (h *VideoHandler) ExtractID(c fiber.Ctx) error {
	var req model.ExtractIDRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	if req.URL == "" {
		return invalidParam(c, "video_url is required")
	}
	videoID, errMsg := middleware.ValidateVideoID(youtube.ExtractVideoID(req.URL))
	if errMsg != "" {
		return invalidParam(c, "Invalid YouTube URL")
	}
	return c.JSON(fiber.Map{"video_id": videoID})
}
