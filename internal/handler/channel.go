package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// Analyze handles GET /api/channels/:channelId
func (h *ChannelHandler) Analyze(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}

	a, err := h.svc.Analyze(c.Context(), channelID)
	if err != nil {
		return writeError(c, "Channel", err)
	}
	return c.JSON(a)
}

// History handles GET /api/channels/:channelId/history?limit=10
func (h *ChannelHandler) History(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	limit, errMsg := middleware.ParseLimit(c.Query("limit"), repository.DefaultHistoryLimit, repository.MaxHistoryLimit)
	if errMsg != "" {
		return invalidParam(c, "limit "+errMsg)
	}

	hist, err := h.svc.History(c.Context(), channelID, limit)
	if err != nil {
		return writeError(c, "Channel history", err)
	}
	return c.JSON(fiber.Map{"channel_id": channelID, "snapshots": hist})
}

// Compare handles POST /api/channels/compare
func (h *ChannelHandler) Compare(c fiber.Ctx) error {
	var req model.CompareChannelsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	ids, errMsg := middleware.ValidateChannelIDs(req.ChannelIDs)
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}

	resp, err := h.svc.Compare(c.Context(), ids)
	if err != nil {
		return writeError(c, "Channel comparison", err)
	}
	return c.JSON(resp)
}
