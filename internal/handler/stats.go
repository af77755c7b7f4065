package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/service"
)

type StatsHandler struct {
	store repository.Store
}

// NewStatsHandler serves aggregates over stored analyses. store may be nil.
func NewStatsHandler(store repository.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	if h.store == nil {
		return writeError(c, "statistics", service.ErrStoreUnavailable)
	}
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return writeError(c, "statistics", err)
	}
	return c.JSON(stats)
}

// Recent handles GET /api/history?limit=10
func (h *StatsHandler) Recent(c fiber.Ctx) error {
	if h.store == nil {
		return writeError(c, "history", service.ErrStoreUnavailable)
	}
	limit, errMsg := middleware.ParseLimit(c.Query("limit"), repository.DefaultHistoryLimit, repository.MaxHistoryLimit)
	if errMsg != "" {
		return invalidParam(c, "limit "+errMsg)
	}
	entries, err := h.store.RecentHistory(c.Context(), limit)
	if err != nil {
		return writeError(c, "history", err)
	}
	return c.JSON(fiber.Map{"history": entries})
}
