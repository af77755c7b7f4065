package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/service"
)

const defaultSearchResults = 10

type SearchHandler struct {
	svc *service.SponsorshipService
}

func NewSearchHandler(svc *service.SponsorshipService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Sponsored handles GET /api/search/sponsored?q=...&max=10
func (h *SearchHandler) Sponsored(c fiber.Ctx) error {
	q, errMsg := middleware.ValidateQuery(c.Query("q"))
	if errMsg != "" {
		return invalidParam(c, errMsg)
	}
	max, errMsg := middleware.ParseLimit(c.Query("max"), defaultSearchResults, middleware.MaxSearchResults)
	if errMsg != "" {
		return invalidParam(c, "max "+errMsg)
	}

	resp, err := h.svc.Search(c.Context(), q, max)
	if err != nil {
		return writeError(c, "search", err)
	}
	return c.JSON(resp)
}
