package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/service"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/deadline"
)

// writeError maps a service error onto the API error body. what names the
// resource for not-found messages.
func writeError(c fiber.Ctx, what string, err error) error {
	switch {
	case errors.Is(err, youtube.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", what+" not found")
	case errors.Is(err, service.ErrJobNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Job not found or expired")
	case errors.Is(err, youtube.ErrQuotaExhausted):
		return middleware.ErrorResponse(c, fiber.StatusTooManyRequests, "QUOTA_EXHAUSTED",
			"YouTube API quota exhausted for all keys; try again after midnight Pacific time")
	case errors.Is(err, deadline.ErrTimeout):
		return middleware.ErrorResponse(c, fiber.StatusGatewayTimeout, "TIMEOUT", err.Error())
	case errors.Is(err, service.ErrInvalidJob):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", err.Error())
	case errors.Is(err, service.ErrQueueUnavailable), errors.Is(err, service.ErrStoreUnavailable),
		errors.Is(err, youtube.ErrNoKeys):
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "UNAVAILABLE", err.Error())
	}
	middleware.Logger.Error().Err(err).Str("path", middleware.SanitizePath(c.Path())).Msg("request failed")
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process "+what)
}

func invalidParam(c fiber.Ctx, msg string) error {
	return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", msg)
}

func invalidBody(c fiber.Ctx) error {
	return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
}
