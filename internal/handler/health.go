package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/youtube"
)

// Version is reported by the readiness check.
const Version = "1.0.0"

type HealthHandler struct {
	store   repository.Store
	rdb     *redis.Client
	keys    func() youtube.KeyState
	startAt time.Time
}

// NewHealthHandler builds the health checks. store, rdb and keys may be nil.
func NewHealthHandler(store repository.Store, rdb *redis.Client, keys func() youtube.KeyState) *HealthHandler {
	return &HealthHandler{
		store:   store,
		rdb:     rdb,
		keys:    keys,
		startAt: time.Now(),
	}
}

// Live handles GET /health/live, the liveness check.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready, the readiness check.
// An exhausted key ring degrades readiness since no analysis can succeed.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := fiber.Map{
		"database": checkStore(ctx, h.store),
		"redis":    checkRedis(ctx, h.rdb),
		"youtube":  checkKeys(h.keys),
	}
	overallStatus := "healthy"
	for _, check := range checks {
		if m, ok := check.(fiber.Map); ok && m["status"] != "up" && m["status"] != "disabled" {
			overallStatus = "degraded"
		}
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
		"version":        Version,
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

func checkStore(ctx context.Context, store repository.Store) fiber.Map {
	if store == nil {
		return fiber.Map{"status": "disabled"}
	}

	start := time.Now()
	err := store.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}

func checkRedis(ctx context.Context, rdb *redis.Client) fiber.Map {
	if rdb == nil {
		return fiber.Map{"status": "disabled"}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}

func checkKeys(keys func() youtube.KeyState) fiber.Map {
	if keys == nil {
		return fiber.Map{"status": "disabled"}
	}
	st := keys()
	if st.Exhausted {
		return fiber.Map{"status": "down", "keys": st.Total, "state": st.String()}
	}
	return fiber.Map{"status": "up", "keys": st.Total, "state": st.String()}
}
