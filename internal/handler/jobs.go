package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/service"
)

type JobHandler struct {
	queue *service.JobQueue
}

func NewJobHandler(queue *service.JobQueue) *JobHandler {
	return &JobHandler{queue: queue}
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c fiber.Ctx) error {
	var req model.JobRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	if !service.ValidJobKind(req.Kind) {
		return invalidParam(c, "kind must be one of: video, channel, similar")
	}

	var errMsg string
	if req.Kind == model.JobChannel {
		req.Target, errMsg = middleware.ValidateChannelID(req.Target)
	} else {
		req.Target, errMsg = middleware.ValidateVideoID(req.Target)
	}
	if errMsg != "" {
		return invalidParam(c, "target: "+errMsg)
	}

	job, err := h.queue.Enqueue(c.Context(), req.Kind, req.Target)
	if err != nil {
		return writeError(c, "job", err)
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// Get handles GET /api/jobs/:jobId
func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return invalidParam(c, "jobId must be a UUID")
	}
	job, err := h.queue.Get(c.Context(), id.String())
	if err != nil {
		return writeError(c, "job", err)
	}
	return c.JSON(job)
}
