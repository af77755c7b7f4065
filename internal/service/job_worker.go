package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/asal3ti/charizard/internal/metrics"
	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
)

// JobWorker pops queued jobs off Redis and runs the matching analysis. Results
// are written back to the job record so GET /api/jobs/:jobId can return them.
type JobWorker struct {
	queue   *JobQueue
	video   *VideoService
	channel *ChannelService
	compare *CompareService
	wait    time.Duration
	retry   time.Duration
	log     zerolog.Logger
}

// NewJobWorker creates a job worker.
func NewJobWorker(queue *JobQueue, video *VideoService, channel *ChannelService, compare *CompareService) *JobWorker {
	return &JobWorker{
		queue:   queue,
		video:   video,
		channel: channel,
		compare: compare,
		wait:    5 * time.Second,
		retry:   5 * time.Second,
		log:     middleware.Logger.With().Str("component", "job-worker").Logger(),
	}
}

// Start processes jobs until ctx is cancelled. Redis errors back off and
// retry rather than stopping the worker.
func (w *JobWorker) Start(ctx context.Context) {
	if !w.queue.Enabled() {
		w.log.Info().Msg("no redis configured, job worker disabled")
		return
	}
	w.log.Info().Msg("starting")

	for {
		job, err := w.queue.Dequeue(ctx, w.wait)
		switch {
		case ctx.Err() != nil:
			w.log.Info().Msg("stopping (context cancelled)")
			return
		case errors.Is(err, ErrJobNotFound):
			continue
		case err != nil:
			w.log.Error().Err(err).Dur("retry_in", w.retry).Msg("dequeue failed")
			select {
			case <-time.After(w.retry):
			case <-ctx.Done():
				w.log.Info().Msg("stopping (context cancelled)")
				return
			}
			continue
		}
		w.process(ctx, job)
	}
}

func (w *JobWorker) process(ctx context.Context, job model.Job) {
	log := w.log.With().Str("job_id", job.ID).Str("kind", string(job.Kind)).Str("target", job.Target).Logger()

	job.Status = model.JobRunning
	if err := w.queue.Update(ctx, job); err != nil {
		log.Error().Err(err).Msg("mark running failed")
	}

	start := time.Now()
	result, err := w.run(ctx, job)
	if err != nil {
		job.Status = model.JobFailed
		job.Error = err.Error()
		log.Warn().Err(err).Msg("job failed")
	} else {
		job.Status = model.JobDone
		job.Result = result
		log.Info().Dur("duration", time.Since(start)).Msg("job complete")
	}
	metrics.JobsProcessed.WithLabelValues(string(job.Kind), string(job.Status)).Inc()

	if err := w.queue.Update(ctx, job); err != nil {
		log.Error().Err(err).Msg("store job result failed")
	}
}

// run executes one job and returns its JSON result.
func (w *JobWorker) run(ctx context.Context, job model.Job) (json.RawMessage, error) {
	var (
		v   any
		err error
	)
	switch job.Kind {
	case model.JobVideo:
		v, err = w.video.Analyze(ctx, job.Target)
	case model.JobChannel:
		v, err = w.channel.Analyze(ctx, job.Target)
	case model.JobSimilar:
		v, err = w.compare.Similar(ctx, job.Target, DefaultSimilarVideos)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidJob, job.Kind)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
