package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/asal3ti/charizard/internal/model"
)

const (
	jobQueueKey      = "analysis_jobs"
	jobKeyPrefix     = "job:"
	DefaultJobResult = 24 * time.Hour
)

// JobQueue stores async analysis jobs in Redis. Pending job IDs live in a
// list; each job's state lives under its own key until the result TTL
// expires. A nil client makes Enqueue and Get return ErrQueueUnavailable.
type JobQueue struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

func NewJobQueue(rdb *redis.Client, ttl time.Duration) *JobQueue {
	if ttl <= 0 {
		ttl = DefaultJobResult
	}
	return &JobQueue{rdb: rdb, ttl: ttl, now: time.Now}
}

// Enabled reports whether a Redis client backs the queue.
func (q *JobQueue) Enabled() bool {
	return q != nil && q.rdb != nil
}

// ValidJobKind reports whether kind names a job the worker can run.
func ValidJobKind(kind model.JobKind) bool {
	switch kind {
	case model.JobVideo, model.JobChannel, model.JobSimilar:
		return true
	}
	return false
}

// Enqueue records a new queued job and pushes it onto the work list.
func (q *JobQueue) Enqueue(ctx context.Context, kind model.JobKind, target string) (model.Job, error) {
	if !q.Enabled() {
		return model.Job{}, ErrQueueUnavailable
	}
	target = strings.TrimSpace(target)
	if !ValidJobKind(kind) || target == "" {
		return model.Job{}, ErrInvalidJob
	}

	now := q.now().UTC()
	job := model.Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		Target:    target,
		Status:    model.JobQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := q.save(ctx, job); err != nil {
		return model.Job{}, err
	}
	if err := q.rdb.LPush(ctx, jobQueueKey, job.ID).Err(); err != nil {
		return model.Job{}, fmt.Errorf("enqueue job: %w", err)
	}
	return job, nil
}

// Get returns the stored state of a job.
func (q *JobQueue) Get(ctx context.Context, id string) (model.Job, error) {
	if !q.Enabled() {
		return model.Job{}, ErrQueueUnavailable
	}
	data, err := q.rdb.Get(ctx, jobKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Job{}, ErrJobNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("get job: %w", err)
	}
	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("decode job %s: %w", id, err)
	}
	return job, nil
}

// Dequeue blocks up to wait for the next job. It returns ErrJobNotFound when
// the wait elapses with nothing queued, or when the popped job has expired.
func (q *JobQueue) Dequeue(ctx context.Context, wait time.Duration) (model.Job, error) {
	if !q.Enabled() {
		return model.Job{}, ErrQueueUnavailable
	}
	res, err := q.rdb.BRPop(ctx, wait, jobQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return model.Job{}, ErrJobNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("dequeue job: %w", err)
	}
	// BRPOP replies with [list, value].
	return q.Get(ctx, res[1])
}

// Update stores job with a fresh UpdatedAt.
func (q *JobQueue) Update(ctx context.Context, job model.Job) error {
	if !q.Enabled() {
		return ErrQueueUnavailable
	}
	job.UpdatedAt = q.now().UTC()
	return q.save(ctx, job)
}

func (q *JobQueue) save(ctx context.Context, job model.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	if err := q.rdb.Set(ctx, jobKeyPrefix+job.ID, data, q.ttl).Err(); err != nil {
		return fmt.Errorf("save job %s: %w", job.ID, err)
	}
	return nil
}
