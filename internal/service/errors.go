package service

import "errors"

var (
	// ErrJobNotFound is returned for unknown or expired job IDs.
	ErrJobNotFound = errors.New("job not found")
	// ErrQueueUnavailable is returned when async jobs need Redis and none is configured.
	ErrQueueUnavailable = errors.New("job queue unavailable")
	// ErrStoreUnavailable is returned when history is requested without a store.
	ErrStoreUnavailable = errors.New("analytics store unavailable")
	// ErrInvalidJob is returned for a job with an unknown kind or empty target.
	ErrInvalidJob = errors.New("invalid job")
	// ErrInvalidWorkflow is returned for an AI workflow with an unknown step.
	ErrInvalidWorkflow = errors.New("invalid workflow")
)
