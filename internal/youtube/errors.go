package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotFound is returned when a video or channel does not exist.
	ErrNotFound = errors.New("youtube: not found")
	// ErrQuotaExhausted is returned once every configured API key has hit its quota.
	ErrQuotaExhausted = errors.New("youtube: all API keys exhausted")
	// ErrCommentsDisabled is returned when a video has comments turned off.
	ErrCommentsDisabled = errors.New("youtube: comments disabled")
	// ErrNoTranscript is returned when a video has no caption track.
	ErrNoTranscript = errors.New("youtube: no transcript available")
	// ErrNoKeys is returned when the client is built without API keys.
	ErrNoKeys = errors.New("youtube: no API keys configured")
)

var (
	quotaReasons     = []string{"quotaExceeded", "dailyLimitExceeded"}
	rateLimitReasons = []string{"rateLimitExceeded", "userRateLimitExceeded"}
)

func reasons(err *googleapi.Error) []string {
	out := make([]string, 0, len(err.Errors))
	for _, e := range err.Errors {
		out = append(out, e.Reason)
	}
	return out
}

func hasReason(err error, want []string) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return slices.ContainsFunc(reasons(gerr), func(r string) bool { return slices.Contains(want, r) })
}

// isQuotaError reports whether err means the current key has used up its
// daily quota.
func isQuotaError(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusForbidden && hasReason(err, quotaReasons)
}

// isTransient reports whether retrying the same call with the same key can
// succeed.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return true
	}
	switch {
	case gerr.Code >= http.StatusInternalServerError, gerr.Code == http.StatusTooManyRequests:
		return true
	case gerr.Code == http.StatusForbidden && hasReason(err, rateLimitReasons):
		return true
	}
	return false
}

// classify maps API errors onto the package sentinels.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case hasReason(err, []string{"commentsDisabled"}):
			return fmt.Errorf("%s: %w", op, ErrCommentsDisabled)
		case hasReason(err, []string{"videoNotFound", "channelNotFound"}):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
