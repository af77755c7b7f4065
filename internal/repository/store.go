package repository

import (
	"context"
	"errors"
	"time"

	"github.com/asal3ti/charizard/internal/model"
)

// ErrNotFound is returned when nothing is stored for the requested key.
var ErrNotFound = errors.New("repository: not found")

// Store persists analysis results. video_analytics keeps the latest row per
// video; comment, performance and channel rows are appended as snapshots.
type Store interface {
	SaveVideoAnalysis(ctx context.Context, rec model.VideoAnalyticsRecord) error
	SaveComments(ctx context.Context, rec model.CommentAnalyticsRecord) error
	SavePerformance(ctx context.Context, rec model.PerformanceRecord) error
	SaveChannelAnalysis(ctx context.Context, rec model.ChannelAnalyticsRecord) error

	VideoHistory(ctx context.Context, videoID string, limit int) (model.VideoHistory, error)
	ChannelHistory(ctx context.Context, channelID string, limit int) ([]model.ChannelAnalyticsRecord, error)
	RecentHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	Stats(ctx context.Context) (model.AnalyticsStats, error)

	Ping(ctx context.Context) error
	Close()
}

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(limit, MaxHistoryLimit)
}

func nowIfZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
