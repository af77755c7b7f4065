package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/asal3ti/charizard/internal/middleware"
)

// ChannelRefresher re-analyzes a channel and stores a snapshot.
type ChannelRefresher interface {
	Refresh(ctx context.Context, channelID string) error
}

// refreshFunc adapts ChannelService.Analyze to ChannelRefresher.
type refreshFunc func(ctx context.Context, channelID string) error

func (f refreshFunc) Refresh(ctx context.Context, channelID string) error { return f(ctx, channelID) }

// ChannelSnapshots returns a ChannelRefresher backed by s.
func ChannelSnapshots(s *ChannelService) ChannelRefresher {
	return refreshFunc(func(ctx context.Context, channelID string) error {
		_, err := s.Analyze(ctx, channelID)
		return err
	})
}

// SnapshotWorker periodically re-analyzes tracked channels so their history
// builds up without anyone requesting them.
type SnapshotWorker struct {
	refresher ChannelRefresher
	channels  []string
	interval  time.Duration
	stopCh    chan struct{}
	log       zerolog.Logger
}

// NewSnapshotWorker creates a worker that ticks every interval.
func NewSnapshotWorker(refresher ChannelRefresher, channels []string, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		refresher: refresher,
		channels:  channels,
		interval:  interval,
		stopCh:    make(chan struct{}),
		log:       middleware.Logger.With().Str("component", "snapshot-worker").Logger(),
	}
}

// Start runs one tick immediately, then every interval.
func (w *SnapshotWorker) Start(ctx context.Context) {
	if len(w.channels) == 0 {
		w.log.Info().Msg("no tracked channels, snapshot worker disabled")
		return
	}
	w.log.Info().Dur("interval", w.interval).Int("channels", len(w.channels)).Msg("starting")

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			w.log.Info().Msg("stopping (context cancelled)")
			return
		case <-w.stopCh:
			w.log.Info().Msg("stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *SnapshotWorker) Stop() {
	close(w.stopCh)
}

// tick refreshes every tracked channel once. One failing channel does not
// stop the others.
func (w *SnapshotWorker) tick(ctx context.Context) (updated, failed int) {
	start := time.Now()
	for _, id := range w.channels {
		if ctx.Err() != nil {
			break
		}
		if err := w.refresher.Refresh(ctx, id); err != nil {
			w.log.Warn().Err(err).Str("channel_id", id).Msg("refresh failed")
			failed++
			continue
		}
		updated++
	}
	w.log.Info().Int("updated", updated).Int("failed", failed).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).Msg("tick complete")
	return updated, failed
}
