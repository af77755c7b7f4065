package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/deadline"
)

// maxCompareConcurrency bounds parallel channel analyses in a comparison.
const maxCompareConcurrency = 4

type ChannelService struct {
	yt    youtube.API
	store repository.Store
	opts  Options
	now   func() time.Time
}

// NewChannelService wires a ChannelService. store may be nil.
func NewChannelService(yt youtube.API, store repository.Store, opts Options) *ChannelService {
	return &ChannelService{yt: yt, store: store, opts: opts.withDefaults(), now: time.Now}
}

// Analyze returns channel analytics over the channel's most recent uploads
// and stores a snapshot of the result. Every call re-fetches from YouTube.
func (s *ChannelService) Analyze(ctx context.Context, channelID string) (model.ChannelAnalysis, error) {
	start := time.Now()
	a, err := deadline.Run(ctx, s.opts.Timeout, func(ctx context.Context) (model.ChannelAnalysis, error) {
		return s.analyze(ctx, channelID)
	})
	observeAnalysis("channel", start, err)
	if err != nil {
		return a, err
	}

	if s.store != nil {
		if err := s.store.SaveChannelAnalysis(ctx, repository.ChannelRecord(a)); err != nil {
			middleware.Logger.Error().Err(err).Str("component", "channel-service").Str("channel_id", channelID).Msg("save channel analysis failed")
		}
	}
	return a, nil
}

func (s *ChannelService) analyze(ctx context.Context, channelID string) (model.ChannelAnalysis, error) {
	ch, err := s.yt.Channel(ctx, channelID)
	if err != nil {
		return model.ChannelAnalysis{}, err
	}
	ids, err := s.yt.ChannelVideos(ctx, channelID, analysis.ChannelVideosAnalyzed)
	if err != nil {
		return model.ChannelAnalysis{}, fmt.Errorf("list channel videos: %w", err)
	}
	videos, err := s.yt.Videos(ctx, ids)
	if err != nil {
		return model.ChannelAnalysis{}, fmt.Errorf("fetch channel videos: %w", err)
	}

	summaries := make([]model.ChannelVideo, 0, len(videos))
	for _, v := range videos {
		summaries = append(summaries, analysis.ChannelVideoFrom(v))
	}
	return analysis.AnalyzeChannel(ch, summaries, s.now().UTC()), nil
}

// Compare analyzes several channels in parallel and returns their headline
// metrics. A channel that fails is reported in Warnings instead of failing
// the whole comparison.
func (s *ChannelService) Compare(ctx context.Context, channelIDs []string) (model.ChannelCompareResponse, error) {
	resp := model.ChannelCompareResponse{Comparison: make(map[string]model.ChannelComparison, len(channelIDs))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCompareConcurrency)
	for _, id := range channelIDs {
		g.Go(func() error {
			a, err := s.Analyze(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s: %v", id, err))
				return nil
			}
			resp.Comparison[id] = analysis.ChannelComparisonRow(a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return resp, err
	}
	if err := ctx.Err(); err != nil {
		return resp, err
	}
	slices.Sort(resp.Warnings)
	return resp, nil
}

// History returns stored snapshots of a channel, newest first.
func (s *ChannelService) History(ctx context.Context, channelID string, limit int) ([]model.ChannelAnalyticsRecord, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.ChannelHistory(ctx, channelID, limit)
}
