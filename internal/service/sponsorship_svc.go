package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/deadline"
)

// transcriptConcurrency bounds parallel transcript fetches.
const transcriptConcurrency = 4

// SponsorshipService finds sponsored videos for a keyword search.
type SponsorshipService struct {
	yt     youtube.API
	engine *analysis.Engine
	opts   Options
}

func NewSponsorshipService(yt youtube.API, engine *analysis.Engine, opts Options) *SponsorshipService {
	return &SponsorshipService{yt: yt, engine: engine, opts: opts.withDefaults()}
}

// Search runs sponsorship detection over the videos matching keywords.
func (s *SponsorshipService) Search(ctx context.Context, keywords string, max int) (model.SponsoredSearchResponse, error) {
	start := time.Now()
	resp, err := deadline.Run(ctx, s.opts.Timeout, func(ctx context.Context) (model.SponsoredSearchResponse, error) {
		hits, err := s.yt.Search(ctx, keywords, youtube.SearchOptions{Max: max})
		if err != nil {
			return model.SponsoredSearchResponse{}, err
		}
		ids := make([]string, 0, len(hits))
		for _, h := range hits {
			ids = append(ids, h.VideoID)
		}
		videos, err := s.yt.Videos(ctx, ids)
		if err != nil {
			return model.SponsoredSearchResponse{}, err
		}

		sponsored, err := detectSponsorships(ctx, s.yt, s.engine, videos)
		if err != nil {
			return model.SponsoredSearchResponse{}, err
		}
		return model.SponsoredSearchResponse{
			SearchKeywords:     keywords,
			TotalVideos:        len(sponsored),
			Videos:             sponsored,
			SponsorshipSummary: analysis.SummarizeSponsorships(sponsored),
		}, nil
	})
	observeAnalysis("sponsorship_search", start, err)
	return resp, err
}

// detectSponsorships fetches each video's transcript in parallel and runs
// sponsorship detection. Output order follows videos. A missing transcript
// falls back to title and description.
func detectSponsorships(ctx context.Context, yt youtube.API, engine *analysis.Engine, videos []model.Video) ([]model.SponsoredVideo, error) {
	out := make([]model.SponsoredVideo, len(videos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(transcriptConcurrency)
	for i, v := range videos {
		g.Go(func() error {
			transcript, _ := yt.Transcript(gctx, v.VideoID)
			sa := engine.DetectSponsorships(transcript, v.Title, v.Description)
			out[i] = analysis.AsSponsored(v, sa, len(transcript))
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
