package service

import (
	"context"
	"time"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/deadline"
)

const (
	DefaultSimilarVideos = 5
	MaxSimilarVideos     = 20
	// searchOverfetch is how many search hits are requested per wanted video,
	// since same-channel and duplicate hits are dropped.
	searchOverfetch = 3
)

// CompareService compares a video against similar videos from other channels.
type CompareService struct {
	yt     youtube.API
	engine *analysis.Engine
	opts   Options
}

func NewCompareService(yt youtube.API, engine *analysis.Engine, opts Options) *CompareService {
	return &CompareService{yt: yt, engine: engine, opts: opts.withDefaults()}
}

func clampSimilar(max int) int {
	if max <= 0 {
		return DefaultSimilarVideos
	}
	return min(max, MaxSimilarVideos)
}

// Similar finds up to max videos like videoID on other channels, ranked by
// engagement, with sponsorship analysis and technical insights.
func (s *CompareService) Similar(ctx context.Context, videoID string, max int) (model.SimilarVideosResponse, error) {
	max = clampSimilar(max)
	start := time.Now()
	resp, err := deadline.Run(ctx, s.opts.Timeout, func(ctx context.Context) (model.SimilarVideosResponse, error) {
		return s.similar(ctx, videoID, max)
	})
	observeAnalysis("similar", start, err)
	return resp, err
}

func (s *CompareService) similar(ctx context.Context, videoID string, max int) (model.SimilarVideosResponse, error) {
	original, err := s.yt.Video(ctx, videoID)
	if err != nil {
		return model.SimilarVideosResponse{}, err
	}
	keywords := analysis.SearchKeywords(original)

	hits, err := s.yt.Search(ctx, keywords, youtube.SearchOptions{Max: max * searchOverfetch})
	if err != nil {
		return model.SimilarVideosResponse{}, err
	}
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		if h.VideoID != original.VideoID && h.ChannelID != original.ChannelID {
			ids = append(ids, h.VideoID)
		}
	}
	details, err := s.yt.Videos(ctx, ids)
	if err != nil {
		return model.SimilarVideosResponse{}, err
	}

	// Rank on metadata first so transcripts are only fetched for the kept videos.
	candidates := make([]model.SponsoredVideo, 0, len(details))
	byID := make(map[string]model.Video, len(details))
	for _, v := range details {
		candidates = append(candidates, analysis.AsSponsored(v, model.SponsorshipAnalysis{}, 0))
		byID[v.VideoID] = v
	}
	kept := analysis.FilterSimilar(original, candidates, max)
	keptVideos := make([]model.Video, 0, len(kept))
	for _, c := range kept {
		keptVideos = append(keptVideos, byID[c.VideoID])
	}

	similar, err := detectSponsorships(ctx, s.yt, s.engine, keptVideos)
	if err != nil {
		return model.SimilarVideosResponse{}, err
	}

	return model.SimilarVideosResponse{
		OriginalVideo:       original,
		SearchKeywords:      keywords,
		SimilarVideos:       similar,
		TotalFound:          len(similar),
		ExcludedSameChannel: true,
		SponsorshipSummary:  analysis.SummarizeSponsorships(similar),
		TechnicalInsights:   analysis.CompareVideos(original, similar),
	}, nil
}

// TechnicalInsights returns the comparison insights for a video together
// with their condensed summary.
func (s *CompareService) TechnicalInsights(ctx context.Context, videoID string, max int) (model.TechnicalInsightsResponse, error) {
	resp, err := s.Similar(ctx, videoID, max)
	if err != nil {
		return model.TechnicalInsightsResponse{}, err
	}
	return model.TechnicalInsightsResponse{
		VideoID:           videoID,
		TechnicalInsights: resp.TechnicalInsights,
		Summary:           analysis.SummarizeTechnical(resp.TechnicalInsights),
	}, nil
}
