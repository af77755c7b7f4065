package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/metrics"
	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/deadline"
)

const (
	warnCommentsDisabled = "comments are disabled for this video"
	warnCommentsFailed   = "comments could not be fetched"
	warnNoTranscript     = "transcript unavailable; sponsorship detection used title and description only"
)

// Options are the knobs shared by the analysis services.
type Options struct {
	Timeout     time.Duration
	MaxComments int
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 20 * time.Second
	}
	if o.MaxComments <= 0 {
		o.MaxComments = 100
	}
	return o
}

// VideoService runs the full single-video analysis.
type VideoService struct {
	yt     youtube.API
	engine *analysis.Engine
	store  repository.Store
	opts   Options
	now    func() time.Time
}

// NewVideoService wires a VideoService. store may be nil.
func NewVideoService(yt youtube.API, engine *analysis.Engine, store repository.Store, opts Options) *VideoService {
	return &VideoService{yt: yt, engine: engine, store: store, opts: opts.withDefaults(), now: time.Now}
}

// Analyze fetches a video with its comments and transcript and runs every
// analysis over them. Only the video metadata is required; missing comments or
// transcript are reported as warnings. Every call re-fetches from YouTube.
func (s *VideoService) Analyze(ctx context.Context, videoID string) (model.VideoAnalysis, error) {
	run, err := s.run(ctx, videoID)
	return run.analysis, err
}

// videoRun is a finished analysis together with the transcript it used.
type videoRun struct {
	analysis   model.VideoAnalysis
	transcript string
}

// run analyzes and persists a video, keeping the transcript for callers that
// hand it on.
func (s *VideoService) run(ctx context.Context, videoID string) (videoRun, error) {
	start := time.Now()
	r, err := deadline.Run(ctx, s.opts.Timeout, func(ctx context.Context) (videoRun, error) {
		return s.analyze(ctx, videoID)
	})
	observeAnalysis("video", start, err)
	if err != nil {
		return r, err
	}
	s.persist(ctx, r.analysis)
	return r, nil
}

func (s *VideoService) analyze(ctx context.Context, videoID string) (videoRun, error) {
	video, err := s.yt.Video(ctx, videoID)
	if err != nil {
		return videoRun{}, err
	}

	var (
		comments      []model.Comment
		commentWarn   string
		transcript    string
		transcriptErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		comments, commentWarn = s.fetchComments(gctx, videoID)
		return nil
	})
	g.Go(func() error {
		transcript, transcriptErr = s.yt.Transcript(gctx, videoID)
		return nil
	})
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return videoRun{}, err
	}

	analyzed, insights, err := s.engine.AnalyzeComments(ctx, comments)
	if err != nil {
		return videoRun{}, err
	}

	a := model.VideoAnalysis{
		Video:               video,
		Engagement:          analysis.Engagement(video.ViewCount, video.LikeCount, video.CommentCount),
		Performance:         analysis.Performance(video),
		SponsorshipAnalysis: s.engine.DetectSponsorships(transcript, video.Title, video.Description),
		Comments:            analyzed,
		CommentInsights:     insights,
		AudienceBehavior:    analysis.Audience(analyzed),
		TranscriptLength:    len(transcript),
		Warnings:            []string{},
		AnalyzedAt:          s.now().UTC(),
	}
	if commentWarn != "" {
		a.Warnings = append(a.Warnings, commentWarn)
	}
	if transcript != "" {
		stats := analysis.TranscriptStats(transcript)
		a.TranscriptAnalysis = &stats
	}
	if transcriptErr != nil {
		a.Warnings = append(a.Warnings, warnNoTranscript)
		if !errors.Is(transcriptErr, youtube.ErrNoTranscript) {
			middleware.Logger.Debug().Err(transcriptErr).Str("component", "video-service").Msg("transcript fetch failed")
		}
	}
	return videoRun{analysis: a, transcript: transcript}, nil
}

// fetchComments returns the video's comments, or none and a warning when
// they cannot be fetched.
func (s *VideoService) fetchComments(ctx context.Context, videoID string) ([]model.Comment, string) {
	comments, err := s.yt.Comments(ctx, videoID, youtube.CommentOptions{Max: s.opts.MaxComments})
	switch {
	case err == nil:
		return comments, ""
	case errors.Is(err, youtube.ErrCommentsDisabled):
		return nil, warnCommentsDisabled
	default:
		middleware.Logger.Warn().Err(err).Str("component", "video-service").Str("video_id", videoID).Msg("comment fetch failed")
		return nil, warnCommentsFailed
	}
}

// persist stores the analysis. Failures are logged, never returned.
func (s *VideoService) persist(ctx context.Context, a model.VideoAnalysis) {
	if s.store == nil {
		return
	}
	log := middleware.Logger.With().Str("component", "video-service").Str("video_id", a.Video.VideoID).Logger()
	if err := s.store.SaveVideoAnalysis(ctx, repository.VideoRecord(a)); err != nil {
		log.Error().Err(err).Msg("save video analysis failed")
	}
	if a.CommentInsights.TotalComments > 0 {
		if err := s.store.SaveComments(ctx, repository.CommentRecord(a.Video.VideoID, a.CommentInsights, a.AnalyzedAt)); err != nil {
			log.Error().Err(err).Msg("save comment analytics failed")
		}
	}
	if err := s.store.SavePerformance(ctx, repository.PerformanceRecordFor(a.Video.VideoID, a.Performance, a.AnalyzedAt)); err != nil {
		log.Error().Err(err).Msg("save performance metrics failed")
	}
}

// Comments analyzes a video's comments on their own.
func (s *VideoService) Comments(ctx context.Context, videoID string) (model.CommentsResponse, error) {
	start := time.Now()
	resp, err := deadline.Run(ctx, s.opts.Timeout, func(ctx context.Context) (model.CommentsResponse, error) {
		comments, warn := s.fetchComments(ctx, videoID)
		if err := ctx.Err(); err != nil {
			return model.CommentsResponse{}, err
		}
		analyzed, insights, err := s.engine.AnalyzeComments(ctx, comments)
		if err != nil {
			return model.CommentsResponse{}, err
		}
		resp := model.CommentsResponse{
			VideoID:          videoID,
			Comments:         analyzed,
			Insights:         insights,
			AudienceBehavior: analysis.Audience(analyzed),
			Warnings:         []string{},
		}
		if warn != "" {
			resp.Warnings = append(resp.Warnings, warn)
		}
		return resp, nil
	})
	observeAnalysis("comments", start, err)
	return resp, err
}

// Sponsorship runs sponsorship detection for one video.
func (s *VideoService) Sponsorship(ctx context.Context, videoID string) (model.SponsorshipResponse, error) {
	return deadline.Run(ctx, s.opts.Timeout, func(ctx context.Context) (model.SponsorshipResponse, error) {
		video, err := s.yt.Video(ctx, videoID)
		if err != nil {
			return model.SponsorshipResponse{}, err
		}
		transcript, _ := s.yt.Transcript(ctx, videoID)
		return model.SponsorshipResponse{
			VideoID:             video.VideoID,
			Title:               video.Title,
			Channel:             video.ChannelTitle,
			SponsorshipAnalysis: s.engine.DetectSponsorships(transcript, video.Title, video.Description),
			TranscriptLength:    len(transcript),
		}, nil
	})
}

// History returns what is stored for a video.
func (s *VideoService) History(ctx context.Context, videoID string, limit int) (model.VideoHistory, error) {
	if s.store == nil {
		return model.VideoHistory{}, ErrStoreUnavailable
	}
	return s.store.VideoHistory(ctx, videoID, limit)
}

func observeAnalysis(kind string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.AnalysesTotal.WithLabelValues(kind, outcome).Inc()
	metrics.AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
