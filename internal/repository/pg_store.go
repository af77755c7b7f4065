package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asal3ti/charizard/internal/model"
)

type PGStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PGStore)(nil)

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Migrate creates the analytics tables if they do not exist.
func (s *PGStore) Migrate(ctx context.Context) error {
	for _, stmt := range pgSchema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (s *PGStore) SaveVideoAnalysis(ctx context.Context, r model.VideoAnalyticsRecord) error {
	query := `
		INSERT INTO video_analytics
			(video_id, title, channel, channel_id, published_at, duration_seconds,
			 view_count, like_count, comment_count, engagement_rate, like_ratio,
			 comment_ratio, retention_rate, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (video_id) DO UPDATE SET
			title = EXCLUDED.title,
			channel = EXCLUDED.channel,
			channel_id = EXCLUDED.channel_id,
			published_at = EXCLUDED.published_at,
			duration_seconds = EXCLUDED.duration_seconds,
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			engagement_rate = EXCLUDED.engagement_rate,
			like_ratio = EXCLUDED.like_ratio,
			comment_ratio = EXCLUDED.comment_ratio,
			retention_rate = EXCLUDED.retention_rate,
			analyzed_at = EXCLUDED.analyzed_at`

	_, err := s.pool.Exec(ctx, query,
		r.VideoID, r.Title, r.Channel, r.ChannelID, nullTime(r.PublishedAt), r.DurationSeconds,
		r.ViewCount, r.LikeCount, r.CommentCount, r.EngagementRate, r.LikeRatio,
		r.CommentRatio, r.RetentionRate, nowIfZero(r.AnalyzedAt),
	)
	return err
}

func (s *PGStore) SaveComments(ctx context.Context, r model.CommentAnalyticsRecord) error {
	query := `
		INSERT INTO comment_analytics
			(video_id, total_comments, positive_count, negative_count, neutral_count,
			 question_count, spam_count, avg_comment_length, top_keywords, sentiment_score, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	keywords := r.TopKeywords
	if keywords == nil {
		keywords = []string{}
	}
	_, err := s.pool.Exec(ctx, query,
		r.VideoID, r.TotalComments, r.PositiveCount, r.NegativeCount, r.NeutralCount,
		r.QuestionCount, r.SpamCount, r.AvgCommentLength, keywords, r.SentimentScore,
		nowIfZero(r.AnalyzedAt),
	)
	return err
}

func (s *PGStore) SavePerformance(ctx context.Context, r model.PerformanceRecord) error {
	query := `
		INSERT INTO performance_metrics
			(video_id, views_per_day, likes_per_day, comments_per_day, growth_rate,
			 viral_score, audience_retention, click_through_rate, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.pool.Exec(ctx, query,
		r.VideoID, r.ViewsPerDay, r.LikesPerDay, r.CommentsPerDay, r.GrowthRate,
		r.ViralScore, r.AudienceRetention, r.ClickThroughRate, nowIfZero(r.AnalyzedAt),
	)
	return err
}

func (s *PGStore) SaveChannelAnalysis(ctx context.Context, r model.ChannelAnalyticsRecord) error {
	query := `
		INSERT INTO channel_analytics
			(channel_id, title, subscriber_count, video_count, view_count, engagement_rate,
			 avg_views_per_video, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, query,
		r.ChannelID, r.Title, r.SubscriberCount, r.VideoCount, r.ViewCount,
		r.EngagementRate, r.AvgViewsPerVideo, nowIfZero(r.CreatedAt),
	)
	return err
}

// VideoHistory returns the latest stored analysis of a video with its
// comment and performance snapshots.
func (s *PGStore) VideoHistory(ctx context.Context, videoID string, limit int) (model.VideoHistory, error) {
	limit = clampLimit(limit)
	var h model.VideoHistory

	var published *time.Time
	v := &h.Video
	err := s.pool.QueryRow(ctx, `
		SELECT video_id, title, channel, channel_id, published_at, duration_seconds,
		       view_count, like_count, comment_count, engagement_rate, like_ratio,
		       comment_ratio, retention_rate, analyzed_at
		FROM video_analytics
		WHERE video_id = $1`, videoID).Scan(
		&v.VideoID, &v.Title, &v.Channel, &v.ChannelID, &published, &v.DurationSeconds,
		&v.ViewCount, &v.LikeCount, &v.CommentCount, &v.EngagementRate, &v.LikeRatio,
		&v.CommentRatio, &v.RetentionRate, &v.AnalyzedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return h, ErrNotFound
	}
	if err != nil {
		return h, err
	}
	if published != nil {
		v.PublishedAt = *published
	}

	rows, err := s.pool.Query(ctx, `
		SELECT video_id, total_comments, positive_count, negative_count, neutral_count,
		       question_count, spam_count, avg_comment_length, top_keywords, sentiment_score, analyzed_at
		FROM comment_analytics
		WHERE video_id = $1
		ORDER BY analyzed_at DESC, id DESC
		LIMIT $2`, videoID, limit)
	if err != nil {
		return h, err
	}
	h.Comments, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CommentAnalyticsRecord, error) {
		var c model.CommentAnalyticsRecord
		err := row.Scan(
			&c.VideoID, &c.TotalComments, &c.PositiveCount, &c.NegativeCount, &c.NeutralCount,
			&c.QuestionCount, &c.SpamCount, &c.AvgCommentLength, &c.TopKeywords, &c.SentimentScore, &c.AnalyzedAt,
		)
		return c, err
	})
	if err != nil {
		return h, err
	}

	rows, err = s.pool.Query(ctx, `
		SELECT video_id, views_per_day, likes_per_day, comments_per_day, growth_rate,
		       viral_score, audience_retention, click_through_rate, analyzed_at
		FROM performance_metrics
		WHERE video_id = $1
		ORDER BY analyzed_at DESC, id DESC
		LIMIT $2`, videoID, limit)
	if err != nil {
		return h, err
	}
	h.Performance, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.PerformanceRecord, error) {
		var p model.PerformanceRecord
		err := row.Scan(
			&p.VideoID, &p.ViewsPerDay, &p.LikesPerDay, &p.CommentsPerDay, &p.GrowthRate,
			&p.ViralScore, &p.AudienceRetention, &p.ClickThroughRate, &p.AnalyzedAt,
		)
		return p, err
	})
	return h, err
}

func (s *PGStore) ChannelHistory(ctx context.Context, channelID string, limit int) ([]model.ChannelAnalyticsRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT channel_id, title, subscriber_count, video_count, view_count,
		       engagement_rate, avg_views_per_video, created_at
		FROM channel_analytics
		WHERE channel_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, channelID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ChannelAnalyticsRecord, error) {
		var c model.ChannelAnalyticsRecord
		err := row.Scan(
			&c.ChannelID, &c.Title, &c.SubscriberCount, &c.VideoCount, &c.ViewCount,
			&c.EngagementRate, &c.AvgViewsPerVideo, &c.CreatedAt,
		)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// RecentHistory returns the most recently analyzed videos, each joined with
// its newest comment snapshot if one exists.
func (s *PGStore) RecentHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT v.video_id, v.title, v.view_count, v.like_count, v.engagement_rate,
		       c.sentiment_score, c.total_comments, v.analyzed_at
		FROM video_analytics v
		LEFT JOIN LATERAL (
			SELECT sentiment_score, total_comments
			FROM comment_analytics
			WHERE video_id = v.video_id
			ORDER BY analyzed_at DESC, id DESC
			LIMIT 1
		) c ON true
		ORDER BY v.analyzed_at DESC
		LIMIT $1`, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.HistoryEntry, error) {
		var e model.HistoryEntry
		err := row.Scan(
			&e.VideoID, &e.Title, &e.Views, &e.Likes, &e.EngagementRate,
			&e.SentimentScore, &e.TotalComments, &e.AnalyzedAt,
		)
		return e, err
	})
}

func (s *PGStore) Stats(ctx context.Context) (model.AnalyticsStats, error) {
	var st model.AnalyticsStats
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(engagement_rate), 0),
		       COALESCE(ROUND(AVG(view_count)), 0)::BIGINT,
		       COALESCE(ROUND(AVG(like_count)), 0)::BIGINT,
		       COALESCE(SUM(view_count), 0)::BIGINT
		FROM video_analytics`).Scan(
		&st.TotalVideosAnalyzed, &st.AverageEngagementRate, &st.AverageViews,
		&st.AverageLikes, &st.TotalViewsAnalyzed,
	)
	return st, err
}

func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PGStore) Close() {
	s.pool.Close()
}
