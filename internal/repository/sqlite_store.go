package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/asal3ti/charizard/internal/model"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// SQLiteStore is the embedded Store used for local development and tests.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: init schema: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, s)
}

func (s *SQLiteStore) SaveVideoAnalysis(ctx context.Context, r model.VideoAnalyticsRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO video_analytics
			(video_id, title, channel, channel_id, published_at, duration_seconds,
			 view_count, like_count, comment_count, engagement_rate, like_ratio,
			 comment_ratio, retention_rate, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (video_id) DO UPDATE SET
			title = excluded.title,
			channel = excluded.channel,
			channel_id = excluded.channel_id,
			published_at = excluded.published_at,
			duration_seconds = excluded.duration_seconds,
			view_count = excluded.view_count,
			like_count = excluded.like_count,
			comment_count = excluded.comment_count,
			engagement_rate = excluded.engagement_rate,
			like_ratio = excluded.like_ratio,
			comment_ratio = excluded.comment_ratio,
			retention_rate = excluded.retention_rate,
			analyzed_at = excluded.analyzed_at`,
		r.VideoID, r.Title, r.Channel, r.ChannelID, formatTime(r.PublishedAt), r.DurationSeconds,
		r.ViewCount, r.LikeCount, r.CommentCount, r.EngagementRate, r.LikeRatio,
		r.CommentRatio, r.RetentionRate, formatTime(nowIfZero(r.AnalyzedAt)),
	)
	return err
}

func (s *SQLiteStore) SaveComments(ctx context.Context, r model.CommentAnalyticsRecord) error {
	keywords := r.TopKeywords
	if keywords == nil {
		keywords = []string{}
	}
	kw, err := json.Marshal(keywords)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO comment_analytics
			(video_id, total_comments, positive_count, negative_count, neutral_count,
			 question_count, spam_count, avg_comment_length, top_keywords, sentiment_score, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.VideoID, r.TotalComments, r.PositiveCount, r.NegativeCount, r.NeutralCount,
		r.QuestionCount, r.SpamCount, r.AvgCommentLength, string(kw), r.SentimentScore,
		formatTime(nowIfZero(r.AnalyzedAt)),
	)
	return err
}

func (s *SQLiteStore) SavePerformance(ctx context.Context, r model.PerformanceRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO performance_metrics
			(video_id, views_per_day, likes_per_day, comments_per_day, growth_rate,
			 viral_score, audience_retention, click_through_rate, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.VideoID, r.ViewsPerDay, r.LikesPerDay, r.CommentsPerDay, r.GrowthRate,
		r.ViralScore, r.AudienceRetention, r.ClickThroughRate, formatTime(nowIfZero(r.AnalyzedAt)),
	)
	return err
}

func (s *SQLiteStore) SaveChannelAnalysis(ctx context.Context, r model.ChannelAnalyticsRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO channel_analytics
			(channel_id, title, subscriber_count, video_count, view_count, engagement_rate,
			 avg_views_per_video, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ChannelID, r.Title, r.SubscriberCount, r.VideoCount, r.ViewCount,
		r.EngagementRate, r.AvgViewsPerVideo, formatTime(nowIfZero(r.CreatedAt)),
	)
	return err
}

func (s *SQLiteStore) VideoHistory(ctx context.Context, videoID string, limit int) (model.VideoHistory, error) {
	limit = clampLimit(limit)
	var h model.VideoHistory

	var published, analyzed string
	v := &h.Video
	err := s.db.QueryRowContext(ctx, `
		SELECT video_id, title, channel, channel_id, published_at, duration_seconds,
		       view_count, like_count, comment_count, engagement_rate, like_ratio,
		       comment_ratio, retention_rate, analyzed_at
		FROM video_analytics
		WHERE video_id = ?`, videoID).Scan(
		&v.VideoID, &v.Title, &v.Channel, &v.ChannelID, &published, &v.DurationSeconds,
		&v.ViewCount, &v.LikeCount, &v.CommentCount, &v.EngagementRate, &v.LikeRatio,
		&v.CommentRatio, &v.RetentionRate, &analyzed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return h, ErrNotFound
	}
	if err != nil {
		return h, err
	}
	if v.PublishedAt, err = parseTime(published); err != nil {
		return h, err
	}
	if v.AnalyzedAt, err = parseTime(analyzed); err != nil {
		return h, err
	}

	if h.Comments, err = s.commentSnapshots(ctx, videoID, limit); err != nil {
		return h, err
	}
	h.Performance, err = s.performanceSnapshots(ctx, videoID, limit)
	return h, err
}

func (s *SQLiteStore) commentSnapshots(ctx context.Context, videoID string, limit int) ([]model.CommentAnalyticsRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id, total_comments, positive_count, negative_count, neutral_count,
		       question_count, spam_count, avg_comment_length, top_keywords, sentiment_score, analyzed_at
		FROM comment_analytics
		WHERE video_id = ?
		ORDER BY analyzed_at DESC, id DESC
		LIMIT ?`, videoID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.CommentAnalyticsRecord{}
	for rows.Next() {
		var (
			c            model.CommentAnalyticsRecord
			kw, analyzed string
		)
		if err := rows.Scan(
			&c.VideoID, &c.TotalComments, &c.PositiveCount, &c.NegativeCount, &c.NeutralCount,
			&c.QuestionCount, &c.SpamCount, &c.AvgCommentLength, &kw, &c.SentimentScore, &analyzed,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(kw), &c.TopKeywords); err != nil {
			return nil, fmt.Errorf("decode top_keywords: %w", err)
		}
		if c.AnalyzedAt, err = parseTime(analyzed); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) performanceSnapshots(ctx context.Context, videoID string, limit int) ([]model.PerformanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id, views_per_day, likes_per_day, comments_per_day, growth_rate,
		       viral_score, audience_retention, click_through_rate, analyzed_at
		FROM performance_metrics
		WHERE video_id = ?
		ORDER BY analyzed_at DESC, id DESC
		LIMIT ?`, videoID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PerformanceRecord{}
	for rows.Next() {
		var (
			p        model.PerformanceRecord
			analyzed string
		)
		if err := rows.Scan(
			&p.VideoID, &p.ViewsPerDay, &p.LikesPerDay, &p.CommentsPerDay, &p.GrowthRate,
			&p.ViralScore, &p.AudienceRetention, &p.ClickThroughRate, &analyzed,
		); err != nil {
			return nil, err
		}
		if p.AnalyzedAt, err = parseTime(analyzed); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ChannelHistory(ctx context.Context, channelID string, limit int) ([]model.ChannelAnalyticsRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT channel_id, title, subscriber_count, video_count, view_count,
		       engagement_rate, avg_views_per_video, created_at
		FROM channel_analytics
		WHERE channel_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, channelID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ChannelAnalyticsRecord
	for rows.Next() {
		var (
			c       model.ChannelAnalyticsRecord
			created string
		)
		if err := rows.Scan(
			&c.ChannelID, &c.Title, &c.SubscriberCount, &c.VideoCount, &c.ViewCount,
			&c.EngagementRate, &c.AvgViewsPerVideo, &created,
		); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *SQLiteStore) RecentHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.video_id, v.title, v.view_count, v.like_count, v.engagement_rate,
		       c.sentiment_score, c.total_comments, v.analyzed_at
		FROM video_analytics v
		LEFT JOIN comment_analytics c ON c.id = (
			SELECT id FROM comment_analytics
			WHERE video_id = v.video_id
			ORDER BY analyzed_at DESC, id DESC
			LIMIT 1
		)
		ORDER BY v.analyzed_at DESC
		LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HistoryEntry{}
	for rows.Next() {
		var (
			e        model.HistoryEntry
			score    sql.NullFloat64
			total    sql.NullInt64
			analyzed string
		)
		if err := rows.Scan(
			&e.VideoID, &e.Title, &e.Views, &e.Likes, &e.EngagementRate,
			&score, &total, &analyzed,
		); err != nil {
			return nil, err
		}
		if score.Valid {
			e.SentimentScore = &score.Float64
		}
		if total.Valid {
			n := int(total.Int64)
			e.TotalComments = &n
		}
		if e.AnalyzedAt, err = parseTime(analyzed); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Stats(ctx context.Context) (model.AnalyticsStats, error) {
	var st model.AnalyticsStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(engagement_rate), 0),
		       CAST(COALESCE(ROUND(AVG(view_count)), 0) AS INTEGER),
		       CAST(COALESCE(ROUND(AVG(like_count)), 0) AS INTEGER),
		       COALESCE(SUM(view_count), 0)
		FROM video_analytics`).Scan(
		&st.TotalVideosAnalyzed, &st.AverageEngagementRate, &st.AverageViews,
		&st.AverageLikes, &st.TotalViewsAnalyzed,
	)
	return st, err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() {
	s.db.Close()
}
