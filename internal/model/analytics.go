package model

import "time"

// VideoAnalyticsRecord is a row of the video_analytics table.
type VideoAnalyticsRecord struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	Channel         string    `json:"channel"`
	ChannelID       string    `json:"channel_id"`
	PublishedAt     time.Time `json:"published_at"`
	DurationSeconds int       `json:"duration_seconds"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	EngagementRate  float64   `json:"engagement_rate"`
	LikeRatio       float64   `json:"like_ratio"`
	CommentRatio    float64   `json:"comment_ratio"`
	RetentionRate   float64   `json:"retention_rate"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

// CommentAnalyticsRecord is a row of the comment_analytics table.
type CommentAnalyticsRecord struct {
	VideoID          string    `json:"video_id"`
	TotalComments    int       `json:"total_comments"`
	PositiveCount    int       `json:"positive_count"`
	NegativeCount    int       `json:"negative_count"`
	NeutralCount     int       `json:"neutral_count"`
	QuestionCount    int       `json:"question_count"`
	SpamCount        int       `json:"spam_count"`
	AvgCommentLength float64   `json:"avg_comment_length"`
	TopKeywords      []string  `json:"top_keywords"`
	SentimentScore   float64   `json:"sentiment_score"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// PerformanceRecord is a row of the performance_metrics table.
type PerformanceRecord struct {
	VideoID string `json:"video_id"`
	PerformanceMetrics
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// ChannelAnalyticsRecord is a row of the channel_analytics table.
type ChannelAnalyticsRecord struct {
	ChannelID        string    `json:"channel_id"`
	Title            string    `json:"title"`
	SubscriberCount  int64     `json:"subscriber_count"`
	VideoCount       int64     `json:"video_count"`
	ViewCount        int64     `json:"view_count"`
	EngagementRate   float64   `json:"engagement_rate"`
	AvgViewsPerVideo float64   `json:"avg_views_per_video"`
	CreatedAt        time.Time `json:"created_at"`
}

// HistoryEntry is one stored analysis joined with its comment summary.
type HistoryEntry struct {
	VideoID        string    `json:"video_id"`
	Title          string    `json:"title"`
	Views          int64     `json:"views"`
	Likes          int64     `json:"likes"`
	EngagementRate float64   `json:"engagement_rate"`
	SentimentScore *float64  `json:"sentiment_score"`
	TotalComments  *int      `json:"total_comments"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}

// AnalyticsStats aggregates every stored video analysis.
type AnalyticsStats struct {
	TotalVideosAnalyzed   int     `json:"total_videos_analyzed"`
	AverageEngagementRate float64 `json:"average_engagement_rate"`
	AverageViews          int64   `json:"average_views"`
	AverageLikes          int64   `json:"average_likes"`
	TotalViewsAnalyzed    int64   `json:"total_views_analyzed"`
}

// VideoHistory is everything stored for one video: its latest analytics row
// plus every comment and performance snapshot, newest first.
type VideoHistory struct {
	Video       VideoAnalyticsRecord     `json:"video"`
	Comments    []CommentAnalyticsRecord `json:"comment_snapshots"`
	Performance []PerformanceRecord      `json:"performance_snapshots"`
}
