package repository

var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS video_analytics (
		id               BIGSERIAL PRIMARY KEY,
		video_id         TEXT UNIQUE NOT NULL,
		title            TEXT NOT NULL DEFAULT '',
		channel          TEXT NOT NULL DEFAULT '',
		channel_id       TEXT NOT NULL DEFAULT '',
		published_at     TIMESTAMPTZ,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		view_count       BIGINT NOT NULL DEFAULT 0,
		like_count       BIGINT NOT NULL DEFAULT 0,
		comment_count    BIGINT NOT NULL DEFAULT 0,
		engagement_rate  DOUBLE PRECISION NOT NULL DEFAULT 0,
		like_ratio       DOUBLE PRECISION NOT NULL DEFAULT 0,
		comment_ratio    DOUBLE PRECISION NOT NULL DEFAULT 0,
		retention_rate   DOUBLE PRECISION NOT NULL DEFAULT 0,
		analyzed_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS comment_analytics (
		id                 BIGSERIAL PRIMARY KEY,
		video_id           TEXT NOT NULL,
		total_comments     INTEGER NOT NULL DEFAULT 0,
		positive_count     INTEGER NOT NULL DEFAULT 0,
		negative_count     INTEGER NOT NULL DEFAULT 0,
		neutral_count      INTEGER NOT NULL DEFAULT 0,
		question_count     INTEGER NOT NULL DEFAULT 0,
		spam_count         INTEGER NOT NULL DEFAULT 0,
		avg_comment_length DOUBLE PRECISION NOT NULL DEFAULT 0,
		top_keywords       TEXT[] NOT NULL DEFAULT '{}',
		sentiment_score    DOUBLE PRECISION NOT NULL DEFAULT 0,
		analyzed_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comment_analytics_video ON comment_analytics (video_id, analyzed_at DESC)`,
	`CREATE TABLE IF NOT EXISTS performance_metrics (
		id                 BIGSERIAL PRIMARY KEY,
		video_id           TEXT NOT NULL,
		views_per_day      DOUBLE PRECISION NOT NULL DEFAULT 0,
		likes_per_day      DOUBLE PRECISION NOT NULL DEFAULT 0,
		comments_per_day   DOUBLE PRECISION NOT NULL DEFAULT 0,
		growth_rate        DOUBLE PRECISION NOT NULL DEFAULT 0,
		viral_score        DOUBLE PRECISION NOT NULL DEFAULT 0,
		audience_retention DOUBLE PRECISION NOT NULL DEFAULT 0,
		click_through_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		analyzed_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_performance_metrics_video ON performance_metrics (video_id, analyzed_at DESC)`,
	`CREATE TABLE IF NOT EXISTS channel_analytics (
		id                  BIGSERIAL PRIMARY KEY,
		channel_id          TEXT NOT NULL,
		title               TEXT NOT NULL DEFAULT '',
		subscriber_count    BIGINT NOT NULL DEFAULT 0,
		video_count         BIGINT NOT NULL DEFAULT 0,
		view_count          BIGINT NOT NULL DEFAULT 0,
		engagement_rate     DOUBLE PRECISION NOT NULL DEFAULT 0,
		avg_views_per_video DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_channel_analytics_channel ON channel_analytics (channel_id, created_at DESC)`,
}

// Times are stored as fixed-width UTC text so lexical order is time order.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS video_analytics (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id         TEXT UNIQUE NOT NULL,
		title            TEXT NOT NULL DEFAULT '',
		channel          TEXT NOT NULL DEFAULT '',
		channel_id       TEXT NOT NULL DEFAULT '',
		published_at     TEXT NOT NULL DEFAULT '',
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		view_count       INTEGER NOT NULL DEFAULT 0,
		like_count       INTEGER NOT NULL DEFAULT 0,
		comment_count    INTEGER NOT NULL DEFAULT 0,
		engagement_rate  REAL NOT NULL DEFAULT 0,
		like_ratio       REAL NOT NULL DEFAULT 0,
		comment_ratio    REAL NOT NULL DEFAULT 0,
		retention_rate   REAL NOT NULL DEFAULT 0,
		analyzed_at      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comment_analytics (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id           TEXT NOT NULL,
		total_comments     INTEGER NOT NULL DEFAULT 0,
		positive_count     INTEGER NOT NULL DEFAULT 0,
		negative_count     INTEGER NOT NULL DEFAULT 0,
		neutral_count      INTEGER NOT NULL DEFAULT 0,
		question_count     INTEGER NOT NULL DEFAULT 0,
		spam_count         INTEGER NOT NULL DEFAULT 0,
		avg_comment_length REAL NOT NULL DEFAULT 0,
		top_keywords       TEXT NOT NULL DEFAULT '[]',
		sentiment_score    REAL NOT NULL DEFAULT 0,
		analyzed_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comment_analytics_video ON comment_analytics (video_id, analyzed_at)`,
	`CREATE TABLE IF NOT EXISTS performance_metrics (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id           TEXT NOT NULL,
		views_per_day      REAL NOT NULL DEFAULT 0,
		likes_per_day      REAL NOT NULL DEFAULT 0,
		comments_per_day   REAL NOT NULL DEFAULT 0,
		growth_rate        REAL NOT NULL DEFAULT 0,
		viral_score        REAL NOT NULL DEFAULT 0,
		audience_retention REAL NOT NULL DEFAULT 0,
		click_through_rate REAL NOT NULL DEFAULT 0,
		analyzed_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_performance_metrics_video ON performance_metrics (video_id, analyzed_at)`,
	`CREATE TABLE IF NOT EXISTS channel_analytics (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		channel_id          TEXT NOT NULL,
		title               TEXT NOT NULL DEFAULT '',
		subscriber_count    INTEGER NOT NULL DEFAULT 0,
		video_count         INTEGER NOT NULL DEFAULT 0,
		view_count          INTEGER NOT NULL DEFAULT 0,
		engagement_rate     REAL NOT NULL DEFAULT 0,
		avg_views_per_video REAL NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_channel_analytics_channel ON channel_analytics (channel_id, created_at)`,
}
