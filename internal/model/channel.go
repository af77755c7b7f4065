package model

import "time"

// Channel is the metadata fetched for a YouTube channel.
type Channel struct {
	ChannelID       string    `json:"channel_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CustomURL       string    `json:"custom_url,omitempty"`
	Country         string    `json:"country,omitempty"`
	PublishedAt     time.Time `json:"published_at"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	ViewCount       int64     `json:"view_count"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
}

// ChannelVideo is the per-video summary used in channel analytics.
type ChannelVideo struct {
	VideoID        string    `json:"video_id"`
	Title          string    `json:"title"`
	Views          int64     `json:"views"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	EngagementRate float64   `json:"engagement_rate"`
	PublishedAt    time.Time `json:"published_at"`
}

// ChannelStatistics are the raw totals for a channel and its analyzed videos.
type ChannelStatistics struct {
	SubscriberCount int64 `json:"subscriber_count"`
	VideoCount      int64 `json:"video_count"`
	ViewCount       int64 `json:"view_count"`
	TotalViews      int64 `json:"total_views"`
	TotalLikes      int64 `json:"total_likes"`
	TotalComments   int64 `json:"total_comments"`
}

// ChannelMetrics are the derived per-channel ratios.
type ChannelMetrics struct {
	AvgViewsPerVideo      float64 `json:"avg_views_per_video"`
	AvgLikesPerVideo      float64 `json:"avg_likes_per_video"`
	AvgCommentsPerVideo   float64 `json:"avg_comments_per_video"`
	ChannelEngagementRate float64 `json:"channel_engagement_rate"`
	ViewsPerSubscriber    float64 `json:"views_per_subscriber"`
	VideosPerMonth        float64 `json:"videos_per_month"`
}

// ChannelAnalysis is the API response for channel analytics.
type ChannelAnalysis struct {
	Channel      Channel           `json:"channel_info"`
	Statistics   ChannelStatistics `json:"statistics"`
	Metrics      ChannelMetrics    `json:"metrics"`
	Insights     []string          `json:"insights"`
	RecentVideos []ChannelVideo    `json:"recent_videos"`
	AnalyzedAt   time.Time         `json:"analyzed_at"`
}

// ChannelComparison is one row of a multi-channel comparison.
type ChannelComparison struct {
	Title            string  `json:"title"`
	Subscribers      int64   `json:"subscribers"`
	TotalViews       int64   `json:"total_views"`
	EngagementRate   float64 `json:"engagement_rate"`
	AvgViewsPerVideo float64 `json:"avg_views_per_video"`
}

// ChannelCompareResponse is the API response for a multi-channel comparison,
// keyed by channel ID. Channels that could not be analyzed are listed in
// Warnings.
type ChannelCompareResponse struct {
	Comparison map[string]ChannelComparison `json:"comparison"`
	Warnings   []string                     `json:"warnings,omitempty"`
}
