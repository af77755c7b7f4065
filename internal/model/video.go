package model

import "time"

// Video is the metadata fetched for a single YouTube video.
type Video struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChannelID       string    `json:"channel_id"`
	ChannelTitle    string    `json:"channel_title"`
	PublishedAt     time.Time `json:"published_at"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	DurationSeconds int       `json:"duration_seconds"`
	Tags            []string  `json:"tags"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
}

// EngagementMetrics are the percentage ratios derived from a video's counts.
type EngagementMetrics struct {
	EngagementRate float64 `json:"engagement_rate"`
	LikeRatio      float64 `json:"like_ratio"`
	CommentRatio   float64 `json:"comment_ratio"`
}

// PerformanceMetrics are the heuristic performance figures for a video.
type PerformanceMetrics struct {
	ViewsPerDay       float64 `json:"views_per_day"`
	LikesPerDay       float64 `json:"likes_per_day"`
	CommentsPerDay    float64 `json:"comments_per_day"`
	GrowthRate        float64 `json:"growth_rate"`
	ViralScore        float64 `json:"viral_score"`
	AudienceRetention float64 `json:"audience_retention"`
	ClickThroughRate  float64 `json:"click_through_rate"`
}

// VideoAnalysis is the API response for a full video analysis.
type VideoAnalysis struct {
	Video               Video               `json:"video"`
	Engagement          EngagementMetrics   `json:"engagement"`
	Performance         PerformanceMetrics  `json:"performance"`
	SponsorshipAnalysis SponsorshipAnalysis `json:"sponsorship_analysis"`
	Comments            []AnalyzedComment   `json:"comments"`
	CommentInsights     CommentInsights     `json:"comment_insights"`
	AudienceBehavior    AudienceBehavior    `json:"audience_behavior"`
	TranscriptLength    int                 `json:"transcript_length"`
	TranscriptAnalysis  *TranscriptAnalysis `json:"transcript_analysis,omitempty"`
	Warnings            []string            `json:"warnings,omitempty"`
	AnalyzedAt          time.Time           `json:"analyzed_at"`
}

// TranscriptAnalysis holds plain-text statistics of a video transcript.
type TranscriptAnalysis struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	Preview           string  `json:"transcript_preview"`
}

// CommentsResponse is the API response for the comment analysis of a video.
type CommentsResponse struct {
	VideoID          string            `json:"video_id"`
	Comments         []AnalyzedComment `json:"comments"`
	Insights         CommentInsights   `json:"insights"`
	AudienceBehavior AudienceBehavior  `json:"audience_behavior"`
	AISummary        *AISummary        `json:"ai_summary,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
}

// AISummary is an LLM-written digest of a video's comments. Defaulted is set
// when no summary could be produced.
type AISummary struct {
	Summary   string `json:"summary"`
	Defaulted bool   `json:"defaulted"`
	Reason    string `json:"reason,omitempty"`
}

// SponsorshipResponse is the API response for a single-video sponsorship check.
type SponsorshipResponse struct {
	VideoID             string              `json:"video_id"`
	Title               string              `json:"title"`
	Channel             string              `json:"channel"`
	SponsorshipAnalysis SponsorshipAnalysis `json:"sponsorship_analysis"`
	TranscriptLength    int                 `json:"transcript_length"`
}
