package repository

import (
	"time"

	"github.com/asal3ti/charizard/internal/model"
)

// VideoRecord flattens a video analysis into its video_analytics row.
func VideoRecord(a model.VideoAnalysis) model.VideoAnalyticsRecord {
	v := a.Video
	return model.VideoAnalyticsRecord{
		VideoID:         v.VideoID,
		Title:           v.Title,
		Channel:         v.ChannelTitle,
		ChannelID:       v.ChannelID,
		PublishedAt:     v.PublishedAt,
		DurationSeconds: v.DurationSeconds,
		ViewCount:       v.ViewCount,
		LikeCount:       v.LikeCount,
		CommentCount:    v.CommentCount,
		EngagementRate:  a.Engagement.EngagementRate,
		LikeRatio:       a.Engagement.LikeRatio,
		CommentRatio:    a.Engagement.CommentRatio,
		RetentionRate:   a.Performance.AudienceRetention,
		AnalyzedAt:      a.AnalyzedAt,
	}
}

// CommentRecord summarizes comment insights into a comment_analytics row.
func CommentRecord(videoID string, in model.CommentInsights, at time.Time) model.CommentAnalyticsRecord {
	keywords := make([]string, 0, len(in.TopKeywords))
	for _, k := range in.TopKeywords {
		keywords = append(keywords, k.Word)
	}
	return model.CommentAnalyticsRecord{
		VideoID:          videoID,
		TotalComments:    in.TotalComments,
		PositiveCount:    in.SentimentDistribution[model.SentimentPositive],
		NegativeCount:    in.SentimentDistribution[model.SentimentNegative],
		NeutralCount:     in.SentimentDistribution[model.SentimentNeutral],
		QuestionCount:    in.CategoryDistribution[model.CategoryQuestion],
		SpamCount:        in.CategoryDistribution[model.CategorySpam],
		AvgCommentLength: in.AvgCommentLength,
		TopKeywords:      keywords,
		SentimentScore:   in.SentimentScore,
		AnalyzedAt:       at,
	}
}

// PerformanceRecordFor wraps a video's performance figures as a
// performance_metrics row.
func PerformanceRecordFor(videoID string, p model.PerformanceMetrics, at time.Time) model.PerformanceRecord {
	return model.PerformanceRecord{VideoID: videoID, PerformanceMetrics: p, AnalyzedAt: at}
}

// ChannelRecord flattens a channel analysis into its channel_analytics row.
func ChannelRecord(a model.ChannelAnalysis) model.ChannelAnalyticsRecord {
	return model.ChannelAnalyticsRecord{
		ChannelID:        a.Channel.ChannelID,
		Title:            a.Channel.Title,
		SubscriberCount:  a.Channel.SubscriberCount,
		VideoCount:       a.Channel.VideoCount,
		ViewCount:        a.Channel.ViewCount,
		EngagementRate:   a.Metrics.ChannelEngagementRate,
		AvgViewsPerVideo: a.Metrics.AvgViewsPerVideo,
		CreatedAt:        a.AnalyzedAt,
	}
}
