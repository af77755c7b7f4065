package analysis

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/asal3ti/charizard/internal/model"
)

const (
	ChannelVideosAnalyzed = 20
	channelRecentVideos   = 10
	channelDescriptionMax = 500
	channelTitlePreview   = 50
	monthsPerYear         = 12

	channelHighER       = 5
	channelLowER        = 1
	viewVarianceRatio   = 10
	growthWindow        = 5
	growthMinVideos     = 10
	growthRecentFactor  = 1.5
	declineRecentFactor = 0.7
)

// ChannelVideoFrom summarizes a fetched video for channel analytics.
func ChannelVideoFrom(v model.Video) model.ChannelVideo {
	return model.ChannelVideo{
		VideoID:        v.VideoID,
		Title:          v.Title,
		Views:          v.ViewCount,
		Likes:          v.LikeCount,
		Comments:       v.CommentCount,
		EngagementRate: EngagementRate(v.ViewCount, v.LikeCount, v.CommentCount),
		PublishedAt:    v.PublishedAt,
	}
}

// AnalyzeChannel derives channel metrics and insights from the channel record
// and its most recent videos, newest first.
func AnalyzeChannel(ch model.Channel, videos []model.ChannelVideo, now time.Time) model.ChannelAnalysis {
	if len(videos) > ChannelVideosAnalyzed {
		videos = videos[:ChannelVideosAnalyzed]
	}
	if r := []rune(ch.Description); len(r) > channelDescriptionMax {
		ch.Description = string(r[:channelDescriptionMax])
	}

	stats := model.ChannelStatistics{
		SubscriberCount: ch.SubscriberCount,
		VideoCount:      ch.VideoCount,
		ViewCount:       ch.ViewCount,
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
		stats.TotalLikes += v.Likes
		stats.TotalComments += v.Comments
	}

	var m model.ChannelMetrics
	if n := float64(len(videos)); n > 0 {
		m.AvgViewsPerVideo = Round(float64(stats.TotalViews)/n, 0)
		m.AvgLikesPerVideo = Round(float64(stats.TotalLikes)/n, 0)
		m.AvgCommentsPerVideo = Round(float64(stats.TotalComments)/n, 0)
	}
	m.ChannelEngagementRate = EngagementRate(stats.TotalViews, stats.TotalLikes, stats.TotalComments)
	if ch.SubscriberCount > 0 {
		m.ViewsPerSubscriber = Round(float64(ch.ViewCount)/float64(ch.SubscriberCount), 2)
	}
	m.VideosPerMonth = Round(float64(ch.VideoCount)/monthsPerYear, 1)

	recent := make([]model.ChannelVideo, min(len(videos), channelRecentVideos))
	copy(recent, videos)

	return model.ChannelAnalysis{
		Channel:      ch,
		Statistics:   stats,
		Metrics:      m,
		Insights:     ChannelInsights(videos),
		RecentVideos: recent,
		AnalyzedAt:   now,
	}
}

// ChannelInsights produces the headline observations for a channel's videos,
// ordered newest first.
func ChannelInsights(videos []model.ChannelVideo) []string {
	if len(videos) == 0 {
		return []string{"No video data available"}
	}

	topViewed, topEngaged := videos[0], videos[0]
	var erSum float64
	minViews, maxViews := videos[0].Views, videos[0].Views
	for _, v := range videos {
		if v.Views > topViewed.Views {
			topViewed = v
		}
		if v.EngagementRate > topEngaged.EngagementRate {
			topEngaged = v
		}
		erSum += v.EngagementRate
		minViews = min(minViews, v.Views)
		maxViews = max(maxViews, v.Views)
	}

	insights := []string{
		fmt.Sprintf("Most viewed video: '%s...' (%s views)", preview(topViewed.Title), groupThousands(topViewed.Views)),
		fmt.Sprintf("Highest engagement: '%s...' (%s%% engagement)", preview(topEngaged.Title), formatRate(topEngaged.EngagementRate)),
	}

	avgER := erSum / float64(len(videos))
	switch {
	case avgER > channelHighER:
		insights = append(insights, "High average engagement rate across videos")
	case avgER < channelLowER:
		insights = append(insights, "Low average engagement rate - consider content strategy")
	}

	variance := 0.0
	if minViews > 0 {
		variance = float64(maxViews) / float64(minViews)
	}
	if variance > viewVarianceRatio {
		insights = append(insights, "High view variance - content performance is inconsistent")
	} else {
		insights = append(insights, "Consistent view performance across videos")
	}

	if len(videos) >= growthMinVideos {
		recent := averageViews(videos[:growthWindow])
		older := averageViews(videos[len(videos)-growthWindow:])
		switch {
		case recent > older*growthRecentFactor:
			insights = append(insights, "Growing channel: Recent videos perform significantly better")
		case recent < older*declineRecentFactor:
			insights = append(insights, "Declining performance: Recent videos underperform compared to older content")
		}
	}
	return insights
}

// ChannelComparisonRow extracts the headline figures used to compare channels.
func ChannelComparisonRow(a model.ChannelAnalysis) model.ChannelComparison {
	return model.ChannelComparison{
		Title:            a.Channel.Title,
		Subscribers:      a.Statistics.SubscriberCount,
		TotalViews:       a.Statistics.ViewCount,
		EngagementRate:   a.Metrics.ChannelEngagementRate,
		AvgViewsPerVideo: a.Metrics.AvgViewsPerVideo,
	}
}

func averageViews(videos []model.ChannelVideo) float64 {
	var sum int64
	for _, v := range videos {
		sum += v.Views
	}
	return float64(sum) / float64(len(videos))
}

func preview(title string) string {
	r := []rune(title)
	if len(r) > channelTitlePreview {
		r = r[:channelTitlePreview]
	}
	return string(r)
}

// groupThousands renders n with comma separators, e.g. 1234567 -> "1,234,567".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatRate prints a rate with at least one decimal, e.g. 6 -> "6.0".
func formatRate(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
