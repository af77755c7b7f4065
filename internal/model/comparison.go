package model

// VideoRatios describes the engagement profile of the video being compared.
type VideoRatios struct {
	EngagementRate    float64 `json:"engagement_rate"`
	LikeRatio         float64 `json:"like_ratio"`
	CommentRatio      float64 `json:"comment_ratio"`
	TotalEngagement   int64   `json:"total_engagement"`
	EngagementPerView float64 `json:"engagement_per_view"`
}

// TopPerformer is the best similar video along one metric.
type TopPerformer struct {
	VideoID string  `json:"video_id"`
	Title   string  `json:"title"`
	Channel string  `json:"channel"`
	Views   int64   `json:"views"`
	Value   float64 `json:"value"`
}

// TopPerformers are the leaders among the similar videos.
type TopPerformers struct {
	HighestEngagement TopPerformer `json:"highest_engagement"`
	MostLikes         TopPerformer `json:"most_likes"`
	MostComments      TopPerformer `json:"most_comments"`
}

// TitlePatterns counts stylistic features across titles.
type TitlePatterns struct {
	CommonKeywords []KeywordCount `json:"common_keywords"`
	TitleLengths   []int          `json:"title_length"`
	HasEmojis      int            `json:"has_emojis"`
	HasNumbers     int            `json:"has_numbers"`
	HasBrackets    int            `json:"has_brackets"`
	HasQuotes      int            `json:"has_quotes"`
}

// TagCombination is the leading tags of a high-engagement video.
type TagCombination struct {
	Tags           []string `json:"tags"`
	EngagementRate float64  `json:"engagement_rate"`
	Title          string   `json:"title"`
}

// TagPatterns counts tag usage across videos.
type TagPatterns struct {
	MostCommonTags         []KeywordCount   `json:"most_common_tags"`
	TagCounts              []int            `json:"tag_count"`
	SuccessfulCombinations []TagCombination `json:"successful_tag_combinations"`
}

// DurationSample is one video placed in a duration bucket.
type DurationSample struct {
	Title      string  `json:"title"`
	Duration   int     `json:"duration"`
	Engagement float64 `json:"engagement"`
}

// DurationBucket aggregates the videos of one duration range.
type DurationBucket struct {
	Count         int              `json:"count"`
	AvgEngagement float64          `json:"avg_engagement"`
	Videos        []DurationSample `json:"videos"`
}

// DurationPatterns buckets videos into short, medium and long.
type DurationPatterns struct {
	Ranges          map[string]DurationBucket `json:"duration_ranges"`
	OptimalDuration string                    `json:"optimal_duration"`
}

// SponsorshipPatterns compares sponsored and unsponsored engagement.
type SponsorshipPatterns struct {
	SponsoredVideos           int         `json:"sponsored_videos"`
	NonSponsoredVideos        int         `json:"non_sponsored_videos"`
	SponsoredAvgEngagement    float64     `json:"sponsored_avg_engagement"`
	NonSponsoredAvgEngagement float64     `json:"non_sponsored_avg_engagement"`
	EngagementDifference      float64     `json:"engagement_difference"`
	TopSponsors               []NameCount `json:"top_sponsors"`
}

// ContentPatterns groups the per-feature pattern analyses.
type ContentPatterns struct {
	TitlePatterns       TitlePatterns       `json:"title_patterns"`
	TagPatterns         TagPatterns         `json:"tag_patterns"`
	DurationPatterns    DurationPatterns    `json:"duration_patterns"`
	SponsorshipPatterns SponsorshipPatterns `json:"sponsorship_patterns"`
}

// SimilarVideosAnalysis summarizes the similar set.
type SimilarVideosAnalysis struct {
	AverageMetrics  EngagementMetrics `json:"average_metrics"`
	TopPerformers   TopPerformers     `json:"top_performers"`
	ContentPatterns ContentPatterns   `json:"content_patterns"`
}

// SuccessPatterns are observations drawn from high-engagement similar videos.
type SuccessPatterns struct {
	HighEngagementIndicators []string `json:"high_engagement_indicators"`
	ContentStrategies        []string `json:"content_strategies"`
	TimingFactors            []string `json:"timing_factors"`
	AudienceBehavior         []string `json:"audience_behavior"`
}

// EngagementStrategies are observations drawn from the top similar videos.
type EngagementStrategies struct {
	TitleOptimization   []string `json:"title_optimization"`
	ContentApproaches   []string `json:"content_approaches"`
	CommunityEngagement []string `json:"community_engagement"`
	TimingStrategies    []string `json:"timing_strategies"`
}

// PerformanceComparison places the original video among its similar set.
type PerformanceComparison struct {
	OriginalEngagementRate   float64 `json:"original_engagement_rate"`
	AverageSimilarEngagement float64 `json:"average_similar_engagement"`
	PerformancePercentile    int     `json:"performance_percentile"`
	RelativePerformance      string  `json:"relative_performance"`
}

// ContentInsights are optimization hints derived from the comparison.
type ContentInsights struct {
	PerformanceComparison     PerformanceComparison `json:"performance_comparison"`
	OptimizationOpportunities []string              `json:"optimization_opportunities"`
	ContentGaps               []string              `json:"content_gaps"`
	TrendingElements          []string              `json:"trending_elements"`
}

// TechnicalInsights is the full comparison of a video against similar videos.
// Everything but OriginalVideo is empty when no similar videos were found.
type TechnicalInsights struct {
	OriginalVideo        VideoRatios            `json:"original_video_analysis"`
	SimilarVideos        *SimilarVideosAnalysis `json:"similar_videos_analysis,omitempty"`
	SuccessPatterns      SuccessPatterns        `json:"success_patterns"`
	EngagementStrategies EngagementStrategies   `json:"engagement_strategies"`
	ContentInsights      ContentInsights        `json:"content_insights"`
	Recommendations      []string               `json:"recommendations"`
}

// SimilarVideosResponse is the API response for a similar-video comparison.
type SimilarVideosResponse struct {
	OriginalVideo       Video              `json:"original_video"`
	SearchKeywords      string             `json:"search_keywords"`
	SimilarVideos       []SponsoredVideo   `json:"similar_videos"`
	TotalFound          int                `json:"total_found"`
	ExcludedSameChannel bool               `json:"excluded_same_channel"`
	SponsorshipSummary  SponsorshipSummary `json:"sponsorship_summary"`
	TechnicalInsights   TechnicalInsights  `json:"technical_insights"`
}

// TechnicalSummary is the condensed view of a technical-insights request.
type TechnicalSummary struct {
	OriginalPerformance VideoRatios       `json:"original_performance"`
	ComparisonMetrics   EngagementMetrics `json:"comparison_metrics"`
	TopRecommendations  []string          `json:"top_recommendations"`
}

// TechnicalInsightsResponse is the API response for technical insights.
type TechnicalInsightsResponse struct {
	VideoID           string            `json:"video_id"`
	TechnicalInsights TechnicalInsights `json:"technical_insights"`
	Summary           TechnicalSummary  `json:"summary"`
}
