package model

// SponsorshipAnalysis is derived deterministically from one video's title,
// description and transcript.
type SponsorshipAnalysis struct {
	HasSponsorship     bool             `json:"has_sponsorship"`
	Level              SponsorshipLevel `json:"level"`
	ConfidenceScore    int              `json:"confidence_score"`
	DetectedIndicators []string         `json:"detected_indicators"`
	DetectedCompanies  []string         `json:"detected_companies"`
	ExtractedCompanies []string         `json:"extracted_companies"`
	DiscountCodes      []string         `json:"discount_codes"`
	URLs               []string         `json:"urls"`
	EvidenceText       []string         `json:"evidence_text"`
}

// SponsoredVideo is a video summary paired with its sponsorship analysis.
type SponsoredVideo struct {
	VideoID             string              `json:"video_id"`
	Title               string              `json:"title"`
	Channel             string              `json:"channel"`
	ChannelID           string              `json:"channel_id"`
	PublishedAt         string              `json:"published_at"`
	ViewCount           int64               `json:"view_count"`
	LikeCount           int64               `json:"like_count"`
	CommentCount        int64               `json:"comment_count"`
	EngagementRate      float64             `json:"engagement_rate"`
	DurationSeconds     int                 `json:"duration_seconds"`
	Tags                []string            `json:"tags"`
	TranscriptLength    int                 `json:"transcript_length"`
	SponsorshipAnalysis SponsorshipAnalysis `json:"sponsorship_analysis"`
	Thumbnail           string              `json:"thumbnail,omitempty"`
}

// NameCount is a name and how often it occurred.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SponsorshipSummary aggregates sponsorship analyses over a set of videos.
type SponsorshipSummary struct {
	TotalVideos       int                      `json:"total_videos"`
	SponsoredVideos   int                      `json:"sponsored_videos"`
	SponsorshipRate   float64                  `json:"sponsorship_rate"`
	SponsorshipLevels map[SponsorshipLevel]int `json:"sponsorship_levels"`
	TopSponsors       []NameCount              `json:"top_sponsors"`
	DiscountCodes     []string                 `json:"discount_codes"`
	CommonIndicators  []NameCount              `json:"common_sponsorship_indicators"`
}

// SponsoredSearchResponse is the API response for a sponsored-video keyword search.
type SponsoredSearchResponse struct {
	SearchKeywords     string             `json:"search_keywords"`
	TotalVideos        int                `json:"total_videos"`
	Videos             []SponsoredVideo   `json:"videos"`
	SponsorshipSummary SponsorshipSummary `json:"sponsorship_summary"`
}
