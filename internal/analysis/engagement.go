package analysis

import (
	"math"
	"regexp"
	"strconv"

	"github.com/asal3ti/charizard/internal/model"
)

// The performance figures are fixed approximations over a 30 day window.
const (
	performanceWindowDays = 30
	viralScale            = 1_000_000
	growthFactor          = 0.1
	retentionFactor       = 2
	ctrFactor             = 0.5
)

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// Engagement derives percentage ratios from raw counts. Zero views yield
// zero ratios.
func Engagement(views, likes, comments int64) model.EngagementMetrics {
	if views <= 0 {
		return model.EngagementMetrics{}
	}
	v := float64(views)
	return model.EngagementMetrics{
		EngagementRate: Round(float64(likes+comments)/v*100, 2),
		LikeRatio:      Round(float64(likes)/v*100, 2),
		CommentRatio:   Round(float64(comments)/v*100, 2),
	}
}

// EngagementRate is (likes + comments) / views * 100, rounded to 2 places.
func EngagementRate(views, likes, comments int64) float64 {
	return Engagement(views, likes, comments).EngagementRate
}

// Performance computes the heuristic performance figures of a video.
func Performance(v model.Video) model.PerformanceMetrics {
	er := EngagementRate(v.ViewCount, v.LikeCount, v.CommentCount)
	return model.PerformanceMetrics{
		ViewsPerDay:       float64(v.ViewCount) / performanceWindowDays,
		LikesPerDay:       float64(v.LikeCount) / performanceWindowDays,
		CommentsPerDay:    float64(v.CommentCount) / performanceWindowDays,
		GrowthRate:        Round(er*growthFactor, 2),
		ViralScore:        Round(er*float64(v.ViewCount)/viralScale, 2),
		AudienceRetention: Round(math.Min(er*retentionFactor, 100), 2),
		ClickThroughRate:  Round(er*ctrFactor, 2),
	}
}

// ParseDuration converts an ISO 8601 "PT#H#M#S" duration to seconds.
// Malformed input yields 0.
func ParseDuration(iso string) int {
	m := isoDurationRe.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		total += n * unit
	}
	return total
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
