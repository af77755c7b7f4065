package analysis

import (
	"math"
	"testing"

	"github.com/asal3ti/charizard/internal/model"
)

func TestEngagement(t *testing.T) {
	tests := []struct {
		name                   string
		views, likes, comments int64
		want                   model.EngagementMetrics
	}{
		{"typical", 1000, 50, 10, model.EngagementMetrics{EngagementRate: 6.0, LikeRatio: 5.0, CommentRatio: 1.0}},
		{"zero views", 0, 50, 10, model.EngagementMetrics{}},
		{"zero views no engagement", 0, 0, 0, model.EngagementMetrics{}},
		{"rounding", 3, 1, 0, model.EngagementMetrics{EngagementRate: 33.33, LikeRatio: 33.33}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Engagement(tt.views, tt.likes, tt.comments)
			if got != tt.want {
				t.Errorf("Engagement(%d, %d, %d) = %+v, want %+v", tt.views, tt.likes, tt.comments, got, tt.want)
			}
		})
	}
}

func TestPerformance(t *testing.T) {
	p := Performance(model.Video{ViewCount: 1000, LikeCount: 50, CommentCount: 10})

	if p.GrowthRate != 0.6 {
		t.Errorf("growth = %v, want 0.6", p.GrowthRate)
	}
	if p.ViralScore != 0.01 {
		t.Errorf("viral = %v, want 0.01", p.ViralScore)
	}
	if p.AudienceRetention != 12 {
		t.Errorf("retention = %v, want 12", p.AudienceRetention)
	}
	if p.ClickThroughRate != 3 {
		t.Errorf("ctr = %v, want 3", p.ClickThroughRate)
	}
	if math.Abs(p.ViewsPerDay-33.333) > 0.001 {
		t.Errorf("views/day = %v, want ~33.333", p.ViewsPerDay)
	}
}

func TestPerformance_RetentionCapped(t *testing.T) {
	p := Performance(model.Video{ViewCount: 100, LikeCount: 80, CommentCount: 0})
	if p.AudienceRetention != 100 {
		t.Errorf("retention = %v, want 100", p.AudienceRetention)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT1H2M3S", 3723},
		{"PT15M", 900},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT", 0},
		{"P1D", 0},
		{"", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := ParseDuration(tt.in); got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{1.005, 1, 1.0},
		{2.5, 0, 3},
		{-0.125, 2, -0.13},
		{7.5, 0, 8},
	}
	for _, tt := range tests {
		if got := Round(tt.x, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.want)
		}
	}
}
