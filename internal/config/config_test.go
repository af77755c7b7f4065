package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "YOUTUBE_API_KEYS", "YOUTUBE_API_KEY", "ANALYSIS_TIMEOUT", "MAX_COMMENTS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Empty(t, cfg.YouTubeAPIKeys)
	assert.Equal(t, 20*time.Second, cfg.AnalysisTimeout)
	assert.Equal(t, 100, cfg.MaxComments)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEYS", " k1, k2 ,,k3")
	t.Setenv("ANALYSIS_TIMEOUT", "45")
	t.Setenv("SNAPSHOT_INTERVAL", "30m")
	t.Setenv("MAX_COMMENTS", "250")
	t.Setenv("TRACKED_CHANNELS", "UC1,UC2")

	cfg := Load()
	assert.Equal(t, []string{"k1", "k2", "k3"}, cfg.YouTubeAPIKeys)
	assert.Equal(t, 45*time.Second, cfg.AnalysisTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SnapshotInterval)
	assert.Equal(t, 250, cfg.MaxComments)
	assert.Equal(t, []string{"UC1", "UC2"}, cfg.TrackedChannels)
}

func TestLoad_SingleKeyFallback(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEYS", "")
	t.Setenv("YOUTUBE_API_KEY", "only")

	assert.Equal(t, []string{"only"}, Load().YouTubeAPIKeys)
}

func TestGetEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_FLOAT", "-1")

	if got := getEnvInt("X_INT", 7); got != 7 {
		t.Errorf("getEnvInt = %d, want 7", got)
	}
	if got := getEnvDuration("X_DUR", time.Minute); got != time.Minute {
		t.Errorf("getEnvDuration = %v, want 1m", got)
	}
	if got := getEnvFloat("X_FLOAT", 2.5); got != 2.5 {
		t.Errorf("getEnvFloat = %v, want 2.5", got)
	}
}
