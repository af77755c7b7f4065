package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asal3ti/charizard/internal/model"
)

func seedChannel(yt *fakeYouTube, id string, subscribers int64, uploads int) {
	yt.channels[id] = model.Channel{
		ChannelID:       id,
		Title:           "Channel " + id,
		SubscriberCount: subscribers,
		VideoCount:      int64(uploads),
		ViewCount:       subscribers * 50,
	}
	for i := range uploads {
		vid := fmt.Sprintf("%s-v%02d", id, i)
		yt.videos[vid] = sampleVideo(vid, id, 1000, 40, 10)
		yt.uploads[id] = append(yt.uploads[id], vid)
	}
}

func TestChannelService_Analyze(t *testing.T) {
	yt := newFakeYouTube()
	seedChannel(yt, "UCaaa", 1000, 25)
	store := openStore(t)
	svc := NewChannelService(yt, store, Options{})

	a, err := svc.Analyze(context.Background(), "UCaaa")
	require.NoError(t, err)

	assert.Equal(t, "Channel UCaaa", a.Channel.Title)
	assert.Equal(t, int64(20000), a.Statistics.TotalViews, "only the 20 most recent uploads count")
	assert.Equal(t, 5.0, a.Metrics.ChannelEngagementRate)
	assert.Equal(t, 50.0, a.Metrics.ViewsPerSubscriber)
	assert.Len(t, a.RecentVideos, 10)
	assert.NotEmpty(t, a.Insights)

	hist, err := svc.History(context.Background(), "UCaaa", 5)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, int64(1000), hist[0].SubscriberCount)
}

func TestChannelService_AnalyzeRefetchesEveryCall(t *testing.T) {
	yt := newFakeYouTube()
	seedChannel(yt, "UCaaa", 1000, 2)
	store := openStore(t)
	svc := NewChannelService(yt, store, Options{})

	for range 2 {
		_, err := svc.Analyze(context.Background(), "UCaaa")
		require.NoError(t, err)
	}

	assert.Equal(t, 2, yt.count("channel"))
	hist, err := svc.History(context.Background(), "UCaaa", 10)
	require.NoError(t, err)
	assert.Len(t, hist, 2, "one snapshot per analysis")
}

func TestChannelService_Compare(t *testing.T) {
	yt := newFakeYouTube()
	seedChannel(yt, "UCaaa", 1000, 3)
	seedChannel(yt, "UCbbb", 5000, 2)
	svc := NewChannelService(yt, nil, Options{})

	resp, err := svc.Compare(context.Background(), []string{"UCbbb", "UCmissing", "UCaaa"})
	require.NoError(t, err)

	require.Len(t, resp.Comparison, 2)
	assert.Equal(t, int64(5000), resp.Comparison["UCbbb"].Subscribers)
	assert.Equal(t, 1000.0, resp.Comparison["UCaaa"].AvgViewsPerVideo)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "UCmissing")
}

func TestSnapshotWorker_Tick(t *testing.T) {
	var seen []string
	refresher := refreshFunc(func(_ context.Context, id string) error {
		seen = append(seen, id)
		if id == "UCbad" {
			return fmt.Errorf("boom")
		}
		return nil
	})
	w := NewSnapshotWorker(refresher, []string{"UCaaa", "UCbad", "UCccc"}, 0)

	updated, failed := w.tick(context.Background())
	if updated != 2 || failed != 1 {
		t.Errorf("tick = (%d, %d), want (2, 1)", updated, failed)
	}
	if len(seen) != 3 {
		t.Errorf("refreshed %d channels, want 3", len(seen))
	}
}

func TestSnapshotWorker_StoresSnapshots(t *testing.T) {
	yt := newFakeYouTube()
	seedChannel(yt, "UCaaa", 1000, 2)
	store := openStore(t)
	svc := NewChannelService(yt, store, Options{})
	w := NewSnapshotWorker(ChannelSnapshots(svc), []string{"UCaaa"}, 0)

	w.tick(context.Background())
	w.tick(context.Background())

	hist, err := svc.History(context.Background(), "UCaaa", 10)
	require.NoError(t, err)
	assert.Len(t, hist, 2)
}

func TestSnapshotWorker_NoChannels(t *testing.T) {
	w := NewSnapshotWorker(refreshFunc(func(context.Context, string) error {
		t.Fatal("refresh should not run")
		return nil
	}), nil, 0)
	// Returns immediately instead of ticking.
	w.Start(context.Background())
}
