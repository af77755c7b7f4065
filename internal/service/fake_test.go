package service

import (
	"context"
	"sync"

	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/internal/youtube"
)

// fakeYouTube serves canned data. Any lookup it has no entry for returns
// youtube.ErrNotFound.
type fakeYouTube struct {
	mu          sync.Mutex
	videos      map[string]model.Video
	comments    map[string][]model.Comment
	commentErr  error
	transcripts map[string]string
	channels    map[string]model.Channel
	uploads     map[string][]string
	search      []youtube.SearchResult
	block       bool
	calls       map[string]int
}

func newFakeYouTube() *fakeYouTube {
	return &fakeYouTube{
		videos:      map[string]model.Video{},
		comments:    map[string][]model.Comment{},
		transcripts: map[string]string{},
		channels:    map[string]model.Channel{},
		uploads:     map[string][]string{},
		calls:       map[string]int{},
	}
}

func (f *fakeYouTube) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeYouTube) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeYouTube) Video(ctx context.Context, id string) (model.Video, error) {
	f.record("video")
	if f.block {
		<-ctx.Done()
		return model.Video{}, ctx.Err()
	}
	v, ok := f.videos[id]
	if !ok {
		return model.Video{}, youtube.ErrNotFound
	}
	return v, nil
}

func (f *fakeYouTube) Videos(_ context.Context, ids []string) ([]model.Video, error) {
	f.record("videos")
	out := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := f.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeYouTube) Comments(_ context.Context, id string, opts youtube.CommentOptions) ([]model.Comment, error) {
	f.record("comments")
	if f.commentErr != nil {
		return nil, f.commentErr
	}
	c := f.comments[id]
	if opts.Max > 0 && len(c) > opts.Max {
		c = c[:opts.Max]
	}
	return c, nil
}

func (f *fakeYouTube) Channel(_ context.Context, id string) (model.Channel, error) {
	f.record("channel")
	ch, ok := f.channels[id]
	if !ok {
		return model.Channel{}, youtube.ErrNotFound
	}
	return ch, nil
}

func (f *fakeYouTube) ChannelVideos(_ context.Context, id string, max int) ([]string, error) {
	f.record("channel_videos")
	ids := f.uploads[id]
	if len(ids) > max {
		ids = ids[:max]
	}
	return ids, nil
}

func (f *fakeYouTube) Search(_ context.Context, _ string, opts youtube.SearchOptions) ([]youtube.SearchResult, error) {
	f.record("search")
	hits := f.search
	if opts.Max > 0 && len(hits) > opts.Max {
		hits = hits[:opts.Max]
	}
	return hits, nil
}

func (f *fakeYouTube) Transcript(_ context.Context, id string) (string, error) {
	f.record("transcript")
	t, ok := f.transcripts[id]
	if !ok {
		return "", youtube.ErrNoTranscript
	}
	return t, nil
}

func (f *fakeYouTube) KeyState() youtube.KeyState {
	return youtube.KeyState{Total: 1}
}

var _ youtube.API = (*fakeYouTube)(nil)
