package youtube

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/asal3ti/charizard/internal/model"
	"github.com/asal3ti/charizard/pkg/hash"
)

// API is the subset of YouTube the analysis services depend on.
type API interface {
	Video(ctx context.Context, videoID string) (model.Video, error)
	Videos(ctx context.Context, videoIDs []string) ([]model.Video, error)
	Comments(ctx context.Context, videoID string, opts CommentOptions) ([]model.Comment, error)
	Channel(ctx context.Context, channelID string) (model.Channel, error)
	ChannelVideos(ctx context.Context, channelID string, max int) ([]string, error)
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
	Transcript(ctx context.Context, videoID string) (string, error)
	KeyState() KeyState
}

// CommentOptions controls comment thread fetching.
type CommentOptions struct {
	Max            int
	IncludeReplies bool
	Order          string // "relevance" or "time"
}

// SearchOptions controls video search.
type SearchOptions struct {
	Max   int
	Order string // "relevance", "date" or "viewCount"
}

// SearchResult is one video hit from a search.
type SearchResult struct {
	VideoID      string `json:"video_id"`
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	Title        string `json:"title"`
}

const (
	maxCommentPage = 100
	maxSearchPage  = 50
	maxVideoBatch  = 50
)

var (
	videoParts   = []string{"snippet", "statistics", "contentDetails"}
	channelParts = []string{"snippet", "statistics"}
)

// Options configures a Client.
type Options struct {
	Keys  []string
	Marks ExhaustionStore
	// RequestsPerSecond caps outgoing Data API calls. Zero means unlimited.
	RequestsPerSecond float64
	MaxTries          uint
	RetryInitial      time.Duration
	RetryMaxElapsed   time.Duration
	// Endpoint overrides the Data API base URL.
	Endpoint string
	// WatchURL overrides the watch page used to discover caption tracks.
	WatchURL   string
	HTTPClient *http.Client
	Logger     zerolog.Logger
	// OnCall is invoked once per logical call with the endpoint name and
	// outcome ("ok", "not_found", "quota", "error").
	OnCall func(endpoint, outcome string)
	// OnRotate is invoked when a key runs out of quota.
	OnRotate func(keyIndex int)
}

// Client talks to the YouTube Data API v3, rotating API keys as their quota
// runs out.
type Client struct {
	keys     *KeyRing
	opts     Options
	limiter  *rate.Limiter
	http     *http.Client
	log      zerolog.Logger
	mu       sync.Mutex
	services map[int]*ytapi.Service
}

var _ API = (*Client)(nil)

func New(opts Options) (*Client, error) {
	ring, err := NewKeyRing(opts.Keys, opts.Marks)
	if err != nil {
		return nil, err
	}
	if opts.MaxTries == 0 {
		opts.MaxTries = 3
	}
	if opts.RetryInitial == 0 {
		opts.RetryInitial = time.Second
	}
	if opts.RetryMaxElapsed == 0 {
		opts.RetryMaxElapsed = 30 * time.Second
	}
	if opts.WatchURL == "" {
		opts.WatchURL = "https://www.youtube.com/watch"
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	return &Client{
		keys:     ring,
		opts:     opts,
		limiter:  rate.NewLimiter(limit, 1),
		http:     hc,
		log:      opts.Logger,
		services: make(map[int]*ytapi.Service),
	}, nil
}

// KeyState reports which key is in use.
func (c *Client) KeyState() KeyState { return c.keys.State() }

func (c *Client) service(ctx context.Context, idx int, key string) (*ytapi.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if svc, ok := c.services[idx]; ok {
		return svc, nil
	}
	opts := []option.ClientOption{option.WithAPIKey(key)}
	if c.opts.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.opts.Endpoint))
	}
	// The service outlives the request that created it.
	svc, err := ytapi.NewService(context.WithoutCancel(ctx), opts...)
	if err != nil {
		return nil, err
	}
	c.services[idx] = svc
	return svc, nil
}

func (c *Client) observe(endpoint string, err error) {
	if c.opts.OnCall == nil {
		return
	}
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrQuotaExhausted):
		outcome = "quota"
	default:
		outcome = "error"
	}
	c.opts.OnCall(endpoint, outcome)
}

// call runs fn against the active key, retrying transient failures with
// exponential backoff and moving to the next key on quota errors.
func call[T any](ctx context.Context, c *Client, endpoint string, fn func(*ytapi.Service) (T, error)) (T, error) {
	var zero T
	for {
		key, idx, err := c.keys.Current(ctx)
		if err != nil {
			c.observe(endpoint, err)
			return zero, err
		}
		svc, err := c.service(ctx, idx, key)
		if err != nil {
			return zero, err
		}

		operation := func() (T, error) {
			if err := c.limiter.Wait(ctx); err != nil {
				return zero, backoff.Permanent(err)
			}
			v, err := fn(svc)
			if err != nil {
				if isQuotaError(err) || !isTransient(err) {
					return zero, backoff.Permanent(err)
				}
				c.log.Debug().Err(err).Str("endpoint", endpoint).Msg("transient youtube error, retrying")
				return zero, err
			}
			return v, nil
		}

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = c.opts.RetryInitial
		bo.MaxInterval = 10 * c.opts.RetryInitial

		v, err := backoff.Retry(ctx, operation,
			backoff.WithBackOff(bo),
			backoff.WithMaxTries(c.opts.MaxTries),
			backoff.WithMaxElapsedTime(c.opts.RetryMaxElapsed),
		)
		if err == nil {
			c.observe(endpoint, nil)
			return v, nil
		}
		if isQuotaError(err) {
			c.log.Warn().
				Str("endpoint", endpoint).
				Int("key_index", idx).
				Str("key", hash.KeyFingerprint(key)).
				Msg("youtube API key quota exceeded, rotating")
			if c.opts.OnRotate != nil {
				c.opts.OnRotate(idx)
			}
			c.keys.Rotate(ctx, idx)
			continue
		}
		err = classify(endpoint, err)
		c.observe(endpoint, err)
		return zero, err
	}
}

// Video fetches metadata for a single video.
func (c *Client) Video(ctx context.Context, videoID string) (model.Video, error) {
	videos, err := c.Videos(ctx, []string{videoID})
	if err != nil {
		return model.Video{}, err
	}
	if len(videos) == 0 {
		return model.Video{}, ErrNotFound
	}
	return videos[0], nil
}

// Videos fetches metadata for up to many videos, batching by 50 IDs. Unknown
// IDs are silently absent from the result.
func (c *Client) Videos(ctx context.Context, videoIDs []string) ([]model.Video, error) {
	out := make([]model.Video, 0, len(videoIDs))
	for start := 0; start < len(videoIDs); start += maxVideoBatch {
		batch := videoIDs[start:min(start+maxVideoBatch, len(videoIDs))]
		resp, err := call(ctx, c, "videos.list", func(svc *ytapi.Service) (*ytapi.VideoListResponse, error) {
			return svc.Videos.List(videoParts).Id(batch...).Context(ctx).Do()
		})
		if err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			out = append(out, videoFromAPI(item))
		}
	}
	return out, nil
}

// Comments pages through a video's comment threads until opts.Max top-level
// comments are collected. Replies returned inline with a thread follow their
// parent and do not count toward Max.
func (c *Client) Comments(ctx context.Context, videoID string, opts CommentOptions) ([]model.Comment, error) {
	if opts.Max <= 0 {
		opts.Max = maxCommentPage
	}
	if opts.Order == "" {
		opts.Order = "relevance"
	}
	parts := []string{"snippet"}
	if opts.IncludeReplies {
		parts = append(parts, "replies")
	}

	var (
		out      []model.Comment
		topLevel int
		token    string
	)
	for topLevel < opts.Max {
		pageSize := int64(min(maxCommentPage, opts.Max-topLevel))
		resp, err := call(ctx, c, "commentThreads.list", func(svc *ytapi.Service) (*ytapi.CommentThreadListResponse, error) {
			req := svc.CommentThreads.List(parts).
				VideoId(videoID).
				MaxResults(pageSize).
				Order(opts.Order).
				TextFormat("plainText").
				Context(ctx)
			if token != "" {
				req = req.PageToken(token)
			}
			return req.Do()
		})
		if err != nil {
			return nil, err
		}
		for _, thread := range resp.Items {
			if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
				continue
			}
			top := commentFromAPI(thread.Snippet.TopLevelComment)
			top.ReplyCount = thread.Snippet.TotalReplyCount
			out = append(out, top)
			topLevel++
			if opts.IncludeReplies && thread.Replies != nil {
				for _, r := range thread.Replies.Comments {
					reply := commentFromAPI(r)
					reply.ParentID = top.ID
					out = append(out, reply)
				}
			}
			if topLevel >= opts.Max {
				break
			}
		}
		token = resp.NextPageToken
		if token == "" || len(resp.Items) == 0 {
			break
		}
	}
	if out == nil {
		out = []model.Comment{}
	}
	return out, nil
}

// Channel fetches channel metadata and statistics.
func (c *Client) Channel(ctx context.Context, channelID string) (model.Channel, error) {
	resp, err := call(ctx, c, "channels.list", func(svc *ytapi.Service) (*ytapi.ChannelListResponse, error) {
		return svc.Channels.List(channelParts).Id(channelID).MaxResults(1).Context(ctx).Do()
	})
	if err != nil {
		return model.Channel{}, err
	}
	if len(resp.Items) == 0 {
		return model.Channel{}, ErrNotFound
	}
	return channelFromAPI(resp.Items[0]), nil
}

// ChannelVideos returns the IDs of a channel's newest uploads, newest first.
func (c *Client) ChannelVideos(ctx context.Context, channelID string, max int) ([]string, error) {
	if max <= 0 || max > maxSearchPage {
		max = maxSearchPage
	}
	resp, err := call(ctx, c, "search.list", func(svc *ytapi.Service) (*ytapi.SearchListResponse, error) {
		return svc.Search.List([]string{"id"}).
			ChannelId(channelID).
			Type("video").
			Order("date").
			MaxResults(int64(max)).
			Context(ctx).
			Do()
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// Search finds videos matching query, paging until opts.Max hits.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	if opts.Max <= 0 {
		opts.Max = 10
	}
	if opts.Order == "" {
		opts.Order = "relevance"
	}
	out := make([]SearchResult, 0, opts.Max)
	token := ""
	for len(out) < opts.Max {
		pageSize := int64(min(maxSearchPage, opts.Max-len(out)))
		resp, err := call(ctx, c, "search.list", func(svc *ytapi.Service) (*ytapi.SearchListResponse, error) {
			req := svc.Search.List([]string{"snippet"}).
				Q(query).
				Type("video").
				Order(opts.Order).
				MaxResults(pageSize).
				Context(ctx)
			if token != "" {
				req = req.PageToken(token)
			}
			return req.Do()
		})
		if err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			if item.Id == nil || item.Id.VideoId == "" || len(out) >= opts.Max {
				continue
			}
			r := SearchResult{VideoID: item.Id.VideoId}
			if item.Snippet != nil {
				r.ChannelID = item.Snippet.ChannelId
				r.ChannelTitle = item.Snippet.ChannelTitle
				r.Title = item.Snippet.Title
			}
			out = append(out, r)
		}
		token = resp.NextPageToken
		if token == "" || len(resp.Items) == 0 {
			break
		}
	}
	return out, nil
}
