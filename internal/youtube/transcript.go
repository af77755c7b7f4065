package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v5"
)

const maxPageBytes = 8 << 20

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// Transcript returns the plain text of a video's captions, preferring a
// manual English track over auto-generated ones. Videos without captions
// return ErrNoTranscript.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	watch, err := url.Parse(c.opts.WatchURL)
	if err != nil {
		return "", fmt.Errorf("transcript: watch url: %w", err)
	}
	q := watch.Query()
	q.Set("v", videoID)
	watch.RawQuery = q.Encode()

	page, err := c.fetch(ctx, watch.String())
	if err != nil {
		return "", fmt.Errorf("transcript: watch page: %w", err)
	}
	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return "", err
	}
	track, ok := pickTrack(tracks)
	if !ok {
		return "", ErrNoTranscript
	}

	trackURL, err := watch.Parse(track.BaseURL)
	if err != nil {
		return "", fmt.Errorf("transcript: track url: %w", err)
	}
	body, err := c.fetch(ctx, trackURL.String())
	if err != nil {
		return "", fmt.Errorf("transcript: captions: %w", err)
	}
	text, err := parseTimedText(body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoTranscript
	}
	return text, nil
}

// parseCaptionTracks pulls the captionTracks array out of the player response
// embedded in a watch page.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	const marker = `"captionTracks":`
	s := string(page)
	i := strings.Index(s, marker)
	if i < 0 {
		return nil, ErrNoTranscript
	}
	var tracks []captionTrack
	if err := json.NewDecoder(strings.NewReader(s[i+len(marker):])).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("transcript: decode caption tracks: %w", err)
	}
	return tracks, nil
}

func pickTrack(tracks []captionTrack) (captionTrack, bool) {
	var fallback *captionTrack
	for i := range tracks {
		t := tracks[i]
		if t.BaseURL == "" {
			continue
		}
		if strings.HasPrefix(t.LanguageCode, "en") {
			if t.Kind != "asr" {
				return t, true
			}
			if fallback == nil || !strings.HasPrefix(fallback.LanguageCode, "en") {
				fallback = &tracks[i]
			}
			continue
		}
		if fallback == nil {
			fallback = &tracks[i]
		}
	}
	if fallback == nil {
		return captionTrack{}, false
	}
	return *fallback, true
}

// parseTimedText flattens a timedtext XML document into space-joined text.
func parseTimedText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("transcript: parse captions: %w", err)
	}
	var parts []string
	doc.Find("text").Each(func(_ int, s *goquery.Selection) {
		// Caption text is entity-encoded twice.
		line := strings.Join(strings.Fields(html.UnescapeString(s.Text())), " ")
		if line != "" {
			parts = append(parts, line)
		}
	})
	return strings.Join(parts, " "), nil
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, backoff.Permanent(ErrNoTranscript)
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.opts.RetryInitial
	bo.MaxInterval = 10 * c.opts.RetryInitial

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.opts.MaxTries),
		backoff.WithMaxElapsedTime(min(c.opts.RetryMaxElapsed, 30*time.Second)),
	)
}
