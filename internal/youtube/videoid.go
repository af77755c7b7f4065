package youtube

import (
	"net/url"
	"strings"
)

// ExtractVideoID returns the video ID in a watch, mobile or youtu.be link,
// or "" when rawURL is not a recognized YouTube URL.
func ExtractVideoID(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Hostname()) {
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	case "www.youtube.com", "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		// /shorts/<id> and /embed/<id>
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 && (parts[0] == "shorts" || parts[0] == "embed") {
			return parts[1]
		}
	}
	return ""
}
