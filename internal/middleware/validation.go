package middleware

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"
)

// Input limits for path, query and body parameters.
const (
	VideoIDLen       = 11
	MaxChannelIDLen  = 32
	MaxTextLen       = 5000
	MaxSearchLen     = 200
	MaxCompareIDs    = 10
	MaxSearchResults = 50
)

var (
	// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelIDRe matches YouTube channel IDs: starts with UC, alphanumeric, dash, underscore.
	channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) != VideoIDLen {
		return "", "videoId must be 11 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a channel ID is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 32 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId must start with UC and contain only letters, digits, dash or underscore"
	}
	return id, ""
}

// ValidateChannelIDs validates a comparison list, dropping duplicates.
func ValidateChannelIDs(ids []string) ([]string, string) {
	if len(ids) < 2 {
		return nil, "at least 2 channel_ids are required"
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, msg := ValidateChannelID(raw)
		if msg != "" {
			return nil, msg
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) > MaxCompareIDs {
		return nil, "at most 10 channel_ids can be compared"
	}
	return out, ""
}

// ValidateText checks free text submitted for analysis.
func ValidateText(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "text is required"
	}
	if !utf8.ValidString(text) {
		return "", "text must be valid UTF-8"
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return "", "text must be at most 5000 characters"
	}
	return text, ""
}

// ValidateQuery checks a search query.
func ValidateQuery(q string) (string, string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", "q is required"
	}
	if utf8.RuneCountInString(q) > MaxSearchLen {
		return "", "q must be at most 200 characters"
	}
	return q, ""
}

// ParseLimit parses an optional positive integer query value. Empty input
// returns def; values above upper are clamped.
func ParseLimit(raw string, def, upper int) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, "must be a positive integer"
	}
	return min(n, upper), ""
}
