package youtube

import (
	"time"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/model"
)

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func bestThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*ytapi.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

func videoFromAPI(v *ytapi.Video) model.Video {
	out := model.Video{VideoID: v.Id, Tags: []string{}}
	if s := v.Snippet; s != nil {
		out.Title = s.Title
		out.Description = s.Description
		out.ChannelID = s.ChannelId
		out.ChannelTitle = s.ChannelTitle
		out.PublishedAt = parseTime(s.PublishedAt)
		out.Thumbnail = bestThumbnail(s.Thumbnails)
		if s.Tags != nil {
			out.Tags = s.Tags
		}
	}
	if st := v.Statistics; st != nil {
		out.ViewCount = int64(st.ViewCount)
		out.LikeCount = int64(st.LikeCount)
		out.CommentCount = int64(st.CommentCount)
	}
	if cd := v.ContentDetails; cd != nil {
		out.DurationSeconds = analysis.ParseDuration(cd.Duration)
	}
	return out
}

func commentFromAPI(c *ytapi.Comment) model.Comment {
	out := model.Comment{ID: c.Id}
	if s := c.Snippet; s != nil {
		out.Author = s.AuthorDisplayName
		if s.AuthorChannelId != nil {
			out.AuthorChannelID = s.AuthorChannelId.Value
		}
		out.Text = s.TextDisplay
		if out.Text == "" {
			out.Text = s.TextOriginal
		}
		out.LikeCount = s.LikeCount
		out.PublishedAt = parseTime(s.PublishedAt)
		out.UpdatedAt = parseTime(s.UpdatedAt)
		out.ParentID = s.ParentId
	}
	return out
}

func channelFromAPI(ch *ytapi.Channel) model.Channel {
	out := model.Channel{ChannelID: ch.Id}
	if s := ch.Snippet; s != nil {
		out.Title = s.Title
		out.Description = s.Description
		out.CustomURL = s.CustomUrl
		out.Country = s.Country
		out.PublishedAt = parseTime(s.PublishedAt)
		out.Thumbnail = bestThumbnail(s.Thumbnails)
	}
	if st := ch.Statistics; st != nil {
		out.SubscriberCount = int64(st.SubscriberCount)
		out.VideoCount = int64(st.VideoCount)
		out.ViewCount = int64(st.ViewCount)
	}
	return out
}
