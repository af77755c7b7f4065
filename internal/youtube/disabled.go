package youtube

import (
	"context"

	"github.com/asal3ti/charizard/internal/model"
)

// Disabled is the API used when no keys are configured. Every call fails
// with ErrNoKeys so the rest of the server keeps working.
type Disabled struct{}

var _ API = Disabled{}

func (Disabled) Video(context.Context, string) (model.Video, error) {
	return model.Video{}, ErrNoKeys
}

func (Disabled) Videos(context.Context, []string) ([]model.Video, error) {
	return nil, ErrNoKeys
}

func (Disabled) Comments(context.Context, string, CommentOptions) ([]model.Comment, error) {
	return nil, ErrNoKeys
}

func (Disabled) Channel(context.Context, string) (model.Channel, error) {
	return model.Channel{}, ErrNoKeys
}

func (Disabled) ChannelVideos(context.Context, string, int) ([]string, error) {
	return nil, ErrNoKeys
}

func (Disabled) Search(context.Context, string, SearchOptions) ([]SearchResult, error) {
	return nil, ErrNoKeys
}

func (Disabled) Transcript(context.Context, string) (string, error) {
	return "", ErrNoKeys
}

func (Disabled) KeyState() KeyState {
	return KeyState{Exhausted: true}
}
