package youtube

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Transcript(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch":
			assert.Equal(t, "vid1", r.URL.Query().Get("v"))
			fmt.Fprint(w, `<html><script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{
				"captionTracks":[
					{"baseUrl":"/api/timedtext?v=vid1&lang=de","languageCode":"de","name":{"runs":[{"text":"German"}]}},
					{"baseUrl":"/api/timedtext?v=vid1&lang=en","languageCode":"en","kind":"asr"}],
				"audioTracks":[]}}};</script></html>`)
		case "/api/timedtext":
			assert.Equal(t, "en", r.URL.Query().Get("lang"))
			fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8" ?><transcript>`+
				`<text start="0" dur="1.5">this video is sponsored by &amp;#39;NordVPN&amp;#39;</text>`+
				`<text start="1.5" dur="2">use   code SAVE10</text></transcript>`)
		default:
			http.NotFound(w, r)
		}
	})

	got, err := c.Transcript(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "this video is sponsored by 'NordVPN' use code SAVE10", got)
}

func TestClient_Transcript_NoCaptions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><script>var ytInitialPlayerResponse = {"videoDetails":{}};</script></html>`)
	})

	_, err := c.Transcript(context.Background(), "vid1")
	assert.ErrorIs(t, err, ErrNoTranscript)
}

func TestPickTrack(t *testing.T) {
	tests := []struct {
		name   string
		tracks []captionTrack
		want   string
		ok     bool
	}{
		{"none", nil, "", false},
		{"manual english wins", []captionTrack{
			{BaseURL: "asr", LanguageCode: "en", Kind: "asr"},
			{BaseURL: "manual", LanguageCode: "en-GB"},
		}, "manual", true},
		{"asr english over other language", []captionTrack{
			{BaseURL: "fr", LanguageCode: "fr"},
			{BaseURL: "asr", LanguageCode: "en", Kind: "asr"},
		}, "asr", true},
		{"first track when no english", []captionTrack{
			{BaseURL: "fr", LanguageCode: "fr"},
			{BaseURL: "es", LanguageCode: "es"},
		}, "fr", true},
		{"tracks without url are skipped", []captionTrack{{LanguageCode: "en"}}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickTrack(tt.tracks)
			if ok != tt.ok || got.BaseURL != tt.want {
				t.Errorf("pickTrack() = (%q, %v), want (%q, %v)", got.BaseURL, ok, tt.want, tt.ok)
			}
		})
	}
}
