package provider

import (
	"context"

	"github.com/ppalone/ytsearch"
	"github.com/ytplay-cli/ytplay/network"
	"github.com/ytplay-cli/ytplay/track"
)

// youTube searches the platform's web search endpoint directly.
type youTube struct {
	client *ytsearch.Client
}

func newYouTube() *youTube {
	return &youTube{client: ytsearch.NewClient(network.Client)}
}

func (y *youTube) Search(ctx context.Context, query string) ([]track.Track, error) {
	res, err := y.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	tracks := make([]track.Track, 0, len(res.Results))
	for _, v := range res.Results {
		if v.VideoID == "" {
			continue
		}

		tracks = append(tracks, track.Track{
			Title:    v.Title,
			ID:       v.VideoID,
			URL:      track.WatchURL(v.VideoID),
			Duration: v.Duration,
			Author:   v.Channel,
		})
	}

	return tracks, nil
}
