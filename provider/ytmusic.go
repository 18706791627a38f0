package provider

import (
	"context"
	"strings"

	"github.com/raitonoberu/ytmusic"
	"github.com/ytplay-cli/ytplay/progress"
	"github.com/ytplay-cli/ytplay/track"
)

// ytMusic searches the music catalogue, which returns songs rather than arbitrary videos.
type ytMusic struct{}

func newYTMusic() *ytMusic {
	return &ytMusic{}
}

func (y *ytMusic) Search(ctx context.Context, query string) ([]track.Track, error) {
	var (
		tracks []track.Track
		err    error
		done   = make(chan struct{})
	)

	// The client has no context support; abandon it when ctx is done.
	go func() {
		defer close(done)

		res, searchErr := ytmusic.TrackSearch(query).Next()
		if searchErr != nil {
			err = searchErr
			return
		}

		for _, v := range res.Tracks {
			if v.VideoID == "" {
				continue
			}

			var artists []string
			for _, a := range v.Artists {
				artists = append(artists, a.Name)
			}

			tracks = append(tracks, track.Track{
				Title:    v.Title,
				ID:       v.VideoID,
				URL:      track.WatchURL(v.VideoID),
				Duration: progress.Timestamp(v.Duration),
				Author:   strings.Join(artists, ", "),
			})
		}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
		return tracks, err
	}
}
