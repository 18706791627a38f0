package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ytplay-cli/ytplay/player"
	"github.com/ytplay-cli/ytplay/provider"
	"github.com/ytplay-cli/ytplay/track"
	"github.com/ytplay-cli/ytplay/util"
)

// TrackPicker chooses one track out of a result list.
type TrackPicker func([]track.Track) mo.Option[track.Track]

// Player plays the picked track when Options.Play is set.
type Player interface {
	Play(ctx context.Context, url, duration string) (player.Outcome, error)
}

type Options struct {
	Out      io.Writer
	Searcher provider.Searcher
	// Provider is the searcher's name, echoed in JSON output.
	Provider string
	Query    string
	Limit    int
	Json     bool
	// TrackPicker narrows the results to a single track. All results are kept when absent.
	TrackPicker mo.Option[TrackPicker]
	// Resolver, when set, adds the direct stream URL of every kept track.
	Resolver mo.Option[player.Resolver]
	// Play streams the picked track after printing it.
	Play   bool
	Player Player
}

// ParseTrackPicker parses a picker description:
// "first", "last", a zero-based index, or @substring@ matched against titles.
func ParseTrackPicker(description string) (TrackPicker, error) {
	switch description {
	case "first":
		return func(tracks []track.Track) mo.Option[track.Track] {
			if len(tracks) == 0 {
				return mo.None[track.Track]()
			}
			return mo.Some(tracks[0])
		}, nil
	case "last":
		return func(tracks []track.Track) mo.Option[track.Track] {
			if len(tracks) == 0 {
				return mo.None[track.Track]()
			}
			return mo.Some(tracks[len(tracks)-1])
		}, nil
	}

	if len(description) > 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(tracks []track.Track) mo.Option[track.Track] {
			t, ok := lo.Find(tracks, func(t track.Track) bool {
				return strings.Contains(strings.ToLower(t.Title), sub)
			})
			if !ok {
				return mo.None[track.Track]()
			}
			return mo.Some(t)
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid track picker: %s", description)
	}

	return func(tracks []track.Track) mo.Option[track.Track] {
		if len(tracks) == 0 {
			return mo.None[track.Track]()
		}
		return mo.Some(tracks[util.Min(idx, uint64(len(tracks)-1))])
	}, nil
}
