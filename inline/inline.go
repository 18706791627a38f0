// Package inline implements the non-interactive, scriptable mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ytplay-cli/ytplay/log"
	"github.com/ytplay-cli/ytplay/provider"
	"github.com/ytplay-cli/ytplay/track"
)

// Run searches once, optionally picks a track, prints the result and optionally plays it.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	query := strings.TrimSpace(options.Query)
	if query == "" {
		return errors.New("query is empty")
	}

	tracks := provider.Search(ctx, options.Searcher, query, options.Limit)

	selected := tracks
	if options.TrackPicker.IsPresent() {
		picker := options.TrackPicker.MustGet()
		selected = nil
		if t, ok := picker(tracks).Get(); ok {
			selected = []track.Track{t}
		}
	}

	result := make([]*Track, len(selected))
	for i, t := range selected {
		result[i] = &Track{Provider: options.Provider, Track: t}
	}

	if resolver, ok := options.Resolver.Get(); ok {
		for _, r := range result {
			stream, err := resolver.Resolve(ctx, r.Track.URL)
			if err != nil {
				log.Warnf("failed to resolve stream for %s: %v", r.Track.URL, err)
				continue
			}
			r.Stream = stream
		}
	}

	if options.Json {
		if err := writeJson(options.Out, result, query); err != nil {
			return err
		}
	} else {
		for _, r := range result {
			line := r.Track.URL
			if r.Stream != "" {
				line = r.Stream
			}
			_, _ = fmt.Fprintln(options.Out, line)
		}
	}

	if !options.Play {
		return nil
	}

	switch len(selected) {
	case 0:
		return fmt.Errorf("no track found for %q", query)
	case 1:
	default:
		return errors.New("pick a single track to play")
	}

	_, err := options.Player.Play(ctx, selected[0].URL, selected[0].Duration)
	return err
}
