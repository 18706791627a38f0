package provider

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"github.com/ytplay-cli/ytplay/progress"
	"github.com/ytplay-cli/ytplay/track"
	"github.com/ytplay-cli/ytplay/where"
)

// ytDlpFields is the --print template; one tab separated line per entry.
const ytDlpFields = "%(id)s\t%(title)s\t%(uploader,channel)s\t%(duration)s"

// ytDlp searches through yt-dlp's ytsearchN: pseudo URL. Slower, but survives web client changes.
type ytDlp struct{}

func newYtDlp() *ytDlp {
	return &ytDlp{}
}

func (y *ytDlp) Search(ctx context.Context, query string) ([]track.Track, error) {
	res, err := ytdlp.New().
		FlatPlaylist().
		Print(ytDlpFields).
		PlaylistItems(fmt.Sprintf("1-%d", MaxResults)).
		CacheDir(where.Cache()).
		NoWarnings().
		IgnoreConfig().
		Run(ctx, fmt.Sprintf("ytsearch%d:%s", MaxResults, query))
	if err != nil {
		return nil, err
	}

	return parseYtDlpLines(res.Stdout), nil
}

// parseYtDlpLines turns ytDlpFields output into tracks, skipping malformed lines.
func parseYtDlpLines(out string) []track.Track {
	var tracks []track.Track

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 4 || parts[0] == "" {
			continue
		}

		var duration string
		if secs, err := strconv.ParseFloat(parts[3], 64); err == nil {
			duration = progress.Timestamp(int(math.Round(secs)))
		}

		tracks = append(tracks, track.Track{
			Title:    parts[1],
			ID:       parts[0],
			URL:      track.WatchURL(parts[0]),
			Duration: duration,
			Author:   parts[2],
		})
	}

	return tracks
}
