package player

import (
	"context"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"github.com/ytplay-cli/ytplay/where"
)

// Resolver turns a watch page URL into a direct, time-limited audio stream URL.
// An empty result with a nil error means the page has no playable stream.
type Resolver interface {
	Resolve(ctx context.Context, url string) (string, error)
}

// YtDlp resolves stream URLs with yt-dlp.
type YtDlp struct {
	// Format is the yt-dlp format selector, "bestaudio" when empty.
	Format string
}

// Resolve prints the URL of the selected format without downloading anything.
func (y *YtDlp) Resolve(ctx context.Context, url string) (string, error) {
	format := y.Format
	if format == "" {
		format = "bestaudio"
	}

	res, err := ytdlp.New().
		Format(format).
		Print("%(url)s").
		NoPlaylist().
		CacheDir(where.Cache()).
		NoWarnings().
		IgnoreConfig().
		Run(ctx, url)
	if err != nil {
		return "", err
	}

	return firstLine(res.Stdout), nil
}

// firstLine returns the first non-blank line of out, trimmed.
func firstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
