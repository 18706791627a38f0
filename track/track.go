// Package track defines the search result record shared by providers, prompts and the player.
package track

import "fmt"

// Track is one search result. Providers produce it and nothing modifies it afterwards.
type Track struct {
	Title    string `json:"title" jsonschema:"description=Title of the video."`
	ID       string `json:"id" jsonschema:"description=Video identifier on the platform."`
	URL      string `json:"url" jsonschema:"description=Watch page URL handed to the resolver."`
	Duration string `json:"duration" jsonschema:"description=Duration as M:SS or H:MM:SS. Empty when unknown."`
	Author   string `json:"author" jsonschema:"description=Channel or artist name."`
}

// WatchURL builds the canonical watch page URL for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// String renders the selection label.
func (t Track) String() string {
	return fmt.Sprintf("%s - %s [%s]", t.Title, t.Author, t.Duration)
}
