package inline

import (
	"encoding/json"
	"io"

	"github.com/ytplay-cli/ytplay/track"
)

type Track struct {
	// Provider is the name of the search provider.
	Provider string `json:"provider"`
	// Track is the search result.
	Track track.Track `json:"track"`
	// Stream is the direct audio URL, present when streams were requested.
	Stream string `json:"stream,omitempty" jsonschema:"description=Direct audio URL. Expires after a few hours."`
}

type Output struct {
	Query  string   `json:"query"`
	Result []*Track `json:"result"`
}

func writeJson(out io.Writer, result []*Track, query string) error {
	if result == nil {
		result = []*Track{}
	}

	return json.NewEncoder(out).Encode(&Output{
		Query:  query,
		Result: result,
	})
}
