package provider

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ytplay-cli/ytplay/log"
	"github.com/ytplay-cli/ytplay/track"
)

// MaxResults caps every result list shown to the user.
const MaxResults = 10

// searchTimeout bounds a single provider call.
const searchTimeout = 20 * time.Second

// Search runs query against s and returns at most limit tracks (never more than MaxResults) in provider order.
// The caller rejects blank queries. Provider failures are logged and reported as no results.
func Search(ctx context.Context, s Searcher, query string, limit int) []track.Track {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	tracks, err := s.Search(ctx, query)
	if err != nil {
		log.WithFields(logrus.Fields{"query": query}).Warnf("search failed: %v", err)
		return []track.Track{}
	}

	if len(tracks) > limit {
		tracks = tracks[:limit]
	}

	log.WithFields(logrus.Fields{"query": query, "results": len(tracks)}).Debug("search finished")
	return tracks
}
