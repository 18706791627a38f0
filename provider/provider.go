// Package provider manages the built-in search providers and the adapter the session loop calls.
package provider

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/ytplay-cli/ytplay/track"
	"golang.org/x/exp/slices"
)

// Searcher turns a query into tracks ranked by the platform.
type Searcher interface {
	Search(ctx context.Context, query string) ([]track.Track, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string) ([]track.Track, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, query string) ([]track.Track, error) {
	return f(ctx, query)
}

// Provider represents a search source.
type Provider struct {
	ID             string
	Name           string
	CreateSearcher func() (Searcher, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers sorted by name.
func Builtins() []*Provider {
	providers := []*Provider{
		{
			ID:   "youtube",
			Name: "youtube",
			CreateSearcher: func() (Searcher, error) {
				return newYouTube(), nil
			},
		},
		{
			ID:   "ytmusic",
			Name: "ytmusic",
			CreateSearcher: func() (Searcher, error) {
				return newYTMusic(), nil
			},
		},
		{
			ID:   "ytdlp",
			Name: "ytdlp",
			CreateSearcher: func() (Searcher, error) {
				return newYtDlp(), nil
			},
		},
	}

	slices.SortFunc(providers, func(a, b *Provider) int {
		return strings.Compare(a.Name, b.Name)
	})

	return providers
}

// Names lists the names of the built-in providers.
func Names() []string {
	return lo.Map(Builtins(), func(p *Provider, _ int) string {
		return p.Name
	})
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.Name == name
	})
}
