package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytplay-cli/ytplay/key"
	"github.com/ytplay-cli/ytplay/mini"
	"github.com/ytplay-cli/ytplay/player"
	"github.com/ytplay-cli/ytplay/provider"
)

// newSearcher creates the searcher of the configured provider.
func newSearcher() (provider.Searcher, string, error) {
	name := viper.GetString(key.SearchProvider)

	p, ok := provider.Get(name)
	if !ok {
		return nil, "", fmt.Errorf("unknown provider %q, available options are: %v", name, provider.Names())
	}

	s, err := p.CreateSearcher()
	if err != nil {
		return nil, "", err
	}

	return s, p.Name, nil
}

// runMini starts the interactive loop.
func runMini(cmd *cobra.Command) {
	searcher, _, err := newSearcher()
	handleErr(err)

	p, err := player.Default()
	handleErr(err)

	CheckDependencies(p.Decoder().Name())

	handleErr(mini.Run(context.Background(), &mini.Options{
		Searcher: searcher,
		Player:   p,
		Out:      cmd.OutOrStdout(),
		Limit:    viper.GetInt(key.SearchLimit),
	}))
}
