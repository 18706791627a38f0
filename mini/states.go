package mini

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/ytplay-cli/ytplay/icon"
	"github.com/ytplay-cli/ytplay/provider"
	"github.com/ytplay-cli/ytplay/style"
	"github.com/ytplay-cli/ytplay/track"
	"github.com/ytplay-cli/ytplay/util"
)

type state int

const (
	queryState state = iota + 1
	searchState
	selectState
	playState
	quitState
)

func (s state) String() string {
	switch s {
	case queryState:
		return "query"
	case searchState:
		return "search"
	case selectState:
		return "select"
	case playState:
		return "play"
	case quitState:
		return "quit"
	default:
		return "unknown"
	}
}

// newSearch is the last choice of every result list.
const newSearch = "New search"

func (m *mini) handleQueryState() error {
	in, err := m.prompter.Input("Search music:")
	if err != nil {
		return err
	}

	query := strings.TrimSpace(in)
	if query == "" {
		m.printf("%s\n", style.Fg(style.WarningColor)("Please enter a search query"))
		return nil
	}

	m.query = query
	m.newState(searchState)
	return nil
}

func (m *mini) handleSearchState(ctx context.Context) error {
	erase := m.erasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Search), style.Fg(style.AccentColor)(m.query)))
	tracks := provider.Search(ctx, m.searcher, m.query, m.limit)
	erase()

	if len(tracks) == 0 {
		m.printf("%s No results found\n", icon.Get(icon.Fail))
		m.newState(queryState)
		return nil
	}

	m.tracks = tracks
	m.newState(selectState)
	return nil
}

func (m *mini) handleSelectState() error {
	options := lo.Map(m.tracks, func(t track.Track, _ int) string {
		return util.Truncate(t.String(), truncateAt-4)
	})
	options = append(options, newSearch)

	message := fmt.Sprintf("%s Found %s for %q:", icon.Get(icon.Music), util.Quantify(len(m.tracks), "track", "tracks"), m.query)
	index, err := m.prompter.Select(message, options)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(m.tracks) {
		m.newState(queryState)
		return nil
	}

	m.selected = m.tracks[index]
	m.newState(playState)
	return nil
}

func (m *mini) handlePlayState(ctx context.Context) error {
	m.printf("%s %s %s\n", icon.Get(icon.Play), style.Bold("Now playing:"), m.selected.String())
	m.printf("%s\n", style.Faint("Press Esc to stop"))

	outcome, err := m.player.Play(ctx, m.selected.URL, m.selected.Duration)
	if err != nil {
		return err
	}

	if outcome.StoppedByUser {
		m.newState(selectState)
	} else {
		m.newState(queryState)
	}

	return nil
}

// erasable prints a one-line status and returns a function that wipes it.
func (m *mini) erasable(msg string) (erase func()) {
	m.printf("\r%s", msg)
	return func() {
		m.printf("\r%s\r", strings.Repeat(" ", len(msg)))
	}
}
