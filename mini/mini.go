// Package mini implements the interactive search, select and play loop.
package mini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/ytplay-cli/ytplay/icon"
	"github.com/ytplay-cli/ytplay/log"
	"github.com/ytplay-cli/ytplay/player"
	"github.com/ytplay-cli/ytplay/provider"
	"github.com/ytplay-cli/ytplay/style"
	"github.com/ytplay-cli/ytplay/track"
	"github.com/ytplay-cli/ytplay/util"
)

var truncateAt = 100

// Player plays one track and reports whether the user cut it short.
type Player interface {
	Play(ctx context.Context, url, duration string) (player.Outcome, error)
}

type Options struct {
	Searcher provider.Searcher
	Player   Player
	// Prompter defaults to terminal prompts.
	Prompter Prompter
	// Out defaults to os.Stdout.
	Out io.Writer
	// Limit caps the result list, provider.MaxResults when zero.
	Limit int
}

type mini struct {
	searcher provider.Searcher
	player   Player
	prompter Prompter
	out      io.Writer
	limit    int

	state state

	query    string
	tracks   []track.Track
	selected track.Track
}

func newMini(options *Options) *mini {
	m := &mini{
		searcher: options.Searcher,
		player:   options.Player,
		prompter: options.Prompter,
		out:      options.Out,
		limit:    options.Limit,
		state:    queryState,
	}

	if m.prompter == nil {
		m.prompter = Survey()
	}
	if m.out == nil {
		m.out = os.Stdout
	}

	return m
}

func (m *mini) newState(s state) {
	log.Debugf("mini: %s -> %s", m.state, s)
	m.state = s
}

// Run loops until the user cancels a prompt, which is not an error.
// Failures of a single search or playback are reported and the loop starts over at the query.
func Run(ctx context.Context, options *Options) error {
	m := newMini(options)

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := m.handleState(ctx)

		switch {
		case err == nil:
		case errors.Is(err, terminal.InterruptErr), errors.Is(err, player.ErrInterrupted):
			m.newState(quitState)
		case errors.Is(err, context.Canceled):
			return err
		default:
			log.Error(err)
			m.printf("%s %s\n", icon.Get(icon.Fail), style.Fg(style.ErrorColor)(strings.TrimSpace(err.Error())))
			m.newState(queryState)
		}

		if m.state == quitState {
			m.printf("%s %s\n", icon.Get(icon.Bye), "Goodbye!")
			return nil
		}
	}
}

func (m *mini) handleState(ctx context.Context) error {
	switch m.state {
	case queryState:
		return m.handleQueryState()
	case searchState:
		return m.handleSearchState(ctx)
	case selectState:
		return m.handleSelectState()
	case playState:
		return m.handlePlayState(ctx)
	}

	return nil
}

func (m *mini) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
