package mini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytplay-cli/ytplay/player"
	"github.com/ytplay-cli/ytplay/provider"
	"github.com/ytplay-cli/ytplay/track"
)

// scriptedPrompter replays canned answers and interrupts once they run out.
type scriptedPrompter struct {
	inputs  []string
	choices []int

	inputCalls  int
	selectCalls [][]string
}

func (p *scriptedPrompter) Input(string) (string, error) {
	p.inputCalls++
	if len(p.inputs) == 0 {
		return "", terminal.InterruptErr
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *scriptedPrompter) Select(_ string, options []string) (int, error) {
	p.selectCalls = append(p.selectCalls, options)
	if len(p.choices) == 0 {
		return 0, terminal.InterruptErr
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c, nil
}

type play struct {
	url, duration string
}

type scriptedPlayer struct {
	outcomes []player.Outcome
	errs     []error
	plays    []play
}

func (p *scriptedPlayer) Play(_ context.Context, url, duration string) (player.Outcome, error) {
	i := len(p.plays)
	p.plays = append(p.plays, play{url: url, duration: duration})

	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	if err != nil {
		return player.Outcome{}, err
	}
	return p.outcomes[i], nil
}

func tracks(n int) []track.Track {
	var ts []track.Track
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("id%d", i)
		ts = append(ts, track.Track{
			Title:    fmt.Sprintf("Lofi %d", i),
			ID:       id,
			URL:      track.WatchURL(id),
			Duration: "3:45",
			Author:   "Chillhop",
		})
	}
	return ts
}

func searcher(results map[string][]track.Track, queries *[]string) provider.Searcher {
	return provider.SearcherFunc(func(_ context.Context, query string) ([]track.Track, error) {
		*queries = append(*queries, query)
		return results[query], nil
	})
}

func TestRun(t *testing.T) {
	Convey("Given the session loop", t, func() {
		var (
			out     bytes.Buffer
			queries []string
			results = map[string][]track.Track{"lofi beats": tracks(3)}
		)

		run := func(p *scriptedPrompter, pl *scriptedPlayer) error {
			return Run(context.Background(), &Options{
				Searcher: searcher(results, &queries),
				Player:   pl,
				Prompter: p,
				Out:      &out,
			})
		}

		Convey("Stopping a track should present the same list again", func() {
			p := &scriptedPrompter{inputs: []string{"lofi beats"}, choices: []int{1}}
			pl := &scriptedPlayer{outcomes: []player.Outcome{{StoppedByUser: true}}}

			So(run(p, pl), ShouldBeNil)
			So(pl.plays, ShouldResemble, []play{{url: "https://www.youtube.com/watch?v=id2", duration: "3:45"}})
			So(p.selectCalls, ShouldHaveLength, 2)
			So(p.selectCalls[1], ShouldResemble, p.selectCalls[0])
			So(p.selectCalls[0], ShouldHaveLength, 4)
			So(p.selectCalls[0][3], ShouldEqual, newSearch)
			So(queries, ShouldResemble, []string{"lofi beats"})
			So(p.inputCalls, ShouldEqual, 1)
		})

		Convey("A track that finishes should return to the query prompt", func() {
			p := &scriptedPrompter{inputs: []string{"lofi beats"}, choices: []int{0}}
			pl := &scriptedPlayer{outcomes: []player.Outcome{{StoppedByUser: false}}}

			So(run(p, pl), ShouldBeNil)
			So(pl.plays, ShouldHaveLength, 1)
			So(p.selectCalls, ShouldHaveLength, 1)
			So(p.inputCalls, ShouldEqual, 2)
		})

		Convey("No results should re-prompt without a selection", func() {
			p := &scriptedPrompter{inputs: []string{"zzzzxyq123"}}

			So(run(p, &scriptedPlayer{}), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "No results found")
			So(p.selectCalls, ShouldBeEmpty)
			So(p.inputCalls, ShouldEqual, 2)
		})

		Convey("A blank query should not be searched", func() {
			p := &scriptedPrompter{inputs: []string{"   ", ""}}

			So(run(p, &scriptedPlayer{}), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Please enter a search query")
			So(queries, ShouldBeEmpty)
			So(p.inputCalls, ShouldEqual, 3)
		})

		Convey("The query should be trimmed", func() {
			p := &scriptedPrompter{inputs: []string{"  lofi beats \t"}}

			So(run(p, &scriptedPlayer{}), ShouldBeNil)
			So(queries, ShouldResemble, []string{"lofi beats"})
		})

		Convey("Choosing new search should go back to the query prompt", func() {
			p := &scriptedPrompter{inputs: []string{"lofi beats"}, choices: []int{3}}
			pl := &scriptedPlayer{}

			So(run(p, pl), ShouldBeNil)
			So(pl.plays, ShouldBeEmpty)
			So(p.inputCalls, ShouldEqual, 2)
		})

		Convey("A playback error should be reported and the loop should continue", func() {
			p := &scriptedPrompter{inputs: []string{"lofi beats"}, choices: []int{0}}
			pl := &scriptedPlayer{errs: []error{&player.Error{Kind: player.KindExit, Code: 1}}}

			So(run(p, pl), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "decoder exited with code 1")
			So(p.inputCalls, ShouldEqual, 2)
		})

		Convey("Cancelling the query prompt should end the loop without error", func() {
			p := &scriptedPrompter{}

			So(run(p, &scriptedPlayer{}), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Goodbye")
		})

		Convey("An interrupted playback should end the loop", func() {
			p := &scriptedPrompter{inputs: []string{"lofi beats", "more"}, choices: []int{0}}
			pl := &scriptedPlayer{errs: []error{player.ErrInterrupted}}

			So(run(p, pl), ShouldBeNil)
			So(p.inputCalls, ShouldEqual, 1)
		})

		Convey("A search failure should read as no results", func() {
			failing := provider.SearcherFunc(func(context.Context, string) ([]track.Track, error) {
				return nil, errors.New("connection reset")
			})
			p := &scriptedPrompter{inputs: []string{"lofi beats"}}

			err := Run(context.Background(), &Options{Searcher: failing, Player: &scriptedPlayer{}, Prompter: p, Out: &out})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "No results found")
			So(strings.Contains(out.String(), "connection reset"), ShouldBeFalse)
		})
	})
}

func TestRunCancelled(t *testing.T) {
	Convey("A cancelled context should end the loop with its error", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, &Options{Prompter: &scriptedPrompter{}, Out: &bytes.Buffer{}})
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}
