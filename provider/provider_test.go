package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytplay-cli/ytplay/track"
)

func tracksOf(n int) []track.Track {
	tracks := make([]track.Track, n)
	for i := range tracks {
		id := fmt.Sprintf("id%d", i)
		tracks[i] = track.Track{Title: fmt.Sprintf("Track %d", i), ID: id, URL: track.WatchURL(id), Duration: "3:45", Author: "Author"}
	}
	return tracks
}

func TestBuiltins(t *testing.T) {
	Convey("Builtins", t, func() {
		Convey("Should be sorted by name", func() {
			So(Names(), ShouldResemble, []string{"youtube", "ytdlp", "ytmusic"})
		})

		Convey("Get should find a provider by name", func() {
			p, ok := Get("ytmusic")
			So(ok, ShouldBeTrue)
			So(p.String(), ShouldEqual, "ytmusic")

			s, err := p.CreateSearcher()
			So(err, ShouldBeNil)
			So(s, ShouldNotBeNil)
		})

		Convey("Get should report unknown providers", func() {
			_, ok := Get("soundcloud")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a searcher", t, func() {
		ctx := context.Background()

		Convey("Results keep the provider order", func() {
			s := SearcherFunc(func(context.Context, string) ([]track.Track, error) {
				return tracksOf(3), nil
			})
			res := Search(ctx, s, "lofi beats", 10)
			So(res, ShouldHaveLength, 3)
			So(res[0].ID, ShouldEqual, "id0")
			So(res[2].ID, ShouldEqual, "id2")
		})

		Convey("Results are capped at ten", func() {
			s := SearcherFunc(func(context.Context, string) ([]track.Track, error) {
				return tracksOf(25), nil
			})
			So(Search(ctx, s, "lofi", 50), ShouldHaveLength, MaxResults)
			So(Search(ctx, s, "lofi", 0), ShouldHaveLength, MaxResults)
			So(Search(ctx, s, "lofi", 4), ShouldHaveLength, 4)
		})

		Convey("Provider errors become an empty result", func() {
			s := SearcherFunc(func(context.Context, string) ([]track.Track, error) {
				return nil, errors.New("network unreachable")
			})
			res := Search(ctx, s, "lofi", 10)
			So(res, ShouldNotBeNil)
			So(res, ShouldBeEmpty)
		})

		Convey("The query reaches the provider unchanged", func() {
			var got string
			s := SearcherFunc(func(_ context.Context, q string) ([]track.Track, error) {
				got = q
				return nil, nil
			})
			Search(ctx, s, "zzzzxyq123", 10)
			So(got, ShouldEqual, "zzzzxyq123")
		})
	})
}

func TestParseYtDlpLines(t *testing.T) {
	Convey("parseYtDlpLines", t, func() {
		out := "abc\tFirst\tSomeone\t225.0\n" +
			"broken line\n" +
			"def\tSecond\tOther\tNA\n" +
			"ghi\tThird\tLong\t3723\n"

		tracks := parseYtDlpLines(out)
		So(tracks, ShouldHaveLength, 3)

		So(tracks[0], ShouldResemble, track.Track{
			Title:    "First",
			ID:       "abc",
			URL:      "https://www.youtube.com/watch?v=abc",
			Duration: "3:45",
			Author:   "Someone",
		})
		So(tracks[1].Duration, ShouldBeEmpty)
		So(tracks[2].Duration, ShouldEqual, "1:02:03")

		So(parseYtDlpLines(""), ShouldBeEmpty)
	})
}
