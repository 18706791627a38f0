package track

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTrack(t *testing.T) {
	Convey("Given a track", t, func() {
		tr := Track{
			Title:    "lofi hip hop radio",
			ID:       "jfKfPfyJRdk",
			URL:      WatchURL("jfKfPfyJRdk"),
			Duration: "3:45",
			Author:   "Lofi Girl",
		}

		Convey("String renders the selection label", func() {
			So(tr.String(), ShouldEqual, "lofi hip hop radio - Lofi Girl [3:45]")
		})

		Convey("WatchURL points at the watch page", func() {
			So(tr.URL, ShouldEqual, "https://www.youtube.com/watch?v=jfKfPfyJRdk")
		})
	})
}
