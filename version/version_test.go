package version

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order by major, minor and patch", func() {
			So(compare("0.2.0", "0.1.9"), ShouldEqual, 1)
			So(compare("v1.0.0", "1.0.0"), ShouldEqual, 0)
			So(compare("1.2.3", "1.10.0"), ShouldEqual, -1)
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func compare(a, b string) int {
	c, err := Compare(a, b)
	So(err, ShouldBeNil)
	return c
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		status := http.StatusOK
		body := `{"tag_name":"v1.4.2"}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = fmt.Fprint(w, body)
		}))
		defer srv.Close()

		old := ReleasesURL
		ReleasesURL = srv.URL
		defer func() { ReleasesURL = old }()

		Convey("The tag should be returned without its prefix", func() {
			v, err := fetchLatest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.4.2")
		})

		Convey("An empty tag should be an error", func() {
			body = `{}`
			_, err := fetchLatest(context.Background())
			So(err, ShouldNotBeNil)
		})

		Convey("A non-200 answer should be an error", func() {
			status = http.StatusForbidden
			_, err := fetchLatest(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}
