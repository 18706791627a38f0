package progress

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSeconds(t *testing.T) {
	Convey("Seconds", t, func() {
		Convey("Should parse minutes and seconds", func() {
			So(Seconds("3:45"), ShouldEqual, 225)
			So(Seconds("0:07"), ShouldEqual, 7)
		})

		Convey("Should parse hours, minutes and seconds", func() {
			So(Seconds("1:02:03"), ShouldEqual, 3723)
		})

		Convey("Should yield zero for unknown shapes", func() {
			So(Seconds("bad"), ShouldEqual, 0)
			So(Seconds(""), ShouldEqual, 0)
			So(Seconds("1:2:3:4"), ShouldEqual, 0)
			So(Seconds("3:"), ShouldEqual, 0)
			So(Seconds("a:10"), ShouldEqual, 0)
			So(Seconds("-1:10"), ShouldEqual, 0)
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		So(Format(0), ShouldEqual, "0:00")
		So(Format(225), ShouldEqual, "3:45")
		So(Format(3723), ShouldEqual, "62:03")
		So(Format(-5), ShouldEqual, "0:00")
	})

	Convey("Timestamp", t, func() {
		So(Timestamp(225), ShouldEqual, "3:45")
		So(Timestamp(3723), ShouldEqual, "1:02:03")
	})
}

func TestRender(t *testing.T) {
	Convey("Render", t, func() {
		Convey("At the start the bar is empty", func() {
			line := Render(0, 100)
			So(line, ShouldStartWith, strings.Repeat(empty, Width)+" ")
			So(line, ShouldEndWith, "0:00 / 1:40 0%")
		})

		Convey("At the end the bar is full", func() {
			line := Render(100, 100)
			So(line, ShouldStartWith, strings.Repeat(filled, Width)+" ")
			So(line, ShouldEndWith, "1:40 / 1:40 100%")
		})

		Convey("Halfway fills half the cells", func() {
			line := Render(50, 100)
			So(line, ShouldStartWith, strings.Repeat(filled, 20)+strings.Repeat(empty, 20))
			So(line, ShouldEndWith, "50%")
		})

		Convey("Percent is floored", func() {
			So(Render(29, 100), ShouldEndWith, " 29%")
			So(Render(10, 225), ShouldEndWith, "0:10 / 3:45 4%")
		})

		Convey("Overflow is clamped at 100%", func() {
			So(Render(150, 100), ShouldEndWith, "100%")
		})

		Convey("A zero total does not panic and shows 0%", func() {
			So(func() { Render(50, 0) }, ShouldNotPanic)
			So(Render(50, 0), ShouldEndWith, "0:50 / 0:00 0%")
		})
	})
}
