package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given the semantic version comparator", t, func() {
		Convey("Equal versions compare as 0", func() {
			c, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("A 'v' prefix is ignored", func() {
			c, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Each segment is compared numerically", func() {
			for _, pair := range [][2]string{
				{"2.0.0", "1.9.9"},
				{"1.10.0", "1.9.0"},
				{"0.1.1", "0.1.0"},
			} {
				c, err := Compare(pair[0], pair[1])
				So(err, ShouldBeNil)
				So(c, ShouldEqual, 1)

				c, err = Compare(pair[1], pair[0])
				So(err, ShouldBeNil)
				So(c, ShouldEqual, -1)
			}
		})

		Convey("Malformed input is an error", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
