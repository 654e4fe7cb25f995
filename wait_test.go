package qsearch

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWaitStrategies(t *testing.T) {
	Convey("Given wait-interval strategies", t, func() {
		rng := testRand(42)

		Convey("UniformWait stays inside its bounds", func() {
			uw := &UniformWait{Min: time.Millisecond, Max: 5 * time.Millisecond}
			for i := 0; i < 1000; i++ {
				d := uw.NextInterval(rng)
				So(d, ShouldBeGreaterThanOrEqualTo, time.Millisecond)
				So(d, ShouldBeLessThan, 5*time.Millisecond)
			}
		})

		Convey("UniformWait degenerates to Min when Max <= Min", func() {
			uw := &UniformWait{Min: time.Millisecond, Max: time.Millisecond}
			So(uw.NextInterval(rng), ShouldEqual, time.Millisecond)
		})

		Convey("ExponentialWait clamps to its bounds", func() {
			ew := &ExponentialWait{
				Mean: 2 * time.Millisecond,
				Min:  time.Millisecond,
				Max:  10 * time.Millisecond,
			}
			for i := 0; i < 1000; i++ {
				d := ew.NextInterval(rng)
				So(d, ShouldBeGreaterThanOrEqualTo, time.Millisecond)
				So(d, ShouldBeLessThanOrEqualTo, 10*time.Millisecond)
			}
		})
	})
}
