package qsearch

import (
	"context"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPseudoQubitRegister(t *testing.T) {
	Convey("Given a pseudo-qubit register", t, func() {
		wait := &UniformWait{Min: 100 * time.Microsecond, Max: 300 * time.Microsecond}

		Convey("A snapshot has exactly n elements, each 0 or 1", func() {
			for _, n := range []int{1, 2, 7, 32, 64} {
				Convey(fmt.Sprintf("With width %d", n), func() {
					r := NewPseudoQubitRegister(n, wait, 1.0, testRand(uint64(n)))
					s := r.Snapshot()

					So(len(s), ShouldEqual, n)
					for _, b := range s {
						So(b == 0 || b == 1, ShouldBeTrue)
					}
				})
			}
		})

		Convey("Snapshots never block evolution", func() {
			r := NewPseudoQubitRegister(16, wait, 1.0, testRand(7))
			r.Start(context.Background())

			for i := 0; i < 50; i++ {
				s := r.Snapshot()
				So(len(s), ShouldEqual, 16)
			}
			r.Stop()
		})

		Convey("Stop halts every qubit before returning", func() {
			r := NewPseudoQubitRegister(16, wait, 1.0, testRand(8))
			r.Start(context.Background())
			time.Sleep(2 * time.Millisecond)
			r.Stop()

			// With all loops stopped the bits must be frozen; any
			// surviving goroutine would flip within a few intervals.
			before := r.Snapshot()
			time.Sleep(5 * time.Millisecond)
			after := r.Snapshot()

			So(after.Equal(before), ShouldBeTrue)
		})

		Convey("Stop is idempotent", func() {
			r := NewPseudoQubitRegister(4, wait, 1.0, testRand(9))
			r.Start(context.Background())
			r.Stop()
			So(func() { r.Stop() }, ShouldNotPanic)
		})

		Convey("SetBits copies a snapshot into the register", func() {
			r := NewPseudoQubitRegister(8, wait, 0, testRand(10))
			seed := Snapshot{1, 0, 1, 1, 0, 0, 1, 0}
			r.SetBits(seed)

			So(r.Snapshot().Equal(seed), ShouldBeTrue)
		})

		Convey("Flip probability bias applies to all qubits", func() {
			r := NewPseudoQubitRegister(8, wait, 0.8, testRand(11))
			r.ScaleFlipProbability(0.5)
			for _, pq := range r.qubits {
				So(pq.FlipProbability(), ShouldAlmostEqual, 0.4, 1e-9)
			}

			r.ResetFlipProbability()
			for _, pq := range r.qubits {
				So(pq.FlipProbability(), ShouldAlmostEqual, 0.8, 1e-9)
			}
		})
	})
}
