package qsearch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAmplificationController(t *testing.T) {
	Convey("Given an amplification controller", t, func() {
		Convey("It exhausts within the iteration cap when nothing converges", func() {
			cfg := fastTestConfig()
			cfg.MaxIterations = 10

			p, _ := NewCandidatePopulation(cfg)
			never := OracleFunc(func(s Snapshot) (float64, error) { return 0, nil })
			c := NewAmplificationController(p, never, cfg)

			result := c.Run(context.Background())

			So(result.State, ShouldEqual, StateExhausted)
			So(result.Iterations, ShouldEqual, 10)
		})

		Convey("It converges when the goal threshold is met", func() {
			cfg := fastTestConfig()
			p, _ := NewCandidatePopulation(cfg)
			always := OracleFunc(func(s Snapshot) (float64, error) { return 1.0, nil })
			c := NewAmplificationController(p, always, cfg)

			result := c.Run(context.Background())

			So(result.State, ShouldEqual, StateConverged)
			So(result.BestScore, ShouldEqual, 1.0)
			So(result.Iterations, ShouldBeLessThanOrEqualTo, cfg.MaxIterations)
		})

		Convey("The best-seen score never regresses", func() {
			cfg := fastTestConfig()
			cfg.PopulationSize = 50
			cfg.MaxIterations = 30

			// Score by leading ones so there is a gradient to climb.
			gradient := OracleFunc(func(s Snapshot) (float64, error) {
				ones := 0
				for _, b := range s {
					if b != 1 {
						break
					}
					ones++
				}
				return float64(ones) / float64(len(s)), nil
			})

			p, _ := NewCandidatePopulation(cfg)
			pg := NewProgressGroup(1024)
			events := pg.Subscribe("test")
			c := NewAmplificationController(p, gradient, cfg, WithProgressGroup(pg))

			result := c.Run(context.Background())
			pg.Close()

			last := WorstScore
			var trace []Progress
			for ev := range events {
				trace = append(trace, ev)
				So(ev.BestScore, ShouldBeGreaterThanOrEqualTo, last)
				last = ev.BestScore
			}
			if testing.Verbose() && len(trace) > 0 {
				spew.Dump(trace[len(trace)-1])
			}

			So(result.BestScore, ShouldBeGreaterThanOrEqualTo, last-1e-9)
			So(result.State, ShouldNotEqual, StateRunning)
		})

		Convey("Sampling twice does not disturb the best-seen record", func() {
			cfg := fastTestConfig()
			p, _ := NewCandidatePopulation(cfg)
			c := NewAmplificationController(p, OracleFunc(func(s Snapshot) (float64, error) { return 0.5, nil }), cfg)

			before := c.bestScore
			p.SampleAll()
			p.SampleAll()

			So(c.bestScore, ShouldEqual, before)
			So(c.haveBest, ShouldBeFalse)
		})

		Convey("Oracle failures score worst-case without aborting the run", func() {
			cfg := fastTestConfig()
			cfg.MaxIterations = 5

			p, _ := NewCandidatePopulation(cfg)
			failing := OracleFunc(func(s Snapshot) (float64, error) {
				return 0, evaluationError("undecodable snapshot")
			})
			c := NewAmplificationController(p, failing, cfg)

			result := c.Run(context.Background())

			So(result.State, ShouldEqual, StateExhausted)
			So(result.BestScore, ShouldEqual, WorstScore)
			So(result.OracleErrors, ShouldEqual, int64(cfg.PopulationSize*cfg.MaxIterations))
		})

		Convey("An injected metrics sink sees every iteration", func() {
			cfg := fastTestConfig()
			cfg.MaxIterations = 8

			p, _ := NewCandidatePopulation(cfg)
			m := NewMetrics()
			c := NewAmplificationController(p,
				OracleFunc(func(s Snapshot) (float64, error) { return 0.3, nil }),
				cfg,
				WithMetrics(m),
				WithAdaptiveBias(NewAdaptiveBias(3)))

			c.Run(context.Background())

			So(c.Metrics(), ShouldEqual, m)
			So(m.Iterations, ShouldEqual, 8)
			So(m.Evaluations, ShouldEqual, int64(8*cfg.PopulationSize))
			So(m.Reinforced, ShouldBeGreaterThan, 0)
			So(m.Reseeded, ShouldBeGreaterThan, 0)

			exported := m.ExportMetrics()
			So(exported["iterations"], ShouldEqual, 8)
			So(exported["best_score"], ShouldAlmostEqual, 0.3)
		})

		Convey("Cancellation yields STOPPED and a full shutdown", func() {
			cfg := fastTestConfig()
			cfg.MaxIterations = 1 << 20

			p, _ := NewCandidatePopulation(cfg)
			slow := OracleFunc(func(s Snapshot) (float64, error) {
				time.Sleep(100 * time.Microsecond)
				return 0, nil
			})
			c := NewAmplificationController(p, slow, cfg)

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				time.Sleep(20 * time.Millisecond)
				cancel()
			}()

			result := c.Run(ctx)
			So(result.State, ShouldEqual, StateStopped)

			// After Run returns nothing may still evolve.
			before := p.SampleAll()
			time.Sleep(5 * time.Millisecond)
			after := p.SampleAll()
			for i := range before {
				So(after[i].Equal(before[i]), ShouldBeTrue)
			}
		})

		Convey("A malformed-oracle error is distinguishable by type", func() {
			_, err := Snapshot{1}.Moves()
			var evalErr *OracleEvaluationError
			So(errors.As(err, &evalErr), ShouldBeTrue)
		})
	})
}
