package qsearch

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given a run configuration", t, func() {
		Convey("The defaults validate", func() {
			So(NewConfig().Validate(), ShouldBeNil)
		})

		Convey("Each invalid field fails fast with a ConfigurationError", func() {
			cases := map[string]func(*Config){
				"population_size":   func(c *Config) { c.PopulationSize = 0 },
				"bit_width":         func(c *Config) { c.BitWidth = 0 },
				"max_iterations":    func(c *Config) { c.MaxIterations = 0 },
				"min_wait":          func(c *Config) { c.MinWait = 0 },
				"max_wait":          func(c *Config) { c.MaxWait = c.MinWait / 2 },
				"wait_distribution": func(c *Config) { c.WaitDistribution = "gaussian" },
				"flip_probability":  func(c *Config) { c.FlipProbability = 1.01 },
				"reinforce_fraction": func(c *Config) {
					c.ReinforceFraction = -0.1
				},
				"reinforce_factor": func(c *Config) { c.ReinforceFactor = 2 },
				"reseed_fraction":  func(c *Config) { c.ReseedFraction = 1.5 },
				"mutation_bits":    func(c *Config) { c.MutationBits = c.BitWidth + 1 },
				"stagnation_window": func(c *Config) {
					c.StagnationWindow = -1
				},
			}

			for field, breakIt := range cases {
				cfg := NewConfig()
				breakIt(cfg)

				err := cfg.Validate()
				So(err, ShouldNotBeNil)

				var confErr *ConfigurationError
				So(errors.As(err, &confErr), ShouldBeTrue)
				So(confErr.Field, ShouldEqual, field)
			}
		})

		Convey("The wait distribution selects the strategy", func() {
			cfg := NewConfig()
			So(cfg.waitStrategy(), ShouldHaveSameTypeAs, &UniformWait{})

			cfg.WaitDistribution = "exponential"
			So(cfg.waitStrategy(), ShouldHaveSameTypeAs, &ExponentialWait{})
		})

		Convey("A fixed seed reproduces register construction", func() {
			cfg := NewConfig()
			cfg.PopulationSize = 5
			cfg.BitWidth = 16
			cfg.MinWait = time.Millisecond
			cfg.MaxWait = 2 * time.Millisecond
			cfg.Seed = 321

			a, err := NewCandidatePopulation(cfg)
			So(err, ShouldBeNil)
			b, err := NewCandidatePopulation(cfg)
			So(err, ShouldBeNil)

			// Never started, so initial values depend only on the seed.
			sa := a.SampleAll()
			sb := b.SampleAll()
			for i := range sa {
				So(sb[i].Equal(sa[i]), ShouldBeTrue)
			}
		})
	})
}
