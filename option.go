package qsearch

// ControllerOption configures an AmplificationController at construction.
type ControllerOption func(*AmplificationController)

// WithMetrics replaces the controller's metrics sink, letting several
// runs aggregate into one collector.
func WithMetrics(m *Metrics) ControllerOption {
	return func(c *AmplificationController) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithProgressGroup attaches a broadcast group that receives one event
// per iteration plus a final terminal event.
func WithProgressGroup(pg *ProgressGroup) ControllerOption {
	return func(c *AmplificationController) {
		c.progress = pg
	}
}

// WithAdaptiveBias replaces the default stagnation detector.
func WithAdaptiveBias(ab *AdaptiveBias) ControllerOption {
	return func(c *AmplificationController) {
		c.adaptive = ab
	}
}
