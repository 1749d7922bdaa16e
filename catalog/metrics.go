package catalog

import "time"

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                       {}
func (NoopMetrics) Miss()                      {}
func (NoopMetrics) Fetch(time.Duration, error) {}
func (NoopMetrics) Size(int)                   {}

var _ Metrics = NoopMetrics{}
