package spread

import "github.com/ygrebnov/spread/metrics"

const (
	MetricAreasClaimed    = "spread_areas_claimed_total"
	MetricAreasCommitted  = "spread_areas_committed_total"
	MetricAreasDiscarded  = "spread_areas_discarded_total"
	MetricComputeErrors   = "spread_compute_errors_total"
	MetricComputeInflight = "spread_compute_inflight"
	MetricComputeDuration = "spread_compute_duration_seconds"
)

type instruments struct {
	claimed   metrics.Counter
	committed metrics.Counter
	discarded metrics.Counter
	errors    metrics.Counter
	inflight  metrics.UpDownCounter
	duration  metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		claimed:   p.Counter(MetricAreasClaimed, metrics.WithUnit("1")),
		committed: p.Counter(MetricAreasCommitted, metrics.WithUnit("1")),
		discarded: p.Counter(MetricAreasDiscarded, metrics.WithUnit("1"),
			metrics.WithDescription("areas computed after abort and never painted")),
		errors:   p.Counter(MetricComputeErrors, metrics.WithUnit("1")),
		inflight: p.UpDownCounter(MetricComputeInflight, metrics.WithUnit("1")),
		duration: p.Histogram(MetricComputeDuration, metrics.WithUnit("seconds")),
	}
}
