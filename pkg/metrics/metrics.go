package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run metrics for one process. Exported as a textfile since the run doesn't serve HTTP.
// All methods are no-ops on a nil receiver.
type RunMetrics struct {
	registry *prometheus.Registry

	ChampionsProcessed *prometheus.CounterVec
	SkinsCollected     *prometheus.CounterVec
	ChampionFailures   *prometheus.CounterVec
	LocaleRuns         *prometheus.CounterVec
	Requests           *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// NewRunMetrics registers every collector on a fresh registry.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		ChampionsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skinmapping_champions_processed_total",
				Help: "Champions whose skins were merged into a mapping",
			},
			[]string{"language"},
		),
		SkinsCollected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skinmapping_skins_collected_total",
				Help: "Skin and chroma records collected",
			},
			[]string{"language"},
		),
		ChampionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skinmapping_champion_failures_total",
				Help: "Champions that couldn't be fetched or parsed",
			},
			[]string{"language"},
		),
		LocaleRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skinmapping_locale_runs_total",
				Help: "Locale builds by outcome",
			},
			[]string{"language", "status"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skinmapping_requests_total",
				Help: "Upstream requests by kind and outcome",
			},
			[]string{"kind", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skinmapping_request_duration_ms",
				Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
			},
			[]string{"kind"},
		),
	}

	m.registry.MustRegister(
		m.ChampionsProcessed,
		m.SkinsCollected,
		m.ChampionFailures,
		m.LocaleRuns,
		m.Requests,
		m.RequestDuration,
	)
	return m
}

// Registry exposes the gatherer, mostly for tests.
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *RunMetrics) ObserveChampion(language string, skins int) {
	if m == nil {
		return
	}
	m.ChampionsProcessed.WithLabelValues(language).Inc()
	m.SkinsCollected.WithLabelValues(language).Add(float64(skins))
}

func (m *RunMetrics) ChampionFailed(language string) {
	if m == nil {
		return
	}
	m.ChampionFailures.WithLabelValues(language).Inc()
}

func (m *RunMetrics) LocaleFinished(language string, success bool) {
	if m == nil {
		return
	}
	status := "failed"
	if success {
		status = "success"
	}
	m.LocaleRuns.WithLabelValues(language, status).Inc()
}

func (m *RunMetrics) ObserveRequest(kind string, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(kind, status).Inc()
	m.RequestDuration.WithLabelValues(kind).Observe(float64(elapsed.Milliseconds()))
}

// WriteTextfile writes the current values in the node_exporter textfile format.
func (m *RunMetrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
