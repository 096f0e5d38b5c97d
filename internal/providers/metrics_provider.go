package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"skilld/internal/services"
	"skilld/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveReloadDuration(duration time.Duration)
	SetProfilesTotal(perVersion map[string]int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	reloadDuration  prometheus.Histogram
	profilesTotal   *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveReloadDuration(duration time.Duration) {
	m.reloadDuration.Observe(duration.Seconds())
}

// SetProfilesTotal replaces every per version gauge, dropping versions
// missing from perVersion.
func (m *MetricsProvider) SetProfilesTotal(perVersion map[string]int) {
	m.profilesTotal.Reset()
	for version, count := range perVersion {
		m.profilesTotal.WithLabelValues(version).Set(float64(count))
	}
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service services.SnapshotServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skilld_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skilld_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skilld_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skilld_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		reloadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "skilld_reload_duration_seconds",
			Help:    "Duration of snapshot reloads in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		profilesTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "skilld_profiles_total",
			Help: "Number of player profiles per game version",
		}, []string{"version"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "skilld_players_total",
		Help: "Number of players with a loaded snapshot",
	}, func() float64 {
		return float64(service.Count())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "skilld_reloads_total",
		Help: "Number of completed snapshot reloads",
	}, func() float64 {
		return float64(service.Reloads())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveReloadDuration(_ time.Duration)            {}
func (n *noopMetrics) SetProfilesTotal(_ map[string]int)                 {}
