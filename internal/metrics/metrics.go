package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Searches        *prometheus.CounterVec
	UpstreamSeconds *prometheus.HistogramVec
	VenuesReturned  prometheus.Histogram
	ActiveEnrichers prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Searches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "finder_searches_total",
			Help: "Total number of venue searches, by category and outcome.",
		}, []string{"category", "status"}),
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "finder_upstream_request_duration_seconds",
			Help:    "Duration of requests to upstream geo services.",
			Buckets: prometheus.DefBuckets,
		}, []string{"upstream", "operation"}),
		VenuesReturned: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "finder_venues_returned",
			Help:    "Number of venues returned per search after ranking.",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}),
		ActiveEnrichers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "finder_active_enrichment_workers",
			Help: "Current number of in-flight address enrichment lookups.",
		}),
	}
}
