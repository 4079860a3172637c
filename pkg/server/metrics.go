package server

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// buildMetrics tracks document serialization on the serving path.
type buildMetrics struct {
	buildsTotal   prometheus.Counter
	buildDuration prometheus.Histogram
}

var (
	globalBuildMetrics *buildMetrics
	buildMetricsOnce   sync.Once
)

func initBuildMetrics() *buildMetrics {
	factory := promauto.With(prometheus.DefaultRegisterer)
	return &buildMetrics{
		buildsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sdom",
			Name:      "document_builds_total",
			Help:      "Total number of document serializations",
		}),
		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sdom",
			Name:      "document_build_duration_seconds",
			Help:      "Document serialization duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
	}
}

// observeBuild records one document serialization.
func observeBuild(d time.Duration) {
	buildMetricsOnce.Do(func() {
		globalBuildMetrics = initBuildMetrics()
	})
	globalBuildMetrics.buildsTotal.Inc()
	globalBuildMetrics.buildDuration.Observe(d.Seconds())
}
