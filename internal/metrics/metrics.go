// Package metrics collects Prometheus metrics for the social core and exposes
// them on the dedicated metrics port.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service-level counters. A nil *Collector is valid and
// records nothing, so tests can leave it out.
type Collector struct {
	activitiesRecorded *prometheus.CounterVec
	followOps          *prometheus.CounterVec
	feedRequests       prometheus.Counter
	feedItems          prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		activitiesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mediamingle_activities_recorded_total",
			Help: "Activity ledger entries recorded, by activity type.",
		}, []string{"type"}),
		followOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mediamingle_follow_operations_total",
			Help: "Follow graph write operations, by operation.",
		}, []string{"op"}),
		feedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mediamingle_feed_requests_total",
			Help: "Feed assembly requests served.",
		}),
		feedItems: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mediamingle_feed_items_total",
			Help: "Feed items returned across all requests.",
		}),
	}
	reg.MustRegister(c.activitiesRecorded, c.followOps, c.feedRequests, c.feedItems)
	return c
}

func (c *Collector) RecordActivity(activityType string) {
	if c == nil {
		return
	}
	c.activitiesRecorded.WithLabelValues(activityType).Inc()
}

func (c *Collector) RecordFollowOp(op string) {
	if c == nil {
		return
	}
	c.followOps.WithLabelValues(op).Inc()
}

func (c *Collector) RecordFeedRequest(items int) {
	if c == nil {
		return
	}
	c.feedRequests.Inc()
	c.feedItems.Add(float64(items))
}

// Handler returns the /metrics handler for the given registry, including the
// standard Go runtime and process collectors.
func Handler(reg *prometheus.Registry) http.Handler {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
