package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder reports octree build and evaluation statistics to a
// caller-supplied prometheus.Registerer.
type PrometheusRecorder struct {
	nodesCreated       prometheus.Counter
	leavesCreated      prometheus.Counter
	particlesProcessed prometheus.Counter
	buildDuration      prometheus.Histogram
	traversalDuration  prometheus.Histogram
}

// NewPrometheusRecorder registers a fixed set of collectors against reg
// and returns a Recorder backed by them. Pass prometheus.DefaultRegisterer
// to use the global registry, or a dedicated *prometheus.Registry to keep
// octforce's metrics isolated.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		nodesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "octforce_nodes_created_total",
			Help: "Total number of octree nodes (leaf and internal) created across all builds.",
		}),
		leavesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "octforce_leaves_created_total",
			Help: "Total number of octree leaf nodes created across all builds.",
		}),
		particlesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "octforce_particles_processed_total",
			Help: "Total number of particles inserted or evaluated.",
		}),
		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "octforce_build_duration_seconds",
			Help:    "Duration of one Build or BuildParallel call.",
			Buckets: prometheus.DefBuckets,
		}),
		traversalDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "octforce_traversal_duration_seconds",
			Help:    "Duration of one EvalAllParallel call.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (r *PrometheusRecorder) AddNodesCreated(delta int)  { r.nodesCreated.Add(float64(delta)) }
func (r *PrometheusRecorder) AddLeavesCreated(delta int) { r.leavesCreated.Add(float64(delta)) }
func (r *PrometheusRecorder) AddParticlesProcessed(delta int) {
	r.particlesProcessed.Add(float64(delta))
}
func (r *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	r.buildDuration.Observe(d.Seconds())
}
func (r *PrometheusRecorder) ObserveTraversalDuration(d time.Duration) {
	r.traversalDuration.Observe(d.Seconds())
}
