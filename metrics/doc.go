// Package metrics instruments the octree build and evaluation phases.
//
// Instrumentation is opt-in: callers that never configure a Recorder pay
// nothing beyond a single interface-type check per phase, via
// NoopRecorder. Callers that want observability construct a
// PrometheusRecorder against their own prometheus.Registerer and pass it
// to octree/nbody through the WithMetrics option.
package metrics
