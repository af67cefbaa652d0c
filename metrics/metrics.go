// Package metrics implements runtime.Metrics on top of
// github.com/prometheus/client_golang: a functional-options config, a
// factory built with promauto.With(registry), and a handful of
// counters and histograms describing runtime activity rather than
// HTTP activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "reactui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels applied to every metric.
	ConstLabels prometheus.Labels

	// RenderDurationBuckets are the histogram buckets for render
	// duration. Default: prometheus.DefBuckets.
	RenderDurationBuckets []float64

	// Registry is the registerer metrics are registered against.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures a Config.
type Option func(*Config)

func WithNamespace(ns string) Option    { return func(c *Config) { c.Namespace = ns } }
func WithSubsystem(sub string) Option   { return func(c *Config) { c.Subsystem = sub } }
func WithConstLabels(l prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = l }
}
func WithRenderDurationBuckets(b []float64) Option {
	return func(c *Config) { c.RenderDurationBuckets = b }
}
func WithRegistry(r prometheus.Registerer) Option { return func(c *Config) { c.Registry = r } }

func defaultConfig() Config {
	return Config{
		Namespace:             "reactui",
		RenderDurationBuckets: prometheus.DefBuckets,
		Registry:              prometheus.DefaultRegisterer,
	}
}

// Collector implements runtime.Metrics.
type Collector struct {
	renderDuration prometheus.Histogram
	patchChildOps  prometheus.Histogram
	patchAttrOps   prometheus.Histogram
	eventsTotal    *prometheus.CounterVec
	hooksDisposed  *prometheus.CounterVec
}

// New builds a Collector, registering its metrics against opts'
// Registry (prometheus.DefaultRegisterer by default).
func New(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Duration of a reconciliation pass in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.RenderDurationBuckets,
		}),
		patchChildOps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "patch_child_ops",
			Help:        "Number of child-list patch entries emitted per render",
			ConstLabels: cfg.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		patchAttrOps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "patch_attr_ops",
			Help:        "Number of attribute patch entries emitted per render",
			ConstLabels: cfg.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "events_total",
			Help:        "Total number of ProcessEvent dispatches by outcome",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),
		hooksDisposed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "hooks_disposed_total",
			Help:        "Total number of hooks disposed, by variant",
			ConstLabels: cfg.ConstLabels,
		}, []string{"variant"}),
	}
}

func (c *Collector) RenderDuration(d time.Duration) {
	c.renderDuration.Observe(d.Seconds())
}

func (c *Collector) PatchSize(childOps, attrOps int) {
	c.patchChildOps.Observe(float64(childOps))
	c.patchAttrOps.Observe(float64(attrOps))
}

func (c *Collector) EventDispatched(handlerFound bool) {
	outcome := "found"
	if !handlerFound {
		outcome = "not_found"
	}
	c.eventsTotal.WithLabelValues(outcome).Inc()
}

func (c *Collector) HookDisposed(variant string) {
	c.hooksDisposed.WithLabelValues(variant).Inc()
}
