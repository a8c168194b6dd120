// Package metrics exposes the compiler's prometheus instrumentation:
// token-parse counts, cache hit ratios, compile durations. Grounded on
// the teacher's pkg/metrics, trimmed to the prometheus provider the
// teacher actually wires elsewhere (the OpenTelemetry branch depended on
// go.opentelemetry.io packages never present in this module's
// dependency set, and had no corresponding component in SPEC_FULL to
// exercise it).
package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fields represents label key-value pairs attached to a metric observation.
type Fields map[string]any

// Provider defines the interface for metrics collection. A single
// implementation (prometheus) backs it; Provider exists so compiler code
// depends on an interface rather than prometheus types directly, the
// same separation pkg/logger draws for logging.
type Provider interface {
	Counter(name, help string, labelKeys ...string) Counter
	IncrementCounter(name string, labels Fields)

	Gauge(name, help string, labelKeys ...string) Gauge
	SetGauge(name string, value float64, labels Fields)

	Histogram(name, help string, buckets []float64, labelKeys ...string) Histogram
	ObserveHistogram(name string, value float64, labels Fields)

	Timer(name string, labels Fields) Timer
	TimerFunc(name string, labels Fields, fn func()) time.Duration

	Handler() http.Handler
	Close() error
}

// Counter interface
type Counter interface {
	Inc(labels Fields)
	Add(value float64, labels Fields)
}

// Gauge interface
type Gauge interface {
	Set(value float64, labels Fields)
	Inc(labels Fields)
	Dec(labels Fields)
	Add(value float64, labels Fields)
	Sub(value float64, labels Fields)
}

// Histogram interface
type Histogram interface {
	Observe(value float64, labels Fields)
}

// Timer interface
type Timer interface {
	Stop() time.Duration
}

// Config holds configuration for metrics.
type Config struct {
	Namespace string
	Subsystem string
	Enabled   bool
}

// Service is the main entry point for recording compiler metrics.
type Service struct {
	config   Config
	provider Provider
	mu       sync.RWMutex
}

// NewService builds a Service. A disabled config returns a no-op provider
// so call sites never need an Enabled check of their own.
func NewService(config Config) (*Service, error) {
	var provider Provider
	var err error

	if !config.Enabled {
		provider = &noOpProvider{}
	} else {
		provider, err = NewPrometheusProvider(config.Namespace, config.Subsystem)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}

	return &Service{config: config, provider: provider}, nil
}

func (s *Service) Counter(name, help string, labelKeys ...string) Counter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Counter(name, help, labelKeys...)
}

func (s *Service) IncrementCounter(name string, labels Fields) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.provider.IncrementCounter(name, labels)
}

func (s *Service) Gauge(name, help string, labelKeys ...string) Gauge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Gauge(name, help, labelKeys...)
}

func (s *Service) SetGauge(name string, value float64, labels Fields) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.provider.SetGauge(name, value, labels)
}

func (s *Service) Histogram(name, help string, buckets []float64, labelKeys ...string) Histogram {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Histogram(name, help, buckets, labelKeys...)
}

func (s *Service) ObserveHistogram(name string, value float64, labels Fields) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.provider.ObserveHistogram(name, value, labels)
}

func (s *Service) Timer(name string, labels Fields) Timer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Timer(name, labels)
}

func (s *Service) TimerFunc(name string, labels Fields, fn func()) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.TimerFunc(name, labels, fn)
}

// Handler returns the HTTP handler for metrics exposure (prometheus
// /metrics scrape endpoint).
func (s *Service) Handler() http.Handler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Handler()
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider.Close()
}

// PrometheusProvider implements Provider over client_golang.
type PrometheusProvider struct {
	registry   prometheus.Registerer
	gatherer   prometheus.Gatherer
	namespace  string
	subsystem  string
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
	mu         sync.RWMutex
}

func NewPrometheusProvider(namespace, subsystem string) (*PrometheusProvider, error) {
	registry := prometheus.NewRegistry()

	return &PrometheusProvider{
		registry:   registry,
		gatherer:   registry,
		namespace:  namespace,
		subsystem:  subsystem,
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}, nil
}

func (p *PrometheusProvider) Counter(name, help string, labelKeys ...string) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := p.metricKey(name)
	if counter, exists := p.counters[key]; exists {
		return &prometheusCounter{counter: counter}
	}

	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: p.subsystem,
			Name:      name,
			Help:      help,
		},
		labelKeys,
	)

	if err := p.registry.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				p.counters[key] = existing
				return &prometheusCounter{counter: existing}
			}
		}
		return &noOpCounter{}
	}

	p.counters[key] = counter
	return &prometheusCounter{counter: counter}
}

func (p *PrometheusProvider) IncrementCounter(name string, labels Fields) {
	labelKeys := extractLabelKeys(labels)
	counter := p.Counter(name, fmt.Sprintf("Auto-generated counter for %s", name), labelKeys...)
	counter.Inc(labels)
}

func (p *PrometheusProvider) Gauge(name, help string, labelKeys ...string) Gauge {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := p.metricKey(name)
	if gauge, exists := p.gauges[key]; exists {
		return &prometheusGauge{gauge: gauge}
	}

	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: p.subsystem,
			Name:      name,
			Help:      help,
		},
		labelKeys,
	)

	if err := p.registry.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				p.gauges[key] = existing
				return &prometheusGauge{gauge: existing}
			}
		}
		return &noOpGauge{}
	}

	p.gauges[key] = gauge
	return &prometheusGauge{gauge: gauge}
}

func (p *PrometheusProvider) SetGauge(name string, value float64, labels Fields) {
	labelKeys := extractLabelKeys(labels)
	gauge := p.Gauge(name, fmt.Sprintf("Auto-generated gauge for %s", name), labelKeys...)
	gauge.Set(value, labels)
}

func (p *PrometheusProvider) Histogram(name, help string, buckets []float64, labelKeys ...string) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := p.metricKey(name)
	if histogram, exists := p.histograms[key]; exists {
		return &prometheusHistogram{histogram: histogram}
	}

	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: p.subsystem,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labelKeys,
	)

	if err := p.registry.Register(histogram); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				p.histograms[key] = existing
				return &prometheusHistogram{histogram: existing}
			}
		}
		return &noOpHistogram{}
	}

	p.histograms[key] = histogram
	return &prometheusHistogram{histogram: histogram}
}

func (p *PrometheusProvider) ObserveHistogram(name string, value float64, labels Fields) {
	labelKeys := extractLabelKeys(labels)
	histogram := p.Histogram(name, fmt.Sprintf("Auto-generated histogram for %s", name), nil, labelKeys...)
	histogram.Observe(value, labels)
}

func (p *PrometheusProvider) Timer(name string, labels Fields) Timer {
	labelKeys := extractLabelKeys(labels)
	histogram := p.Histogram(name+"_duration_seconds", fmt.Sprintf("Duration histogram for %s", name), nil, labelKeys...)
	return &prometheusTimer{
		histogram: histogram,
		labels:    labels,
		start:     time.Now(),
	}
}

func (p *PrometheusProvider) TimerFunc(name string, labels Fields, fn func()) time.Duration {
	timer := p.Timer(name, labels)
	fn()
	return timer.Stop()
}

func (p *PrometheusProvider) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

func (p *PrometheusProvider) Close() error {
	return nil
}

func (p *PrometheusProvider) metricKey(name string) string {
	if p.subsystem != "" {
		return fmt.Sprintf("%s_%s_%s", p.namespace, p.subsystem, name)
	}
	return fmt.Sprintf("%s_%s", p.namespace, name)
}

type prometheusCounter struct {
	counter *prometheus.CounterVec
}

func (c *prometheusCounter) Inc(labels Fields) {
	c.counter.With(fieldsToPrometheusLabels(labels)).Inc()
}

func (c *prometheusCounter) Add(value float64, labels Fields) {
	c.counter.With(fieldsToPrometheusLabels(labels)).Add(value)
}

type prometheusGauge struct {
	gauge *prometheus.GaugeVec
}

func (g *prometheusGauge) Set(value float64, labels Fields) {
	g.gauge.With(fieldsToPrometheusLabels(labels)).Set(value)
}

func (g *prometheusGauge) Inc(labels Fields) {
	g.gauge.With(fieldsToPrometheusLabels(labels)).Inc()
}

func (g *prometheusGauge) Dec(labels Fields) {
	g.gauge.With(fieldsToPrometheusLabels(labels)).Dec()
}

func (g *prometheusGauge) Add(value float64, labels Fields) {
	g.gauge.With(fieldsToPrometheusLabels(labels)).Add(value)
}

func (g *prometheusGauge) Sub(value float64, labels Fields) {
	g.gauge.With(fieldsToPrometheusLabels(labels)).Sub(value)
}

type prometheusHistogram struct {
	histogram *prometheus.HistogramVec
}

func (h *prometheusHistogram) Observe(value float64, labels Fields) {
	h.histogram.With(fieldsToPrometheusLabels(labels)).Observe(value)
}

type prometheusTimer struct {
	histogram Histogram
	labels    Fields
	start     time.Time
}

func (t *prometheusTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	t.histogram.Observe(duration.Seconds(), t.labels)
	return duration
}

// No-op implementations, used when metrics are disabled.
type noOpProvider struct{}

func (n *noOpProvider) Counter(name, help string, labelKeys ...string) Counter { return &noOpCounter{} }
func (n *noOpProvider) IncrementCounter(name string, labels Fields)            {}
func (n *noOpProvider) Gauge(name, help string, labelKeys ...string) Gauge     { return &noOpGauge{} }
func (n *noOpProvider) SetGauge(name string, value float64, labels Fields)     {}
func (n *noOpProvider) Histogram(name, help string, buckets []float64, labelKeys ...string) Histogram {
	return &noOpHistogram{}
}
func (n *noOpProvider) ObserveHistogram(name string, value float64, labels Fields) {}
func (n *noOpProvider) Timer(name string, labels Fields) Timer                     { return &noOpTimer{} }
func (n *noOpProvider) TimerFunc(name string, labels Fields, fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
func (n *noOpProvider) Handler() http.Handler { return http.NotFoundHandler() }
func (n *noOpProvider) Close() error          { return nil }

type noOpCounter struct{}

func (n *noOpCounter) Inc(labels Fields)                {}
func (n *noOpCounter) Add(value float64, labels Fields) {}

type noOpGauge struct{}

func (n *noOpGauge) Set(value float64, labels Fields) {}
func (n *noOpGauge) Inc(labels Fields)                {}
func (n *noOpGauge) Dec(labels Fields)                {}
func (n *noOpGauge) Add(value float64, labels Fields) {}
func (n *noOpGauge) Sub(value float64, labels Fields) {}

type noOpHistogram struct{}

func (n *noOpHistogram) Observe(value float64, labels Fields) {}

type noOpTimer struct{}

func (n *noOpTimer) Stop() time.Duration { return 0 }

func fieldsToPrometheusLabels(fields Fields) prometheus.Labels {
	labels := make(prometheus.Labels, len(fields))
	for k, v := range fields {
		labels[k] = fmt.Sprintf("%v", v)
	}
	return labels
}

func extractLabelKeys(labels Fields) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	return keys
}

// StandardCompileDurationBuckets are the histogram buckets used for the
// compiler's token-to-CSS compile-duration metric.
func StandardCompileDurationBuckets() []float64 {
	return []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1}
}

// StandardCacheSizeBuckets are the histogram buckets used for reporting
// cache entry byte sizes.
func StandardCacheSizeBuckets() []float64 {
	return []float64{100, 1000, 10000, 100000, 1000000}
}
