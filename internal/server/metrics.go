package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	requests          *prometheus.CounterVec
	segmentDuration   prometheus.Histogram
	solutions         prometheus.Histogram
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	limitExceeded     prometheus.Counter
	dictionaryTokens  prometheus.Gauge
	dictionaryReloads prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elementify_http_requests_total",
				Help: "HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		segmentDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "elementify_segment_duration_seconds",
				Help:    "Time spent segmenting a single word.",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		solutions: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "elementify_solutions",
				Help:    "Number of segmentations found per word.",
				Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000, 10000},
			},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "elementify_cache_hits_total",
				Help: "Words answered from the result cache.",
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "elementify_cache_misses_total",
				Help: "Words that had to be segmented.",
			},
		),
		limitExceeded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "elementify_limit_exceeded_total",
				Help: "Words rejected for exceeding the partial segmentation limit.",
			},
		),
		dictionaryTokens: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "elementify_dictionary_tokens",
				Help: "Tokens in the active dictionary.",
			},
		),
		dictionaryReloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "elementify_dictionary_loads_total",
				Help: "Dictionary snapshots installed, including the initial one.",
			},
		),
	}

	reg.MustRegister(
		m.requests,
		m.segmentDuration,
		m.solutions,
		m.cacheHits,
		m.cacheMisses,
		m.limitExceeded,
		m.dictionaryTokens,
		m.dictionaryReloads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (s *Server) metricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}
