// Package server exposes the segmenter over HTTP.
package server

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jonfriesen/elementify"
	"github.com/jonfriesen/elementify/internal/config"
)

// snapshot pairs a dictionary with the results computed from it. Swapping
// the snapshot drops the cache together with the dictionary it belongs to.
type snapshot struct {
	dict      *elementify.Dictionary
	segmenter *elementify.Segmenter
	cache     *lru.Cache[string, elementify.Result] // nil when caching is disabled
}

type Server struct {
	app      *fiber.App
	cfg      config.Server
	logger   *zap.Logger
	metrics  *metrics
	registry *prometheus.Registry
	limiter  *rate.Limiter
	current  atomic.Pointer[snapshot]
}

func New(cfg config.Server, dict *elementify.Dictionary, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		metrics:  newMetrics(registry),
		registry: registry,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	if err := s.Reload(dict); err != nil {
		return nil, err
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "elementify",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	s.app.Use(s.logRequests)
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)
	s.app.Get("/ready", s.ready)
	s.app.Get("/metrics", s.metricsHandler())

	v1 := s.app.Group("/v1", s.rateLimit)
	v1.Get("/elementify", s.getElementify)
	v1.Post("/elementify", s.postElementify)
	v1.Post("/elementify/batch", s.postBatch)
	v1.Get("/dictionary", s.getDictionary)
}

// Reload makes dict the dictionary for every request that starts after it
// returns. Requests already running keep the snapshot they started with.
func (s *Server) Reload(dict *elementify.Dictionary) error {
	if dict == nil {
		return fmt.Errorf("reload: nil dictionary")
	}

	snap := &snapshot{
		dict:      dict,
		segmenter: elementify.NewSegmenter(dict, elementify.WithMaxPartials(s.cfg.MaxPartials)),
	}
	if s.cfg.CacheSize > 0 {
		cache, err := lru.New[string, elementify.Result](s.cfg.CacheSize)
		if err != nil {
			return fmt.Errorf("reload: %w", err)
		}
		snap.cache = cache
	}

	s.current.Store(snap)
	s.metrics.dictionaryTokens.Set(float64(dict.Len()))
	s.metrics.dictionaryReloads.Inc()
	s.logger.Info("dictionary loaded", zap.Int("tokens", dict.Len()))
	return nil
}

// Dictionary returns the dictionary currently in use.
func (s *Server) Dictionary() *elementify.Dictionary {
	return s.current.Load().dict
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
