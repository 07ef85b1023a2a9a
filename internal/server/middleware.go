package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errRateLimited = errors.New("rate limit exceeded")

func (s *Server) rateLimit(c *fiber.Ctx) error {
	if s.limiter != nil && !s.limiter.Allow() {
		return fiber.NewError(fiber.StatusTooManyRequests, errRateLimited.Error())
	}
	return c.Next()
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// Let the error handler write the response so the status is final.
		if herr := s.handleError(c, err); herr != nil {
			return herr
		}
	}

	status := c.Response().StatusCode()
	s.metrics.requests.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()
	s.logger.Info("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
	)
	return nil
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err), zap.String("path", c.Path()))
	}
	return c.Status(code).JSON(errorResponse{Error: err.Error()})
}
