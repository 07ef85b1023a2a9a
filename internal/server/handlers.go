package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/jonfriesen/elementify"
	"github.com/jonfriesen/elementify/internal/normalize"
)

const mimeMsgpack = "application/msgpack"

type elementifyRequest struct {
	Word string `json:"word" msgpack:"word"`
}

type batchRequest struct {
	Words []string `json:"words" msgpack:"words"`
}

type elementifyResponse struct {
	Word      string                    `json:"word" msgpack:"word"`
	Count     int                       `json:"count" msgpack:"count"`
	Summary   string                    `json:"summary" msgpack:"summary"`
	Solutions []elementify.Segmentation `json:"solutions" msgpack:"solutions"`
}

type dictionaryResponse struct {
	Count  int                `json:"count" msgpack:"count"`
	Tokens []elementify.Token `json:"tokens" msgpack:"tokens"`
}

type errorResponse struct {
	Error string `json:"error" msgpack:"error"`
}

func newElementifyResponse(res elementify.Result) elementifyResponse {
	return elementifyResponse{
		Word:      res.Word,
		Count:     res.Len(),
		Summary:   res.Summary(),
		Solutions: res.Segmentations,
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

func (s *Server) ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ready",
		"tokens": s.Dictionary().Len(),
	})
}

func (s *Server) getElementify(c *fiber.Ctx) error {
	return s.elementifyWord(c, c.Query("word"))
}

func (s *Server) postElementify(c *fiber.Ctx) error {
	var req elementifyRequest
	if err := s.decode(c, &req); err != nil {
		return err
	}
	return s.elementifyWord(c, req.Word)
}

func (s *Server) elementifyWord(c *fiber.Ctx, raw string) error {
	word, err := s.normalize(raw)
	if err != nil {
		return err
	}

	res, err := s.elementify(s.current.Load(), word)
	if err != nil {
		return s.segmentError(err)
	}
	return s.respond(c, fiber.StatusOK, newElementifyResponse(res))
}

func (s *Server) postBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := s.decode(c, &req); err != nil {
		return err
	}
	if len(req.Words) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "words must not be empty")
	}
	if len(req.Words) > s.cfg.MaxBatch {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("too many words: %d, at most %d", len(req.Words), s.cfg.MaxBatch))
	}

	words := make([]string, len(req.Words))
	for i, raw := range req.Words {
		word, err := s.normalize(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("words[%d]: %s", i, err.Error()))
		}
		words[i] = word
	}

	snap := s.current.Load()
	start := time.Now()
	results, err := elementify.SegmentAll(c.UserContext(), snap.segmenter, words)
	if err != nil {
		return s.segmentError(err)
	}
	s.logger.Debug("batch segmented",
		zap.Int("words", len(words)),
		zap.Duration("elapsed", time.Since(start)),
	)

	out := make([]elementifyResponse, len(results))
	for i, res := range results {
		s.metrics.solutions.Observe(float64(res.Len()))
		out[i] = newElementifyResponse(res)
	}
	return s.respond(c, fiber.StatusOK, out)
}

func (s *Server) getDictionary(c *fiber.Ctx) error {
	dict := s.Dictionary()
	return s.respond(c, fiber.StatusOK, dictionaryResponse{
		Count:  dict.Len(),
		Tokens: dict.Tokens(),
	})
}

// elementify answers word from the snapshot's cache or segments it.
func (s *Server) elementify(snap *snapshot, word string) (elementify.Result, error) {
	if snap.cache != nil {
		if res, ok := snap.cache.Get(word); ok {
			s.metrics.cacheHits.Inc()
			return res, nil
		}
		s.metrics.cacheMisses.Inc()
	}

	start := time.Now()
	res, err := snap.segmenter.Elementify(word)
	s.metrics.segmentDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return elementify.Result{}, err
	}
	s.metrics.solutions.Observe(float64(res.Len()))

	if snap.cache != nil {
		snap.cache.Add(word, res)
	}
	return res, nil
}

func (s *Server) normalize(raw string) (string, error) {
	word, err := normalize.Input(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if len(word) > s.cfg.MaxWordLength {
		return "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("word too long: %d characters, at most %d", len(word), s.cfg.MaxWordLength))
	}
	return word, nil
}

func (s *Server) segmentError(err error) error {
	var limitErr *elementify.LimitExceededError
	if errors.As(err, &limitErr) {
		s.metrics.limitExceeded.Inc()
		return fiber.NewError(fiber.StatusUnprocessableEntity, limitErr.Error())
	}
	return err
}

// decode reads a JSON or msgpack body depending on Content-Type.
func (s *Server) decode(c *fiber.Ctx, v any) error {
	var err error
	if strings.HasPrefix(string(c.Request().Header.ContentType()), mimeMsgpack) {
		err = msgpack.Unmarshal(c.Body(), v)
	} else {
		err = c.BodyParser(v)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return nil
}

// respond writes v as msgpack when the client prefers it and as JSON
// otherwise.
func (s *Server) respond(c *fiber.Ctx, status int, v any) error {
	if c.Accepts(fiber.MIMEApplicationJSON, mimeMsgpack) != mimeMsgpack {
		return c.Status(status).JSON(v)
	}

	b, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, mimeMsgpack)
	return c.Status(status).Send(b)
}
