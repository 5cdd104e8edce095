// Package api exposes the analyzer over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/analyzer"
	"github.com/spigell/cv-scorer/internal/document"
)

// Analyzer is the engine behind the routes.
type Analyzer interface {
	Analyze(ctx context.Context, req analyzer.Request) *analyzer.Report
}

// Options configure the HTTP surface.
type Options struct {
	// BodyLimit caps request bodies, uploads included, in bytes.
	BodyLimit int
	Version   string
}

const defaultBodyLimit = 10 << 20

// AnalyzeRequest is the JSON body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	CVText         string `json:"cvText" validate:"required,max=200000"`
	Industry       string `json:"industry" validate:"max=100"`
	Role           string `json:"role" validate:"max=100"`
	Generic        bool   `json:"generic"`
	JobDescription string `json:"jobDescription" validate:"max=100000"`
}

// Server holds the fiber app and its dependencies.
type Server struct {
	app      *fiber.App
	analyzer Analyzer
	validate *validator.Validate
	logger   *zap.Logger
}

// New builds the app and registers routes.
func New(a Analyzer, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.BodyLimit <= 0 {
		opts.BodyLimit = defaultBodyLimit
	}

	s := &Server{
		analyzer: a,
		validate: validator.New(),
		logger:   logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "cv-scorer " + opts.Version,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          90 * time.Second,
		BodyLimit:             opts.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(s.requestLogger)

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "version": opts.Version})
	})

	v1 := s.app.Group("/api/v1")
	v1.Post("/analyze", s.handleAnalyze)
	v1.Post("/analyze/upload", s.handleUpload)

	return s
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown waits for in-flight requests up to ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	report := s.analyzer.Analyze(c.UserContext(), analyzer.Request{
		CVText:         req.CVText,
		Industry:       strings.TrimSpace(req.Industry),
		Role:           strings.TrimSpace(req.Role),
		Generic:        req.Generic,
		JobDescription: req.JobDescription,
	})
	return c.JSON(report)
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	cvFile, err := c.FormFile("cv")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cv file is required")
	}

	cvText, err := extractUpload(cvFile)
	if err != nil {
		return uploadError("cv", err)
	}

	jobDescription := c.FormValue("jobDescription")
	if jobFile, err := c.FormFile("job"); err == nil {
		jobDescription, err = extractUpload(jobFile)
		if err != nil {
			return uploadError("job", err)
		}
	}

	generic := false
	if v := c.FormValue("generic"); v != "" {
		generic, err = strconv.ParseBool(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "generic must be a boolean")
		}
	}

	req := AnalyzeRequest{
		CVText:         cvText,
		Industry:       strings.TrimSpace(c.FormValue("industry")),
		Role:           strings.TrimSpace(c.FormValue("role")),
		Generic:        generic,
		JobDescription: jobDescription,
	}
	if err := s.validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	report := s.analyzer.Analyze(c.UserContext(), analyzer.Request(req))
	return c.JSON(report)
}

func extractUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return document.Extract(fh.Filename, data)
}

func uploadError(field string, err error) error {
	switch {
	case errors.Is(err, document.ErrUnsupported):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, fmt.Sprintf("%s: %v", field, err))
	case errors.Is(err, document.ErrEmpty):
		return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("%s: %v", field, err))
	default:
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %v", field, err))
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error(), "code": code})
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()
	s.logger.Debug("http request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("latency", time.Since(started)),
	)
	return err
}
