// Package server serves rendered charts over HTTP.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fulldump/chart3d/graphics3d"
	"github.com/fulldump/chart3d/internal/config"
	"github.com/fulldump/chart3d/raster"
)

// RequestIDHeader carries the request id in requests and responses.
const RequestIDHeader = "X-Request-ID"

// MaxImageSide bounds the width and height a request may ask for.
const MaxImageSide = 4096

// Error codes in JSON error bodies.
const (
	CodeBadRequest = "bad_request"
	CodeInternal   = "internal"
)

// Server renders the configured chart on request.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns a server for cfg. A nil logger uses graphics3d.Logger.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = graphics3d.Logger()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the gin engine with all routes.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())
	r.GET("/healthz", s.healthz)
	r.GET("/chart.png", s.chartPNG)
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			slog.String("request_id", c.GetString("request_id")),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "type": s.cfg.Type})
}

// chartPNG renders the chart, with the query parameters width, height,
// theta, phi and roll overriding the configuration.
func (s *Server) chartPNG(c *gin.Context) {
	cfg, err := s.requestConfig(c)
	if err != nil {
		s.fail(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	ch, err := cfg.Build()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}

	canvas := raster.NewRGBA(cfg.Width, cfg.Height)
	if _, err := ch.Draw(c.Request.Context(), canvas, cfg.Bounds()); err != nil {
		s.fail(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.Image()); err != nil {
		s.fail(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// requestConfig copies the server configuration and applies the query
// overrides.
func (s *Server) requestConfig(c *gin.Context) (*config.Config, error) {
	cfg := *s.cfg
	ints := map[string]*int{"width": &cfg.Width, "height": &cfg.Height}
	for name, dst := range ints {
		if v, ok := c.GetQuery(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
		}
	}
	floats := map[string]*float64{"theta": &cfg.Camera.Theta, "phi": &cfg.Camera.Phi, "roll": &cfg.Camera.Roll}
	for name, dst := range floats {
		if v, ok := c.GetQuery(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			*dst = f
		}
	}
	if cfg.Width > MaxImageSide || cfg.Height > MaxImageSide {
		return nil, fmt.Errorf("%w: image %dx%d exceeds %d pixels per side",
			config.ErrInvalid, cfg.Width, cfg.Height, MaxImageSide)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Server) fail(c *gin.Context, status int, code string, err error) {
	if ctxErr := c.Request.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		// The client went away; nobody reads the body.
		c.Status(http.StatusServiceUnavailable)
		return
	}
	if status >= http.StatusInternalServerError {
		s.logger.Warn("render failed",
			slog.String("request_id", c.GetString("request_id")),
			slog.Any("err", err))
	}
	c.AbortWithStatusJSON(status, gin.H{"code": code, "message": err.Error()})
}
