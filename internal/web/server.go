// Package web serves the portfolio page, its form posts and a small JSON API.
package web

import (
	"bytes"
	"context"
	"errors"
	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/metrics"
	"folio/internal/present"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Options struct {
	Catalog   *catalog.Catalog
	Contact   *contact.Service
	Presenter *present.Presenter
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	Site      config.SiteConfig
}

type Server struct {
	catalog   *catalog.Catalog
	contact   *contact.Service
	presenter *present.Presenter
	metrics   *metrics.Metrics
	logger    *zap.Logger
	site      config.SiteConfig
	engine    *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}

	s := &Server{
		catalog:   opts.Catalog,
		contact:   opts.Contact,
		presenter: opts.Presenter,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		site:      opts.Site,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.presenter == nil {
		p, err := present.New()
		if err != nil {
			return nil, err
		}
		s.presenter = p
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.NewRegistry())
	}
	if s.contact == nil {
		s.contact = contact.NewService(nil, nil, s.site.ContactEmail, s.logger)
	}

	s.metrics.SetCatalogSize(s.catalog.Count())
	s.engine = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.logger), instrument(s.metrics), gin.Recovery())

	r.GET("/", s.handleIndex)
	r.POST("/projects", s.handleCreateForm)
	r.POST("/projects/:id/delete", s.handleDeleteForm)
	r.POST("/contact", s.handleContactForm)

	api := r.Group("/api")
	api.GET("/projects", s.handleListProjects)
	api.POST("/projects", s.handleCreateProject)
	api.GET("/projects/:id", s.handleGetProject)
	api.DELETE("/projects/:id", s.handleDeleteProject)

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	return r
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func shutdownTimeout(cfg config.ServerConfig) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return cfg.ShutdownTimeout
}

func (s *Server) handleIndex(c *gin.Context) {
	q := c.Request.URL.Query()
	page := present.Page{
		Title:        s.site.Title,
		Owner:        s.site.Owner,
		Tagline:      s.site.Tagline,
		ContactEmail: s.site.ContactEmail,
		InquiryTypes: s.site.InquiryTypes,
		Notice:       noticeFromQuery(q),
		MailtoURL:    mailtoFromQuery(q, s.site.ContactEmail),
		Projects:     s.catalog.List(),
	}

	var buf bytes.Buffer
	if err := s.presenter.RenderPage(&buf, page); err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"projects": s.catalog.Count(),
	})
}
