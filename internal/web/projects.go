package web

import (
	"errors"
	"fmt"
	"folio/internal/catalog"
	"folio/internal/metrics"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type projectResponse struct {
	Project catalog.Project `json:"project"`
	Warning string          `json:"warning,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleCreateForm(c *gin.Context) {
	var fields catalog.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.Error(err)
		redirectWithNotice(c, "add-project", noticeProjectForm, nil)
		return
	}

	p, err := s.create(fields)

	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		redirectWithNotice(c, "add-project", noticeTitleRequired, nil)
	case catalog.IsNotDurable(err):
		redirectWithNotice(c, cardAnchor(p.ID), noticeNotSaved, nil)
	case err != nil:
		c.Error(err)
		redirectWithNotice(c, "add-project", noticeAddFailed, nil)
	default:
		redirectWithNotice(c, cardAnchor(p.ID), noticeProjectAdded, nil)
	}
}

func (s *Server) handleDeleteForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithNotice(c, "projects", noticeProjectNotFound, nil)
		return
	}

	removed, err := s.delete(id)
	switch {
	case !removed:
		redirectWithNotice(c, "projects", noticeProjectNotFound, nil)
	case err != nil:
		redirectWithNotice(c, "projects", noticeNotSaved, nil)
	default:
		redirectWithNotice(c, "projects", noticeProjectDeleted, nil)
	}
}

func (s *Server) handleListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.List())
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project id"})
		return
	}

	p, err := s.catalog.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, projectResponse{Project: p})
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var fields catalog.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	p, err := s.create(fields)

	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case catalog.IsNotDurable(err):
		c.JSON(http.StatusCreated, projectResponse{Project: p, Warning: err.Error()})
	case err != nil:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create project"})
	default:
		c.JSON(http.StatusCreated, projectResponse{Project: p})
	}
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project id"})
		return
	}

	removed, err := s.delete(id)
	switch {
	case !removed:
		c.JSON(http.StatusNotFound, errorResponse{Error: catalog.ErrNotFound.Error()})
	case err != nil:
		c.JSON(http.StatusOK, gin.H{"warning": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

// create and delete wrap the catalog with logging and metrics shared by the
// form and JSON handlers.
func (s *Server) create(fields catalog.Fields) (catalog.Project, error) {
	p, err := s.catalog.Create(fields)

	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		s.metrics.Mutation("create", metrics.OutcomeInvalid)
	case catalog.IsNotDurable(err):
		s.metrics.Mutation("create", metrics.OutcomeNotDurable)
		s.logger.Warn("project created but not saved", zap.Int("id", p.ID), zap.Error(err))
	case err == nil:
		s.metrics.Mutation("create", metrics.OutcomeOK)
		s.logger.Info("project created", zap.Int("id", p.ID), zap.String("title", p.Title))
	}
	s.metrics.SetCatalogSize(s.catalog.Count())
	return p, err
}

func (s *Server) delete(id int) (bool, error) {
	removed, err := s.catalog.Delete(id)

	switch {
	case !removed:
		s.metrics.Mutation("delete", metrics.OutcomeNotFound)
	case err != nil:
		s.metrics.Mutation("delete", metrics.OutcomeNotDurable)
		s.logger.Warn("project deleted but not saved", zap.Int("id", id), zap.Error(err))
	default:
		s.metrics.Mutation("delete", metrics.OutcomeOK)
		s.logger.Info("project deleted", zap.Int("id", id))
	}
	s.metrics.SetCatalogSize(s.catalog.Count())
	return removed, err
}

func cardAnchor(id int) string {
	return fmt.Sprintf("project-%d", id)
}
