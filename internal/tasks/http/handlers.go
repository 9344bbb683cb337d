package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/benmore-apps/taskrabbit-backend/internal/httperr"
	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/service"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches task routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var f domain.Filter

	if raw := c.Query("project"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "project must be an integer id"})
			return
		}
		f.ProjectID = &id
	}

	if raw, ok := c.GetQuery("completed"); ok && raw != "" {
		switch raw {
		case "true":
			v := true
			f.Completed = &v
		case "false":
			v := false
			f.Completed = &v
		default:
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "completed must be true or false"})
			return
		}
	}

	items, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "tasks": toDTOs(items)})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "task": toDTO(t)})
}

func (h *Handler) create(c *gin.Context) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), service.Input{
		Title:     req.Title,
		ProjectID: req.Project,
		Complete:  req.Complete,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "task": toDTO(t)})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, service.Input{
		Title:    req.Title,
		Complete: req.Complete,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "task": toDTO(t)})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid task id"})
		return 0, false
	}
	return id, true
}

func fail(c *gin.Context, err error) {
	var v *httperr.Validation
	switch {
	case errors.As(err, &v):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": v.Message, "field": v.Field})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
