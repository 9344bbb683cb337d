package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/benmore-apps/taskrabbit-backend/internal/httperr"
	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/projects/service"
	"github.com/benmore-apps/taskrabbit-backend/internal/storage/photos"
)

type Handler struct {
	svc    *service.Service
	photos *photos.Store
}

func New(svc *service.Service, photoStore *photos.Store) *Handler {
	return &Handler{svc: svc, photos: photoStore}
}

func (h *Handler) list(c *gin.Context) {
	q := service.ListQuery{Search: c.Query("search")}

	if raw, ok := c.GetQuery("completed"); ok {
		switch raw {
		case "true":
			v := true
			q.Completed = &v
		case "false":
			v := false
			q.Completed = &v
		case "":
			// treated as absent; the UI sends an empty value for "all"
		default:
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "completed must be true or false"})
			return
		}
	}

	items, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": toDetailDTOs(items)})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": toDetailDTO(d)})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d, err := h.svc.Create(c.Request.Context(), service.Input{
		Title:   req.Title,
		DueDate: req.DueDate,
		Members: req.Members,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": toDetailDTO(d)})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d, err := h.svc.Update(c.Request.Context(), id, service.Input{
		Title:   req.Title,
		DueDate: req.DueDate,
		Members: req.Members,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": toDetailDTO(d)})
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

func (h *Handler) uploadPhoto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "photo file is required"})
		return
	}

	name, err := h.photos.Filename(file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error(), "field": "display_photo"})
		return
	}

	if err := c.SaveUploadedFile(file, h.photos.Path(name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "saving uploaded file failed"})
		return
	}

	d, err := h.svc.AttachPhoto(c.Request.Context(), id, name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": toDetailDTO(d)})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
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
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
