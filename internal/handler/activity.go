package handler

import (
	"net/http"

	"salesdesk/internal/model"
	"salesdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity-timeline endpoints.
type ActivityHandler struct {
	activities *service.ActivityService
}

func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List handles GET /api/activities
func (h *ActivityHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	activities, err := h.activities.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// Create handles POST /api/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req model.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activities.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// ListFor handles GET /api/activities/:kind/:id where kind is lead or contact
func (h *ActivityHandler) ListFor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	kind := c.Param("kind")
	if kind != "lead" && kind != "contact" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Kind must be lead or contact", nil))
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	activities, err := h.activities.ListFor(c.Request.Context(), actor, kind, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
