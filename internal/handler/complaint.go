package handler

import (
	"net/http"

	"salesdesk/internal/model"
	"salesdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ComplaintHandler handles complaint endpoints.
type ComplaintHandler struct {
	complaints *service.ComplaintService
}

func NewComplaintHandler(complaints *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

// List handles GET /api/complaints
func (h *ComplaintHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	complaints, err := h.complaints.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// Create handles POST /api/complaints
func (h *ComplaintHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req model.CreateComplaintRequest
	if !bindJSON(c, &req) {
		return
	}

	complaint, err := h.complaints.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// Get handles GET /api/complaints/:id
func (h *ComplaintHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	complaint, err := h.complaints.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// Update handles PUT /api/complaints/:id
func (h *ComplaintHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateComplaintRequest
	if !bindJSON(c, &req) {
		return
	}

	complaint, err := h.complaints.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// Delete handles DELETE /api/complaints/:id
func (h *ComplaintHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.complaints.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Complaint removed", nil))
}
