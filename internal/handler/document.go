package handler

import (
	"net/http"

	"salesdesk/internal/model"
	"salesdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document-record endpoints.
type DocumentHandler struct {
	documents *service.DocumentService
}

func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// List handles GET /api/documents
func (h *DocumentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	documents, err := h.documents.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

// Create handles POST /api/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req model.CreateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.documents.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListFor handles GET /api/documents/:kind/:id where kind is lead or contact
func (h *DocumentHandler) ListFor(c *gin.Context) {
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

	documents, err := h.documents.ListFor(c.Request.Context(), actor, kind, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

// Delete handles DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.documents.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Document removed", nil))
}
