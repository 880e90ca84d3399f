package handler

import (
	"net/http"

	"salesdesk/internal/model"
	"salesdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// MailHandler handles internal mailbox endpoints.
type MailHandler struct {
	mail *service.MailService
}

func NewMailHandler(mail *service.MailService) *MailHandler {
	return &MailHandler{mail: mail}
}

// Inbox handles GET /api/mail/inbox
func (h *MailHandler) Inbox(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	mails, err := h.mail.Inbox(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mails)
}

// Sent handles GET /api/mail/sent
func (h *MailHandler) Sent(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	mails, err := h.mail.Sent(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mails)
}

// Starred handles GET /api/mail/starred
func (h *MailHandler) Starred(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	mails, err := h.mail.Starred(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mails)
}

// Get handles GET /api/mail/:id
func (h *MailHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	mail, err := h.mail.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mail)
}

// Send handles POST /api/mail/send
func (h *MailHandler) Send(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req model.SendMailRequest
	if !bindJSON(c, &req) {
		return
	}

	sent, err := h.mail.Send(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sent)
}

// ToggleRead handles PUT /api/mail/:id/read
func (h *MailHandler) ToggleRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	mail, err := h.mail.ToggleRead(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mail)
}

// ToggleStar handles PUT /api/mail/:id/star
func (h *MailHandler) ToggleStar(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	mail, err := h.mail.ToggleStar(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mail)
}

// Delete handles DELETE /api/mail/:id
func (h *MailHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.mail.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Mail deleted", nil))
}
