// Package handler contains the gin route handlers. Handlers bind and
// validate input, resolve the actor, call one service method and translate
// the result; every access decision lives below in the service and authz
// layers.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/middleware"
	"salesdesk/internal/model"
	"salesdesk/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldError is one validation failure, reported per field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindJSON binds the request body and, on validation failure, writes a 400
// with per-field errors. Returns false when the request was already answered.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
			}
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Validation failed", fields))
			return false
		}
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", nil))
		return false
	}
	return true
}

// currentActor resolves the authenticated actor or answers 401.
func currentActor(c *gin.Context) (authz.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", nil))
	}
	return actor, ok
}

// idParam parses the named path parameter as an ObjectID or answers 400.
func idParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := util.ParseObjectID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid id format", nil))
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondError maps the application error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a storage-level failure and surfaces as a
// generic 500; driver internals never reach the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Not found", nil))
	case errors.Is(err, apperr.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, model.NewErrorResponse("Not authorized", nil))
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid credentials", nil))
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrDuplicate):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), nil))
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", nil))
	}
}
