package middleware

import (
	"net/http"
	"strings"

	"salesdesk/internal/auth"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"github.com/gin-gonic/gin"
)

// ContextActorKey is where the authenticated actor lives on the request
// context.
const ContextActorKey = "actor"

// AuthMiddleware verifies the bearer token, re-reads the user record and
// attaches the actor to the context. The user record is the source of truth
// for role and active status on every request; token claims only identify
// the user.
func AuthMiddleware(tokens *auth.Tokens, users generic.BaseRepository[*model.User]) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Authorization token is required", nil))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Authorization header format must be Bearer {token}", nil))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid or expired token", nil))
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("User not found", nil))
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Account is deactivated", nil))
			return
		}

		c.Set(ContextActorKey, authz.Actor{ID: user.ID, Role: user.Role, Email: user.Email})
		c.Next()
	}
}

// CurrentActor returns the actor the auth middleware attached to the
// context. The second return is false on unauthenticated requests.
func CurrentActor(c *gin.Context) (authz.Actor, bool) {
	v, exists := c.Get(ContextActorKey)
	if !exists {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}
