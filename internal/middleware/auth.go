package middleware

import (
	"net/http"
	"strings"

	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity is the verified caller placed on the request context.
type Identity struct {
	UserID        uint
	Role          model.Role
	AnonymousCode string
}

// Authentication verifies the bearer token and stores the caller identity
// on the context.
func Authentication(tokens service.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing token"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		ctx.Set(identityKey, Identity{
			UserID:        userID,
			Role:          claims.Role,
			AnonymousCode: claims.AnonymousCode,
		})
		ctx.Next()
	}
}

// Authorize gates the handler behind the operation's allowed-role set,
// consulting the single policy table rather than ad-hoc role checks.
func Authorize(op model.Operation) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := CurrentUser(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing token"})
			return
		}
		if !model.Allowed(identity.Role, op) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the verified identity set by Authentication.
func CurrentUser(ctx *gin.Context) (Identity, bool) {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
