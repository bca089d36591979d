package users_middleware

import (
	"net/http"
	"strings"

	users_models "teamhub/internal/features/users/models"
	users_services "teamhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the HTTP-only cookie carrying the access token for
// browser clients.
const AuthCookieName = "auth_token"

// AuthMiddleware resolves the caller identity from the request
// credential and adds it to the gin context. The Authorization header
// takes precedence over the auth cookie. Missing or invalid credentials
// end the request with 401; no partial identity is ever set.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		caller, err := userService.GetCallerFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("caller", caller)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := ctx.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}

	return cookie
}

// GetCallerFromContext helper function to extract the caller from gin context
func GetCallerFromContext(ctx *gin.Context) (*users_models.Caller, bool) {
	callerInterface, exists := ctx.Get("caller")
	if !exists {
		return nil, false
	}

	caller, ok := callerInterface.(*users_models.Caller)

	return caller, ok
}
