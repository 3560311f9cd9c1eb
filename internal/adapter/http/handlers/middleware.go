package handlers

import (
	"net/http"
	"strings"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"
	"homeclean/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// AuthMiddleware verifies the Authorization header and stores the caller's
// identity in the gin context. Both a raw token and the "Bearer <token>" form
// are accepted.
func AuthMiddleware(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		token = strings.TrimPrefix(token, "Bearer ")

		userID, role, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller has the role.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerRole(c) != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) int64 {
	id, _ := c.Get(ctxUserID)
	v, _ := id.(int64)
	return v
}

func callerRole(c *gin.Context) entities.Role {
	role, _ := c.Get(ctxRole)
	v, _ := role.(entities.Role)
	return v
}
