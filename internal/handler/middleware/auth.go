package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/handler/httperr"
	"bookfair-reservation/internal/pkg/cookie"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/usecase"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
	ctxUserRoleKey  = "user_role"
)

var (
	errTokenMissing = errs.NewKind("access token missing", errs.ErrUnauthorized)
	errNotAdmin     = errs.NewKind("admin role required", errs.ErrForbidden)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, identity.UserID)
		c.Set(ctxUserEmailKey, identity.Email)
		c.Set(ctxUserRoleKey, identity.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. Tokens without a role claim are
// checked against the directory.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetUserRole(c)
		if role == "" {
			email, ok := GetUserEmail(c)
			if !ok {
				httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "Access denied", nil)
				return
			}
			resolved, err := m.tokenValidator.ResolveRole(c.Request.Context(), email)
			if err != nil {
				slog.Warn("Role lookup failed in admin middleware", "email", email, "error", err.Error())
				httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
				return
			}
			role = resolved
			c.Set(ctxUserRoleKey, role)
		}

		if !role.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "Access denied", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return cookie.GetAccessToken(c)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	s, ok := email.(string)
	return s, ok && s != ""
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetCaller bundles the authenticated identity for use cases.
func GetCaller(c *gin.Context) (shared.Caller, bool) {
	email, ok := GetUserEmail(c)
	if !ok {
		return shared.Caller{}, false
	}
	id, _ := GetUserID(c)
	role, _ := GetUserRole(c)
	return shared.Caller{UserID: id, Email: email, Role: role}, true
}
