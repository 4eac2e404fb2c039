//go:build unit

package api_test

import (
	"bookfair-reservation/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testEmailHeader = "X-Test-Email"

// fakeAuth stands in for RequireAuth: the caller is taken from X-Test-Email.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := c.GetHeader(testEmailHeader); email != "" {
			c.Set("user_id", userID)
			c.Set("user_email", email)
			c.Set("user_role", role)
		}
		c.Next()
	}
}
