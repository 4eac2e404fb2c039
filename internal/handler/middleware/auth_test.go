//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/pkg/cookie"
	"bookfair-reservation/internal/pkg/jwt"
	"bookfair-reservation/internal/usecase"
	usecasemock "bookfair-reservation/tests/mock/usecase"
)

func newAuthEngine(validator usecase.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(validator)

	engine := gin.New()
	engine.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		caller, _ := GetCaller(c)
		c.JSON(http.StatusOK, gin.H{"email": caller.Email, "role": caller.Role.String()})
	})
	engine.GET("/admin", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doGet(engine *gin.Engine, path string, mutate func(r *http.Request)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	engine.ServeHTTP(w, req)
	return w
}

func bearer(token string) func(r *http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func TestRequireAuth(t *testing.T) {
	identity := &usecase.Identity{UserID: uuid.New(), Email: "v@example.com", Role: user.RoleUser}

	t.Run("正常系: Bearerトークンで認証", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("good").Return(identity, nil)

		w := doGet(newAuthEngine(validator), "/me", bearer("good"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"v@example.com","role":"USER"}`, w.Body.String())
	})

	t.Run("正常系: Cookieのトークンで認証", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("from-cookie").Return(identity, nil)

		w := doGet(newAuthEngine(validator), "/me", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "from-cookie"})
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("異常系: トークンなしは401", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))

		w := doGet(newAuthEngine(validator), "/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Access token required"}}`, w.Body.String())
	})

	t.Run("異常系: 期限切れは401", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("old").Return(nil, jwt.ErrExpiredToken)

		w := doGet(newAuthEngine(validator), "/me", bearer("old"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Invalid or expired token"}}`, w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("正常系: ADMINロールは通過", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("t").Return(&usecase.Identity{Email: "a@example.com", Role: user.RoleAdmin}, nil)

		w := doGet(newAuthEngine(validator), "/admin", bearer("t"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("異常系: USERロールは403", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("t").Return(&usecase.Identity{Email: "v@example.com", Role: user.RoleUser}, nil)

		w := doGet(newAuthEngine(validator), "/admin", bearer("t"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Access denied"}}`, w.Body.String())
	})

	t.Run("正常系: ロールなしトークンはディレクトリで確認", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("t").Return(&usecase.Identity{Email: "a@example.com"}, nil)
		validator.EXPECT().ResolveRole(gomock.Any(), "a@example.com").Return(user.RoleAdmin, nil)

		w := doGet(newAuthEngine(validator), "/admin", bearer("t"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("異常系: ロール確認に失敗すると403", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("t").Return(&usecase.Identity{Email: "gone@example.com"}, nil)
		validator.EXPECT().ResolveRole(gomock.Any(), "gone@example.com").Return(user.Role(""), user.ErrNotFound)

		w := doGet(newAuthEngine(validator), "/admin", bearer("t"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
