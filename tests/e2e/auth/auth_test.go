//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/handler/dto/request"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/pkg/cookie"
	"bookfair-reservation/tests/common/authtest"
	"bookfair-reservation/tests/common/dbtest"
	"bookfair-reservation/tests/common/httptest"
	"bookfair-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", user.RoleAdmin.String())
	dbtest.CreateTestUser(s.T(), s.DB, "reader@example.com", user.RoleUser.String())
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
		expectedError  string
		description    string
	}{
		{
			name:           "正常な登録",
			req:            request.RegisterRequest{Username: "Lake House", Email: "New@Example.com", Password: "password123", Genres: "Fiction, Poetry"},
			expectedStatus: http.StatusCreated,
			description:    "新しいメールアドレスで登録できること",
		},
		{
			name:           "登録済みのメールアドレス",
			req:            request.RegisterRequest{Username: "dup", Email: "READER@example.com", Password: "password123"},
			expectedStatus: http.StatusConflict,
			expectedError:  "Email already exists",
			description:    "大文字小文字が違っても重複として拒否されること",
		},
		{
			name:           "短いパスワード",
			req:            request.RegisterRequest{Username: "short", Email: "short@example.com", Password: "short"},
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
		{
			name:           "必須項目なし",
			req:            request.RegisterRequest{Email: "nouser@example.com", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
			description:    "ユーザー名なしは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedError != "" {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
			}
			if tt.expectedStatus == http.StatusCreated {
				var role, genres string
				err := s.DB.QueryRow(t.Context(), "SELECT role, genres FROM users WHERE email = $1", "new@example.com").Scan(&role, &genres)
				require.NoError(t, err)
				require.Equal(t, "USER", role)
				require.Equal(t, "Fiction, Poetry", genres)

				authtest.LoginUser(t, s.Router, "new@example.com", "password123")
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "reader@example.com",
			password:       authtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       authtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "reader@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のパスワード",
			email:          "reader@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var body resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
				require.NotEmpty(t, body.Token, "アクセストークンが空")
				require.Equal(t, tt.email, body.User.Email)

				accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, accessCookie)
				require.True(t, accessCookie.HttpOnly, "CookieはHttpOnlyであること")
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("Cookieを削除する", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "reader@example.com", Password: authtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, w.Result().Cookies())
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		expectedEmail  string
		expectedRole   string
	}{
		{
			name: "管理者ユーザーの情報取得",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "admin@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "admin@example.com",
			expectedRole:   "ADMIN",
		},
		{
			name: "一般ユーザーの情報取得",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "reader@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "reader@example.com",
			expectedRole:   "USER",
		},
		{
			name:           "無効なトークン",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "別の鍵で署名されたトークン",
			setupToken: func() string {
				userID := dbtest.CreateTestUser(s.T(), s.DB, "forged@example.com", "ADMIN")
				return s.jwt.CreateForeignToken(s.T(), userID, "forged@example.com", user.RoleAdmin)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, tt.setupToken())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var body resdto.UserResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
				require.Equal(t, tt.expectedEmail, body.Email)
				require.Equal(t, tt.expectedRole, body.Role)
				require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", "USER")
		expiredToken := s.jwt.CreateExpiredToken(t, userID, "expiry@example.com", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestAdminOnlyRoutes() {
	s.Run("一般ユーザーは管理者APIにアクセスできない", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "reader@example.com", authtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})

	s.Run("管理者はユーザー一覧を取得できる", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "reader@example.com")
	})
}
