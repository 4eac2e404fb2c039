//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/handler/api"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/cookie"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/tests/common/builder"
	"bookfair-reservation/tests/common/httptest"
	"bookfair-reservation/tests/common/testutil"
	commandsmock "bookfair-reservation/tests/mock/commands"
	queriesmock "bookfair-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	meUserID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.meUserID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stands in for RequireAuth
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.meUserID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().WithGenres("Fiction, Poetry").BuildRegisterDTO()
	returnUser := builder.NewUserBuilder().WithGenres("Fiction, Poetry").BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			Username: reqBody.Username,
			Email:    reqBody.Email,
			Password: reqBody.Password,
			Genres:   "Fiction, Poetry",
		}).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Registered successfully", response.Message)
	})

	s.Run("success: trims the username", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("username", "  vendor  "))
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Cond(func(in commands.RegisterInput) bool {
			return in.Username == "vendor"
		})).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []testCaseAuth{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectCode    int
			expectMessage string
		}{
			{name: "duplicate email returns 409", commandsError: commands.ErrEmailAlreadyExists, expectCode: http.StatusConflict, expectMessage: "Email already exists"},
			{name: "invalid email returns 400", commandsError: user.ErrInvalidEmail, expectCode: http.StatusBadRequest, expectMessage: "invalid email format"},
			{name: "weak password returns 400", commandsError: user.ErrPasswordTooWeak, expectCode: http.StatusBadRequest, expectMessage: user.ErrPasswordTooWeak.Error()},
			{name: "unexpected error returns 500", commandsError: errs.New("db down"), expectCode: http.StatusInternalServerError, expectMessage: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMessage)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildView()
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK with token and cookie", func() {
		credentials, err := reqBody.ToDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Login(gomock.Any(), credentials).
			Return(&commands.LoginResult{Token: expectedToken, ExpiresIn: time.Hour, User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Login successful", response.Message)
		s.Equal(expectedToken, response.Token)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal(returnUser.Role, response.User.Role)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal(expectedToken, accessCookie.Value)
		s.True(accessCookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
			{name: "unknown field", mutate: testutil.Field("remember", true), expectCode: http.StatusBadRequest},
		}
		gin.EnableJsonDecoderDisallowUnknownFields()
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: malformed email is reported as bad credentials", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "invalid-email"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectCode    int
			expectMessage string
		}{
			{name: "wrong password returns 401", commandsError: commands.ErrInvalidCredentials, expectCode: http.StatusUnauthorized, expectMessage: "Invalid email or password"},
			{name: "token failure returns 500", commandsError: commands.ErrTokenGeneration, expectCode: http.StatusInternalServerError, expectMessage: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMessage)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
	s.Less(cleared.MaxAge, 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current user", func() {
		view := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = s.meUserID }).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.meUserID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.meUserID, response.ID)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when the user is gone", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.meUserID).Return(nil, user.ErrNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
