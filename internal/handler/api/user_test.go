//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/handler/api"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/shared"
	"bookfair-reservation/tests/common/builder"
	"bookfair-reservation/tests/common/httptest"
	commandsmock "bookfair-reservation/tests/mock/commands"
	queriesmock "bookfair-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCmds    *commandsmock.MockUserCommands
	mockQueries *queriesmock.MockUserQueries
	callerID    uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.callerID = uuid.New()

	h := api.NewUserHandler(s.mockCmds, s.mockQueries)
	g := s.router.Group("/user", fakeAuth(s.callerID, user.RoleUser))
	g.GET("/profile", h.Profile)
	g.PUT("/genres", h.UpdateGenres)
	g.GET("/id/:id", h.GetByID)
	g.GET("/email/:email", h.GetByEmail)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) perform(email, method, path, body string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set(testEmailHeader, email)
	}
	w := nethttptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *UserHandlerTestSuite) TestProfile() {
	s.Run("success: profile of the caller", func() {
		view := builder.NewUserBuilder().WithEmail("vendor@example.com").WithGenres("Fiction").BuildView()
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), "vendor@example.com").Return(view, nil)

		rec := s.perform("vendor@example.com", http.MethodGet, "/user/profile", "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Fiction", response.Genres)
	})

	s.Run("error: 401 without identity", func() {
		rec := s.perform("", http.MethodGet, "/user/profile", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *UserHandlerTestSuite) TestUpdateGenres() {
	caller := shared.Caller{UserID: s.callerID, Email: "vendor@example.com", Role: user.RoleUser}

	s.Run("success: caller updates own genres", func() {
		s.mockCmds.EXPECT().UpdateGenres(gomock.Any(), caller, "vendor@example.com", "Fiction, Poetry").Return(nil)

		rec := s.perform(caller.Email, http.MethodPut, "/user/genres", `{"email":"vendor@example.com","genres":"Fiction, Poetry"}`)

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Genres updated", response.Message)
	})

	s.Run("error: 400 on email mismatch", func() {
		s.mockCmds.EXPECT().UpdateGenres(gomock.Any(), caller, "other@example.com", "Fiction").Return(commands.ErrEmailMismatch)

		rec := s.perform(caller.Email, http.MethodPut, "/user/genres", `{"email":"other@example.com","genres":"Fiction"}`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email mismatch")
	})

	s.Run("error: 400 without target email", func() {
		rec := s.perform(caller.Email, http.MethodPut, "/user/genres", `{"genres":"Fiction"}`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *UserHandlerTestSuite) TestLookups() {
	id := uuid.New()

	s.Run("success: by id", func() {
		view := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = id }).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := s.perform("vendor@example.com", http.MethodGet, "/user/id/"+id.String(), "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := s.perform("vendor@example.com", http.MethodGet, "/user/id/42", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: unknown email returns 404", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, user.ErrNotFound)

		rec := s.perform("vendor@example.com", http.MethodGet, "/user/email/ghost@example.com", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
