//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/pkg/jwt"
	"bookfair-reservation/internal/usecase"
	"bookfair-reservation/internal/usecase/queries"
	queriesmock "bookfair-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	jwtService := jwt.NewService("validator-secret", time.Hour)
	validator := usecase.NewTokenValidator(jwtService, nil)
	userID := uuid.New()

	t.Run("正常系: ロール付きトークン", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, "admin@example.com", user.RoleAdmin)
		require.NoError(t, err)

		identity, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, "admin@example.com", identity.Email)
		assert.Equal(t, user.RoleAdmin, identity.Role)
	})

	t.Run("異常系: 別の鍵で署名されたトークン", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, "a@example.com", user.RoleUser)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("異常系: 期限切れ", func(t *testing.T) {
		token, err := jwt.NewService("validator-secret", -time.Minute).GenerateToken(userID, "a@example.com", user.RoleUser)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestTokenValidator_ResolveRole(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 現在のロールを返す", func(t *testing.T) {
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByEmail(gomock.Any(), "reader@example.com").Return(&queries.UserView{Role: "ADMIN"}, nil)

		role, err := usecase.NewTokenValidator(nil, store).ResolveRole(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := usecase.NewTokenValidator(nil, store).ResolveRole(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("異常系: DBエラーはそのまま返す", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := usecase.NewTokenValidator(nil, store).ResolveRole(ctx, "reader@example.com")
		assert.ErrorIs(t, err, dbErr)
	})
}
