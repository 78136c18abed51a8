package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
	mock_repository "github.com/readwell/library-service/internal/repository/mocks"
	"github.com/readwell/library-service/internal/service"
	"github.com/readwell/library-service/pkg/auth"
)

func TestAuth_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_repository.NewMockUsers(ctrl)
	svc := service.NewAuth(users, time.Hour, zap.NewNop())
	ctx := context.Background()

	req := model.UserCreateRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}

	users.EXPECT().CreateUser(ctx, req, gomock.Any()).
		DoAndReturn(func(_ context.Context, req model.UserCreateRequest, hash string) (model.User, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)))
			return model.User{Username: req.Username, Email: req.Email, Role: auth.RoleUser}, nil
		})

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, auth.RoleUser, user.Role)
}

func TestAuth_Login(t *testing.T) {
	const password = "s3cret-pass"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	stored := model.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         auth.RoleUser,
	}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_repository.NewMockUsers(ctrl)
		svc := service.NewAuth(users, time.Hour, zap.NewNop())
		ctx := context.Background()

		users.EXPECT().GetUserByEmail(ctx, stored.Email).Return(stored, nil)

		resp, err := svc.Login(ctx, model.AuthRequest{Email: stored.Email, Password: password})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.Greater(t, resp.ExpiresIn, int(time.Now().Unix()))

		claims := &auth.Claims{}
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "alice", claims.Profile.Username)
		require.Equal(t, auth.RoleUser, claims.Profile.Role)
		require.Equal(t, stored.Email, claims.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_repository.NewMockUsers(ctrl)
		svc := service.NewAuth(users, time.Hour, zap.NewNop())
		ctx := context.Background()

		users.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
			Return(model.User{}, errs.ErrNotFound)

		_, err := svc.Login(ctx, model.AuthRequest{Email: "nobody@example.com", Password: password})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_repository.NewMockUsers(ctrl)
		svc := service.NewAuth(users, time.Hour, zap.NewNop())
		ctx := context.Background()

		users.EXPECT().GetUserByEmail(ctx, stored.Email).Return(stored, nil)

		_, err := svc.Login(ctx, model.AuthRequest{Email: stored.Email, Password: "wrong"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
