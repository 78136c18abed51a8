package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/repository"
	"github.com/readwell/library-service/pkg/auth"
)

type Auth struct {
	log      *zap.Logger
	users    repository.Users
	tokenTTL time.Duration
}

func NewAuth(users repository.Users, tokenTTL time.Duration, log *zap.Logger) *Auth {
	return &Auth{
		log:      log,
		users:    users,
		tokenTTL: tokenTTL,
	}
}

func (s *Auth) Register(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.users.CreateUser(ctx, req, string(hash))
}

func (s *Auth) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	claims := &auth.Claims{
		Profile: struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		}{
			Username: user.Username,
			Role:     user.Role,
		},
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}

	return model.AuthResponse{
		ExpiresIn:   int(expirationTime.Unix()),
		AccessToken: tokenString,
	}, nil
}

func (s *Auth) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}
