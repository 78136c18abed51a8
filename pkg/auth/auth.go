package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

// JWTKey signs and verifies access tokens. Overridden by the JWT_KEY
// environment variable in every non-dev deployment.
var JWTKey = []byte(envOr("JWT_KEY", "readwell-dev-key"))

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type ctxKey int

const authCtxKey ctxKey = iota + 1

type Identity struct {
	Username string
	Role     string
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	return context.WithValue(ctx, authCtxKey, Identity{Username: username, Role: role})
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(authCtxKey).(Identity)
	return id, ok
}
